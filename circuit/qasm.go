// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"strings"
)

// QASM renders the program as OpenQASM 2.0.
// Barriers span every quantum register, matching a full-width barrier.
// Complexity: O(R + N) for R registers and N operations.
func (c *Circuit) QASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	for _, r := range c.qregs {
		fmt.Fprintf(&sb, "qreg %s[%d];\n", r.Name, r.Size)
	}
	for _, r := range c.cregs {
		fmt.Fprintf(&sb, "creg %s[%d];\n", r.Name, r.Size)
	}
	sb.WriteByte('\n')

	names := make([]string, 0, len(c.qregs))
	for _, r := range c.qregs {
		if r.Size > 0 {
			names = append(names, r.Name)
		}
	}
	all := strings.Join(names, ",")

	for _, op := range c.ops {
		switch op.Kind {
		case OpBarrier:
			if all == "" {
				continue
			}
			fmt.Fprintf(&sb, "barrier %s;\n", all)
		case OpCX:
			fmt.Fprintf(&sb, "cx %v,%v;\n", op.Qubits[0], op.Qubits[1])
		case OpMeasure:
			fmt.Fprintf(&sb, "measure %v -> %v;\n", op.Qubits[0], op.Clbit)
		default:
			fmt.Fprintf(&sb, "%s %v;\n", op.Kind, op.Qubits[0])
		}
	}

	return sb.String()
}
