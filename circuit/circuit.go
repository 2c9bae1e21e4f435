// SPDX-License-Identifier: MIT
// Package: surfacecode/circuit
//
// circuit.go: in-memory Program recorder.
//
// Contract:
//   • The first invalid call is kept as a sticky error; later calls are ignored.
//   • Register names are unique across quantum and classical registers.
//   • CX rejects a control equal to its target with ErrSameUnit.

package circuit

import (
	"fmt"
	"strings"
)

// Circuit records operations in append order. It implements Program.
// A Circuit is not safe for concurrent mutation; build it from one goroutine.
type Circuit struct {
	qregs  []QuantumRegister
	cregs  []ClassicalRegister
	qsizes map[string]int
	csizes map[string]int
	ops    []Op
	err    error
}

// New returns an empty Circuit.
func New() *Circuit {
	return &Circuit{
		qsizes: make(map[string]int),
		csizes: make(map[string]int),
	}
}

var _ Program = (*Circuit)(nil)

// AddQuantumRegister allocates a named group of size quantum units.
// Quantum and classical registers share one namespace.
func (c *Circuit) AddQuantumRegister(name string, size int) (QuantumRegister, error) {
	if err := c.checkNew(name, size); err != nil {
		return QuantumRegister{}, err
	}
	r := QuantumRegister{Name: name, Size: size}
	c.qregs = append(c.qregs, r)
	c.qsizes[name] = size
	return r, nil
}

// AddClassicalRegister allocates a named group of size classical bits.
func (c *Circuit) AddClassicalRegister(name string, size int) (ClassicalRegister, error) {
	if err := c.checkNew(name, size); err != nil {
		return ClassicalRegister{}, err
	}
	r := ClassicalRegister{Name: name, Size: size}
	c.cregs = append(c.cregs, r)
	c.csizes[name] = size
	return r, nil
}

// Has reports whether name is taken by a quantum or classical register.
// Complexity: O(1).
func (c *Circuit) Has(name string) bool {
	_, q := c.qsizes[name]
	_, cl := c.csizes[name]
	return q || cl
}

func (c *Circuit) checkNew(name string, size int) error {
	if size < 0 {
		return fmt.Errorf("%w: register %q size %d", ErrBadSize, name, size)
	}
	if name == "" || c.Has(name) {
		return fmt.Errorf("%w: %q", ErrDuplicateRegister, name)
	}
	return nil
}

func (c *Circuit) H(q Qubit)     { c.single(OpH, q) }
func (c *Circuit) X(q Qubit)     { c.single(OpX, q) }
func (c *Circuit) Z(q Qubit)     { c.single(OpZ, q) }
func (c *Circuit) I(q Qubit)     { c.single(OpI, q) }
func (c *Circuit) Reset(q Qubit) { c.single(OpReset, q) }

// CX appends a controlled-NOT; control and target must differ.
func (c *Circuit) CX(control, target Qubit) {
	if c.err != nil {
		return
	}
	if !c.knownQubit(control) || !c.knownQubit(target) {
		return
	}
	if control == target {
		c.err = fmt.Errorf("%w: cx on %v", ErrSameUnit, control)
		return
	}
	c.ops = append(c.ops, Op{Kind: OpCX, Qubits: []Qubit{control, target}})
}

// Measure appends a measurement of q into classical bit cb.
func (c *Circuit) Measure(q Qubit, cb Clbit) {
	if c.err != nil {
		return
	}
	if !c.knownQubit(q) {
		return
	}
	if size, ok := c.csizes[cb.Register]; !ok || cb.Index < 0 || cb.Index >= size {
		c.err = fmt.Errorf("%w: clbit %v", ErrUnknownUnit, cb)
		return
	}
	c.ops = append(c.ops, Op{Kind: OpMeasure, Qubits: []Qubit{q}, Clbit: cb})
}

// Barrier appends an ordering boundary with no data effect.
func (c *Circuit) Barrier() {
	if c.err != nil {
		return
	}
	c.ops = append(c.ops, Op{Kind: OpBarrier})
}

// Err returns the first invalid operation, if any.
func (c *Circuit) Err() error { return c.err }

func (c *Circuit) single(k OpKind, q Qubit) {
	if c.err != nil {
		return
	}
	if !c.knownQubit(q) {
		return
	}
	c.ops = append(c.ops, Op{Kind: k, Qubits: []Qubit{q}})
}

func (c *Circuit) knownQubit(q Qubit) bool {
	size, ok := c.qsizes[q.Register]
	if !ok || q.Index < 0 || q.Index >= size {
		c.err = fmt.Errorf("%w: qubit %v", ErrUnknownUnit, q)
		return false
	}
	return true
}

// Ops returns a copy of the recorded operations in append order.
func (c *Circuit) Ops() []Op {
	out := make([]Op, len(c.ops))
	copy(out, c.ops)
	return out
}

// Len returns the number of recorded operations.
func (c *Circuit) Len() int { return len(c.ops) }

// Count returns how many operations of kind k were recorded.
// Complexity: O(N) for N recorded operations.
func (c *Circuit) Count(k OpKind) int {
	n := 0
	for _, op := range c.ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// QuantumRegisters returns the quantum registers in allocation order.
func (c *Circuit) QuantumRegisters() []QuantumRegister {
	return append([]QuantumRegister(nil), c.qregs...)
}

// ClassicalRegisters returns the classical registers in allocation order.
func (c *Circuit) ClassicalRegisters() []ClassicalRegister {
	return append([]ClassicalRegister(nil), c.cregs...)
}

// NumQubits returns the total number of allocated quantum units.
func (c *Circuit) NumQubits() int {
	n := 0
	for _, r := range c.qregs {
		n += r.Size
	}
	return n
}

// NumClbits returns the total number of allocated classical bits.
func (c *Circuit) NumClbits() int {
	n := 0
	for _, r := range c.cregs {
		n += r.Size
	}
	return n
}

// String lists one operation per line.
func (c *Circuit) String() string {
	var sb strings.Builder
	for _, op := range c.ops {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
