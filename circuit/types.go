// SPDX-License-Identifier: MIT

package circuit

import "fmt"

// Qubit addresses one quantum unit inside a named register.
type Qubit struct {
	Register string
	Index    int
}

func (q Qubit) String() string { return fmt.Sprintf("%s[%d]", q.Register, q.Index) }

// Clbit addresses one classical output bit inside a named register.
type Clbit struct {
	Register string
	Index    int
}

func (c Clbit) String() string { return fmt.Sprintf("%s[%d]", c.Register, c.Index) }

// QuantumRegister is a named group of quantum units.
type QuantumRegister struct {
	Name string
	Size int
}

// Qubit returns unit i of the register. No bounds check is made here;
// the Program rejects out-of-range references.
func (r QuantumRegister) Qubit(i int) Qubit { return Qubit{Register: r.Name, Index: i} }

// Qubits returns every unit of the register in index order.
func (r QuantumRegister) Qubits() []Qubit {
	out := make([]Qubit, r.Size)
	for i := range out {
		out[i] = r.Qubit(i)
	}
	return out
}

// Slice returns units [lo, hi) of the register.
func (r QuantumRegister) Slice(lo, hi int) []Qubit {
	out := make([]Qubit, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, r.Qubit(i))
	}
	return out
}

// ClassicalRegister is a named group of classical output bits.
type ClassicalRegister struct {
	Name string
	Size int
}

// Clbit returns bit i of the register.
func (r ClassicalRegister) Clbit(i int) Clbit { return Clbit{Register: r.Name, Index: i} }

// Clbits returns every bit of the register in index order.
func (r ClassicalRegister) Clbits() []Clbit {
	return r.Slice(0, r.Size)
}

// Slice returns bits [lo, hi) of the register.
func (r ClassicalRegister) Slice(lo, hi int) []Clbit {
	out := make([]Clbit, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, r.Clbit(i))
	}
	return out
}

// OpKind enumerates the primitive operations a Program accepts.
type OpKind int

const (
	OpH OpKind = iota
	OpX
	OpZ
	OpI
	OpCX
	OpReset
	OpMeasure
	OpBarrier
)

var opNames = [...]string{"h", "x", "z", "id", "cx", "reset", "measure", "barrier"}

// String returns the lower-case OpenQASM mnemonic.
func (k OpKind) String() string {
	if k < 0 || int(k) >= len(opNames) {
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
	return opNames[k]
}

// Op is one recorded operation.
// Qubits holds one unit, or (control, target) for OpCX, or nothing for OpBarrier.
// Clbit is set only for OpMeasure.
type Op struct {
	Kind   OpKind
	Qubits []Qubit
	Clbit  Clbit
}

func (o Op) String() string {
	switch o.Kind {
	case OpBarrier:
		return "barrier"
	case OpCX:
		return fmt.Sprintf("cx %v, %v", o.Qubits[0], o.Qubits[1])
	case OpMeasure:
		return fmt.Sprintf("measure %v -> %v", o.Qubits[0], o.Clbit)
	default:
		return fmt.Sprintf("%s %v", o.Kind, o.Qubits[0])
	}
}
