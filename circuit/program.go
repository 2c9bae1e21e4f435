// SPDX-License-Identifier: MIT

package circuit

import "fmt"

// Program is the ordered operation sink the lattice builds on.
// Implementations append every call in order and never reorder or remove
// operations. Gate methods record the first invalid call and report it
// through Err; register allocation reports errors directly.
type Program interface {
	AddQuantumRegister(name string, size int) (QuantumRegister, error)
	AddClassicalRegister(name string, size int) (ClassicalRegister, error)
	// Has reports whether a register of either kind already uses name.
	Has(name string) bool

	H(q Qubit)
	X(q Qubit)
	Z(q Qubit)
	I(q Qubit)
	CX(control, target Qubit)
	Reset(q Qubit)
	Measure(q Qubit, c Clbit)
	Barrier()

	Err() error
}

// MeasureAll measures qubits[i] into clbits[i] for every i.
// Returns ErrBadSize when the groups differ in length.
func MeasureAll(p Program, qubits []Qubit, clbits []Clbit) error {
	if len(qubits) != len(clbits) {
		return fmt.Errorf("%w: measure %d units into %d bits", ErrBadSize, len(qubits), len(clbits))
	}
	for i, q := range qubits {
		p.Measure(q, clbits[i])
	}
	return p.Err()
}

// ResetAll resets every unit in order.
func ResetAll(p Program, qubits []Qubit) {
	for _, q := range qubits {
		p.Reset(q)
	}
}

// HAll applies the basis change to every unit in order.
func HAll(p Program, qubits []Qubit) {
	for _, q := range qubits {
		p.H(q)
	}
}

// IAll applies an identity to every unit in order.
func IAll(p Program, qubits []Qubit) {
	for _, q := range qubits {
		p.I(q)
	}
}
