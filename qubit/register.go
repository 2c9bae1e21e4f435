// SPDX-License-Identifier: MIT

package qubit

import (
	"fmt"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/lattice"
)

// Register is an ordered group of logical qubits sharing one Program.
type Register struct {
	prog   circuit.Program
	qubits []*Qubit
}

// NewRegister builds n qubits on p named <name>_0 .. <name>_{n-1}, where
// name defaults to DefaultRegisterName.
// All qubits share params and every option.
func NewRegister(p circuit.Program, n int, params lattice.Params, opts ...Option) (*Register, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrRegisterSize, n)
	}
	base := newConfig(DefaultRegisterName, opts)
	r := &Register{prog: p, qubits: make([]*Qubit, 0, n)}
	for i := 0; i < n; i++ {
		cfg := base
		cfg.name = fmt.Sprintf("%s_%d", base.name, i)
		q, err := build(p, params, cfg)
		if err != nil {
			return nil, fmt.Errorf("qubit %d: %w", i, err)
		}
		r.qubits = append(r.qubits, q)
	}
	return r, nil
}

// Len returns the number of qubits.
func (r *Register) Len() int { return len(r.qubits) }

// Program returns the shared program.
func (r *Register) Program() circuit.Program { return r.prog }

// At returns qubit i.
func (r *Register) At(i int) (*Qubit, error) {
	if i < 0 || i >= len(r.qubits) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrQubitIndex, i, len(r.qubits))
	}
	return r.qubits[i], nil
}

func (r *Register) apply(i int, op func(*Qubit) error) error {
	q, err := r.At(i)
	if err != nil {
		return err
	}
	return op(q)
}

// Stabilize appends a stabilization round to qubit i.
func (r *Register) Stabilize(i int) error { return r.apply(i, (*Qubit).Stabilize) }

// StabilizeAll appends one round to every qubit, in index order.
func (r *Register) StabilizeAll() error {
	for _, q := range r.qubits {
		if err := q.Stabilize(); err != nil {
			return err
		}
	}
	return nil
}

// Identity appends an identity layer to qubit i.
func (r *Register) Identity(i int) error { return r.apply(i, (*Qubit).Identity) }

// IdentityData appends a data identity layer to qubit i.
func (r *Register) IdentityData(i int) error { return r.apply(i, (*Qubit).IdentityData) }

// ResetXPlus prepares qubit i in |+>.
func (r *Register) ResetXPlus(i int) error { return r.apply(i, (*Qubit).ResetXPlus) }

// ResetZPlus prepares qubit i in |0>.
func (r *Register) ResetZPlus(i int) error { return r.apply(i, (*Qubit).ResetZPlus) }

// LogicalX applies logical X to qubit i.
func (r *Register) LogicalX(i int) error { return r.apply(i, (*Qubit).LogicalX) }

// LogicalZ applies logical Z to qubit i.
func (r *Register) LogicalZ(i int) error { return r.apply(i, (*Qubit).LogicalZ) }

// ReadoutX measures logical X of qubit i.
func (r *Register) ReadoutX(i int) error { return r.apply(i, (*Qubit).ReadoutX) }

// ReadoutZ measures logical Z of qubit i.
func (r *Register) ReadoutZ(i int) error { return r.apply(i, (*Qubit).ReadoutZ) }

// LatticeReadoutX measures every data unit of qubit i in the X basis.
func (r *Register) LatticeReadoutX(i int) error { return r.apply(i, (*Qubit).LatticeReadoutX) }

// LatticeReadoutZ measures every data unit of qubit i in the Z basis.
func (r *Register) LatticeReadoutZ(i int) error { return r.apply(i, (*Qubit).LatticeReadoutZ) }
