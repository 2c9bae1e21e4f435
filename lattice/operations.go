// SPDX-License-Identifier: MIT
// Package: surfacecode/lattice
//
// operations.go: full-lattice operations on a shared Program.
//
// Contract:
//   • Each operation returns the Program's sticky error.
//   • Round and readout counters advance only after their register exists.
//   • Classical registers are named <name>_c<t>, <name>_readout_<k> and
//     <name>_data_readout_<k>.

package lattice

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/geometry"
	"github.com/katalvlaran/surfacecode/stabilizer"
)

// Entangle appends every plaquette's protocol, X family first, each followed
// by a barrier.
// Complexity: O(d²) operations appended.
func (l *Lattice) Entangle() error {
	if err := l.entangle(l.xs); err != nil {
		return err
	}
	return l.entangle(l.zs)
}

// EntangleX appends only the X-type protocols.
func (l *Lattice) EntangleX() error { return l.entangle(l.xs) }

// EntangleZ appends only the Z-type protocols.
func (l *Lattice) EntangleZ() error { return l.entangle(l.zs) }

func (l *Lattice) entangle(ins []*stabilizer.Instance) error {
	for _, in := range ins {
		if err := in.Entangle(l.prog); err != nil {
			return err
		}
		l.prog.Barrier()
	}
	return l.prog.Err()
}

// Stabilize appends one full round: entangle every plaquette, measure the Z
// family into the low half and the X family into the high half of a fresh
// 2·num_syn-bit register, then reset both syndrome families.
// The round counter advances only once the register is allocated.
// Complexity: O(d²) operations appended.
func (l *Lattice) Stabilize() error {
	n := l.geo.NumSyndrome()
	creg, err := l.prog.AddClassicalRegister(fmt.Sprintf("%s_c%d", l.name, l.round+1), 2*n)
	if err != nil {
		return err
	}
	l.round++
	l.syndromes = append(l.syndromes, creg)

	if err := l.Entangle(); err != nil {
		return err
	}
	if err := circuit.MeasureAll(l.prog, l.mz.Qubits(), creg.Slice(0, n)); err != nil {
		return err
	}
	if err := circuit.MeasureAll(l.prog, l.mx.Qubits(), creg.Slice(n, 2*n)); err != nil {
		return err
	}
	circuit.ResetAll(l.prog, l.mz.Qubits())
	circuit.ResetAll(l.prog, l.mx.Qubits())
	l.prog.Barrier()

	l.logger.Debug("stabilizer round appended", zap.Int("round", l.round), zap.String("register", creg.Name))
	return l.prog.Err()
}

// LogicalX applies X along the left-most column.
// Complexity: O(d).
func (l *Lattice) LogicalX() error {
	for _, i := range l.geo.LogicalXSupport() {
		l.prog.X(l.data.Qubit(i))
	}
	l.prog.Barrier()
	return l.prog.Err()
}

// LogicalZ applies Z along the top-most row.
// Complexity: O(d).
func (l *Lattice) LogicalZ() error {
	for _, i := range l.geo.LogicalZSupport() {
		l.prog.Z(l.data.Qubit(i))
	}
	l.prog.Barrier()
	return l.prog.Err()
}

func (l *Lattice) nextReadout() (circuit.ClassicalRegister, error) {
	creg, err := l.prog.AddClassicalRegister(fmt.Sprintf("%s_readout_%d", l.name, l.readouts+1), 1)
	if err != nil {
		return circuit.ClassicalRegister{}, err
	}
	l.readouts++
	l.readout = creg
	return creg, nil
}

// ReadoutX measures the logical-X parity of the left-most column through the ancilla.
// Complexity: O(d) operations appended.
func (l *Lattice) ReadoutX() error {
	creg, err := l.nextReadout()
	if err != nil {
		return err
	}
	anc := l.ancilla.Qubit(0)
	l.prog.Reset(anc)
	l.prog.H(anc)
	for _, i := range l.geo.LogicalXSupport() {
		l.prog.CX(anc, l.data.Qubit(i))
	}
	l.prog.H(anc)
	l.prog.Measure(anc, creg.Clbit(0))
	l.prog.Barrier()

	l.logger.Debug("logical readout appended", zap.String("basis", "X"), zap.Int("readout", l.readouts))
	return l.prog.Err()
}

// ReadoutZ measures the logical-Z parity of the top-most row through the ancilla.
// Complexity: O(d) operations appended.
func (l *Lattice) ReadoutZ() error {
	creg, err := l.nextReadout()
	if err != nil {
		return err
	}
	anc := l.ancilla.Qubit(0)
	l.prog.Reset(anc)
	for _, i := range l.geo.LogicalZSupport() {
		l.prog.CX(l.data.Qubit(i), anc)
	}
	l.prog.Measure(anc, creg.Clbit(0))
	l.prog.Barrier()

	l.logger.Debug("logical readout appended", zap.String("basis", "Z"), zap.Int("readout", l.readouts))
	return l.prog.Err()
}

// LatticeReadoutX measures every data unit in the X basis into a fresh d²-bit
// register. The result yields one more X stabilizer round and the logical X value.
// Complexity: O(d²) operations appended.
func (l *Lattice) LatticeReadoutX() error { return l.latticeReadout(geometry.FamilyX) }

// LatticeReadoutZ measures every data unit in the Z basis into a fresh d²-bit
// register. The result yields one more Z stabilizer round and the logical Z value.
// Complexity: O(d²) operations appended.
func (l *Lattice) LatticeReadoutZ() error { return l.latticeReadout(geometry.FamilyZ) }

func (l *Lattice) latticeReadout(f geometry.Family) error {
	creg, err := l.prog.AddClassicalRegister(
		fmt.Sprintf("%s_data_readout_%d", l.name, l.latticeReadouts+1), l.geo.NumData())
	if err != nil {
		return err
	}
	l.latticeReadouts++
	l.dataReadout = creg

	if f == geometry.FamilyX {
		// H|+> = |0>, H|-> = |1>
		circuit.HAll(l.prog, l.data.Qubits())
	}
	if err := circuit.MeasureAll(l.prog, l.data.Qubits(), creg.Clbits()); err != nil {
		return err
	}
	l.prog.Barrier()

	l.logger.Debug("lattice readout appended", zap.Stringer("family", f), zap.Int("readout", l.latticeReadouts))
	return l.prog.Err()
}

// Identity appends an identity on every data, syndrome and ancilla unit.
// Noise models attach idle errors to these operations.
// Complexity: O(d²).
func (l *Lattice) Identity() error {
	for _, r := range []circuit.QuantumRegister{l.data, l.mz, l.mx, l.ancilla} {
		circuit.IAll(l.prog, r.Qubits())
	}
	l.prog.Barrier()
	return l.prog.Err()
}

// IdentityData appends an identity on the data units only.
// Complexity: O(d²).
func (l *Lattice) IdentityData() error {
	circuit.IAll(l.prog, l.data.Qubits())
	l.prog.Barrier()
	return l.prog.Err()
}

// ResetXPlus prepares logical |+>: reset then H on every data unit.
// Complexity: O(d²).
func (l *Lattice) ResetXPlus() error {
	circuit.ResetAll(l.prog, l.data.Qubits())
	circuit.HAll(l.prog, l.data.Qubits())
	l.prog.Barrier()
	return l.prog.Err()
}

// ResetZPlus prepares logical |0>: reset every data unit.
// Complexity: O(d²).
func (l *Lattice) ResetZPlus() error {
	circuit.ResetAll(l.prog, l.data.Qubits())
	l.prog.Barrier()
	return l.prog.Err()
}
