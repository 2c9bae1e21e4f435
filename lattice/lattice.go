// SPDX-License-Identifier: MIT
// Package: surfacecode/lattice
//
// lattice.go: register allocation and the Lattice type.
//
// Contract:
//   • New checks every register name before touching the Program.
//   • Plaquette protocols are bound once, at construction.
//   • Counters start at -1 and only count allocated registers.

package lattice

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/geometry"
	"github.com/katalvlaran/surfacecode/stabilizer"
)

// Lattice is one logical qubit laid onto a shared Program.
type Lattice struct {
	name   string
	prog   circuit.Program
	geo    *geometry.Geometry
	logger *zap.Logger

	data    circuit.QuantumRegister
	mz      circuit.QuantumRegister
	mx      circuit.QuantumRegister
	ancilla circuit.QuantumRegister

	// xs then zs, in plaquette index order
	xs []*stabilizer.Instance
	zs []*stabilizer.Instance

	round           int
	readouts        int
	latticeReadouts int

	syndromes   []circuit.ClassicalRegister
	readout     circuit.ClassicalRegister
	dataReadout circuit.ClassicalRegister
}

// New validates params, derives the geometry, allocates the four registers
// on prog and binds every plaquette to its stabilizer protocol.
// The distance and all four register names are checked before anything
// touches prog, so a failed New leaves prog unchanged.
// Complexity: O(d²) time and space.
func New(prog circuit.Program, params Params, opts ...Option) (*Lattice, error) {
	if err := geometry.CheckDistance(params.Distance); err != nil {
		return nil, err
	}
	if prog == nil {
		return nil, ErrNilProgram
	}
	cfg := newConfig(opts)

	geo, err := geometry.New(params.Distance)
	if err != nil {
		return nil, err
	}

	l := &Lattice{
		name:            cfg.name,
		prog:            prog,
		geo:             geo,
		logger:          cfg.logger.With(zap.String("lattice", cfg.name)),
		round:           -1,
		readouts:        -1,
		latticeReadouts: -1,
	}

	regs := []struct {
		dst  *circuit.QuantumRegister
		name string
		size int
	}{
		{&l.data, cfg.name + "_data", geo.NumData()},
		{&l.mz, cfg.name + "_mz", geo.NumSyndrome()},
		{&l.mx, cfg.name + "_mx", geo.NumSyndrome()},
		{&l.ancilla, cfg.name + "_ancilla", 1},
	}
	for _, r := range regs {
		if prog.Has(r.name) {
			return nil, fmt.Errorf("lattice %q: %w: %q", cfg.name, circuit.ErrDuplicateRegister, r.name)
		}
	}
	// plaquettes bind to the planned registers; prog is touched last
	for _, r := range regs {
		*r.dst = circuit.QuantumRegister{Name: r.name, Size: r.size}
	}
	if l.xs, err = l.bind(geometry.FamilyX, l.mx); err != nil {
		return nil, err
	}
	if l.zs, err = l.bind(geometry.FamilyZ, l.mz); err != nil {
		return nil, err
	}

	for _, r := range regs {
		if *r.dst, err = prog.AddQuantumRegister(r.name, r.size); err != nil {
			return nil, err
		}
	}

	l.logger.Debug("lattice built",
		zap.Int("distance", geo.Distance()),
		zap.Int("data", geo.NumData()),
		zap.Int("syndromes", geo.NumSyndrome()))

	return l, nil
}

func (l *Lattice) bind(f geometry.Family, syn circuit.QuantumRegister) ([]*stabilizer.Instance, error) {
	kind := stabilizer.ForFamily(f)
	ps := l.geo.Plaquettes(f)
	out := make([]*stabilizer.Instance, 0, len(ps))
	for _, p := range ps {
		in, err := stabilizer.Bind(kind, p, syn, l.data)
		if err != nil {
			return nil, fmt.Errorf("lattice %q: %w", l.name, err)
		}
		out = append(out, in)
	}
	return out, nil
}

// Name returns the register prefix.
func (l *Lattice) Name() string { return l.name }

// Distance returns d.
func (l *Lattice) Distance() int { return l.geo.Distance() }

// Geometry returns the immutable layout.
func (l *Lattice) Geometry() *geometry.Geometry { return l.geo }

// Program returns the program operations are appended to.
func (l *Lattice) Program() circuit.Program { return l.prog }

// Round returns the index of the last stabilization round, -1 before the first.
func (l *Lattice) Round() int { return l.round }

// Readouts returns the index of the last logical readout, -1 before the first.
func (l *Lattice) Readouts() int { return l.readouts }

// LatticeReadouts returns the index of the last lattice readout, -1 before the first.
func (l *Lattice) LatticeReadouts() int { return l.latticeReadouts }

// DataRegister returns the data register.
func (l *Lattice) DataRegister() circuit.QuantumRegister { return l.data }

// SyndromeRegister returns the register of family f.
func (l *Lattice) SyndromeRegister(f geometry.Family) circuit.QuantumRegister {
	if f == geometry.FamilyX {
		return l.mx
	}
	return l.mz
}

// AncillaRegister returns the single-unit readout ancilla register.
func (l *Lattice) AncillaRegister() circuit.QuantumRegister { return l.ancilla }

// RoundRegister returns the classical register of round t.
// Complexity: O(1).
func (l *Lattice) RoundRegister(t int) (circuit.ClassicalRegister, bool) {
	if t < 0 || t >= len(l.syndromes) {
		return circuit.ClassicalRegister{}, false
	}
	return l.syndromes[t], true
}

// ReadoutRegister returns the register of the most recent logical readout.
func (l *Lattice) ReadoutRegister() (circuit.ClassicalRegister, bool) {
	return l.readout, l.readouts >= 0
}

// DataReadoutRegister returns the register of the most recent lattice readout.
func (l *Lattice) DataReadoutRegister() (circuit.ClassicalRegister, bool) {
	return l.dataReadout, l.latticeReadouts >= 0
}
