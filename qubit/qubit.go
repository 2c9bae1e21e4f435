// SPDX-License-Identifier: MIT
// Package: surfacecode/qubit
//
// qubit.go: the user-facing logical qubit.
//
// Contract:
//   • A Qubit pairs one Lattice with a Decoder over the same Geometry.
//   • Memory needs at least one round and a basis of X or Z.

package qubit

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/geometry"
	"github.com/katalvlaran/surfacecode/lattice"
	"github.com/katalvlaran/surfacecode/readout"
)

// Qubit is one logical qubit: the lattice that appends its operations and
// the decoder that reads its records back.
type Qubit struct {
	lat    *lattice.Lattice
	dec    *readout.Decoder
	logger *zap.Logger
	idle   bool
	final  readout.Type
}

// New builds a logical qubit on p. Errors are those of lattice.New.
func New(p circuit.Program, params lattice.Params, opts ...Option) (*Qubit, error) {
	return build(p, params, newConfig(lattice.DefaultName, opts))
}

func build(p circuit.Program, params lattice.Params, cfg config) (*Qubit, error) {
	lat, err := lattice.New(p, params, lattice.WithName(cfg.name), lattice.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}
	decOpts := []readout.Option{readout.WithLogger(cfg.logger)}
	if cfg.workers > 0 {
		decOpts = append(decOpts, readout.WithWorkers(cfg.workers))
	}
	return &Qubit{
		lat:    lat,
		dec:    readout.NewDecoder(lat.Geometry(), decOpts...),
		logger: cfg.logger.With(zap.String("qubit", cfg.name)),
		idle:   cfg.idle,
	}, nil
}

// Name returns the register prefix.
func (q *Qubit) Name() string { return q.lat.Name() }

// Distance returns the code distance.
func (q *Qubit) Distance() int { return q.lat.Distance() }

// Program returns the program operations are appended to.
func (q *Qubit) Program() circuit.Program { return q.lat.Program() }

// Lattice exposes the underlying lattice for register-level access.
func (q *Qubit) Lattice() *lattice.Lattice { return q.lat }

// Decoder returns the decoder bound to this qubit's geometry.
func (q *Qubit) Decoder() *readout.Decoder { return q.dec }

// FinalReadout returns the basis of the most recent lattice readout,
// TypeNone if there was none.
func (q *Qubit) FinalReadout() readout.Type { return q.final }

// Stabilize appends one stabilization round.
func (q *Qubit) Stabilize() error { return q.lat.Stabilize() }

// Identity appends an identity layer on every unit.
func (q *Qubit) Identity() error { return q.lat.Identity() }

// IdentityData appends an identity layer on the data units.
func (q *Qubit) IdentityData() error { return q.lat.IdentityData() }

// ResetXPlus prepares logical |+>.
func (q *Qubit) ResetXPlus() error { return q.lat.ResetXPlus() }

// ResetZPlus prepares logical |0>.
func (q *Qubit) ResetZPlus() error { return q.lat.ResetZPlus() }

// LogicalX applies the logical X operator.
func (q *Qubit) LogicalX() error { return q.lat.LogicalX() }

// LogicalZ applies the logical Z operator.
func (q *Qubit) LogicalZ() error { return q.lat.LogicalZ() }

// ReadoutX measures logical X through the ancilla.
func (q *Qubit) ReadoutX() error { return q.lat.ReadoutX() }

// ReadoutZ measures logical Z through the ancilla.
func (q *Qubit) ReadoutZ() error { return q.lat.ReadoutZ() }

// LatticeReadoutX measures every data unit in the X basis and records X as
// the final readout basis.
func (q *Qubit) LatticeReadoutX() error {
	if err := q.lat.LatticeReadoutX(); err != nil {
		return err
	}
	q.final = readout.TypeX
	return nil
}

// LatticeReadoutZ measures every data unit in the Z basis and records Z as
// the final readout basis.
func (q *Qubit) LatticeReadoutZ() error {
	if err := q.lat.LatticeReadoutZ(); err != nil {
		return err
	}
	q.final = readout.TypeZ
	return nil
}

// Memory appends a memory experiment: prepare the +1 eigenstate of basis,
// run rounds stabilization rounds (each preceded by an identity layer when
// WithIdle is set) and finish with a lattice readout in the same basis.
// At least one round is required: the decoder needs a syndrome register to
// compare the final readout against.
// Complexity: O(rounds·d²) operations appended.
func (q *Qubit) Memory(basis readout.Type, rounds int) error {
	f, ok := basis.Family()
	if !ok {
		return fmt.Errorf("%w: %v", ErrMemoryBasis, basis)
	}
	if rounds < 1 {
		return fmt.Errorf("%w: %d", ErrRounds, rounds)
	}

	prepare, measure := q.ResetZPlus, q.LatticeReadoutZ
	if f == geometry.FamilyX {
		prepare, measure = q.ResetXPlus, q.LatticeReadoutX
	}
	if err := prepare(); err != nil {
		return err
	}
	for r := 0; r < rounds; r++ {
		if q.idle {
			if err := q.Identity(); err != nil {
				return err
			}
		}
		if err := q.Stabilize(); err != nil {
			return err
		}
	}
	if err := measure(); err != nil {
		return err
	}

	q.logger.Info("memory experiment appended",
		zap.Stringer("basis", basis),
		zap.Int("rounds", rounds),
		zap.Bool("idle", q.idle))
	return nil
}

// ParseReadout decodes record using the remembered final readout basis.
func (q *Qubit) ParseReadout(record string) (readout.Result, error) {
	return q.dec.Parse(record, q.final)
}

// ParseReadoutAs decodes record with an explicit final readout basis.
func (q *Qubit) ParseReadoutAs(record string, t readout.Type) (readout.Result, error) {
	return q.dec.Parse(record, t)
}

// DecodeCounts decodes a backend histogram using the remembered final readout basis.
func (q *Qubit) DecodeCounts(ctx context.Context, counts map[string]int) ([]readout.Shot, error) {
	return q.dec.DecodeCounts(ctx, counts, q.final)
}
