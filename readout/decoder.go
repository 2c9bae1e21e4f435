// SPDX-License-Identifier: MIT
// Package: surfacecode/readout
//
// decoder.go: transcript parsing into logical bits and defects.
//
// Contract:
//   • Records are whitespace-separated tokens, most recent register first.
//   • Malformed input returns an error wrapping ErrDecode; nothing panics.
//   • A Decoder is safe for concurrent use once built.

package readout

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/surfacecode/geometry"
)

// Decoder interprets transcripts for one lattice geometry.
// It holds no per-record state and is safe for concurrent use.
type Decoder struct {
	geo     *geometry.Geometry
	logger  *zap.Logger
	workers int
}

// NewDecoder returns a Decoder for g. Panics on nil g.
func NewDecoder(g *geometry.Geometry, opts ...Option) *Decoder {
	if g == nil {
		panic("readout: NewDecoder(nil)")
	}
	cfg := newConfig(opts)
	return &Decoder{geo: g, logger: cfg.logger, workers: cfg.workers}
}

// Geometry returns the layout the decoder was built for.
func (d *Decoder) Geometry() *geometry.Geometry { return d.geo }

// ExtractFinalX recomputes the X half of a stabilizer round from an X-basis
// lattice readout and splices it with the Z half of previous.
// The logical value is the parity of the left-most column.
func (d *Decoder) ExtractFinalX(final, previous string) (int, string, error) {
	return d.extract(geometry.FamilyX, final, previous)
}

// ExtractFinalZ recomputes the Z half of a stabilizer round from a Z-basis
// lattice readout and splices it with the X half of previous.
// The logical value is the parity of the top-most row.
func (d *Decoder) ExtractFinalZ(final, previous string) (int, string, error) {
	return d.extract(geometry.FamilyZ, final, previous)
}

// ExtractFinal dispatches on t. TypeNone yields ErrMissingReadoutType.
// Complexity: O(d²) per call.
func (d *Decoder) ExtractFinal(final, previous string, t Type) (int, string, error) {
	f, ok := t.Family()
	if !ok {
		if t == TypeNone {
			return 0, "", ErrMissingReadoutType
		}
		return 0, "", fmt.Errorf("%w: %v", ErrUnknownReadoutType, t)
	}
	return d.extract(f, final, previous)
}

// extract returns (logical, "X_{N-1}..X_0 Z_{N-1}..Z_0").
func (d *Decoder) extract(f geometry.Family, final, previous string) (int, string, error) {
	n := d.geo.NumSyndrome()
	values, err := parseBits(final, d.geo.NumData(), "lattice readout")
	if err != nil {
		return 0, "", err
	}
	if _, err := parseBits(previous, 2*n, "previous round"); err != nil {
		return 0, "", err
	}

	// plaquette k lands at character n-1-k
	half := make([]byte, n)
	for _, p := range d.geo.Plaquettes(f) {
		var sum uint8
		for _, nb := range p.Neighbors() {
			if i, ok := nb.Index(); ok {
				sum ^= values[i]
			}
		}
		half[n-1-p.Syndrome] = '0' + sum
	}

	var support []int
	var stabilizers string
	if f == geometry.FamilyX {
		support = d.geo.LogicalXSupport()
		stabilizers = string(half) + previous[n:]
	} else {
		support = d.geo.LogicalZSupport()
		stabilizers = previous[:n] + string(half)
	}

	logical := 0
	for _, i := range support {
		logical ^= int(values[i])
	}

	return logical, stabilizers, nil
}

// Parse decodes one record. t is only consulted when the first token is a
// full lattice readout; pass TypeNone for single-bit logical readouts.
// Complexity: O(T·d²) for a record of T tokens.
func (d *Decoder) Parse(record string, t Type) (Result, error) {
	tokens := strings.Fields(record)
	if len(tokens) == 0 {
		return Result{}, ErrEmptyRecord
	}
	first, rounds := tokens[0], tokens[1:]
	n := d.geo.NumSyndrome()

	var res Result
	if len(first) > 1 {
		if len(first) != d.geo.NumData() {
			return Result{}, fmt.Errorf("%w: lattice readout %q has %d characters, want %d",
				ErrTokenLength, first, len(first), d.geo.NumData())
		}
		if t == TypeNone {
			return Result{}, ErrMissingReadoutType
		}
		if len(rounds) == 0 {
			return Result{}, ErrMissingRound
		}
		logical, final, err := d.ExtractFinal(first, rounds[0], t)
		if err != nil {
			return Result{}, err
		}
		res.Logical = logical
		rounds = append([]string{final}, rounds...)
	} else {
		switch first {
		case "0":
		case "1":
			res.Logical = 1
		default:
			return Result{}, fmt.Errorf("%w: logical readout %q", ErrNonBinary, first)
		}
	}

	// oldest round first
	history := make([]bits, len(rounds))
	for i, tok := range rounds {
		b, err := parseBits(tok, 2*n, fmt.Sprintf("round token %d", i+1))
		if err != nil {
			return Result{}, err
		}
		history[len(rounds)-1-i] = b
	}

	for T := 0; T+1 < len(history); T++ {
		flips := xor(history[T], history[T+1])
		for loc := 0; loc < n; loc++ {
			if flips[n+loc] == 1 {
				res.X = append(res.X, XCoord(T, loc))
			}
		}
		for loc := 0; loc < n; loc++ {
			if flips[loc] == 1 {
				res.Z = append(res.Z, ZCoord(T, loc))
			}
		}
	}

	return res, nil
}
