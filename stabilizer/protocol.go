// SPDX-License-Identifier: MIT
// Package: surfacecode/stabilizer
//
// protocol.go: the X-type and Z-type parity protocols.
//
// Contract:
//   • Slots are validated in pairs before an Instance exists.
//   • Entangle appends operations only; it never measures or resets.

package stabilizer

import (
	"fmt"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/geometry"
)

// Validate checks that the slots form a pattern kind k can measure.
// KindX needs the top pair and the bottom pair each filled together;
// KindZ needs the right pair and the left pair each filled together.
// Complexity: O(1).
func (k Kind) Validate(s Slots) error {
	var a1, a2, b1, b2 Slot
	var pa, pb string
	if k == KindX {
		a1, a2, pa = s.TopLeft, s.TopRight, "top_left/top_right"
		b1, b2, pb = s.BottomLeft, s.BottomRight, "bottom_left/bottom_right"
	} else {
		a1, a2, pa = s.TopRight, s.BottomRight, "top_right/bottom_right"
		b1, b2, pb = s.TopLeft, s.BottomLeft, "top_left/bottom_left"
	}
	if a1.ok != a2.ok {
		return fmt.Errorf("%w: %s syndrome %v has mismatched %s", ErrInconsistentConnections, k, s.Syndrome, pa)
	}
	if b1.ok != b2.ok {
		return fmt.Errorf("%w: %s syndrome %v has mismatched %s", ErrInconsistentConnections, k, s.Syndrome, pb)
	}

	return nil
}

// Instance is a validated protocol bound to concrete units.
type Instance struct {
	kind  Kind
	slots Slots
}

// New validates slots for kind k and returns the bound protocol.
func New(k Kind, s Slots) (*Instance, error) {
	if err := k.Validate(s); err != nil {
		return nil, err
	}
	return &Instance{kind: k, slots: s}, nil
}

// Bind maps a geometry plaquette onto the syndrome and data registers.
func Bind(k Kind, p geometry.Plaquette, syndromes, data circuit.QuantumRegister) (*Instance, error) {
	slot := func(n geometry.Neighbor) Slot {
		if i, ok := n.Index(); ok {
			return Use(data.Qubit(i))
		}
		return Empty()
	}
	return New(k, Slots{
		Syndrome:    syndromes.Qubit(p.Syndrome),
		TopLeft:     slot(p.TopLeft),
		TopRight:    slot(p.TopRight),
		BottomLeft:  slot(p.BottomLeft),
		BottomRight: slot(p.BottomRight),
	})
}

// Kind returns the protocol variant.
func (in *Instance) Kind() Kind { return in.kind }

// Slots returns the bound units.
func (in *Instance) Slots() Slots { return in.slots }

// Entangle appends the protocol's operations to p.
// Complexity: O(1), at most six operations.
func (in *Instance) Entangle(p circuit.Program) error {
	s := in.slots
	switch in.kind {
	case KindX:
		// reverse "Z" traversal
		p.H(s.Syndrome)
		if tr, ok := s.TopRight.Get(); ok {
			tl, _ := s.TopLeft.Get()
			p.CX(s.Syndrome, tr)
			p.CX(s.Syndrome, tl)
		}
		if br, ok := s.BottomRight.Get(); ok {
			bl, _ := s.BottomLeft.Get()
			p.CX(s.Syndrome, br)
			p.CX(s.Syndrome, bl)
		}
		p.H(s.Syndrome)
	case KindZ:
		// reverse "N" traversal
		if tr, ok := s.TopRight.Get(); ok {
			br, _ := s.BottomRight.Get()
			p.CX(tr, s.Syndrome)
			p.CX(br, s.Syndrome)
		}
		if tl, ok := s.TopLeft.Get(); ok {
			bl, _ := s.BottomLeft.Get()
			p.CX(tl, s.Syndrome)
			p.CX(bl, s.Syndrome)
		}
	}

	return p.Err()
}
