// SPDX-License-Identifier: MIT

package stabilizer

import (
	"fmt"

	"github.com/katalvlaran/surfacecode/circuit"
	"github.com/katalvlaran/surfacecode/geometry"
)

// Kind selects the stabilizer protocol.
type Kind int

const (
	// KindX measures X parity: the syndrome unit acts as control in the X basis.
	KindX Kind = iota
	// KindZ measures Z parity: data units act as controls into the syndrome unit.
	KindZ
)

// ForFamily returns the protocol measuring family f.
func ForFamily(f geometry.Family) Kind {
	if f == geometry.FamilyX {
		return KindX
	}
	return KindZ
}

func (k Kind) String() string {
	switch k {
	case KindX:
		return "XXXX"
	case KindZ:
		return "ZZZZ"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Slot is an optional unit reference. The zero value is empty.
type Slot struct {
	q  circuit.Qubit
	ok bool
}

// Use returns a filled slot.
func Use(q circuit.Qubit) Slot { return Slot{q: q, ok: true} }

// Empty returns a slot truncated by the lattice boundary.
func Empty() Slot { return Slot{} }

// Get returns the unit and whether the slot is filled.
func (s Slot) Get() (circuit.Qubit, bool) { return s.q, s.ok }

// Slots is the five-unit shape shared by both protocols.
type Slots struct {
	Syndrome    circuit.Qubit
	TopLeft     Slot
	TopRight    Slot
	BottomLeft  Slot
	BottomRight Slot
}
