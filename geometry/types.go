// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// Family selects one of the two interleaved syndrome families.
type Family int

const (
	// FamilyX measures X⊗X⊗X⊗X parity (register short name "mx").
	FamilyX Family = iota
	// FamilyZ measures Z⊗Z⊗Z⊗Z parity (register short name "mz").
	FamilyZ
)

// Families lists both families in construction order: X first, then Z.
func Families() []Family { return []Family{FamilyX, FamilyZ} }

// String returns "X-type" or "Z-type".
func (f Family) String() string {
	switch f {
	case FamilyX:
		return "X-type"
	case FamilyZ:
		return "Z-type"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// ShortName returns the register suffix used for the family's syndrome units.
func (f Family) ShortName() string {
	if f == FamilyX {
		return "mx"
	}
	return "mz"
}

// Neighbor is an optional data-position index. The zero value is absent.
type Neighbor struct {
	index   int
	present bool
}

// At returns a present Neighbor pointing at data index i.
func At(i int) Neighbor { return Neighbor{index: i, present: true} }

// Absent returns a Neighbor truncated by the lattice boundary.
func Absent() Neighbor { return Neighbor{} }

// Index returns the data index and whether the neighbor is present.
func (n Neighbor) Index() (int, bool) { return n.index, n.present }

// Present reports whether the neighbor exists.
func (n Neighbor) Present() bool { return n.present }

func (n Neighbor) String() string {
	if !n.present {
		return "-"
	}
	return fmt.Sprintf("%d", n.index)
}

// Plaquette is one syndrome unit together with its neighboring data positions.
type Plaquette struct {
	Syndrome    int
	TopLeft     Neighbor
	TopRight    Neighbor
	BottomLeft  Neighbor
	BottomRight Neighbor
}

// Neighbors returns the four neighbor slots in (tl, tr, bl, br) order.
func (p Plaquette) Neighbors() [4]Neighbor {
	return [4]Neighbor{p.TopLeft, p.TopRight, p.BottomLeft, p.BottomRight}
}

// Weight returns the number of present neighbors (2 on a boundary, 4 inside).
func (p Plaquette) Weight() int {
	w := 0
	for _, n := range p.Neighbors() {
		if n.present {
			w++
		}
	}
	return w
}

// Geometry is the immutable layout of one rotated surface-code lattice.
type Geometry struct {
	distance int
	numData  int
	numSyn   int
	x        []Plaquette
	z        []Plaquette
}
