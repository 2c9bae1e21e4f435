// SPDX-License-Identifier: MIT
// Package: surfacecode/geometry
//
// geometry.go: plaquette layout of both stabilizer families.
//
// Contract:
//   • New validates the distance before any layout work.
//   • Every plaquette is checked against its family's truncation rule.
//   • A Geometry is immutable; accessors return copies.

package geometry

import "fmt"

// CheckDistance reports whether d can describe a lattice.
// Returns ErrMissingDistance for 0 and ErrInvalidDistance for negative or even d.
// Complexity: O(1).
func CheckDistance(d int) error {
	switch {
	case d == 0:
		return ErrMissingDistance
	case d < 0 || d%2 == 0:
		return fmt.Errorf("%w: got %d", ErrInvalidDistance, d)
	}
	return nil
}

// New derives the plaquette layout for distance d.
// The distance is validated before any layout work begins; every produced
// plaquette is then checked against its family's truncation invariant.
// Complexity: O(d²) time and memory.
func New(d int) (*Geometry, error) {
	if err := CheckDistance(d); err != nil {
		return nil, err
	}
	g := &Geometry{
		distance: d,
		numData:  d * d,
		numSyn:   (d*d - 1) / 2,
	}
	g.x = g.buildX()
	g.z = g.buildZ()

	for _, f := range Families() {
		for _, p := range g.family(f) {
			if err := Validate(f, p); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// buildX lays out X-type plaquettes on rows 0..d. Rows 0 and d keep only
// their bottom and top pairs; interior rows shift by the row parity.
func (g *Geometry) buildX() []Plaquette {
	d := g.distance
	perRow := (d - 1) / 2
	out := make([]Plaquette, 0, g.numSyn)
	for syn := 0; syn < g.numSyn; syn++ {
		row := syn / perRow
		offset := syn % perRow
		start := (row - 1) * d
		parity := row % 2

		p := Plaquette{Syndrome: syn}
		switch row {
		case 0:
			p.BottomLeft = At(syn * 2)
			p.BottomRight = At(syn*2 + 1)
		case d:
			p.TopLeft = At(syn*2 + 1)
			p.TopRight = At(syn*2 + 2)
		default:
			col := offset*2 + parity
			p.TopLeft = At(start + col)
			p.TopRight = At(start + col + 1)
			p.BottomLeft = At(start + d + col)
			p.BottomRight = At(start + d + col + 1)
		}
		out = append(out, p)
	}

	return out
}

// buildZ lays out Z-type plaquettes. Even rows drop the right pair of their
// last plaquette, odd rows drop the left pair of their first one.
func (g *Geometry) buildZ() []Plaquette {
	d := g.distance
	perRow := (d + 1) / 2
	out := make([]Plaquette, 0, g.numSyn)
	for syn := 0; syn < g.numSyn; syn++ {
		row := syn / perRow
		offset := syn % perRow
		start := row * d
		parity := row % 2
		col := offset*2 - parity

		p := Plaquette{
			Syndrome:    syn,
			TopLeft:     At(start + col),
			TopRight:    At(start + col + 1),
			BottomLeft:  At(start + d + col),
			BottomRight: At(start + d + col + 1),
		}
		if parity == 0 && offset == perRow-1 {
			p.TopRight, p.BottomRight = Absent(), Absent()
		} else if parity == 1 && offset == 0 {
			p.TopLeft, p.BottomLeft = Absent(), Absent()
		}
		out = append(out, p)
	}

	return out
}

func (g *Geometry) family(f Family) []Plaquette {
	if f == FamilyX {
		return g.x
	}
	return g.z
}

// Distance returns d.
func (g *Geometry) Distance() int { return g.distance }

// NumData returns d², the number of data positions.
func (g *Geometry) NumData() int { return g.numData }

// NumSyndrome returns (d²-1)/2, the size of each syndrome family.
func (g *Geometry) NumSyndrome() int { return g.numSyn }

// Plaquettes returns a copy of the family's plaquettes in index order.
// Complexity: O(n) time and space for n = (d²-1)/2 plaquettes.
func (g *Geometry) Plaquettes(f Family) []Plaquette {
	src := g.family(f)
	out := make([]Plaquette, len(src))
	copy(out, src)
	return out
}

// Plaquette returns plaquette i of family f.
// The second result is false when i is out of range.
// Complexity: O(1).
func (g *Geometry) Plaquette(f Family, i int) (Plaquette, bool) {
	src := g.family(f)
	if i < 0 || i >= len(src) {
		return Plaquette{}, false
	}
	return src[i], true
}

// LogicalXSupport returns the left-most column: 0, d, 2d, ...
// Complexity: O(d).
func (g *Geometry) LogicalXSupport() []int {
	out := make([]int, 0, g.distance)
	for i := 0; i < g.numData; i += g.distance {
		out = append(out, i)
	}
	return out
}

// LogicalZSupport returns the top-most row: 0..d-1.
// Complexity: O(d).
func (g *Geometry) LogicalZSupport() []int {
	out := make([]int, g.distance)
	for i := range out {
		out[i] = i
	}
	return out
}

// Coordinate converts a row-major data index to (row, col).
// Complexity: O(1).
func (g *Geometry) Coordinate(idx int) (row, col int) {
	return idx / g.distance, idx % g.distance
}

// Index converts (row, col) to a row-major data index.
// The second result is false when the position lies outside the grid.
// Complexity: O(1).
func (g *Geometry) Index(row, col int) (int, bool) {
	if row < 0 || row >= g.distance || col < 0 || col >= g.distance {
		return 0, false
	}
	return row*g.distance + col, true
}

// Membership returns, for data index idx, the syndrome indices of every
// plaquette of each family that lists idx as a neighbor.
// Complexity: O(d²), a scan of both families.
func (g *Geometry) Membership(idx int) map[Family][]int {
	out := make(map[Family][]int, 2)
	for _, f := range Families() {
		for _, p := range g.family(f) {
			for _, n := range p.Neighbors() {
				if i, ok := n.Index(); ok && i == idx {
					out[f] = append(out[f], p.Syndrome)
					break
				}
			}
		}
	}
	return out
}
