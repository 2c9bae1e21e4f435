// SPDX-License-Identifier: MIT

package geometry

// Validate checks the truncation invariant of plaquette p for family f.
//
//   - X-type: top pair and bottom pair are each all-present or all-absent.
//   - Z-type: right pair and left pair are each all-present or all-absent.
//
// Returns a *BoundaryError naming the offending pair, nil otherwise.
func Validate(f Family, p Plaquette) error {
	type pair struct {
		a, b Neighbor
		name string
	}
	var pairs [2]pair
	if f == FamilyX {
		pairs = [2]pair{
			{p.TopLeft, p.TopRight, "top_left/top_right"},
			{p.BottomLeft, p.BottomRight, "bottom_left/bottom_right"},
		}
	} else {
		pairs = [2]pair{
			{p.TopRight, p.BottomRight, "top_right/bottom_right"},
			{p.TopLeft, p.BottomLeft, "top_left/bottom_left"},
		}
	}
	for _, pr := range pairs {
		if pr.a.present != pr.b.present {
			return &BoundaryError{Family: f, Syndrome: p.Syndrome, Pair: pr.name}
		}
	}

	return nil
}
