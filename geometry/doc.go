// SPDX-License-Identifier: MIT

// Package geometry derives the plaquette layout of a rotated surface-code
// lattice from a single odd distance d.
//
// What:
//
//   - A d×d grid of data positions indexed row-major 0..d²-1.
//   - Two syndrome families, X-type and Z-type, each holding (d²-1)/2
//     plaquettes. A plaquette records its syndrome index and up to four
//     neighboring data positions (top-left, top-right, bottom-left,
//     bottom-right); boundary truncation is expressed with an explicit
//     optional Neighbor, never with a sentinel integer.
//   - X-type plaquettes sit on d+1 rows; rows 0 and d are boundary rows that
//     keep only their bottom or top pair. Z-type plaquettes alternate which
//     end of each row loses its right or left pair.
//
// Invariants (checked by New, see Validate):
//
//   - X-type: TopRight present ⇔ TopLeft present, BottomRight ⇔ BottomLeft.
//   - Z-type: TopRight present ⇔ BottomRight present, TopLeft ⇔ BottomLeft.
//   - Every referenced data index lies in [0, d²).
//
// A Geometry is immutable once built and safe for concurrent readers.
// Plaquettes are ordered by syndrome index; decoders depend on it.
//
// Complexity:
//
//   - New: O(d²) time and memory.
//   - Membership: O(d²).
//
// Errors:
//
//   - ErrMissingDistance: distance was not supplied (zero value).
//   - ErrInvalidDistance: distance is negative or even.
//   - ErrInconsistentBoundary: a plaquette breaks its family's truncation
//     symmetry (see BoundaryError).
package geometry
