// SPDX-License-Identifier: MIT

package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingDistance indicates that no distance was supplied.
	ErrMissingDistance = errors.New("geometry: distance parameter is required")

	// ErrInvalidDistance indicates a negative or even distance.
	// Only odd d ≥ 1 describes a rotated surface code.
	ErrInvalidDistance = errors.New("geometry: distance must be odd and positive")

	// ErrInconsistentBoundary indicates a plaquette whose absent neighbors
	// break the truncation symmetry of its family. It always signals a
	// geometry bug and is never recovered from.
	ErrInconsistentBoundary = errors.New("geometry: inconsistent plaquette boundary")
)

// BoundaryError identifies the plaquette and the neighbor pair that broke
// the truncation symmetry. errors.Is(err, ErrInconsistentBoundary) holds.
type BoundaryError struct {
	Family   Family
	Syndrome int
	// Pair names the two neighbor slots that disagree, e.g. "top_left/top_right".
	Pair string
}

func (e *BoundaryError) Error() string {
	return fmt.Sprintf("%s: %s plaquette %d has mismatched %s",
		ErrInconsistentBoundary, e.Family, e.Syndrome, e.Pair)
}

// Unwrap lets errors.Is match ErrInconsistentBoundary.
func (e *BoundaryError) Unwrap() error { return ErrInconsistentBoundary }
