// SPDX-License-Identifier: MIT

package circuit

import "errors"

var (
	// ErrDuplicateRegister indicates a register name that is already allocated.
	// Lattices sharing a program must use distinct name prefixes.
	ErrDuplicateRegister = errors.New("circuit: duplicate register name")

	// ErrBadSize indicates a negative register size or mismatched group sizes.
	ErrBadSize = errors.New("circuit: invalid size")

	// ErrUnknownUnit indicates a reference to a register or index that was never allocated.
	ErrUnknownUnit = errors.New("circuit: unknown unit")

	// ErrSameUnit indicates a two-unit operation whose units coincide.
	ErrSameUnit = errors.New("circuit: control and target are the same unit")
)
