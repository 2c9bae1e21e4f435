// SPDX-License-Identifier: MIT

package qubit

import "errors"

var (
	// ErrQubitIndex indicates a Register index outside [0, Len()).
	ErrQubitIndex = errors.New("qubit: index out of range")

	// ErrRegisterSize indicates a Register with fewer than one qubit.
	ErrRegisterSize = errors.New("qubit: register needs at least one qubit")

	// ErrMemoryBasis indicates a memory experiment basis other than X or Z.
	ErrMemoryBasis = errors.New("qubit: memory basis must be X or Z")

	// ErrRounds indicates a memory experiment with fewer than one round.
	ErrRounds = errors.New("qubit: memory needs at least one round")
)
