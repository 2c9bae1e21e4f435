// SPDX-License-Identifier: MIT

package readout

import (
	"errors"
	"fmt"
)

// ErrDecode is the class every decode failure belongs to.
var ErrDecode = errors.New("readout: malformed transcript")

var (
	// ErrEmptyRecord indicates a record with no tokens.
	ErrEmptyRecord = fmt.Errorf("%w: empty record", ErrDecode)

	// ErrTokenLength indicates a token whose length does not match its role.
	ErrTokenLength = fmt.Errorf("%w: wrong token length", ErrDecode)

	// ErrNonBinary indicates a character other than '0' or '1'.
	ErrNonBinary = fmt.Errorf("%w: non-binary character", ErrDecode)

	// ErrMissingReadoutType indicates a full lattice readout without an X/Z selector.
	ErrMissingReadoutType = fmt.Errorf("%w: full lattice readout requires a readout type", ErrDecode)

	// ErrMissingRound indicates a full lattice readout with no preceding round.
	ErrMissingRound = fmt.Errorf("%w: full lattice readout requires a previous syndrome round", ErrDecode)

	// ErrCount indicates a histogram entry whose count is below one.
	ErrCount = fmt.Errorf("%w: non-positive count", ErrDecode)

	// ErrUnknownReadoutType indicates a selector other than "X" or "Z".
	ErrUnknownReadoutType = fmt.Errorf("%w: unknown readout type", ErrDecode)
)
