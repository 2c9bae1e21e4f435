// SPDX-License-Identifier: MIT

package lattice

import "errors"

// ErrNilProgram indicates that New was called without a program to append to.
var ErrNilProgram = errors.New("lattice: program is nil")
