// SPDX-License-Identifier: MIT

package stabilizer

import (
	"fmt"

	"github.com/katalvlaran/surfacecode/geometry"
)

// ErrInconsistentConnections indicates slots whose present/absent pattern
// the protocol cannot measure. It wraps geometry.ErrInconsistentBoundary, so
// both sentinels match with errors.Is.
var ErrInconsistentConnections = fmt.Errorf("stabilizer: inconsistent syndrome connections: %w",
	geometry.ErrInconsistentBoundary)
