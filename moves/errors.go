package moves

import "errors"

// ErrWeightCountMismatch is returned by NewFinder when weights does not
// have one entry per piece tracked by the supplied matrix.
var ErrWeightCountMismatch = errors.New("moves: weight count mismatch")
