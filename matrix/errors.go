package matrix

import "errors"

// ErrPieceCountMismatch is returned by Build when the supplied node or
// shape slice does not match the matrix's piece count.
var ErrPieceCountMismatch = errors.New("matrix: piece count mismatch")
