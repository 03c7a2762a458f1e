package disassembler

import "errors"

// ErrPieceCountMismatch is returned when an Assembly's placement count
// does not match its Puzzle's piece count.
var ErrPieceCountMismatch = errors.New("disassembler: assembly and puzzle disagree on piece count")
