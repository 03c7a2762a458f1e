package puzzle

import "errors"

// ErrUnknownShape is returned when a piece or group references a shape
// id that was never registered with the Builder.
var ErrUnknownShape = errors.New("puzzle: unknown shape id")

// ErrNoPieces is returned by Build when no pieces were registered at all.
var ErrNoPieces = errors.New("puzzle: no pieces registered")

// ErrPlacementCountMismatch is returned by NewAssembly when the
// position and orientation slices have different lengths.
var ErrPlacementCountMismatch = errors.New("puzzle: placement count mismatch")
