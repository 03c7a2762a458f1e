package puzzle

import (
	"fmt"

	"github.com/katalvlaran/burrsolve/voxel"
)

// SimpleAssembly is a flat in-memory Assembly: one position and
// orientation per piece, indexed by piece number.
type SimpleAssembly struct {
	positions    []voxel.Position
	orientations []voxel.Orientation
}

// NewAssembly builds a SimpleAssembly from parallel position and
// orientation slices, which must have equal length.
func NewAssembly(positions []voxel.Position, orientations []voxel.Orientation) (*SimpleAssembly, error) {
	if len(positions) != len(orientations) {
		return nil, fmt.Errorf("%w: %d positions, %d orientations", ErrPlacementCountMismatch, len(positions), len(orientations))
	}
	return &SimpleAssembly{
		positions:    append([]voxel.Position(nil), positions...),
		orientations: append([]voxel.Orientation(nil), orientations...),
	}, nil
}

// PlacementCount returns the number of placed pieces.
func (a *SimpleAssembly) PlacementCount() int {
	return len(a.positions)
}

// Position returns piece i's placed position.
func (a *SimpleAssembly) Position(i int) voxel.Position {
	return a.positions[i]
}

// Orientation returns piece i's placed orientation.
func (a *SimpleAssembly) Orientation(i int) voxel.Orientation {
	return a.orientations[i]
}
