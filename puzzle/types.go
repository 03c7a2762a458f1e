package puzzle

import (
	"github.com/katalvlaran/burrsolve/grouping"
	"github.com/katalvlaran/burrsolve/voxel"
)

// Assembly is one placement of every piece of a Puzzle: the starting
// configuration the disassembler searches from. Corresponds to
// spec.md §6's assembly_c contract.
type Assembly interface {
	// PlacementCount returns the number of pieces placed, which must
	// equal the owning Puzzle's PieceCount.
	PlacementCount() int
	// Position returns piece i's placed position.
	Position(i int) voxel.Position
	// Orientation returns piece i's placed orientation.
	Orientation(i int) voxel.Orientation
}

// ShapeCatalog exposes per-shape geometry, weight, and equivalence-group
// membership. It implements grouping.ShapeGrouper directly so a
// Puzzle's catalog can be handed straight to grouping.New.
type ShapeCatalog interface {
	grouping.ShapeGrouper

	// ShapeCount returns the number of distinct shapes in the catalog.
	ShapeCount() int
	// Shape returns the geometry for shape id.
	Shape(id voxel.ShapeID) *voxel.Shape
	// Weight returns the tie-breaking weight for shape id.
	Weight(id voxel.ShapeID) voxel.Weight
}

// Puzzle is the piece/shape definition the disassembler solves against.
// Corresponds to spec.md §6's puzzle_c contract.
type Puzzle interface {
	// PieceCount returns the number of individual pieces (placements).
	PieceCount() int
	// PieceShape returns which shape piece i is an instance of.
	PieceShape(piece int) voxel.ShapeID
	// Shapes returns the puzzle's shape catalog.
	Shapes() ShapeCatalog
}
