package grouping

import "github.com/katalvlaran/burrsolve/voxel"

// GroupID names a shape-equivalence class: a set of shapes the puzzle
// definition declares interchangeable for disassembly purposes.
type GroupID int

// ShapeGrouper exposes the subset of a puzzle's shape catalog Grouping
// needs. A shape may belong to more than one group (GroupCount > 1);
// group membership and capacity are otherwise puzzle-defined and opaque
// to this package. puzzle.ShapeCatalog implements this interface.
type ShapeGrouper interface {
	// GroupCount returns how many groups shape belongs to.
	GroupCount(shape voxel.ShapeID) int
	// Group returns the index-th group (0 <= index < GroupCount(shape))
	// that shape belongs to.
	Group(shape voxel.ShapeID, index int) GroupID
	// GroupCapacity returns how many pieces the puzzle definition
	// expects in total for group g.
	GroupCapacity(g GroupID) int
}

// Grouping accounts for shape-equivalence classes against a ShapeGrouper
// catalog. The zero value is not usable; create one with New.
type Grouping struct {
	grouper   ShapeGrouper
	remaining map[GroupID]int
}

// New returns a Grouping backed by the given catalog.
func New(grouper ShapeGrouper) *Grouping {
	return &Grouping{grouper: grouper}
}
