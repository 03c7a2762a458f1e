package puzzle

import (
	"github.com/katalvlaran/burrsolve/grouping"
	"github.com/katalvlaran/burrsolve/voxel"
)

type shapeInfo struct {
	shape  *voxel.Shape
	weight voxel.Weight
	groups []groupMembership
}

type groupMembership struct {
	id       int
	capacity int
}

// Definition is a small in-memory Puzzle and ShapeCatalog, assembled by
// Builder.
type Definition struct {
	pieces []voxel.ShapeID
	shapes map[voxel.ShapeID]*shapeInfo
}

// PieceCount returns the number of pieces.
func (d *Definition) PieceCount() int {
	return len(d.pieces)
}

// PieceShape returns which shape piece i is an instance of.
func (d *Definition) PieceShape(piece int) voxel.ShapeID {
	return d.pieces[piece]
}

// Shapes returns d itself, since Definition implements ShapeCatalog directly.
func (d *Definition) Shapes() ShapeCatalog {
	return d
}

// ShapeCount returns the number of distinct registered shapes.
func (d *Definition) ShapeCount() int {
	return len(d.shapes)
}

// Shape returns the geometry registered for id.
func (d *Definition) Shape(id voxel.ShapeID) *voxel.Shape {
	info, ok := d.shapes[id]
	if !ok {
		return nil
	}
	return info.shape
}

// Weight returns the weight registered for id.
func (d *Definition) Weight(id voxel.ShapeID) voxel.Weight {
	info, ok := d.shapes[id]
	if !ok {
		return 0
	}
	return info.weight
}

// GroupCount implements grouping.ShapeGrouper.
func (d *Definition) GroupCount(shape voxel.ShapeID) int {
	info, ok := d.shapes[shape]
	if !ok {
		return 0
	}
	return len(info.groups)
}

// Group implements grouping.ShapeGrouper.
func (d *Definition) Group(shape voxel.ShapeID, index int) grouping.GroupID {
	return grouping.GroupID(d.shapes[shape].groups[index].id)
}

// GroupCapacity implements grouping.ShapeGrouper. Every membership entry
// for a group carries the same registered capacity, so the first match
// across all shapes answers for the whole group.
func (d *Definition) GroupCapacity(g grouping.GroupID) int {
	for _, info := range d.shapes {
		for _, m := range info.groups {
			if grouping.GroupID(m.id) == g {
				return m.capacity
			}
		}
	}
	return 0
}

// PieceWeights returns the per-piece weight table in piece order, the
// form matrix and moves consume.
func (d *Definition) PieceWeights() []voxel.Weight {
	out := make([]voxel.Weight, len(d.pieces))
	for i, sh := range d.pieces {
		out[i] = d.Weight(sh)
	}
	return out
}

// PieceShapes returns the per-piece shape geometry table in piece order,
// the form matrix.Build consumes.
func (d *Definition) PieceShapes() []*voxel.Shape {
	out := make([]*voxel.Shape, len(d.pieces))
	for i, sh := range d.pieces {
		out[i] = d.Shape(sh)
	}
	return out
}
