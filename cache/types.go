package cache

import "github.com/katalvlaran/burrsolve/voxel"

// Gap is the per-axis result of a Query: how far, in voxel units, shape
// j may slide in the positive direction along each axis before a
// collision with shape i, clamped to voxel.InfinityDistance.
type Gap struct {
	X, Y, Z int
}

// key identifies one memoised query. Shapes are compared by pointer
// identity, which is correct because a *voxel.Shape is immutable; the
// puzzle layer hands out one pointer per registered ShapeID (see
// puzzle.ShapeCatalog), so two ids registered with equal geometry get
// separate cache entries.
type key struct {
	dx, dy, dz     int
	oi, oj         voxel.Orientation
	shapeI, shapeJ *voxel.Shape
}
