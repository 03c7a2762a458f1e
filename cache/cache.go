package cache

import (
	"sync"

	"github.com/katalvlaran/burrsolve/voxel"
)

// Cache memoises Query results. The zero value is not usable; create
// one with New. A Cache is safe for concurrent use, though spec.md's
// concurrency model (single-threaded cooperative BFS) never exercises
// that beyond incidental safety.
type Cache struct {
	mu    sync.RWMutex
	store map[key]Gap
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{store: make(map[key]Gap)}
}

// Query returns the per-axis gap shapeJ (at orientation oj, offset
// (dx,dy,dz) relative to shapeI) may slide in the positive direction of
// each axis before colliding with shapeI (at orientation oi).
//
// For a given axis, shapeJ and shapeI's occupied cells are grouped into
// columns perpendicular to that axis (see voxel.Columns). A column
// constrains positive movement only when shapeJ's highest cell in that
// column sits below shapeI's lowest cell in the same column; the gap
// for that column is the distance between them, minus one. The overall
// per-axis gap is the minimum across all constraining columns, or
// voxel.InfinityDistance if no column constrains that axis.
//
// Symmetric pairs yield symmetric answers: swapping i and j and
// negating the offset asks the same geometric question from the other
// piece's frame and is handled by the caller (matrix.Build) rather than
// by this function, which always answers "how far can j move away from
// i" for the arguments as given.
func (c *Cache) Query(dx, dy, dz int, oi, oj voxel.Orientation, shapeI, shapeJ *voxel.Shape) Gap {
	k := key{dx: dx, dy: dy, dz: dz, oi: oi, oj: oj, shapeI: shapeI, shapeJ: shapeJ}

	c.mu.RLock()
	if g, ok := c.store[k]; ok {
		c.mu.RUnlock()
		return g
	}
	c.mu.RUnlock()

	g := compute(dx, dy, dz, oi, oj, shapeI, shapeJ)

	c.mu.Lock()
	c.store[k] = g
	c.mu.Unlock()

	return g
}

// Len reports the number of memoised entries, primarily for tests and
// diagnostics.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.store)
}

func compute(dx, dy, dz int, oi, oj voxel.Orientation, shapeI, shapeJ *voxel.Shape) Gap {
	cellsI := shapeI.Cells(oi)

	rawJ := shapeJ.Cells(oj)
	offset := voxel.Position{X: dx, Y: dy, Z: dz}
	cellsJ := make([]voxel.Position, len(rawJ))
	for i, c := range rawJ {
		cellsJ[i] = c.Add(offset)
	}

	return Gap{
		X: gapAlongAxis(cellsI, cellsJ, voxel.AxisX),
		Y: gapAlongAxis(cellsI, cellsJ, voxel.AxisY),
		Z: gapAlongAxis(cellsI, cellsJ, voxel.AxisZ),
	}
}

// gapAlongAxis computes the positive-direction movement gap for shapeJ
// relative to shapeI along one axis.
func gapAlongAxis(cellsI, cellsJ []voxel.Position, axis voxel.Axis) int {
	colsI := voxel.Columns(cellsI, axis)
	colsJ := voxel.Columns(cellsJ, axis)

	gap := voxel.InfinityDistance
	for colKey, valuesJ := range colsJ {
		valuesI, ok := colsI[colKey]
		if !ok {
			continue
		}
		maxJ := valuesJ[len(valuesJ)-1]
		minI := valuesI[0]
		if maxJ >= minI {
			// j already sits at or above i in this column; moving j
			// further positive never re-approaches i from below.
			continue
		}
		if g := minI - maxJ - 1; g < gap {
			gap = g
		}
	}
	if gap > voxel.InfinityDistance {
		gap = voxel.InfinityDistance
	}
	return gap
}
