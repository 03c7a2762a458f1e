package voxel

import "sort"

// Shape is an immutable set of occupied unit voxel cells, in the
// piece's local (unrotated, unplaced) coordinate frame. Callers are
// expected to supply already-minimised shapes (see doc.go).
type Shape struct {
	cells []Position
}

// NewShape builds a Shape from a set of occupied cells. Duplicate
// cells are collapsed; the result is stored in a canonical sorted order
// so that two Shapes built from the same cell set compare equal via
// reflect.DeepEqual or manual field comparison.
func NewShape(cells []Position) *Shape {
	seen := make(map[Position]struct{}, len(cells))
	uniq := make([]Position, 0, len(cells))
	for _, c := range cells {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		uniq = append(uniq, c)
	}
	sort.Slice(uniq, func(i, j int) bool {
		a, b := uniq[i], uniq[j]
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	})
	return &Shape{cells: uniq}
}

// NumCells returns the number of occupied unit cells.
func (s *Shape) NumCells() int {
	return len(s.cells)
}

// Cells returns the shape's occupied cells after applying orientation o.
// The returned slice is freshly allocated and safe for the caller to
// retain or mutate.
func (s *Shape) Cells(o Orientation) []Position {
	out := make([]Position, len(s.cells))
	for i, c := range s.cells {
		out[i] = o.Apply(c)
	}
	return out
}

// Bounds returns the inclusive axis-aligned bounding box of the shape
// under orientation o.
func (s *Shape) Bounds(o Orientation) (min, max Position) {
	cells := s.Cells(o)
	if len(cells) == 0 {
		return Position{}, Position{}
	}
	min, max = cells[0], cells[0]
	for _, c := range cells[1:] {
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.Z < min.Z {
			min.Z = c.Z
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
		if c.Z > max.Z {
			max.Z = c.Z
		}
	}
	return min, max
}

// ColumnKey identifies a voxel column perpendicular to a given axis,
// i.e. the two coordinates that are held fixed while the third varies.
type ColumnKey struct {
	A, B int
}

// Columns groups cells into columns running along axis, keyed by the
// two perpendicular coordinates, with each column's value being the
// ascending-sorted list of coordinates along axis that are occupied.
// Used by package cache to compute per-column movement gaps.
func Columns(cells []Position, axis Axis) map[ColumnKey][]int {
	cols := make(map[ColumnKey][]int)
	for _, c := range cells {
		var key ColumnKey
		var v int
		switch axis {
		case AxisX:
			key, v = ColumnKey{c.Y, c.Z}, c.X
		case AxisY:
			key, v = ColumnKey{c.X, c.Z}, c.Y
		case AxisZ:
			key, v = ColumnKey{c.X, c.Y}, c.Z
		}
		cols[key] = append(cols[key], v)
	}
	for k := range cols {
		sort.Ints(cols[k])
	}
	return cols
}
