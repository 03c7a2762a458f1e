package grouping

import "github.com/katalvlaran/burrsolve/voxel"

// NewSet starts a fresh capacity accounting, discarding any in-progress
// set. Ported from grouping_c::newSet.
func (g *Grouping) NewSet() {
	g.remaining = make(map[GroupID]int)
}

// AddPieceToSet credits one piece of the given shape against any group
// containing it that still has remaining capacity, preferring the
// first such group in ShapeGrouper's enumeration order. It returns
// false if no group containing shape has capacity left, meaning the
// current working set is not (or is no longer) a known equivalence
// class. Ported from grouping_c::addPieceToSet.
func (g *Grouping) AddPieceToSet(shape voxel.ShapeID) bool {
	count := g.grouper.GroupCount(shape)
	for i := 0; i < count; i++ {
		gid := g.grouper.Group(shape, i)
		if _, seen := g.remaining[gid]; !seen {
			g.remaining[gid] = g.grouper.GroupCapacity(gid)
		}
		if g.remaining[gid] > 0 {
			g.remaining[gid]--
			return true
		}
	}
	return false
}

// SingleGroupCovers is the subProbGroup fast path: it reports whether
// every shape in shapes belongs to exactly one group, all to the same
// group, and that group's total registered capacity equals len(shapes)
// — i.e. this subset is precisely one complete, unambiguous
// equivalence class, so no further recursive search is needed at all.
func (g *Grouping) SingleGroupCovers(shapes []voxel.ShapeID) bool {
	if len(shapes) == 0 {
		return false
	}

	var group GroupID
	found := false
	for _, s := range shapes {
		if g.grouper.GroupCount(s) != 1 {
			return false
		}
		gid := g.grouper.Group(s, 0)
		if !found {
			group = gid
			found = true
		} else if gid != group {
			return false
		}
	}
	return g.grouper.GroupCapacity(group) == len(shapes)
}
