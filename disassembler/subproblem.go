package disassembler

import (
	"github.com/katalvlaran/burrsolve/grouping"
	"github.com/katalvlaran/burrsolve/node"
	"github.com/katalvlaran/burrsolve/separation"
	"github.com/katalvlaran/burrsolve/voxel"
)

// resolveSide decides whether one side of a split (the removed pieces,
// or the pieces left behind) is solved. It tries, in order: the
// trivial fast paths (one piece; one complete shape-equivalence
// class), a recursive search with positions translated back into
// normal range, and finally the Grouping partition fallback if that
// recursion fails.
//
// The bool return distinguishes "solved" from "unsolvable" (an
// unsolvable side fails the whole split); the Separation return is
// nil whenever this side was solved without recording a further
// subtree (the trivial fast paths and the Grouping fallback all fall
// into that case), so the caller's matching child stays a true nil
// rather than a synthetic single-state leaf.
func (d *driver) resolveSide(pieces []voxel.ShapeID, shapes []*voxel.Shape, weights []voxel.Weight, full *node.SearchNode, removedSide bool) (*separation.Separation, bool, error) {
	subset, subsetShapes, subsetWeights, indices := selectSubset(pieces, shapes, weights, full, removedSide)

	if isTrivial(d.grouper, subset) {
		return nil, true, nil
	}

	start := newSubNode(full, indices, removedSide)
	sub, err := d.disassembleRec(subset, subsetShapes, subsetWeights, start)
	if err != nil {
		return nil, false, err
	}
	if sub != nil {
		return sub, true, nil
	}

	if groupingCovers(d.grouper, subset) {
		return nil, true, nil
	}
	return nil, false, nil
}

// selectSubset partitions pieces/shapes/weights according to whether
// each piece was removed in full, preserving relative order, and
// returns the original indices alongside so newSubNode can recover
// positions and orientations.
func selectSubset(pieces []voxel.ShapeID, shapes []*voxel.Shape, weights []voxel.Weight, full *node.SearchNode, removedSide bool) ([]voxel.ShapeID, []*voxel.Shape, []voxel.Weight, []int) {
	var subset []voxel.ShapeID
	var subsetShapes []*voxel.Shape
	var subsetWeights []voxel.Weight
	var indices []int
	for i := range pieces {
		if full.IsRemoved(i) != removedSide {
			continue
		}
		subset = append(subset, pieces[i])
		subsetShapes = append(subsetShapes, shapes[i])
		subsetWeights = append(subsetWeights, weights[i])
		indices = append(indices, i)
	}
	return subset, subsetShapes, subsetWeights, indices
}

// newSubNode builds the starting SearchNode for a sub-problem's own
// recursive search. The removed side's raw coordinates sit far beyond
// voxel.RemovedMagnitude; translating every piece by the first
// selected piece's position brings the whole subset back into normal
// range without otherwise changing the relative configuration (the
// search is translation-invariant regardless, but an untranslated
// removed side would re-trip the same removed-magnitude threshold at
// the very first movement query).
func newSubNode(full *node.SearchNode, indices []int, removedSide bool) *node.SearchNode {
	start := node.New(len(indices), nil)
	var origin voxel.Position
	if removedSide && len(indices) > 0 {
		origin = full.Position(indices[0])
	}
	for newIdx, oldIdx := range indices {
		pos := full.Position(oldIdx)
		if removedSide {
			pos = pos.Sub(origin)
		}
		start.Set(newIdx, pos, full.Orientation(oldIdx))
	}
	return start
}

// groupingCovers is the subProbGrouping fallback: it reports whether
// pieces can be fully accounted for across the puzzle's known
// shape-equivalence groups, even when they do not form a single
// complete group (the SingleGroupCovers fast path already ruled out
// by isTrivial).
func groupingCovers(g *grouping.Grouping, pieces []voxel.ShapeID) bool {
	g.NewSet()
	for _, shape := range pieces {
		if !g.AddPieceToSet(shape) {
			return false
		}
	}
	return true
}
