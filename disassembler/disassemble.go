package disassembler

import (
	"fmt"

	"github.com/katalvlaran/burrsolve/cache"
	"github.com/katalvlaran/burrsolve/grouping"
	"github.com/katalvlaran/burrsolve/matrix"
	"github.com/katalvlaran/burrsolve/moves"
	"github.com/katalvlaran/burrsolve/node"
	"github.com/katalvlaran/burrsolve/puzzle"
	"github.com/katalvlaran/burrsolve/separation"
	"github.com/katalvlaran/burrsolve/voxel"
)

// Disassemble searches for a sequence of piece slides that separates
// asm, an assembled placement of pz's pieces, returning the resulting
// Separation tree. A nil Separation with a nil error means the assembly
// is unsolvable; a non-nil error (typically a cancelled context) means
// the search was abandoned indeterminately.
func Disassemble(asm puzzle.Assembly, pz puzzle.Puzzle, opts ...Option) (*separation.Separation, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := asm.PlacementCount()
	if n != pz.PieceCount() {
		return nil, fmt.Errorf("%w: assembly has %d placements, puzzle has %d pieces", ErrPieceCountMismatch, n, pz.PieceCount())
	}

	catalog := pz.Shapes()
	pieces := make([]voxel.ShapeID, n)
	shapes := make([]*voxel.Shape, n)
	weights := make([]voxel.Weight, n)
	for i := 0; i < n; i++ {
		pieces[i] = pz.PieceShape(i)
		shapes[i] = catalog.Shape(pieces[i])
		weights[i] = catalog.Weight(pieces[i])
	}

	grouper := grouping.New(catalog)
	if sep, ok := trivialSolve(grouper, pieces); ok {
		return sep, nil
	}

	root := node.New(n, nil)
	for i := 0; i < n; i++ {
		root.Set(i, asm.Position(i), asm.Orientation(i))
	}

	d := &driver{
		ctx:     o.ctx,
		cache:   cache.New(),
		grouper: grouper,
		logger:  o.logger,
	}
	return d.disassembleRec(pieces, shapes, weights, root)
}

// isTrivial reports the two checkSubproblem fast paths shared by the
// top-level entry point and every recursive split: a lone piece is
// always already separated, and a subset that is exactly one complete
// shape-equivalence class needs no further search at all.
func isTrivial(g *grouping.Grouping, pieces []voxel.ShapeID) bool {
	return len(pieces) == 1 || g.SingleGroupCovers(pieces)
}

// trivialSolve is isTrivial plus the Separation the top-level
// Disassemble call returns when the whole puzzle is trivial. A
// sub-problem found trivial partway through a split is handled
// differently (see resolveSide): it records no subtree at all, rather
// than a synthetic leaf, so that side's child stays nil exactly like
// spec.md §8 scenario 2's "children both null".
func trivialSolve(g *grouping.Grouping, pieces []voxel.ShapeID) (*separation.Separation, bool) {
	if isTrivial(g, pieces) {
		return leaf(pieces), true
	}
	return nil, false
}

// leaf builds a solved sub-problem with no further split: a single
// all-zero state, since the pieces in it never need to move relative
// to their starting configuration for this part of the search.
func leaf(pieces []voxel.ShapeID) *separation.Separation {
	sep := separation.New(pieces, nil, nil)
	n := len(pieces)
	sep.AddState(separation.State{Dx: make([]int, n), Dy: make([]int, n), Dz: make([]int, n)})
	return sep
}

// disassembleRec runs the three-front BFS for one genuinely
// non-trivial sub-problem (trivialSolve has already been ruled out by
// the caller) and, on finding a separating move, resolves both halves
// before returning the assembled Separation.
func (d *driver) disassembleRec(pieces []voxel.ShapeID, shapes []*voxel.Shape, weights []voxel.Weight, root *node.SearchNode) (*separation.Separation, error) {
	if err := d.ctx.Err(); err != nil {
		return nil, err
	}
	d.logger.Debug("disassembleRec: entering with %d pieces", len(pieces))

	closedOld, closedCur, closedNew := node.NewHash(), node.NewHash(), node.NewHash()
	closedCur.Insert(root)
	root.Decref() // transient construction ref given up; closedCur now owns it.

	openCur := []*node.SearchNode{root}
	var openNew []*node.SearchNode

	for len(openCur) > 0 {
		select {
		case <-d.ctx.Done():
			return nil, d.ctx.Err()
		default:
		}

		cur := openCur[0]
		openCur = openCur[1:]

		m, err := matrix.Build(cur, shapes, d.cache)
		if err != nil {
			return nil, err
		}
		m.Close()

		finder, err := moves.NewFinder(m, weights)
		if err != nil {
			return nil, err
		}

		for {
			succ, ok := finder.Next(cur)
			if !ok {
				break
			}

			if closedOld.Contains(succ) || closedCur.Contains(succ) {
				succ.Decref()
				continue
			}
			if closedNew.Insert(succ) {
				succ.Decref() // duplicate within this layer
				continue
			}
			// succ survived all three checks: it is a genuinely new
			// state, newly owned by closedNew.
			if succ.IsSeparating() {
				succ.Decref()
				d.logger.Debug("disassembleRec: found a separating move for %d pieces", len(pieces))
				return d.split(pieces, shapes, weights, root, succ)
			}
			succ.Decref()
			openNew = append(openNew, succ)
		}

		if len(openCur) == 0 {
			closedOld.Clear()
			closedOld, closedCur, closedNew = closedCur, closedNew, node.NewHash()
			openCur, openNew = openNew, nil
			d.logger.Debug("disassembleRec: rotated BFS fronts, %d nodes in new open front", len(openCur))
		}
	}

	d.logger.Debug("disassembleRec: exhausted search over %d pieces, no separating move found", len(pieces))
	return nil, nil
}

// split resolves both halves of the separation succ represents and, if
// both succeed, walks the node chain from succ back to root to record
// every intermediate state. Either side's Separation comes back nil
// when that side was solved without recording a further subtree (a
// single piece, or a side fully covered by the Grouping fallback) —
// that is a success, not a failure, and result's matching child stays
// nil to match spec.md §8 scenario 2 rather than carry a synthetic leaf.
func (d *driver) split(pieces []voxel.ShapeID, shapes []*voxel.Shape, weights []voxel.Weight, root, succ *node.SearchNode) (*separation.Separation, error) {
	removedSep, removedOK, err := d.resolveSide(pieces, shapes, weights, succ, true)
	if err != nil {
		return nil, err
	}
	if !removedOK {
		return nil, nil
	}

	leftSep, leftOK, err := d.resolveSide(pieces, shapes, weights, succ, false)
	if err != nil {
		return nil, err
	}
	if !leftOK {
		return nil, nil
	}

	result := separation.New(pieces, removedSep, leftSep)
	for cur := succ; ; cur = cur.Comefrom() {
		result.AddState(stateFromNode(root, cur))
		if cur == root {
			break
		}
	}
	return result, nil
}

func stateFromNode(root, cur *node.SearchNode) separation.State {
	n := cur.PieceCount()
	st := separation.State{Dx: make([]int, n), Dy: make([]int, n), Dz: make([]int, n)}
	for i := 0; i < n; i++ {
		off := cur.Position(i).Sub(root.Position(i))
		st.Dx[i], st.Dy[i], st.Dz[i] = off.X, off.Y, off.Z
	}
	return st
}
