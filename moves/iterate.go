package moves

import (
	"github.com/katalvlaran/burrsolve/node"
	"github.com/katalvlaran/burrsolve/voxel"
)

// maxSlideStep bounds PhaseSlide's ever-growing step size. A piece that
// could genuinely slide this far in a direction with no opposing piece
// at all is, for every practical puzzle, already being reported as a
// full separation by PhaseRemoveSingle; this bound only guards against
// looping forever on that degenerate case.
const maxSlideStep = 2 * removeDistance

// Next advances the state machine and returns the next successor of
// searchnode it finds, or (nil, false) once every (piece, direction)
// combination across every phase has been exhausted.
//
// searchnode must be the same node across the whole sequence of Next
// calls for a given Finder; construct a new Finder (or call Reset) for
// a different node.
func (f *Finder) Next(searchnode *node.SearchNode) (*node.SearchNode, bool) {
	for f.phase != PhaseDone {
		switch f.phase {
		case PhaseRemoveSingle:
			if result, ok := f.stepRemove(searchnode, 1, PhaseRemoveGroup); ok {
				return result, true
			}
		case PhaseRemoveGroup:
			if result, ok := f.stepRemove(searchnode, f.n/2, PhaseSlide); ok {
				return result, true
			}
		case PhaseSlide:
			if result, ok := f.stepSlide(searchnode); ok {
				return result, true
			}
		case PhaseMerge:
			if result, ok := f.stepMerge(searchnode); ok {
				return result, true
			}
		}
	}
	return nil, false
}

// stepRemove runs one (piece, dir) trial of PhaseRemoveSingle or
// PhaseRemoveGroup (they differ only in maxPieces), advancing piece and
// dir and transitioning to nextPhase once every direction has been
// tried for every piece.
func (f *Finder) stepRemove(searchnode *node.SearchNode, maxPieces int, nextPhase Phase) (*node.SearchNode, bool) {
	var result *node.SearchNode
	var found bool
	if f.checkMovement(maxPieces, f.dir, f.piece, removeDistance) {
		result = f.newNode(f.dir, searchnode)
		found = true
	}

	f.piece++
	if f.piece >= f.n {
		f.piece = 0
		f.dir++
		if int(f.dir) >= voxel.NumDirections {
			f.phase = nextPhase
			f.dir = 0
			f.found = nil
		}
	}
	return result, found
}

// stepSlide runs one trial of PhaseSlide at the current (piece, dir,
// step). On success it records the candidate for later merging and
// transitions into PhaseMerge to combine it with every slide already
// found in this direction; on failure it advances to the next piece (or
// direction, once every piece has failed at step 1).
func (f *Finder) stepSlide(searchnode *node.SearchNode) (*node.SearchNode, bool) {
	if f.step > maxSlideStep {
		f.step = 1
		f.advanceSlidePiece()
		return nil, false
	}

	if !f.checkMovement(f.n/2, f.dir, f.piece, f.step) {
		f.step = 1
		f.advanceSlidePiece()
		return nil, false
	}

	candidate := f.newNode(f.dir, searchnode)
	f.step++

	if f.isDuplicate(candidate) {
		return nil, false
	}

	f.found = append(f.found, candidate)
	f.mergeJ = len(f.found) - 1
	f.mergeI = 0
	f.mergeReturnPhase = PhaseSlide
	f.phase = PhaseMerge
	return candidate, true
}

func (f *Finder) advanceSlidePiece() {
	f.piece++
	if f.piece >= f.n {
		f.piece = 0
		f.dir++
		f.found = nil
		if int(f.dir) >= voxel.NumDirections {
			f.phase = PhaseDone
		}
	}
}

// stepMerge pairs the most recently found slide (f.found[f.mergeJ])
// against every earlier one in turn, returning to mergeReturnPhase once
// every pair involving it has been tried.
func (f *Finder) stepMerge(searchnode *node.SearchNode) (*node.SearchNode, bool) {
	if f.mergeI >= f.mergeJ {
		f.phase = f.mergeReturnPhase
		return nil, false
	}

	merged := f.mergeNodes(f.found[f.mergeI], f.found[f.mergeJ], searchnode, f.dir)
	f.mergeI++

	if merged == nil || f.isDuplicate(merged) {
		return nil, false
	}
	f.found = append(f.found, merged)
	return merged, true
}

func (f *Finder) isDuplicate(candidate *node.SearchNode) bool {
	for _, existing := range f.found {
		if candidate.Equal(existing) {
			return true
		}
	}
	return false
}

