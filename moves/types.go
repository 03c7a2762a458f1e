package moves

import (
	"github.com/katalvlaran/burrsolve/matrix"
	"github.com/katalvlaran/burrsolve/node"
	"github.com/katalvlaran/burrsolve/voxel"
)

// Phase names one step of the Finder's internal state machine.
type Phase int

const (
	// PhaseRemoveSingle looks for one piece that can slide far enough
	// to separate completely, every other piece held fixed.
	PhaseRemoveSingle Phase = iota
	// PhaseRemoveGroup is PhaseRemoveSingle but allows up to half the
	// pieces to co-move in order to let one piece separate.
	PhaseRemoveGroup
	// PhaseSlide looks for bounded slides of increasing size, again
	// allowing up to half the pieces to co-move.
	PhaseSlide
	// PhaseMerge takes the most recent slide found in PhaseSlide and
	// tries combining it with every earlier slide found in the same
	// direction.
	PhaseMerge
	// PhaseDone means every (piece, direction) combination has been
	// exhausted; Next always returns (nil, false) from here on.
	PhaseDone
)

// removeDistance is the step size used to test for complete separation
// in PhaseRemoveSingle and PhaseRemoveGroup, ported unchanged from the
// legacy find's literal 30000 (comfortably past voxel.RemovedMagnitude).
const removeDistance = 30000

// Finder enumerates successor states for one search node. It is
// stateful and single-use per node: construct a fresh Finder (or Reset
// an existing one) for every node popped off the BFS frontier.
type Finder struct {
	m       *matrix.Matrix
	weights []voxel.Weight
	n       int

	phase Phase
	dir   voxel.Direction
	piece int
	step  int

	movement []int
	check    []bool

	found            []*node.SearchNode
	mergeI, mergeJ   int
	mergeReturnPhase Phase
}

// NewFinder returns a Finder ready to enumerate moves governed by m,
// with weights indexed by piece. len(weights) must equal m.N().
func NewFinder(m *matrix.Matrix, weights []voxel.Weight) (*Finder, error) {
	if len(weights) != m.N() {
		return nil, ErrWeightCountMismatch
	}
	n := m.N()
	f := &Finder{
		m:       m,
		weights: weights,
		n:       n,
		step:    1,
	}
	f.movement = make([]int, n)
	f.check = make([]bool, n)
	return f, nil
}

// Reset rewinds f to its initial state so it can be reused against a
// new matrix and weight table (typically for the next popped node).
func (f *Finder) Reset(m *matrix.Matrix, weights []voxel.Weight) error {
	if len(weights) != m.N() {
		return ErrWeightCountMismatch
	}
	f.m = m
	f.weights = weights
	f.n = m.N()
	f.phase = PhaseRemoveSingle
	f.dir = 0
	f.piece = 0
	f.step = 1
	f.movement = make([]int, f.n)
	f.check = make([]bool, f.n)
	f.found = nil
	return nil
}
