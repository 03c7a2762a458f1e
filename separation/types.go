package separation

import "github.com/katalvlaran/burrsolve/voxel"

// State is one configuration along the disassembly path: every piece's
// offset from its assembled position, indexed the same way as the
// owning Separation's Pieces.
type State struct {
	Dx, Dy, Dz []int
}

// Removed reports whether piece index i is outside voxel.RemovedMagnitude
// in this state, i.e. fully separated from the puzzle.
func (s State) Removed(i int) bool {
	return (voxel.Position{X: s.Dx[i], Y: s.Dy[i], Z: s.Dz[i]}).Removed()
}

// Separation is one node of the disassembly result tree: the shape ids
// of the pieces in this sub-problem, the sequence of states the search
// moved them through, and (for a non-leaf node) the two sub-problems
// the final state split into.
type Separation struct {
	Pieces  []voxel.ShapeID
	States  []State
	Removed *Separation
	Left    *Separation
}

// New returns a Separation over the given pieces with no states yet and
// the given sub-problems (either may be nil for a leaf, i.e. a
// sub-problem solved without a further split).
func New(pieces []voxel.ShapeID, removed, left *Separation) *Separation {
	return &Separation{Pieces: append([]voxel.ShapeID(nil), pieces...), Removed: removed, Left: left}
}

// AddState prepends a state, extending the path one step further back
// toward the assembled starting configuration.
func (s *Separation) AddState(st State) {
	s.States = append([]State{st}, s.States...)
}
