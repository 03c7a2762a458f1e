package node

import "github.com/katalvlaran/burrsolve/voxel"

// hashSeed and the per-axis multipliers are the exact constants
// spec.md §4.B names, ported from the legacy movement-matrix search so
// that hash distribution matches the algorithm it was tuned for.
const (
	hashSeed = 0x17FE3B3C
	mulX     = 1343
	mulY     = 923
	mulZ     = 113
)

// SearchNode is one state in the breadth-first search: every piece's
// position and orientation, plus a back-link to the predecessor state
// that produced it.
//
// Two SearchNodes are Equal iff, after translating both so piece 0 sits
// at the origin, every other piece's (x, y, z, orientation) tuple
// matches pairwise — the search is translation-invariant. Per
// spec.md §9's own recommendation, orientation is included in both
// Hash and Equal here, diverging deliberately from the legacy source
// (see SPEC_FULL.md §13).
type SearchNode struct {
	comefrom *SearchNode
	x, y, z  []int32
	orient   []voxel.Orientation
	refcount int
}

// New allocates a SearchNode for pieceCount pieces with the given
// predecessor (nil for the root). If comefrom is non-nil its refcount
// is incremented to account for this new back-link.
func New(pieceCount int, comefrom *SearchNode) *SearchNode {
	n := &SearchNode{
		comefrom: comefrom,
		x:        make([]int32, pieceCount),
		y:        make([]int32, pieceCount),
		z:        make([]int32, pieceCount),
		orient:   make([]voxel.Orientation, pieceCount),
		refcount: 1,
	}
	if comefrom != nil {
		comefrom.refcount++
	}
	return n
}

// PieceCount returns the number of pieces this node tracks.
func (n *SearchNode) PieceCount() int {
	return len(n.x)
}

// Comefrom returns the predecessor node, or nil for the root.
func (n *SearchNode) Comefrom() *SearchNode {
	return n.comefrom
}

// Refcount returns the current reference count, for tests and
// diagnostics.
func (n *SearchNode) Refcount() int {
	return n.refcount
}
