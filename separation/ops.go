package separation

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/burrsolve/voxel"
)

// SumMoves returns the total number of individual movement steps this
// subtree represents: one less than the number of recorded states,
// plus the same recursively for both sub-problems.
func (s *Separation) SumMoves() int {
	total := len(s.States) - 1
	if s.Removed != nil {
		total += s.Removed.SumMoves()
	}
	if s.Left != nil {
		total += s.Left.SumMoves()
	}
	return total
}

// ContainsMultiMoves reports whether this subtree, or either of its
// sub-problems, ever moves more than one step at once (more than two
// recorded states for a single split).
func (s *Separation) ContainsMultiMoves() bool {
	if len(s.States) > 2 {
		return true
	}
	if s.Left != nil && s.Left.ContainsMultiMoves() {
		return true
	}
	if s.Removed != nil && s.Removed.ContainsMultiMoves() {
		return true
	}
	return false
}

// MovesText renders a dotted depth-first summary of move counts: this
// subtree's own move count, followed by the left sub-problem's text
// (if it contains any multi-step move) and then the removed
// sub-problem's, each separated by a dot.
func (s *Separation) MovesText() string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(s.States) - 1))

	if s.Left != nil && s.Left.ContainsMultiMoves() {
		b.WriteByte('.')
		b.WriteString(s.Left.MovesText())
	}
	if s.Removed != nil && s.Removed.ContainsMultiMoves() {
		b.WriteByte('.')
		b.WriteString(s.Removed.MovesText())
	}
	return b.String()
}

// Compare orders s against other lexicographically: first by recorded
// state count, then by the left subtree, then by the removed subtree.
// A nil other compares as less than any non-nil s.
func (s *Separation) Compare(other *Separation) int {
	if other == nil {
		return 1
	}
	if len(s.States) != len(other.States) {
		if len(s.States) > len(other.States) {
			return 1
		}
		return -1
	}

	if a := compareSub(s.Left, other.Left); a != 0 {
		return a
	}
	return compareSub(s.Removed, other.Removed)
}

func compareSub(a, b *Separation) int {
	switch {
	case a != nil:
		return a.Compare(b)
	case b != nil:
		return -1
	default:
		return 0
	}
}

// ShiftPiece adds (dx, dy, dz) to every recorded position of every
// piece in this subtree (and its sub-problems) whose shape id is
// shape. Despite the name this matches by shape id, not piece index,
// exactly as the legacy separation_c::shiftPiece does — a puzzle with
// repeated shapes shifts every occurrence together.
func (s *Separation) ShiftPiece(shape voxel.ShapeID, dx, dy, dz int) {
	for p, sh := range s.Pieces {
		if sh != shape {
			continue
		}
		for i := range s.States {
			s.States[i].Dx[p] += dx
			s.States[i].Dy[p] += dy
			s.States[i].Dz[p] += dz
		}
	}
	if s.Removed != nil {
		s.Removed.ShiftPiece(shape, dx, dy, dz)
	}
	if s.Left != nil {
		s.Left.ShiftPiece(shape, dx, dy, dz)
	}
}

// ExchangeShape swaps every occurrence of shape ids a and b throughout
// this subtree and its sub-problems.
func (s *Separation) ExchangeShape(a, b voxel.ShapeID) {
	for i, sh := range s.Pieces {
		switch sh {
		case a:
			s.Pieces[i] = b
		case b:
			s.Pieces[i] = a
		}
	}
	if s.Removed != nil {
		s.Removed.ExchangeShape(a, b)
	}
	if s.Left != nil {
		s.Left.ExchangeShape(a, b)
	}
}
