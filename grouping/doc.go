// Package grouping implements Grouping (spec.md component G): tracking
// multisets of shape equivalence classes so the disassembler can accept
// a sub-problem as solved without actually re-running a recursive
// search on it, when its pieces are known to be interchangeable with an
// already-solved configuration of the same shapes.
//
// Two independent checks are exposed, mirroring the two call sites in
// the legacy disassembler_0_c: SingleGroupCovers is the cheap fast path
// (subProbGroup) tried before attempting recursion at all, and
// NewSet/AddPieceToSet is the capacity-accounting fallback
// (subProbGrouping) tried after a recursive attempt has failed.
package grouping
