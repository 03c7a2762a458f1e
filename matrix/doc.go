// Package matrix implements the per-direction movement matrix (spec.md
// component D): for each axis, an N×N table where entry [i][j] is the
// maximum distance piece i may slide in the positive direction of that
// axis while piece j stays fixed, as determined by shape geometry alone
// at the node's current relative offsets.
//
// Build fills the matrix from pairwise cache.Cache queries; Close
// applies the all-pairs shortest-path closure (Floyd–Warshall
// semantics) so that entries respect the triangle inequality described
// in spec.md §4.D, as a single O(N³) Floyd–Warshall pass per axis.
package matrix
