// Package cache implements the pairwise per-column movement query
// (spec.md component A, "MovementCache"): given two oriented shapes and
// their relative offset, how far the second shape may slide along each
// axis, positively, before one of its voxels collides with the first
// shape's voxels.
//
// The query is pure — it depends only on shape geometry, orientation,
// and offset — so results are memoised keyed on all seven inputs. The
// same pair-at-offset query is made many times over a single search, so
// memoisation keeps the movement-matrix build phase (matrix.Build)
// linear in distinct pairs rather than in search-tree size.
package cache
