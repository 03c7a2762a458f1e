// Package burrsolve is a disassembly analysis core for interlocking
// puzzles ("burrs"): given an already-assembled configuration of rigid
// voxel pieces, it searches for a sequence of axis-aligned slides that
// takes the pieces apart, recursing on whichever pieces separate first.
//
// The search is a three-front breadth-first search over piece-position
// states (package node), driven by a per-expansion pairwise movement
// matrix (package matrix) backed by a long-lived movement cache
// (package cache) that answers "how far can piece j slide before it
// collides with piece i". Candidate moves — single-piece slides,
// co-moving groups, and phase-merged simultaneous slides — come from
// package moves. A separating move splits the problem in two; each side
// recurses independently (package disassembler), short-circuiting
// through registered shape-equivalence classes (package grouping) when
// the recursive search alone cannot resolve a sub-problem. Results are
// represented, compared, and serialised by package separation.
//
// Packages puzzle, puzzledef, burrsolvecfg, and burrlog are the ambient
// layer around the core: a Puzzle/Assembly/ShapeCatalog implementation,
// a YAML loader for puzzle+assembly input, CLI configuration, and
// level-gated logging, respectively. cmd/burrsolve wires them together
// into a small command-line tool. Of the four, the core imports only
// puzzle (for its interfaces) and burrlog (disassembler's optional
// logger); no core package imports puzzledef or burrsolvecfg.
//
// The core does not parse the legacy candidate-assembly XML format and
// does not enumerate or reduce candidate assemblies itself — it
// receives one fixed, already-placed Assembly and answers only whether,
// and how, it can be taken apart.
package burrsolve
