// Package puzzle defines the external interfaces the disassembler core
// consumes (spec.md §6: Assembly and Puzzle) and provides a small
// in-memory implementation of them, built via a fluent Builder, for
// callers that construct puzzles programmatically or in tests rather
// than loading them from an external CAD/puzzle-description format.
package puzzle
