// Package moves implements the MoveFinder (spec.md component E): given
// a search node, a matrix.Matrix describing pairwise slide distances,
// and a per-piece weight table, it enumerates the successor states
// reachable by a single coherent movement.
//
// A Finder walks a four-phase sequence for each call to Next, mirroring
// the legacy disassembler_0_c::find state machine: phase 0 looks for a
// single piece that can be slid far enough to separate outright, phase 1
// looks for the same but allows a whole co-moving group, phase 2 looks
// for bounded slides of increasing size, and phase 99 (Merge here) takes
// each slide found in phase 2 and tries merging it with every
// previously found slide in the same direction, since two independent
// groups that can each move alone may also be able to move together.
package moves
