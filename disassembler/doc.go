// Package disassembler drives the three-front breadth-first search that
// finds a sequence of piece slides separating an assembled puzzle, and
// recurses on each half of every split it finds until every piece
// stands alone or collapses into an already-solved shape-equivalence
// class.
//
// Disassemble is the package's single entry point; everything else is
// internal machinery: matrix construction and closure come from
// package matrix, successor enumeration from package moves, and
// equivalence-class shortcuts from package grouping.
package disassembler
