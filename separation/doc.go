// Package separation implements the Separation result tree (spec.md
// component H): the output of a successful disassembly, recording
// every intermediate state the solver passed through together with the
// recursive split into "removed" and "left" sub-problems.
//
// A Separation's states run in chronological order (the state the
// search started from first); AddState prepends, mirroring the legacy
// separation_c::addstate pushing onto the front of a list as the
// search's comefrom chain is walked backward from its result.
package separation
