// Package node implements the breadth-first search state (spec.md
// component B, "SearchNode") and the de-duplicating hash set used to
// track visited states (component C, "NodeHash").
//
// A SearchNode records every piece's position and orientation at one
// point in the search, plus a back-link to its predecessor. Nodes form
// a DAG via these back-links: reference counting is sufficient to
// reclaim them because BFS discipline makes cycles impossible (see
// spec.md §9, "Shared, acyclic node ownership").
package node
