/*
Package search implements the three traversal strategies that explore a
grid: breadth-first, depth-first and A*.

All strategies share one shape: they take a grid whose search state has
been reset, mutate only the transient cell fields, and return the
visitation trace — the cells in the exact order they were finalized. They
stop the moment the end cell is finalized, or when the frontier runs dry.
Backpointers left on the cells let Reconstruct derive the path afterwards
regardless of which strategy ran.

An unreachable end is not an error: the trace simply never finalizes the
end cell, and Reconstruct reports no path.
*/
package search

import "github.com/beka-birhanu/gridpath-api/pathfind/grid"

// Result bundles everything one search run produces.
type Result struct {
	// Trace lists cells in finalization order.
	Trace []grid.Position
	// Path is the start-to-end path inclusive, nil when none was found.
	Path []grid.Position
	// Found reports whether the end cell was reached.
	Found bool
}

// VisitedCount returns the number of cells the run finalized.
func (r Result) VisitedCount() int { return len(r.Trace) }

// PathLength returns the number of cells on the path, 0 when no path was
// found.
func (r Result) PathLength() int {
	if !r.Found {
		return 0
	}
	return len(r.Path)
}

// Finish pairs a strategy's visitation trace with the reconstructed path.
func Finish(g *grid.Grid, trace []grid.Position) Result {
	path, found := Reconstruct(g)
	return Result{Trace: trace, Path: path, Found: found}
}
