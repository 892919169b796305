package i

import "github.com/beka-birhanu/gridpath-api/pathfind/grid"

// Searcher is one traversal strategy over a grid. Solve assumes the grid's
// search state was reset and returns the visitation trace in finalization
// order, leaving backpointers on the cells for path reconstruction.
type Searcher interface {
	// Name returns the algorithm identifier clients select by.
	Name() string

	// Solve runs the search from the grid's start toward its end.
	Solve(g *grid.Grid) []grid.Position
}

// Generator is one obstacle builder. Carve writes walls into the grid
// through its SetWall operation only, so start and end can never be
// walled.
type Generator interface {
	// Name returns the generator identifier clients select by.
	Name() string

	// Carve populates the grid's wall state.
	Carve(g *grid.Grid)
}
