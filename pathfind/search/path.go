package search

import "github.com/beka-birhanu/gridpath-api/pathfind/grid"

// Reconstruct walks backpointers from the end cell to the root of the
// chain and returns the start-to-end path inclusive.
//
// The run counts as a success only when the chain's head is the start
// cell, the end cell is not a wall, and the end cell was visited. Anything
// else — including a dangling fragment of backpointers left by a failed
// run — is discarded and reported as no path.
//
// Reconstruct only reads the grid, so re-running it over an unchanged
// terminal state yields the same sequence.
func Reconstruct(g *grid.Grid) ([]grid.Position, bool) {
	endCell := g.ByIndex(g.EndIndex())
	if endCell.Wall || !endCell.Visited {
		return nil, false
	}

	var path []grid.Position
	for i := g.EndIndex(); i != grid.NoPrev; i = g.ByIndex(i).Prev {
		path = append(path, g.Coords(i))
	}
	// Built backward, reverse into start-to-end order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	if path[0] != g.Start() {
		return nil, false
	}
	return path, true
}
