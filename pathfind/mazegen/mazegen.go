/*
Package mazegen populates a grid's wall state with procedurally generated
obstacles.

Four builders are provided: a randomized depth-first backtracker, a spiral
wall pattern, recursive division, and Wilson's loop-erased random walk. All
of them write exclusively through Grid.SetWall, so the grid's refusal to
wall the start or end cell holds for every generator and every seed. Boards
too small for a builder's structure are left untouched.

Randomized choices draw from math/rand's default source; runs are not
reproducible.
*/
package mazegen

import "github.com/beka-birhanu/gridpath-api/pathfind/grid"

// latticeSteps are the 2-cell jumps the lattice-based builders move by,
// in the grid's up, right, down, left order. Carving clears the midpoint
// between two lattice cells, which is why passages stay one cell wide.
var latticeSteps = [4]grid.Position{
	{Row: -2, Col: 0},
	{Row: 0, Col: 2},
	{Row: 2, Col: 0},
	{Row: 0, Col: -2},
}

// fillWalls walls every cell. Start and end stay clear because SetWall
// refuses to touch them.
func fillWalls(g *grid.Grid) {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			g.SetWall(r, c, true)
		}
	}
}

// midpoint returns the cell between two lattice cells two steps apart.
func midpoint(a, b grid.Position) grid.Position {
	return grid.Position{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}
}
