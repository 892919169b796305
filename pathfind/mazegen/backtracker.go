package mazegen

import (
	"math/rand"

	"github.com/beka-birhanu/gridpath-api/pathfind/grid"
)

// Backtracker carves a maze with the randomized depth-first algorithm:
// wall everything, then walk a 2-step lattice anchored at the start cell,
// clearing the jumped-to cell and the wall between. Dead ends backtrack by
// popping the stack.
type Backtracker struct{}

// Name returns the generator identifier.
func (Backtracker) Name() string { return "random" }

// Carve writes the maze into g. Boards with either side below 3 have no
// room for a lattice and are left untouched.
func (Backtracker) Carve(g *grid.Grid) {
	if g.Rows() < 3 || g.Cols() < 3 {
		return
	}
	fillWalls(g)

	start := g.Start()
	visited := map[grid.Position]struct{}{start: {}}
	stack := []grid.Position{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []grid.Position
		for _, step := range latticeSteps {
			next := grid.Position{Row: current.Row + step.Row, Col: current.Col + step.Col}
			if !g.InBounds(next.Row, next.Col) {
				continue
			}
			if _, seen := visited[next]; !seen {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rand.Intn(len(candidates))]
		between := midpoint(current, next)
		g.SetWall(between.Row, between.Col, false)
		g.SetWall(next.Row, next.Col, false)
		visited[next] = struct{}{}
		stack = append(stack, next)
	}
}
