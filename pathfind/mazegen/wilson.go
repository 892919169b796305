package mazegen

import (
	"math/rand"

	"github.com/beka-birhanu/gridpath-api/pathfind/grid"
)

// Wilson carves a maze with Wilson's algorithm: random walks from
// unvisited lattice cells toward the carved region, loop-erased by letting
// each cell remember only its last exit, then carved in one sweep. The
// walks produce unbiased mazes at the cost of a slow start on large
// boards.
type Wilson struct{}

// Name returns the generator identifier.
func (Wilson) Name() string { return "wilson" }

// Carve writes the maze into g. Boards with either side below 3 are left
// untouched.
func (Wilson) Carve(g *grid.Grid) {
	if g.Rows() < 3 || g.Cols() < 3 {
		return
	}
	fillWalls(g)

	nodes := latticeNodes(g)
	visited := map[grid.Position]struct{}{g.Start(): {}}

	for len(visited) < len(nodes) {
		for node, exit := range randomWalk(g, nodes, visited) {
			between := midpoint(node, exit)
			g.SetWall(node.Row, node.Col, false)
			g.SetWall(between.Row, between.Col, false)
			g.SetWall(exit.Row, exit.Col, false)
			visited[node] = struct{}{}
		}
	}
}

// randomWalk wanders the lattice from a random unvisited node until it
// touches the visited region. Each node records only its most recent exit,
// which erases any loop the walk made through it.
func randomWalk(g *grid.Grid, nodes []grid.Position, visited map[grid.Position]struct{}) map[grid.Position]grid.Position {
	visits := make(map[grid.Position]grid.Position)
	node := randomUnvisitedNode(nodes, visited)

	for {
		var candidates []grid.Position
		for _, step := range latticeSteps {
			next := grid.Position{Row: node.Row + step.Row, Col: node.Col + step.Col}
			if g.InBounds(next.Row, next.Col) {
				candidates = append(candidates, next)
			}
		}
		next := candidates[rand.Intn(len(candidates))]
		visits[node] = next
		if _, included := visited[next]; included {
			break
		}
		node = next
	}
	return visits
}

func randomUnvisitedNode(nodes []grid.Position, visited map[grid.Position]struct{}) grid.Position {
	for {
		node := nodes[rand.Intn(len(nodes))]
		if _, included := visited[node]; !included {
			return node
		}
	}
}

// latticeNodes lists every position sharing the start cell's row and
// column parity, the cells the 2-step walks move between.
func latticeNodes(g *grid.Grid) []grid.Position {
	start := g.Start()
	var nodes []grid.Position
	for r := 0; r < g.Rows(); r++ {
		if (r-start.Row)%2 != 0 {
			continue
		}
		for c := 0; c < g.Cols(); c++ {
			if (c-start.Col)%2 == 0 {
				nodes = append(nodes, grid.Position{Row: r, Col: c})
			}
		}
	}
	return nodes
}
