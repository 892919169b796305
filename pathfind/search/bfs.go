package search

import "github.com/beka-birhanu/gridpath-api/pathfind/grid"

// BFS explores the grid breadth-first. Because every layer is fully
// enqueued before the next one expands, the backpointers it leaves always
// describe a shortest path by step count.
type BFS struct{}

// Name returns the algorithm identifier.
func (BFS) Name() string { return "bfs" }

// Solve runs the search and returns the visitation trace. The grid's
// search state must have been reset beforehand.
func (BFS) Solve(g *grid.Grid) []grid.Position {
	start, end := g.StartIndex(), g.EndIndex()
	g.ByIndex(start).Visited = true

	queue := []int{start}
	var trace []grid.Position
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		trace = append(trace, g.Coords(current))
		if current == end {
			break
		}

		for _, nb := range g.Neighbors(current) {
			cell := g.ByIndex(nb)
			if cell.Visited || cell.Wall {
				continue
			}
			cell.Visited = true
			cell.Prev = current
			queue = append(queue, nb)
		}
	}
	return trace
}
