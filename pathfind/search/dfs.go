package search

import "github.com/beka-birhanu/gridpath-api/pathfind/grid"

// DFS explores the grid depth-first. It reports reachability exactly like
// BFS but makes no shortest-path promise: the path it leaves behind is
// whatever backtracking discovered first.
type DFS struct{}

// Name returns the algorithm identifier.
func (DFS) Name() string { return "dfs" }

// Solve runs the search and returns the visitation trace. The grid's
// search state must have been reset beforehand.
func (DFS) Solve(g *grid.Grid) []grid.Position {
	start, end := g.StartIndex(), g.EndIndex()
	g.ByIndex(start).Visited = true

	stack := []int{start}
	var trace []grid.Position
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
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
			stack = append(stack, nb)
		}
	}
	return trace
}
