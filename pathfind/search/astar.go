package search

import (
	"container/heap"

	"github.com/beka-birhanu/gridpath-api/pathfind/grid"
)

// AStar explores the grid best-first, ordered by G plus the Manhattan
// distance to the end. The heuristic never overestimates on a unit-cost
// 4-directional grid, so the path it finds is always shortest.
//
// The open set tolerates duplicate entries for a cell: relaxation pushes a
// fresh entry instead of decreasing a key, and whichever stale copies
// surface later fail the visited check and are dropped.
type AStar struct{}

// Name returns the algorithm identifier.
func (AStar) Name() string { return "astar" }

// Solve runs the search and returns the visitation trace. The grid's
// search state must have been reset beforehand.
func (AStar) Solve(g *grid.Grid) []grid.Position {
	start, end := g.StartIndex(), g.EndIndex()
	endPos := g.End()

	startCell := g.ByIndex(start)
	startCell.G = 0
	startCell.F = manhattan(g.Start(), endPos)

	open := &openSet{{index: start, f: startCell.F}}
	heap.Init(open)

	var trace []grid.Position
	for open.Len() > 0 {
		item := heap.Pop(open).(openItem)
		cell := g.ByIndex(item.index)
		if cell.Visited {
			// Stale duplicate entry.
			continue
		}
		cell.Visited = true
		trace = append(trace, g.Coords(item.index))
		if item.index == end {
			break
		}

		for _, nb := range g.Neighbors(item.index) {
			nbCell := g.ByIndex(nb)
			if nbCell.Wall || nbCell.Visited {
				continue
			}
			tentative := cell.G + 1
			if tentative < nbCell.G {
				nbCell.Prev = item.index
				nbCell.G = tentative
				nbCell.F = tentative + manhattan(g.Coords(nb), endPos)
				heap.Push(open, openItem{index: nb, f: nbCell.F})
			}
		}
	}
	return trace
}

// manhattan is the |Δrow| + |Δcol| distance between two positions.
func manhattan(a, b grid.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
