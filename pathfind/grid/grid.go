/*
Package grid models the rectangular board every search and maze generator
operates on.

Cells live in a single flat arena in row-major order and are addressed by
index; rows and columns are translated at the edges. The grid owns exactly
one start and one end position at all times, neither of which can be a wall:
walling them is silently ignored, as is dragging them onto a wall. Those
silent no-ops are the contract the maze generators rely on.

Neighbor order is fixed — up, right, down, left — and is part of the
algorithmic contract: it decides tie-breaks in every search strategy and in
maze carving.
*/
package grid

import (
	"strings"
)

// directions are the orthogonal neighbor offsets in priority order:
// up, right, down, left. The order is a contract, not a style choice.
var directions = [4]Position{
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
}

// Grid is a fixed-size board of cells. Resizing reallocates the arena and
// invalidates every previously held cell index.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
	start Position
	end   Position
}

// New creates a rows×cols grid with all cells open, the start at the
// top-left corner and the end at the bottom-right. Dimensions below 1 are
// raised to 1.
func New(rows, cols int) *Grid {
	g := &Grid{}
	g.Resize(rows, cols)
	return g
}

// Resize reallocates the cell arena for the new dimensions. All wall and
// search state is cleared. The start and end positions are clamped into the
// new bounds; if clamping makes them collide they snap back to the
// top-left and bottom-right corners.
func (g *Grid) Resize(rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([]Cell, rows*cols)
	for i := range g.cells {
		g.cells[i].reset()
	}

	g.start = clamp(g.start, rows, cols)
	g.end = clamp(g.end, rows, cols)
	if g.start == g.end {
		g.start = Position{Row: 0, Col: 0}
		g.end = Position{Row: rows - 1, Col: cols - 1}
	}
}

func clamp(p Position, rows, cols int) Position {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= rows {
		p.Row = rows - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if p.Col >= cols {
		p.Col = cols - 1
	}
	return p
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies on the board.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Index converts (row, col) to an arena index. The caller must ensure the
// position is in bounds.
func (g *Grid) Index(row, col int) int {
	return row*g.cols + col
}

// Coords converts an arena index back to a position.
func (g *Grid) Coords(index int) Position {
	return Position{Row: index / g.cols, Col: index % g.cols}
}

// At returns the cell at (row, col), or nil when out of bounds.
func (g *Grid) At(row, col int) *Cell {
	if !g.InBounds(row, col) {
		return nil
	}
	return &g.cells[g.Index(row, col)]
}

// ByIndex returns the cell at the given arena index.
func (g *Grid) ByIndex(index int) *Cell {
	return &g.cells[index]
}

// Neighbors returns the arena indices of the up-to-4 orthogonal neighbors
// of the cell at index, in the fixed up, right, down, left order.
// Out-of-bounds candidates are filtered here, never by callers.
func (g *Grid) Neighbors(index int) []int {
	pos := g.Coords(index)
	neighbors := make([]int, 0, 4)
	for _, d := range directions {
		row, col := pos.Row+d.Row, pos.Col+d.Col
		if g.InBounds(row, col) {
			neighbors = append(neighbors, g.Index(row, col))
		}
	}
	return neighbors
}

// Start returns the start position.
func (g *Grid) Start() Position { return g.start }

// End returns the end position.
func (g *Grid) End() Position { return g.end }

// StartIndex returns the start cell's arena index.
func (g *Grid) StartIndex() int { return g.Index(g.start.Row, g.start.Col) }

// EndIndex returns the end cell's arena index.
func (g *Grid) EndIndex() int { return g.Index(g.end.Row, g.end.Col) }

// SetStart moves the start position. The move is silently ignored when the
// target is out of bounds, a wall, or the end position.
func (g *Grid) SetStart(row, col int) {
	p := Position{Row: row, Col: col}
	if !g.InBounds(row, col) || g.cells[g.Index(row, col)].Wall || p == g.end {
		return
	}
	g.start = p
}

// SetEnd moves the end position under the same rules as SetStart.
func (g *Grid) SetEnd(row, col int) {
	p := Position{Row: row, Col: col}
	if !g.InBounds(row, col) || g.cells[g.Index(row, col)].Wall || p == g.start {
		return
	}
	g.end = p
}

// SetWall sets or clears the wall flag at (row, col). Walling the start or
// end cell is silently ignored, as are out-of-bounds coordinates.
func (g *Grid) SetWall(row, col int, wall bool) {
	p := Position{Row: row, Col: col}
	if !g.InBounds(row, col) || p == g.start || p == g.end {
		return
	}
	g.cells[g.Index(row, col)].Wall = wall
}

// IsWall reports whether (row, col) is a wall. Out-of-bounds counts as a
// wall so probing callers never step off the board.
func (g *Grid) IsWall(row, col int) bool {
	if !g.InBounds(row, col) {
		return true
	}
	return g.cells[g.Index(row, col)].Wall
}

// ResetSearchState clears Visited, Prev, G and F on every cell.
// Walls are untouched.
func (g *Grid) ResetSearchState() {
	for i := range g.cells {
		g.cells[i].reset()
	}
}

// ResetWalls clears every wall flag. Search state is cleared too, since a
// board reset implies a fresh run.
func (g *Grid) ResetWalls() {
	for i := range g.cells {
		g.cells[i].Wall = false
		g.cells[i].reset()
	}
}

// Walls returns a rows×cols snapshot of the wall flags.
func (g *Grid) Walls() [][]bool {
	walls := make([][]bool, g.rows)
	for r := 0; r < g.rows; r++ {
		walls[r] = make([]bool, g.cols)
		for c := 0; c < g.cols; c++ {
			walls[r][c] = g.cells[g.Index(r, c)].Wall
		}
	}
	return walls
}

// String renders the board as ASCII art: '#' walls, 'S' start, 'E' end,
// '.' open cells.
func (g *Grid) String() string {
	var output strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			switch {
			case (Position{Row: r, Col: c}) == g.start:
				output.WriteByte('S')
			case (Position{Row: r, Col: c}) == g.end:
				output.WriteByte('E')
			case g.cells[g.Index(r, c)].Wall:
				output.WriteByte('#')
			default:
				output.WriteByte('.')
			}
		}
		output.WriteByte('\n')
	}
	return output.String()
}
