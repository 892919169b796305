package mazegen

import (
	"math/rand"

	"github.com/beka-birhanu/gridpath-api/pathfind/grid"
)

// Division builds walls by recursive division: split the current
// sub-rectangle with one wall line leaving a single gap, then recurse into
// both halves. Orientation follows the larger dimension, ties favoring a
// vertical wall.
//
// Wall lines sit on even board rows/columns and gaps on odd ones, so a
// later perpendicular wall can never seal an earlier gap; an open interior
// therefore stays connected unless the grid's start/end skip removes a
// required wall segment's gap.
type Division struct{}

// Name returns the generator identifier.
func (Division) Name() string { return "recursive" }

// Carve writes the walls into g.
func (Division) Carve(g *grid.Grid) {
	divide(g, 0, g.Rows()-1, 0, g.Cols()-1)
}

func divide(g *grid.Grid, top, bottom, left, right int) {
	height := bottom - top + 1
	width := right - left + 1
	if height < 2 || width < 2 {
		return
	}

	vertical := width >= height
	if vertical {
		if !divideVertical(g, top, bottom, left, right) {
			divideHorizontal(g, top, bottom, left, right)
		}
	} else {
		if !divideHorizontal(g, top, bottom, left, right) {
			divideVertical(g, top, bottom, left, right)
		}
	}
}

// divideVertical draws a wall on an even column strictly inside the
// rectangle with a gap on an odd row, then recurses into both halves.
// It reports false when no such column exists.
func divideVertical(g *grid.Grid, top, bottom, left, right int) bool {
	cols := evenWithin(left+1, right-1)
	if len(cols) == 0 {
		return false
	}
	wallCol := cols[rand.Intn(len(cols))]
	gaps := oddWithin(top, bottom)
	gapRow := gaps[rand.Intn(len(gaps))]

	for r := top; r <= bottom; r++ {
		if r == gapRow {
			continue
		}
		g.SetWall(r, wallCol, true)
	}

	divide(g, top, bottom, left, wallCol-1)
	divide(g, top, bottom, wallCol+1, right)
	return true
}

// divideHorizontal is the row-wise counterpart of divideVertical.
func divideHorizontal(g *grid.Grid, top, bottom, left, right int) bool {
	rows := evenWithin(top+1, bottom-1)
	if len(rows) == 0 {
		return false
	}
	wallRow := rows[rand.Intn(len(rows))]
	gaps := oddWithin(left, right)
	gapCol := gaps[rand.Intn(len(gaps))]

	for c := left; c <= right; c++ {
		if c == gapCol {
			continue
		}
		g.SetWall(wallRow, c, true)
	}

	divide(g, top, wallRow-1, left, right)
	divide(g, wallRow+1, bottom, left, right)
	return true
}

func evenWithin(lo, hi int) []int {
	var vals []int
	for v := lo; v <= hi; v++ {
		if v%2 == 0 {
			vals = append(vals, v)
		}
	}
	return vals
}

func oddWithin(lo, hi int) []int {
	var vals []int
	for v := lo; v <= hi; v++ {
		if v%2 != 0 {
			vals = append(vals, v)
		}
	}
	return vals
}
