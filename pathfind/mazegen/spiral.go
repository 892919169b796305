package mazegen

import "github.com/beka-birhanu/gridpath-api/pathfind/grid"

// Spiral draws nested rectangular wall rings shrinking inward by 2 each
// lap, then clears the orthogonal neighbors of the start and end cells so
// both stay locally accessible. Rings are closed: the pattern makes no
// global-connectivity promise and can trap the end cell behind a ring.
type Spiral struct{}

// Name returns the generator identifier.
func (Spiral) Name() string { return "spiral" }

// Carve writes the pattern into g.
func (Spiral) Carve(g *grid.Grid) {
	top, left := 0, 0
	bottom, right := g.Rows()-1, g.Cols()-1

	for top <= bottom && left <= right {
		for c := left; c <= right; c++ {
			g.SetWall(top, c, true)
		}
		for r := top; r <= bottom; r++ {
			g.SetWall(r, right, true)
		}
		for c := right; c >= left; c-- {
			g.SetWall(bottom, c, true)
		}
		for r := bottom; r >= top; r-- {
			g.SetWall(r, left, true)
		}
		top += 2
		left += 2
		bottom -= 2
		right -= 2
	}

	clearAround(g, g.Start())
	clearAround(g, g.End())
}

// clearAround opens the up-to-4 orthogonal neighbors of p.
func clearAround(g *grid.Grid, p grid.Position) {
	offsets := [4]grid.Position{{Row: -1, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: -1}}
	for _, d := range offsets {
		g.SetWall(p.Row+d.Row, p.Col+d.Col, false)
	}
}
