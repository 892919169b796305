package grid

import "math"

const (
	// Unreachable is the cost assigned to cells no search has reached yet.
	// It is only ever compared against, never added to, so step increments
	// cannot overflow it.
	Unreachable = math.MaxInt32

	// NoPrev marks a cell without a discovering predecessor.
	NoPrev = -1
)

// Position identifies a cell by its 0-indexed row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cell is a single board position. Wall persists across search runs; the
// remaining fields are per-run search state cleared by Grid.ResetSearchState.
type Cell struct {
	// Wall indicates the cell is impassable.
	Wall bool
	// Visited indicates a search has finalized or discovered the cell this run.
	Visited bool
	// Prev is the arena index of the cell this one was discovered from,
	// or NoPrev. It is an index rather than a pointer so backpointers die
	// with the arena on resize instead of pinning stale cells.
	Prev int
	// G is the cost from the start cell, Unreachable until discovered.
	G int
	// F is G plus the heuristic estimate to the end cell.
	F int
}

// reset clears per-run search state, leaving Wall untouched.
func (c *Cell) reset() {
	c.Visited = false
	c.Prev = NoPrev
	c.G = Unreachable
	c.F = Unreachable
}
