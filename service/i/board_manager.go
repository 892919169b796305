package i

import (
	"github.com/beka-birhanu/gridpath-api/pathfind/grid"
	"github.com/google/uuid"
)

// BoardState is a snapshot of one board handed to the presentation layer.
type BoardState struct {
	ID    uuid.UUID
	Rows  int
	Cols  int
	Start grid.Position
	End   grid.Position
	Walls [][]bool
}

// SolveReport is the outcome of one search run.
type SolveReport struct {
	Algorithm    string
	Found        bool
	Trace        []grid.Position
	Path         []grid.Position
	VisitedCount int
	PathLength   int
}

// BoardManager owns the live boards and serializes every mutation and
// search on them. A missing board, algorithm or generator is reported as
// an error; an unreachable end cell is not (Found stays false).
type BoardManager interface {
	NewBoard(rows, cols int) (BoardState, error)
	Board(id uuid.UUID) (BoardState, error)
	Remove(id uuid.UUID) error
	Resize(id uuid.UUID, rows, cols int) (BoardState, error)
	SetWall(id uuid.UUID, row, col int, wall bool) (BoardState, error)
	MoveStart(id uuid.UUID, row, col int) (BoardState, error)
	MoveEnd(id uuid.UUID, row, col int) (BoardState, error)
	Generate(id uuid.UUID, generator string) (BoardState, error)
	Solve(id uuid.UUID, algorithm string) (SolveReport, error)
	Reset(id uuid.UUID, walls bool) (BoardState, error)
}
