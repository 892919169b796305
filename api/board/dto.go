// Package boardapi exposes the board lifecycle, maze generation and solve
// operations over HTTP.
package boardapi

import "github.com/beka-birhanu/gridpath-api/pathfind/grid"

// CreateBoardRequest asks for a fresh rows×cols board.
type CreateBoardRequest struct {
	Rows int `json:"rows" binding:"required"`
	Cols int `json:"cols" binding:"required"`
}

// ResizeRequest reallocates a board's grid.
type ResizeRequest struct {
	Rows int `json:"rows" binding:"required"`
	Cols int `json:"cols" binding:"required"`
}

// WallRequest sets or clears the wall flag of one cell. Row and Col are
// validated service-side so 0 stays a usable coordinate.
type WallRequest struct {
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Wall bool `json:"wall"`
}

// PositionRequest drags the start or end marker to a cell.
type PositionRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// GenerateRequest runs a maze generator over the board.
type GenerateRequest struct {
	Generator string `json:"generator" binding:"required"`
}

// SolveRequest runs a search algorithm over the board.
type SolveRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
}

// ResetRequest clears the board. Walls selects a full board wipe instead
// of a search-state-only reset.
type ResetRequest struct {
	Walls bool `json:"walls"`
}

// BoardResponse is the snapshot returned by every board mutation.
type BoardResponse struct {
	ID    string        `json:"id"`
	Rows  int           `json:"rows"`
	Cols  int           `json:"cols"`
	Start grid.Position `json:"start"`
	End   grid.Position `json:"end"`
	Walls [][]bool      `json:"walls"`
}

// SolveResponse carries one search run's trace, path and metrics.
type SolveResponse struct {
	Algorithm    string          `json:"algorithm"`
	Found        bool            `json:"found"`
	Visited      []grid.Position `json:"visited"`
	Path         []grid.Position `json:"path,omitempty"`
	VisitedCount int             `json:"visited_count"`
	PathLength   int             `json:"path_length"`
}
