package service

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/beka-birhanu/gridpath-api/config"
	"github.com/beka-birhanu/gridpath-api/pathfind/grid"
	"github.com/beka-birhanu/gridpath-api/pathfind/search"
	"github.com/beka-birhanu/gridpath-api/service/i"
	"github.com/google/uuid"
)

var (
	ErrBoardNotFound     = errors.New("board not found")
	ErrUnknownAlgorithm  = errors.New("unknown algorithm")
	ErrUnknownGenerator  = errors.New("unknown generator")
	ErrInvalidDimensions = errors.New("invalid board dimensions")
)

// BoardManager keeps the live boards in memory, keyed by session ID. Every
// operation takes the manager lock, which is what guarantees the core's
// at-most-one-run-in-flight rule: the grid and the algorithms themselves
// stay lock-free.
type BoardManager struct {
	boards     map[uuid.UUID]*grid.Grid
	searchers  map[string]i.Searcher
	generators map[string]i.Generator
	maxRows    int
	maxCols    int
	logger     *log.Logger
	sync.RWMutex
}

// Config holds the dependencies for a BoardManager.
type Config struct {
	Searchers  []i.Searcher
	Generators []i.Generator
	MaxRows    int
	MaxCols    int
	Logger     *log.Logger
}

// NewBoardManager creates a BoardManager from the given configuration.
func NewBoardManager(c *Config) (*BoardManager, error) {
	if len(c.Searchers) == 0 {
		return nil, errors.New("at least one searcher is required")
	}

	m := &BoardManager{
		boards:     make(map[uuid.UUID]*grid.Grid),
		searchers:  make(map[string]i.Searcher),
		generators: make(map[string]i.Generator),
		maxRows:    c.MaxRows,
		maxCols:    c.MaxCols,
		logger:     c.Logger,
	}
	for _, s := range c.Searchers {
		m.searchers[s.Name()] = s
	}
	for _, g := range c.Generators {
		m.generators[g.Name()] = g
	}
	return m, nil
}

// NewBoard creates an open board and returns its snapshot.
func (m *BoardManager) NewBoard(rows, cols int) (i.BoardState, error) {
	if err := m.validateDimensions(rows, cols); err != nil {
		return i.BoardState{}, err
	}

	m.Lock()
	defer m.Unlock()

	id := m.saveBoard(grid.New(rows, cols))
	m.logger.Printf("%s[INFO]%s created board %s (%dx%d)", config.LogInfoColor, config.LogColorReset, id, rows, cols)
	return m.snapshot(id), nil
}

// Board returns a snapshot of the board.
func (m *BoardManager) Board(id uuid.UUID) (i.BoardState, error) {
	m.RLock()
	defer m.RUnlock()

	if _, ok := m.boards[id]; !ok {
		return i.BoardState{}, ErrBoardNotFound
	}
	return m.snapshot(id), nil
}

// Remove discards the board.
func (m *BoardManager) Remove(id uuid.UUID) error {
	m.Lock()
	defer m.Unlock()

	if _, ok := m.boards[id]; !ok {
		return ErrBoardNotFound
	}
	delete(m.boards, id)
	m.logger.Printf("%s[INFO]%s removed board %s", config.LogInfoColor, config.LogColorReset, id)
	return nil
}

// Resize reallocates the board's grid, clamping start and end into the new
// bounds. All walls and search state are dropped with the old arena.
func (m *BoardManager) Resize(id uuid.UUID, rows, cols int) (i.BoardState, error) {
	if err := m.validateDimensions(rows, cols); err != nil {
		return i.BoardState{}, err
	}

	m.Lock()
	defer m.Unlock()

	g, ok := m.boards[id]
	if !ok {
		return i.BoardState{}, ErrBoardNotFound
	}
	g.Resize(rows, cols)
	return m.snapshot(id), nil
}

// SetWall sets or clears one wall. Attempts on the start or end cell are
// silently ignored, mirroring the grid's policy.
func (m *BoardManager) SetWall(id uuid.UUID, row, col int, wall bool) (i.BoardState, error) {
	m.Lock()
	defer m.Unlock()

	g, ok := m.boards[id]
	if !ok {
		return i.BoardState{}, ErrBoardNotFound
	}
	g.SetWall(row, col, wall)
	return m.snapshot(id), nil
}

// MoveStart drags the start position. Moves onto a wall are silently
// ignored.
func (m *BoardManager) MoveStart(id uuid.UUID, row, col int) (i.BoardState, error) {
	m.Lock()
	defer m.Unlock()

	g, ok := m.boards[id]
	if !ok {
		return i.BoardState{}, ErrBoardNotFound
	}
	g.SetStart(row, col)
	return m.snapshot(id), nil
}

// MoveEnd drags the end position under the same rules as MoveStart.
func (m *BoardManager) MoveEnd(id uuid.UUID, row, col int) (i.BoardState, error) {
	m.Lock()
	defer m.Unlock()

	g, ok := m.boards[id]
	if !ok {
		return i.BoardState{}, ErrBoardNotFound
	}
	g.SetEnd(row, col)
	return m.snapshot(id), nil
}

// Generate wipes the board's walls and runs the named generator over it.
func (m *BoardManager) Generate(id uuid.UUID, generator string) (i.BoardState, error) {
	gen, ok := m.generators[generator]
	if !ok {
		return i.BoardState{}, fmt.Errorf("%w: %q", ErrUnknownGenerator, generator)
	}

	m.Lock()
	defer m.Unlock()

	g, ok := m.boards[id]
	if !ok {
		return i.BoardState{}, ErrBoardNotFound
	}

	g.ResetWalls()
	gen.Carve(g)
	m.logger.Printf("%s[INFO]%s board %s: generated %q maze", config.LogInfoColor, config.LogColorReset, id, generator)
	return m.snapshot(id), nil
}

// Solve resets the board's search state, runs the named algorithm and
// reconstructs the path. An unreachable end is a normal outcome, not an
// error.
func (m *BoardManager) Solve(id uuid.UUID, algorithm string) (i.SolveReport, error) {
	searcher, ok := m.searchers[algorithm]
	if !ok {
		return i.SolveReport{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}

	m.Lock()
	defer m.Unlock()

	g, ok := m.boards[id]
	if !ok {
		return i.SolveReport{}, ErrBoardNotFound
	}

	g.ResetSearchState()
	trace := searcher.Solve(g)
	result := search.Finish(g, trace)

	m.logger.Printf("%s[INFO]%s board %s: %s visited %d cells, path length %d",
		config.LogInfoColor, config.LogColorReset, id, algorithm, result.VisitedCount(), result.PathLength())

	return i.SolveReport{
		Algorithm:    algorithm,
		Found:        result.Found,
		Trace:        result.Trace,
		Path:         result.Path,
		VisitedCount: result.VisitedCount(),
		PathLength:   result.PathLength(),
	}, nil
}

// Reset clears the board: walls plus search state when walls is true,
// search state only otherwise.
func (m *BoardManager) Reset(id uuid.UUID, walls bool) (i.BoardState, error) {
	m.Lock()
	defer m.Unlock()

	g, ok := m.boards[id]
	if !ok {
		return i.BoardState{}, ErrBoardNotFound
	}
	if walls {
		g.ResetWalls()
	} else {
		g.ResetSearchState()
	}
	return m.snapshot(id), nil
}

func (m *BoardManager) validateDimensions(rows, cols int) error {
	if rows < config.MinBoardDimension || cols < config.MinBoardDimension ||
		rows > m.maxRows || cols > m.maxCols {
		return fmt.Errorf("%w: %dx%d (allowed %d..%d x %d..%d)",
			ErrInvalidDimensions, rows, cols,
			config.MinBoardDimension, m.maxRows, config.MinBoardDimension, m.maxCols)
	}
	return nil
}

// saveBoard stores the grid under a fresh ID. Caller must hold the lock.
func (m *BoardManager) saveBoard(g *grid.Grid) uuid.UUID {
	id := uuid.New()
	for {
		if _, ok := m.boards[id]; !ok {
			break
		}
		id = uuid.New()
	}
	m.boards[id] = g
	return id
}

// snapshot builds a BoardState. Caller must hold at least the read lock.
func (m *BoardManager) snapshot(id uuid.UUID) i.BoardState {
	g := m.boards[id]
	return i.BoardState{
		ID:    id,
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Start: g.Start(),
		End:   g.End(),
		Walls: g.Walls(),
	}
}
