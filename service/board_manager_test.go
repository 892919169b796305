package service

import (
	"io"
	"log"
	"testing"

	"github.com/beka-birhanu/gridpath-api/pathfind/mazegen"
	"github.com/beka-birhanu/gridpath-api/pathfind/search"
	"github.com/beka-birhanu/gridpath-api/service/i"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestManager(t *testing.T) *BoardManager {
	t.Helper()
	m, err := NewBoardManager(&Config{
		Searchers:  []i.Searcher{search.BFS{}, search.DFS{}, search.AStar{}},
		Generators: []i.Generator{mazegen.Backtracker{}, mazegen.Spiral{}, mazegen.Division{}, mazegen.Wilson{}},
		MaxRows:    50,
		MaxCols:    50,
		Logger:     log.New(io.Discard, "", 0),
	})
	assert.NoError(t, err)
	return m
}

func TestNewBoardManager(t *testing.T) {
	t.Run("requires at least one searcher", func(t *testing.T) {
		_, err := NewBoardManager(&Config{Logger: log.New(io.Discard, "", 0)})
		assert.Error(t, err)
	})
}

func TestBoardLifecycle(t *testing.T) {
	m := newTestManager(t)

	t.Run("create returns an open board snapshot", func(t *testing.T) {
		state, err := m.NewBoard(6, 8)
		assert.NoError(t, err)
		assert.Equal(t, 6, state.Rows)
		assert.Equal(t, 8, state.Cols)
		assert.False(t, state.Walls[state.Start.Row][state.Start.Col])
		assert.False(t, state.Walls[state.End.Row][state.End.Col])
	})

	t.Run("rejects boards below the minimum dimension", func(t *testing.T) {
		_, err := m.NewBoard(4, 8)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("rejects boards above the configured maximum", func(t *testing.T) {
		_, err := m.NewBoard(51, 8)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})

	t.Run("unknown board id", func(t *testing.T) {
		_, err := m.Board(uuid.New())
		assert.ErrorIs(t, err, ErrBoardNotFound)
	})

	t.Run("remove forgets the board", func(t *testing.T) {
		state, err := m.NewBoard(5, 5)
		assert.NoError(t, err)
		assert.NoError(t, m.Remove(state.ID))
		assert.ErrorIs(t, m.Remove(state.ID), ErrBoardNotFound)
	})
}

func TestBoardMutations(t *testing.T) {
	m := newTestManager(t)
	created, err := m.NewBoard(10, 10)
	assert.NoError(t, err)
	id := created.ID

	t.Run("walling a free cell sticks", func(t *testing.T) {
		state, err := m.SetWall(id, 3, 3, true)
		assert.NoError(t, err)
		assert.True(t, state.Walls[3][3])
	})

	t.Run("walling the start cell is silently ignored", func(t *testing.T) {
		state, err := m.SetWall(id, created.Start.Row, created.Start.Col, true)
		assert.NoError(t, err)
		assert.False(t, state.Walls[created.Start.Row][created.Start.Col])
	})

	t.Run("dragging the end onto a wall is silently ignored", func(t *testing.T) {
		state, err := m.MoveEnd(id, 3, 3)
		assert.NoError(t, err)
		assert.Equal(t, created.End, state.End)
	})

	t.Run("dragging markers to free cells works", func(t *testing.T) {
		state, err := m.MoveStart(id, 5, 5)
		assert.NoError(t, err)
		assert.Equal(t, 5, state.Start.Row)
		assert.Equal(t, 5, state.Start.Col)
	})

	t.Run("resize clamps markers and drops walls", func(t *testing.T) {
		state, err := m.Resize(id, 5, 5)
		assert.NoError(t, err)
		assert.Equal(t, 5, state.Rows)
		assert.False(t, state.Walls[3][3])
		assert.LessOrEqual(t, state.End.Row, 4)
		assert.LessOrEqual(t, state.End.Col, 4)
	})

	t.Run("reset clears walls on demand", func(t *testing.T) {
		_, err := m.SetWall(id, 2, 2, true)
		assert.NoError(t, err)
		state, err := m.Reset(id, true)
		assert.NoError(t, err)
		assert.False(t, state.Walls[2][2])
	})
}

func TestSolve(t *testing.T) {
	m := newTestManager(t)
	created, err := m.NewBoard(5, 5)
	assert.NoError(t, err)
	id := created.ID

	t.Run("bfs on an open board finds the shortest path", func(t *testing.T) {
		report, err := m.Solve(id, "bfs")
		assert.NoError(t, err)
		assert.True(t, report.Found)
		assert.Equal(t, 9, report.PathLength)
		assert.Equal(t, report.VisitedCount, len(report.Trace))
		assert.Equal(t, created.Start, report.Path[0])
		assert.Equal(t, created.End, report.Path[len(report.Path)-1])
	})

	t.Run("consecutive runs reset search state", func(t *testing.T) {
		first, err := m.Solve(id, "astar")
		assert.NoError(t, err)
		second, err := m.Solve(id, "astar")
		assert.NoError(t, err)
		assert.Equal(t, first.PathLength, second.PathLength)
		assert.Equal(t, first.VisitedCount, second.VisitedCount)
	})

	t.Run("all registered algorithms agree on reachability", func(t *testing.T) {
		for _, algorithm := range []string{"bfs", "dfs", "astar"} {
			report, err := m.Solve(id, algorithm)
			assert.NoError(t, err)
			assert.True(t, report.Found, algorithm)
		}
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		_, err := m.Solve(id, "dijkstra")
		assert.ErrorIs(t, err, ErrUnknownAlgorithm)
	})

	t.Run("missing board", func(t *testing.T) {
		_, err := m.Solve(uuid.New(), "bfs")
		assert.ErrorIs(t, err, ErrBoardNotFound)
	})
}

func TestGenerate(t *testing.T) {
	m := newTestManager(t)
	created, err := m.NewBoard(9, 9)
	assert.NoError(t, err)
	id := created.ID

	t.Run("every registered generator leaves start and end clear", func(t *testing.T) {
		for _, generator := range []string{"random", "spiral", "recursive", "wilson"} {
			state, err := m.Generate(id, generator)
			assert.NoError(t, err, generator)
			assert.False(t, state.Walls[state.Start.Row][state.Start.Col], generator)
			assert.False(t, state.Walls[state.End.Row][state.End.Col], generator)
		}
	})

	t.Run("maze stays solvable by bfs after the backtracker", func(t *testing.T) {
		_, err := m.Generate(id, "random")
		assert.NoError(t, err)
		report, err := m.Solve(id, "bfs")
		assert.NoError(t, err)
		assert.True(t, report.Found)
	})

	t.Run("unknown generator", func(t *testing.T) {
		_, err := m.Generate(id, "kruskal")
		assert.ErrorIs(t, err, ErrUnknownGenerator)
	})
}
