package boardapi

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/beka-birhanu/gridpath-api/pathfind/mazegen"
	"github.com/beka-birhanu/gridpath-api/pathfind/search"
	"github.com/beka-birhanu/gridpath-api/service"
	"github.com/beka-birhanu/gridpath-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager, err := service.NewBoardManager(&service.Config{
		Searchers:  []i.Searcher{search.BFS{}, search.DFS{}, search.AStar{}},
		Generators: []i.Generator{mazegen.Backtracker{}, mazegen.Spiral{}, mazegen.Division{}, mazegen.Wilson{}},
		MaxRows:    50,
		MaxCols:    50,
		Logger:     log.New(io.Discard, "", 0),
	})
	assert.NoError(t, err)

	controller, err := NewBoardController(manager)
	assert.NoError(t, err)

	engine := gin.New()
	controller.RegisterPublic(engine.Group("/api/v1"))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestBoardFlow(t *testing.T) {
	engine := newTestRouter(t)

	// Create board.
	w := doJSON(t, engine, http.MethodPost, "/api/v1/boards/", `{"rows":5,"cols":5}`)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var board BoardResponse
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&board))
	assert.NotEmpty(t, board.ID)
	assert.Equal(t, 5, board.Rows)

	base := "/api/v1/boards/" + board.ID

	t.Run("fetch snapshot", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, base, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("set a wall", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPut, base+"/walls", `{"row":2,"col":2,"wall":true}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var updated BoardResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&updated))
		assert.True(t, updated.Walls[2][2])
	})

	t.Run("solve with bfs", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, base+"/solve", `{"algorithm":"bfs"}`)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var solved SolveResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&solved))
		assert.True(t, solved.Found)
		assert.Equal(t, 9, solved.PathLength)
		assert.Equal(t, solved.VisitedCount, len(solved.Visited))
	})

	t.Run("generate a maze", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, base+"/maze", `{"generator":"recursive"}`)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var generated BoardResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&generated))
		assert.False(t, generated.Walls[generated.Start.Row][generated.Start.Col])
		assert.False(t, generated.Walls[generated.End.Row][generated.End.Col])
	})

	t.Run("reset the board", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, base+"/reset", `{"walls":true}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var cleared BoardResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&cleared))
		for r := range cleared.Walls {
			for c := range cleared.Walls[r] {
				assert.False(t, cleared.Walls[r][c])
			}
		}
	})

	t.Run("delete the board", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodDelete, base, "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, engine, http.MethodGet, base, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBoardErrors(t *testing.T) {
	engine := newTestRouter(t)

	t.Run("malformed board id", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodGet, "/api/v1/boards/not-a-uuid", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing board", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/boards/00000000-0000-0000-0000-000000000001/solve", `{"algorithm":"bfs"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("board too small", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/boards/", `{"rows":2,"cols":2}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing request body", func(t *testing.T) {
		w := doJSON(t, engine, http.MethodPost, "/api/v1/boards/", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		created := doJSON(t, engine, http.MethodPost, "/api/v1/boards/", `{"rows":5,"cols":5}`)
		var board BoardResponse
		assert.NoError(t, json.NewDecoder(created.Body).Decode(&board))

		w := doJSON(t, engine, http.MethodPost, "/api/v1/boards/"+board.ID+"/solve", `{"algorithm":"dijkstra"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
