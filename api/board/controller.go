package boardapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/gridpath-api/service"
	"github.com/beka-birhanu/gridpath-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BoardController manages board lifecycle, generation and solve requests.
type BoardController struct {
	boardManager i.BoardManager
}

// NewBoardController initializes a BoardController.
func NewBoardController(bm i.BoardManager) (*BoardController, error) {
	if bm == nil {
		return nil, errors.New("board manager is required")
	}
	return &BoardController{boardManager: bm}, nil
}

// RegisterPublic registers public routes.
func (bc *BoardController) RegisterPublic(route *gin.RouterGroup) {
	boards := route.Group("/boards")
	{
		boards.POST("/", bc.create)
		boards.GET("/:ID", bc.board)
		boards.DELETE("/:ID", bc.remove)
		boards.PUT("/:ID/size", bc.resize)
		boards.PUT("/:ID/walls", bc.setWall)
		boards.PUT("/:ID/start", bc.moveStart)
		boards.PUT("/:ID/end", bc.moveEnd)
		boards.POST("/:ID/maze", bc.generate)
		boards.POST("/:ID/solve", bc.solve)
		boards.POST("/:ID/reset", bc.reset)
	}
}

// RegisterProtected registers protected routes.
func (bc *BoardController) RegisterProtected(route *gin.RouterGroup) {}

// create handles board creation requests.
func (bc *BoardController) create(ctx *gin.Context) {
	var request CreateBoardRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := bc.boardManager.NewBoard(request.Rows, request.Cols)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, toBoardResponse(state))
}

// board returns the current snapshot of a board.
func (bc *BoardController) board(ctx *gin.Context) {
	id, ok := bc.boardID(ctx)
	if !ok {
		return
	}

	state, err := bc.boardManager.Board(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, toBoardResponse(state))
}

// remove discards a board.
func (bc *BoardController) remove(ctx *gin.Context) {
	id, ok := bc.boardID(ctx)
	if !ok {
		return
	}

	if err := bc.boardManager.Remove(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// resize reallocates a board's grid.
func (bc *BoardController) resize(ctx *gin.Context) {
	id, ok := bc.boardID(ctx)
	if !ok {
		return
	}

	var request ResizeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := bc.boardManager.Resize(id, request.Rows, request.Cols)
	if err != nil {
		bc.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toBoardResponse(state))
}

// setWall sets or clears one wall cell.
func (bc *BoardController) setWall(ctx *gin.Context) {
	id, ok := bc.boardID(ctx)
	if !ok {
		return
	}

	var request WallRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := bc.boardManager.SetWall(id, request.Row, request.Col, request.Wall)
	if err != nil {
		bc.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toBoardResponse(state))
}

// moveStart drags the start marker.
func (bc *BoardController) moveStart(ctx *gin.Context) {
	bc.movePosition(ctx, bc.boardManager.MoveStart)
}

// moveEnd drags the end marker.
func (bc *BoardController) moveEnd(ctx *gin.Context) {
	bc.movePosition(ctx, bc.boardManager.MoveEnd)
}

func (bc *BoardController) movePosition(ctx *gin.Context, move func(uuid.UUID, int, int) (i.BoardState, error)) {
	id, ok := bc.boardID(ctx)
	if !ok {
		return
	}

	var request PositionRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := move(id, request.Row, request.Col)
	if err != nil {
		bc.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toBoardResponse(state))
}

// generate runs a maze generator over the board.
func (bc *BoardController) generate(ctx *gin.Context) {
	id, ok := bc.boardID(ctx)
	if !ok {
		return
	}

	var request GenerateRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := bc.boardManager.Generate(id, request.Generator)
	if err != nil {
		bc.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toBoardResponse(state))
}

// solve runs a search algorithm over the board.
func (bc *BoardController) solve(ctx *gin.Context) {
	id, ok := bc.boardID(ctx)
	if !ok {
		return
	}

	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := bc.boardManager.Solve(id, request.Algorithm)
	if err != nil {
		bc.writeServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &SolveResponse{
		Algorithm:    report.Algorithm,
		Found:        report.Found,
		Visited:      report.Trace,
		Path:         report.Path,
		VisitedCount: report.VisitedCount,
		PathLength:   report.PathLength,
	})
}

// reset clears the board's walls or just its search state.
func (bc *BoardController) reset(ctx *gin.Context) {
	id, ok := bc.boardID(ctx)
	if !ok {
		return
	}

	var request ResetRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := bc.boardManager.Reset(id, request.Walls)
	if err != nil {
		bc.writeServiceError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toBoardResponse(state))
}

// boardID parses the :ID path parameter, writing the error response itself.
func (bc *BoardController) boardID(ctx *gin.Context) (uuid.UUID, bool) {
	idString := ctx.Params.ByName("ID")
	id, err := uuid.Parse(idString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid board id"})
		return uuid.Nil, false
	}
	return id, true
}

func (bc *BoardController) writeServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrBoardNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func toBoardResponse(state i.BoardState) *BoardResponse {
	return &BoardResponse{
		ID:    state.ID.String(),
		Rows:  state.Rows,
		Cols:  state.Cols,
		Start: state.Start,
		End:   state.End,
		Walls: state.Walls,
	}
}
