package main

import (
	"fmt"
	"log"
	"os"

	"github.com/beka-birhanu/gridpath-api/api"
	boardapi "github.com/beka-birhanu/gridpath-api/api/board"
	api_i "github.com/beka-birhanu/gridpath-api/api/i"
	"github.com/beka-birhanu/gridpath-api/config"
	"github.com/beka-birhanu/gridpath-api/pathfind/mazegen"
	"github.com/beka-birhanu/gridpath-api/pathfind/search"
	"github.com/beka-birhanu/gridpath-api/service"
	"github.com/beka-birhanu/gridpath-api/service/i"
	"github.com/gin-gonic/gin"
)

// Global variables for dependencies
var (
	boardManager    i.BoardManager
	boardController api_i.Controller
	router          *api.Router
	appLogger       *log.Logger
)

func initBoardManager() {
	var err error
	boardManager, err = service.NewBoardManager(&service.Config{
		Searchers:  []i.Searcher{search.BFS{}, search.DFS{}, search.AStar{}},
		Generators: []i.Generator{mazegen.Backtracker{}, mazegen.Spiral{}, mazegen.Division{}, mazegen.Wilson{}},
		MaxRows:    config.Envs.MaxBoardRows,
		MaxCols:    config.Envs.MaxBoardCols,
		Logger:     log.New(os.Stdout, fmt.Sprintf("%s[BOARDS]%s ", config.ColorCyan, config.ColorReset), log.LstdFlags),
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating board manager: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s board manager initialized", config.LogInfoColor, config.LogColorReset)
}

func initBoardController() {
	var err error
	boardController, err = boardapi.NewBoardController(boardManager)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s creating board controller: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s board controller initialized", config.LogInfoColor, config.LogColorReset)
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{boardController},
	})
	appLogger.Printf("%s[INFO]%s router initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	gin.SetMode(config.Envs.GinMode)

	appLogger = log.New(os.Stdout, fmt.Sprintf("%s[APP]%s ", config.ColorGreen, config.ColorReset), log.LstdFlags)

	initBoardManager()
	initBoardController()
	initRouter()

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Printf("%s[ERROR]%s starting server: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
}
