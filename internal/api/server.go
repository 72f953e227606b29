package api

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/federacion/fixture-scheduler/internal/api/handlers"
	"github.com/federacion/fixture-scheduler/internal/api/middleware"
	"github.com/federacion/fixture-scheduler/internal/api/websocket"
	"github.com/federacion/fixture-scheduler/internal/core/optimizer"
	"github.com/federacion/fixture-scheduler/internal/storage/sqlite"
)

// Server wires the gin engine, the SQLite-backed repositories, and the
// scheduling engine's optimizer service into one federation API process.
type Server struct {
	router           *gin.Engine
	db               *sql.DB
	repos            *sqlite.Repositories
	validate         *validator.Validate
	optimizerService *optimizer.Service
	wsHub            *websocket.Hub
}

// NewServer builds a Server over db, starts its websocket hub, and
// registers every route.
func NewServer(db *sql.DB) *Server {
	repos := sqlite.NewRepositories(db)
	validate := validator.New()

	wsHub := websocket.NewHub()
	optimizerService := optimizer.NewService(repos)
	optimizerService.SetBroadcaster(optimizer.NewOptimizationBroadcaster(wsHub))

	server := &Server{
		router:           gin.New(),
		db:               db,
		repos:            repos,
		validate:         validate,
		optimizerService: optimizerService,
		wsHub:            wsHub,
	}

	go wsHub.Run()

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) setupMiddleware() {
	s.router.Use(gin.Logger())
	s.router.Use(gin.Recovery())
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
	s.router.Use(middleware.ErrorHandler())
	s.router.Use(middleware.RequestValidator(s.validate))
}

func (s *Server) setupRoutes() {
	apiGroup := s.router.Group("/api/v1")

	clubHandler := handlers.NewClubHandler(s.repos.Clubs())
	apiGroup.GET("/clubs", clubHandler.GetClubs)
	apiGroup.POST("/clubs", clubHandler.CreateClub)
	apiGroup.GET("/clubs/:id", clubHandler.GetClub)
	apiGroup.PUT("/clubs/:id", clubHandler.UpdateClub)
	apiGroup.DELETE("/clubs/:id", clubHandler.DeleteClub)

	tournamentHandler := handlers.NewTournamentHandler(s.repos.Tournaments())
	apiGroup.GET("/tournaments", tournamentHandler.GetTournaments)
	apiGroup.POST("/tournaments", tournamentHandler.CreateTournament)
	apiGroup.GET("/tournaments/:id", tournamentHandler.GetTournament)
	apiGroup.PUT("/tournaments/:id", tournamentHandler.UpdateTournament)
	apiGroup.DELETE("/tournaments/:id", tournamentHandler.DeleteTournament)

	ruleHandler := handlers.NewRuleHandler(s.repos.Rules())
	apiGroup.GET("/rules", ruleHandler.GetRules)
	apiGroup.POST("/rules", ruleHandler.CreateRule)
	apiGroup.GET("/rules/:id", ruleHandler.GetRule)
	apiGroup.DELETE("/rules/:id", ruleHandler.DeleteRule)

	solveHandler := handlers.NewSolveHandler(s.optimizerService)
	apiGroup.POST("/solve", solveHandler.StartSolve)
	apiGroup.GET("/solve", solveHandler.ListSolveJobs)
	apiGroup.GET("/solve/sizing", solveHandler.PreviewSizing)
	apiGroup.GET("/solve/statistics", solveHandler.GetStatistics)
	apiGroup.GET("/solve/:jobId", solveHandler.GetSolveStatus)
	apiGroup.GET("/solve/:jobId/fixture", solveHandler.GetFixture)
	apiGroup.POST("/solve/:jobId/cancel", solveHandler.CancelSolve)

	s.router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWS(s.wsHub, c.Writer, c.Request)
	})

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// Run starts the HTTP server listening on addr.
func (s *Server) Run(addr string) error {
	log.Printf("Starting fixture-scheduler API server on %s", addr)
	return s.router.Run(addr)
}

// GetRouter exposes the underlying gin engine, e.g. for an
// httptest.NewRecorder-driven integration test that never binds a port.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
