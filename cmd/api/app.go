package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	_ "github.com/OpaceDigitalAgency/driving-lesson-hunter/docs" // Ensure docs are imported
	"github.com/OpaceDigitalAgency/driving-lesson-hunter/internal/centres"
	"github.com/OpaceDigitalAgency/driving-lesson-hunter/internal/config"
)

// App encapsulates application dependencies
type App struct {
	router        *gin.Engine
	logger        *slog.Logger
	searchService centres.Service
	cfg           *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	return NewAppWithService(cfg, logger, centres.NewSearchService(cfg, logger))
}

// NewAppWithService creates an application around an existing search service
func NewAppWithService(cfg *config.Config, logger *slog.Logger, searchService centres.Service) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	app := &App{
		router:        router,
		logger:        logger,
		searchService: searchService,
		cfg:           cfg,
	}

	// Register routes
	app.registerRoutes()

	logger.Info("application initialized")

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
