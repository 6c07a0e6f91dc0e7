// Package server wires the HTTP API together.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/quoteforge/quoteforge/internal/anthropic"
	"github.com/quoteforge/quoteforge/internal/catalog"
	"github.com/quoteforge/quoteforge/internal/config"
	"github.com/quoteforge/quoteforge/internal/db"
	"github.com/quoteforge/quoteforge/internal/generate"
	"github.com/quoteforge/quoteforge/internal/probe"
	"github.com/quoteforge/quoteforge/internal/ratelimit"
	"github.com/quoteforge/quoteforge/internal/settings"
	"github.com/quoteforge/quoteforge/internal/usage"
	"github.com/quoteforge/quoteforge/internal/validation"
	"github.com/quoteforge/quoteforge/internal/workflow"
)

// Server holds the wired API dependencies.
type Server struct {
	catalog   *catalog.Catalog
	validator *validation.Orchestrator
	prober    *probe.Prober
	gen       *generate.Service
	workflows *workflow.Runner
	settings  *settings.Store
	usage     *usage.Recorder
	limiter   *ratelimit.Manager
	model     string
}

// Deps bundles the dependencies of a Server.
type Deps struct {
	Catalog   *catalog.Catalog
	Validator *validation.Orchestrator
	Prober    *probe.Prober
	Generator *generate.Service
	Workflows *workflow.Runner
	Settings  *settings.Store
	Usage     *usage.Recorder
	Limiter   *ratelimit.Manager
	Model     string
}

// New constructs a Server from its dependencies.
func New(deps Deps) *Server {
	return &Server{
		catalog:   deps.Catalog,
		validator: deps.Validator,
		prober:    deps.Prober,
		gen:       deps.Generator,
		workflows: deps.Workflows,
		settings:  deps.Settings,
		usage:     deps.Usage,
		limiter:   deps.Limiter,
		model:     deps.Model,
	}
}

// RegisterRoutes attaches all API routes to the engine.
func (s *Server) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api")
	api.GET("/providers", s.listProviders)
	api.POST("/validate-key-basic", s.validateKeyBasic)
	api.POST("/validate-key", s.validateKey)
	api.POST("/debug-probe", s.debugProbe)
	api.POST("/generate-quote", s.generateQuote)
	api.POST("/generate-background", s.generateBackground)
	api.POST("/generate-music", s.generateMusic)
	api.POST("/generate-video", s.generateVideo)
	api.POST("/workflow", s.createWorkflow)
	api.GET("/workflow", s.getWorkflow)
	api.GET("/settings", s.getSettings)
	api.POST("/settings", s.saveSettings)
	api.GET("/usage", s.getUsage)
}

// Run boots the API server and blocks until ctx is cancelled or the
// listener fails.
func Run(ctx context.Context, cfg config.AppConfig, port int) error {
	configPath := config.ResolveConfigPath(cfg.ConfigPath)
	dsn := config.LoadDatabaseDSN(configPath)

	conn, errOpen := db.Open(dsn)
	if errOpen != nil {
		return errOpen
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}

	anthropicCfg := config.LoadAnthropicConfig(configPath)
	client := anthropic.NewClient(
		anthropic.WithBaseURL(anthropicCfg.BaseURL),
		anthropic.WithModel(anthropicCfg.Model),
		anthropic.WithTimeout(anthropicCfg.Timeout),
	)

	prober := probe.New(client)
	gen := generate.NewService(client)
	validationCfg := config.LoadValidationConfig(configPath)
	srv := New(Deps{
		Catalog:   catalog.New(),
		Validator: validation.New(prober, validation.WithDebounceWindow(validationCfg.DebounceWindow)),
		Prober:    prober,
		Generator: gen,
		Workflows: workflow.NewRunner(conn, gen),
		Settings:  settings.NewStore(conn),
		Usage:     usage.NewRecorder(conn),
		Limiter:   ratelimit.NewManager(config.LoadRateLimitConfig(configPath), nil, nil),
		Model:     anthropicCfg.Model,
	})

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())
	srv.RegisterRoutes(engine)

	if port <= 0 {
		port = 8318
	}
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if errShutdown := httpServer.Shutdown(shutdownCtx); errShutdown != nil {
			return errShutdown
		}
		return nil
	case errServe := <-errCh:
		if errors.Is(errServe, http.ErrServerClosed) {
			return nil
		}
		return errServe
	}
}

// requestLogger emits one structured line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Debug("request")
	}
}
