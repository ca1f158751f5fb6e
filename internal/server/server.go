// Package server exposes cutting-plan generation, saved patterns and image
// uploads over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/piwi3910/PatternCut/internal/model"
	"github.com/piwi3910/PatternCut/internal/project"
)

const shutdownTimeout = 10 * time.Second

// Server is the HTTP front of the generator.
type Server struct {
	cfg     model.AppConfig
	store   *model.PatternStore
	logger  *zap.Logger
	metrics *Metrics
	router  *gin.Engine

	// saveMu serializes writes of the data file.
	saveMu sync.Mutex
}

// New builds a server and registers its routes. A nil store starts empty
// and a nil logger discards output.
func New(cfg model.AppConfig, store *model.PatternStore, logger *zap.Logger) *Server {
	if store == nil {
		store = model.NewPatternStore()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:     cfg,
		store:   store,
		logger:  logger,
		metrics: NewMetrics(),
	}
	s.metrics.PatternsStored.Set(float64(store.Len()))
	s.router = s.setupRouter()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run serves on cfg.Port until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	if err := os.MkdirAll(s.cfg.UploadDir, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.Int("port", s.cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	return nil
}

func (s *Server) setupRouter() *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = s.cfg.MaxUploadSize
	router.Use(recovery(s.logger))
	router.Use(requestLogger(s.logger))
	router.Use(metricsMiddleware(s.metrics))
	router.Use(cors())

	router.GET("/health", s.health())
	router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	router.Static("/uploads", s.cfg.UploadDir)

	api := router.Group("/api")
	{
		api.GET("/categories", s.listCategories())

		patterns := api.Group("/patterns")
		{
			patterns.GET("", s.listPatterns())
			patterns.POST("", s.createPattern())
			patterns.GET("/:id", s.getPattern())
			patterns.DELETE("/:id", s.deletePattern())
		}

		api.POST("/upload", s.uploadImage())

		generate := api.Group("/generate")
		{
			generate.POST("", s.generatePlan())
			generate.POST("/:format", s.exportPlan())
		}
	}

	if s.cfg.PublicDir != "" {
		fileServer := http.FileServer(http.Dir(s.cfg.PublicDir))
		router.NoRoute(func(c *gin.Context) {
			if c.Request.Method != http.MethodGet {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
				return
			}
			fileServer.ServeHTTP(c.Writer, c.Request)
		})
	}

	return router
}

// persist writes the pattern store to the data file when one is configured.
func (s *Server) persist() {
	s.metrics.PatternsStored.Set(float64(s.store.Len()))
	if s.cfg.DataFile == "" {
		return
	}
	s.saveMu.Lock()
	defer s.saveMu.Unlock()
	if err := project.SavePatterns(s.cfg.DataFile, s.store); err != nil {
		s.logger.Error("failed to save patterns",
			zap.String("path", s.cfg.DataFile),
			zap.Error(err))
	}
}
