package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yigit/coursemap/internal/bootstrap"
	"github.com/yigit/coursemap/internal/config"
)

// Server holds the state for the HTTP server.
type Server struct {
	config *config.Config
	router *gin.Engine
	dbPool *pgxpool.Pool
	logger zerolog.Logger
	http   *http.Server
}

// NewServer loads the catalog and builds the router. A database connection is
// only opened for the postgres catalog source.
func NewServer(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Server, error) {
	var dbPool *pgxpool.Pool
	if cfg.Catalog.Source == config.SourcePostgres {
		var err error
		dbPool, err = bootstrap.SetupDatabase(ctx, cfg, lgr)
		if err != nil {
			return nil, fmt.Errorf("failed to setup database: %w", err)
		}
	}

	cleanup := func() {
		if dbPool != nil {
			dbPool.Close()
		}
	}

	source, err := bootstrap.CatalogSource(cfg, dbPool)
	if err != nil {
		cleanup()
		return nil, err
	}

	deps, err := bootstrap.BuildDependencies(ctx, cfg, source, bootstrap.HistogramClient(cfg, lgr), lgr)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	router, err := bootstrap.SetupRouter(cfg, deps, lgr)
	if err != nil {
		cleanup()
		return nil, err
	}

	return &Server{
		config: cfg,
		router: router,
		dbPool: dbPool,
		logger: lgr,
	}, nil
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until ctx is done or SIGINT/SIGTERM arrives.
func (s *Server) Run(ctx context.Context) error {
	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			s.closePool()
			return fmt.Errorf("error starting server: %w", err)
		}
	case <-ctx.Done():
		s.logger.Info().Msg("Shutdown requested")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var shutdownErr error
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownErr = fmt.Errorf("server shutdown: %w", err)
		} else {
			s.logger.Info().Msg("HTTP server stopped")
		}
	}

	s.closePool()
	return shutdownErr
}

func (s *Server) closePool() {
	if s.dbPool != nil {
		s.dbPool.Close()
		s.dbPool = nil
		s.logger.Info().Msg("Database connection pool closed")
	}
}
