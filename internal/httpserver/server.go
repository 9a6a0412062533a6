package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/datacube/topic-search/internal/logger"
)

// Server wraps an http.Server with a configured Gin engine and manages its
// lifecycle.
type Server struct {
	engine *gin.Engine
	server *http.Server
	config *Config
	logger logger.Logger
}

// RouteRegistrar registers routes on the engine. Implementations typically
// live in the api package.
type RouteRegistrar func(*gin.Engine)

// New builds a Server with the standard middleware chain: recovery, request
// ID + logger injection, request logging, and CORS. Health routes are
// registered with the given readiness checks; application routes are
// registered via the registrars.
func New(cfg *Config, log logger.Logger, checks []HealthChecker, registrars ...RouteRegistrar) *Server {
	cfg.SetDefaults()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(RecoveryMiddleware())
	engine.Use(RequestIDLoggerMiddleware(log))
	engine.Use(LoggerMiddleware())
	if cfg.CORS.Enabled {
		engine.Use(CORSMiddleware(cfg.CORS))
	}

	RegisterHealthRoutesWithChecks(engine, cfg.ServiceName, cfg.ServiceVersion, checks...)

	for _, register := range registrars {
		register(engine)
	}

	return &Server{
		engine: engine,
		config: cfg,
		logger: log,
		server: &http.Server{
			Addr:         ":" + strconv.Itoa(cfg.Port),
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Engine exposes the underlying Gin engine, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start runs the server until the context is cancelled, then shuts it down
// gracefully within the configured shutdown timeout.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("http server listening",
			logger.String("service", s.config.ServiceName),
			logger.Int("port", s.config.Port),
		)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("graceful shutdown failed", logger.Error(err))
		return err
	}

	s.logger.Info("http server stopped")
	return nil
}
