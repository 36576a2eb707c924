package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	apisetup "wa-console/internal/api"
	"wa-console/internal/bootstrap"
	"wa-console/internal/config"
	"wa-console/internal/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// devOrigins are the local web console dev servers allowed outside production.
var devOrigins = []string{"http://localhost:3000", "http://localhost:5173"}

// Server encapsulates the HTTP server and its dependencies
type Server struct {
	httpServer *http.Server
	router     *gin.Engine
	deps       *bootstrap.Dependencies
	config     *config.Config
	logger     *observability.Logger

	stopHub  context.CancelFunc
	serveErr chan error
}

// New creates a new Server instance
func New(cfg *config.Config, deps *bootstrap.Dependencies, logger *observability.Logger) *Server {
	return &Server{
		config:   cfg,
		deps:     deps,
		logger:   logger,
		serveErr: make(chan error, 1),
	}
}

// Setup builds the gin engine: CORS, observability middleware, then routes
func (s *Server) Setup() {
	s.router = gin.New()
	s.router.Use(cors.New(s.corsConfig()))
	s.router.Use(observability.Middleware(s.logger))

	api := apisetup.New(s.router.Group("/"), s.deps.Handlers, s.deps.Hub.Handler)
	api.RegisterRoutes()
}

func (s *Server) corsConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Cache-Control", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.AllowOrigins = []string{s.config.Services.WebAppURI}
	if !s.config.IsProduction() {
		corsConfig.AllowOrigins = append(corsConfig.AllowOrigins, devOrigins...)
	}
	return corsConfig
}

// Router exposes the configured handler for in-process tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start launches the outbound pool, the websocket hub and the listener. It
// returns once they are running; listener failures surface from
// WaitForShutdown.
func (s *Server) Start(ctx context.Context) error {
	if err := s.deps.OutboundPool.Start(ctx); err != nil {
		return fmt.Errorf("failed to start outbound pool: %w", err)
	}

	hubCtx, cancel := context.WithCancel(ctx)
	s.stopHub = cancel
	go s.deps.Hub.Run(hubCtx)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Server.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		s.logger.Info(ctx, fmt.Sprintf("Server starting on port %d", s.config.Server.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.serveErr <- err
		}
	}()

	return nil
}

// WaitForShutdown blocks until SIGINT, SIGTERM, ctx cancellation or a listener
// failure, then shuts down.
func (s *Server) WaitForShutdown(ctx context.Context) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var serveErr error
	select {
	case <-sigCtx.Done():
		s.logger.Info(ctx, "Shutting down server...")
	case serveErr = <-s.serveErr:
		s.logger.Error(ctx, "server failed", serveErr)
	}

	if err := s.Shutdown(context.Background()); err != nil {
		return err
	}
	return serveErr
}

// Shutdown stops accepting requests, gives in-flight ones shutdownTimeout to
// finish, disconnects websocket clients and drains queued gateway sends.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
	}

	if s.stopHub != nil {
		s.stopHub()
	}
	s.deps.Cleanup(ctx)

	s.logger.Info(ctx, "Server exited gracefully")
	return nil
}
