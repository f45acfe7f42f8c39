// Package server defines the application container and the HTTP server
// lifecycle.
//
// Server owns:
//   - configuration
//   - the root logger and the optional New Relic service
//   - the *http.Server, configured from ServerConfig timeouts
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/deppfellow/hello-mvc/internal/config"
	loggerPkg "github.com/deppfellow/hello-mvc/internal/logger"
	"github.com/rs/zerolog"
)

// Server holds the shared resources handlers and middleware read from.
// It is not the HTTP server itself; that lives in httpServer.
type Server struct {
	Config        *config.Config
	Logger        *zerolog.Logger
	LoggerService *loggerPkg.LoggerService

	// StartedAt is reported by the status endpoint.
	StartedAt time.Time

	httpServer *http.Server
}

// New constructs a Server. It does not listen; see SetupHTTPServer and
// Start.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) *Server {
	return &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		StartedAt:     time.Now().UTC(),
	}
}

// SetupHTTPServer wraps handler in an http.Server bound to the configured
// port. Timeouts in config are seconds.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + s.Config.Server.Port,
		Handler:      handler,
		ReadTimeout:  time.Duration(s.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.Config.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.Config.Server.IdleTimeout) * time.Second,
	}
}

// Start listens on the configured address and serves until Shutdown.
// It returns nil after a graceful shutdown.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	return s.Serve(listener)
}

// Serve accepts connections on listener.
func (s *Server) Serve(listener net.Listener) error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Str("address", listener.Addr().String()).
		Str("env", s.Config.Primary.Env).
		Msg("starting server")

	if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Shutdown stops accepting connections, waits for in-flight requests until
// ctx expires, then flushes New Relic.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if deadline, ok := ctx.Deadline(); ok {
		s.LoggerService.Shutdown(time.Until(deadline))
	} else {
		s.LoggerService.Shutdown(5 * time.Second)
	}

	s.Logger.Info().Msg("server stopped")

	return nil
}
