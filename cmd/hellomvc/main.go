package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/hello-mvc/internal/config"
	"github.com/deppfellow/hello-mvc/internal/handler"
	"github.com/deppfellow/hello-mvc/internal/logger"
	"github.com/deppfellow/hello-mvc/internal/middleware"
	"github.com/deppfellow/hello-mvc/internal/router"
	"github.com/deppfellow/hello-mvc/internal/server"
	"github.com/deppfellow/hello-mvc/internal/view"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize new relic: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	renderer, err := view.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load views")
	}

	srv := server.New(cfg, &log, loggerService)

	handlers := handler.NewHandlers(srv, renderer)
	middlewares := middleware.NewMiddlewares(srv)
	r := router.NewRouter(srv, handlers, middlewares, renderer)

	srv.SetupHTTPServer(r)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server failed")
		}
		return
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
