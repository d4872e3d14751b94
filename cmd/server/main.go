// Command server is the entry point for the RefuJobs API.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/RefuJobs/RefuJobs-server/internal/config"
	"github.com/RefuJobs/RefuJobs-server/internal/middleware"
	"github.com/RefuJobs/RefuJobs-server/internal/observability"
	"github.com/RefuJobs/RefuJobs-server/internal/server"
)

// @title RefuJobs API
// @version 1.0
// @description Job board API with job postings, resumes and bearer-token accounts
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@refujobs.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	middleware.SetupLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfig{
		ServiceName:  observability.ServiceName,
		Environment:  cfg.Env,
		Enabled:      cfg.TracingEnabled,
		Exporter:     cfg.TracingExporter,
		OTLPEndpoint: cfg.OTLPEndpoint,
		SamplerRatio: cfg.TracingSamplerRatio,
	})
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	srv, err := server.NewServer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case err := <-errCh:
		if err != nil {
			middleware.Logger.Error("Server stopped", slog.String("error", err.Error()))
		}
	case <-ctx.Done():
		middleware.Logger.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := errors.Join(srv.Shutdown(shutdownCtx), shutdownTracing(shutdownCtx)); err != nil {
		middleware.Logger.Error("Shutdown error", slog.String("error", err.Error()))
	}
}
