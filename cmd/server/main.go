package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/folio-dev/portfolio-api/internal/app"
	"github.com/folio-dev/portfolio-api/internal/config"
	"github.com/folio-dev/portfolio-api/internal/logging"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// run returns before exiting so its deferred Sentry flush always happens
	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logging.New(cfg)

	flush, err := logging.InitSentry(cfg)
	if err != nil {
		slog.Warn("sentry initialization failed", "error", err)
	}
	defer flush()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	portfolio, err := app.New(ctx, cfg)
	if err != nil {
		logging.Report(err, "failed to start application", nil)
		return fmt.Errorf("failed to start application: %w", err)
	}
	defer portfolio.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           portfolio.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}
	slog.Info("shutting down")

	// Syncs in flight are detached from their requests; give them time to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
