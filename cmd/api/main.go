// Package main is the entry point for the Wuyun API server.
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

	"github.com/zapponejosh/wuyun-api/internal/api"
	"github.com/zapponejosh/wuyun-api/internal/config"
	"github.com/zapponejosh/wuyun-api/internal/database"
	"github.com/zapponejosh/wuyun-api/internal/logger"
	"github.com/zapponejosh/wuyun-api/internal/metrics"
	"github.com/zapponejosh/wuyun-api/internal/theme"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Setup structured logging
	log := logger.Setup(cfg)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting wuyun API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
	)

	// Reference store
	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	applied, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	log.Info("database ready", slog.String("path", cfg.DatabasePath), slog.Int("migrations_applied", applied))

	// Page theme, hot-reloaded when a file is configured
	initial, err := theme.LoadOrDefault(cfg.ThemePath, cfg.AccentColor)
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	themes := theme.NewStore(initial)

	if cfg.ThemePath != "" {
		go func() {
			if err := theme.Watch(ctx, cfg.ThemePath, log, themes.Set); err != nil {
				log.Error("theme watcher stopped", slog.Any("error", err))
			}
		}()
	}

	m := metrics.New("wuyun")
	handlers := api.NewHandlers(db, themes, m, cfg, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.SetupRoutes(handlers, m, cfg, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
