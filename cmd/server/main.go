package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grachmannico95/decline-analytics-be/internal/config"
	"github.com/grachmannico95/decline-analytics-be/internal/generator"
	"github.com/grachmannico95/decline-analytics-be/internal/handler"
	"github.com/grachmannico95/decline-analytics-be/internal/server"
	"github.com/grachmannico95/decline-analytics-be/internal/service"
	"github.com/grachmannico95/decline-analytics-be/internal/storage"
	"github.com/grachmannico95/decline-analytics-be/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	seed := cfg.Dataset.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	gen := generator.NewSeeded(seed)
	store := storage.NewMemoryStore(gen.Generate, log)
	log.Info(ctx, "Transaction store initialized",
		"seed", seed,
		"preload", cfg.Dataset.Preload,
	)

	if cfg.Dataset.Preload {
		if _, err := store.GetTransactions(ctx); err != nil {
			log.Fatal(ctx, "Failed to preload transactions",
				"error", err,
			)
		}
	}

	analyticsService := service.NewAnalyticsService(store, log)
	log.Info(ctx, "Services initialized")

	analyticsHandler := handler.NewAnalyticsHandler(analyticsService, log)
	healthHandler := handler.NewHealthHandler(store)
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, analyticsHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
