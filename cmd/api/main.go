// Package main is the entry point for the SFT API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/sft-api/backend/config"
	"github.com/sft-api/backend/internal/infra/db"
	"github.com/sft-api/backend/internal/infra/dependency"
	"github.com/sft-api/backend/internal/infra/server/router"
	"github.com/sft-api/backend/internal/integration/entrypoint/controller"
	"github.com/sft-api/backend/internal/integration/lock"
	"github.com/sft-api/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting SFT API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"database_driver", cfg.Database.Driver,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database connection
	database, err := db.NewConnection(&cfg.Database)
	var r *router.Router
	if err != nil {
		slog.Warn("Database connection failed, serving health checks only",
			"error", err,
		)
		r = router.NewRouter(controller.NewHealthController(func() bool { return false }, nil), nil, nil, nil, nil, nil, nil, nil, nil)
	} else {
		// Run database migrations
		if err := database.AutoMigrate(persistence.Models()...); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()

		// The maintenance lock is optional; without Redis only in-process
		// calls are collapsed.
		var redisClient redis.UniversalClient
		if cfg.Maintenance.LockEnabled {
			client, err := lock.NewRedisClient(ctx, cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
			if err != nil {
				slog.Warn("Redis unavailable, maintenance lock disabled", "error", err)
			} else {
				redisClient = client
				defer func() { _ = client.Close() }()
			}
		}

		injector := dependency.NewInjector(cfg, database.DB(), redisClient)
		r = injector.Router
		go injector.RateLimiter.RunCleanup(ctx, cfg.RateLimit.Window)
	}

	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	<-ctx.Done()

	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
