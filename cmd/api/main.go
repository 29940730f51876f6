// Package main is the entry point for the authentication API server.
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

	"github.com/ecommerce/backend/config"
	"github.com/ecommerce/backend/internal/infra/cache"
	"github.com/ecommerce/backend/internal/infra/db"
	"github.com/ecommerce/backend/internal/infra/dependency"
	"github.com/ecommerce/backend/internal/infra/server/router"
	"github.com/ecommerce/backend/internal/integration/entrypoint/controller"
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

	slog.Info("Starting authentication API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	if cfg.JWT.Secret == "change-me-in-production" {
		slog.Warn("JWT_SECRET is not set, using the built-in development secret")
	}

	// Optional Redis audit store
	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		redisConn, err := cache.NewRedisConnection(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis connection failed, auditing to log only", "error", err)
		} else {
			redisClient = redisConn.Client()
			defer func() {
				if err := redisConn.Close(); err != nil {
					slog.Error("Failed to close redis connection", "error", err)
				}
			}()
		}
	}

	// Initialize database connection
	var r *router.Router
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		r = router.NewRouter(controller.NewHealthController(func() bool { return false }, nil), nil, nil)
	} else {
		if err := database.Migrate(); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()

		injector, err := dependency.NewInjector(cfg, database.DB(), redisClient)
		if err != nil {
			slog.Error("Failed to wire dependencies", "error", err)
			os.Exit(1)
		}
		r = injector.Router

		slog.Info("Authentication gate initialized successfully",
			"audit_redis", redisClient != nil,
			"token_lifetime", cfg.JWT.Expiry.String(),
		)
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
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
