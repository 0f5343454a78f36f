// cmd/api/main.go
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

	"github.com/redis/go-redis/v9"

	"github.com/avidela/catalog-be/internal/adapters/memstore"
	redis_a "github.com/avidela/catalog-be/internal/adapters/redis_adapter"
	"github.com/avidela/catalog-be/internal/core/ports"
	"github.com/avidela/catalog-be/internal/core/services"
	"github.com/avidela/catalog-be/internal/handlers"
	"github.com/avidela/catalog-be/internal/handlers/middleware"
	"github.com/avidela/catalog-be/internal/pkg/config"
	"github.com/avidela/catalog-be/internal/pkg/logger"
)

// Build information injected at compile time
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Initialize structured logger
	slogger := logger.SetupLogger("debug", "json")

	slogger.Info("starting item catalog service",
		slog.String("version", Version),
		slog.String("build_time", BuildTime),
	)

	// Load configuration
	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconfigure logger with loaded settings
	slogger = logger.SetupLogger(cfg.App.LogLevel, cfg.App.LogFormat)
	slogger.Info("configuration loaded",
		slog.String("environment", cfg.App.Environment),
		slog.String("log_level", cfg.App.LogLevel),
	)

	ctx := context.Background()

	deps, err := initializeDependencies(ctx, cfg, slogger)
	if err != nil {
		slogger.Error("failed to initialize dependencies", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer deps.cleanup()

	server := setupHTTPServer(cfg, deps, slogger)

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		slogger.Info("starting HTTP server",
			slog.String("address", cfg.GetServerAddress()),
		)
		serverErrors <- server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slogger.Error("server error", slog.String("error", err.Error()))
		}
	case sig := <-shutdown:
		slogger.Info("shutdown signal received",
			slog.String("signal", sig.String()),
		)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.GracefulTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slogger.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
			server.Close()
		}

		slogger.Info("server shutdown complete")
	}
}

// dependencies holds all application dependencies
type dependencies struct {
	store          *memstore.Store
	redisClient    *redis.Client
	cache          *redis_a.Cache
	catalogService *services.CatalogService
	itemHandler    *handlers.ItemHandler
	healthHandler  *handlers.HealthHandler
	exportHandler  *handlers.ExportHandler
	statsHandler   *handlers.StatsHandler
}

func (d *dependencies) cleanup() {
	if d.redisClient != nil {
		d.redisClient.Close()
	}
}

func initializeDependencies(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dependencies, error) {
	deps := &dependencies{}

	// The item store lives entirely in process memory
	deps.store = memstore.New()

	// Optional Redis response cache. The interface stays nil when
	// caching is disabled so the service skips it entirely.
	var cache ports.CacheRepository
	if cfg.Cache.Enabled {
		logger.Info("connecting to Redis",
			slog.String("address", cfg.GetCacheAddress()),
		)

		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.GetCacheAddress(),
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})

		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		deps.redisClient = redisClient
		deps.cache = redis_a.NewCache(redisClient, cfg.Cache.TTL, logger)
		cache = deps.cache
	}

	// Initialize services
	deps.catalogService = services.NewCatalogService(deps.store, cache, logger)

	// Initialize handlers
	deps.itemHandler = handlers.NewItemHandler(deps.catalogService, logger)
	deps.healthHandler = handlers.NewHealthHandler(deps.catalogService, cache, cfg.App.Version, logger)
	deps.exportHandler = handlers.NewExportHandler(deps.catalogService, logger)
	deps.statsHandler = handlers.NewStatsHandler(deps.catalogService, logger)

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

func setupHTTPServer(cfg *config.Config, deps *dependencies, logger *slog.Logger) *http.Server {
	// Create new ServeMux using Go 1.22+ features
	mux := http.NewServeMux()

	// Setup middleware chain, innermost first
	var handler http.Handler = mux

	handler = middleware.RequestID(handler)
	handler = middleware.Logger(logger)(handler)
	handler = middleware.Recovery(logger)(handler)

	if cfg.Security.RateLimitRequests > 0 {
		handler = middleware.RateLimit(cfg.Security.RateLimitRequests, cfg.Security.RateLimitDuration)(handler)
	}

	if len(cfg.Security.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.Security.AllowedOrigins)(handler)
	}

	if cfg.Security.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}

	registerRoutes(mux, deps, cfg, logger)

	server := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	return server
}

func registerRoutes(mux *http.ServeMux, deps *dependencies, cfg *config.Config, logger *slog.Logger) {
	// Root and health endpoints
	mux.HandleFunc("GET /{$}", handlers.Root(cfg.App.Version, logger))
	mux.HandleFunc("GET /health", deps.healthHandler.Health)

	// Item endpoints using Go 1.22 method-specific routing
	mux.HandleFunc("GET /items", deps.itemHandler.ListItems)
	mux.HandleFunc("POST /items", deps.itemHandler.CreateItem)
	mux.HandleFunc("GET /items/{id}", deps.itemHandler.GetItem)
	mux.HandleFunc("PUT /items/{id}", deps.itemHandler.ReplaceItem)
	mux.HandleFunc("PATCH /items/{id}", deps.itemHandler.UpdateItem)
	mux.HandleFunc("DELETE /items/{id}", deps.itemHandler.DeleteItem)

	// Export endpoints
	mux.HandleFunc("GET /items/export/json", deps.exportHandler.ExportJSON)
	mux.HandleFunc("GET /items/export/excel", deps.exportHandler.ExportExcel)

	// Stats endpoint
	mux.HandleFunc("GET /stats", deps.statsHandler.GetStats)
}
