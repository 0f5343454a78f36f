// internal/handlers/health.go
package handlers

import (
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/avidela/catalog-be/internal/core/ports"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	service   ports.CatalogService
	cache     ports.CacheRepository
	version   string
	logger    *slog.Logger
	startTime time.Time
}

// NewHealthHandler creates a new health handler. cache may be nil when
// response caching is disabled.
func NewHealthHandler(service ports.CatalogService, cache ports.CacheRepository, version string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		service:   service,
		cache:     cache,
		version:   version,
		logger:    logger.With(slog.String("handler", "health")),
		startTime: time.Now(),
	}
}

// HealthStatus represents the health of the application
type HealthStatus struct {
	Status     string                 `json:"status"`
	ItemsCount int                    `json:"items_count"`
	Version    string                 `json:"version"`
	Uptime     string                 `json:"uptime"`
	Timestamp  time.Time              `json:"timestamp"`
	Services   map[string]ServiceInfo `json:"services,omitempty"`
	System     SystemInfo             `json:"system"`
}

// ServiceInfo represents the status of an optional dependency
type ServiceInfo struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
}

// SystemInfo represents system-level information
type SystemInfo struct {
	GoVersion     string `json:"go_version"`
	NumGoroutines int    `json:"num_goroutines"`
	NumCPU        int    `json:"num_cpu"`
	MemoryAllocMB uint64 `json:"memory_alloc_mb"`
}

// Health handles GET /health. The store lives in-process so the
// endpoint always answers 200; a failing cache only degrades the
// reported status.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	health := HealthStatus{
		Status:     "healthy",
		ItemsCount: h.service.Count(ctx),
		Version:    h.version,
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
		Timestamp:  time.Now(),
		System:     getSystemInfo(),
	}

	if h.cache != nil {
		health.Services = map[string]ServiceInfo{
			"cache": h.checkCache(r),
		}
		if health.Services["cache"].Status != "healthy" {
			health.Status = "degraded"
		}
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respondJSON(w, h.logger, http.StatusOK, health)
}

func (h *HealthHandler) checkCache(r *http.Request) ServiceInfo {
	start := time.Now()
	info := ServiceInfo{Status: "healthy"}

	if err := h.cache.Ping(r.Context()); err != nil {
		info.Status = "unhealthy"
		info.Message = err.Error()
		h.logger.ErrorContext(r.Context(), "cache health check failed",
			slog.String("error", err.Error()))
		return info
	}

	info.ResponseTime = time.Since(start).String()
	return info
}

func getSystemInfo() SystemInfo {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return SystemInfo{
		GoVersion:     runtime.Version(),
		NumGoroutines: runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
		MemoryAllocMB: memStats.Alloc / 1024 / 1024,
	}
}
