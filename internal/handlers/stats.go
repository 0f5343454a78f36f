// internal/handlers/stats.go
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/avidela/catalog-be/internal/core/ports"
)

// StatsHandler handles catalog statistics requests
type StatsHandler struct {
	service ports.CatalogService
	logger  *slog.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(service ports.CatalogService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "stats")),
	}
}

// GetStats handles GET /stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.service.Stats(ctx)
	if err != nil {
		respondError(ctx, w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, stats)
}
