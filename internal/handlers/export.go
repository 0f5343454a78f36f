// internal/handlers/export.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tealeg/xlsx/v3"

	"github.com/avidela/catalog-be/internal/core/domain"
	"github.com/avidela/catalog-be/internal/core/ports"
)

// JSONExportResponse represents the JSON export envelope
type JSONExportResponse struct {
	Items    []domain.Item  `json:"items"`
	Metadata ExportMetadata `json:"metadata"`
}

// ExportMetadata contains metadata about the export
type ExportMetadata struct {
	ExportDate time.Time `json:"export_date"`
	TotalItems int       `json:"total_items"`
}

// ExportHandler handles catalog export operations
type ExportHandler struct {
	service ports.CatalogService
	logger  *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(service ports.CatalogService, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "export")),
	}
}

// ExportJSON handles GET /items/export/json
func (h *ExportHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items := h.service.ExportAll(ctx)

	h.logger.InfoContext(ctx, "catalog exported",
		slog.String("format", "json"),
		slog.Int("items", len(items)))

	w.Header().Set("Content-Disposition", `attachment; filename="catalog.json"`)
	respondJSON(w, h.logger, http.StatusOK, JSONExportResponse{
		Items: items,
		Metadata: ExportMetadata{
			ExportDate: time.Now().UTC(),
			TotalItems: len(items),
		},
	})
}

// ExportExcel handles GET /items/export/excel
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	items := h.service.ExportAll(ctx)

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Items")
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create worksheet",
			slog.String("error", err.Error()))
		respondError(ctx, w, h.logger, err)
		return
	}

	header := sheet.AddRow()
	for _, title := range []string{"ID", "Name", "Description", "Price", "Quantity", "In Stock"} {
		header.AddCell().Value = title
	}

	for i := range items {
		row := sheet.AddRow()
		row.AddCell().SetInt64(items[i].ID)
		row.AddCell().Value = items[i].Name
		if items[i].Description != nil {
			row.AddCell().Value = *items[i].Description
		} else {
			row.AddCell()
		}
		row.AddCell().SetFloatWithFormat(items[i].Price, "0.00")
		row.AddCell().SetInt(items[i].Quantity)
		row.AddCell().SetBool(items[i].InStock())
	}

	h.logger.InfoContext(ctx, "catalog exported",
		slog.String("format", "excel"),
		slog.Int("items", len(items)))

	filename := fmt.Sprintf("catalog_%s.xlsx", time.Now().UTC().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))

	if err := file.Write(w); err != nil {
		h.logger.ErrorContext(ctx, "failed to write workbook",
			slog.String("error", err.Error()))
	}
}
