// internal/handlers/items.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/avidela/catalog-be/internal/core/domain"
	"github.com/avidela/catalog-be/internal/core/ports"
)

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	service ports.CatalogService
	logger  *slog.Logger
}

// NewItemHandler creates a new item handler
func NewItemHandler(service ports.CatalogService, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "items")),
	}
}

// ListItems handles GET /items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	params, verr := parseListParams(r)
	if verr != nil {
		respondValidationError(w, h.logger, verr)
		return
	}

	items, err := h.service.List(ctx, params)
	if err != nil {
		respondError(ctx, w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, items)
}

// GetItem handles GET /items/{id}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	item, err := h.service.Get(ctx, id)
	if err != nil {
		respondError(ctx, w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// CreateItem handles POST /items
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var payload domain.ItemCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondHTTPError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.Create(ctx, payload)
	if err != nil {
		respondError(ctx, w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, item)
}

// ReplaceItem handles PUT /items/{id}
func (h *ItemHandler) ReplaceItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var payload domain.ItemCreate
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondHTTPError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.Replace(ctx, id, payload)
	if err != nil {
		respondError(ctx, w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// UpdateItem handles PATCH /items/{id}
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var patch domain.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondHTTPError(w, h.logger, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.service.Update(ctx, id, patch)
	if err != nil {
		respondError(ctx, w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, item)
}

// DeleteItem handles DELETE /items/{id}
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	item, err := h.service.Delete(ctx, id)
	if err != nil {
		respondError(ctx, w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, ItemResponse{
		Message: fmt.Sprintf("Item with ID %d has been deleted successfully", id),
		Item:    &item,
	})
}

// parseID extracts the numeric item ID from the request path. On a
// malformed ID it writes the 400 response itself and returns false.
func (h *ItemHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idStr := r.PathValue("id")

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id < 1 {
		respondHTTPError(w, h.logger, http.StatusBadRequest, "Invalid item ID format")
		return 0, false
	}
	return id, true
}

// parseListParams parses pagination and filter query parameters.
// Values that fail to parse are reported as field errors with their
// raw input so the client sees exactly what was rejected; range checks
// happen later in the service.
func parseListParams(r *http.Request) (ports.ListParams, *domain.ValidationError) {
	params := ports.DefaultListParams()
	var fields []domain.FieldError

	q := r.URL.Query()

	if v := q.Get("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fields = append(fields, domain.FieldError{
				Field:   "query -> skip",
				Message: "skip must be a valid integer",
				Type:    "int_parsing",
				Input:   v,
			})
		} else {
			params.Skip = n
		}
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fields = append(fields, domain.FieldError{
				Field:   "query -> limit",
				Message: "limit must be a valid integer",
				Type:    "int_parsing",
				Input:   v,
			})
		} else {
			params.Limit = n
		}
	}

	params.Name = q.Get("name")

	if v := q.Get("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			fields = append(fields, domain.FieldError{
				Field:   "query -> min_price",
				Message: "min_price must be a valid number",
				Type:    "float_parsing",
				Input:   v,
			})
		} else {
			params.MinPrice = &f
		}
	}

	if v := q.Get("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			fields = append(fields, domain.FieldError{
				Field:   "query -> max_price",
				Message: "max_price must be a valid number",
				Type:    "float_parsing",
				Input:   v,
			})
		} else {
			params.MaxPrice = &f
		}
	}

	if v := q.Get("in_stock"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			fields = append(fields, domain.FieldError{
				Field:   "query -> in_stock",
				Message: "in_stock must be a valid boolean",
				Type:    "bool_parsing",
				Input:   v,
			})
		} else {
			params.InStock = &b
		}
	}

	if len(fields) > 0 {
		return params, &domain.ValidationError{Fields: fields}
	}
	return params, nil
}
