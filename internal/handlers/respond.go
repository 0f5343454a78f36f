// internal/handlers/respond.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/avidela/catalog-be/internal/core/domain"
)

// Wire-format error bodies

// NotFoundResponse is the body for lookups of absent item IDs
type NotFoundResponse struct {
	Detail    string `json:"detail"`
	ItemID    int64  `json:"item_id"`
	ErrorType string `json:"error_type"`
}

// HTTPErrorResponse is the body for generic request errors such as
// malformed JSON or a non-numeric path ID
type HTTPErrorResponse struct {
	Detail     string `json:"detail"`
	StatusCode int    `json:"status_code"`
	ErrorType  string `json:"error_type"`
}

// ValidationErrorResponse is the body for payloads or query parameters
// that violate field constraints, one entry per failing field
type ValidationErrorResponse struct {
	Detail    string              `json:"detail"`
	ErrorType string              `json:"error_type"`
	Errors    []domain.FieldError `json:"errors"`
}

// InternalErrorResponse is the body for unexpected failures. The cause
// is logged server-side and never leaked to the client.
type InternalErrorResponse struct {
	Detail    string `json:"detail"`
	ErrorType string `json:"error_type"`
	Message   string `json:"message"`
}

// ItemResponse confirms a deletion and carries the deleted record
type ItemResponse struct {
	Message string       `json:"message"`
	Item    *domain.Item `json:"item,omitempty"`
}

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

func respondHTTPError(w http.ResponseWriter, logger *slog.Logger, status int, detail string) {
	respondJSON(w, logger, status, HTTPErrorResponse{
		Detail:     detail,
		StatusCode: status,
		ErrorType:  "http_error",
	})
}

func respondValidationError(w http.ResponseWriter, logger *slog.Logger, verr *domain.ValidationError) {
	respondJSON(w, logger, http.StatusUnprocessableEntity, ValidationErrorResponse{
		Detail:    "Validation failed",
		ErrorType: "validation_error",
		Errors:    verr.Fields,
	})
}

// respondError maps an error from the service layer to its wire shape.
// Not-found becomes a 404, validation a 422, anything else an opaque 500.
func respondError(ctx context.Context, w http.ResponseWriter, logger *slog.Logger, err error) {
	var nf *domain.NotFoundError
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &nf):
		respondJSON(w, logger, http.StatusNotFound, NotFoundResponse{
			Detail:    fmt.Sprintf("Item with ID %d not found", nf.ID),
			ItemID:    nf.ID,
			ErrorType: "item_not_found",
		})
	case errors.As(err, &verr):
		respondValidationError(w, logger, verr)
	default:
		logger.ErrorContext(ctx, "unhandled error",
			slog.String("error", err.Error()))
		respondJSON(w, logger, http.StatusInternalServerError, InternalErrorResponse{
			Detail:    "Internal Server Error",
			ErrorType: "internal_server_error",
			Message:   "An unexpected error occurred",
		})
	}
}
