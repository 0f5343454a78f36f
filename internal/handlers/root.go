// internal/handlers/root.go
package handlers

import (
	"log/slog"
	"net/http"
)

// WelcomeResponse is the static payload served at the API root
type WelcomeResponse struct {
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Root returns the handler for GET /
func Root(version string, logger *slog.Logger) http.HandlerFunc {
	payload := WelcomeResponse{
		Message: "Welcome to the Item Catalog API",
		Version: version,
		Endpoints: map[string]string{
			"GET /items":         "List items with filtering and pagination",
			"GET /items/{id}":    "Get an item by ID",
			"POST /items":        "Create a new item",
			"PUT /items/{id}":    "Replace an item by ID",
			"PATCH /items/{id}":  "Partially update an item by ID",
			"DELETE /items/{id}": "Delete an item by ID",
			"GET /stats":         "Catalog aggregates",
			"GET /health":        "Health check",
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, logger, http.StatusOK, payload)
	}
}
