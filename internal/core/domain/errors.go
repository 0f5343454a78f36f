// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel for absent item IDs. NotFoundError
// matches it through errors.Is so callers can test either way.
var ErrNotFound = errors.New("item not found")

// NotFoundError reports a lookup for an ID that is not in the store
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("item with ID %d not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// FieldError describes a single constraint violation in a payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Input   any    `json:"input"`
}

// ValidationError aggregates every failing field of a payload. It is
// always produced before any store mutation or ID allocation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 1 {
		return fmt.Sprintf("validation failed: %s", e.Fields[0].Message)
	}
	return fmt.Sprintf("validation failed: %d invalid fields", len(e.Fields))
}
