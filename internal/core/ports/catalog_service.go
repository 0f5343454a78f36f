// internal/core/ports/catalog_service.go
package ports

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/avidela/catalog-be/internal/core/domain"
)

// Pagination defaults and bounds
const (
	DefaultSkip  = 0
	DefaultLimit = 10
	MaxLimit     = 100
)

// CatalogService defines the application service port for the catalog.
// This interface is implemented by the application service.
type CatalogService interface {
	Create(ctx context.Context, payload domain.ItemCreate) (domain.Item, error)
	Get(ctx context.Context, id int64) (domain.Item, error)
	Replace(ctx context.Context, id int64, payload domain.ItemCreate) (domain.Item, error)
	Update(ctx context.Context, id int64, patch domain.ItemUpdate) (domain.Item, error)
	Delete(ctx context.Context, id int64) (domain.Item, error)
	List(ctx context.Context, params ListParams) ([]domain.Item, error)
	ExportAll(ctx context.Context) []domain.Item
	Count(ctx context.Context) int
	Stats(ctx context.Context) (domain.CatalogStats, error)
}

// ListParams holds pagination and filter parameters for listing items.
// Filter fields are pointers so absent parameters stay distinguishable
// from zero values.
type ListParams struct {
	Skip  int
	Limit int

	Name     string
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
}

// DefaultListParams returns params with pagination defaults applied
func DefaultListParams() ListParams {
	return ListParams{
		Skip:  DefaultSkip,
		Limit: DefaultLimit,
	}
}

// Validate checks pagination bounds and filter consistency. It must be
// called before any filtering happens.
func (p *ListParams) Validate() *domain.ValidationError {
	var fields []domain.FieldError

	if p.Skip < 0 {
		fields = append(fields, domain.FieldError{
			Field:   "query -> skip",
			Message: "skip must be greater than or equal to 0",
			Type:    "greater_than_equal",
			Input:   p.Skip,
		})
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		fields = append(fields, domain.FieldError{
			Field:   "query -> limit",
			Message: "limit must be between 1 and 100",
			Type:    "less_than_equal",
			Input:   p.Limit,
		})
	}
	if p.MinPrice != nil && *p.MinPrice < 0 {
		fields = append(fields, domain.FieldError{
			Field:   "query -> min_price",
			Message: "min_price must be greater than or equal to 0",
			Type:    "greater_than_equal",
			Input:   *p.MinPrice,
		})
	}
	if p.MaxPrice != nil && *p.MaxPrice < 0 {
		fields = append(fields, domain.FieldError{
			Field:   "query -> max_price",
			Message: "max_price must be greater than or equal to 0",
			Type:    "greater_than_equal",
			Input:   *p.MaxPrice,
		})
	}
	if p.MinPrice != nil && p.MaxPrice != nil && *p.MinPrice > *p.MaxPrice {
		fields = append(fields, domain.FieldError{
			Field:   "query -> min_price",
			Message: "min_price must be less than or equal to max_price",
			Type:    "value_error",
			Input:   *p.MinPrice,
		})
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CacheKey returns a canonical string for the parameter set, suitable
// as a cache key suffix.
func (p *ListParams) CacheKey() string {
	var b strings.Builder
	fmt.Fprintf(&b, "skip=%d:limit=%d", p.Skip, p.Limit)
	if p.Name != "" {
		b.WriteString(":name=" + strings.ToLower(p.Name))
	}
	if p.MinPrice != nil {
		b.WriteString(":min=" + strconv.FormatFloat(*p.MinPrice, 'f', -1, 64))
	}
	if p.MaxPrice != nil {
		b.WriteString(":max=" + strconv.FormatFloat(*p.MaxPrice, 'f', -1, 64))
	}
	if p.InStock != nil {
		b.WriteString(":stock=" + strconv.FormatBool(*p.InStock))
	}
	return b.String()
}
