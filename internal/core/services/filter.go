// internal/core/services/filter.go
package services

import (
	"strings"

	"github.com/avidela/catalog-be/internal/core/domain"
	"github.com/avidela/catalog-be/internal/core/ports"
)

// ApplyFilters narrows items with each configured predicate in turn:
// name substring, min price, max price, stock flag. The order matters;
// every predicate works on the survivors of the previous one. The
// input slice is never mutated.
func ApplyFilters(items []domain.Item, params ports.ListParams) []domain.Item {
	out := items

	if params.Name != "" {
		needle := strings.ToLower(params.Name)
		out = filter(out, func(i *domain.Item) bool {
			return strings.Contains(strings.ToLower(i.Name), needle)
		})
	}

	if params.MinPrice != nil {
		min := *params.MinPrice
		out = filter(out, func(i *domain.Item) bool {
			return i.Price >= min
		})
	}

	if params.MaxPrice != nil {
		max := *params.MaxPrice
		out = filter(out, func(i *domain.Item) bool {
			return i.Price <= max
		})
	}

	if params.InStock != nil {
		want := *params.InStock
		out = filter(out, func(i *domain.Item) bool {
			return i.InStock() == want
		})
	}

	return out
}

// Paginate slices out the [skip : skip+limit] window. Out-of-range
// values yield an empty or truncated slice, never an error.
func Paginate(items []domain.Item, skip, limit int) []domain.Item {
	if skip >= len(items) {
		return []domain.Item{}
	}

	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

func filter(items []domain.Item, keep func(*domain.Item) bool) []domain.Item {
	out := make([]domain.Item, 0, len(items))
	for i := range items {
		if keep(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out
}
