// internal/core/ports/item_store.go
package ports

import (
	"context"

	"github.com/avidela/catalog-be/internal/core/domain"
)

// ItemStore defines the storage port for catalog items. Implementations
// must be safe for concurrent use: ID allocation and map mutation happen
// atomically, assigned IDs are strictly increasing and never reused
// within a process lifetime, and reads return copies so callers never
// observe a torn or aliased record.
type ItemStore interface {
	// Insert allocates the next ID, stores the item under it and
	// returns the stored record.
	Insert(ctx context.Context, item domain.Item) domain.Item

	// Get returns the item for id, or *domain.NotFoundError.
	Get(ctx context.Context, id int64) (domain.Item, error)

	// Replace overwrites every field except the ID.
	Replace(ctx context.Context, id int64, item domain.Item) (domain.Item, error)

	// Merge applies only the fields present in patch.
	Merge(ctx context.Context, id int64, patch domain.ItemUpdate) (domain.Item, error)

	// Delete removes the item and returns the prior value.
	Delete(ctx context.Context, id int64) (domain.Item, error)

	// ListAll returns every item in insertion order.
	ListAll(ctx context.Context) []domain.Item

	// Count returns the number of stored items.
	Count(ctx context.Context) int
}
