// internal/adapters/memstore/store.go

// Package memstore provides the in-memory item store. It is the sole
// owner of all item records; every read hands out a copy.
package memstore

import (
	"context"
	"sync"

	"github.com/avidela/catalog-be/internal/core/domain"
	"github.com/avidela/catalog-be/internal/core/ports"
)

// Store is a concurrency-safe mapping from item ID to item record.
// A single RWMutex guards the map, the insertion-order index and the
// ID allocator, so allocation and insertion are atomic with respect
// to each other.
type Store struct {
	mu     sync.RWMutex
	items  map[int64]*domain.Item
	order  []int64
	nextID int64
}

// Statically assert that *Store implements the ItemStore interface.
var _ ports.ItemStore = (*Store)(nil)

// New creates an empty store. The first allocated ID is 1.
func New() *Store {
	return &Store{
		items: make(map[int64]*domain.Item),
	}
}

// Insert allocates the next ID, stores the item under it and returns
// the stored record. IDs are strictly increasing and never reused,
// even across deletions.
func (s *Store) Insert(_ context.Context, item domain.Item) domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	item.ID = s.nextID

	stored := item.Clone()
	s.items[item.ID] = &stored
	s.order = append(s.order, item.ID)

	return item
}

// Get returns the item for id, or *domain.NotFoundError if absent
func (s *Store) Get(_ context.Context, id int64) (domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return domain.Item{}, &domain.NotFoundError{ID: id}
	}
	return item.Clone(), nil
}

// Replace overwrites every field of the stored record except its ID
func (s *Store) Replace(_ context.Context, id int64, item domain.Item) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return domain.Item{}, &domain.NotFoundError{ID: id}
	}

	item.ID = id
	stored := item.Clone()
	s.items[id] = &stored

	return item, nil
}

// Merge applies only the fields present in patch and returns the
// merged record
func (s *Store) Merge(_ context.Context, id int64, patch domain.ItemUpdate) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return domain.Item{}, &domain.NotFoundError{ID: id}
	}

	patch.ApplyTo(item)
	return item.Clone(), nil
}

// Delete removes the item and returns the prior value
func (s *Store) Delete(_ context.Context, id int64) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return domain.Item{}, &domain.NotFoundError{ID: id}
	}

	delete(s.items, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return item.Clone(), nil
}

// ListAll returns copies of every item in insertion order
func (s *Store) ListAll(_ context.Context) []domain.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id].Clone())
	}
	return out
}

// Count returns the number of stored items
func (s *Store) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}
