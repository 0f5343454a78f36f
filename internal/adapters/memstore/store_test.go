package memstore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avidela/catalog-be/internal/adapters/memstore"
	"github.com/avidela/catalog-be/internal/core/domain"
)

func newItem(name string, price float64, qty int) domain.Item {
	return domain.Item{Name: name, Price: price, Quantity: qty}
}

func TestStore_Insert(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	first := store.Insert(ctx, newItem("Tea Set", 150, 2))
	second := store.Insert(ctx, newItem("Oil Lamp", 45, 1))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, 2, store.Count(ctx))
}

func TestStore_IDsNeverReused(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	a := store.Insert(ctx, newItem("First", 10, 1))
	b := store.Insert(ctx, newItem("Second", 20, 1))

	_, err := store.Delete(ctx, b.ID)
	require.NoError(t, err)
	_, err = store.Delete(ctx, a.ID)
	require.NoError(t, err)
	require.Equal(t, 0, store.Count(ctx))

	c := store.Insert(ctx, newItem("Third", 30, 1))
	assert.Equal(t, int64(3), c.ID)
}

func TestStore_Get(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	created := store.Insert(ctx, newItem("Tea Set", 150, 2))

	t.Run("existing_item", func(t *testing.T) {
		got, err := store.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("missing_item", func(t *testing.T) {
		_, err := store.Get(ctx, 999)
		var nfe *domain.NotFoundError
		require.ErrorAs(t, err, &nfe)
		assert.Equal(t, int64(999), nfe.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestStore_Replace(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	desc := "porcelain"
	created := store.Insert(ctx, domain.Item{Name: "Tea Set", Description: &desc, Price: 150, Quantity: 2})

	t.Run("replaces_every_field_but_keeps_id", func(t *testing.T) {
		replaced, err := store.Replace(ctx, created.ID, newItem("Oil Lamp", 45, 1))
		require.NoError(t, err)

		assert.Equal(t, created.ID, replaced.ID)
		assert.Equal(t, "Oil Lamp", replaced.Name)
		assert.Nil(t, replaced.Description)

		got, err := store.Get(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, replaced, got)
	})

	t.Run("missing_item", func(t *testing.T) {
		_, err := store.Replace(ctx, 999, newItem("Ghost", 1, 1))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestStore_Merge(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	desc := "porcelain"
	created := store.Insert(ctx, domain.Item{Name: "Tea Set", Description: &desc, Price: 150, Quantity: 2})

	t.Run("only_patched_fields_change", func(t *testing.T) {
		price := 99.5
		merged, err := store.Merge(ctx, created.ID, domain.ItemUpdate{Price: &price})
		require.NoError(t, err)

		assert.Equal(t, 99.5, merged.Price)
		assert.Equal(t, "Tea Set", merged.Name)
		require.NotNil(t, merged.Description)
		assert.Equal(t, "porcelain", *merged.Description)
		assert.Equal(t, 2, merged.Quantity)
	})

	t.Run("missing_item", func(t *testing.T) {
		_, err := store.Merge(ctx, 999, domain.ItemUpdate{})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	created := store.Insert(ctx, newItem("Tea Set", 150, 2))

	t.Run("returns_prior_value_and_removes", func(t *testing.T) {
		deleted, err := store.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created, deleted)
		assert.Equal(t, 0, store.Count(ctx))

		_, err = store.Get(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("missing_item_leaves_store_unchanged", func(t *testing.T) {
		store.Insert(ctx, newItem("Oil Lamp", 45, 1))
		before := store.Count(ctx)

		_, err := store.Delete(ctx, 999)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, before, store.Count(ctx))
	})
}

func TestStore_ListAll_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()

	store.Insert(ctx, newItem("First", 1, 1))
	second := store.Insert(ctx, newItem("Second", 2, 1))
	store.Insert(ctx, newItem("Third", 3, 1))

	_, err := store.Delete(ctx, second.ID)
	require.NoError(t, err)
	fourth := store.Insert(ctx, newItem("Fourth", 4, 1))
	assert.Equal(t, int64(4), fourth.ID)

	items := store.ListAll(ctx)
	require.Len(t, items, 3)
	assert.Equal(t, "First", items[0].Name)
	assert.Equal(t, "Third", items[1].Name)
	assert.Equal(t, "Fourth", items[2].Name)
}

func TestStore_ReadsReturnCopies(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	desc := "porcelain"
	created := store.Insert(ctx, domain.Item{Name: "Tea Set", Description: &desc, Price: 150, Quantity: 2})

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	got.Name = "Mutated"
	*got.Description = "mutated"

	fresh, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tea Set", fresh.Name)
	require.NotNil(t, fresh.Description)
	assert.Equal(t, "porcelain", *fresh.Description)
}

func TestStore_ConcurrentInsertsAssignUniqueIDs(t *testing.T) {
	const (
		goroutines = 8
		perWorker  = 50
	)

	ctx := context.Background()
	store := memstore.New()

	var wg sync.WaitGroup
	ids := make(chan int64, goroutines*perWorker)

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				item := store.Insert(ctx, newItem(fmt.Sprintf("item-%d-%d", worker, i), 10, 1))
				ids <- item.ID
			}
		}(g)
	}

	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, goroutines*perWorker)
	for id := range ids {
		assert.False(t, seen[id], "duplicate ID %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, goroutines*perWorker)
	assert.Equal(t, goroutines*perWorker, store.Count(ctx))
}
