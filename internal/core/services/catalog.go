// internal/core/services/catalog.go
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/avidela/catalog-be/internal/core/domain"
	"github.com/avidela/catalog-be/internal/core/ports"
)

// Cache keys and TTLs for list and stats responses
const (
	cacheKeyItems = "items"
	cacheKeyStats = "stats:main"

	listCacheTTL  = time.Minute
	statsCacheTTL = 5 * time.Minute
)

// CatalogService handles catalog business logic: validation, store
// orchestration and response caching. The cache is optional; a nil
// cache disables it.
type CatalogService struct {
	store  ports.ItemStore
	cache  ports.CacheRepository
	logger *slog.Logger
}

// Statically assert that *CatalogService implements the CatalogService interface.
var _ ports.CatalogService = (*CatalogService)(nil)

// NewCatalogService creates a new catalog service
func NewCatalogService(store ports.ItemStore, cache ports.CacheRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		store:  store,
		cache:  cache,
		logger: logger.With(slog.String("service", "catalog")),
	}
}

// Create validates the payload and stores a new item. Validation runs
// before the store is touched, so invalid payloads never consume an ID.
func (s *CatalogService) Create(ctx context.Context, payload domain.ItemCreate) (domain.Item, error) {
	if verr := payload.Validate(); verr != nil {
		return domain.Item{}, verr
	}

	item := s.store.Insert(ctx, payload.ToItem())

	s.logger.InfoContext(ctx, "item created",
		slog.Int64("item_id", item.ID),
		slog.String("name", item.Name))

	s.invalidate(ctx)
	return item, nil
}

// Get retrieves an item by ID
func (s *CatalogService) Get(ctx context.Context, id int64) (domain.Item, error) {
	return s.store.Get(ctx, id)
}

// Replace validates the payload and fully overwrites the item,
// including resetting the description when the payload omits it.
func (s *CatalogService) Replace(ctx context.Context, id int64, payload domain.ItemCreate) (domain.Item, error) {
	if verr := payload.Validate(); verr != nil {
		return domain.Item{}, verr
	}

	item, err := s.store.Replace(ctx, id, payload.ToItem())
	if err != nil {
		return domain.Item{}, err
	}

	s.logger.InfoContext(ctx, "item replaced",
		slog.Int64("item_id", id))

	s.invalidate(ctx)
	return item, nil
}

// Update validates the provided fields and merges them into the item.
// Absent fields are left untouched.
func (s *CatalogService) Update(ctx context.Context, id int64, patch domain.ItemUpdate) (domain.Item, error) {
	if verr := patch.Validate(); verr != nil {
		return domain.Item{}, verr
	}

	item, err := s.store.Merge(ctx, id, patch)
	if err != nil {
		return domain.Item{}, err
	}

	s.logger.InfoContext(ctx, "item updated",
		slog.Int64("item_id", id))

	s.invalidate(ctx)
	return item, nil
}

// Delete removes an item and returns the deleted record
func (s *CatalogService) Delete(ctx context.Context, id int64) (domain.Item, error) {
	item, err := s.store.Delete(ctx, id)
	if err != nil {
		return domain.Item{}, err
	}

	s.logger.InfoContext(ctx, "item deleted",
		slog.Int64("item_id", id))

	s.invalidate(ctx)
	return item, nil
}

// List returns the filtered, paginated view of the catalog. Filters
// are validated before any filtering occurs.
func (s *CatalogService) List(ctx context.Context, params ports.ListParams) ([]domain.Item, error) {
	if verr := params.Validate(); verr != nil {
		return nil, verr
	}

	if s.cache == nil {
		return s.listFromStore(ctx, params), nil
	}

	key := cacheKeyItems + ":" + params.CacheKey()
	var items []domain.Item
	err := s.cache.GetOrSet(ctx, key, &items, func() (interface{}, error) {
		return s.listFromStore(ctx, params), nil
	}, listCacheTTL)
	if err != nil {
		// Cache trouble never fails a read; serve from the store.
		s.logger.WarnContext(ctx, "list cache unavailable",
			slog.String("error", err.Error()))
		return s.listFromStore(ctx, params), nil
	}

	return items, nil
}

func (s *CatalogService) listFromStore(ctx context.Context, params ports.ListParams) []domain.Item {
	items := ApplyFilters(s.store.ListAll(ctx), params)
	return Paginate(items, params.Skip, params.Limit)
}

// ExportAll returns every item unfiltered and unpaginated, in
// insertion order.
func (s *CatalogService) ExportAll(ctx context.Context) []domain.Item {
	return s.store.ListAll(ctx)
}

// Count returns the number of items in the catalog
func (s *CatalogService) Count(ctx context.Context) int {
	return s.store.Count(ctx)
}

// Stats computes catalog-wide aggregates. Value sums use decimals so
// large catalogs do not accumulate float error.
func (s *CatalogService) Stats(ctx context.Context) (domain.CatalogStats, error) {
	if s.cache == nil {
		return s.computeStats(ctx), nil
	}

	var stats domain.CatalogStats
	err := s.cache.GetOrSet(ctx, cacheKeyStats, &stats, func() (interface{}, error) {
		return s.computeStats(ctx), nil
	}, statsCacheTTL)
	if err != nil {
		s.logger.WarnContext(ctx, "stats cache unavailable",
			slog.String("error", err.Error()))
		return s.computeStats(ctx), nil
	}

	return stats, nil
}

func (s *CatalogService) computeStats(ctx context.Context) domain.CatalogStats {
	items := s.store.ListAll(ctx)

	stats := domain.CatalogStats{
		ItemsCount:   len(items),
		TotalValue:   decimal.Zero,
		AveragePrice: decimal.Zero,
	}

	priceSum := decimal.Zero
	for i := range items {
		price := decimal.NewFromFloat(items[i].Price)
		stats.TotalUnits += items[i].Quantity
		stats.TotalValue = stats.TotalValue.Add(price.Mul(decimal.NewFromInt(int64(items[i].Quantity))))
		priceSum = priceSum.Add(price)

		if items[i].InStock() {
			stats.InStockCount++
		} else {
			stats.OutOfStockCount++
		}
	}

	if len(items) > 0 {
		stats.AveragePrice = priceSum.DivRound(decimal.NewFromInt(int64(len(items))), 2)
	}

	return stats
}

// invalidate drops cached list and stats responses after a mutation
func (s *CatalogService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}

	if err := s.cache.DeletePattern(ctx, cacheKeyItems+":*"); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate list cache",
			slog.String("error", err.Error()))
	}
	if err := s.cache.Delete(ctx, cacheKeyStats); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate stats cache",
			slog.String("error", err.Error()))
	}
}
