package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avidela/catalog-be/internal/adapters/memstore"
	redis_a "github.com/avidela/catalog-be/internal/adapters/redis_adapter"
	"github.com/avidela/catalog-be/internal/core/domain"
	"github.com/avidela/catalog-be/internal/core/services"
	"github.com/avidela/catalog-be/internal/handlers"
	"github.com/avidela/catalog-be/test/helpers"
)

func TestRoot(t *testing.T) {
	handler := handlers.Root("1.2.3", helpers.TestLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[handlers.WelcomeResponse](t, rec)
	assert.Equal(t, "Welcome to the Item Catalog API", body.Message)
	assert.Equal(t, "1.2.3", body.Version)
	assert.Contains(t, body.Endpoints, "GET /items")
	assert.Contains(t, body.Endpoints, "DELETE /items/{id}")
}

func TestGetStats(t *testing.T) {
	svc := services.NewCatalogService(memstore.New(), nil, helpers.TestLogger())
	h := handlers.NewStatsHandler(svc, helpers.TestLogger())

	_, err := svc.Create(t.Context(), domain.ItemCreate{Name: "Tea Set", Price: 150, Quantity: helpers.IntPtr(2)})
	require.NoError(t, err)
	_, err = svc.Create(t.Context(), domain.ItemCreate{Name: "Oil Lamp", Price: 50, Quantity: helpers.IntPtr(0)})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	h.GetStats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody[map[string]interface{}](t, rec)
	assert.EqualValues(t, 2, body["items_count"])
	assert.EqualValues(t, 2, body["total_units"])
	assert.EqualValues(t, 1, body["in_stock_count"])
	assert.EqualValues(t, 1, body["out_of_stock_count"])
	assert.Equal(t, "300", body["total_value"])
	assert.Equal(t, "100", body["average_price"])
}

func TestHealth(t *testing.T) {
	t.Run("without_cache", func(t *testing.T) {
		svc := services.NewCatalogService(memstore.New(), nil, helpers.TestLogger())
		_, err := svc.Create(t.Context(), helpers.CreateTestPayload())
		require.NoError(t, err)

		h := handlers.NewHealthHandler(svc, nil, "test", helpers.TestLogger())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		h.Health(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Cache-Control"), "no-cache")

		body := decodeBody[handlers.HealthStatus](t, rec)
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, 1, body.ItemsCount)
		assert.Equal(t, "test", body.Version)
		assert.Empty(t, body.Services)
		assert.NotEmpty(t, body.System.GoVersion)
	})

	t.Run("with_healthy_cache", func(t *testing.T) {
		tr := helpers.SetupTestRedis(t)
		cache := redis_a.NewCache(tr.Client, time.Minute, helpers.TestLogger())
		svc := services.NewCatalogService(memstore.New(), cache, helpers.TestLogger())
		h := handlers.NewHealthHandler(svc, cache, "test", helpers.TestLogger())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		h.Health(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[handlers.HealthStatus](t, rec)
		assert.Equal(t, "healthy", body.Status)
		require.Contains(t, body.Services, "cache")
		assert.Equal(t, "healthy", body.Services["cache"].Status)
	})

	t.Run("degrades_when_cache_is_down_but_still_200", func(t *testing.T) {
		tr := helpers.SetupTestRedis(t)
		cache := redis_a.NewCache(tr.Client, time.Minute, helpers.TestLogger())
		svc := services.NewCatalogService(memstore.New(), cache, helpers.TestLogger())
		h := handlers.NewHealthHandler(svc, cache, "test", helpers.TestLogger())

		tr.Server.Close()

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		h.Health(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[handlers.HealthStatus](t, rec)
		assert.Equal(t, "degraded", body.Status)
		require.Contains(t, body.Services, "cache")
		assert.Equal(t, "unhealthy", body.Services["cache"].Status)
	})
}
