package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/avidela/catalog-be/internal/adapters/memstore"
	"github.com/avidela/catalog-be/internal/core/domain"
	"github.com/avidela/catalog-be/internal/core/ports"
	"github.com/avidela/catalog-be/internal/core/services"
	"github.com/avidela/catalog-be/internal/handlers"
	"github.com/avidela/catalog-be/test/helpers"
	"github.com/avidela/catalog-be/test/mocks"
)

// newItemsMux wires the item routes onto a mux backed by the given
// service so path values resolve the same way they do in production.
func newItemsMux(service ports.CatalogService) *http.ServeMux {
	h := handlers.NewItemHandler(service, helpers.TestLogger())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /items", h.ListItems)
	mux.HandleFunc("POST /items", h.CreateItem)
	mux.HandleFunc("GET /items/{id}", h.GetItem)
	mux.HandleFunc("PUT /items/{id}", h.ReplaceItem)
	mux.HandleFunc("PATCH /items/{id}", h.UpdateItem)
	mux.HandleFunc("DELETE /items/{id}", h.DeleteItem)
	return mux
}

func newCatalogMux(t *testing.T) (*http.ServeMux, ports.CatalogService) {
	t.Helper()
	svc := services.NewCatalogService(memstore.New(), nil, helpers.TestLogger())
	return newItemsMux(svc), svc
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestCreateItem(t *testing.T) {
	t.Run("valid_payload_returns_201", func(t *testing.T) {
		mux, _ := newCatalogMux(t)

		rec := doJSON(t, mux, http.MethodPost, "/items", helpers.CreateTestPayload())

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		item := decodeBody[domain.Item](t, rec)
		assert.Equal(t, int64(1), item.ID)
		assert.Equal(t, "Test Victorian Tea Set", item.Name)
		assert.Equal(t, 2, item.Quantity)
	})

	t.Run("invalid_payload_returns_422_with_field_errors", func(t *testing.T) {
		mux, _ := newCatalogMux(t)

		rec := doJSON(t, mux, http.MethodPost, "/items", domain.ItemCreate{Name: "ab", Price: -1})

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		body := decodeBody[handlers.ValidationErrorResponse](t, rec)
		assert.Equal(t, "validation_error", body.ErrorType)
		require.Len(t, body.Errors, 2)
		assert.Equal(t, "body -> name", body.Errors[0].Field)
		assert.Equal(t, "string_too_short", body.Errors[0].Type)
		assert.Equal(t, "body -> price", body.Errors[1].Field)
		assert.Equal(t, "greater_than", body.Errors[1].Type)
	})

	t.Run("malformed_json_returns_400", func(t *testing.T) {
		mux, _ := newCatalogMux(t)

		req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewBufferString("{not json"))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		body := decodeBody[handlers.HTTPErrorResponse](t, rec)
		assert.Equal(t, "http_error", body.ErrorType)
		assert.Equal(t, http.StatusBadRequest, body.StatusCode)
		assert.Equal(t, "Invalid request body", body.Detail)
	})
}

func TestGetItem(t *testing.T) {
	mux, svc := newCatalogMux(t)
	created, err := svc.Create(t.Context(), helpers.CreateTestPayload())
	require.NoError(t, err)

	t.Run("existing_item", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, fmt.Sprintf("/items/%d", created.ID), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		item := decodeBody[domain.Item](t, rec)
		assert.Equal(t, created.ID, item.ID)
		assert.Equal(t, created.Name, item.Name)
	})

	t.Run("missing_item_returns_404", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/items/999", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeBody[handlers.NotFoundResponse](t, rec)
		assert.Equal(t, "item_not_found", body.ErrorType)
		assert.Equal(t, int64(999), body.ItemID)
		assert.Equal(t, "Item with ID 999 not found", body.Detail)
	})

	t.Run("non_numeric_id_returns_400", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/items/abc", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody[handlers.HTTPErrorResponse](t, rec)
		assert.Equal(t, "Invalid item ID format", body.Detail)
	})

	t.Run("zero_id_returns_400", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/items/0", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListItems(t *testing.T) {
	mux, svc := newCatalogMux(t)
	for i, name := range []string{"Victorian Tea Set", "Brass Oil Lamp", "Tea Caddy"} {
		_, err := svc.Create(t.Context(), domain.ItemCreate{
			Name:     name,
			Price:    float64(10 * (i + 1)),
			Quantity: helpers.IntPtr(i),
		})
		require.NoError(t, err)
	}

	t.Run("defaults", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/items", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		items := decodeBody[[]domain.Item](t, rec)
		assert.Len(t, items, 3)
	})

	t.Run("filters_apply", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/items?min_price=25&in_stock=true", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		items := decodeBody[[]domain.Item](t, rec)
		require.Len(t, items, 1)
		assert.Equal(t, "Tea Caddy", items[0].Name)
	})

	t.Run("pagination_applies", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/items?skip=1&limit=1", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		items := decodeBody[[]domain.Item](t, rec)
		require.Len(t, items, 1)
		assert.Equal(t, "Brass Oil Lamp", items[0].Name)
	})

	t.Run("unparseable_query_value_returns_422", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/items?limit=abc", nil)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeBody[handlers.ValidationErrorResponse](t, rec)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "query -> limit", body.Errors[0].Field)
		assert.Equal(t, "int_parsing", body.Errors[0].Type)
		assert.Equal(t, "abc", body.Errors[0].Input)
	})

	t.Run("out_of_range_limit_returns_422", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/items?limit=1000", nil)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeBody[handlers.ValidationErrorResponse](t, rec)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "query -> limit", body.Errors[0].Field)
	})

	t.Run("unparseable_bool_returns_422", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodGet, "/items?in_stock=maybe", nil)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeBody[handlers.ValidationErrorResponse](t, rec)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "bool_parsing", body.Errors[0].Type)
	})
}

func TestReplaceItem(t *testing.T) {
	mux, svc := newCatalogMux(t)
	created, err := svc.Create(t.Context(), helpers.CreateTestPayload())
	require.NoError(t, err)

	t.Run("full_replacement_resets_omitted_fields", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPut, fmt.Sprintf("/items/%d", created.ID), domain.ItemCreate{
			Name:  "Replacement",
			Price: 10,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		item := decodeBody[domain.Item](t, rec)
		assert.Equal(t, created.ID, item.ID)
		assert.Equal(t, "Replacement", item.Name)
		assert.Nil(t, item.Description)
		assert.Equal(t, 1, item.Quantity)
	})

	t.Run("missing_item_returns_404", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPut, "/items/999", domain.ItemCreate{Name: "Ghost Item", Price: 1})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateItem(t *testing.T) {
	mux, svc := newCatalogMux(t)
	created, err := svc.Create(t.Context(), helpers.CreateTestPayload())
	require.NoError(t, err)

	t.Run("partial_update_keeps_other_fields", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPatch, fmt.Sprintf("/items/%d", created.ID), map[string]interface{}{
			"price": 99.5,
		})

		require.Equal(t, http.StatusOK, rec.Code)
		item := decodeBody[domain.Item](t, rec)
		assert.Equal(t, 99.5, item.Price)
		assert.Equal(t, created.Name, item.Name)
		assert.Equal(t, created.Quantity, item.Quantity)
	})

	t.Run("invalid_field_returns_422", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPatch, fmt.Sprintf("/items/%d", created.ID), map[string]interface{}{
			"quantity": -1,
		})

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decodeBody[handlers.ValidationErrorResponse](t, rec)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "body -> quantity", body.Errors[0].Field)
	})

	t.Run("missing_item_returns_404", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodPatch, "/items/999", map[string]interface{}{"price": 1})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteItem(t *testing.T) {
	mux, svc := newCatalogMux(t)
	created, err := svc.Create(t.Context(), helpers.CreateTestPayload())
	require.NoError(t, err)

	t.Run("returns_confirmation_with_deleted_record", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodDelete, fmt.Sprintf("/items/%d", created.ID), nil)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody[handlers.ItemResponse](t, rec)
		assert.Equal(t, fmt.Sprintf("Item with ID %d has been deleted successfully", created.ID), body.Message)
		require.NotNil(t, body.Item)
		assert.Equal(t, created.ID, body.Item.ID)
	})

	t.Run("second_delete_returns_404", func(t *testing.T) {
		rec := doJSON(t, mux, http.MethodDelete, fmt.Sprintf("/items/%d", created.ID), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestItemHandler_ServiceFailureReturns500(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCatalogService(ctrl)
	mux := newItemsMux(service)

	service.EXPECT().
		Get(gomock.Any(), int64(1)).
		Return(domain.Item{}, errors.New("store exploded"))

	rec := doJSON(t, mux, http.MethodGet, "/items/1", nil)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody[handlers.InternalErrorResponse](t, rec)
	assert.Equal(t, "internal_server_error", body.ErrorType)
	assert.Equal(t, "Internal Server Error", body.Detail)
	assert.Equal(t, "An unexpected error occurred", body.Message)
}
