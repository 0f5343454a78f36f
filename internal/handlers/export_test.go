package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v3"

	"github.com/avidela/catalog-be/internal/adapters/memstore"
	"github.com/avidela/catalog-be/internal/core/domain"
	"github.com/avidela/catalog-be/internal/core/ports"
	"github.com/avidela/catalog-be/internal/core/services"
	"github.com/avidela/catalog-be/internal/handlers"
	"github.com/avidela/catalog-be/test/helpers"
)

func newExportMux(t *testing.T) (*http.ServeMux, ports.CatalogService) {
	t.Helper()

	svc := services.NewCatalogService(memstore.New(), nil, helpers.TestLogger())
	h := handlers.NewExportHandler(svc, helpers.TestLogger())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /items/export/json", h.ExportJSON)
	mux.HandleFunc("GET /items/export/excel", h.ExportExcel)
	return mux, svc
}

func seedCatalog(t *testing.T, svc ports.CatalogService, count int) {
	t.Helper()
	for _, payload := range helpers.CreateTestPayloads(count) {
		_, err := svc.Create(t.Context(), payload)
		require.NoError(t, err)
	}
}

func TestExportJSON(t *testing.T) {
	mux, svc := newExportMux(t)
	seedCatalog(t, svc, 3)

	req := httptest.NewRequest(http.MethodGet, "/items/export/json", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "catalog.json")

	body := decodeBody[handlers.JSONExportResponse](t, rec)
	assert.Len(t, body.Items, 3)
	assert.Equal(t, 3, body.Metadata.TotalItems)
	assert.False(t, body.Metadata.ExportDate.IsZero())
}

func TestExportJSON_EmptyCatalog(t *testing.T) {
	mux, _ := newExportMux(t)

	req := httptest.NewRequest(http.MethodGet, "/items/export/json", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody[handlers.JSONExportResponse](t, rec)
	assert.Empty(t, body.Items)
	assert.Equal(t, 0, body.Metadata.TotalItems)
}

func TestExportExcel(t *testing.T) {
	mux, svc := newExportMux(t)

	desc := "porcelain"
	_, err := svc.Create(t.Context(), domain.ItemCreate{
		Name:        "Victorian Tea Set",
		Description: &desc,
		Price:       150.00,
		Quantity:    helpers.IntPtr(2),
	})
	require.NoError(t, err)
	_, err = svc.Create(t.Context(), domain.ItemCreate{
		Name:     "Brass Oil Lamp",
		Price:    45.00,
		Quantity: helpers.IntPtr(0),
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/items/export/excel", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")

	file, err := xlsx.OpenReaderAt(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	require.NoError(t, err)

	sheet, ok := file.Sheet["Items"]
	require.True(t, ok, "workbook should contain an Items sheet")
	assert.Equal(t, 3, sheet.MaxRow)

	header, err := sheet.Row(0)
	require.NoError(t, err)
	assert.Equal(t, "ID", header.GetCell(0).Value)
	assert.Equal(t, "In Stock", header.GetCell(5).Value)

	first, err := sheet.Row(1)
	require.NoError(t, err)
	assert.Equal(t, "Victorian Tea Set", first.GetCell(1).Value)
	assert.Equal(t, "porcelain", first.GetCell(2).Value)
}
