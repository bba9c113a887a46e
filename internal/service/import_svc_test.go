package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront_api/internal/query"
)

func feedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const sampleFeed = `[
	{"name": "Canvas Tote", "price": 18, "category": "Accessories", "brand": "Acme", "colors": ["Beige"], "tags": ["eco"]},
	{"name": "Steel Bottle", "price": 25, "category": "Accessories", "inStock": false},
	{"name": "  ", "price": 9},
	{"name": "Broken Row", "price": -3}
]`

func TestCatalogImportService_Run(t *testing.T) {
	catalog, _ := newCatalogService(t)
	srv := feedServer(t, sampleFeed)

	importer := NewCatalogImportService(catalog, srv.URL)
	report, err := importer.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, report.Fetched)
	assert.Equal(t, 2, report.Created)
	assert.Equal(t, 0, report.Updated)
	assert.Equal(t, 2, report.Skipped)

	products := NewProductService(catalog.ProductRepo, catalog.CatalogRepo)
	resp, err := products.List(context.Background(), query.FilterRequest{}, query.DefaultSort, 1, 12)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)
	assert.Contains(t, resp.Filters.Categories, "Accessories")
}

func TestCatalogImportService_SecondRunUpdates(t *testing.T) {
	catalog, _ := newCatalogService(t)
	srv := feedServer(t, `[{"name": "Canvas Tote", "price": 18, "brand": "Acme"}]`)

	importer := NewCatalogImportService(catalog, srv.URL)
	_, err := importer.Run(context.Background())
	require.NoError(t, err)

	srv2 := feedServer(t, `[{"name": "Canvas Tote", "price": 22, "brand": "Acme"}]`)
	importer2 := NewCatalogImportService(catalog, srv2.URL)
	report, err := importer2.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.Created)
	assert.Equal(t, 1, report.Updated)

	existing, err := catalog.ProductRepo.GetByName(context.Background(), "Canvas Tote")
	require.NoError(t, err)
	assert.Equal(t, 22.0, existing.Price)
}

func TestCatalogImportService_NoURLConfigured(t *testing.T) {
	catalog, _ := newCatalogService(t)

	importer := NewCatalogImportService(catalog, "")
	_, err := importer.Run(context.Background())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCatalogImportService_FeedFailure(t *testing.T) {
	catalog, _ := newCatalogService(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	importer := NewCatalogImportService(catalog, srv.URL)
	_, err := importer.Run(context.Background())
	assert.Error(t, err)
}
