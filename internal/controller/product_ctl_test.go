package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront_api/internal/api/dto"
)

func TestListProducts_Unfiltered(t *testing.T) {
	r, _ := setupTestEnv(t)
	seedViaAdmin(t, r)

	w := doRequest(t, r, http.MethodGet, "/api/products", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProductsResponse
	decodeJSON(t, w, &resp)

	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 12, resp.Limit)
	assert.Len(t, resp.Products, 2)
	assert.Equal(t, []string{"Men", "Women"}, resp.Filters.Categories)
	assert.Equal(t, 10.0, resp.Filters.PriceRange.Min)
	assert.Equal(t, 20.0, resp.Filters.PriceRange.Max)
}

func TestListProducts_QueryParams(t *testing.T) {
	r, _ := setupTestEnv(t)
	seedViaAdmin(t, r)

	w := doRequest(t, r, http.MethodGet, "/api/products?brands=Nike,Adidas&sortField=price&sortDirection=asc", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProductsResponse
	decodeJSON(t, w, &resp)
	require.Len(t, resp.Products, 2)
	assert.Equal(t, "Blue Hoodie", resp.Products[0].Name)
	assert.Equal(t, "Red Dress", resp.Products[1].Name)

	w = doRequest(t, r, http.MethodGet, "/api/products?category=Women", "", "")
	decodeJSON(t, w, &resp)
	assert.Equal(t, int64(1), resp.Total)
	// Facets stay global under a filter.
	assert.Equal(t, []string{"Men", "Women"}, resp.Filters.Categories)
}

func TestListProducts_InStockOnlyConstrainsOnTrue(t *testing.T) {
	r, _ := setupTestEnv(t)
	seedViaAdmin(t, r)

	w := doRequest(t, r, http.MethodPost, "/api/admin/products",
		`{"name":"Track Jacket","price":30,"inStock":false}`, adminToken(t))
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ProductsResponse
	w = doRequest(t, r, http.MethodGet, "/api/products?inStock=true", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeJSON(t, w, &resp)
	assert.Equal(t, int64(2), resp.Total)

	// Anything but the literal "true" leaves the stock flag unfiltered.
	for _, raw := range []string{"false", "yes", "1"} {
		w = doRequest(t, r, http.MethodGet, "/api/products?inStock="+raw, "", "")
		require.Equal(t, http.StatusOK, w.Code)
		decodeJSON(t, w, &resp)
		assert.Equal(t, int64(3), resp.Total, "inStock=%s must not constrain", raw)
	}
}

func TestListProducts_BogusParamsFallBack(t *testing.T) {
	r, _ := setupTestEnv(t)
	seedViaAdmin(t, r)

	w := doRequest(t, r, http.MethodGet, "/api/products?sortField=dropTables&sortDirection=sideways&page=x&limit=-4&minPrice=abc", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProductsResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 12, resp.Limit)
	// Default sort is newest first.
	assert.Equal(t, "Red Dress", resp.Products[0].Name)
}

func TestGetProduct(t *testing.T) {
	r, _ := setupTestEnv(t)
	seedViaAdmin(t, r)

	var list dto.ProductsResponse
	w := doRequest(t, r, http.MethodGet, "/api/products?category=Men", "", "")
	decodeJSON(t, w, &list)
	require.Len(t, list.Products, 1)

	w = doRequest(t, r, http.MethodGet, "/api/products/"+list.Products[0].ID, "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var p dto.ProductResp
	decodeJSON(t, w, &p)
	assert.Equal(t, "Blue Hoodie", p.Name)
	assert.Equal(t, "Shirts", p.Subcategory)

	w = doRequest(t, r, http.MethodGet, "/api/products/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminProductLifecycle(t *testing.T) {
	r, _ := setupTestEnv(t)
	token := adminToken(t)

	w := doRequest(t, r, http.MethodPost, "/api/admin/products",
		`{"name":"Wool Scarf","price":15,"category":"Accessories","colors":["Grey"]}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created dto.ProductResp
	decodeJSON(t, w, &created)
	require.NotEmpty(t, created.ID)
	assert.True(t, created.InStock)

	w = doRequest(t, r, http.MethodPatch, "/api/admin/products/"+created.ID,
		`{"price":12,"colors":["Green","Grey"]}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	var patched dto.ProductResp
	decodeJSON(t, w, &patched)
	assert.Equal(t, 12.0, patched.Price)
	assert.ElementsMatch(t, []string{"Green", "Grey"}, patched.Colors)

	w = doRequest(t, r, http.MethodDelete, "/api/admin/products/"+created.ID, "", token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/api/admin/products/"+created.ID, "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminValidationAndErrors(t *testing.T) {
	r, _ := setupTestEnv(t)
	token := adminToken(t)

	// Binding rejects a missing name.
	w := doRequest(t, r, http.MethodPost, "/api/admin/products", `{"price":5}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/admin/products", `{"name":"X","price":-5}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, r, http.MethodPatch, "/api/admin/products/missing", `{"price":5}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	r, _ := setupTestEnv(t)

	w := doRequest(t, r, http.MethodPost, "/api/admin/products", `{"name":"X","price":1}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, r, http.MethodPost, "/api/admin/products", `{"name":"X","price":1}`, customerToken(t))
	assert.Equal(t, http.StatusForbidden, w.Code)
}
