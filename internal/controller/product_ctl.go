package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront_api/internal/api/dto"
	"storefront_api/internal/query"
	"storefront_api/internal/service"
)

type ProductController struct {
	productSvc *service.ProductService
	catalogSvc *service.CatalogService
}

func NewProductController(productSvc *service.ProductService, catalogSvc *service.CatalogService) *ProductController {
	return &ProductController{
		productSvc: productSvc,
		catalogSvc: catalogSvc,
	}
}

// ==================== Storefront ====================

// ListProducts runs the storefront query pipeline.
// @Summary List products
// @Description Filter, sort and paginate the catalog. List filters are comma-separated. Bogus sort/page/limit values fall back to defaults.
// @Tags Products
// @Produce json
// @Param category query string false "Category name"
// @Param subcategory query string false "Subcategory name"
// @Param brands query string false "Comma-separated brand names"
// @Param sizes query string false "Comma-separated size names"
// @Param colors query string false "Comma-separated color names"
// @Param minPrice query number false "Inclusive lower price bound"
// @Param maxPrice query number false "Inclusive upper price bound"
// @Param inStock query string false "Pass true to show only in-stock products; other values are ignored"
// @Param search query string false "Case-insensitive text search"
// @Param sortField query string false "name|price|rating|createdAt|brand" default(createdAt)
// @Param sortDirection query string false "asc|desc" default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(12)
// @Success 200 {object} dto.ProductsResponse
// @Failure 500 {object} map[string]interface{}
// @Router /api/products [get]
func (c *ProductController) ListProducts(ctx *gin.Context) {
	var req dto.ProductListReq
	// Everything is a string at this layer; malformed values degrade to
	// defaults instead of failing the request.
	_ = ctx.ShouldBindQuery(&req)

	filter := query.FilterRequest{
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Brands:      splitList(req.Brands),
		Sizes:       splitList(req.Sizes),
		Colors:      splitList(req.Colors),
		MinPrice:    parseFloat(req.MinPrice),
		MaxPrice:    parseFloat(req.MaxPrice),
		InStock:     parseBool(req.InStock),
		Search:      req.Search,
	}
	sort := query.ParseSort(req.SortField, req.SortDirection)
	page := atoiDefault(req.Page, 1)
	limit := atoiDefault(req.Limit, query.DefaultLimit)

	resp, err := c.productSvc.List(ctx.Request.Context(), filter, sort, page, limit)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetProduct returns one product by id.
// @Summary Get product
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResp
// @Failure 404 {object} map[string]interface{}
// @Router /api/products/{id} [get]
func (c *ProductController) GetProduct(ctx *gin.Context) {
	resp, err := c.productSvc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ==================== Admin ====================

// CreateProduct creates a product, upserting its vocabulary names.
// @Summary Create product
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.ProductCreateReq true "Product"
// @Success 201 {object} dto.ProductResp
// @Failure 400 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/admin/products [post]
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	var req dto.ProductCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "invalid body: " + err.Error()})
		return
	}

	resp, err := c.catalogSvc.CreateProduct(ctx.Request.Context(), req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// PatchProduct applies a partial update; list fields replace wholesale.
// @Summary Patch product
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body dto.ProductPatchReq true "Fields to change"
// @Success 200 {object} dto.ProductResp
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/admin/products/{id} [patch]
func (c *ProductController) PatchProduct(ctx *gin.Context) {
	var req dto.ProductPatchReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "invalid body: " + err.Error()})
		return
	}

	resp, err := c.catalogSvc.PatchProduct(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteProduct removes a product and its association rows.
// @Summary Delete product
// @Tags Admin
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/admin/products/{id} [delete]
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	if err := c.catalogSvc.DeleteProduct(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"code": 200, "message": "deleted"})
}

// ==================== Query Parsing ====================

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func parseFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// parseBool only constrains on the literal "true"; any other value,
// including "false", leaves the stock flag unfiltered.
func parseBool(raw string) *bool {
	if raw != "true" {
		return nil
	}
	v := true
	return &v
}

func atoiDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
