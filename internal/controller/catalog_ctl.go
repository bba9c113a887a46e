package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront_api/internal/api/dto"
	"storefront_api/internal/service"
)

type CatalogController struct {
	catalogSvc *service.CatalogService
}

func NewCatalogController(catalogSvc *service.CatalogService) *CatalogController {
	return &CatalogController{catalogSvc: catalogSvc}
}

// ==================== Filters ====================

// GetFilters returns every vocabulary list plus the global price range.
// @Summary Get filter metadata
// @Tags Catalog
// @Produce json
// @Success 200 {object} dto.FiltersResp
// @Router /api/filters [get]
func (c *CatalogController) GetFilters(ctx *gin.Context) {
	resp, err := c.catalogSvc.Filters(ctx.Request.Context())
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ==================== Categories ====================

// ListCategories returns categories with their subcategories.
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} dto.CategoryResp
// @Router /api/categories [get]
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	resp, err := c.catalogSvc.ListCategories(ctx.Request.Context())
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// CreateCategory creates a category; duplicate names conflict.
// @Summary Create category
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.VocabCreateReq true "Category"
// @Success 201 {object} dto.CategoryResp
// @Failure 409 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/admin/categories [post]
func (c *CatalogController) CreateCategory(ctx *gin.Context) {
	var req dto.VocabCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "invalid body: " + err.Error()})
		return
	}
	resp, err := c.catalogSvc.CreateCategory(ctx.Request.Context(), req.Name)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// CreateSubcategory creates a subcategory scoped to its category.
// @Summary Create subcategory
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.SubcategoryCreateReq true "Subcategory"
// @Success 201 {object} dto.SubcategoryResp
// @Failure 409 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/admin/subcategories [post]
func (c *CatalogController) CreateSubcategory(ctx *gin.Context) {
	var req dto.SubcategoryCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "invalid body: " + err.Error()})
		return
	}
	resp, err := c.catalogSvc.CreateSubcategory(ctx.Request.Context(), req.Name, req.Category)
	if err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// ==================== Flat Vocabularies ====================

// CreateBrand creates a brand.
// @Summary Create brand
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.VocabCreateReq true "Brand"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/admin/brands [post]
func (c *CatalogController) CreateBrand(ctx *gin.Context) {
	c.createNamed(ctx, c.catalogSvc.CreateBrand)
}

// CreateColor creates a color.
// @Summary Create color
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.VocabCreateReq true "Color"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/admin/colors [post]
func (c *CatalogController) CreateColor(ctx *gin.Context) {
	c.createNamed(ctx, c.catalogSvc.CreateColor)
}

// CreateSize creates a size.
// @Summary Create size
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.VocabCreateReq true "Size"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/admin/sizes [post]
func (c *CatalogController) CreateSize(ctx *gin.Context) {
	c.createNamed(ctx, c.catalogSvc.CreateSize)
}

// CreateTag creates a tag.
// @Summary Create tag
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.VocabCreateReq true "Tag"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/admin/tags [post]
func (c *CatalogController) CreateTag(ctx *gin.Context) {
	c.createNamed(ctx, c.catalogSvc.CreateTag)
}

func (c *CatalogController) createNamed(ctx *gin.Context, create func(context.Context, string) error) {
	var req dto.VocabCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"code": 400, "message": "invalid body: " + err.Error()})
		return
	}
	if err := create(ctx.Request.Context(), req.Name); err != nil {
		respondErr(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"code": 201, "message": "created"})
}
