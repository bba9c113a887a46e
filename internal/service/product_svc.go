package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"storefront_api/internal/api/dto"
	"storefront_api/internal/model"
	"storefront_api/internal/query"
	"storefront_api/internal/repository"
)

// Display fallbacks for products whose relations were removed from the
// vocabulary. Subcategory has no fallback and is omitted instead.
const (
	FallbackCategory = "Uncategorized"
	FallbackBrand    = "No Brand"
)

type ProductService struct {
	ProductRepo repository.ProductRepository
	CatalogRepo repository.CatalogRepository
}

func NewProductService(productRepo repository.ProductRepository, catalogRepo repository.CatalogRepository) *ProductService {
	return &ProductService{
		ProductRepo: productRepo,
		CatalogRepo: catalogRepo,
	}
}

// ==================== Storefront Listing ====================

// List runs the full storefront pipeline for one request: the filter is
// compiled once, then the match count, the page of products and the six
// facet reads fan out concurrently. Facets are always global, so a filtered
// page still advertises every selectable value.
func (s *ProductService) List(ctx context.Context, filter query.FilterRequest, sort query.Sort, page, limit int) (*dto.ProductsResponse, error) {
	pred := filter.Compile()
	page = query.NormalizePage(page)
	limit = query.NormalizeLimit(limit)

	var (
		total    int64
		products []model.Product
		facets   dto.FacetBlock
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = s.ProductRepo.Count(gctx, pred)
		return err
	})
	g.Go(func() (err error) {
		products, err = s.ProductRepo.FindPage(gctx, pred, sort, page, limit)
		return err
	})
	g.Go(func() (err error) {
		facets.Categories, err = s.CatalogRepo.CategoryNames(gctx)
		return err
	})
	g.Go(func() (err error) {
		facets.Subcategories, err = s.CatalogRepo.SubcategoryNames(gctx)
		return err
	})
	g.Go(func() (err error) {
		facets.Brands, err = s.CatalogRepo.BrandNames(gctx)
		return err
	})
	g.Go(func() (err error) {
		facets.Colors, err = s.CatalogRepo.ColorNames(gctx)
		return err
	})
	g.Go(func() (err error) {
		facets.Sizes, err = s.CatalogRepo.SizeNames(gctx)
		return err
	})
	g.Go(func() (err error) {
		facets.PriceRange.Min, facets.PriceRange.Max, err = s.CatalogRepo.PriceRange(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	resp := &dto.ProductsResponse{
		Products:   make([]dto.ProductResp, 0, len(products)),
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		Filters:    facets,
	}
	for i := range products {
		resp.Products = append(resp.Products, toProductResp(&products[i]))
	}
	return resp, nil
}

// ==================== Point Lookup ====================

func (s *ProductService) Get(ctx context.Context, id string) (*dto.ProductResp, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrValidation)
	}

	product, err := s.ProductRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	resp := toProductResp(product)
	return &resp, nil
}

// ==================== Normalization ====================

// toProductResp flattens a loaded product row into its wire shape. List
// fields always serialize as arrays, never null.
func toProductResp(p *model.Product) dto.ProductResp {
	resp := dto.ProductResp{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Images:        []string(p.Images),
		InStock:       p.InStock,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		Category:      FallbackCategory,
		Brand:         FallbackBrand,
		Sizes:         namesOfSizes(p.Sizes),
		Colors:        namesOfColors(p.Colors),
		Tags:          namesOfTags(p.Tags),
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if p.Category != nil {
		resp.Category = p.Category.Name
	}
	if p.Subcategory != nil {
		resp.Subcategory = p.Subcategory.Name
	}
	if p.Brand != nil {
		resp.Brand = p.Brand.Name
	}
	return resp
}

func namesOfSizes(rows []model.Size) []string {
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names
}

func namesOfColors(rows []model.Color) []string {
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names
}

func namesOfTags(rows []model.Tag) []string {
	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	return names
}
