package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"storefront_api/internal/api/dto"
	"storefront_api/internal/model"
	"storefront_api/internal/repository"
)

// CatalogService owns product authoring and the vocabulary surface. Product
// writes upsert their vocabulary names first, so the admin form can submit
// free text without pre-creating every brand or color.
type CatalogService struct {
	ProductRepo repository.ProductRepository
	CatalogRepo repository.CatalogRepository
}

func NewCatalogService(productRepo repository.ProductRepository, catalogRepo repository.CatalogRepository) *CatalogService {
	return &CatalogService{
		ProductRepo: productRepo,
		CatalogRepo: catalogRepo,
	}
}

// ==================== Product Authoring ====================

func (s *CatalogService) CreateProduct(ctx context.Context, req dto.ProductCreateReq) (*dto.ProductResp, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	product := model.Product{
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		Images:        req.Images,
		InStock:       true,
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	if err := s.resolveVocabulary(ctx, &product, req.Category, req.Subcategory, req.Brand, req.Sizes, req.Colors, req.Tags); err != nil {
		return nil, err
	}

	if err := s.ProductRepo.Create(ctx, &product); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return s.reload(ctx, product.ID)
}

func (s *CatalogService) PatchProduct(ctx context.Context, id string, req dto.ProductPatchReq) (*dto.ProductResp, error) {
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

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, fmt.Errorf("%w: product name must not be blank", ErrValidation)
		}
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
		}
		product.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = req.OriginalPrice
	}
	if req.Image != nil {
		product.Image = *req.Image
	}
	if req.Images != nil {
		product.Images = *req.Images
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}

	if err := s.patchVocabulary(ctx, product, req); err != nil {
		return nil, err
	}

	if err := s.ProductRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}

	if req.Colors != nil || req.Sizes != nil || req.Tags != nil {
		colors := product.Colors
		sizes := product.Sizes
		tags := product.Tags
		if err := s.ProductRepo.ReplaceRelations(ctx, product, colors, sizes, tags); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
	}
	return s.reload(ctx, product.ID)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: product id is required", ErrValidation)
	}
	if _, err := s.ProductRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product %s", ErrNotFound, id)
		}
		return fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	if err := s.ProductRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return nil
}

// resolveVocabulary upserts every named relation and binds it to the
// product. Blank names leave the relation unset.
func (s *CatalogService) resolveVocabulary(ctx context.Context, product *model.Product, category, subcategory, brand string, sizes, colors, tags []string) error {
	if name := strings.TrimSpace(category); name != "" {
		row, err := s.CatalogRepo.EnsureCategory(ctx, name)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
		product.CategoryID = &row.ID
	}
	if name := strings.TrimSpace(subcategory); name != "" {
		if product.CategoryID == nil {
			return fmt.Errorf("%w: subcategory requires a category", ErrValidation)
		}
		row, err := s.CatalogRepo.EnsureSubcategory(ctx, name, *product.CategoryID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
		product.SubcategoryID = &row.ID
	}
	if name := strings.TrimSpace(brand); name != "" {
		row, err := s.CatalogRepo.EnsureBrand(ctx, name)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
		product.BrandID = &row.ID
	}

	var err error
	if product.Sizes, err = s.CatalogRepo.EnsureSizes(ctx, cleanNames(sizes)); err != nil {
		return fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	if product.Colors, err = s.CatalogRepo.EnsureColors(ctx, cleanNames(colors)); err != nil {
		return fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	if product.Tags, err = s.CatalogRepo.EnsureTags(ctx, cleanNames(tags)); err != nil {
		return fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return nil
}

// patchVocabulary applies the optional relation fields of a patch. An empty
// string clears the relation; clearing the category clears the subcategory
// with it.
func (s *CatalogService) patchVocabulary(ctx context.Context, product *model.Product, req dto.ProductPatchReq) error {
	if req.Category != nil {
		name := strings.TrimSpace(*req.Category)
		if name == "" {
			product.CategoryID = nil
			product.Category = nil
			product.SubcategoryID = nil
			product.Subcategory = nil
		} else {
			row, err := s.CatalogRepo.EnsureCategory(ctx, name)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrQueryFailed, err)
			}
			if product.CategoryID == nil || *product.CategoryID != row.ID {
				// Old subcategory belongs to the old category.
				product.SubcategoryID = nil
				product.Subcategory = nil
			}
			product.CategoryID = &row.ID
			product.Category = row
		}
	}
	if req.Subcategory != nil {
		name := strings.TrimSpace(*req.Subcategory)
		if name == "" {
			product.SubcategoryID = nil
			product.Subcategory = nil
		} else {
			if product.CategoryID == nil {
				return fmt.Errorf("%w: subcategory requires a category", ErrValidation)
			}
			row, err := s.CatalogRepo.EnsureSubcategory(ctx, name, *product.CategoryID)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrQueryFailed, err)
			}
			product.SubcategoryID = &row.ID
			product.Subcategory = row
		}
	}
	if req.Brand != nil {
		name := strings.TrimSpace(*req.Brand)
		if name == "" {
			product.BrandID = nil
			product.Brand = nil
		} else {
			row, err := s.CatalogRepo.EnsureBrand(ctx, name)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrQueryFailed, err)
			}
			product.BrandID = &row.ID
			product.Brand = row
		}
	}

	var err error
	if req.Sizes != nil {
		if product.Sizes, err = s.CatalogRepo.EnsureSizes(ctx, cleanNames(*req.Sizes)); err != nil {
			return fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
	}
	if req.Colors != nil {
		if product.Colors, err = s.CatalogRepo.EnsureColors(ctx, cleanNames(*req.Colors)); err != nil {
			return fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
	}
	if req.Tags != nil {
		if product.Tags, err = s.CatalogRepo.EnsureTags(ctx, cleanNames(*req.Tags)); err != nil {
			return fmt.Errorf("%w: %v", ErrQueryFailed, err)
		}
	}
	return nil
}

func (s *CatalogService) reload(ctx context.Context, id string) (*dto.ProductResp, error) {
	product, err := s.ProductRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	resp := toProductResp(product)
	return &resp, nil
}

func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// ==================== Vocabulary Surface ====================

func (s *CatalogService) ListCategories(ctx context.Context) ([]dto.CategoryResp, error) {
	categories, err := s.CatalogRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	out := make([]dto.CategoryResp, 0, len(categories))
	for _, c := range categories {
		resp := dto.CategoryResp{
			ID:            c.ID,
			Name:          c.Name,
			Subcategories: make([]dto.SubcategoryResp, 0, len(c.Subcategories)),
		}
		for _, sub := range c.Subcategories {
			resp.Subcategories = append(resp.Subcategories, dto.SubcategoryResp{ID: sub.ID, Name: sub.Name})
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*dto.CategoryResp, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}
	row, err := s.CatalogRepo.CreateCategory(ctx, name)
	if err != nil {
		return nil, vocabErr(err)
	}
	return &dto.CategoryResp{ID: row.ID, Name: row.Name, Subcategories: []dto.SubcategoryResp{}}, nil
}

// CreateSubcategory resolves the parent by name, creating it when missing,
// then creates the scoped subcategory.
func (s *CatalogService) CreateSubcategory(ctx context.Context, name, category string) (*dto.SubcategoryResp, error) {
	name, err := requireName(name)
	if err != nil {
		return nil, err
	}
	categoryName, err := requireName(category)
	if err != nil {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}

	parent, err := s.CatalogRepo.EnsureCategory(ctx, categoryName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	row, err := s.CatalogRepo.CreateSubcategory(ctx, name, parent.ID)
	if err != nil {
		return nil, vocabErr(err)
	}
	return &dto.SubcategoryResp{ID: row.ID, Name: row.Name}, nil
}

func (s *CatalogService) CreateBrand(ctx context.Context, name string) error {
	return s.createNamed(ctx, name, func(ctx context.Context, n string) error {
		_, err := s.CatalogRepo.CreateBrand(ctx, n)
		return err
	})
}

func (s *CatalogService) CreateColor(ctx context.Context, name string) error {
	return s.createNamed(ctx, name, func(ctx context.Context, n string) error {
		_, err := s.CatalogRepo.CreateColor(ctx, n)
		return err
	})
}

func (s *CatalogService) CreateSize(ctx context.Context, name string) error {
	return s.createNamed(ctx, name, func(ctx context.Context, n string) error {
		_, err := s.CatalogRepo.CreateSize(ctx, n)
		return err
	})
}

func (s *CatalogService) CreateTag(ctx context.Context, name string) error {
	return s.createNamed(ctx, name, func(ctx context.Context, n string) error {
		_, err := s.CatalogRepo.CreateTag(ctx, n)
		return err
	})
}

func (s *CatalogService) createNamed(ctx context.Context, name string, create func(context.Context, string) error) error {
	name, err := requireName(name)
	if err != nil {
		return err
	}
	if err := create(ctx, name); err != nil {
		return vocabErr(err)
	}
	return nil
}

// Filters gathers every vocabulary list plus the price range, concurrently
// like the storefront facet fan-out.
func (s *CatalogService) Filters(ctx context.Context) (*dto.FiltersResp, error) {
	var resp dto.FiltersResp

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		resp.Categories, err = s.CatalogRepo.CategoryNames(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.Subcategories, err = s.CatalogRepo.SubcategoryNames(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.Brands, err = s.CatalogRepo.BrandNames(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.Colors, err = s.CatalogRepo.ColorNames(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.Sizes, err = s.CatalogRepo.SizeNames(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.Tags, err = s.CatalogRepo.TagNames(gctx)
		return err
	})
	g.Go(func() (err error) {
		resp.PriceRange.Min, resp.PriceRange.Max, err = s.CatalogRepo.PriceRange(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueryFailed, err)
	}
	return &resp, nil
}

func requireName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", ErrValidation)
	}
	return name, nil
}

func vocabErr(err error) error {
	if errors.Is(err, repository.ErrDuplicateName) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return fmt.Errorf("%w: %v", ErrQueryFailed, err)
}
