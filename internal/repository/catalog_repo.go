package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront_api/internal/model"
)

// ErrDuplicateName is returned when creating a vocabulary entry whose name
// already exists within its uniqueness scope. Duplicates are rejected, never
// silently merged.
var ErrDuplicateName = errors.New("name already exists")

// ==================== Interface ====================

// CatalogRepository owns the vocabulary tables (categories, subcategories,
// brands, colors, sizes, tags) and the facet projections derived from them.
// Facet reads are global: they ignore whatever filter the storefront
// currently has applied.
type CatalogRepository interface {
	// Facet reads. Name lists are alphabetical so responses are stable.
	CategoryNames(ctx context.Context) ([]string, error)
	SubcategoryNames(ctx context.Context) ([]string, error)
	BrandNames(ctx context.Context) ([]string, error)
	ColorNames(ctx context.Context) ([]string, error)
	SizeNames(ctx context.Context) ([]string, error)
	TagNames(ctx context.Context) ([]string, error)

	// PriceRange spans all products regardless of filters; an empty table
	// yields {0, 0}.
	PriceRange(ctx context.Context) (min, max float64, err error)

	// Admin listing: categories with their subcategories.
	ListCategories(ctx context.Context) ([]model.Category, error)

	// Strict creation; duplicates return ErrDuplicateName.
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	CreateSubcategory(ctx context.Context, name, categoryID string) (*model.Subcategory, error)
	CreateBrand(ctx context.Context, name string) (*model.Brand, error)
	CreateColor(ctx context.Context, name string) (*model.Color, error)
	CreateSize(ctx context.Context, name string) (*model.Size, error)
	CreateTag(ctx context.Context, name string) (*model.Tag, error)

	// Upsert-by-name, used by product authoring and the feed importer.
	EnsureCategory(ctx context.Context, name string) (*model.Category, error)
	EnsureSubcategory(ctx context.Context, name, categoryID string) (*model.Subcategory, error)
	EnsureBrand(ctx context.Context, name string) (*model.Brand, error)
	EnsureColors(ctx context.Context, names []string) ([]model.Color, error)
	EnsureSizes(ctx context.Context, names []string) ([]model.Size, error)
	EnsureTags(ctx context.Context, names []string) ([]model.Tag, error)
}

// ==================== Implementation ====================

type catalogRepo struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepo{db: db}
}

// ==================== Facet Reads ====================

func (r *catalogRepo) names(ctx context.Context, m interface{}) ([]string, error) {
	names := make([]string, 0)
	err := r.db.WithContext(ctx).Model(m).Order("name ASC").Pluck("name", &names).Error
	return names, err
}

func (r *catalogRepo) CategoryNames(ctx context.Context) ([]string, error) {
	return r.names(ctx, &model.Category{})
}

func (r *catalogRepo) SubcategoryNames(ctx context.Context) ([]string, error) {
	return r.names(ctx, &model.Subcategory{})
}

func (r *catalogRepo) BrandNames(ctx context.Context) ([]string, error) {
	return r.names(ctx, &model.Brand{})
}

func (r *catalogRepo) ColorNames(ctx context.Context) ([]string, error) {
	return r.names(ctx, &model.Color{})
}

func (r *catalogRepo) SizeNames(ctx context.Context) ([]string, error) {
	return r.names(ctx, &model.Size{})
}

func (r *catalogRepo) TagNames(ctx context.Context) ([]string, error) {
	return r.names(ctx, &model.Tag{})
}

func (r *catalogRepo) PriceRange(ctx context.Context) (float64, float64, error) {
	// COALESCE keeps the zero-product case at {0, 0} instead of NULL.
	var bounds struct {
		Min float64
		Max float64
	}
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Select("COALESCE(MIN(price), 0) AS min, COALESCE(MAX(price), 0) AS max").
		Scan(&bounds).Error
	if err != nil {
		return 0, 0, err
	}
	return bounds.Min, bounds.Max, nil
}

func (r *catalogRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).
		Preload("Subcategories").
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

// ==================== Strict Creation ====================

func create[T any](r *catalogRepo, ctx context.Context, row *T) (*T, error) {
	err := r.db.WithContext(ctx).Create(row).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrDuplicateName
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (r *catalogRepo) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	return create(r, ctx, &model.Category{Name: name})
}

func (r *catalogRepo) CreateSubcategory(ctx context.Context, name, categoryID string) (*model.Subcategory, error) {
	return create(r, ctx, &model.Subcategory{Name: name, CategoryID: categoryID})
}

func (r *catalogRepo) CreateBrand(ctx context.Context, name string) (*model.Brand, error) {
	return create(r, ctx, &model.Brand{Name: name})
}

func (r *catalogRepo) CreateColor(ctx context.Context, name string) (*model.Color, error) {
	return create(r, ctx, &model.Color{Name: name})
}

func (r *catalogRepo) CreateSize(ctx context.Context, name string) (*model.Size, error) {
	return create(r, ctx, &model.Size{Name: name})
}

func (r *catalogRepo) CreateTag(ctx context.Context, name string) (*model.Tag, error) {
	return create(r, ctx, &model.Tag{Name: name})
}

// ==================== Upserts ====================

func (r *catalogRepo) EnsureCategory(ctx context.Context, name string) (*model.Category, error) {
	var row model.Category
	err := r.db.WithContext(ctx).
		Where(model.Category{Name: name}).
		FirstOrCreate(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// EnsureSubcategory resolves the name within the given category, so a
// product's subcategory always belongs to its own category.
func (r *catalogRepo) EnsureSubcategory(ctx context.Context, name, categoryID string) (*model.Subcategory, error) {
	var row model.Subcategory
	err := r.db.WithContext(ctx).
		Where(model.Subcategory{Name: name, CategoryID: categoryID}).
		FirstOrCreate(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *catalogRepo) EnsureBrand(ctx context.Context, name string) (*model.Brand, error) {
	var row model.Brand
	err := r.db.WithContext(ctx).
		Where(model.Brand{Name: name}).
		FirstOrCreate(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *catalogRepo) EnsureColors(ctx context.Context, names []string) ([]model.Color, error) {
	rows := make([]model.Color, 0, len(names))
	for _, name := range names {
		var row model.Color
		err := r.db.WithContext(ctx).
			Where(model.Color{Name: name}).
			FirstOrCreate(&row).Error
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *catalogRepo) EnsureSizes(ctx context.Context, names []string) ([]model.Size, error) {
	rows := make([]model.Size, 0, len(names))
	for _, name := range names {
		var row model.Size
		err := r.db.WithContext(ctx).
			Where(model.Size{Name: name}).
			FirstOrCreate(&row).Error
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *catalogRepo) EnsureTags(ctx context.Context, names []string) ([]model.Tag, error) {
	rows := make([]model.Tag, 0, len(names))
	for _, name := range names {
		var row model.Tag
		err := r.db.WithContext(ctx).
			Where(model.Tag{Name: name}).
			FirstOrCreate(&row).Error
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
