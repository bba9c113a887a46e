package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront_api/internal/model"
	"storefront_api/internal/query"
)

// ==================== Interface ====================

// ProductRepository is the abstract relational store behind the query
// pipeline. Count and FindPage evaluate the same predicate; both are pure
// reads and may run concurrently.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	GetByName(ctx context.Context, name string) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	ReplaceRelations(ctx context.Context, product *model.Product, colors []model.Color, sizes []model.Size, tags []model.Tag) error
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context, pred query.Predicate) (int64, error)
	FindPage(ctx context.Context, pred query.Predicate, sort query.Sort, page, limit int) ([]model.Product, error)
}

// ==================== Implementation ====================

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := withExpansions(r.db.WithContext(ctx)).
		Where("products.id = ?", id).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetByName matches exactly one product by name; the feed importer uses it
// to decide between create and update.
func (r *productRepo) GetByName(ctx context.Context, name string) (*model.Product, error) {
	var product model.Product
	err := withExpansions(r.db.WithContext(ctx)).
		Where("products.name = ?", name).
		First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// ReplaceRelations swaps the many-to-many links in one pass, mirroring the
// admin form which always submits the full color/size/tag selection.
func (r *productRepo) ReplaceRelations(ctx context.Context, product *model.Product, colors []model.Color, sizes []model.Size, tags []model.Tag) error {
	db := r.db.WithContext(ctx)
	if err := db.Model(product).Association("Colors").Replace(colors); err != nil {
		return err
	}
	if err := db.Model(product).Association("Sizes").Replace(sizes); err != nil {
		return err
	}
	return db.Model(product).Association("Tags").Replace(tags)
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	// Select(Associations) clears the join-table rows alongside the product.
	return r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&model.Product{BaseModel: model.BaseModel{ID: id}}).Error
}

func (r *productRepo) Count(ctx context.Context, pred query.Predicate) (int64, error) {
	var total int64
	db := applyPredicate(r.db.WithContext(ctx).Model(&model.Product{}), pred)
	if err := db.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *productRepo) FindPage(ctx context.Context, pred query.Predicate, sort query.Sort, page, limit int) ([]model.Product, error) {
	page = query.NormalizePage(page)
	limit = query.NormalizeLimit(limit)

	db := applyPredicate(withExpansions(r.db.WithContext(ctx)).Model(&model.Product{}), pred)
	db = applySort(db, sort)

	var products []model.Product
	err := db.
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ==================== Predicate Translation ====================

func withExpansions(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Category").
		Preload("Subcategory").
		Preload("Brand").
		Preload("Colors").
		Preload("Sizes").
		Preload("Tags")
}

// likeEscaper neutralizes LIKE metacharacters in user search terms so
// "100%" or "_" match literally instead of acting as wildcards.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// applyPredicate translates each typed leaf into SQL. Relations are matched
// through subqueries so the main query never needs joins the sort didn't ask
// for, and the same clauses run on both postgres and sqlite.
func applyPredicate(db *gorm.DB, pred query.Predicate) *gorm.DB {
	for _, cond := range pred.Conds() {
		switch c := cond.(type) {
		case query.CategoryIs:
			db = db.Where("products.category_id IN (SELECT id FROM categories WHERE name = ?)", c.Name)
		case query.SubcategoryIs:
			db = db.Where("products.subcategory_id IN (SELECT id FROM subcategories WHERE name = ?)", c.Name)
		case query.BrandIn:
			db = db.Where("products.brand_id IN (SELECT id FROM brands WHERE name IN ?)", c.Names)
		case query.SizeAny:
			db = db.Where("products.id IN (SELECT product_id FROM product_sizes JOIN sizes ON sizes.id = product_sizes.size_id WHERE sizes.name IN ?)", c.Names)
		case query.ColorAny:
			db = db.Where("products.id IN (SELECT product_id FROM product_colors JOIN colors ON colors.id = product_colors.color_id WHERE colors.name IN ?)", c.Names)
		case query.PriceAtLeast:
			db = db.Where("products.price >= ?", c.Value)
		case query.PriceAtMost:
			db = db.Where("products.price <= ?", c.Value)
		case query.InStockIs:
			db = db.Where("products.in_stock = ?", c.Value)
		case query.SearchText:
			like := "%" + likeEscaper.Replace(strings.ToLower(c.Term)) + "%"
			db = db.Where(
				`(LOWER(products.name) LIKE ? ESCAPE '\'
					OR LOWER(products.description) LIKE ? ESCAPE '\'
					OR products.brand_id IN (SELECT id FROM brands WHERE LOWER(name) LIKE ? ESCAPE '\')
					OR products.id IN (SELECT product_id FROM product_tags JOIN tags ON tags.id = product_tags.tag_id WHERE LOWER(tags.name) LIKE ? ESCAPE '\'))`,
				like, like, like, like,
			)
		}
	}
	return db
}

func applySort(db *gorm.DB, sort query.Sort) *gorm.DB {
	dir := "DESC"
	if sort.Direction == query.SortAsc {
		dir = "ASC"
	}

	switch sort.Field {
	case query.SortFieldBrand:
		// Order by the related brand's name, not the foreign key.
		return db.
			Joins("LEFT JOIN brands ON brands.id = products.brand_id").
			Order("brands.name " + dir)
	case query.SortFieldName:
		return db.Order("products.name " + dir)
	case query.SortFieldPrice:
		return db.Order("products.price " + dir)
	case query.SortFieldRating:
		return db.Order("products.rating " + dir)
	default:
		return db.Order("products.created_at " + dir)
	}
}
