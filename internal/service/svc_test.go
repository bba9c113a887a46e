package service

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront_api/internal/model"
	"storefront_api/internal/repository"
)

// ==================== Test Helpers ====================

var svcDBSeq atomic.Int64

// setupSvcDB opens a named shared-cache in-memory database. The service
// fan-out runs reads on several pooled connections at once, and with a
// plain ":memory:" DSN each of those would see its own empty database.
func setupSvcDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", svcDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Category{}, &model.Subcategory{},
		&model.Brand{}, &model.Color{}, &model.Size{}, &model.Tag{},
		&model.Product{}, &model.SysUser{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newProductService(t *testing.T) (*ProductService, *gorm.DB) {
	t.Helper()
	db := setupSvcDB(t)
	return NewProductService(
		repository.NewProductRepository(db),
		repository.NewCatalogRepository(db),
	), db
}

func newCatalogService(t *testing.T) (*CatalogService, *gorm.DB) {
	t.Helper()
	db := setupSvcDB(t)
	return NewCatalogService(
		repository.NewProductRepository(db),
		repository.NewCatalogRepository(db),
	), db
}

func fptr(v float64) *float64 { return &v }
func bptr(v bool) *bool       { return &v }
func sptr(v string) *string   { return &v }

// seedStore mirrors the storefront fixture used by the repository tests:
// two categories, four products, one of them fully orphaned.
func seedStore(t *testing.T, db *gorm.DB) {
	t.Helper()

	men := model.Category{Name: "Men"}
	women := model.Category{Name: "Women"}
	db.Create(&men)
	db.Create(&women)

	shirts := model.Subcategory{Name: "Shirts", CategoryID: men.ID}
	dresses := model.Subcategory{Name: "Dresses", CategoryID: women.ID}
	db.Create(&shirts)
	db.Create(&dresses)

	nike := model.Brand{Name: "Nike"}
	adidas := model.Brand{Name: "Adidas"}
	db.Create(&nike)
	db.Create(&adidas)

	blue := model.Color{Name: "Blue"}
	red := model.Color{Name: "Red"}
	db.Create(&blue)
	db.Create(&red)

	sizeM := model.Size{Name: "M"}
	sizeL := model.Size{Name: "L"}
	db.Create(&sizeM)
	db.Create(&sizeL)

	summer := model.Tag{Name: "summer"}
	sale := model.Tag{Name: "sale"}
	db.Create(&summer)
	db.Create(&sale)

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	products := []model.Product{
		{
			BaseModel:     model.BaseModel{ID: "p1", CreatedAt: base},
			Name:          "Blue Hoodie",
			Description:   "Cozy fleece hoodie",
			Price:         10,
			InStock:       true,
			CategoryID:    &men.ID,
			SubcategoryID: &shirts.ID,
			BrandID:       &nike.ID,
			Colors:        []model.Color{blue},
			Sizes:         []model.Size{sizeM},
			Tags:          []model.Tag{summer},
		},
		{
			BaseModel:     model.BaseModel{ID: "p2", CreatedAt: base.Add(time.Hour)},
			Name:          "Red Dress",
			Description:   "Evening dress",
			Price:         20,
			OriginalPrice: fptr(35),
			InStock:       true,
			CategoryID:    &women.ID,
			SubcategoryID: &dresses.ID,
			BrandID:       &adidas.ID,
			Colors:        []model.Color{red},
			Sizes:         []model.Size{sizeL},
			Tags:          []model.Tag{sale},
		},
		{
			BaseModel:  model.BaseModel{ID: "p3", CreatedAt: base.Add(2 * time.Hour)},
			Name:       "Track Jacket",
			Price:      30,
			InStock:    false,
			CategoryID: &men.ID,
			BrandID:    &adidas.ID,
			Colors:     []model.Color{blue, red},
			Sizes:      []model.Size{sizeM, sizeL},
			Tags:       []model.Tag{summer, sale},
		},
		{
			BaseModel:   model.BaseModel{ID: "p4", CreatedAt: base.Add(3 * time.Hour)},
			Name:        "Mystery Box",
			Description: "Assorted surprise items",
			Price:       5,
			InStock:     true,
		},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("seed product %s: %v", products[i].ID, err)
		}
	}
}
