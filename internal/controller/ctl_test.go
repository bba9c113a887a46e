package controller_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront_api/internal/controller"
	"storefront_api/internal/middleware"
	"storefront_api/internal/model"
	"storefront_api/internal/repository"
	"storefront_api/internal/router"
	"storefront_api/internal/service"
)

// ==================== Test Helpers ====================

var ctlDBSeq atomic.Int64

// setupTestEnv wires the full router against a named shared-cache
// in-memory database: the listing fan-out spreads reads over several
// pooled connections, which all must see the same migrated tables.
func setupTestEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:ctl_test_%d?mode=memory&cache=shared", ctlDBSeq.Add(1))
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

	productRepo := repository.NewProductRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	userRepo := repository.NewUserRepository(db)

	productSvc := service.NewProductService(productRepo, catalogRepo)
	catalogSvc := service.NewCatalogService(productRepo, catalogRepo)
	authSvc := service.NewAuthService(userRepo)
	importSvc := service.NewCatalogImportService(catalogSvc, "")

	r := gin.New()
	router.SetupRouter(r, router.Controllers{
		Product: controller.NewProductController(productSvc, catalogSvc),
		Catalog: controller.NewCatalogController(catalogSvc),
		Auth:    controller.NewAuthController(authSvc),
		Import:  controller.NewImportController(importSvc),
	})
	return r, db
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.GenerateAccessToken("admin-id", "root", model.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func customerToken(t *testing.T) string {
	t.Helper()
	token, err := middleware.GenerateAccessToken("cust-id", "alice", model.RoleCustomer)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

// seedViaAdmin creates two products through the admin API so the tests
// exercise the same path the UI does.
func seedViaAdmin(t *testing.T, r *gin.Engine) {
	t.Helper()
	token := adminToken(t)

	for _, body := range []string{
		`{"name":"Blue Hoodie","price":10,"category":"Men","subcategory":"Shirts","brand":"Nike","colors":["Blue"],"sizes":["M"],"tags":["summer"]}`,
		`{"name":"Red Dress","price":20,"originalPrice":35,"category":"Women","subcategory":"Dresses","brand":"Adidas","colors":["Red"],"sizes":["L"],"tags":["sale"]}`,
	} {
		w := doRequest(t, r, http.MethodPost, "/api/admin/products", body, token)
		if w.Code != http.StatusCreated {
			t.Fatalf("seed product failed: %d %s", w.Code, w.Body.String())
		}
	}
}
