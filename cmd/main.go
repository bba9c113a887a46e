package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront_api/internal/controller"
	"storefront_api/internal/middleware"
	"storefront_api/internal/model"
	"storefront_api/internal/repository"
	"storefront_api/internal/router"
	"storefront_api/internal/service"
	"storefront_api/internal/task"
	"storefront_api/pkg/config"
	"storefront_api/pkg/database"
	"storefront_api/pkg/logger"
)

// @title Storefront API
// @version 1.0
// @description Faceted product catalog with an admin back office.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		panic(err)
	}
	defer logger.Sync()

	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenTTL:  cfg.JWT.AccessTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTTL,
		Issuer:          cfg.JWT.Issuer,
	})
	router.ImportCooldown = cfg.Import.Cooldown

	db := initDatabase(cfg)
	deps := initDependencies(db, cfg)

	seedAdmin(deps, cfg)
	initTasks(deps, cfg)

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	router.SetupRouter(r, deps.Controllers)

	startServer(r, cfg.Server.Port)
}

// ==================== Dependency Containers ====================

type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers router.Controllers
}

type Repositories struct {
	Product repository.ProductRepository
	Catalog repository.CatalogRepository
	User    repository.UserRepository
}

type Services struct {
	Product *service.ProductService
	Catalog *service.CatalogService
	Auth    *service.AuthService
	Import  *service.CatalogImportService
}

// ==================== Initialization ====================

func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := database.InitDB(
		cfg.Database.DSN,
		database.PoolOptions{
			MaxIdleConns:    cfg.Database.MaxIdleConns,
			MaxOpenConns:    cfg.Database.MaxOpenConns,
			ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		},
		// Vocabulary
		&model.Category{}, &model.Subcategory{},
		&model.Brand{}, &model.Color{}, &model.Size{}, &model.Tag{},
		// Catalog
		&model.Product{},
		// Auth
		&model.SysUser{},
	)
	if err != nil {
		logger.L().Fatalw("database init failed", "err", err)
	}
	return db
}

func initDependencies(db *gorm.DB, cfg *config.Config) *Dependencies {
	repos := &Repositories{
		Product: repository.NewProductRepository(db),
		Catalog: repository.NewCatalogRepository(db),
		User:    repository.NewUserRepository(db),
	}

	services := &Services{}
	services.Product = service.NewProductService(repos.Product, repos.Catalog)
	services.Catalog = service.NewCatalogService(repos.Product, repos.Catalog)
	services.Auth = service.NewAuthService(repos.User)
	services.Import = service.NewCatalogImportService(services.Catalog, cfg.Import.FeedURL)

	controllers := router.Controllers{
		Product: controller.NewProductController(services.Product, services.Catalog),
		Catalog: controller.NewCatalogController(services.Catalog),
		Auth:    controller.NewAuthController(services.Auth),
		Import:  controller.NewImportController(services.Import),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

func seedAdmin(deps *Dependencies, cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := deps.Services.Auth.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		logger.L().Fatalw("admin seed failed", "err", err)
	}
}

func initTasks(deps *Dependencies, cfg *config.Config) {
	importTask := task.NewImportTask(deps.Services.Import, cfg.Import.Cron)
	if err := importTask.Start(); err != nil {
		logger.L().Fatalw("import task failed to start", "err", err)
	}
}

// ==================== Server ====================

func startServer(r *gin.Engine, port string) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.L().Infow("server listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatalw("server failed", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Infow("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Fatalw("forced shutdown", "err", err)
	}

	logger.L().Infow("server stopped")
}
