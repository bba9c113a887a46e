package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront_api/internal/controller"
	"storefront_api/internal/middleware"
	"storefront_api/internal/model"
)

// Controllers bundles everything the router wires up.
type Controllers struct {
	Product *controller.ProductController
	Catalog *controller.CatalogController
	Auth    *controller.AuthController
	Import  *controller.ImportController
}

// ImportCooldown guards the manual import trigger.
var ImportCooldown = 5 * time.Minute

// SetupRouter registers all routes. The storefront surface is public; the
// admin group sits behind JWT auth with the admin role.
func SetupRouter(r *gin.Engine, ctls Controllers) {
	// Swagger UI at /swagger/index.html.
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		// Storefront, no auth.
		products := api.Group("/products")
		{
			products.GET("", ctls.Product.ListProducts)
			products.GET("/:id", ctls.Product.GetProduct)
		}
		api.GET("/filters", ctls.Catalog.GetFilters)
		api.GET("/categories", ctls.Catalog.ListCategories)

		auth := api.Group("/auth")
		{
			auth.POST("/register", ctls.Auth.Register)
			auth.POST("/login", ctls.Auth.Login)
			auth.POST("/refresh", ctls.Auth.Refresh)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.JWTAuth(), middleware.RequireRole(model.RoleAdmin))
		{
			admin.POST("/products", ctls.Product.CreateProduct)
			admin.PATCH("/products/:id", ctls.Product.PatchProduct)
			admin.DELETE("/products/:id", ctls.Product.DeleteProduct)

			admin.POST("/categories", ctls.Catalog.CreateCategory)
			admin.POST("/subcategories", ctls.Catalog.CreateSubcategory)
			admin.POST("/brands", ctls.Catalog.CreateBrand)
			admin.POST("/colors", ctls.Catalog.CreateColor)
			admin.POST("/sizes", ctls.Catalog.CreateSize)
			admin.POST("/tags", ctls.Catalog.CreateTag)

			admin.POST("/import",
				middleware.Cooldown("catalog:import", ImportCooldown),
				ctls.Import.TriggerImport,
			)
		}
	}
}
