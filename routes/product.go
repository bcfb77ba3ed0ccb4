package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/glowify/ecommerce-api/config"
	productController "github.com/glowify/ecommerce-api/controllers/product"
	"github.com/glowify/ecommerce-api/middleware"
	"github.com/glowify/ecommerce-api/storage"
)

// SetupProductRoutes registers the /api/products endpoints. Reads are
// public; catalog mutation and export are admin-only.
func SetupProductRoutes(api *gin.RouterGroup, store *storage.Store, cfg *config.Config) {
	products := api.Group("/products")
	{
		products.GET("", productController.GetProducts(store))
		products.GET("/:id", productController.GetProductByID(store))
	}

	admin := products.Group("")
	admin.Use(middleware.ValidateToken(cfg.JWTSecret), middleware.RequireAdmin)
	{
		admin.POST("", productController.CreateProduct(store))
		admin.PUT("/:id", productController.UpdateProduct(store))
		admin.DELETE("/:id", productController.DeleteProduct(store))
		admin.GET("/admin/export", productController.ExportProductsToExcel(store))
	}
}
