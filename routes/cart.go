package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/glowify/ecommerce-api/config"
	cartControllers "github.com/glowify/ecommerce-api/controllers/cart"
	"github.com/glowify/ecommerce-api/middleware"
	"github.com/glowify/ecommerce-api/storage"
)

// SetupCartRoutes registers the /api/cart endpoints. All of them require a
// valid token.
func SetupCartRoutes(api *gin.RouterGroup, store *storage.Store, cfg *config.Config) {
	cart := api.Group("/cart")
	cart.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		cart.GET("", cartControllers.GetCart(store))
		cart.POST("/add", cartControllers.AddToCart(store))
		cart.PUT("/update/:itemId", cartControllers.UpdateCartItem(store))
		cart.DELETE("/remove/:itemId", cartControllers.RemoveFromCart(store))
		cart.DELETE("/clear", cartControllers.ClearCart(store))
	}
}
