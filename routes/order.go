package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/glowify/ecommerce-api/config"
	orderControllers "github.com/glowify/ecommerce-api/controllers/order"
	"github.com/glowify/ecommerce-api/middleware"
	"github.com/glowify/ecommerce-api/storage"
)

// SetupOrderRoutes registers the /api/orders endpoints. The admin subgroup
// additionally requires the admin capability.
func SetupOrderRoutes(api *gin.RouterGroup, store *storage.Store, cfg *config.Config) {
	orders := api.Group("/orders")

	// Real-time order event feed; clients authenticate at the application
	// level if they need to, the upgrade itself is open.
	orders.GET("/ws", orderControllers.OrderWebSocketHandler)

	authed := orders.Group("")
	authed.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		authed.POST("", orderControllers.CreateOrder(store))
		authed.GET("", orderControllers.GetUserOrders(store))
		authed.GET("/:id", orderControllers.GetOrderByID(store))
		authed.PUT("/:id/cancel", orderControllers.CancelOrder(store))

		admin := authed.Group("/admin")
		admin.Use(middleware.RequireAdmin)
		{
			admin.GET("/all", orderControllers.GetAllOrders(store))
			admin.PUT("/:id/status", orderControllers.UpdateOrderStatus(store))
		}
	}
}
