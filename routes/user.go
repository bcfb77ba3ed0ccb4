package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/glowify/ecommerce-api/config"
	userControllers "github.com/glowify/ecommerce-api/controllers/user"
	"github.com/glowify/ecommerce-api/middleware"
	"github.com/glowify/ecommerce-api/storage"
)

// SetupUserRoutes registers the /api/users endpoints. Profile routes are for
// the authenticated caller; listing and lookup by id are admin-only.
func SetupUserRoutes(api *gin.RouterGroup, store *storage.Store, cfg *config.Config) {
	users := api.Group("/users")
	users.Use(middleware.ValidateToken(cfg.JWTSecret))
	{
		users.GET("/profile", userControllers.GetProfile(store))
		users.PUT("/profile", userControllers.UpdateProfile(store))

		users.GET("", middleware.RequireAdmin, userControllers.GetAllUsers(store))
		users.GET("/:id", middleware.RequireAdmin, userControllers.GetUserByID(store))
	}
}
