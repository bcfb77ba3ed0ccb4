package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/glowify/ecommerce-api/auth"
	"github.com/glowify/ecommerce-api/config"
	"github.com/glowify/ecommerce-api/storage"
)

// SetupAuthRoutes registers the public /api/auth endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, store *storage.Store, cfg *config.Config) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(store, cfg.JWTSecret))
		authGroup.POST("/login", auth.Login(store, cfg.JWTSecret))
	}
}
