package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/glowify/ecommerce-api/config"
	"github.com/glowify/ecommerce-api/storage"
)

// SetupRoutes is the single entry point that wires up every route group
// under the /api root.
func SetupRoutes(r *gin.Engine, store *storage.Store, cfg *config.Config) {
	api := r.Group("/api")

	SetupAuthRoutes(api, store, cfg)
	SetupProductRoutes(api, store, cfg)
	SetupCartRoutes(api, store, cfg)
	SetupOrderRoutes(api, store, cfg)
	SetupUserRoutes(api, store, cfg)
}
