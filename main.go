package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/glowify/ecommerce-api/config"
	"github.com/glowify/ecommerce-api/middleware"
	"github.com/glowify/ecommerce-api/routes"
	"github.com/glowify/ecommerce-api/storage"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Init the JSON file store
	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		logger.Fatal("failed to open store", zap.Error(err))
	}

	// Gin setup
	r := gin.New()
	r.Use(middleware.RequestLogger(logger), gin.Recovery())

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Serve product images
	r.Static("/uploads", cfg.StaticDir)

	// Setup routes
	routes.SetupRoutes(r, store, cfg)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
