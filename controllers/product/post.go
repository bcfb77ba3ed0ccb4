package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowify/ecommerce-api/models"
	"github.com/glowify/ecommerce-api/storage"
)

type CreateProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
	Image       string  `json:"image"`
	Discount    float64 `json:"discount" binding:"gte=0,lte=100"`
	Description string  `json:"description"`
	InStock     bool    `json:"inStock"`
	Stock       int     `json:"stock" binding:"gte=0"`
}

// POST /api/products (admin)
func CreateProduct(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := store.CreateProduct(models.Product{
			Name:        input.Name,
			Price:       input.Price,
			Category:    input.Category,
			Image:       input.Image,
			Discount:    input.Discount,
			Description: input.Description,
			InStock:     input.InStock,
			Stock:       input.Stock,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
