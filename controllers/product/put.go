package productController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowify/ecommerce-api/storage"
)

// PUT /api/products/:id (admin)
func UpdateProduct(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var update storage.ProductUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := store.UpdateProduct(c.Param("id"), update)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
