package productController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowify/ecommerce-api/storage"
)

// DELETE /api/products/:id (admin)
func DeleteProduct(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.DeleteProduct(c.Param("id")); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
