package productController

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowify/ecommerce-api/storage"
)

// GetProducts returns the catalog, optionally filtered by ?category= or
// ?search=.
// GET /api/products
func GetProducts(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			products interface{}
			err      error
		)
		switch {
		case c.Query("search") != "":
			products, err = store.SearchProducts(c.Query("search"))
		case c.Query("category") != "":
			products, err = store.ProductsByCategory(c.Query("category"))
		default:
			products, err = store.AllProducts()
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/:id
func GetProductByID(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := store.ProductByID(c.Param("id"))
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
