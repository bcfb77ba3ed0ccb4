package userControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowify/ecommerce-api/middleware"
	"github.com/glowify/ecommerce-api/storage"
)

// GET /api/users/profile
func GetProfile(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserIDKey)

		user, err := store.UserByID(userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, user.Sanitized())
	}
}

// PUT /api/users/profile
func UpdateProfile(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserIDKey)

		// The binding only carries name and email; id and password in the
		// payload are dropped, not errored.
		var update storage.ProfileUpdate
		if err := c.ShouldBindJSON(&update); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		user, err := store.UpdateProfile(userID, update)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, user.Sanitized())
	}
}

// GET /api/users
func GetAllUsers(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := store.AllUsers()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// GET /api/users/:id
func GetUserByID(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := store.UserByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, user.Sanitized())
	}
}
