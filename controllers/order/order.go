package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowify/ecommerce-api/middleware"
	"github.com/glowify/ecommerce-api/models"
	"github.com/glowify/ecommerce-api/storage"
)

type CreateOrderRequest struct {
	ShippingAddress *models.Address `json:"shippingAddress"`
	PaymentMethod   string          `json:"paymentMethod"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /api/orders
func CreateOrder(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserIDKey)

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if req.ShippingAddress == nil || req.PaymentMethod == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Shipping address and payment method are required"})
			return
		}

		order, err := store.CreateOrder(userID, *req.ShippingAddress, req.PaymentMethod)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrCartEmpty), errors.Is(err, storage.ErrMissingFields):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		broadcastOrderEvent("order_created", order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders
func GetUserOrders(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserIDKey)

		orders, err := store.OrdersByUser(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
func GetOrderByID(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserIDKey)
		isAdmin := c.GetBool(middleware.CtxIsAdminKey)

		order, err := store.OrderByID(c.Param("id"))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if order.UserID != userID && !isAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// PUT /api/orders/:id/cancel
func CancelOrder(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(middleware.CtxUserIDKey)

		order, err := store.CancelOrder(userID, c.Param("id"))
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			case errors.Is(err, storage.ErrNotOwner):
				c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			case errors.Is(err, storage.ErrTerminalStatus):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Order cannot be cancelled"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		broadcastOrderEvent("order_cancelled", order)
		c.JSON(http.StatusOK, order)
	}
}

// GET /api/orders/admin/all
func GetAllOrders(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := store.AllOrders()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /api/orders/admin/:id/status
func UpdateOrderStatus(store *storage.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := store.SetOrderStatus(c.Param("id"), req.Status)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrInvalidStatus):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			case errors.Is(err, storage.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}

		broadcastOrderEvent("order_status_changed", order)
		c.JSON(http.StatusOK, order)
	}
}
