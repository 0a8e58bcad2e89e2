package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/knsalim/paanshop-api/auth"
	"github.com/knsalim/paanshop-api/models"
	"github.com/knsalim/paanshop-api/store"
)

// POST /user/orders/place
func PlaceOrderHandler(st store.Store, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := auth.PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := PlaceOrder(c.Request.Context(), st, log, p.ID, req)
		switch err {
		case nil:
			c.JSON(http.StatusOK, gin.H{"message": "Order placed successfully", "order": result})
		case ErrNoDeliveryMethod, ErrEmptyCart:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.WithError(err).Error("checkout failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order. Please try again."})
		}
	}
}

// GET /user/orders
func GetUserOrdersHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := auth.PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orders, err := GetUserOrders(c.Request.Context(), st, p.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:orderID
func GetOrderHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := auth.PrincipalFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		order, err := GetOrder(c.Request.Context(), st, p.ID, c.Param("orderID"))
		if err == store.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PUT /admin/orders/:userID/:orderID/status
func UpdateOrderStatusHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := AdvanceStatus(c.Request.Context(), st, c.Param("userID"), c.Param("orderID"), req.Status)
		switch err {
		case nil:
			c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
		case store.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case ErrInvalidTransition, ErrDineoutNoStaging:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case models.ErrInvalidDeliveryStatus:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
		}
	}
}

type updatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// PUT /admin/orders/:userID/:orderID/payment-status
func UpdatePaymentStatusHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		err := SetPaymentStatus(c.Request.Context(), st, c.Param("userID"), c.Param("orderID"), req.PaymentStatus)
		switch err {
		case nil:
			c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully"})
		case store.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case models.ErrInvalidPaymentStatus:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
		}
	}
}
