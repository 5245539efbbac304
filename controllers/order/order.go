package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TroyMoses/walker-furniture-sub000/controllers/httperr"
	"github.com/TroyMoses/walker-furniture-sub000/metrics"
	"github.com/TroyMoses/walker-furniture-sub000/middleware"
	"github.com/TroyMoses/walker-furniture-sub000/models"
	orderService "github.com/TroyMoses/walker-furniture-sub000/services/order"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// POST /user/orders
func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input orderService.PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		ord, err := orderService.PlaceOrder(db, middleware.UserID(c), input)
		if err != nil {
			httperr.JSON(c, err)
			return
		}

		metrics.OrdersPlaced.Inc()
		broadcastOrderEvent("order.placed", ord)
		c.JSON(http.StatusCreated, ord)
	}
}

// GET /user/orders
func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := orderService.ListForUser(db, middleware.UserID(c))
		if err != nil {
			httperr.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:orderID
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orderID"})
			return
		}

		ord, err := orderService.GetByID(db, uint(orderID), middleware.UserID(c), middleware.IsAdmin(c))
		if err != nil {
			httperr.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, ord)
	}
}

// GET /admin/orders?status=pending&limit=50
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := 0
		if limitStr := c.Query("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil || parsed < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
				return
			}
			limit = parsed
		}

		status := models.OrderStatus(c.Query("status"))
		orders, err := orderService.ListAll(db, status, limit, middleware.IsAdmin(c))
		if err != nil {
			httperr.JSON(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid orderID"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		newStatus := models.OrderStatus(req.Status)
		if err := orderService.UpdateStatus(db, uint(orderID), newStatus, middleware.IsAdmin(c)); err != nil {
			httperr.JSON(c, err)
			return
		}

		if ord, err := orderService.GetByID(db, uint(orderID), "", true); err == nil {
			broadcastOrderEvent("order.status_changed", ord)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
