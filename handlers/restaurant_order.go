package handlers

import (
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetRestaurantOrders lists all orders for an owned restaurant
func (h *RestaurantHandler) GetRestaurantOrders(c *gin.Context) {
	restaurant := middleware.GetRestaurant(c)

	var orders []models.Order
	query := h.db.Preload("Customer").Where("restaurant_id = ?", restaurant.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// Per-status counts for the owner dashboard
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant":    restaurant.Name,
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

// GetRestaurantOrderDetail returns one order of an owned restaurant with its
// item snapshots
func (h *RestaurantHandler) GetRestaurantOrderDetail(c *gin.Context) {
	restaurant := middleware.GetRestaurant(c)

	var order models.Order
	if err := h.db.Preload("Items.MenuItem").Preload("Customer").
		Where("id = ? AND restaurant_id = ?", c.Param("orderId"), restaurant.ID).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus applies an owner-initiated status update. The target must
// be a member of the restaurant status set; there is no current-state
// precondition beyond the order existing under this restaurant.
func (h *RestaurantHandler) UpdateOrderStatus(c *gin.Context) {
	restaurant := middleware.GetRestaurant(c)

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := statemachine.RestaurantCanSet(req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.db.Model(&models.Order{}).
		Where("id = ? AND restaurant_id = ?", c.Param("orderId"), restaurant.ID).
		Update("status", req.Status)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Order status updated successfully",
		"order_id": c.Param("orderId"),
		"status":   req.Status,
	})
}
