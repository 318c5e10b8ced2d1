package handlers

import (
	"log/slog"
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CustomerHandler serves order placement and the customer's order history.
type CustomerHandler struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewCustomerHandler(db *gorm.DB, log *slog.Logger) *CustomerHandler {
	return &CustomerHandler{db: db, log: log}
}

type PlaceOrderRequest struct {
	DeliveryAddress      string `json:"delivery_address" binding:"required"`
	DeliveryInstructions string `json:"delivery_instructions"`
}

// PlaceOrder converts the caller's cart into an order. The order row, its
// item snapshots and the cart clear run in one transaction: a failure at any
// step leaves no order and an intact cart.
func (h *CustomerHandler) PlaceOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Inner join so cart rows whose menu item was deleted drop out instead of
	// reading as zero-priced snapshots; a fully dangling cart is an empty one.
	var cartItems []models.CartItem
	if err := h.db.InnerJoins("MenuItem").Where("cart_items.user_id = ?", customerID).
		Find(&cartItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if len(cartItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	// Single-restaurant constraint, deferred from cart insertion to here
	restaurantID := cartItems[0].RestaurantID
	for _, item := range cartItems {
		if item.RestaurantID != restaurantID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All items must be from the same restaurant"})
			return
		}
	}

	var total float64
	for _, item := range cartItems {
		total += item.MenuItem.Price * float64(item.Quantity)
	}

	order := models.Order{
		CustomerID:           customerID,
		RestaurantID:         restaurantID,
		TotalAmount:          total,
		Status:               models.StatusPending,
		DeliveryAddress:      req.DeliveryAddress,
		DeliveryInstructions: req.DeliveryInstructions,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, item := range cartItems {
			orderItem := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: item.MenuItemID,
				Quantity:   item.Quantity,
				Price:      item.MenuItem.Price,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}
		return tx.Where("user_id = ?", customerID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		h.log.Error("order placement failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.Uint64("customer_id", uint64(customerID)),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	h.log.Info("order placed",
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.Uint64("order_id", uint64(order.ID)),
		slog.Float64("total_amount", total),
	)

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Order placed successfully",
		"order_id":     order.ID,
		"total_amount": total,
	})
}

// GetMyOrders returns the caller's orders, newest first
func (h *CustomerHandler) GetMyOrders(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var orders []models.Order
	if err := h.db.Preload("Restaurant").
		Where("customer_id = ?", customerID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns one of the caller's orders with its item snapshots
func (h *CustomerHandler) GetOrderDetail(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var order models.Order
	if err := h.db.Preload("Items.MenuItem").Preload("Restaurant").
		Where("id = ? AND customer_id = ?", c.Param("orderId"), customerID).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// CancelOrder cancels one of the caller's orders while it is still pending or
// accepted
func (h *CustomerHandler) CancelOrder(c *gin.Context) {
	customerID := middleware.GetUserID(c)

	var order models.Order
	if err := h.db.Where("id = ? AND customer_id = ?", c.Param("orderId"), customerID).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := statemachine.CustomerCanCancel(order.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.db.Model(&order).Update("status", models.StatusCancelled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order_id": order.ID})
}
