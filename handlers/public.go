package handlers

import (
	"net/http"

	"food-ordering-api/models"
	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PublicHandler serves unauthenticated browsing and order tracking.
type PublicHandler struct {
	db *gorm.DB
}

func NewPublicHandler(db *gorm.DB) *PublicHandler {
	return &PublicHandler{db: db}
}

// ListRestaurants returns all approved restaurants
func (h *PublicHandler) ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := h.db.Preload("Owner").Where("is_approved = ?", true)

	if cuisine := c.Query("cuisine"); cuisine != "" {
		query = query.Where("cuisine_type LIKE ?", "%"+cuisine+"%")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	if err := query.Order("name").Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// GetRestaurant returns a single approved restaurant
func (h *PublicHandler) GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := h.db.Preload("Owner").
		Where("id = ? AND is_approved = ?", c.Param("restaurantId"), true).
		First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetMenu returns the available menu items of a restaurant. Unavailable items
// are hidden here but stay referenceable from historical orders.
func (h *PublicHandler) GetMenu(c *gin.Context) {
	restaurantID := c.Param("restaurantId")

	var restaurant models.Restaurant
	if err := h.db.Where("id = ? AND is_approved = ?", restaurantID, true).
		First(&restaurant).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var items []models.MenuItem
	query := h.db.Where("restaurant_id = ? AND is_available = ?", restaurantID, true)
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Order("category, name").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant": restaurant.Name,
		"count":      len(items),
		"menu_items": items,
	})
}

// TrackOrder is the public order-tracking endpoint: status plus a fixed
// human-readable description.
func (h *PublicHandler) TrackOrder(c *gin.Context) {
	var order models.Order
	if err := h.db.Preload("Restaurant").First(&order, c.Param("orderId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id":                order.ID,
		"status":                  order.Status,
		"status_description":      statemachine.Describe(order.Status),
		"is_final":                statemachine.IsTerminal(order.Status),
		"created_at":              order.CreatedAt,
		"estimated_delivery_time": order.EstimatedDeliveryTime,
		"restaurant_name":         order.Restaurant.Name,
	})
}
