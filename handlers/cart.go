package handlers

import (
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CartHandler serves the authenticated shopping cart.
type CartHandler struct {
	db *gorm.DB
}

func NewCartHandler(db *gorm.DB) *CartHandler {
	return &CartHandler{db: db}
}

// GetCart lists the caller's cart with per-line and cart totals
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	// Inner join: rows whose menu item was deleted are not rendered (and will
	// not count at placement either)
	var items []models.CartItem
	if err := h.db.InnerJoins("MenuItem").Preload("Restaurant").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.created_at desc").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var total float64
	lines := make([]gin.H, 0, len(items))
	for _, item := range items {
		lineTotal := item.MenuItem.Price * float64(item.Quantity)
		total += lineTotal
		lines = append(lines, gin.H{
			"id":              item.ID,
			"quantity":        item.Quantity,
			"menu_item":       item.MenuItem,
			"restaurant_id":   item.RestaurantID,
			"restaurant_name": item.Restaurant.Name,
			"line_total":      lineTotal,
			"created_at":      item.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"cart_items": lines, "total": total})
}

type AddToCartRequest struct {
	MenuItemID   uint `json:"menu_item_id" binding:"required"`
	RestaurantID uint `json:"restaurant_id" binding:"required"`
	Quantity     int  `json:"quantity" binding:"required,min=1"`
}

// AddToCart validates the menu item against the stated restaurant, then
// merges into an existing row for the same menu item or inserts a new one.
// Cross-restaurant carts are allowed here; the single-restaurant rule is
// checked at order placement.
func (h *CartHandler) AddToCart(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var menuItem models.MenuItem
	if err := h.db.Where("id = ? AND restaurant_id = ? AND is_available = ?",
		req.MenuItemID, req.RestaurantID, true).First(&menuItem).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found or unavailable"})
		return
	}

	var existing models.CartItem
	err := h.db.Where("user_id = ? AND menu_item_id = ?", userID, req.MenuItemID).
		First(&existing).Error
	switch {
	case err == nil:
		if err := h.db.Model(&existing).
			Update("quantity", existing.Quantity+req.Quantity).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully"})
	case err == gorm.ErrRecordNotFound:
		item := models.CartItem{
			UserID:       userID,
			RestaurantID: req.RestaurantID,
			MenuItemID:   req.MenuItemID,
			Quantity:     req.Quantity,
		}
		if err := h.db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item added to cart successfully"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
	}
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItem changes the quantity of one of the caller's cart rows
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.db.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", c.Param("itemId"), userID).
		Update("quantity", req.Quantity)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully"})
}

// RemoveCartItem deletes one of the caller's cart rows
func (h *CartHandler) RemoveCartItem(c *gin.Context) {
	userID := middleware.GetUserID(c)

	result := h.db.Where("id = ? AND user_id = ?", c.Param("itemId"), userID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart successfully"})
}

// ClearCart deletes every cart row for the caller
func (h *CartHandler) ClearCart(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if err := h.db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
}
