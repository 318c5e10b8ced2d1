package handlers

import (
	"net/http"

	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RestaurantHandler serves the owner's restaurant and menu management.
type RestaurantHandler struct {
	db *gorm.DB
}

func NewRestaurantHandler(db *gorm.DB) *RestaurantHandler {
	return &RestaurantHandler{db: db}
}

// ── Restaurant management ───────────────────────────────────────────────────

type CreateRestaurantRequest struct {
	Name        string `json:"name" binding:"required,min=2"`
	Description string `json:"description"`
	Address     string `json:"address" binding:"required"`
	Phone       string `json:"phone"`
	CuisineType string `json:"cuisine_type"`
}

// GetMyRestaurants lists every restaurant owned by the caller
func (h *RestaurantHandler) GetMyRestaurants(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var restaurants []models.Restaurant
	if err := h.db.Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants})
}

// CreateRestaurant creates a restaurant for the caller. New restaurants stay
// invisible to public listing until an admin flips the approval flag.
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant := models.Restaurant{
		OwnerID:     ownerID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		CuisineType: req.CuisineType,
		IsApproved:  false,
	}
	if err := h.db.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":       "Restaurant created successfully",
		"restaurant_id": restaurant.ID,
	})
}

// Pointer fields distinguish "absent" from "set"; present values are checked
// explicitly below. The approval flag is admin territory and has no field
// here.
type UpdateRestaurantRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
	Phone       *string `json:"phone"`
	CuisineType *string `json:"cuisine_type"`
}

// UpdateRestaurant applies partial updates to an owned restaurant
func (h *RestaurantHandler) UpdateRestaurant(c *gin.Context) {
	restaurant := middleware.GetRestaurant(c)

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name != nil && len(*req.Name) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be at least 2 characters"})
		return
	}
	if req.Address != nil && *req.Address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Address cannot be empty"})
		return
	}

	update := map[string]interface{}{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Address != nil {
		update["address"] = *req.Address
	}
	if req.Phone != nil {
		update["phone"] = *req.Phone
	}
	if req.CuisineType != nil {
		update["cuisine_type"] = *req.CuisineType
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	if err := h.db.Model(restaurant).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated successfully", "restaurant": restaurant})
}

// ── Menu management ─────────────────────────────────────────────────────────

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required,min=2"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

// GetMyMenu lists the full menu of an owned restaurant, unavailable items
// included
func (h *RestaurantHandler) GetMyMenu(c *gin.Context) {
	restaurant := middleware.GetRestaurant(c)

	var items []models.MenuItem
	if err := h.db.Where("restaurant_id = ?", restaurant.ID).
		Order("category, name").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu_items": items})
}

// AddMenuItem adds a new item to an owned restaurant's menu
func (h *RestaurantHandler) AddMenuItem(c *gin.Context) {
	restaurant := middleware.GetRestaurant(c)

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		ImageURL:     req.ImageURL,
		IsAvailable:  true,
	}
	if err := h.db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added successfully", "menu_item_id": item.ID})
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	IsAvailable *bool    `json:"is_available"`
	ImageURL    *string  `json:"image_url"`
}

// UpdateMenuItem applies partial updates to a menu item. The update is scoped
// to the restaurant in the path, so an item id under the wrong restaurant is
// a 404. A price update must stay positive; snapshots and cart totals are
// computed from it.
func (h *RestaurantHandler) UpdateMenuItem(c *gin.Context) {
	restaurant := middleware.GetRestaurant(c)

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Name != nil && len(*req.Name) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be at least 2 characters"})
		return
	}
	if req.Price != nil && *req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be greater than 0"})
		return
	}

	update := map[string]interface{}{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Price != nil {
		update["price"] = *req.Price
	}
	if req.Category != nil {
		update["category"] = *req.Category
	}
	if req.IsAvailable != nil {
		update["is_available"] = *req.IsAvailable
	}
	if req.ImageURL != nil {
		update["image_url"] = *req.ImageURL
	}
	if len(update) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	result := h.db.Model(&models.MenuItem{}).
		Where("id = ? AND restaurant_id = ?", c.Param("menuItemId"), restaurant.ID).
		Updates(update)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated successfully"})
}

// DeleteMenuItem removes a menu item, scoped to the restaurant in the path
func (h *RestaurantHandler) DeleteMenuItem(c *gin.Context) {
	restaurant := middleware.GetRestaurant(c)

	result := h.db.Where("id = ? AND restaurant_id = ?", c.Param("menuItemId"), restaurant.ID).
		Delete(&models.MenuItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted successfully"})
}
