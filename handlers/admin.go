package handlers

import (
	"net/http"

	"food-ordering-api/models"
	"food-ordering-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminHandler serves user administration, the restaurant approval workflow
// and order administration.
type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// ── Users ───────────────────────────────────────────────────────────────────

// GetAllUsers lists every user
func (h *AdminHandler) GetAllUsers(c *gin.Context) {
	var users []models.User
	query := h.db.Order("created_at desc")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}

// GetUser returns one user
func (h *AdminHandler) GetUser(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, c.Param("userId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type UpdateUserRoleRequest struct {
	Role models.UserRole `json:"role" binding:"required"`
}

// UpdateUserRole changes a user's role
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: customer, restaurant or admin"})
		return
	}

	result := h.db.Model(&models.User{}).
		Where("id = ?", c.Param("userId")).
		Update("role", req.Role)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User role updated successfully"})
}

// DeleteUser hard-deletes a user. Owned restaurants and past orders are left
// in place; deletion does not cascade.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	result := h.db.Delete(&models.User{}, c.Param("userId"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ── Restaurant approval workflow ────────────────────────────────────────────

type ApprovalRequest struct {
	IsApproved *bool `json:"is_approved" binding:"required"`
}

// UpdateRestaurantApproval flips the approval flag
func (h *AdminHandler) UpdateRestaurantApproval(c *gin.Context) {
	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.db.Model(&models.Restaurant{}).
		Where("id = ?", c.Param("restaurantId")).
		Update("is_approved", *req.IsApproved)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	msg := "Restaurant rejected successfully"
	if *req.IsApproved {
		msg = "Restaurant approved successfully"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// GetAllRestaurants lists every restaurant regardless of approval state.
// ?approved=false narrows the list to restaurants awaiting approval, oldest
// first, so the approval queue is worked in arrival order.
func (h *AdminHandler) GetAllRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	query := h.db.Preload("Owner").Order("created_at desc")
	if approved := c.Query("approved"); approved != "" {
		query = h.db.Preload("Owner").
			Where("is_approved = ?", approved == "true").
			Order("created_at asc")
	}
	if err := query.Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(restaurants), "restaurants": restaurants})
}

// GetRestaurant returns one restaurant with its owner
func (h *AdminHandler) GetRestaurant(c *gin.Context) {
	var restaurant models.Restaurant
	if err := h.db.Preload("Owner").Preload("MenuItems").
		First(&restaurant, c.Param("restaurantId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// ── Orders ──────────────────────────────────────────────────────────────────

// GetAllOrders lists every order with customer and restaurant joined
func (h *AdminHandler) GetAllOrders(c *gin.Context) {
	var orders []models.Order
	query := h.db.Preload("Customer").Preload("Restaurant")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrder returns any order with full detail
func (h *AdminHandler) GetOrder(c *gin.Context) {
	var order models.Order
	if err := h.db.Preload("Items.MenuItem").Preload("Customer").Preload("Restaurant").
		First(&order, c.Param("orderId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type AdminOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus lets an admin set any valid status on any order
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req AdminOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := statemachine.AdminCanSet(req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.db.Model(&models.Order{}).
		Where("id = ?", c.Param("orderId")).
		Update("status", req.Status)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
}
