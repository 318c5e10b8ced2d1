package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Read-only aggregate queries for the admin dashboard. Plain SQL against the
// store, no caching or incremental maintenance.

type userStats struct {
	TotalUsers  int64 `json:"total_users"`
	Customers   int64 `json:"customers"`
	Restaurants int64 `json:"restaurants"`
	Admins      int64 `json:"admins"`
}

type restaurantStats struct {
	TotalRestaurants    int64 `json:"total_restaurants"`
	ApprovedRestaurants int64 `json:"approved_restaurants"`
	PendingRestaurants  int64 `json:"pending_restaurants"`
}

type orderStats struct {
	TotalOrders   int64   `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

// GetDashboard returns role counts, approval counts and order revenue sums
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	var uStats userStats
	if err := h.db.Raw(`
		SELECT COUNT(*) AS total_users,
		       COUNT(CASE WHEN role = 'customer' THEN 1 END) AS customers,
		       COUNT(CASE WHEN role = 'restaurant' THEN 1 END) AS restaurants,
		       COUNT(CASE WHEN role = 'admin' THEN 1 END) AS admins
		FROM users`).Scan(&uStats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var rStats restaurantStats
	if err := h.db.Raw(`
		SELECT COUNT(*) AS total_restaurants,
		       COUNT(CASE WHEN is_approved = 1 THEN 1 END) AS approved_restaurants,
		       COUNT(CASE WHEN is_approved = 0 THEN 1 END) AS pending_restaurants
		FROM restaurants`).Scan(&rStats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var oStats orderStats
	if err := h.db.Raw(`
		SELECT COUNT(*) AS total_orders,
		       COALESCE(SUM(total_amount), 0) AS total_revenue,
		       COALESCE(AVG(total_amount), 0) AS avg_order_value
		FROM orders`).Scan(&oStats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_stats":       uStats,
		"restaurant_stats": rStats,
		"order_stats":      oStats,
	})
}

type activityEntry struct {
	Type        string    `json:"type"`
	ItemID      uint      `json:"item_id"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	UserName    string    `json:"user_name"`
}

// GetRecentActivity merges orders, restaurants and users into one feed,
// newest first, capped by the caller-supplied limit.
func (h *AdminHandler) GetRecentActivity(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	var activities []activityEntry
	if err := h.db.Raw(`
		SELECT 'order' AS type, o.id AS item_id, o.created_at AS timestamp,
		       'Order #' || o.id || ' - $' || o.total_amount AS description,
		       u.name AS user_name
		FROM orders o JOIN users u ON o.customer_id = u.id
		UNION ALL
		SELECT 'restaurant', r.id, r.created_at,
		       'Restaurant: ' || r.name, u.name
		FROM restaurants r JOIN users u ON r.owner_id = u.id
		UNION ALL
		SELECT 'user', u.id, u.created_at,
		       'User: ' || u.name || ' (' || u.role || ')', u.name
		FROM users u
		ORDER BY timestamp DESC
		LIMIT ?`, limit).Scan(&activities).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

type revenueBucket struct {
	Period        string  `json:"period"`
	OrderCount    int64   `json:"order_count"`
	Revenue       float64 `json:"revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

// GetRevenue buckets order revenue by day, week or month over a trailing
// six-month window.
func (h *AdminHandler) GetRevenue(c *gin.Context) {
	var format string
	switch c.DefaultQuery("period", "month") {
	case "day":
		format = "%Y-%m-%d"
	case "week":
		format = "%Y-W%W"
	case "month":
		format = "%Y-%m"
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid period. Must be: day, week or month"})
		return
	}

	var buckets []revenueBucket
	if err := h.db.Raw(`
		SELECT strftime(?, created_at) AS period,
		       COUNT(*) AS order_count,
		       COALESCE(SUM(total_amount), 0) AS revenue,
		       COALESCE(AVG(total_amount), 0) AS avg_order_value
		FROM orders
		WHERE created_at >= date('now', '-6 months')
		GROUP BY period
		ORDER BY period DESC`, format).Scan(&buckets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue_data": buckets})
}

type orderOverview struct {
	TotalOrders     int64   `json:"total_orders"`
	PendingOrders   int64   `json:"pending_orders"`
	AcceptedOrders  int64   `json:"accepted_orders"`
	PreparingOrders int64   `json:"preparing_orders"`
	ReadyOrders     int64   `json:"ready_orders"`
	DeliveredOrders int64   `json:"delivered_orders"`
	CancelledOrders int64   `json:"cancelled_orders"`
	TotalRevenue    float64 `json:"total_revenue"`
}

// GetOrderStats returns per-status order counts and overall revenue
func (h *AdminHandler) GetOrderStats(c *gin.Context) {
	var stats orderOverview
	if err := h.db.Raw(`
		SELECT COUNT(*) AS total_orders,
		       COUNT(CASE WHEN status = 'pending' THEN 1 END) AS pending_orders,
		       COUNT(CASE WHEN status = 'accepted' THEN 1 END) AS accepted_orders,
		       COUNT(CASE WHEN status = 'preparing' THEN 1 END) AS preparing_orders,
		       COUNT(CASE WHEN status = 'ready' THEN 1 END) AS ready_orders,
		       COUNT(CASE WHEN status = 'delivered' THEN 1 END) AS delivered_orders,
		       COUNT(CASE WHEN status = 'cancelled' THEN 1 END) AS cancelled_orders,
		       COALESCE(SUM(total_amount), 0) AS total_revenue
		FROM orders`).Scan(&stats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

type dailyStat struct {
	Date         string  `json:"date"`
	OrderCount   int64   `json:"order_count"`
	DailyRevenue float64 `json:"daily_revenue"`
}

// GetOrdersByDate returns per-day order counts and revenue for a date range
func (h *AdminHandler) GetOrdersByDate(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Start date and end date are required"})
		return
	}

	var stats []dailyStat
	if err := h.db.Raw(`
		SELECT DATE(created_at) AS date,
		       COUNT(*) AS order_count,
		       COALESCE(SUM(total_amount), 0) AS daily_revenue
		FROM orders
		WHERE DATE(created_at) BETWEEN ? AND ?
		GROUP BY DATE(created_at)
		ORDER BY date`, startDate, endDate).Scan(&stats).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"daily_stats": stats})
}

type topRestaurant struct {
	RestaurantName string  `json:"restaurant_name"`
	OrderCount     int64   `json:"order_count"`
	TotalRevenue   float64 `json:"total_revenue"`
	AvgOrderValue  float64 `json:"avg_order_value"`
}

// GetTopRestaurants ranks approved restaurants by order count
func (h *AdminHandler) GetTopRestaurants(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	var top []topRestaurant
	if err := h.db.Raw(`
		SELECT r.name AS restaurant_name,
		       COUNT(o.id) AS order_count,
		       COALESCE(SUM(o.total_amount), 0) AS total_revenue,
		       COALESCE(AVG(o.total_amount), 0) AS avg_order_value
		FROM restaurants r
		LEFT JOIN orders o ON r.id = o.restaurant_id
		WHERE r.is_approved = 1
		GROUP BY r.id, r.name
		ORDER BY order_count DESC
		LIMIT ?`, limit).Scan(&top).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"top_restaurants": top})
}

// GetSystemHealth pings the store and reports overall health
func (h *AdminHandler) GetSystemHealth(c *gin.Context) {
	var one int
	dbHealthy := h.db.Raw("SELECT 1").Scan(&one).Error == nil

	status := "healthy"
	if !dbHealthy {
		status = "unhealthy"
	}
	c.JSON(http.StatusOK, gin.H{
		"status": status,
		"checks": gin.H{
			"database":  dbHealthy,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	})
}
