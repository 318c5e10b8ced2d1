package routes

import (
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
)

// Handlers bundles the constructed handler set for route registration.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Public     *handlers.PublicHandler
	Cart       *handlers.CartHandler
	Customer   *handlers.CustomerHandler
	Restaurant *handlers.RestaurantHandler
	Admin      *handlers.AdminHandler
}

func SetupRoutes(r *gin.Engine, auth *middleware.Auth, h Handlers) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", h.Auth.Register)
		public.POST("/auth/login", h.Auth.Login)

		// Approved restaurants and their menus (no auth needed)
		public.GET("/restaurants", h.Public.ListRestaurants)
		public.GET("/restaurants/:restaurantId", h.Public.GetRestaurant)
		public.GET("/restaurants/:restaurantId/menu", h.Public.GetMenu)

		// Order tracking by id
		public.GET("/orders/:orderId/track", h.Public.TrackOrder)
	}

	// ── Authenticated routes ───────────────────────────────────────
	authed := r.Group("/api")
	authed.Use(auth.AuthRequired())
	{
		profile := authed.Group("/auth")
		profile.Use(auth.LoadUser())
		{
			profile.GET("/profile", h.Auth.GetProfile)
			profile.PUT("/profile", h.Auth.UpdateProfile)
			profile.PUT("/change-password", h.Auth.ChangePassword)
		}

		// Cart is available to any authenticated user
		authed.GET("/cart", h.Cart.GetCart)
		authed.POST("/cart", h.Cart.AddToCart)
		authed.PUT("/cart/:itemId", h.Cart.UpdateCartItem)
		authed.DELETE("/cart/:itemId", h.Cart.RemoveCartItem)
		authed.DELETE("/cart", h.Cart.ClearCart)
	}

	// ── Customer routes ────────────────────────────────────────────
	customer := r.Group("/api")
	customer.Use(auth.AuthRequired(), auth.RoleRequired(models.RoleCustomer))
	{
		customer.POST("/orders", h.Customer.PlaceOrder)
		customer.GET("/orders", h.Customer.GetMyOrders)
		customer.GET("/orders/:orderId", h.Customer.GetOrderDetail)
		customer.PUT("/orders/:orderId/cancel", h.Customer.CancelOrder)
	}

	// ── Restaurant owner routes ────────────────────────────────────
	restaurant := r.Group("/api/restaurant")
	restaurant.Use(auth.AuthRequired(), auth.RoleRequired(models.RoleRestaurant))
	{
		restaurant.GET("", h.Restaurant.GetMyRestaurants)
		restaurant.POST("", h.Restaurant.CreateRestaurant)

		owned := restaurant.Group("/:restaurantId")
		owned.Use(auth.RequireRestaurantOwnership())
		{
			owned.PUT("", h.Restaurant.UpdateRestaurant)

			owned.GET("/menu", h.Restaurant.GetMyMenu)
			owned.POST("/menu", h.Restaurant.AddMenuItem)
			owned.PUT("/menu/:menuItemId", h.Restaurant.UpdateMenuItem)
			owned.DELETE("/menu/:menuItemId", h.Restaurant.DeleteMenuItem)

			owned.GET("/orders", h.Restaurant.GetRestaurantOrders)
			owned.GET("/orders/:orderId", h.Restaurant.GetRestaurantOrderDetail)
			owned.PUT("/orders/:orderId/status", h.Restaurant.UpdateOrderStatus)
		}
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(auth.AuthRequired(), auth.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", h.Admin.GetAllUsers)
		admin.GET("/users/:userId", h.Admin.GetUser)
		admin.PUT("/users/:userId/role", h.Admin.UpdateUserRole)
		admin.DELETE("/users/:userId", h.Admin.DeleteUser)

		// Approval workflow: list with ?approved=false, then flip the flag
		admin.GET("/restaurants", h.Admin.GetAllRestaurants)
		admin.GET("/restaurants/:restaurantId", h.Admin.GetRestaurant)
		admin.PUT("/restaurants/:restaurantId/approval", h.Admin.UpdateRestaurantApproval)

		admin.GET("/orders", h.Admin.GetAllOrders)
		admin.GET("/orders/:orderId", h.Admin.GetOrder)
		admin.PUT("/orders/:orderId/status", h.Admin.UpdateOrderStatus)

		admin.GET("/analytics/dashboard", h.Admin.GetDashboard)
		admin.GET("/analytics/recent-activity", h.Admin.GetRecentActivity)
		admin.GET("/analytics/revenue", h.Admin.GetRevenue)
		admin.GET("/analytics/orders", h.Admin.GetOrderStats)
		admin.GET("/analytics/orders-by-date", h.Admin.GetOrdersByDate)
		admin.GET("/analytics/top-restaurants", h.Admin.GetTopRestaurants)

		admin.GET("/system/health", h.Admin.GetSystemHealth)
	}
}
