package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"food-ordering-api/config"
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/routes"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	testPassword  = "password123"
	adminEmail    = "admin@fooddelivery.com"
	adminPassword = "admin123"
)

// newTestServer builds the full router against an in-memory sqlite store.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	// A pooled second connection would see its own empty :memory: database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	auth := middleware.NewAuth(db, []byte("test-secret"), time.Hour)

	r := gin.New()
	r.Use(middleware.RequestID())
	routes.SetupRoutes(r, auth, routes.Handlers{
		Auth:       handlers.NewAuthHandler(db, auth),
		Public:     handlers.NewPublicHandler(db),
		Cart:       handlers.NewCartHandler(db),
		Customer:   handlers.NewCustomerHandler(db, logger),
		Restaurant: handlers.NewRestaurantHandler(db),
		Admin:      handlers.NewAdminHandler(db),
	})
	return r, db
}

// do sends a JSON request through the router and records the response.
func do(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decode unmarshals the recorded response body.
func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

// jsonField pulls one top-level field out of the response body.
func jsonField(t *testing.T, w *httptest.ResponseRecorder, key string) interface{} {
	t.Helper()
	var body map[string]interface{}
	decode(t, w, &body)
	val, ok := body[key]
	if !ok {
		t.Fatalf("response %q has no field %q", w.Body.String(), key)
	}
	return val
}

// registerAndLogin creates an account and returns its token.
func registerAndLogin(t *testing.T, r http.Handler, email, role string) string {
	t.Helper()
	w := do(t, r, "POST", "/api/auth/register", "", map[string]interface{}{
		"email":    email,
		"password": testPassword,
		"name":     "Test User",
		"role":     role,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: got status %d, body %s", email, w.Code, w.Body.String())
	}
	return jsonField(t, w, "token").(string)
}

// loginAdmin signs in as the seeded admin account.
func loginAdmin(t *testing.T, r http.Handler) string {
	t.Helper()
	w := do(t, r, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    adminEmail,
		"password": adminPassword,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("admin login: got status %d, body %s", w.Code, w.Body.String())
	}
	return jsonField(t, w, "token").(string)
}

// createRestaurant creates a restaurant for the owner and returns its id.
func createRestaurant(t *testing.T, r http.Handler, ownerToken, name string) uint {
	t.Helper()
	w := do(t, r, "POST", "/api/restaurant", ownerToken, map[string]interface{}{
		"name":    name,
		"address": "1 Main St",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create restaurant: got status %d, body %s", w.Code, w.Body.String())
	}
	return uint(jsonField(t, w, "restaurant_id").(float64))
}

// approveRestaurant flips the approval flag as admin.
func approveRestaurant(t *testing.T, r http.Handler, adminToken string, id uint) {
	t.Helper()
	w := do(t, r, "PUT", restaurantPath(id)+"/approval", adminToken, map[string]interface{}{
		"is_approved": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("approve restaurant %d: got status %d, body %s", id, w.Code, w.Body.String())
	}
}

func restaurantPath(id uint) string {
	return "/api/admin/restaurants/" + itoa(id)
}

// addMenuItem adds an item to the owner's restaurant and returns its id.
func addMenuItem(t *testing.T, r http.Handler, ownerToken string, restaurantID uint, name string, price float64) uint {
	t.Helper()
	w := do(t, r, "POST", "/api/restaurant/"+itoa(restaurantID)+"/menu", ownerToken, map[string]interface{}{
		"name":  name,
		"price": price,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add menu item: got status %d, body %s", w.Code, w.Body.String())
	}
	return uint(jsonField(t, w, "menu_item_id").(float64))
}

// addToCart puts quantity of a menu item in the caller's cart.
func addToCart(t *testing.T, r http.Handler, token string, restaurantID, menuItemID uint, quantity int) {
	t.Helper()
	w := do(t, r, "POST", "/api/cart", token, map[string]interface{}{
		"restaurant_id": restaurantID,
		"menu_item_id":  menuItemID,
		"quantity":      quantity,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("add to cart: got status %d, body %s", w.Code, w.Body.String())
	}
}

func itoa(n uint) string {
	return strconv.FormatUint(uint64(n), 10)
}
