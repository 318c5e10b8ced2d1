package handlers_test

import (
	"net/http"
	"testing"

	"food-ordering-api/models"
)

func TestApprovalGatesPublicListing(t *testing.T) {
	r, _ := newTestServer(t)
	admin := loginAdmin(t, r)
	owner := registerAndLogin(t, r, "owner@example.com", "restaurant")

	restID := createRestaurant(t, r, owner, "Pizza Palace")

	listNames := func() []string {
		w := do(t, r, "GET", "/api/restaurants", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("list restaurants: got status %d", w.Code)
		}
		var resp struct {
			Restaurants []struct {
				Name string `json:"name"`
			} `json:"restaurants"`
		}
		decode(t, w, &resp)
		names := make([]string, 0, len(resp.Restaurants))
		for _, rest := range resp.Restaurants {
			names = append(names, rest.Name)
		}
		return names
	}

	if names := listNames(); len(names) != 0 {
		t.Errorf("unapproved restaurant visible in public listing: %v", names)
	}

	// Unapproved restaurants are also hidden from direct lookup
	w := do(t, r, "GET", "/api/restaurants/"+itoa(restID), "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unapproved restaurant detail: got status %d, want 404", w.Code)
	}

	approveRestaurant(t, r, admin, restID)

	names := listNames()
	if len(names) != 1 || names[0] != "Pizza Palace" {
		t.Errorf("public listing after approval = %v", names)
	}
}

func TestPublicMenuHidesUnavailableItems(t *testing.T) {
	r, db := newTestServer(t)
	admin := loginAdmin(t, r)
	owner := registerAndLogin(t, r, "owner@example.com", "restaurant")

	restID := createRestaurant(t, r, owner, "Pizza Palace")
	approveRestaurant(t, r, admin, restID)
	addMenuItem(t, r, owner, restID, "Margherita", 9.50)
	hidden := addMenuItem(t, r, owner, restID, "Seasonal Special", 12.00)
	if err := db.Exec("UPDATE menu_items SET is_available = 0 WHERE id = ?", hidden).Error; err != nil {
		t.Fatalf("mark unavailable: %v", err)
	}

	w := do(t, r, "GET", "/api/restaurants/"+itoa(restID)+"/menu", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("public menu: got status %d", w.Code)
	}
	var resp struct {
		MenuItems []struct {
			Name string `json:"name"`
		} `json:"menu_items"`
	}
	decode(t, w, &resp)
	if len(resp.MenuItems) != 1 || resp.MenuItems[0].Name != "Margherita" {
		t.Errorf("public menu = %+v, want only Margherita", resp.MenuItems)
	}

	// The owner's own menu view keeps unavailable items
	w = do(t, r, "GET", "/api/restaurant/"+itoa(restID)+"/menu", owner, nil)
	decode(t, w, &resp)
	if len(resp.MenuItems) != 2 {
		t.Errorf("owner menu rows = %d, want 2", len(resp.MenuItems))
	}
}

func TestMenuItemOwnershipScoping(t *testing.T) {
	r, _ := newTestServer(t)
	admin := loginAdmin(t, r)
	owner := registerAndLogin(t, r, "owner@example.com", "restaurant")
	rival := registerAndLogin(t, r, "rival@example.com", "restaurant")

	restID := createRestaurant(t, r, owner, "Pizza Palace")
	approveRestaurant(t, r, admin, restID)
	itemID := addMenuItem(t, r, owner, restID, "Margherita", 9.50)

	// A non-owner is blocked by the ownership gate
	w := do(t, r, "DELETE", "/api/restaurant/"+itoa(restID)+"/menu/"+itoa(itemID), rival, nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("rival delete: got status %d, want 403", w.Code)
	}

	// The owner deleting through the wrong restaurant id gets 404, not 200
	otherID := createRestaurant(t, r, owner, "Burger Barn")
	w = do(t, r, "DELETE", "/api/restaurant/"+itoa(otherID)+"/menu/"+itoa(itemID), owner, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("wrong restaurant delete: got status %d, want 404", w.Code)
	}

	w = do(t, r, "DELETE", "/api/restaurant/"+itoa(restID)+"/menu/"+itoa(itemID), owner, nil)
	if w.Code != http.StatusOK {
		t.Errorf("owner delete: got status %d", w.Code)
	}
}

func TestMenuItemUpdateValidation(t *testing.T) {
	r, db := newTestServer(t)
	admin := loginAdmin(t, r)
	owner := registerAndLogin(t, r, "owner@example.com", "restaurant")

	restID := createRestaurant(t, r, owner, "Pizza Palace")
	approveRestaurant(t, r, admin, restID)
	itemID := addMenuItem(t, r, owner, restID, "Margherita", 9.50)
	itemPath := "/api/restaurant/" + itoa(restID) + "/menu/" + itoa(itemID)

	// Price must stay positive; a stored negative price would flow into cart
	// totals and order snapshots
	for _, price := range []float64{-5.0, 0} {
		w := do(t, r, "PUT", itemPath, owner, map[string]interface{}{"price": price})
		if w.Code != http.StatusBadRequest {
			t.Errorf("price %v: got status %d, want 400", price, w.Code)
		}
	}
	var item models.MenuItem
	db.First(&item, itemID)
	if item.Price != 9.50 {
		t.Errorf("price after rejected updates = %v, want 9.50", item.Price)
	}

	w := do(t, r, "PUT", itemPath, owner, map[string]interface{}{"name": "X"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("one-char name: got status %d, want 400", w.Code)
	}

	w = do(t, r, "PUT", itemPath, owner, map[string]interface{}{
		"price":        11.00,
		"is_available": false,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("valid update: got status %d, body %s", w.Code, w.Body.String())
	}
	db.First(&item, itemID)
	if item.Price != 11.00 || item.IsAvailable {
		t.Errorf("item after update = price %v, available %v", item.Price, item.IsAvailable)
	}
}

func TestRestaurantUpdateValidation(t *testing.T) {
	r, _ := newTestServer(t)
	owner := registerAndLogin(t, r, "owner@example.com", "restaurant")
	restID := createRestaurant(t, r, owner, "Pizza Palace")
	restPath := "/api/restaurant/" + itoa(restID)

	w := do(t, r, "PUT", restPath, owner, map[string]interface{}{"name": "P"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("one-char name: got status %d, want 400", w.Code)
	}
	w = do(t, r, "PUT", restPath, owner, map[string]interface{}{"address": ""})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty address: got status %d, want 400", w.Code)
	}
	w = do(t, r, "PUT", restPath, owner, map[string]interface{}{"is_approved": true})
	if w.Code != http.StatusBadRequest {
		t.Errorf("approval-only update: got status %d, want 400", w.Code)
	}
	w = do(t, r, "PUT", restPath, owner, map[string]interface{}{"name": "Pizza Planet"})
	if w.Code != http.StatusOK {
		t.Errorf("valid update: got status %d, body %s", w.Code, w.Body.String())
	}
}

func TestRestaurantOrderStatusUpdate(t *testing.T) {
	r, _ := newTestServer(t)
	admin := loginAdmin(t, r)
	owner := registerAndLogin(t, r, "owner@example.com", "restaurant")
	rival := registerAndLogin(t, r, "rival@example.com", "restaurant")
	customer := registerAndLogin(t, r, "cust@example.com", "customer")

	restID := createRestaurant(t, r, owner, "Pizza Palace")
	approveRestaurant(t, r, admin, restID)
	pizza := addMenuItem(t, r, owner, restID, "Margherita", 9.50)
	addToCart(t, r, customer, restID, pizza, 1)
	w := do(t, r, "POST", "/api/orders", customer, map[string]interface{}{
		"delivery_address": "42 Elm St",
	})
	orderID := uint(jsonField(t, w, "order_id").(float64))
	statusPath := "/api/restaurant/" + itoa(restID) + "/orders/" + itoa(orderID) + "/status"

	// pending is not a settable target for owners
	w = do(t, r, "PUT", statusPath, owner, map[string]interface{}{"status": "pending"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("set pending: got status %d, want 400", w.Code)
	}
	w = do(t, r, "PUT", statusPath, owner, map[string]interface{}{"status": "burnt"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown status: got status %d, want 400", w.Code)
	}

	// A rival owner cannot reach the order through their own restaurant
	rivalRest := createRestaurant(t, r, rival, "Burger Barn")
	w = do(t, r, "PUT", "/api/restaurant/"+itoa(rivalRest)+"/orders/"+itoa(orderID)+"/status",
		rival, map[string]interface{}{"status": "accepted"})
	if w.Code != http.StatusNotFound {
		t.Errorf("rival status update: got status %d, want 404", w.Code)
	}

	for _, status := range []models.OrderStatus{
		models.StatusAccepted, models.StatusPreparing, models.StatusReady, models.StatusDelivered,
	} {
		w = do(t, r, "PUT", statusPath, owner, map[string]interface{}{"status": status})
		if w.Code != http.StatusOK {
			t.Fatalf("set %s: got status %d, body %s", status, w.Code, w.Body.String())
		}
	}

	w = do(t, r, "GET", "/api/orders/"+itoa(orderID)+"/track", "", nil)
	if got := jsonField(t, w, "status").(string); got != "delivered" {
		t.Errorf("final status = %s, want delivered", got)
	}
	if !jsonField(t, w, "is_final").(bool) {
		t.Error("delivered order not tracked as final")
	}
}

func TestRestaurantOrderListSummary(t *testing.T) {
	r, _ := newTestServer(t)
	admin := loginAdmin(t, r)
	owner := registerAndLogin(t, r, "owner@example.com", "restaurant")
	customer := registerAndLogin(t, r, "cust@example.com", "customer")

	restID := createRestaurant(t, r, owner, "Pizza Palace")
	approveRestaurant(t, r, admin, restID)
	pizza := addMenuItem(t, r, owner, restID, "Margherita", 9.50)

	for i := 0; i < 2; i++ {
		addToCart(t, r, customer, restID, pizza, 1)
		w := do(t, r, "POST", "/api/orders", customer, map[string]interface{}{
			"delivery_address": "42 Elm St",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("place order: got status %d", w.Code)
		}
	}

	w := do(t, r, "GET", "/api/restaurant/"+itoa(restID)+"/orders", owner, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list orders: got status %d", w.Code)
	}
	var resp struct {
		Count        int            `json:"count"`
		OrderSummary map[string]int `json:"order_summary"`
	}
	decode(t, w, &resp)
	if resp.Count != 2 {
		t.Errorf("order count = %d, want 2", resp.Count)
	}
	if resp.OrderSummary["pending"] != 2 {
		t.Errorf("pending summary = %d, want 2", resp.OrderSummary["pending"])
	}
}
