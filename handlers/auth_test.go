package handlers_test

import (
	"net/http"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestRegisterThenLogin(t *testing.T) {
	r, _ := newTestServer(t)

	w := do(t, r, "POST", "/api/auth/register", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": testPassword,
		"name":     "Alice",
		"role":     "restaurant",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: got status %d, body %s", w.Code, w.Body.String())
	}

	w = do(t, r, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "alice@example.com",
		"password": testPassword,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: got status %d, body %s", w.Code, w.Body.String())
	}

	// The token must encode the registered role
	token := jsonField(t, w, "token").(string)
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims["role"] != "restaurant" {
		t.Errorf("token role = %v, want restaurant", claims["role"])
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r, _ := newTestServer(t)

	registerAndLogin(t, r, "bob@example.com", "customer")
	w := do(t, r, "POST", "/api/auth/register", "", map[string]interface{}{
		"email":    "bob@example.com",
		"password": testPassword,
		"name":     "Bob Again",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate register: got status %d, want 400", w.Code)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	r, _ := newTestServer(t)

	w := do(t, r, "POST", "/api/auth/register", "", map[string]interface{}{
		"email":    "eve@example.com",
		"password": testPassword,
		"name":     "Eve",
		"role":     "admin",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("admin self-registration: got status %d, want 400", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := newTestServer(t)

	registerAndLogin(t, r, "carol@example.com", "customer")
	w := do(t, r, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "carol@example.com",
		"password": "not-the-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad password login: got status %d, want 401", w.Code)
	}
}

func TestProfileUpdateAndPasswordChange(t *testing.T) {
	r, _ := newTestServer(t)
	token := registerAndLogin(t, r, "dave@example.com", "customer")

	w := do(t, r, "PUT", "/api/auth/profile", token, map[string]interface{}{
		"name":  "Dave Updated",
		"phone": "555-0101",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update profile: got status %d, body %s", w.Code, w.Body.String())
	}

	w = do(t, r, "GET", "/api/auth/profile", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get profile: got status %d", w.Code)
	}
	var resp struct {
		User struct {
			Name  string `json:"name"`
			Phone string `json:"phone"`
		} `json:"user"`
	}
	decode(t, w, &resp)
	if resp.User.Name != "Dave Updated" || resp.User.Phone != "555-0101" {
		t.Errorf("profile = %+v after update", resp.User)
	}

	w = do(t, r, "PUT", "/api/auth/change-password", token, map[string]interface{}{
		"current_password": "wrong",
		"new_password":     "newpassword",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("wrong current password: got status %d, want 400", w.Code)
	}

	w = do(t, r, "PUT", "/api/auth/change-password", token, map[string]interface{}{
		"current_password": testPassword,
		"new_password":     "newpassword",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("change password: got status %d, body %s", w.Code, w.Body.String())
	}

	w = do(t, r, "POST", "/api/auth/login", "", map[string]interface{}{
		"email":    "dave@example.com",
		"password": "newpassword",
	})
	if w.Code != http.StatusOK {
		t.Errorf("login with new password: got status %d", w.Code)
	}
}

func TestAuthStatusCodes(t *testing.T) {
	r, _ := newTestServer(t)

	// Missing credential is 401
	w := do(t, r, "GET", "/api/cart", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token: got status %d, want 401", w.Code)
	}

	// Present but invalid credential is 403
	w = do(t, r, "GET", "/api/cart", "not-a-real-token", nil)
	if w.Code != http.StatusForbidden {
		t.Errorf("garbage token: got status %d, want 403", w.Code)
	}
}

func TestRoleGating(t *testing.T) {
	r, _ := newTestServer(t)
	customer := registerAndLogin(t, r, "cust@example.com", "customer")
	owner := registerAndLogin(t, r, "owner@example.com", "restaurant")

	// Customer hitting restaurant-owner and admin surfaces
	for _, path := range []string{"/api/restaurant", "/api/admin/users"} {
		w := do(t, r, "GET", path, customer, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("customer GET %s: got status %d, want 403", path, w.Code)
		}
	}

	// Restaurant owner hitting customer and admin surfaces
	for _, path := range []string{"/api/orders", "/api/admin/users"} {
		w := do(t, r, "GET", path, owner, nil)
		if w.Code != http.StatusForbidden {
			t.Errorf("owner GET %s: got status %d, want 403", path, w.Code)
		}
	}
}
