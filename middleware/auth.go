package middleware

import (
	"net/http"
	"strings"
	"time"

	"food-ordering-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Claims struct {
	UserID uint            `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Auth holds the pieces token verification and the second-stage user load
// need. Constructed once in main and shared by all route groups.
type Auth struct {
	db     *gorm.DB
	secret []byte
	ttl    time.Duration
}

func NewAuth(db *gorm.DB, secret []byte, ttl time.Duration) *Auth {
	return &Auth{db: db, secret: secret, ttl: ttl}
}

// GenerateToken creates a signed JWT for a given user
func (a *Auth) GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// AuthRequired validates the bearer token and injects claims into context.
// A missing credential is 401; a present but invalid or expired one is 403.
func (a *Auth) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("userID", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// RoleRequired enforces that caller has one of the allowed roles
func (a *Auth) RoleRequired(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in context"})
			c.Abort()
			return
		}
		callerRole := models.UserRole(roleVal.(string))
		for _, r := range roles {
			if callerRole == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
		c.Abort()
	}
}

// LoadUser fetches the full user record for profile operations. A token that
// points at a deleted user fails with 404.
func (a *Auth) LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		var user models.User
		if err := a.db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			c.Abort()
			return
		}
		c.Set("currentUser", &user)
		c.Next()
	}
}

// RequireRestaurantOwnership checks that the :restaurantId in the path is
// owned by the caller and stashes the restaurant row for the handler.
func (a *Auth) RequireRestaurantOwnership() gin.HandlerFunc {
	return func(c *gin.Context) {
		restaurantID := c.Param("restaurantId")
		var restaurant models.Restaurant
		if err := a.db.Where("id = ? AND owner_id = ?", restaurantID, GetUserID(c)).
			First(&restaurant).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Restaurant not found or access denied"})
			c.Abort()
			return
		}
		c.Set("restaurant", &restaurant)
		c.Next()
	}
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get("userID")
	return val.(uint)
}

// GetCurrentUser extracts the user loaded by LoadUser
func GetCurrentUser(c *gin.Context) *models.User {
	val, _ := c.Get("currentUser")
	return val.(*models.User)
}

// GetRestaurant extracts the restaurant loaded by RequireRestaurantOwnership
func GetRestaurant(c *gin.Context) *models.Restaurant {
	val, _ := c.Get("restaurant")
	return val.(*models.Restaurant)
}
