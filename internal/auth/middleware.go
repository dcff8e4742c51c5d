package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/facuvd/horarios-backend-go/internal/models"
	"github.com/facuvd/horarios-backend-go/pkg/response"
)

const claimsKey = "auth.claims"

// Required returns middleware that rejects requests without a valid
// bearer token and stores the claims in the request context.
func Required(tm *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Missing bearer token", nil)
			c.Abort()
			return
		}

		claims, err := tm.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", err)
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// AdminOnly returns middleware that rejects authenticated requests
// whose token does not carry the admin role. Must run after Required.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil || claims.Role != models.RoleAdmin {
			response.Error(c, http.StatusForbidden, "Administrator role required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by Required, or nil.
func ClaimsFrom(c *gin.Context) *Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}
