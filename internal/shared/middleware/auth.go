package middleware

import (
	"strings"

	"lumina-storefront/internal/shared/response"
	"lumina-storefront/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ContextKeyAdminID       = "admin_id"
	ContextKeyAuthenticated = "is_authenticated"
)

// TokenValidator is satisfied by *jwt.Manager
type TokenValidator interface {
	ValidateAdminToken(token string) (*jwt.Claims, error)
}

// AdminAuth rejects requests without a valid admin bearer token
func AdminAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Unauthorized(c, "missing or malformed authorization header")
			c.Abort()
			return
		}

		claims, err := validator.ValidateAdminToken(token)
		if err != nil {
			response.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(ContextKeyAdminID, claims.UserID)
		c.Set(ContextKeyAuthenticated, true)
		c.Next()
	}
}

// OptionalAdminAuth marks the request authenticated when a valid admin token
// is present, otherwise continues anonymously.
func OptionalAdminAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyAuthenticated, false)

		if token, ok := bearerToken(c); ok {
			if claims, err := validator.ValidateAdminToken(token); err == nil {
				c.Set(ContextKeyAdminID, claims.UserID)
				c.Set(ContextKeyAuthenticated, true)
			}
		}
		c.Next()
	}
}

// IsAuthenticated reports whether an admin token was accepted for this request
func IsAuthenticated(c *gin.Context) bool {
	return c.GetBool(ContextKeyAuthenticated)
}

func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
