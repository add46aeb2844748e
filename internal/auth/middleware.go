package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/qazimatch/qazimatch/internal/models"
)

// Context keys set by Middleware.
const (
	CtxUserID = "userID"
	CtxRole   = "userRole"
)

// Middleware validates the bearer token and puts the caller's identity on
// the gin context.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := ValidateToken(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireRole rejects callers whose role does not match. Rendered as an
// access-denied error rather than a generic failure so the client can show
// its dedicated panel.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != role {
			msg := "This action is only available to employees"
			if role == models.RoleEmployer {
				msg = "This action is only available to employers"
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msg})
			return
		}
		c.Next()
	}
}
