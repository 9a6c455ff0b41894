package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Jayant71/shopscale/auth"
	"github.com/Jayant71/shopscale/models"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

// RequireAuth validates the bearer token and stores the calling principal
// (user id and role) in the request context for downstream handlers.
func RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Authorization header is missing"})
		return
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": "UNAUTHORIZED", "error": "Invalid or expired token"})
		return
	}

	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxRole, claims.Role)
	c.Next()
}

// RequireRole is the single authorization policy: it compares the principal's
// role, set by RequireAuth, against the role a route demands.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, exists := c.Get(ctxRole)
		if !exists || got.(models.Role) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"code": "FORBIDDEN", "error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id from the request context.
func CurrentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ctxUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
