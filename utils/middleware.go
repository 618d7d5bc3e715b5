package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware authenticates the request from the session cookie, with
// an Authorization: Bearer fallback for non-browser clients. On success the
// user id and admin flag are stored on the context.
func SessionMiddleware(secretKey, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c, cookieName)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
			c.Abort()
			return
		}

		claims, err := ValidateSessionToken(secretKey, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid or expired session"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("is_admin", claims.IsAdmin)
		c.Next()
	}
}

// AdminRequired must run after SessionMiddleware.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("is_admin")
		if !exists || !isAdmin.(bool) {
			c.JSON(http.StatusForbidden, gin.H{"detail": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
