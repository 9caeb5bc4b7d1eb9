package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GatewayAuth trusts user info from gateway headers (X-User-ID, X-User-Email, X-User-Role).
// The upstream gateway validates credentials; the API only records who called.
//
// This should ONLY be used behind a gateway with proper network isolation.
func GatewayAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Authentication required",
				"message": "Missing X-User-ID header from gateway",
			})
			c.Abort()
			return
		}

		c.Set("user_id_str", userID)
		c.Set("user_email", c.GetHeader("X-User-Email"))
		c.Set("user_role", c.GetHeader("X-User-Role"))

		c.Next()
	}
}

// UserID returns the caller set by whichever auth middleware ran
func UserID(c *gin.Context) (string, bool) {
	val, exists := c.Get("user_id_str")
	if !exists {
		return "", false
	}
	id, ok := val.(string)
	return id, ok
}

// UserEmail returns the caller's email when the auth middleware knew it
func UserEmail(c *gin.Context) (string, bool) {
	val, exists := c.Get("user_email")
	if !exists {
		return "", false
	}
	e, ok := val.(string)
	return e, ok && e != ""
}
