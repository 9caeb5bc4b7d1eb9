package middleware

import (
	"github.com/gin-gonic/gin"
)

const anonymousUser = "anonymous"

// NoAuth is a pass-through middleware for AUTH_MODE=none.
// It allows all requests without authentication.
func NoAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Dummy user ID for logging and history rows
		c.Set("user_id_str", anonymousUser)
		c.Next()
	}
}
