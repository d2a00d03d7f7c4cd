package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORS sets the fixed cross-origin headers on every response and
// short-circuits preflight requests with 200 and an empty body.
// allowedOrigin is the single origin the dashboard is served from.
func CORS(allowedOrigin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", allowedOrigin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
