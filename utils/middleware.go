package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyMiddleware guards a route with the shared secret passed as the
// api-key query parameter. The check runs before any lookup so a bad key
// reveals nothing about which ids exist.
func APIKeyMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("api-key") != secret {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{
					"Forbidden": "Sorry, that's not allowed. Make sure you have the correct api_key.",
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
