package middleware

import (
	"net/http"
	"strings"

	"travel-backend/utils"

	"github.com/gin-gonic/gin"
)

// RequireAuth gates admin routes behind a bearer token. Absent, malformed
// and expired tokens all produce the identical response so the failure
// mode is not distinguishable from outside.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(c)
			return
		}

		claims, err := utils.ValidateToken(strings.TrimSpace(parts[1]), secret)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set("username", claims.Subject)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   "Invalid authentication credentials",
	})
}
