package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pilotapp/crm-console/pkg/apperror"
)

const (
	// SessionHeader carries the operator's session ID on every console request
	SessionHeader = "X-Session-ID"
	// SessionContextKey is where the session ID is stored in the gin context
	SessionContextKey = "session_id"
)

// SessionMiddleware requires the session header on every request in the group
// and makes the ID available to handlers
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": apperror.ErrSessionMissing.Message,
			})
			return
		}
		c.Set(SessionContextKey, sessionID)
		c.Next()
	}
}

// GetSessionID extracts the session ID from the gin context
func GetSessionID(c *gin.Context) string {
	if v, ok := c.Get(SessionContextKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
