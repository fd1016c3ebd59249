// internal/adapters/httpapi/middleware.go
package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/egokay/storefront.git/internal/application"
)

const sessionContextKey = "session_state"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// requireSession resolves the bearer token to its session state and aborts
// with 401 when it cannot.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		state, err := s.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "UNAUTHORIZED",
				Message: "Valid bearer token required",
			})
			return
		}
		c.Set(sessionContextKey, state)
		c.Next()
	}
}

func sessionState(c *gin.Context) *application.SessionState {
	return c.MustGet(sessionContextKey).(*application.SessionState)
}
