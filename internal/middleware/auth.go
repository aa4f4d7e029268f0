package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fernandarrocha/AV2-faculdade/internal/models"
	"github.com/fernandarrocha/AV2-faculdade/internal/session"
)

// ContextSessionKey stores the restored session in the Gin context.
const ContextSessionKey = "current_session"

// RequireSession restores the session from the cookie and redirects
// unauthenticated requests to the login screen.
func RequireSession(manager *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := manager.Current(c.Request)
		if !current.IsAuthenticated() {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Set(ContextSessionKey, current)
		c.Next()
	}
}

// CurrentSession returns the session restored by RequireSession, or nil.
func CurrentSession(c *gin.Context) *models.Session {
	if v, exists := c.Get(ContextSessionKey); exists {
		if s, ok := v.(*models.Session); ok {
			return s
		}
	}
	return nil
}
