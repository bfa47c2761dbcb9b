package middlewares

import (
	"net/http"

	"github.com/NibirNd/Safebite-App/services"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware resolves the active profile from the session key
// header. A missing or unreadable record is not an error condition:
// the client is told to restart onboarding.
func SessionMiddleware(store *services.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Session-Key")
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-Session-Key header required"})
			return
		}

		profile := store.Load(key)
		if profile == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "no active profile for session, onboarding required"})
			return
		}

		c.Set("sessionKey", key)
		c.Set("profile", profile)
		c.Next()
	}
}
