package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/minaret-labs/minaret/internal/session"
)

// checks the adminSession cookie against the session store and sets
// "sessionToken" in context. Absent, expired, and never-issued tokens
// all fail the same way.
func AdminSessionMiddleware(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		ok, err := sessions.Validate(c.Request.Context(), token)
		if err != nil {
			log.Error().Err(err).Msg("session validation failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "could not validate session"})
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set("sessionToken", token)
		c.Next()
	}
}
