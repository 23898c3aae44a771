package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/minaret-labs/minaret/internal/db"
	"github.com/minaret-labs/minaret/internal/http/api"
)

// HealthModule mounts GET /health, a liveness probe against the store.
// This is the one endpoint allowed to echo the underlying error.
func HealthModule(store db.Store) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/health", func(ctx *gin.Context) (any, *api.APIError) {
			now, err := store.Health()
			if err != nil {
				log.Error().Err(err).Msg("health check failed")
				return nil, &api.APIError{Code: http.StatusInternalServerError, Message: err.Error()}
			}
			return gin.H{
				"status":    "ok",
				"timestamp": now.Format(time.RFC3339),
				"message":   "Database connection successful",
			}, nil
		})
	})
}
