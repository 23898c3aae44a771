package endpoints

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/minaret-labs/minaret/internal/db"
	"github.com/minaret-labs/minaret/internal/http/api"
	"github.com/minaret-labs/minaret/internal/http/middleware"
)

const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "12345"
)

// SetupModule mounts POST /setup, gated by a static bearer token. It
// idempotently creates the single admin account and seeds the
// directory with sample entries.
func SetupModule(store db.Store, setupToken string) api.Module {
	ctl := &SetupController{store: store, setupToken: setupToken}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/setup", ctl.runSetup)
	})
}

type SetupController struct {
	store      db.Store
	setupToken string
}

// POST /setup
func (s *SetupController) runSetup(ctx *gin.Context) (any, *api.APIError) {
	if ctx.GetHeader("Authorization") != "Bearer "+s.setupToken {
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "Unauthorized"}
	}

	existing, err := s.store.GetAdminByUsername(defaultAdminUsername)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Msg("failed to check for existing admin")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "Setup failed"}
	}
	if existing != nil {
		return gin.H{
			"message":     "Admin user already exists",
			"initialized": true,
		}, nil
	}

	hashed, err := middleware.HashPassword(defaultAdminPassword)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "Setup failed"}
	}

	if _, err := s.store.CreateAdmin(defaultAdminUsername, hashed); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "Setup failed"}
	}

	if err := s.store.SeedMosques(); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "Setup failed"}
	}

	log.Info().Msg("setup completed, admin account created")

	return gin.H{
		"message":     "Setup completed successfully",
		"admin":       gin.H{"username": defaultAdminUsername, "password": defaultAdminPassword},
		"initialized": true,
	}, nil
}
