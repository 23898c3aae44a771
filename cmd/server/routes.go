package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/minaret-labs/minaret/internal/config"
	"github.com/minaret-labs/minaret/internal/db"
	"github.com/minaret-labs/minaret/internal/http/api"
	authapi "github.com/minaret-labs/minaret/internal/http/api/auth/endpoints"
	directoryapi "github.com/minaret-labs/minaret/internal/http/api/directory/endpoints"
	systemapi "github.com/minaret-labs/minaret/internal/http/api/system/endpoints"
	"github.com/minaret-labs/minaret/internal/session"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, store db.Store, sessions session.Store) {
	// CORS; credentials must be allowed for the session cookie
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"PUT",
			"DELETE",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			"Accept",
		},
		AllowCredentials: true,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "",
		Auth:   false,
	},
		authapi.AuthModule(store, sessions, cfg.Production()),
		directoryapi.DirectoryPublicModule(store),
		systemapi.HealthModule(store),
		systemapi.SetupModule(store, cfg.SetupToken),
	)

	// every mutation on the directory requires a valid admin session
	api.MountGroup(r, api.GroupConfig{
		Prefix:   "",
		Auth:     true,
		Sessions: sessions,
	},
		directoryapi.DirectoryAdminModule(store),
		authapi.AuthSessionModule(),
	)
}
