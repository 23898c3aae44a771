package endpoints

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/minaret-labs/minaret/internal/db"
	"github.com/minaret-labs/minaret/internal/http/api"
	"github.com/minaret-labs/minaret/internal/http/api/auth/packets"
	"github.com/minaret-labs/minaret/internal/http/middleware"
	"github.com/minaret-labs/minaret/internal/session"
)

// AuthModule mounts the public auth endpoints (/auth/login, /auth/logout).
// Logout is deliberately unauthenticated: it always succeeds.
func AuthModule(store db.Store, sessions session.Store, secureCookies bool) api.Module {
	ctl := newAccountManager(store, sessions, secureCookies)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/auth/login", ctl.adminLogin)
		c.POST("/auth/logout", ctl.adminLogout)
	})
}

// AuthSessionModule mounts endpoints that require a live admin
// session. Mount it behind the session middleware.
func AuthSessionModule() api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/auth/session", currentSession)
	})
}

// GET /auth/session — lets the admin panel probe whether its cookie is
// still accepted.
func currentSession(ctx *gin.Context) (any, *api.APIError) {
	token, ok := middleware.GetSessionToken(ctx)
	if !ok {
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "unauthorized"}
	}
	return gin.H{"authenticated": true, "sessionId": token}, nil
}

type AccountManager struct {
	store         db.Store
	sessions      session.Store
	secureCookies bool
}

func newAccountManager(store db.Store, sessions session.Store, secureCookies bool) *AccountManager {
	return &AccountManager{store: store, sessions: sessions, secureCookies: secureCookies}
}

// POST /auth/login
func (a *AccountManager) adminLogin(ctx *gin.Context) (any, *api.APIError) {
	var request packets.LoginRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "Missing username or password"}
	}

	admin, err := a.store.GetAdminByUsername(request.Username)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Error().Err(err).Msg("failed to look up admin")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "Login failed"}
	}

	// one failure message for unknown user and wrong password, so the
	// response can't be used to enumerate accounts
	if admin == nil || !middleware.CheckPassword(admin.PasswordHash, request.Password) {
		log.Warn().Str("username", request.Username).Msg("failed admin login")
		return nil, &api.APIError{Code: http.StatusUnauthorized, Message: "Invalid credentials"}
	}

	token, err := a.sessions.Create(ctx.Request.Context())
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create session"}
	}

	a.setSessionCookie(ctx, token, int(session.DefaultTTL.Seconds()))

	return gin.H{"message": "Login successful", "sessionId": token}, nil
}

// POST /auth/logout
func (a *AccountManager) adminLogout(ctx *gin.Context) (any, *api.APIError) {
	// revoke the registry entry too, not just the cookie, so the token
	// cannot be replayed until its TTL runs out
	if token, err := ctx.Cookie(session.CookieName); err == nil && token != "" {
		if err := a.sessions.Delete(ctx.Request.Context(), token); err != nil {
			log.Error().Err(err).Msg("failed to delete session on logout")
		}
	}

	a.setSessionCookie(ctx, "", -1)

	return gin.H{"message": "Logged out successfully"}, nil
}

func (a *AccountManager) setSessionCookie(ctx *gin.Context, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteStrictMode)
	ctx.SetCookie(session.CookieName, token, maxAge, "/", "", a.secureCookies, true)
}
