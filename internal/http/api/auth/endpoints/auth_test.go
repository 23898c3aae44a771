package endpoints_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minaret-labs/minaret/internal/db"
	"github.com/minaret-labs/minaret/internal/http/api"
	"github.com/minaret-labs/minaret/internal/http/api/auth/endpoints"
	"github.com/minaret-labs/minaret/internal/http/middleware"
	"github.com/minaret-labs/minaret/internal/model"
	"github.com/minaret-labs/minaret/internal/session"
)

// unreachableAdminStore simulates a store outage on credential lookup.
type unreachableAdminStore struct {
	*db.TestStore
}

func (s *unreachableAdminStore) GetAdminByUsername(username string) (*model.Admin, error) {
	return nil, errors.New("connection refused")
}

func setupAuthRouter(t *testing.T) (*gin.Engine, *db.TestStore, *session.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := db.NewTestStore()
	hash, err := middleware.HashPassword("12345")
	require.NoError(t, err)
	_, err = store.CreateAdmin("admin", hash)
	require.NoError(t, err)

	sessions := session.NewMemoryStore(session.DefaultTTL)

	r := gin.New()
	api.MountGroup(r, api.GroupConfig{}, endpoints.AuthModule(store, sessions, false))
	api.MountGroup(r, api.GroupConfig{Auth: true, Sessions: sessions}, endpoints.AuthSessionModule())
	return r, store, sessions
}

func postLogin(r *gin.Engine, payload map[string]string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccessSetsSessionCookie(t *testing.T) {
	r, _, sessions := setupAuthRouter(t)

	w := postLogin(r, map[string]string{"username": "admin", "password": "12345"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message   string `json:"message"`
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.NotEmpty(t, resp.SessionID)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "adminSession cookie must be set")
	assert.Equal(t, resp.SessionID, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, int(session.DefaultTTL.Seconds()), cookie.MaxAge)

	ok, err := sessions.Validate(context.Background(), resp.SessionID)
	require.NoError(t, err)
	assert.True(t, ok, "issued token must be registered")
}

func TestLoginWrongPassword(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	w := postLogin(r, map[string]string{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
}

func TestLoginStoreFailureIsNotInvalidCredentials(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := &unreachableAdminStore{db.NewTestStore()}
	sessions := session.NewMemoryStore(session.DefaultTTL)

	r := gin.New()
	api.MountGroup(r, api.GroupConfig{}, endpoints.AuthModule(store, sessions, false))

	w := postLogin(r, map[string]string{"username": "admin", "password": "12345"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Login failed"}`, w.Body.String())
}

func TestLoginUnknownUserLooksLikeWrongPassword(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	withUser := postLogin(r, map[string]string{"username": "admin", "password": "wrong"})
	withoutUser := postLogin(r, map[string]string{"username": "nobody", "password": "wrong"})

	assert.Equal(t, withUser.Code, withoutUser.Code)
	assert.Equal(t, withUser.Body.String(), withoutUser.Body.String())
}

func TestLoginMissingFields(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	for _, payload := range []map[string]string{
		{},
		{"username": "admin"},
		{"password": "12345"},
		{"username": "", "password": ""},
	} {
		w := postLogin(r, payload)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestLogoutClearsCookieAndRevokesSession(t *testing.T) {
	r, _, sessions := setupAuthRouter(t)

	token, err := sessions.Create(context.Background())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge, "cookie must be expired")

	ok, err := sessions.Validate(context.Background(), token)
	require.NoError(t, err)
	assert.False(t, ok, "logout must revoke the registry entry")
}

func TestSessionProbe(t *testing.T) {
	r, _, sessions := setupAuthRouter(t)

	// no cookie
	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := sessions.Create(context.Background())
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Authenticated bool   `json:"authenticated"`
		SessionID     string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Authenticated)
	assert.Equal(t, token, resp.SessionID)

	// a revoked token is indistinguishable from one that never existed
	require.NoError(t, sessions.Delete(context.Background(), token))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutWithoutSessionStillSucceeds(t *testing.T) {
	r, _, _ := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
