package endpoints_test

import (
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
	"github.com/minaret-labs/minaret/internal/http/api/system/endpoints"
	"github.com/minaret-labs/minaret/internal/http/middleware"
	"github.com/minaret-labs/minaret/internal/model"
)

func setupSystemRouter(store db.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{},
		endpoints.HealthModule(store),
		endpoints.SetupModule(store, "sekrit"),
	)
	return r
}

func postSetup(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/setup", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRejectsBadToken(t *testing.T) {
	r := setupSystemRouter(db.NewTestStore())

	for _, header := range []string{"", "Bearer wrong", "sekrit", "Basic sekrit"} {
		w := postSetup(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	}
}

func TestSetupCreatesAdminAndSeedsOnce(t *testing.T) {
	store := db.NewTestStore()
	r := setupSystemRouter(store)

	w := postSetup(r, "Bearer sekrit")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message     string `json:"message"`
		Initialized bool   `json:"initialized"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Setup completed successfully", resp.Message)
	assert.True(t, resp.Initialized)

	admin, err := store.GetAdminByUsername("admin")
	require.NoError(t, err)
	assert.True(t, middleware.CheckPassword(admin.PasswordHash, "12345"),
		"default password must verify against the stored hash")

	seeded, err := store.ListMosques(model.MosqueFilter{Limit: 100})
	require.NoError(t, err)
	assert.Len(t, seeded, 3)

	// second run must not create anything new
	w = postSetup(r, "Bearer sekrit")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Admin user already exists", resp.Message)

	seeded, err = store.ListMosques(model.MosqueFilter{Limit: 100})
	require.NoError(t, err)
	assert.Len(t, seeded, 3)
}

// unreachableAdminStore simulates a store outage on the admin lookup.
type unreachableAdminStore struct {
	*db.TestStore
}

func (s *unreachableAdminStore) GetAdminByUsername(username string) (*model.Admin, error) {
	return nil, errors.New("connection refused")
}

func TestSetupReportsStoreFailure(t *testing.T) {
	r := setupSystemRouter(&unreachableAdminStore{db.NewTestStore()})

	w := postSetup(r, "Bearer sekrit")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Setup failed"}`, w.Body.String())
}

func TestHealthReportsStoreState(t *testing.T) {
	store := db.NewTestStore()
	r := setupSystemRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Status    string `json:"status"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Timestamp)

	// the health check is the one endpoint that echoes the store error
	store.HealthErr = errors.New("connection refused")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"connection refused"}`, w.Body.String())
}
