package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appdb "mpv_backend/internal/db"
	"mpv_backend/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// newTestEnv spins up an in-memory database, a miniredis instance and a fully wired router
func newTestEnv(t *testing.T) (*gin.Engine, *gorm.DB, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// A pooled :memory: connection would open a fresh empty database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, appdb.AutoMigrate(gdb))
	require.NoError(t, appdb.Seed(gdb))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewRouter(gdb, rdb, testSecret, t.TempDir()), gdb, mr
}

// doJSON performs a JSON request against the router, optionally with a bearer token
func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// signup registers a user through the API and returns the decoded response
func signup(t *testing.T, r *gin.Engine, body string) AuthResponse {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/api/signup", "", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}

// createArtist inserts a user and an artist profile directly into the store
func createArtist(t *testing.T, gdb *gorm.DB, name string) domain.Artist {
	t.Helper()
	user := domain.User{Name: name, Email: strings.ToLower(name) + "@artists.test", Password: "x", Role: "artist"}
	require.NoError(t, gdb.Create(&user).Error)
	artist := domain.Artist{UserID: user.ID, Bio: "session musician", Skills: "guitar,bass", Rating: 4.5}
	require.NoError(t, gdb.Create(&artist).Error)
	return artist
}
