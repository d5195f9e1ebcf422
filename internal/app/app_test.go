package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-dev/portfolio-api/internal/config"
)

func testConfig(driver, dsn string) *config.Config {
	return &config.Config{
		GinMode:            gin.TestMode,
		StoreDriver:        driver,
		DatabaseDSN:        dsn,
		GitHubAPIURL:       "http://127.0.0.1:1",
		HTTPTimeout:        time.Second,
		SyncGenerateImages: true,
		CORSAllowedOrigins: []string{"https://portfolio.example"},
	}
}

func TestNew_MemoryStore(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a, err := New(context.Background(), testConfig(config.StoreMemory, ""))
	require.NoError(t, err)
	t.Cleanup(a.Close)

	assert.False(t, a.AI.Configured())

	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/skills", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var skills []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &skills))
	assert.Len(t, skills, 11)
}

func TestNew_SQLiteStoreSeedsOnce(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(config.StoreSQLite, "file:app_test?mode=memory&cache=shared")
	cfg.AdminUsername = "owner"
	cfg.AdminPassword = "password123"

	first, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(first.Close)

	// A second App on the same database must not seed or register again.
	second, err := New(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(second.Close)

	projects, err := second.Store.Projects.List()
	require.NoError(t, err)
	assert.Len(t, projects, 3)

	user, err := second.Accounts.Authenticate("owner", "password123")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), user.ID)
}

func TestHandler_CORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a, err := New(context.Background(), testConfig(config.StoreMemory, ""))
	require.NoError(t, err)
	t.Cleanup(a.Close)

	req := httptest.NewRequest(http.MethodOptions, "/api/contact", nil)
	req.Header.Set("Origin", "https://portfolio.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)

	assert.Equal(t, "https://portfolio.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	a.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestIllustrate_WithoutOpenAIKeyIsUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a, err := New(context.Background(), testConfig(config.StoreMemory, ""))
	require.NoError(t, err)
	t.Cleanup(a.Close)

	start := time.Now()
	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/projects/illustrate", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	projects, err := a.Store.Projects.List()
	require.NoError(t, err)
	for _, p := range projects {
		assert.Nil(t, p.ImageURL, p.Name)
	}
}
