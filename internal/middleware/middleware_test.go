package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-dev/portfolio-api/internal/constants"
	apierrors "github.com/folio-dev/portfolio-api/internal/errors"
	"github.com/folio-dev/portfolio-api/internal/models"
	"github.com/folio-dev/portfolio-api/internal/repository"
	"github.com/folio-dev/portfolio-api/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(constants.HeaderRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constants.HeaderRequestID, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(constants.HeaderRequestID))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Logger(), Recovery())
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, apierrors.ErrCodeInternalError, body.Code)
}

func TestLoadProject(t *testing.T) {
	store := repository.NewMemoryStore()
	require.NoError(t, store.Projects.Create(&models.Project{Name: "alpha", SourceURL: "#"}))
	portfolio := services.NewPortfolioService(store)

	r := gin.New()
	r.GET("/projects/:id", LoadProject(portfolio), func(c *gin.Context) {
		project, ok := GetProject(c)
		require.True(t, ok)
		c.String(http.StatusOK, project.Name)
	})

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/projects/1", http.StatusOK, "alpha"},
		{"/projects/2", http.StatusNotFound, ""},
		{"/projects/abc", http.StatusBadRequest, ""},
		{"/projects/-1", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.wantStatus, w.Code, tt.path)
		if tt.wantBody != "" {
			assert.Equal(t, tt.wantBody, w.Body.String())
		}
	}
}
