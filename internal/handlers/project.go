package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-dev/portfolio-api/internal/dto"
	apierrors "github.com/folio-dev/portfolio-api/internal/errors"
	"github.com/folio-dev/portfolio-api/internal/logging"
	"github.com/folio-dev/portfolio-api/internal/middleware"
	"github.com/folio-dev/portfolio-api/internal/services"
)

// ProjectHandler serves projects and the GitHub sync.
type ProjectHandler struct {
	portfolio *services.PortfolioService
	sync      *services.SyncService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(portfolio *services.PortfolioService, sync *services.SyncService) *ProjectHandler {
	return &ProjectHandler{
		portfolio: portfolio,
		sync:      sync,
	}
}

// ListProjects returns the projects, optionally filtered by ?category=.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.portfolio.ListProjects(c.Query("category"))
	if err != nil {
		reportError(c, err, "error fetching projects")
		apierrors.InternalError(c, "Failed to fetch projects")
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject returns the project loaded by middleware.LoadProject.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, ok := middleware.GetProject(c)
	if !ok {
		apierrors.InternalError(c, "Failed to fetch project")
		return
	}

	c.JSON(http.StatusOK, project)
}

// SyncGitHub imports the repositories of the requested GitHub user. The sync
// runs to completion even if the client disconnects.
func (h *ProjectHandler) SyncGitHub(c *gin.Context) {
	var req dto.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.sync.Sync(context.WithoutCancel(c.Request.Context()), req.Username)
	if err != nil {
		respondSyncError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSyncResponse(*result))
}

// IllustrateProjects generates images for stored projects that have none.
func (h *ProjectHandler) IllustrateProjects(c *gin.Context) {
	result, err := h.sync.IllustrateMissing(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		respondSyncError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.IllustrateResponse{
		Message:   fmt.Sprintf("Generated images for %d of %d projects", len(result.Updated), result.Attempted),
		Attempted: result.Attempted,
		Projects:  result.Updated,
	})
}

func respondSyncError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameRequired):
		apierrors.MissingField(c, "GitHub username is required")
	case errors.Is(err, services.ErrNoRepositoriesFound):
		apierrors.NotFound(c, "No repositories found or GitHub API error")
	case errors.Is(err, services.ErrAIServiceNotConfigured):
		apierrors.ServiceUnavailable(c, "OpenAI API key not configured")
	default:
		reportError(c, err, "error syncing GitHub repositories")
		apierrors.InternalError(c, "Failed to sync GitHub repositories")
	}
}

func reportError(c *gin.Context, err error, msg string) {
	logging.Report(err, msg, map[string]string{
		"request_id": middleware.GetRequestID(c),
		"path":       c.FullPath(),
	})
}
