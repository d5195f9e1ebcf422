package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-dev/portfolio-api/internal/dto"
	apierrors "github.com/folio-dev/portfolio-api/internal/errors"
	"github.com/folio-dev/portfolio-api/internal/services"
)

// GitHubHandler exposes GitHub profile lookups.
type GitHubHandler struct {
	github *services.GitHubService
}

// NewGitHubHandler creates a new GitHubHandler.
func NewGitHubHandler(github *services.GitHubService) *GitHubHandler {
	return &GitHubHandler{
		github: github,
	}
}

// GetProfile returns the public profile of :username.
func (h *GitHubHandler) GetProfile(c *gin.Context) {
	profile := h.github.Profile(c.Request.Context(), c.Param("username"))
	if profile == nil {
		apierrors.NotFound(c, "GitHub profile not found")
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileDTO(*profile))
}
