package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/folio-dev/portfolio-api/internal/errors"
	"github.com/folio-dev/portfolio-api/internal/services"
)

// ResumeHandler serves the static resume collections.
type ResumeHandler struct {
	portfolio *services.PortfolioService
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(portfolio *services.PortfolioService) *ResumeHandler {
	return &ResumeHandler{
		portfolio: portfolio,
	}
}

// ListSkills returns the skills, optionally filtered by ?category=.
func (h *ResumeHandler) ListSkills(c *gin.Context) {
	skills, err := h.portfolio.ListSkills(c.Query("category"))
	respondList(c, skills, err, "skills")
}

// ListExperiences returns the experiences in display order.
func (h *ResumeHandler) ListExperiences(c *gin.Context) {
	experiences, err := h.portfolio.ListExperiences()
	respondList(c, experiences, err, "experiences")
}

func (h *ResumeHandler) ListEducations(c *gin.Context) {
	educations, err := h.portfolio.ListEducations()
	respondList(c, educations, err, "educations")
}

func (h *ResumeHandler) ListCertifications(c *gin.Context) {
	certifications, err := h.portfolio.ListCertifications()
	respondList(c, certifications, err, "certifications")
}

func (h *ResumeHandler) ListHackathons(c *gin.Context) {
	hackathons, err := h.portfolio.ListHackathons()
	respondList(c, hackathons, err, "hackathons")
}

func respondList[T any](c *gin.Context, items []T, err error, what string) {
	if err != nil {
		reportError(c, err, "error fetching "+what)
		apierrors.InternalError(c, "Failed to fetch "+what)
		return
	}
	c.JSON(http.StatusOK, items)
}
