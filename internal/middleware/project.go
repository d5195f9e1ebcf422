package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/folio-dev/portfolio-api/internal/constants"
	apierrors "github.com/folio-dev/portfolio-api/internal/errors"
	"github.com/folio-dev/portfolio-api/internal/logging"
	"github.com/folio-dev/portfolio-api/internal/models"
	"github.com/folio-dev/portfolio-api/internal/services"
)

// LoadProject resolves the :id path parameter to a project and stores it in
// the context for the handler.
func LoadProject(portfolio *services.PortfolioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.InvalidFormat(c, "Invalid project ID")
			return
		}

		project, err := portfolio.GetProject(projectID)
		if err != nil {
			if errors.Is(err, services.ErrProjectNotFound) {
				apierrors.NotFound(c, "Project not found")
				return
			}
			logging.Report(err, "error loading project", map[string]string{"project_id": c.Param("id")})
			apierrors.InternalError(c, "Failed to fetch project")
			return
		}

		c.Set(constants.ContextKeyProject, *project)
		c.Next()
	}
}

// GetProject retrieves the project stored by LoadProject
func GetProject(c *gin.Context) (models.Project, bool) {
	v, exists := c.Get(constants.ContextKeyProject)
	if !exists {
		return models.Project{}, false
	}
	project, ok := v.(models.Project)
	return project, ok
}
