package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-dev/portfolio-api/internal/dto"
	"github.com/folio-dev/portfolio-api/internal/middleware"
	"github.com/folio-dev/portfolio-api/internal/services"
)

// Dependencies are the services the HTTP API is built on.
type Dependencies struct {
	Portfolio *services.PortfolioService
	Sync      *services.SyncService
	Contact   *services.ContactService
	GitHub    *services.GitHubService
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), middleware.Recovery())

	projectHandler := NewProjectHandler(deps.Portfolio, deps.Sync)
	resumeHandler := NewResumeHandler(deps.Portfolio)
	contactHandler := NewContactHandler(deps.Contact)
	githubHandler := NewGitHubHandler(deps.GitHub)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:  "ok",
			Message: "Portfolio API is running",
		})
	})

	api := r.Group("/api")
	{
		projects := api.Group("/projects")
		{
			projects.GET("", projectHandler.ListProjects)
			projects.POST("/illustrate", projectHandler.IllustrateProjects)
			projects.GET("/:id", middleware.LoadProject(deps.Portfolio), projectHandler.GetProject)
		}
		api.POST("/sync-github", projectHandler.SyncGitHub)

		api.GET("/skills", resumeHandler.ListSkills)
		api.GET("/experiences", resumeHandler.ListExperiences)
		api.GET("/educations", resumeHandler.ListEducations)
		api.GET("/certifications", resumeHandler.ListCertifications)
		api.GET("/hackathons", resumeHandler.ListHackathons)

		api.POST("/contact", contactHandler.Submit)
		api.GET("/github/:username/profile", githubHandler.GetProfile)
	}

	return r
}
