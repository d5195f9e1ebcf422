package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gorm.io/datatypes"

	"github.com/folio-dev/portfolio-api/internal/constants"
	"github.com/folio-dev/portfolio-api/internal/logging"
	"github.com/folio-dev/portfolio-api/internal/models"
	"github.com/folio-dev/portfolio-api/internal/repository"
	"github.com/folio-dev/portfolio-api/internal/utils"
)

var (
	ErrUsernameRequired    = errors.New("GitHub username is required")
	ErrNoRepositoriesFound = errors.New("no repositories found or GitHub API error")
)

// RepositorySource lists repositories and their READMEs. Failures are absorbed
// by the source: an empty list or a nil README.
type RepositorySource interface {
	ListUserRepositories(ctx context.Context, username string) []Repository
	Readme(ctx context.Context, username, repoName string) *string
}

// Illustrator produces project artwork and analysis. Image calls are skipped
// when Configured reports false.
type Illustrator interface {
	Configured() bool
	GenerateImage(ctx context.Context, prompt string) (string, error)
	AnalyzeProject(ctx context.Context, name, description, readme string) ProjectAnalysis
	GenerateProjectImages(ctx context.Context, projects []ImageRequest) []ImageResult
}

// ImageMirror copies a remote image somewhere durable and returns the new URL.
type ImageMirror interface {
	Mirror(ctx context.Context, name, sourceURL string) (string, error)
}

type SyncOptions struct {
	GenerateImages bool
	AIAnalysis     bool
}

// SyncResult reports the projects created by one sync.
type SyncResult struct {
	Synced   int
	Failed   int
	Projects []models.Project
}

// IllustrateResult reports the projects that received an image.
type IllustrateResult struct {
	Attempted int
	Updated   []models.Project
}

// SyncService imports a user's repositories as projects.
type SyncService struct {
	source      RepositorySource
	illustrator Illustrator
	mirror      ImageMirror
	projects    repository.ProjectRepository
	opts        SyncOptions
}

// NewSyncService wires the sync. illustrator and mirror may be nil.
func NewSyncService(source RepositorySource, illustrator Illustrator, mirror ImageMirror, projects repository.ProjectRepository, opts SyncOptions) *SyncService {
	return &SyncService{
		source:      source,
		illustrator: illustrator,
		mirror:      mirror,
		projects:    projects,
		opts:        opts,
	}
}

// Sync fetches every repository of username and stores one project per
// repository, in listing order. A repository that fails is logged and skipped.
// Repeated syncs create new projects each time.
func (s *SyncService) Sync(ctx context.Context, username string) (*SyncResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}

	return s.SyncRepositories(ctx, username, s.source.ListUserRepositories(ctx, username))
}

// SyncRepositories stores one project per repository of an already fetched
// listing. An empty listing is ErrNoRepositoriesFound.
func (s *SyncService) SyncRepositories(ctx context.Context, username string, repos []Repository) (*SyncResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(repos) == 0 {
		return nil, ErrNoRepositoriesFound
	}

	result := &SyncResult{Projects: make([]models.Project, 0, len(repos))}
	for _, repo := range repos {
		project, err := s.syncRepository(ctx, username, repo)
		if err != nil {
			logging.Report(err, "error processing repository", map[string]string{
				"username":   username,
				"repository": repo.Name,
			})
			result.Failed++
			continue
		}
		result.Projects = append(result.Projects, *project)
	}
	result.Synced = len(result.Projects)

	slog.Info("GitHub sync finished", "username", username, "synced", result.Synced, "failed", result.Failed)
	return result, nil
}

func (s *SyncService) syncRepository(ctx context.Context, username string, repo Repository) (*models.Project, error) {
	readme := s.source.Readme(ctx, username, repo.Name)
	readmeText := models.StringOrEmpty(readme)
	description := models.StringOrEmpty(repo.Description)

	category := ClassifyRepository(repo, readmeText)
	imagePrompt := DefaultImagePrompt(category)
	if s.opts.AIAnalysis && s.illustrator != nil {
		analysis := s.illustrator.AnalyzeProject(ctx, repo.Name, description, readmeText)
		category = analysis.Category
		imagePrompt = analysis.ImagePrompt
	}

	project := buildProject(repo, readmeText, category)
	project.ImageURL = s.illustrate(ctx, repo.Name, imagePrompt)

	if err := s.projects.Create(project); err != nil {
		return nil, fmt.Errorf("failed to store project %q: %w", repo.Name, err)
	}
	return project, nil
}

// illustrate returns nil when images are disabled or generation fails.
func (s *SyncService) illustrate(ctx context.Context, name, prompt string) *string {
	if !s.opts.GenerateImages || !s.canIllustrate() {
		return nil
	}

	url, err := s.illustrator.GenerateImage(ctx, prompt)
	if err != nil {
		slog.Warn("failed to generate image for project", "project", name, "error", err)
		return nil
	}
	return s.mirrored(ctx, name, url)
}

func (s *SyncService) canIllustrate() bool {
	return s.illustrator != nil && s.illustrator.Configured()
}

func (s *SyncService) mirrored(ctx context.Context, name, url string) *string {
	if s.mirror == nil {
		return &url
	}
	stored, err := s.mirror.Mirror(ctx, name, url)
	if err != nil {
		slog.Warn("failed to mirror project image, keeping provider URL", "project", name, "error", err)
		return &url
	}
	return &stored
}

func buildProject(repo Repository, readme, category string) *models.Project {
	description := models.StringOrEmpty(repo.Description)
	longDescription := description
	if readme != "" {
		longDescription = utils.Truncate(readme, constants.LongDescriptionMaxChars)
	}

	project := &models.Project{
		Name:            repo.Name,
		Description:     models.Ptr(description),
		LongDescription: models.Ptr(longDescription),
		SourceURL:       repo.HTMLURL,
		PrimaryLanguage: repo.Language,
		Topics:          datatypes.JSONSlice[string](append([]string{}, repo.Topics...)),
		StarCount:       repo.StargazersCount,
		ForkCount:       repo.ForksCount,
		LastUpdated:     repo.UpdatedAt,
		Category:        models.Ptr(category),
	}
	if repo.CloneURL != "" {
		project.CloneURL = models.Ptr(repo.CloneURL)
	}
	if repo.Homepage != nil && strings.TrimSpace(*repo.Homepage) != "" {
		project.LiveURL = models.Ptr(strings.TrimSpace(*repo.Homepage))
	}
	return project
}

// IllustrateMissing generates images for stored projects that have none.
func (s *SyncService) IllustrateMissing(ctx context.Context) (*IllustrateResult, error) {
	if !s.canIllustrate() {
		return nil, ErrAIServiceNotConfigured
	}

	projects, err := s.projects.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	var pending []models.Project
	requests := make([]ImageRequest, 0)
	for _, p := range projects {
		if p.ImageURL != nil {
			continue
		}
		pending = append(pending, p)
		requests = append(requests, ImageRequest{
			Name:        p.Name,
			Description: models.StringOrEmpty(p.Description),
			Category:    models.StringOrEmpty(p.Category),
		})
	}

	result := &IllustrateResult{Attempted: len(pending), Updated: []models.Project{}}
	if len(pending) == 0 {
		return result, nil
	}

	images := s.illustrator.GenerateProjectImages(ctx, requests)
	for i, img := range images {
		if i >= len(pending) || img.ImageURL == nil {
			continue
		}
		url := s.mirrored(ctx, pending[i].Name, *img.ImageURL)
		updated, err := s.projects.Update(pending[i].ID, models.ProjectUpdate{ImageURL: url})
		if err != nil {
			logging.Report(err, "error saving project image", map[string]string{"project": pending[i].Name})
			continue
		}
		result.Updated = append(result.Updated, *updated)
	}
	return result, nil
}
