package services

import (
	"errors"
	"fmt"

	"github.com/folio-dev/portfolio-api/internal/models"
	"github.com/folio-dev/portfolio-api/internal/repository"
)

var (
	ErrProjectNotFound = errors.New("project not found")
)

// PortfolioService serves the read-only views of the portfolio.
type PortfolioService struct {
	projects repository.ProjectRepository
	resume   repository.ResumeRepository
}

func NewPortfolioService(store *repository.Store) *PortfolioService {
	return &PortfolioService{
		projects: store.Projects,
		resume:   store.Resume,
	}
}

// ListProjects returns projects in category, or all of them for "" and "all".
func (s *PortfolioService) ListProjects(category string) ([]models.Project, error) {
	projects, err := s.projects.ListByCategory(category)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *PortfolioService) GetProject(id uint64) (*models.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

// ListSkills returns every skill, or only those in category when it is set.
func (s *PortfolioService) ListSkills(category string) ([]models.Skill, error) {
	var (
		skills []models.Skill
		err    error
	)
	if category == "" || category == models.CategoryAll {
		skills, err = s.resume.ListSkills()
	} else {
		skills, err = s.resume.ListSkillsByCategory(category)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	return skills, nil
}

func (s *PortfolioService) ListExperiences() ([]models.Experience, error) {
	experiences, err := s.resume.ListExperiences()
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	return experiences, nil
}

func (s *PortfolioService) ListEducations() ([]models.Education, error) {
	educations, err := s.resume.ListEducations()
	if err != nil {
		return nil, fmt.Errorf("failed to list educations: %w", err)
	}
	return educations, nil
}

func (s *PortfolioService) ListCertifications() ([]models.Certification, error) {
	certifications, err := s.resume.ListCertifications()
	if err != nil {
		return nil, fmt.Errorf("failed to list certifications: %w", err)
	}
	return certifications, nil
}

func (s *PortfolioService) ListHackathons() ([]models.Hackathon, error) {
	hackathons, err := s.resume.ListHackathons()
	if err != nil {
		return nil, fmt.Errorf("failed to list hackathons: %w", err)
	}
	return hackathons, nil
}
