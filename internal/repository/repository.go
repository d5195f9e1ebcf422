package repository

import (
	"errors"

	"github.com/folio-dev/portfolio-api/internal/models"
)

var (
	// ErrNotFound is returned when a record with the requested identifier does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrUsernameTaken is returned when creating a user whose username already exists.
	ErrUsernameTaken = errors.New("repository: username already exists")
)

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create assigns the next identifier, fills defaults and stores the project.
	// The passed project is updated to the stored record.
	Create(project *models.Project) error

	// FindByID finds a project by ID
	FindByID(id uint64) (*models.Project, error)

	// List returns every project, most recently updated first
	List() ([]models.Project, error)

	// ListByCategory returns projects tagged with category, or every project
	// when category is empty or "all"
	ListByCategory(category string) ([]models.Project, error)

	// Update merges the set fields of update into the project
	Update(id uint64, update models.ProjectUpdate) (*models.Project, error)

	// Delete removes a project and reports whether it existed
	Delete(id uint64) (bool, error)
}

// ResumeRepository defines the interface for the static resume collections.
// They are only ever created (seeding) and listed.
type ResumeRepository interface {
	CreateSkill(skill *models.Skill) error
	ListSkills() ([]models.Skill, error)
	ListSkillsByCategory(category string) ([]models.Skill, error)

	CreateExperience(experience *models.Experience) error
	// ListExperiences returns experiences sorted by Order ascending
	ListExperiences() ([]models.Experience, error)

	CreateEducation(education *models.Education) error
	ListEducations() ([]models.Education, error)

	CreateCertification(certification *models.Certification) error
	ListCertifications() ([]models.Certification, error)

	CreateHackathon(hackathon *models.Hackathon) error
	ListHackathons() ([]models.Hackathon, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user; PasswordHash must already be set
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// Store bundles the repositories the services depend on. It is constructed once
// at startup and passed down explicitly.
type Store struct {
	Projects ProjectRepository
	Resume   ResumeRepository
	Users    UserRepository
}
