package repository

import (
	"errors"

	"github.com/folio-dev/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	project.ID = 0
	project.ApplyDefaults()
	return r.db.Create(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	project.ApplyDefaults()
	return &project, nil
}

// List returns every project, most recently updated first
func (r *GormProjectRepository) List() ([]models.Project, error) {
	return r.find(r.db)
}

// ListByCategory returns projects tagged with category
func (r *GormProjectRepository) ListByCategory(category string) ([]models.Project, error) {
	if category == "" || category == models.CategoryAll {
		return r.List()
	}
	return r.find(r.db.Where("category = ?", category))
}

func (r *GormProjectRepository) find(query *gorm.DB) ([]models.Project, error) {
	projects := []models.Project{}
	err := query.
		Order("CASE WHEN last_updated IS NULL THEN 1 ELSE 0 END").
		Order("last_updated DESC").
		Order("id ASC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].ApplyDefaults()
	}
	return projects, nil
}

// Update merges a partial update into an existing project
func (r *GormProjectRepository) Update(id uint64, update models.ProjectUpdate) (*models.Project, error) {
	project, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}

	update.Apply(project)
	project.ApplyDefaults()

	if err := r.db.Save(project).Error; err != nil {
		return nil, err
	}
	return project, nil
}

// Delete removes a project
func (r *GormProjectRepository) Delete(id uint64) (bool, error) {
	result := r.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
