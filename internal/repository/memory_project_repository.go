package repository

import (
	"sort"

	"github.com/folio-dev/portfolio-api/internal/models"
	"gorm.io/datatypes"
)

// MemoryProjectRepository is an in-memory implementation of ProjectRepository
type MemoryProjectRepository struct {
	projects *collection[models.Project]
}

// NewMemoryProjectRepository creates a new, empty ProjectRepository
func NewMemoryProjectRepository() ProjectRepository {
	return &MemoryProjectRepository{projects: newCollection[models.Project]()}
}

// Create creates a new project
func (r *MemoryProjectRepository) Create(project *models.Project) error {
	stored := r.projects.insert(func(id uint64) models.Project {
		p := cloneProject(*project)
		p.ID = id
		p.ApplyDefaults()
		return p
	})
	*project = cloneProject(stored)
	return nil
}

// FindByID finds a project by ID
func (r *MemoryProjectRepository) FindByID(id uint64) (*models.Project, error) {
	p, ok := r.projects.get(id)
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneProject(p)
	return &out, nil
}

// List returns every project, most recently updated first
func (r *MemoryProjectRepository) List() ([]models.Project, error) {
	all := r.projects.all()
	for i := range all {
		all[i] = cloneProject(all[i])
	}
	sortByLastUpdated(all)
	return all, nil
}

// ListByCategory returns projects tagged with category
func (r *MemoryProjectRepository) ListByCategory(category string) ([]models.Project, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}
	if category == "" || category == models.CategoryAll {
		return all, nil
	}

	filtered := make([]models.Project, 0, len(all))
	for _, p := range all {
		if p.HasCategory(category) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Update merges a partial update into an existing project
func (r *MemoryProjectRepository) Update(id uint64, update models.ProjectUpdate) (*models.Project, error) {
	p, ok := r.projects.update(id, func(p models.Project) models.Project {
		p = cloneProject(p)
		update.Apply(&p)
		p.ApplyDefaults()
		return p
	})
	if !ok {
		return nil, ErrNotFound
	}
	out := cloneProject(p)
	return &out, nil
}

// Delete removes a project
func (r *MemoryProjectRepository) Delete(id uint64) (bool, error) {
	return r.projects.remove(id), nil
}

// sortByLastUpdated orders projects newest first. Projects without a timestamp
// go last; ties keep insertion order.
func sortByLastUpdated(projects []models.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		a, b := projects[i].LastUpdated, projects[j].LastUpdated
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}

func cloneProject(p models.Project) models.Project {
	if p.Topics != nil {
		p.Topics = datatypes.JSONSlice[string](append([]string{}, p.Topics...))
	}
	return p
}
