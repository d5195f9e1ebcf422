package repository

import (
	"github.com/folio-dev/portfolio-api/internal/models"
	"gorm.io/gorm"
)

// GormResumeRepository is a GORM implementation of ResumeRepository
type GormResumeRepository struct {
	db *gorm.DB
}

// NewResumeRepository creates a new ResumeRepository
func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &GormResumeRepository{db: db}
}

func (r *GormResumeRepository) CreateSkill(skill *models.Skill) error {
	skill.ID = 0
	skill.ApplyDefaults()
	return r.db.Create(skill).Error
}

func (r *GormResumeRepository) ListSkills() ([]models.Skill, error) {
	return listOrdered[models.Skill](r.db, "id ASC")
}

func (r *GormResumeRepository) ListSkillsByCategory(category string) ([]models.Skill, error) {
	return listOrdered[models.Skill](r.db.Where("category = ?", category), "id ASC")
}

func (r *GormResumeRepository) CreateExperience(experience *models.Experience) error {
	experience.ID = 0
	return r.db.Create(experience).Error
}

func (r *GormResumeRepository) ListExperiences() ([]models.Experience, error) {
	return listOrdered[models.Experience](r.db, "display_order ASC", "id ASC")
}

func (r *GormResumeRepository) CreateEducation(education *models.Education) error {
	education.ID = 0
	return r.db.Create(education).Error
}

func (r *GormResumeRepository) ListEducations() ([]models.Education, error) {
	return listOrdered[models.Education](r.db, "id ASC")
}

func (r *GormResumeRepository) CreateCertification(certification *models.Certification) error {
	certification.ID = 0
	return r.db.Create(certification).Error
}

func (r *GormResumeRepository) ListCertifications() ([]models.Certification, error) {
	return listOrdered[models.Certification](r.db, "id ASC")
}

func (r *GormResumeRepository) CreateHackathon(hackathon *models.Hackathon) error {
	hackathon.ID = 0
	return r.db.Create(hackathon).Error
}

func (r *GormResumeRepository) ListHackathons() ([]models.Hackathon, error) {
	return listOrdered[models.Hackathon](r.db, "id ASC")
}

func listOrdered[T any](query *gorm.DB, orders ...string) ([]T, error) {
	for _, o := range orders {
		query = query.Order(o)
	}
	out := []T{}
	if err := query.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
