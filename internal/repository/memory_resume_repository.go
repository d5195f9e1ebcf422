package repository

import (
	"sort"

	"github.com/folio-dev/portfolio-api/internal/models"
)

// MemoryResumeRepository is an in-memory implementation of ResumeRepository
type MemoryResumeRepository struct {
	skills         *collection[models.Skill]
	experiences    *collection[models.Experience]
	educations     *collection[models.Education]
	certifications *collection[models.Certification]
	hackathons     *collection[models.Hackathon]
}

// NewMemoryResumeRepository creates a new, empty ResumeRepository
func NewMemoryResumeRepository() ResumeRepository {
	return &MemoryResumeRepository{
		skills:         newCollection[models.Skill](),
		experiences:    newCollection[models.Experience](),
		educations:     newCollection[models.Education](),
		certifications: newCollection[models.Certification](),
		hackathons:     newCollection[models.Hackathon](),
	}
}

func (r *MemoryResumeRepository) CreateSkill(skill *models.Skill) error {
	*skill = r.skills.insert(func(id uint64) models.Skill {
		s := *skill
		s.ID = id
		s.ApplyDefaults()
		return s
	})
	return nil
}

func (r *MemoryResumeRepository) ListSkills() ([]models.Skill, error) {
	return r.skills.all(), nil
}

func (r *MemoryResumeRepository) ListSkillsByCategory(category string) ([]models.Skill, error) {
	all := r.skills.all()
	filtered := make([]models.Skill, 0, len(all))
	for _, s := range all {
		if s.Category == category {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

func (r *MemoryResumeRepository) CreateExperience(experience *models.Experience) error {
	*experience = r.experiences.insert(func(id uint64) models.Experience {
		e := *experience
		e.ID = id
		return e
	})
	return nil
}

func (r *MemoryResumeRepository) ListExperiences() ([]models.Experience, error) {
	all := r.experiences.all()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Order < all[j].Order
	})
	return all, nil
}

func (r *MemoryResumeRepository) CreateEducation(education *models.Education) error {
	*education = r.educations.insert(func(id uint64) models.Education {
		e := *education
		e.ID = id
		return e
	})
	return nil
}

func (r *MemoryResumeRepository) ListEducations() ([]models.Education, error) {
	return r.educations.all(), nil
}

func (r *MemoryResumeRepository) CreateCertification(certification *models.Certification) error {
	*certification = r.certifications.insert(func(id uint64) models.Certification {
		c := *certification
		c.ID = id
		return c
	})
	return nil
}

func (r *MemoryResumeRepository) ListCertifications() ([]models.Certification, error) {
	return r.certifications.all(), nil
}

func (r *MemoryResumeRepository) CreateHackathon(hackathon *models.Hackathon) error {
	*hackathon = r.hackathons.insert(func(id uint64) models.Hackathon {
		h := *hackathon
		h.ID = id
		return h
	})
	return nil
}

func (r *MemoryResumeRepository) ListHackathons() ([]models.Hackathon, error) {
	return r.hackathons.all(), nil
}
