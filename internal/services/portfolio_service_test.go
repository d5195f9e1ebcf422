package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-dev/portfolio-api/internal/models"
	"github.com/folio-dev/portfolio-api/internal/repository"
)

func seededPortfolio(t *testing.T) *PortfolioService {
	t.Helper()
	store := repository.NewMemoryStore()
	require.NoError(t, repository.Seed(store))
	return NewPortfolioService(store)
}

func TestPortfolioService_ListProjects(t *testing.T) {
	svc := seededPortfolio(t)

	all, err := svc.ListProjects("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	same, err := svc.ListProjects(models.CategoryAll)
	require.NoError(t, err)
	assert.Equal(t, all, same)

	ar, err := svc.ListProjects(models.CategoryAR)
	require.NoError(t, err)
	require.Len(t, ar, 1)
	assert.Equal(t, models.CategoryAR, *ar[0].Category)

	none, err := svc.ListProjects("quantum")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPortfolioService_GetProject(t *testing.T) {
	svc := seededPortfolio(t)

	project, err := svc.GetProject(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), project.ID)

	_, err = svc.GetProject(999)
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestPortfolioService_Resume(t *testing.T) {
	svc := seededPortfolio(t)

	skills, err := svc.ListSkills("")
	require.NoError(t, err)
	assert.Len(t, skills, 11)

	filtered, err := svc.ListSkills(skills[0].Category)
	require.NoError(t, err)
	assert.NotEmpty(t, filtered)
	for _, s := range filtered {
		assert.Equal(t, skills[0].Category, s.Category)
	}

	experiences, err := svc.ListExperiences()
	require.NoError(t, err)
	assert.Len(t, experiences, 1)

	educations, err := svc.ListEducations()
	require.NoError(t, err)
	assert.Len(t, educations, 3)

	certifications, err := svc.ListCertifications()
	require.NoError(t, err)
	assert.Len(t, certifications, 3)

	hackathons, err := svc.ListHackathons()
	require.NoError(t, err)
	assert.Len(t, hackathons, 4)
}
