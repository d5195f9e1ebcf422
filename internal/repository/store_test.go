package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/folio-dev/portfolio-api/internal/models"
)

// StoreTestSuite runs the same behaviour checks against every Store implementation.
type StoreTestSuite struct {
	suite.Suite
	newStore func(t *testing.T) *Store
	store    *Store
}

func (suite *StoreTestSuite) SetupTest() {
	suite.store = suite.newStore(suite.T())
}

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Skill{},
		&models.Experience{},
		&models.Education{},
		&models.Certification{},
		&models.Hackathon{},
	))
	return NewGormStore(db)
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &StoreTestSuite{newStore: func(*testing.T) *Store { return NewMemoryStore() }})
}

func TestGormStore(t *testing.T) {
	suite.Run(t, &StoreTestSuite{newStore: newSQLiteStore})
}

func at(year int) *time.Time {
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &t
}

func (suite *StoreTestSuite) createProject(name string, category *string, updated *time.Time) *models.Project {
	p := &models.Project{Name: name, SourceURL: "https://example.com/" + name, Category: category, LastUpdated: updated}
	suite.Require().NoError(suite.store.Projects.Create(p))
	return p
}

func (suite *StoreTestSuite) TestIDsStartAtOnePerCollection() {
	p1 := suite.createProject("a", nil, nil)
	p2 := suite.createProject("b", nil, nil)
	suite.Equal(uint64(1), p1.ID)
	suite.Equal(uint64(2), p2.ID)

	skill := &models.Skill{Name: "Go", Category: "Programming"}
	suite.Require().NoError(suite.store.Resume.CreateSkill(skill))
	suite.Equal(uint64(1), skill.ID)

	hackathon := &models.Hackathon{Name: "Hack", Result: "Winner", Date: "2024", Description: "x"}
	suite.Require().NoError(suite.store.Resume.CreateHackathon(hackathon))
	suite.Equal(uint64(1), hackathon.ID)
}

func (suite *StoreTestSuite) TestCreateIgnoresCallerID() {
	p := &models.Project{ID: 42, Name: "a", SourceURL: "#"}
	suite.Require().NoError(suite.store.Projects.Create(p))
	suite.Equal(uint64(1), p.ID)
}

func (suite *StoreTestSuite) TestProjectDefaults() {
	p := suite.createProject("bare", nil, nil)

	got, err := suite.store.Projects.FindByID(p.ID)
	suite.Require().NoError(err)
	suite.NotNil(got.Topics)
	suite.Empty(got.Topics)
	suite.Zero(got.StarCount)
	suite.Zero(got.ForkCount)
	suite.Nil(got.Description)
	suite.Nil(got.ImageURL)
	suite.Nil(got.LastUpdated)
}

func (suite *StoreTestSuite) TestSkillDefaultProficiency() {
	suite.Require().NoError(suite.store.Resume.CreateSkill(&models.Skill{Name: "Go", Category: "Programming"}))
	suite.Require().NoError(suite.store.Resume.CreateSkill(&models.Skill{Name: "C", Category: "Programming", Proficiency: 5}))

	skills, err := suite.store.Resume.ListSkills()
	suite.Require().NoError(err)
	suite.Require().Len(skills, 2)
	suite.Equal(models.DefaultSkillProficiency, skills[0].Proficiency)
	suite.Equal(5, skills[1].Proficiency)
}

func (suite *StoreTestSuite) TestFindByID_NotFound() {
	_, err := suite.store.Projects.FindByID(99)
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *StoreTestSuite) TestListOrdersByLastUpdated() {
	undated := suite.createProject("undated", nil, nil)
	old := suite.createProject("old", nil, at(2020))
	newest := suite.createProject("newest", nil, at(2024))
	tie := suite.createProject("tie", nil, at(2020))

	projects, err := suite.store.Projects.List()
	suite.Require().NoError(err)

	ids := make([]uint64, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	suite.Equal([]uint64{newest.ID, old.ID, tie.ID, undated.ID}, ids)
}

func (suite *StoreTestSuite) TestListByCategory() {
	suite.createProject("site", models.Ptr("web"), at(2021))
	suite.createProject("model", models.Ptr("ai"), at(2022))
	suite.createProject("uncategorized", nil, at(2023))

	all, err := suite.store.Projects.ListByCategory("")
	suite.Require().NoError(err)
	suite.Len(all, 3)

	sentinel, err := suite.store.Projects.ListByCategory(models.CategoryAll)
	suite.Require().NoError(err)
	suite.Len(sentinel, 3)

	ai, err := suite.store.Projects.ListByCategory("ai")
	suite.Require().NoError(err)
	suite.Require().Len(ai, 1)
	suite.Equal("model", ai[0].Name)

	unknown, err := suite.store.Projects.ListByCategory("quantum")
	suite.Require().NoError(err)
	suite.NotNil(unknown)
	suite.Empty(unknown)
}

func (suite *StoreTestSuite) TestUpdate() {
	p := suite.createProject("site", models.Ptr("web"), at(2021))

	updated, err := suite.store.Projects.Update(p.ID, models.ProjectUpdate{
		ImageURL: models.Ptr("https://img.example/1.png"),
		Topics:   []string{"go"},
	})
	suite.Require().NoError(err)
	suite.Equal("site", updated.Name)
	suite.Equal("https://img.example/1.png", *updated.ImageURL)

	got, err := suite.store.Projects.FindByID(p.ID)
	suite.Require().NoError(err)
	suite.Equal("web", *got.Category)
	suite.Equal([]string{"go"}, []string(got.Topics))

	_, err = suite.store.Projects.Update(99, models.ProjectUpdate{Name: models.Ptr("x")})
	suite.ErrorIs(err, ErrNotFound)

	all, err := suite.store.Projects.List()
	suite.Require().NoError(err)
	suite.Len(all, 1)
}

func (suite *StoreTestSuite) TestDelete() {
	p := suite.createProject("site", nil, nil)

	existed, err := suite.store.Projects.Delete(p.ID)
	suite.Require().NoError(err)
	suite.True(existed)

	existed, err = suite.store.Projects.Delete(p.ID)
	suite.Require().NoError(err)
	suite.False(existed)

	_, err = suite.store.Projects.FindByID(p.ID)
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *StoreTestSuite) TestExperiencesSortedByOrder() {
	for _, e := range []models.Experience{
		{Title: "third", Order: 3},
		{Title: "first-a", Order: 1},
		{Title: "first-b", Order: 1},
		{Title: "second", Order: 2},
	} {
		e := e
		suite.Require().NoError(suite.store.Resume.CreateExperience(&e))
	}

	experiences, err := suite.store.Resume.ListExperiences()
	suite.Require().NoError(err)

	titles := make([]string, 0, len(experiences))
	for _, e := range experiences {
		titles = append(titles, e.Title)
	}
	suite.Equal([]string{"first-a", "first-b", "second", "third"}, titles)
}

func (suite *StoreTestSuite) TestResumeInsertionOrder() {
	for _, name := range []string{"b", "a", "c"} {
		suite.Require().NoError(suite.store.Resume.CreateCertification(&models.Certification{Title: name, Issuer: "x", IssueDate: "2023"}))
		suite.Require().NoError(suite.store.Resume.CreateEducation(&models.Education{Degree: name, Institution: "x", Period: "2020"}))
	}

	certs, err := suite.store.Resume.ListCertifications()
	suite.Require().NoError(err)
	suite.Equal("b", certs[0].Title)
	suite.Equal("c", certs[2].Title)

	educations, err := suite.store.Resume.ListEducations()
	suite.Require().NoError(err)
	suite.Len(educations, 3)
	suite.Nil(educations[0].GPA)
}

func (suite *StoreTestSuite) TestSkillsByCategory() {
	suite.Require().NoError(Seed(suite.store))

	cloud, err := suite.store.Resume.ListSkillsByCategory("Cloud")
	suite.Require().NoError(err)
	suite.Len(cloud, 2)

	none, err := suite.store.Resume.ListSkillsByCategory("Nope")
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *StoreTestSuite) TestUsers() {
	user := &models.User{Username: "owner", PasswordHash: "hash"}
	suite.Require().NoError(suite.store.Users.Create(user))
	suite.Equal(uint64(1), user.ID)

	suite.ErrorIs(suite.store.Users.Create(&models.User{Username: "owner", PasswordHash: "other"}), ErrUsernameTaken)

	found, err := suite.store.Users.FindByUsername("owner")
	suite.Require().NoError(err)
	suite.Equal(user.ID, found.ID)

	_, err = suite.store.Users.FindByUsername("nobody")
	suite.ErrorIs(err, ErrNotFound)

	_, err = suite.store.Users.FindByID(7)
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *StoreTestSuite) TestSeedIfEmpty() {
	seeded, err := SeedIfEmpty(suite.store)
	suite.Require().NoError(err)
	suite.True(seeded)

	seeded, err = SeedIfEmpty(suite.store)
	suite.Require().NoError(err)
	suite.False(seeded)

	projects, err := suite.store.Projects.List()
	suite.Require().NoError(err)
	suite.Len(projects, 3)

	experiences, err := suite.store.Resume.ListExperiences()
	suite.Require().NoError(err)
	suite.Len(experiences, 1)
}

func TestMemoryStore_IDsNeverReused(t *testing.T) {
	store := NewMemoryStore()
	p := &models.Project{Name: "a", SourceURL: "#"}
	require.NoError(t, store.Projects.Create(p))

	existed, err := store.Projects.Delete(p.ID)
	require.NoError(t, err)
	require.True(t, existed)

	next := &models.Project{Name: "b", SourceURL: "#"}
	require.NoError(t, store.Projects.Create(next))
	assert.Equal(t, uint64(2), next.ID)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	p := &models.Project{Name: "a", SourceURL: "#", Topics: []string{"go"}}
	require.NoError(t, store.Projects.Create(p))

	p.Topics[0] = "mutated"
	p.Name = "mutated"

	got, err := store.Projects.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name)
	assert.Equal(t, []string{"go"}, []string(got.Topics))

	got.Topics[0] = "changed again"
	again, err := store.Projects.FindByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "go", again.Topics[0])
}

func TestMemoryStore_ConcurrentCreate(t *testing.T) {
	store := NewMemoryStore()
	const n = 50

	ids := make(chan uint64, n)
	done := make(chan struct{})
	for i := 0; i < n; i++ {
		go func() {
			p := &models.Project{Name: "p", SourceURL: "#"}
			assert.NoError(t, store.Projects.Create(p))
			ids <- p.ID
			done <- struct{}{}
		}()
	}
	for i := 0; i < n; i++ {
		<-done
	}
	close(ids)

	seen := map[uint64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}
