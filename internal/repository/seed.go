package repository

import (
	"fmt"
	"time"

	"github.com/folio-dev/portfolio-api/internal/models"
)

// Seed loads the fixed portfolio content into store.
func Seed(store *Store) error {
	for i := range defaultSkills {
		s := defaultSkills[i]
		if err := store.Resume.CreateSkill(&s); err != nil {
			return fmt.Errorf("failed to seed skill %q: %w", s.Name, err)
		}
	}
	for i := range defaultExperiences {
		e := defaultExperiences[i]
		if err := store.Resume.CreateExperience(&e); err != nil {
			return fmt.Errorf("failed to seed experience %q: %w", e.Title, err)
		}
	}
	for i := range defaultEducations {
		e := defaultEducations[i]
		if err := store.Resume.CreateEducation(&e); err != nil {
			return fmt.Errorf("failed to seed education %q: %w", e.Degree, err)
		}
	}
	for i := range defaultCertifications {
		c := defaultCertifications[i]
		if err := store.Resume.CreateCertification(&c); err != nil {
			return fmt.Errorf("failed to seed certification %q: %w", c.Title, err)
		}
	}
	for i := range defaultHackathons {
		h := defaultHackathons[i]
		if err := store.Resume.CreateHackathon(&h); err != nil {
			return fmt.Errorf("failed to seed hackathon %q: %w", h.Name, err)
		}
	}
	for _, p := range defaultProjects() {
		p := p
		if err := store.Projects.Create(&p); err != nil {
			return fmt.Errorf("failed to seed project %q: %w", p.Name, err)
		}
	}
	return nil
}

// SeedIfEmpty seeds only when the store holds no projects and no skills, so a
// persistent database is not seeded twice.
func SeedIfEmpty(store *Store) (bool, error) {
	projects, err := store.Projects.List()
	if err != nil {
		return false, fmt.Errorf("failed to check projects: %w", err)
	}
	skills, err := store.Resume.ListSkills()
	if err != nil {
		return false, fmt.Errorf("failed to check skills: %w", err)
	}
	if len(projects) > 0 || len(skills) > 0 {
		return false, nil
	}
	return true, Seed(store)
}

var defaultSkills = []models.Skill{
	{Name: "Java", Category: "Programming", IconRef: models.Ptr("fab fa-java"), Proficiency: 5},
	{Name: "Python", Category: "Programming", IconRef: models.Ptr("fab fa-python"), Proficiency: 5},
	{Name: "C", Category: "Programming", IconRef: models.Ptr("fas fa-code"), Proficiency: 4},
	{Name: "HTML/CSS", Category: "Frontend", IconRef: models.Ptr("fab fa-html5"), Proficiency: 4},
	{Name: "UiPath (RPA)", Category: "Automation", IconRef: models.Ptr("fas fa-robot"), Proficiency: 4},
	{Name: "AWS", Category: "Cloud", IconRef: models.Ptr("fab fa-aws"), Proficiency: 4},
	{Name: "Google Cloud", Category: "Cloud", IconRef: models.Ptr("fab fa-google"), Proficiency: 4},
	{Name: "Unity", Category: "Development", IconRef: models.Ptr("fas fa-cube"), Proficiency: 3},
	{Name: "Empathy", Category: "Soft Skills", IconRef: models.Ptr("fas fa-heart"), Proficiency: 5},
	{Name: "Emotional Intelligence", Category: "Soft Skills", IconRef: models.Ptr("fas fa-brain"), Proficiency: 5},
	{Name: "Adaptability", Category: "Soft Skills", IconRef: models.Ptr("fas fa-sync"), Proficiency: 5},
}

var defaultExperiences = []models.Experience{
	{
		Title:       "Intern",
		Company:     "Cybercrime Department, Coimbatore",
		Period:      "10-day internship",
		Description: "Gained insights into cybercrime investigation and prevention techniques. Assisted investigators with data analysis, evidence collection, and case documentation.",
		IsCurrent:   false,
		Order:       1,
	},
}

var defaultEducations = []models.Education{
	{
		Degree:      "B.Sc. Computer Science (5th semester)",
		Institution: "KG College of Arts and Science",
		Period:      "2022 - 2025",
		GPA:         models.Ptr("74%"),
		Description: models.Ptr("Currently pursuing"),
	},
	{
		Degree:      "HSC",
		Institution: "Ashokapuram Government Higher Secondary School",
		Period:      "2020 - 2022",
		GPA:         models.Ptr("73%"),
	},
	{
		Degree:      "SSLC",
		Institution: "Bishop Francis Matriculation School",
		Period:      "2019 - 2020",
		GPA:         models.Ptr("64%"),
	},
}

var defaultCertifications = []models.Certification{
	{Title: "AWS Cloud Certification", Issuer: "Amazon Web Services", IssueDate: "2023", IconRef: models.Ptr("fab fa-aws")},
	{Title: "Google Cloud Certification", Issuer: "Google Cloud Platform", IssueDate: "2023", IconRef: models.Ptr("fab fa-google")},
	{Title: "Gen AI Certification", Issuer: "Various Platforms", IssueDate: "2023", IconRef: models.Ptr("fas fa-brain")},
}

var defaultHackathons = []models.Hackathon{
	{
		Name:        "Hack-a-Bot",
		Result:      "2nd Runner-up",
		Date:        "2023",
		Description: "Participated in robotics and automation challenge showcasing innovative bot solutions.",
		ProjectName: models.Ptr("Automation Bot"),
	},
	{
		Name:        "Reality Feast",
		Result:      "2nd Runner-up",
		Date:        "2023",
		Description: "Competed in AR/VR development competition focusing on immersive technology solutions.",
		ProjectName: models.Ptr("AR Space Application"),
	},
	{
		Name:        "Smart India Hackathon (SIH)",
		Result:      "Participant",
		Date:        "2023",
		Description: "National level hackathon addressing real-world problems with innovative technology solutions.",
		ProjectName: models.Ptr("SIH Project"),
	},
	{
		Name:        "Google Solution Challenge",
		Result:      "Participant",
		Date:        "2023-24",
		Description: "Global competition focused on solving societal challenges using Google technologies.",
		ProjectName: models.Ptr("Solution Challenge Project"),
	},
}

func defaultProjects() []models.Project {
	resumeDate := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	return []models.Project{
		{
			Name:            "RPA - Finding Blood and Organ Donors",
			Description:     models.Ptr("Developed an RPA bot using UiPath to streamline the process of finding blood and organ donors."),
			LongDescription: models.Ptr("Automated bot developed using UiPath that efficiently searches and connects blood and organ donors with recipients, reducing manual search time and improving donation coordination."),
			SourceURL:       "#",
			PrimaryLanguage: models.Ptr("UiPath"),
			Topics:          []string{"RPA", "Automation", "Healthcare", "UiPath"},
			LastUpdated:     &resumeDate,
			Category:        models.Ptr(models.CategoryAutomation),
		},
		{
			Name:            "AR Application on Space",
			Description:     models.Ptr("Built an augmented reality application in Unity focusing on space education."),
			LongDescription: models.Ptr("Interactive AR application developed in Unity that provides educational content about space, planets, and astronomy through immersive augmented reality experiences."),
			SourceURL:       "#",
			PrimaryLanguage: models.Ptr("C#"),
			Topics:          []string{"AR", "Unity", "Education", "Space", "Augmented Reality"},
			LastUpdated:     &resumeDate,
			Category:        models.Ptr(models.CategoryAR),
		},
		{
			Name:            "Live Translating AI for Specially Abled People",
			Description:     models.Ptr("Designed and implemented an AI system in Python for real-time language translation."),
			LongDescription: models.Ptr("AI-powered real-time translation system built with Python to assist specially abled individuals with communication barriers, featuring live translation capabilities and accessibility features."),
			SourceURL:       "#",
			PrimaryLanguage: models.Ptr("Python"),
			Topics:          []string{"AI", "Translation", "Accessibility", "Real-time", "Python"},
			LastUpdated:     &resumeDate,
			Category:        models.Ptr(models.CategoryAI),
		},
	}
}
