package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project categories. Classification only ever assigns web, ai, mobile or games;
// automation and ar exist on seeded projects.
const (
	CategoryWeb        = "web"
	CategoryAI         = "ai"
	CategoryMobile     = "mobile"
	CategoryGames      = "games"
	CategoryAutomation = "automation"
	CategoryAR         = "ar"

	// CategoryAll is the query sentinel that selects every project.
	CategoryAll = "all"
)

// ClassifiableCategories are the categories a repository can be classified into.
var ClassifiableCategories = []string{CategoryWeb, CategoryAI, CategoryMobile, CategoryGames}

// IsClassifiableCategory reports whether c is one of ClassifiableCategories.
func IsClassifiableCategory(c string) bool {
	for _, v := range ClassifiableCategories {
		if v == c {
			return true
		}
	}
	return false
}

type Project struct {
	ID              uint64                      `gorm:"primarykey" json:"id"`
	Name            string                      `gorm:"type:varchar(255);not null" json:"name"`
	Description     *string                     `gorm:"type:text" json:"description"`
	LongDescription *string                     `gorm:"type:text" json:"longDescription"`
	SourceURL       string                      `gorm:"type:varchar(512);not null" json:"sourceUrl"`
	CloneURL        *string                     `gorm:"type:varchar(512)" json:"cloneUrl"`
	PrimaryLanguage *string                     `gorm:"type:varchar(64)" json:"primaryLanguage"`
	Topics          datatypes.JSONSlice[string] `json:"topics"`
	StarCount       int                         `gorm:"not null;default:0" json:"starCount"`
	ForkCount       int                         `gorm:"not null;default:0" json:"forkCount"`
	LastUpdated     *time.Time                  `gorm:"index" json:"lastUpdated"`
	Category        *string                     `gorm:"type:varchar(32);index" json:"category"`
	ImageURL        *string                     `gorm:"type:text" json:"imageUrl"`
	LiveURL         *string                     `gorm:"type:varchar(512)" json:"liveUrl"`
}

// ApplyDefaults fills the optional fields a stored project must always carry.
func (p *Project) ApplyDefaults() {
	if p.Topics == nil {
		p.Topics = datatypes.JSONSlice[string]{}
	}
	if p.StarCount < 0 {
		p.StarCount = 0
	}
	if p.ForkCount < 0 {
		p.ForkCount = 0
	}
}

// HasCategory reports whether the project is tagged with category c.
func (p *Project) HasCategory(c string) bool {
	return p.Category != nil && *p.Category == c
}

// ProjectUpdate is a partial update; nil fields are left untouched.
type ProjectUpdate struct {
	Name            *string
	Description     *string
	LongDescription *string
	SourceURL       *string
	CloneURL        *string
	PrimaryLanguage *string
	Topics          []string
	StarCount       *int
	ForkCount       *int
	LastUpdated     *time.Time
	Category        *string
	ImageURL        *string
	LiveURL         *string
}

// Apply merges the set fields of u into p.
func (u ProjectUpdate) Apply(p *Project) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = u.Description
	}
	if u.LongDescription != nil {
		p.LongDescription = u.LongDescription
	}
	if u.SourceURL != nil {
		p.SourceURL = *u.SourceURL
	}
	if u.CloneURL != nil {
		p.CloneURL = u.CloneURL
	}
	if u.PrimaryLanguage != nil {
		p.PrimaryLanguage = u.PrimaryLanguage
	}
	if u.Topics != nil {
		p.Topics = datatypes.JSONSlice[string](append([]string{}, u.Topics...))
	}
	if u.StarCount != nil {
		p.StarCount = *u.StarCount
	}
	if u.ForkCount != nil {
		p.ForkCount = *u.ForkCount
	}
	if u.LastUpdated != nil {
		p.LastUpdated = u.LastUpdated
	}
	if u.Category != nil {
		p.Category = u.Category
	}
	if u.ImageURL != nil {
		p.ImageURL = u.ImageURL
	}
	if u.LiveURL != nil {
		p.LiveURL = u.LiveURL
	}
}
