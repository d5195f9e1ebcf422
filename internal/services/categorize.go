package services

import (
	"regexp"
	"strings"

	"github.com/folio-dev/portfolio-api/internal/models"
)

// Keyword families, checked in this order. The first family that matches wins.
var (
	aiKeywords     = regexp.MustCompile(`\b(machine learning|ml|ai|artificial intelligence|neural|tensorflow|pytorch|sklearn|keras|nlp|computer vision|deep learning|data science|pandas|numpy)\b`)
	mobileKeywords = regexp.MustCompile(`\b(react native|flutter|ios|android|mobile|swift|kotlin|expo|cordova|ionic)\b`)
	gameKeywords   = regexp.MustCompile(`\b(game|gaming|unity|godot|phaser|pygame|canvas|webgl|three\.js|babylon)\b`)
)

// mobileLanguages force the mobile category regardless of keywords.
var mobileLanguages = map[string]bool{
	"Swift":  true,
	"Kotlin": true,
}

// ClassifyRepository assigns a category to repo from its name, description,
// topics and README text.
func ClassifyRepository(repo Repository, readme string) string {
	corpus := BuildCorpus(repo.Name, models.StringOrEmpty(repo.Description), repo.Topics, readme)
	return classify(corpus, mobileLanguages[models.StringOrEmpty(repo.Language)])
}

// ClassifyText assigns a category from free text alone.
func ClassifyText(text string) string {
	return classify(strings.ToLower(text), false)
}

// BuildCorpus joins and lowercases the searchable text of a repository.
func BuildCorpus(name, description string, topics []string, readme string) string {
	parts := []string{name, description, strings.Join(topics, " "), readme}
	return strings.ToLower(strings.Join(parts, " "))
}

func classify(corpus string, mobileLanguage bool) string {
	switch {
	case aiKeywords.MatchString(corpus):
		return models.CategoryAI
	case mobileLanguage || mobileKeywords.MatchString(corpus):
		return models.CategoryMobile
	case gameKeywords.MatchString(corpus):
		return models.CategoryGames
	default:
		return models.CategoryWeb
	}
}
