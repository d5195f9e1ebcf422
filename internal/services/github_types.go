package services

import "time"

// Repository is the subset of a GitHub repository payload the sync uses.
type Repository struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	FullName        string     `json:"full_name"`
	Description     *string    `json:"description"`
	HTMLURL         string     `json:"html_url"`
	CloneURL        string     `json:"clone_url"`
	Homepage        *string    `json:"homepage"`
	Language        *string    `json:"language"`
	Topics          []string   `json:"topics"`
	StargazersCount int        `json:"stargazers_count"`
	ForksCount      int        `json:"forks_count"`
	UpdatedAt       *time.Time `json:"updated_at"`
	Fork            bool       `json:"fork"`
}

// Profile is a GitHub user profile.
type Profile struct {
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	AvatarURL   string  `json:"avatar_url"`
	HTMLURL     string  `json:"html_url"`
}

type readmeResponse struct {
	Name     string `json:"name"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}
