package constants

import "time"

// GitHub
const (
	// MaxRepositoriesPerSync is the per_page value for the repository listing;
	// only the first page is fetched.
	MaxRepositoriesPerSync = 100
	GitHubUserAgent        = "Portfolio-App"
	GitHubAcceptHeader     = "application/vnd.github.v3+json"
)

// Sync
const (
	// LongDescriptionMaxChars bounds the README excerpt stored as a project's long description.
	LongDescriptionMaxChars = 500
)

// AI
const (
	// ReadmePromptMaxChars bounds the README excerpt sent for project analysis.
	ReadmePromptMaxChars   = 1000
	AnalysisMaxTokens      = 500
	AnalysisTemperature    = 0.3
	DefaultBatchImagePause = time.Second
)

// HTTP
const (
	ContextKeyRequestID = "request_id"
	HeaderRequestID     = "X-Request-ID"
)

// Accounts
const (
	MinPasswordLength = 8
	MaxUsernameLength = 50
)

// Context keys
const (
	ContextKeyProject = "project"
)
