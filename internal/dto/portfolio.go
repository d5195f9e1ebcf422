package dto

import (
	"fmt"

	"github.com/folio-dev/portfolio-api/internal/models"
	"github.com/folio-dev/portfolio-api/internal/services"
)

// SyncRequest is the body of POST /api/sync-github
type SyncRequest struct {
	Username string `json:"username"`
}

// SyncResponse represents the outcome of a GitHub sync
type SyncResponse struct {
	Message  string           `json:"message"`
	Projects []models.Project `json:"projects"`
}

// IllustrateResponse represents the outcome of illustrating stored projects
type IllustrateResponse struct {
	Message   string           `json:"message"`
	Attempted int              `json:"attempted"`
	Projects  []models.Project `json:"projects"`
}

// ContactRequest is the body of POST /api/contact
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ProfileDTO represents a GitHub profile in API responses
type ProfileDTO struct {
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	Bio         *string `json:"bio"`
	PublicRepos int     `json:"publicRepos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	AvatarURL   string  `json:"avatarUrl"`
	ProfileURL  string  `json:"profileUrl"`
}

// ToProfileDTO converts a GitHub profile to ProfileDTO
func ToProfileDTO(p services.Profile) ProfileDTO {
	return ProfileDTO{
		Login:       p.Login,
		Name:        p.Name,
		Bio:         p.Bio,
		PublicRepos: p.PublicRepos,
		Followers:   p.Followers,
		Following:   p.Following,
		AvatarURL:   p.AvatarURL,
		ProfileURL:  p.HTMLURL,
	}
}

// ToContactMessage converts a contact request to the service input
func (r ContactRequest) ToContactMessage() services.ContactMessage {
	return services.ContactMessage{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}

// ToSyncResponse converts a sync result to SyncResponse
func ToSyncResponse(r services.SyncResult) SyncResponse {
	projects := r.Projects
	if projects == nil {
		projects = []models.Project{}
	}
	return SyncResponse{
		Message:  fmt.Sprintf("Successfully synced %d projects", r.Synced),
		Projects: projects,
	}
}
