package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/folio-dev/portfolio-api/internal/constants"
)

var (
	ErrInvalidGitHubResponse = errors.New("invalid GitHub API response")
	ErrUnsupportedEncoding   = errors.New("unsupported README encoding")
)

// GitHubAPIError is returned when GitHub answers with a non-success status.
type GitHubAPIError struct {
	StatusCode int
	Status     string
	Path       string
}

func (e *GitHubAPIError) Error() string {
	return fmt.Sprintf("GitHub API error: %s (%s)", e.Status, e.Path)
}

// GitHubService calls the GitHub REST API.
type GitHubService struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewGitHubService creates a client for baseURL. token may be empty, in which
// case anonymous rate limits apply.
func NewGitHubService(baseURL, token string, timeout time.Duration) *GitHubService {
	return &GitHubService{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// FetchUserRepositories lists the user's most recently updated repositories,
// forks excluded. Entries missing a name or URL are dropped.
func (s *GitHubService) FetchUserRepositories(ctx context.Context, username string) ([]Repository, error) {
	path := fmt.Sprintf("/users/%s/repos?sort=updated&per_page=%d", url.PathEscape(username), constants.MaxRepositoriesPerSync)

	var raw []Repository
	if err := s.get(ctx, path, &raw); err != nil {
		return nil, err
	}

	repos := make([]Repository, 0, len(raw))
	for _, r := range raw {
		if r.Fork {
			continue
		}
		if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.HTMLURL) == "" {
			slog.Warn("skipping malformed repository entry", "username", username, "id", r.ID)
			continue
		}
		repos = append(repos, r)
	}
	return repos, nil
}

// ListUserRepositories is FetchUserRepositories with failures collapsed into an
// empty list.
func (s *GitHubService) ListUserRepositories(ctx context.Context, username string) []Repository {
	repos, err := s.FetchUserRepositories(ctx, username)
	if err != nil {
		slog.Error("error fetching GitHub repositories", "username", username, "error", err)
		return []Repository{}
	}
	return repos
}

// FetchReadme returns the decoded README of a repository.
func (s *GitHubService) FetchReadme(ctx context.Context, username, repoName string) (string, error) {
	path := fmt.Sprintf("/repos/%s/%s/readme", url.PathEscape(username), url.PathEscape(repoName))

	var resp readmeResponse
	if err := s.get(ctx, path, &resp); err != nil {
		return "", err
	}
	if !strings.EqualFold(resp.Encoding, "base64") {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, resp.Encoding)
	}

	// GitHub wraps the encoded body at 60 columns.
	encoded := strings.NewReplacer("\n", "", "\r", "").Replace(resp.Content)
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: README content: %v", ErrInvalidGitHubResponse, err)
	}
	return string(decoded), nil
}

// Readme is FetchReadme returning nil on any failure.
func (s *GitHubService) Readme(ctx context.Context, username, repoName string) *string {
	readme, err := s.FetchReadme(ctx, username, repoName)
	if err != nil {
		slog.Warn("error fetching README", "username", username, "repository", repoName, "error", err)
		return nil
	}
	return &readme
}

// FetchProfile returns the public profile of a user.
func (s *GitHubService) FetchProfile(ctx context.Context, username string) (*Profile, error) {
	var profile Profile
	if err := s.get(ctx, "/users/"+url.PathEscape(username), &profile); err != nil {
		return nil, err
	}
	if profile.Login == "" {
		return nil, fmt.Errorf("%w: profile without login", ErrInvalidGitHubResponse)
	}
	return &profile, nil
}

// Profile is FetchProfile returning nil on any failure.
func (s *GitHubService) Profile(ctx context.Context, username string) *Profile {
	profile, err := s.FetchProfile(ctx, username)
	if err != nil {
		slog.Warn("error fetching GitHub user profile", "username", username, "error", err)
		return nil
	}
	return profile
}

// Categorize classifies repo using its README when one is available.
func (s *GitHubService) Categorize(repo Repository, readme *string) string {
	text := ""
	if readme != nil {
		text = *readme
	}
	return ClassifyRepository(repo, text)
}

func (s *GitHubService) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("cannot build request: %w", err)
	}

	req.Header.Set("Accept", constants.GitHubAcceptHeader)
	req.Header.Set("User-Agent", constants.GitHubUserAgent)
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("cannot send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &GitHubAPIError{StatusCode: resp.StatusCode, Status: resp.Status, Path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidGitHubResponse, err)
	}
	return nil
}
