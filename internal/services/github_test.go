package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGitHubTestServer(t *testing.T, handler http.HandlerFunc) *GitHubService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewGitHubService(server.URL, "test-token", 5*time.Second)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestGitHubService_FetchUserRepositories(t *testing.T) {
	svc := newGitHubTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		assert.Equal(t, "Portfolio-App", r.Header.Get("User-Agent"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		writeJSON(t, w, http.StatusOK, []map[string]any{
			{"id": 1, "name": "hello", "html_url": "https://github.com/octocat/hello", "topics": []string{"go"}, "updated_at": "2024-05-01T10:00:00Z"},
			{"id": 2, "name": "forked", "html_url": "https://github.com/octocat/forked", "fork": true},
			{"id": 3, "name": "", "html_url": "https://github.com/octocat/nameless"},
			{"id": 4, "name": "world", "html_url": "https://github.com/octocat/world", "language": "Go", "stargazers_count": 7},
		})
	})

	repos, err := svc.FetchUserRepositories(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "hello", repos[0].Name)
	assert.Equal(t, []string{"go"}, repos[0].Topics)
	require.NotNil(t, repos[0].UpdatedAt)
	assert.Equal(t, 2024, repos[0].UpdatedAt.Year())
	assert.Equal(t, "world", repos[1].Name)
	assert.Equal(t, 7, repos[1].StargazersCount)
	require.NotNil(t, repos[1].Language)
	assert.Equal(t, "Go", *repos[1].Language)
}

func TestGitHubService_ListUserRepositories_FailureIsEmpty(t *testing.T) {
	svc := newGitHubTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, map[string]string{"message": "Not Found"})
	})

	_, err := svc.FetchUserRepositories(context.Background(), "ghost")
	var apiErr *GitHubAPIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	repos := svc.ListUserRepositories(context.Background(), "ghost")
	assert.NotNil(t, repos)
	assert.Empty(t, repos)
}

func TestGitHubService_ListUserRepositories_Unreachable(t *testing.T) {
	svc := NewGitHubService("http://127.0.0.1:1", "", time.Second)
	assert.Empty(t, svc.ListUserRepositories(context.Background(), "octocat"))
}

func TestGitHubService_FetchReadme(t *testing.T) {
	text := "# Hello\n\nA small project."
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	wrapped := encoded[:10] + "\n" + encoded[10:] + "\n"

	svc := newGitHubTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/octocat/hello/readme":
			writeJSON(t, w, http.StatusOK, map[string]string{"content": wrapped, "encoding": "base64"})
		case "/repos/octocat/plain/readme":
			writeJSON(t, w, http.StatusOK, map[string]string{"content": "raw", "encoding": "utf-8"})
		default:
			writeJSON(t, w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		}
	})

	readme, err := svc.FetchReadme(context.Background(), "octocat", "hello")
	require.NoError(t, err)
	assert.Equal(t, text, readme)

	_, err = svc.FetchReadme(context.Background(), "octocat", "plain")
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)

	assert.Nil(t, svc.Readme(context.Background(), "octocat", "missing"))
	got := svc.Readme(context.Background(), "octocat", "hello")
	require.NotNil(t, got)
	assert.Equal(t, text, *got)
}

func TestGitHubService_FetchProfile(t *testing.T) {
	svc := newGitHubTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users/octocat":
			writeJSON(t, w, http.StatusOK, map[string]any{
				"login": "octocat", "name": "The Octocat", "public_repos": 8, "followers": 100,
				"avatar_url": "https://avatars.example/octocat", "html_url": "https://github.com/octocat",
			})
		case "/users/blank":
			writeJSON(t, w, http.StatusOK, map[string]any{"name": "No Login"})
		default:
			writeJSON(t, w, http.StatusNotFound, map[string]string{"message": "Not Found"})
		}
	})

	profile, err := svc.FetchProfile(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, "octocat", profile.Login)
	assert.Equal(t, 8, profile.PublicRepos)
	require.NotNil(t, profile.Name)
	assert.Equal(t, "The Octocat", *profile.Name)

	_, err = svc.FetchProfile(context.Background(), "blank")
	assert.ErrorIs(t, err, ErrInvalidGitHubResponse)

	assert.Nil(t, svc.Profile(context.Background(), "ghost"))
}

func TestGitHubService_Categorize(t *testing.T) {
	svc := NewGitHubService("http://unused", "", time.Second)
	readme := "Trained with PyTorch"
	assert.Equal(t, "ai", svc.Categorize(Repository{Name: "model"}, &readme))
	assert.Equal(t, "web", svc.Categorize(Repository{Name: "model"}, nil))
}
