package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/folio-dev/portfolio-api/internal/constants"
	"github.com/folio-dev/portfolio-api/internal/models"
	"github.com/folio-dev/portfolio-api/internal/utils"
)

var (
	ErrAIServiceNotConfigured = errors.New("OpenAI API key not configured")
	ErrImageQuotaExceeded     = errors.New("OpenAI API quota exceeded, please check your billing")
	ErrImageInvalidAPIKey     = errors.New("invalid OpenAI API key provided")
	ErrImageContentPolicy     = errors.New("image prompt violates OpenAI content policy")
	ErrImageGenerationFailed  = errors.New("failed to generate project image")
)

// OpenAI error codes we classify.
const (
	openAICodeInsufficientQuota = "insufficient_quota"
	openAICodeInvalidAPIKey     = "invalid_api_key"
	openAICodeContentPolicy     = "content_policy_violation"
)

type AIService struct {
	client     *openai.Client
	batchPause time.Duration
}

// ProjectAnalysis is the AI (or keyword fallback) view of a project.
type ProjectAnalysis struct {
	Category            string `json:"category"`
	ImagePrompt         string `json:"imagePrompt"`
	EnhancedDescription string `json:"enhancedDescription"`
}

// ImageRequest describes one project to illustrate in a batch.
type ImageRequest struct {
	Name        string
	Description string
	Category    string
}

// ImageResult carries the generated image URL, nil when generation failed.
type ImageResult struct {
	Name     string
	ImageURL *string
}

type AIOption func(*AIService)

// WithBatchPause sets the pause between requests in GenerateProjectImages.
func WithBatchPause(d time.Duration) AIOption {
	return func(s *AIService) {
		s.batchPause = d
	}
}

// NewAIService returns a service without a client when apiKey is empty. Every
// image call then fails with ErrAIServiceNotConfigured and analysis falls back
// to keyword heuristics.
func NewAIService(apiKey, baseURL string, opts ...AIOption) *AIService {
	s := &AIService{batchPause: constants.DefaultBatchImagePause}
	if apiKey != "" {
		cfg := openai.DefaultConfig(apiKey)
		if baseURL != "" {
			cfg.BaseURL = strings.TrimRight(baseURL, "/")
		}
		s.client = openai.NewClientWithConfig(cfg)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AIService) Configured() bool {
	return s.client != nil
}

// SetBatchPause changes the pause used by later GenerateProjectImages calls.
// Not safe to call while a batch is running.
func (s *AIService) SetBatchPause(d time.Duration) {
	s.batchPause = d
}

// GenerateImage asks dall-e-3 for one illustration and returns its URL.
func (s *AIService) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", ErrAIServiceNotConfigured
	}

	resp, err := s.client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          openai.CreateImageModelDallE3,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		Quality:        openai.CreateImageQualityStandard,
		Style:          openai.CreateImageStyleNatural,
		ResponseFormat: openai.CreateImageResponseFormatURL,
	})
	if err != nil {
		return "", classifyImageError(err)
	}

	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", fmt.Errorf("%w: no image URL in response", ErrImageGenerationFailed)
	}
	return resp.Data[0].URL, nil
}

func classifyImageError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		code := apiErrorCode(apiErr)
		switch {
		case code == openAICodeInsufficientQuota || apiErr.Type == openAICodeInsufficientQuota:
			return fmt.Errorf("%w: %s", ErrImageQuotaExceeded, apiErr.Message)
		case code == openAICodeInvalidAPIKey:
			return fmt.Errorf("%w: %s", ErrImageInvalidAPIKey, apiErr.Message)
		case code == openAICodeContentPolicy:
			return fmt.Errorf("%w: %s", ErrImageContentPolicy, apiErr.Message)
		}
	}
	return fmt.Errorf("%w: %v", ErrImageGenerationFailed, err)
}

func apiErrorCode(apiErr *openai.APIError) string {
	switch c := apiErr.Code.(type) {
	case nil:
		return ""
	case string:
		return c
	default:
		return fmt.Sprint(c)
	}
}

// AnalyzeProject asks gpt-4o for a category, image prompt and description.
// Any failure degrades to the keyword fallback, so it never returns an error.
func (s *AIService) AnalyzeProject(ctx context.Context, name, description, readme string) ProjectAnalysis {
	analysis, err := s.analyzeRemote(ctx, name, description, readme)
	if err != nil {
		if !errors.Is(err, ErrAIServiceNotConfigured) {
			slog.Warn("project analysis failed, using keyword fallback", "project", name, "error", err)
		}
		return fallbackAnalysis(name, description, readme)
	}
	return *analysis
}

func (s *AIService) analyzeRemote(ctx context.Context, name, description, readme string) (*ProjectAnalysis, error) {
	if s.client == nil {
		return nil, ErrAIServiceNotConfigured
	}

	readmeSnippet := "No README available"
	if readme != "" {
		readmeSnippet = utils.Truncate(readme, constants.ReadmePromptMaxChars) + "..."
	}
	prompt := fmt.Sprintf(`Analyze this software project and respond with a JSON object.

Project name: %s
Description: %s
README excerpt:
%s

Return JSON with exactly these fields:
- "category": one of "web", "ai", "mobile", "games"
- "imagePrompt": a prompt for a clean, modern illustration of the project (no text in the image)
- "enhancedDescription": a concise, professional one or two sentence description`,
		name, utils.FirstNonEmpty(description, "No description provided"), readmeSnippet)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an expert software project analyst. Respond with JSON only.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
			MaxTokens:   constants.AnalysisMaxTokens,
			Temperature: constants.AnalysisTemperature,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := resp.Choices[0].Message.Content

	var analysis ProjectAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	analysis.Category = strings.ToLower(strings.TrimSpace(analysis.Category))
	analysis.ImagePrompt = strings.TrimSpace(analysis.ImagePrompt)
	analysis.EnhancedDescription = strings.TrimSpace(analysis.EnhancedDescription)
	if analysis.Category == "" || analysis.ImagePrompt == "" || analysis.EnhancedDescription == "" {
		return nil, fmt.Errorf("incomplete AI response: %s", content)
	}
	if !models.IsClassifiableCategory(analysis.Category) {
		analysis.Category = models.CategoryWeb
	}
	return &analysis, nil
}

func fallbackAnalysis(name, description, readme string) ProjectAnalysis {
	category := ClassifyText(name + " " + description + " " + readme)
	return ProjectAnalysis{
		Category:            category,
		ImagePrompt:         DefaultImagePrompt(category),
		EnhancedDescription: utils.FirstNonEmpty(description, fmt.Sprintf("A %s project named %s", category, name)),
	}
}

// DefaultImagePrompt is the templated prompt used when no AI analysis is available.
func DefaultImagePrompt(category string) string {
	return fmt.Sprintf("A modern, clean illustration representing a %s project with gradient background and professional design", category)
}

// GenerateProjectImages illustrates each project in turn, pausing between
// requests. A failed generation yields a nil URL for that project.
func (s *AIService) GenerateProjectImages(ctx context.Context, projects []ImageRequest) []ImageResult {
	results := make([]ImageResult, 0, len(projects))
	for i, p := range projects {
		if i > 0 && s.batchPause > 0 {
			select {
			case <-ctx.Done():
				return append(results, unfinished(projects[i:])...)
			case <-time.After(s.batchPause):
			}
		}

		prompt := fmt.Sprintf("%s. Project: %s. %s",
			DefaultImagePrompt(utils.FirstNonEmpty(p.Category, models.CategoryWeb)), p.Name, p.Description)
		url, err := s.GenerateImage(ctx, prompt)
		if err != nil {
			slog.Warn("failed to generate image", "project", p.Name, "error", err)
			results = append(results, ImageResult{Name: p.Name})
			continue
		}
		results = append(results, ImageResult{Name: p.Name, ImageURL: &url})
	}
	return results
}

func unfinished(projects []ImageRequest) []ImageResult {
	out := make([]ImageResult, len(projects))
	for i, p := range projects {
		out[i] = ImageResult{Name: p.Name}
	}
	return out
}
