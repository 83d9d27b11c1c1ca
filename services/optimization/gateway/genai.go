package gateway

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"google.golang.org/genai"
)

const defaultGenAIModel = "gemini-2.0-flash"

// GenAISuggester asks a Gemini model for groupings
type GenAISuggester struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGenAISuggester creates a Gemini-backed suggestion source
func NewGenAISuggester(ctx context.Context, cfg models.SuggestionConfig) (*GenAISuggester, error) {
	if cfg.GenAIAPIKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GenAIAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return newGenAISuggester(client, cfg), nil
}

func newGenAISuggester(client *genai.Client, cfg models.SuggestionConfig) *GenAISuggester {
	model := cfg.GenAIModel
	if model == "" {
		model = defaultGenAIModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &GenAISuggester{client: client, model: model, timeout: timeout}
}

// Suggest sends the trips and limits to the model and parses its answer
func (s *GenAISuggester) Suggest(ctx context.Context, trips []*models.Trip, constraints models.SuggestionConstraints) ([]models.Suggestion, error) {
	prompt, err := buildPrompt(trips, constraints)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0),
	})
	if err != nil {
		return nil, fmt.Errorf("GenAI generate failed: %w", err)
	}

	suggestions, err := ParseSuggestions(resp.Text())
	if err != nil {
		return nil, err
	}
	logger.Info("GenAI suggestions received",
		logger.String("model", s.model),
		logger.Int("trips", len(trips)),
		logger.Int("groups", len(suggestions)))
	return suggestions, nil
}
