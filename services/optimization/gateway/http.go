package gateway

import (
	"context"
	"fmt"

	httpclient "github.com/piresc/nebengdinas/internal/pkg/http"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/utils"
)

const suggestPath = "/suggestions"

// suggestionResponse accepts either structured groups or free text that
// still has to be parsed
type suggestionResponse struct {
	Groups []models.Suggestion `json:"groups"`
	Text   string              `json:"text"`
}

// HTTPSuggester asks a JSON endpoint for groupings
type HTTPSuggester struct {
	client *httpclient.Client
}

// NewHTTPSuggester creates a suggestion source over the resilient client
func NewHTTPSuggester(client *httpclient.Client) *HTTPSuggester {
	return &HTTPSuggester{client: client}
}

// Suggest posts the trips and limits and validates the answer
func (s *HTTPSuggester) Suggest(ctx context.Context, trips []*models.Trip, constraints models.SuggestionConstraints) ([]models.Suggestion, error) {
	var resp suggestionResponse
	if err := s.client.PostJSON(ctx, suggestPath, newSuggestionRequest(trips, constraints), &resp); err != nil {
		return nil, fmt.Errorf("suggestion endpoint failed: %w", err)
	}

	if len(resp.Groups) == 0 && resp.Text != "" {
		return ParseSuggestions(resp.Text)
	}
	if err := utils.ValidateStruct(suggestionPayload{Groups: resp.Groups}); err != nil {
		return nil, fmt.Errorf("suggestion failed schema validation: %w", err)
	}
	return resp.Groups, nil
}
