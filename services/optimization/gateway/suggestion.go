package gateway

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/utils"
)

// suggestionPayload is the schema every suggestion source must return
type suggestionPayload struct {
	Groups []models.Suggestion `json:"groups" validate:"dive"`
}

type promptTrip struct {
	ID          string    `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	DepartureAt time.Time `json:"departure_at"`
	Passengers  int       `json:"passengers"`
	DistanceKm  float64   `json:"distance_km"`
}

type suggestionRequest struct {
	Trips       []promptTrip                 `json:"trips"`
	Constraints models.SuggestionConstraints `json:"constraints"`
}

func newSuggestionRequest(trips []*models.Trip, constraints models.SuggestionConstraints) suggestionRequest {
	req := suggestionRequest{Trips: make([]promptTrip, 0, len(trips)), Constraints: constraints}
	for _, trip := range trips {
		req.Trips = append(req.Trips, promptTrip{
			ID:          trip.ID.String(),
			Origin:      trip.Origin,
			Destination: trip.Destination,
			DepartureAt: trip.DepartureAt,
			Passengers:  trip.Occupancy(),
			DistanceKm:  trip.DistanceKm,
		})
	}
	return req
}

const promptTemplate = `You group approved business trips so colleagues can share one vehicle.
Only group trips with the same departure date, origin and destination.
No member may wait more than %d minutes from the group's average departure.
A group may carry at most %d passengers and must save at least %.1f%% against separate cars.
Answer with JSON only, shaped as {"groups":[{"trip_ids":["<id>","<id>"],"reason":"<short>"}]}.
Return {"groups":[]} when nothing qualifies.

%s`

func buildPrompt(trips []*models.Trip, constraints models.SuggestionConstraints) (string, error) {
	body, err := json.MarshalIndent(newSuggestionRequest(trips, constraints), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal trips: %w", err)
	}
	return fmt.Sprintf(promptTemplate, constraints.MaxWaitMinutes, constraints.MaxPassengers, constraints.MinSavingsPercent, body), nil
}

// ParseSuggestions decodes a suggestion answer. Text that is not plain JSON
// is searched for a fenced json block, then for the first balanced object.
func ParseSuggestions(text string) ([]models.Suggestion, error) {
	candidates := []string{strings.TrimSpace(text), extractJSONBlock(text), extractJSONObject(text)}

	var lastErr error
	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		var payload suggestionPayload
		if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
			lastErr = err
			continue
		}
		if err := utils.ValidateStruct(payload); err != nil {
			return nil, fmt.Errorf("suggestion failed schema validation: %w", err)
		}
		return payload.Groups, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("empty answer")
	}
	return nil, fmt.Errorf("no JSON suggestion found: %w", lastErr)
}

// extractJSONBlock returns the body of the first ```json fenced block
func extractJSONBlock(s string) string {
	start := strings.Index(s, "```json")
	if start == -1 {
		return ""
	}
	rest := s[start+len("```json"):]
	end := strings.Index(rest, "```")
	if end == -1 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}

// extractJSONObject returns the first balanced {...} in s. Braces inside
// JSON strings are skipped.
func extractJSONObject(s string) string {
	start := strings.Index(s, "{")
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
