package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
)

// external asks the suggester for groupings and keeps only those that pass
// the same checks as heuristic groups
func (e *Engine) external(ctx context.Context, eligible []*models.Trip) ([]models.Proposal, error) {
	constraints := models.SuggestionConstraints{
		MaxWaitMinutes:    e.cfg.MaxWaitMinutes,
		MinSavingsPercent: e.cfg.MinSavingsPercent,
		MaxPassengers:     models.VehicleVan16.PassengerCapacity(),
	}
	suggestions, err := e.suggester.Suggest(ctx, eligible, constraints)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*models.Trip, len(eligible))
	for _, trip := range eligible {
		byID[trip.ID] = trip
	}

	var proposals []models.Proposal
	for i, suggestion := range suggestions {
		members, err := e.resolve(suggestion, byID)
		if err == nil {
			var proposal models.Proposal
			if proposal, err = e.Evaluate(members, models.ProposalSourceExternal); err == nil {
				proposals = append(proposals, proposal)
				continue
			}
		}
		logger.Debug("External suggestion rejected",
			logger.Int("index", i),
			logger.Strings("trip_ids", suggestion.TripIDs),
			logger.Err(err))
	}
	return proposals, nil
}

// resolve maps suggested ids to distinct known trips sharing one grouping key
func (e *Engine) resolve(suggestion models.Suggestion, byID map[uuid.UUID]*models.Trip) ([]*models.Trip, error) {
	if len(suggestion.TripIDs) < 2 {
		return nil, fmt.Errorf("suggestion has fewer than two trips")
	}
	seen := map[uuid.UUID]bool{}
	members := make([]*models.Trip, 0, len(suggestion.TripIDs))
	var key string
	for _, raw := range suggestion.TripIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid trip id %q", raw)
		}
		if seen[id] {
			return nil, fmt.Errorf("trip %s listed twice", id)
		}
		seen[id] = true

		trip, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("trip %s is unknown or not eligible", id)
		}
		if k := e.Key(trip); key == "" {
			key = k
		} else if k != key {
			return nil, fmt.Errorf("trips do not share a date and route")
		}
		members = append(members, trip)
	}
	return members, nil
}
