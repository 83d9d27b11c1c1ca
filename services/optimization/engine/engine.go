// Package engine groups approved trips that share a date and route into
// single-vehicle consolidation proposals.
package engine

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
)

// Suggester is an optional external source of candidate groupings
type Suggester interface {
	Suggest(ctx context.Context, trips []*models.Trip, constraints models.SuggestionConstraints) ([]models.Suggestion, error)
}

// Engine evaluates candidate groups against the configured limits
type Engine struct {
	cfg       models.OptimizationConfig
	loc       *time.Location
	suggester Suggester
}

// New creates an engine. A nil location means UTC; a nil suggester
// disables external suggestions.
func New(cfg models.OptimizationConfig, loc *time.Location, suggester Suggester) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{cfg: cfg, loc: loc, suggester: suggester}
}

// Eligible reports whether a trip may be fed to the engine
func Eligible(trip *models.Trip) bool {
	if trip.DataType != models.DataTypeRaw || trip.OptimizedGroupID != nil {
		return false
	}
	return trip.Status == models.TripStatusApproved || trip.Status == models.TripStatusAutoApproved
}

// Key returns the grouping key: departure date in the engine's zone plus the
// normalised route
func (e *Engine) Key(trip *models.Trip) string {
	return trip.DepartureAt.In(e.loc).Format("2006-01-02") + "|" + normalize(trip.Origin) + "|" + normalize(trip.Destination)
}

func normalize(place string) string {
	return strings.Join(strings.Fields(strings.ToLower(place)), " ")
}

// Propose runs the heuristic and, when configured, the external source.
// Heuristic proposals come first; a member set already proposed is dropped.
func (e *Engine) Propose(ctx context.Context, trips []*models.Trip) []models.Proposal {
	eligible := make([]*models.Trip, 0, len(trips))
	for _, trip := range trips {
		if Eligible(trip) {
			eligible = append(eligible, trip)
		}
	}

	proposals := e.Heuristic(eligible)
	if e.suggester != nil && len(eligible) >= 2 {
		external, err := e.external(ctx, eligible)
		if err != nil {
			logger.WarnCtx(ctx, "External suggestions ignored", logger.Err(err))
		}
		proposals = append(proposals, external...)
	}
	return dedupe(proposals)
}

// Heuristic proposes one group per grouping key with at least two members
func (e *Engine) Heuristic(trips []*models.Trip) []models.Proposal {
	groups := map[string][]*models.Trip{}
	for _, trip := range trips {
		key := e.Key(trip)
		groups[key] = append(groups[key], trip)
	}
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var proposals []models.Proposal
	for _, key := range keys {
		members := groups[key]
		if len(members) < 2 {
			continue
		}
		proposal, err := e.Evaluate(members, models.ProposalSourceHeuristic)
		if err != nil {
			logger.Debug("Candidate group discarded",
				logger.String("key", key),
				logger.Int("members", len(members)),
				logger.Err(err))
			continue
		}
		proposals = append(proposals, proposal)
	}
	return proposals
}

// Evaluate checks the wait, capacity and savings limits for one member set
// and prices it. The vehicle is sized for every member's own passengers and
// the riders already joined onto them.
func (e *Engine) Evaluate(members []*models.Trip, source models.ProposalSource) (models.Proposal, error) {
	if len(members) < 2 {
		return models.Proposal{}, fmt.Errorf("a group needs at least two trips")
	}
	sorted := append([]*models.Trip(nil), members...)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].DepartureAt.Equal(sorted[j].DepartureAt) {
			return sorted[i].DepartureAt.Before(sorted[j].DepartureAt)
		}
		return sorted[i].ID.String() < sorted[j].ID.String()
	})

	proposed := meanDeparture(sorted)
	var maxWait time.Duration
	for _, trip := range sorted {
		if wait := absDuration(trip.DepartureAt.Sub(proposed)); wait > maxWait {
			maxWait = wait
		}
	}
	if maxWait > time.Duration(e.cfg.MaxWaitMinutes)*time.Minute {
		return models.Proposal{}, fmt.Errorf("wait of %s exceeds %d minutes", maxWait, e.cfg.MaxWaitMinutes)
	}

	passengers := 0
	distance := 0.0
	baseline := 0.0
	for _, trip := range sorted {
		passengers += trip.Seats()
		distance = math.Max(distance, trip.DistanceKm)
		baseline += trip.DistanceKm * e.cfg.RateFor(models.VehicleCar4)
	}
	vehicle, ok := models.VehicleForPassengers(passengers)
	if !ok {
		return models.Proposal{}, fmt.Errorf("%d passengers exceed every vehicle tier", passengers)
	}

	combined := distance * e.cfg.RateFor(vehicle)
	if baseline <= 0 {
		return models.Proposal{}, fmt.Errorf("baseline cost is zero")
	}
	savings := (baseline - combined) / baseline * 100
	if savings < e.cfg.MinSavingsPercent {
		return models.Proposal{}, fmt.Errorf("savings of %.1f%% below minimum %.1f%%", savings, e.cfg.MinSavingsPercent)
	}

	ids := make([]uuid.UUID, len(sorted))
	for i, trip := range sorted {
		ids[i] = trip.ID
	}
	return models.Proposal{
		MemberTripIDs:       ids,
		ProposedDepartureAt: proposed,
		VehicleType:         vehicle,
		PassengerTotal:      passengers,
		DistanceKm:          distance,
		BaselineCost:        baseline,
		CombinedCost:        combined,
		EstimatedSavings:    baseline - combined,
		SavingsPercent:      savings,
		MaxWaitMinutes:      maxWait.Minutes(),
		Source:              source,
	}, nil
}

// meanDeparture is the arithmetic mean of the departures, truncated to the minute
func meanDeparture(trips []*models.Trip) time.Time {
	base := trips[0].DepartureAt
	var offset time.Duration
	for _, trip := range trips {
		offset += trip.DepartureAt.Sub(base)
	}
	return base.Add(offset / time.Duration(len(trips))).Truncate(time.Minute)
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// memberKey identifies a member set regardless of order
func memberKey(ids []uuid.UUID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func dedupe(proposals []models.Proposal) []models.Proposal {
	seen := map[string]bool{}
	out := make([]models.Proposal, 0, len(proposals))
	for _, p := range proposals {
		key := memberKey(p.MemberTripIDs)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}
