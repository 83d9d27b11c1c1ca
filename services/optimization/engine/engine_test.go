package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/services/optimization/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jakarta = time.FixedZone("WIB", 7*3600)

func testConfig() models.OptimizationConfig {
	return models.OptimizationConfig{
		MaxWaitMinutes:    30,
		MinSavingsPercent: 15,
		RateCar4PerKm:     4500,
		RateCar7PerKm:     6500,
		RateVan16PerKm:    11000,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, jakarta)
}

func approvedTrip(departure time.Time, origin, destination string, passengers int) *models.Trip {
	return &models.Trip{
		ID:             uuid.New(),
		Origin:         origin,
		Destination:    destination,
		DistanceKm:     150,
		DepartureAt:    departure,
		PassengerCount: passengers,
		Status:         models.TripStatusApproved,
		VehicleType:    models.VehicleCar4,
		DataType:       models.DataTypeRaw,
	}
}

func TestScenarioA_ThreeTripsOneCar(t *testing.T) {
	e := New(testConfig(), jakarta, nil)
	trips := []*models.Trip{
		approvedTrip(at(8, 40), "Jakarta", "Bandung", 1),
		approvedTrip(at(8, 0), "Jakarta", "Bandung", 1),
		approvedTrip(at(8, 20), "jakarta ", "BANDUNG", 1),
	}

	proposals := e.Propose(context.Background(), trips)

	require.Len(t, proposals, 1)
	p := proposals[0]
	assert.Equal(t, models.VehicleCar4, p.VehicleType)
	assert.True(t, at(8, 20).Equal(p.ProposedDepartureAt))
	assert.Equal(t, 3, p.PassengerTotal)
	assert.Equal(t, 3*150*4500.0, p.BaselineCost)
	assert.Equal(t, 150*4500.0, p.CombinedCost)
	assert.InDelta(t, 66.67, p.SavingsPercent, 0.01)
	assert.Equal(t, 20.0, p.MaxWaitMinutes)
	assert.Equal(t, models.ProposalSourceHeuristic, p.Source)
	assert.Equal(t, []uuid.UUID{trips[1].ID, trips[2].ID, trips[0].ID}, p.MemberTripIDs)
}

func TestScenarioA_RejectedBelowMinimumSavings(t *testing.T) {
	cfg := testConfig()
	cfg.MinSavingsPercent = 70
	e := New(cfg, jakarta, nil)

	proposals := e.Propose(context.Background(), []*models.Trip{
		approvedTrip(at(8, 0), "Jakarta", "Bandung", 1),
		approvedTrip(at(8, 20), "Jakarta", "Bandung", 1),
		approvedTrip(at(8, 40), "Jakarta", "Bandung", 1),
	})

	assert.Empty(t, proposals)
}

func TestEvaluate_Limits(t *testing.T) {
	e := New(testConfig(), jakarta, nil)

	tests := []struct {
		name    string
		members []*models.Trip
		vehicle models.VehicleType
		wantErr string
	}{
		{
			name:    "wait too long",
			members: []*models.Trip{approvedTrip(at(8, 0), "A", "B", 1), approvedTrip(at(9, 10), "A", "B", 1)},
			wantErr: "exceeds 30 minutes",
		},
		{
			name:    "upsized to car_7",
			members: []*models.Trip{approvedTrip(at(8, 0), "A", "B", 2), approvedTrip(at(8, 10), "A", "B", 3)},
			vehicle: models.VehicleCar7,
		},
		{
			name:    "van costs more than two cars",
			members: []*models.Trip{approvedTrip(at(8, 0), "A", "B", 4), approvedTrip(at(8, 10), "A", "B", 4)},
			wantErr: "below minimum",
		},
		{
			name:    "no vehicle big enough",
			members: []*models.Trip{approvedTrip(at(8, 0), "A", "B", 10), approvedTrip(at(8, 10), "A", "B", 6)},
			wantErr: "exceed every vehicle tier",
		},
		{
			name:    "single trip",
			members: []*models.Trip{approvedTrip(at(8, 0), "A", "B", 1)},
			wantErr: "at least two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := e.Evaluate(tt.members, models.ProposalSourceHeuristic)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.vehicle, p.VehicleType)
		})
	}
}

func TestEvaluate_UsesLongestDistance(t *testing.T) {
	e := New(testConfig(), jakarta, nil)
	short := approvedTrip(at(8, 0), "A", "B", 1)
	short.DistanceKm = 100
	long := approvedTrip(at(8, 15), "A", "B", 1)
	long.DistanceKm = 120

	p, err := e.Evaluate([]*models.Trip{short, long}, models.ProposalSourceHeuristic)

	require.NoError(t, err)
	assert.Equal(t, 120.0, p.DistanceKm)
	assert.Equal(t, 220*4500.0, p.BaselineCost)
	assert.Equal(t, 120*4500.0, p.CombinedCost)
	assert.True(t, at(8, 7).Equal(p.ProposedDepartureAt))
	assert.Equal(t, p.CombinedCost/2, p.PerMemberCost())
}

func TestEvaluate_CountsJoinedRiders(t *testing.T) {
	e := New(testConfig(), jakarta, nil)
	host := approvedTrip(at(8, 0), "A", "B", 1)
	host.ApprovedJoins = 2
	other := approvedTrip(at(8, 10), "A", "B", 1)

	p, err := e.Evaluate([]*models.Trip{host, other}, models.ProposalSourceHeuristic)

	require.NoError(t, err)
	assert.Equal(t, models.VehicleCar7, p.VehicleType)
	assert.Equal(t, 4, p.PassengerTotal)
	assert.Equal(t, 150*6500.0, p.CombinedCost)
}

func TestPropose_FullCar7IsNotDowngraded(t *testing.T) {
	e := New(testConfig(), jakarta, nil)
	host := approvedTrip(at(8, 0), "Jakarta", "Bandung", 1)
	host.VehicleType = models.VehicleCar7
	host.ApprovedJoins = 5
	other := approvedTrip(at(8, 15), "Jakarta", "Bandung", 1)

	// seven seats only fit a van, which costs more than the two trips alone
	proposals := e.Propose(context.Background(), []*models.Trip{host, other})

	assert.Empty(t, proposals)
}

func TestHeuristic_GroupsByDateAndRoute(t *testing.T) {
	e := New(testConfig(), jakarta, nil)
	nextDay := approvedTrip(at(8, 0).Add(24*time.Hour), "Jakarta", "Bandung", 1)
	otherRoute := approvedTrip(at(8, 0), "Jakarta", "Bogor", 1)
	// 23:30 UTC on the 9th is 06:30 on the 10th in Jakarta
	crossesMidnight := approvedTrip(time.Date(2026, 3, 9, 23, 30, 0, 0, time.UTC), "Jakarta", "Bandung", 1)
	sameDay := approvedTrip(at(6, 45), "Jakarta", "Bandung", 1)

	proposals := e.Heuristic([]*models.Trip{nextDay, otherRoute, crossesMidnight, sameDay})

	require.Len(t, proposals, 1)
	assert.ElementsMatch(t, []uuid.UUID{crossesMidnight.ID, sameDay.ID}, proposals[0].MemberTripIDs)
}

func TestEligible(t *testing.T) {
	group := uuid.New()
	tests := []struct {
		name string
		mut  func(*models.Trip)
		want bool
	}{
		{"approved", func(*models.Trip) {}, true},
		{"auto approved", func(tr *models.Trip) { tr.Status = models.TripStatusAutoApproved }, true},
		{"approved solo stays out", func(tr *models.Trip) { tr.Status = models.TripStatusApprovedSolo }, false},
		{"pending", func(tr *models.Trip) { tr.Status = models.TripStatusPendingApproval }, false},
		{"already grouped", func(tr *models.Trip) { tr.OptimizedGroupID = &group }, false},
		{"temp copy", func(tr *models.Trip) { tr.DataType = models.DataTypeTemp }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := approvedTrip(at(8, 0), "A", "B", 1)
			tt.mut(trip)
			assert.Equal(t, tt.want, Eligible(trip))
		})
	}
}

func TestPropose_ExternalSuggestionsRevalidated(t *testing.T) {
	ctrl := gomock.NewController(t)
	suggester := mocks.NewMockSuggestionSource(ctrl)
	e := New(testConfig(), jakarta, suggester)

	a := approvedTrip(at(8, 0), "Jakarta", "Bandung", 1)
	b := approvedTrip(at(8, 10), "Jakarta", "Bandung", 1)
	c := approvedTrip(at(8, 20), "Jakarta", "Bandung", 1)
	d := approvedTrip(at(8, 0), "Jakarta", "Bogor", 1)
	solo := approvedTrip(at(8, 5), "Jakarta", "Bandung", 1)
	solo.Status = models.TripStatusApprovedSolo

	suggester.EXPECT().Suggest(gomock.Any(), gomock.Len(4), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []*models.Trip, constraints models.SuggestionConstraints) ([]models.Suggestion, error) {
			assert.Equal(t, 30, constraints.MaxWaitMinutes)
			assert.Equal(t, 15, constraints.MaxPassengers)
			return []models.Suggestion{
				{TripIDs: []string{c.ID.String(), a.ID.String(), b.ID.String()}},
				{TripIDs: []string{a.ID.String(), b.ID.String()}},
				{TripIDs: []string{a.ID.String(), d.ID.String()}},
				{TripIDs: []string{a.ID.String(), solo.ID.String()}},
				{TripIDs: []string{b.ID.String(), b.ID.String()}},
				{TripIDs: []string{"not-a-uuid", a.ID.String()}},
			}, nil
		})

	proposals := e.Propose(context.Background(), []*models.Trip{a, b, c, d, solo})

	require.Len(t, proposals, 2)
	assert.Equal(t, models.ProposalSourceHeuristic, proposals[0].Source)
	assert.Len(t, proposals[0].MemberTripIDs, 3)
	assert.Equal(t, models.ProposalSourceExternal, proposals[1].Source)
	assert.ElementsMatch(t, []uuid.UUID{a.ID, b.ID}, proposals[1].MemberTripIDs)
}

func TestPropose_ExternalFailureKeepsHeuristic(t *testing.T) {
	ctrl := gomock.NewController(t)
	suggester := mocks.NewMockSuggestionSource(ctrl)
	e := New(testConfig(), jakarta, suggester)

	suggester.EXPECT().Suggest(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("model overloaded"))

	proposals := e.Propose(context.Background(), []*models.Trip{
		approvedTrip(at(8, 0), "Jakarta", "Bandung", 1),
		approvedTrip(at(8, 10), "Jakarta", "Bandung", 1),
	})

	require.Len(t, proposals, 1)
	assert.Equal(t, models.ProposalSourceHeuristic, proposals[0].Source)
}
