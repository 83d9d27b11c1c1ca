package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	tripsrepo "github.com/piresc/nebengdinas/services/trips/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var departure = time.Date(2026, 3, 10, 8, 20, 0, 0, time.UTC)

func setupOptimizationRepoTest(t *testing.T) (*OptimizationRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewOptimizationRepository(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func columns(list string) []string {
	var cols []string
	for _, c := range strings.Split(list, ",") {
		cols = append(cols, strings.TrimSpace(c))
	}
	return cols
}

func tripRow(id uuid.UUID, status models.TripStatus, dataType models.DataType, group *uuid.UUID) []driver.Value {
	var groupID interface{}
	if group != nil {
		groupID = group.String()
	}
	return []driver.Value{
		id.String(), uuid.New().String(), "rina@corp.id", "Rina", "Jakarta", "Bandung",
		150.0, departure, nil, "Audit", int64(1), string(status), "car_4",
		675000.0, nil, groupID, string(dataType), nil, false,
		nil, "", "approved", nil,
		nil, nil, nil, nil,
		nil, nil, false, departure, departure, departure,
	}
}

func groupRow(group *models.OptimizationGroup) []driver.Value {
	return []driver.Value{
		group.ID.String(), "{" + strings.Join(group.MemberTripIDs, ",") + "}", group.ProposedDepartureAt,
		string(group.VehicleType), int64(group.PassengerTotal), group.DistanceKm, group.BaselineCost,
		group.CombinedCost, group.EstimatedSavings, group.SavingsPercent, string(group.Source),
		string(group.Status), group.CreatedBy, nil, nil, departure, departure,
	}
}

func sampleGroup() *models.OptimizationGroup {
	return &models.OptimizationGroup{
		ID:                  uuid.New(),
		MemberTripIDs:       pq.StringArray{uuid.NewString(), uuid.NewString()},
		ProposedDepartureAt: departure,
		VehicleType:         models.VehicleCar4,
		PassengerTotal:      2,
		DistanceKm:          150,
		BaselineCost:        1350000,
		CombinedCost:        675000,
		EstimatedSavings:    675000,
		SavingsPercent:      50,
		Source:              models.ProposalSourceHeuristic,
		Status:              models.GroupStatusProposed,
		CreatedBy:           "ops@corp.id",
	}
}

func TestListEligibleTrips(t *testing.T) {
	repo, mock := setupOptimizationRepoTest(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .*\(SELECT COUNT\(\*\) FROM join_requests WHERE join_requests.trip_id = trips.id AND join_requests.status = 'approved'\) AS approved_joins FROM trips WHERE status = ANY\(\$1\) AND data_type = 'raw' AND optimized_group_id IS NULL`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(append(columns(tripsrepo.TripColumns), "approved_joins")).
			AddRow(append(tripRow(id, models.TripStatusApproved, models.DataTypeRaw, nil), int64(2))...))

	trips, err := repo.ListEligibleTrips(context.Background())

	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, id, trips[0].ID)
	assert.Equal(t, 2, trips[0].ApprovedJoins)
	assert.Equal(t, 3, trips[0].Seats())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountApprovedJoins(t *testing.T) {
	repo, mock := setupOptimizationRepoTest(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM join_requests WHERE trip_id = ANY\(\$1\) AND status = 'approved'`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(4)))

	count, err := repo.CountApprovedJoins(context.Background(), []uuid.UUID{uuid.New(), uuid.New()})

	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTripsForUpdate(t *testing.T) {
	repo, mock := setupOptimizationRepoTest(t)
	a, b := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT .* FROM trips WHERE id = ANY\(\$1\) AND data_type <> 'temp' ORDER BY id FOR UPDATE`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(columns(tripsrepo.TripColumns)).
			AddRow(tripRow(a, models.TripStatusApproved, models.DataTypeRaw, nil)...).
			AddRow(tripRow(b, models.TripStatusAutoApproved, models.DataTypeRaw, nil)...))

	trips, err := repo.GetTripsForUpdate(context.Background(), []uuid.UUID{a, b})

	require.NoError(t, err)
	assert.Len(t, trips, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGroup(t *testing.T) {
	repo, mock := setupOptimizationRepoTest(t)
	group := sampleGroup()
	group.ID = uuid.Nil

	mock.ExpectExec("INSERT INTO optimization_groups").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateGroup(context.Background(), group))
	assert.NotEqual(t, uuid.Nil, group.ID)
	assert.False(t, group.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGroupForUpdate(t *testing.T) {
	repo, mock := setupOptimizationRepoTest(t)
	group := sampleGroup()

	mock.ExpectQuery(`SELECT .* FROM optimization_groups WHERE id = \$1 FOR UPDATE`).
		WithArgs(group.ID).
		WillReturnRows(sqlmock.NewRows(columns(GroupColumns)).AddRow(groupRow(group)...))

	got, err := repo.GetGroupForUpdate(context.Background(), group.ID)

	require.NoError(t, err)
	assert.Equal(t, group.ID, got.ID)
	assert.Equal(t, group.MemberTripIDs, got.MemberTripIDs)
	assert.Len(t, got.MemberIDs(), 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGroupByID_NotFound(t *testing.T) {
	repo, mock := setupOptimizationRepoTest(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM optimization_groups WHERE id = \$1`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(columns(GroupColumns)))

	_, err := repo.GetGroupByID(context.Background(), id)

	assert.True(t, apperror.IsNotFound(err))
}

func TestListGroups(t *testing.T) {
	repo, mock := setupOptimizationRepoTest(t)
	group := sampleGroup()

	mock.ExpectQuery(`SELECT .* FROM optimization_groups WHERE status = \$1 ORDER BY created_at DESC`).
		WithArgs("proposed").
		WillReturnRows(sqlmock.NewRows(columns(GroupColumns)).AddRow(groupRow(group)...))
	mock.ExpectQuery(`SELECT .* FROM optimization_groups ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(columns(GroupColumns)))

	proposed, err := repo.ListGroups(context.Background(), models.GroupStatusProposed)
	require.NoError(t, err)
	assert.Len(t, proposed, 1)

	all, err := repo.ListGroups(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateGroupDecision(t *testing.T) {
	repo, mock := setupOptimizationRepoTest(t)
	group := sampleGroup()

	mock.ExpectExec("UPDATE optimization_groups SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE optimization_groups SET").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateGroupDecision(context.Background(), group))
	assert.True(t, apperror.IsNotFound(repo.UpdateGroupDecision(context.Background(), group)))
}

func TestCreateTempTrips(t *testing.T) {
	repo, mock := setupOptimizationRepoTest(t)
	parent := uuid.New()
	temps := []*models.Trip{{ParentTripID: &parent}, {ParentTripID: &parent}}

	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO trips").WillReturnError(errors.New("unique violation"))

	err := repo.CreateTempTrips(context.Background(), temps)

	assert.Error(t, err)
	assert.Equal(t, models.DataTypeTemp, temps[0].DataType)
	assert.NotEqual(t, uuid.Nil, temps[0].ID)
}

func TestTempTripsListAndDelete(t *testing.T) {
	repo, mock := setupOptimizationRepoTest(t)
	groupID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM trips WHERE optimized_group_id = \$1 AND data_type = 'temp'`).
		WithArgs(groupID).
		WillReturnRows(sqlmock.NewRows(columns(tripsrepo.TripColumns)).AddRow(tripRow(uuid.New(), models.TripStatusApproved, models.DataTypeTemp, &groupID)...))
	mock.ExpectExec(`DELETE FROM trips WHERE optimized_group_id = \$1 AND data_type = 'temp'`).
		WithArgs(groupID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	temps, err := repo.ListTempTrips(context.Background(), groupID)
	require.NoError(t, err)
	require.Len(t, temps, 1)
	assert.Equal(t, groupID, *temps[0].OptimizedGroupID)

	n, err := repo.DeleteTempTrips(context.Background(), groupID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetTripGroup(t *testing.T) {
	repo, mock := setupOptimizationRepoTest(t)
	groupID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	mock.ExpectExec(`UPDATE trips SET optimized_group_id = \$1`).
		WithArgs(groupID, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`UPDATE trips SET optimized_group_id = \$1`).
		WithArgs(groupID, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetTripGroup(context.Background(), ids, groupID))
	assert.True(t, apperror.IsConflict(repo.SetTripGroup(context.Background(), ids, groupID)))
}

func TestPromoteTrip(t *testing.T) {
	repo, mock := setupOptimizationRepoTest(t)
	trip := &models.Trip{ID: uuid.New(), Status: models.TripStatusOptimized, DataType: models.DataTypeFinal}

	mock.ExpectExec(`UPDATE trips SET .* WHERE id = \? AND data_type = 'raw'`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE trips SET .* WHERE id = \? AND data_type = 'raw'`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.PromoteTrip(context.Background(), trip))
	assert.True(t, apperror.IsConflict(repo.PromoteTrip(context.Background(), trip)))
}

func TestResetToSolo(t *testing.T) {
	repo, mock := setupOptimizationRepoTest(t)
	groupID := uuid.New()

	mock.ExpectExec(`UPDATE trips SET status = \$1, optimized_group_id = NULL`).
		WithArgs("approved_solo", sqlmock.AnyArg(), sqlmock.AnyArg(), groupID).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.ResetToSolo(context.Background(), []uuid.UUID{uuid.New(), uuid.New()}, groupID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
