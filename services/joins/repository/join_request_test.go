package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	tripsrepo "github.com/piresc/nebengdinas/services/trips/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var created = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func setupJoinRepoTest(t *testing.T) (*JoinRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	return NewJoinRepository(sqlx.NewDb(mockDB, "sqlmock")), mock
}

func columns(list string) []string {
	var cols []string
	for _, c := range strings.Split(list, ",") {
		cols = append(cols, strings.TrimSpace(c))
	}
	return cols
}

func joinRow(id, tripID uuid.UUID, status models.JoinRequestStatus) []driver.Value {
	return []driver.Value{
		id.String(), tripID.String(), uuid.New().String(), "dewi@corp.id", "Dewi", nil,
		"", "Same client visit", string(status), nil, nil, nil, nil,
		created, created,
	}
}

func TestJoinRepo_CreateJoinRequest(t *testing.T) {
	repo, mock := setupJoinRepoTest(t)
	req := &models.JoinRequest{TripID: uuid.New(), RequesterID: uuid.New(), Reason: "Same client visit", Status: models.JoinRequestPending}

	mock.ExpectExec("INSERT INTO join_requests").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateJoinRequest(context.Background(), req))
	assert.NotEqual(t, uuid.Nil, req.ID)
	assert.False(t, req.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJoinRepo_GetJoinRequestForUpdate(t *testing.T) {
	repo, mock := setupJoinRepoTest(t)
	id, tripID := uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM join_requests WHERE id = \\$1 FOR UPDATE").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(columns(JoinColumns)).AddRow(joinRow(id, tripID, models.JoinRequestPending)...))

	req, err := repo.GetJoinRequestForUpdate(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, req.ID)
	assert.Equal(t, tripID, req.TripID)
	assert.Equal(t, models.JoinRequestPending, req.Status)
	assert.Nil(t, req.ManagerID)
}

func TestJoinRepo_GetJoinRequestByID_NotFound(t *testing.T) {
	repo, mock := setupJoinRepoTest(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM join_requests WHERE id = \\$1").WithArgs(id).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetJoinRequestByID(context.Background(), id)

	assert.True(t, apperror.IsNotFound(err))
}

func TestJoinRepo_ListJoinRequests(t *testing.T) {
	repo, mock := setupJoinRepoTest(t)
	rows := sqlmock.NewRows(columns(JoinColumns)).
		AddRow(joinRow(uuid.New(), uuid.New(), models.JoinRequestPending)...).
		AddRow(joinRow(uuid.New(), uuid.New(), models.JoinRequestPending)...)

	mock.ExpectQuery("SELECT (.+) FROM join_requests WHERE status = \\$1 ORDER BY created_at").
		WithArgs(models.JoinRequestPending).
		WillReturnRows(rows)

	requests, err := repo.ListJoinRequests(context.Background(), models.JoinRequestPending)

	require.NoError(t, err)
	assert.Len(t, requests, 2)
}

func TestJoinRepo_UpdateJoinDecision(t *testing.T) {
	repo, mock := setupJoinRepoTest(t)
	req := &models.JoinRequest{ID: uuid.New(), Status: models.JoinRequestRejected}

	mock.ExpectExec("UPDATE join_requests SET").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateJoinDecision(context.Background(), req))

	mock.ExpectExec("UPDATE join_requests SET").WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.UpdateJoinDecision(context.Background(), req)
	assert.True(t, apperror.IsNotFound(err))
}

func TestJoinRepo_HasOpenRequest(t *testing.T) {
	repo, mock := setupJoinRepoTest(t)
	requester, trip := uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT EXISTS (.+) FROM join_requests WHERE requester_id = \\$1 AND trip_id = \\$2 AND status IN \\('pending', 'approved'\\)").
		WithArgs(requester, trip).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.HasOpenRequest(context.Background(), requester, trip)

	require.NoError(t, err)
	assert.True(t, exists)
}

func TestJoinRepo_HasTravelBetween(t *testing.T) {
	repo, mock := setupJoinRepoTest(t)
	requester := uuid.New()
	from := time.Date(2026, 3, 9, 17, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	mock.ExpectQuery("SELECT EXISTS (.+) FROM trips WHERE requester_id = \\$1 AND status = ANY\\(\\$2\\)").
		WithArgs(requester, sqlmock.AnyArg(), from, to).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.HasTravelBetween(context.Background(), requester, from, to)

	require.NoError(t, err)
	assert.False(t, exists)
}

func TestJoinRepo_ListGroupTrips(t *testing.T) {
	repo, mock := setupJoinRepoTest(t)
	groupID := uuid.New()
	now := created
	row := []driver.Value{
		uuid.New().String(), uuid.New().String(), "rina@corp.id", "Rina", "Jakarta", "Bandung",
		150.0, now, nil, "Audit", int64(2), "optimized", "car_4",
		675000.0, 337500.0, groupID.String(), "final", nil, false,
		nil, "", "approved", nil,
		nil, nil, nil, nil,
		nil, nil, true, now, now, now,
	}

	mock.ExpectQuery("SELECT (.+) FROM trips WHERE optimized_group_id = \\$1 AND data_type <> 'temp'").
		WithArgs(groupID).
		WillReturnRows(sqlmock.NewRows(columns(tripsrepo.TripColumns)).AddRow(row...))

	trips, err := repo.ListGroupTrips(context.Background(), groupID)

	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, 2, trips[0].PassengerCount)
	assert.Equal(t, groupID, *trips[0].OptimizedGroupID)
}

func TestJoinRepo_CountApprovedJoins(t *testing.T) {
	repo, mock := setupJoinRepoTest(t)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM join_requests WHERE trip_id = ANY\\(\\$1\\) AND status = 'approved'").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(2)))

	count, err := repo.CountApprovedJoins(context.Background(), []uuid.UUID{uuid.New(), uuid.New()})

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestJoinRepo_PurgeDecided(t *testing.T) {
	repo, mock := setupJoinRepoTest(t)
	cutoff := created.Add(-720 * time.Hour)

	mock.ExpectExec("DELETE FROM join_requests WHERE status IN \\('rejected', 'cancelled'\\) AND decided_at < \\$1").
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := repo.PurgeDecided(context.Background(), cutoff)

	require.NoError(t, err)
	assert.EqualValues(t, 4, n)
}

func TestJoinRepo_PurgeDecided_Error(t *testing.T) {
	repo, mock := setupJoinRepoTest(t)

	mock.ExpectExec("DELETE FROM join_requests").WillReturnError(errors.New("lock timeout"))

	_, err := repo.PurgeDecided(context.Background(), created)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to purge join requests")
}
