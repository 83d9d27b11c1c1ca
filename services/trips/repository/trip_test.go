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
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/database"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTripRepoTest(t *testing.T) (*TripRepo, *sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewTripRepository(db), db, mock
}

func tripColumnNames() []string {
	var cols []string
	for _, c := range strings.Split(TripColumns, ",") {
		cols = append(cols, strings.TrimSpace(c))
	}
	return cols
}

func tripRows(trips ...*models.Trip) *sqlmock.Rows {
	rows := sqlmock.NewRows(tripColumnNames())
	for _, tr := range trips {
		var token, expires interface{}
		if tr.ManagerApprovalToken != nil {
			token = *tr.ManagerApprovalToken
		}
		if tr.ManagerTokenExpiresAt != nil {
			expires = *tr.ManagerTokenExpiresAt
		}
		var managerID interface{}
		if tr.ManagerID != nil {
			managerID = tr.ManagerID.String()
		}
		rows.AddRow([]driver.Value{
			tr.ID.String(), tr.RequesterID.String(), tr.RequesterEmail, tr.RequesterName, tr.Origin, tr.Destination,
			tr.DistanceKm, tr.DepartureAt, nil, tr.Purpose, int64(tr.PassengerCount), string(tr.Status), string(tr.VehicleType),
			tr.EstimatedCost, nil, nil, string(tr.DataType), nil, tr.IsUrgent,
			managerID, tr.ManagerEmail, string(tr.ManagerApprovalStatus), token,
			expires, nil, nil, nil,
			nil, nil, tr.Notified, tr.SubmittedAt, tr.CreatedAt, tr.UpdatedAt,
		}...)
	}
	return rows
}

func sampleTrip() *models.Trip {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	token := "tok-1"
	expires := now.Add(4 * time.Hour)
	managerID := uuid.New()
	return &models.Trip{
		ID:                    uuid.New(),
		RequesterID:           uuid.New(),
		RequesterEmail:        "rina@corp.id",
		RequesterName:         "Rina",
		Origin:                "Jakarta",
		Destination:           "Bandung",
		DistanceKm:            150,
		DepartureAt:           now.Add(20 * time.Hour),
		Purpose:               "Audit",
		PassengerCount:        1,
		Status:                models.TripStatusPendingUrgent,
		VehicleType:           models.VehicleCar4,
		EstimatedCost:         675000,
		DataType:              models.DataTypeRaw,
		IsUrgent:              true,
		ManagerID:             &managerID,
		ManagerEmail:          "boss@corp.id",
		ManagerApprovalStatus: models.ManagerApprovalPending,
		ManagerApprovalToken:  &token,
		ManagerTokenExpiresAt: &expires,
		SubmittedAt:           now,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

func TestCreateTrip(t *testing.T) {
	repo, _, mock := setupTripRepoTest(t)
	trip := sampleTrip()
	trip.ID = uuid.Nil
	trip.DataType = ""

	mock.ExpectExec("INSERT INTO trips").WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateTrip(context.Background(), trip)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, trip.ID)
	assert.Equal(t, models.DataTypeRaw, trip.DataType)
	assert.False(t, trip.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateTrip_Error(t *testing.T) {
	repo, _, mock := setupTripRepoTest(t)

	mock.ExpectExec("INSERT INTO trips").WillReturnError(errors.New("duplicate key"))

	err := repo.CreateTrip(context.Background(), sampleTrip())

	assert.ErrorContains(t, err, "failed to insert trip")
}

func TestGetTripByID(t *testing.T) {
	tests := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock, trip *models.Trip)
		assertFunc func(t *testing.T, got *models.Trip, err error, want *models.Trip)
	}{
		{
			name: "found",
			mockSetup: func(mock sqlmock.Sqlmock, trip *models.Trip) {
				mock.ExpectQuery("SELECT (.+) FROM trips WHERE id = \\$1 AND data_type <> 'temp'$").
					WithArgs(trip.ID).
					WillReturnRows(tripRows(trip))
			},
			assertFunc: func(t *testing.T, got *models.Trip, err error, want *models.Trip) {
				require.NoError(t, err)
				assert.Equal(t, want.ID, got.ID)
				assert.Equal(t, models.TripStatusPendingUrgent, got.Status)
				assert.Equal(t, "tok-1", *got.ManagerApprovalToken)
				assert.Equal(t, *want.ManagerID, *got.ManagerID)
			},
		},
		{
			name: "missing is not found",
			mockSetup: func(mock sqlmock.Sqlmock, trip *models.Trip) {
				mock.ExpectQuery("SELECT (.+) FROM trips WHERE id").
					WithArgs(trip.ID).
					WillReturnRows(sqlmock.NewRows(tripColumnNames()))
			},
			assertFunc: func(t *testing.T, got *models.Trip, err error, want *models.Trip) {
				assert.Nil(t, got)
				assert.True(t, apperror.IsNotFound(err))
			},
		},
		{
			name: "database error",
			mockSetup: func(mock sqlmock.Sqlmock, trip *models.Trip) {
				mock.ExpectQuery("SELECT (.+) FROM trips WHERE id").WillReturnError(errors.New("conn reset"))
			},
			assertFunc: func(t *testing.T, got *models.Trip, err error, want *models.Trip) {
				require.Error(t, err)
				assert.False(t, apperror.IsNotFound(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := setupTripRepoTest(t)
			trip := sampleTrip()
			tt.mockSetup(mock, trip)

			got, err := repo.GetTripByID(context.Background(), trip.ID)

			tt.assertFunc(t, got, err, trip)
		})
	}
}

func TestGetTripForUpdate_JoinsTransaction(t *testing.T) {
	repo, db, mock := setupTripRepoTest(t)
	trip := sampleTrip()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM trips WHERE id = \\$1 AND data_type <> 'temp' FOR UPDATE").
		WithArgs(trip.ID).
		WillReturnRows(tripRows(trip))
	mock.ExpectCommit()

	err := database.NewTransactor(db).WithinTx(context.Background(), func(ctx context.Context) error {
		got, err := repo.GetTripForUpdate(ctx, trip.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, trip.ID, got.ID)
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTripsByRequester(t *testing.T) {
	repo, _, mock := setupTripRepoTest(t)
	first, second := sampleTrip(), sampleTrip()
	second.RequesterID = first.RequesterID

	mock.ExpectQuery("SELECT (.+) FROM trips WHERE requester_id = \\$1").
		WithArgs(first.RequesterID).
		WillReturnRows(tripRows(first, second))

	got, err := repo.ListTripsByRequester(context.Background(), first.RequesterID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestListOverduePending(t *testing.T) {
	repo, _, mock := setupTripRepoTest(t)
	trip := sampleTrip()
	now := trip.ManagerTokenExpiresAt.Add(time.Minute)

	mock.ExpectQuery("SELECT (.+) FROM trips WHERE status = ANY\\(\\$1\\)").
		WithArgs(sqlmock.AnyArg(), now).
		WillReturnRows(tripRows(trip))

	got, err := repo.ListOverduePending(context.Background(), now)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, trip.ID, got[0].ID)
}

func TestUpdateApproval(t *testing.T) {
	repo, _, mock := setupTripRepoTest(t)
	trip := sampleTrip()

	mock.ExpectExec("UPDATE trips SET").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateApproval(context.Background(), trip))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateApproval_NoRowsIsNotFound(t *testing.T) {
	repo, _, mock := setupTripRepoTest(t)

	mock.ExpectExec("UPDATE trips SET").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateApproval(context.Background(), sampleTrip())

	assert.True(t, apperror.IsNotFound(err))
}
