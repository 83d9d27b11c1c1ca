package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/database"
	"github.com/piresc/nebengdinas/internal/pkg/models"
)

// TripColumns is the select list matching models.Trip
const TripColumns = `id, requester_id, requester_email, requester_name, origin, destination,
	distance_km, departure_at, return_at, purpose, passenger_count, status, vehicle_type,
	estimated_cost, actual_cost, optimized_group_id, data_type, parent_trip_id, is_urgent,
	manager_id, manager_email, manager_approval_status, manager_approval_token,
	manager_token_expires_at, manager_approved_by, manager_decided_at, rejection_reason,
	override_reason, escalation_target_id, notified, submitted_at, created_at, updated_at`

// InsertTripQuery is the named insert for one models.Trip
const InsertTripQuery = `
	INSERT INTO trips (` + TripColumns + `) VALUES (
		:id, :requester_id, :requester_email, :requester_name, :origin, :destination,
		:distance_km, :departure_at, :return_at, :purpose, :passenger_count, :status, :vehicle_type,
		:estimated_cost, :actual_cost, :optimized_group_id, :data_type, :parent_trip_id, :is_urgent,
		:manager_id, :manager_email, :manager_approval_status, :manager_approval_token,
		:manager_token_expires_at, :manager_approved_by, :manager_decided_at, :rejection_reason,
		:override_reason, :escalation_target_id, :notified, :submitted_at, :created_at, :updated_at
	)
`

// TripRepo implements the trip repository interface
type TripRepo struct {
	db *sqlx.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sqlx.DB) *TripRepo {
	return &TripRepo{db: db}
}

// CreateTrip inserts a new trip
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	now := time.Now()
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	if trip.DataType == "" {
		trip.DataType = models.DataTypeRaw
	}
	if trip.SubmittedAt.IsZero() {
		trip.SubmittedAt = now
	}
	trip.CreatedAt = now
	trip.UpdatedAt = now

	if _, err := database.Conn(ctx, r.db).NamedExecContext(ctx, InsertTripQuery, trip); err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

// GetTripByID returns a live trip
func (r *TripRepo) GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + TripColumns + ` FROM trips WHERE id = $1 AND data_type <> 'temp'`
	return r.getTrip(ctx, query, id)
}

// GetTripForUpdate returns a live trip and locks its row until the
// surrounding transaction ends
func (r *TripRepo) GetTripForUpdate(ctx context.Context, id uuid.UUID) (*models.Trip, error) {
	query := `SELECT ` + TripColumns + ` FROM trips WHERE id = $1 AND data_type <> 'temp' FOR UPDATE`
	return r.getTrip(ctx, query, id)
}

func (r *TripRepo) getTrip(ctx context.Context, query string, id uuid.UUID) (*models.Trip, error) {
	var trip models.Trip
	if err := database.Conn(ctx, r.db).GetContext(ctx, &trip, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFoundError{Resource: "trip", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// ListTripsByRequester returns the requester's trips, latest departure first
func (r *TripRepo) ListTripsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*models.Trip, error) {
	query := `
		SELECT ` + TripColumns + `
		FROM trips
		WHERE requester_id = $1 AND data_type <> 'temp'
		ORDER BY departure_at DESC
	`
	trips := []*models.Trip{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &trips, query, requesterID); err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

// ListOverduePending returns pending trips whose response deadline is at or before now
func (r *TripRepo) ListOverduePending(ctx context.Context, now time.Time) ([]*models.Trip, error) {
	query := `
		SELECT ` + TripColumns + `
		FROM trips
		WHERE status = ANY($1)
			AND data_type <> 'temp'
			AND manager_token_expires_at <= $2
		ORDER BY manager_token_expires_at
	`
	pending := pq.Array([]string{
		string(models.TripStatusPendingApproval),
		string(models.TripStatusPendingUrgent),
	})

	trips := []*models.Trip{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &trips, query, pending, now); err != nil {
		return nil, fmt.Errorf("failed to list overdue trips: %w", err)
	}
	return trips, nil
}

// UpdateApproval writes the approval workflow columns of trip
func (r *TripRepo) UpdateApproval(ctx context.Context, trip *models.Trip) error {
	trip.UpdatedAt = time.Now()

	query := `
		UPDATE trips SET
			status = :status,
			is_urgent = :is_urgent,
			manager_approval_status = :manager_approval_status,
			manager_approval_token = :manager_approval_token,
			manager_token_expires_at = :manager_token_expires_at,
			manager_approved_by = :manager_approved_by,
			manager_decided_at = :manager_decided_at,
			rejection_reason = :rejection_reason,
			override_reason = :override_reason,
			escalation_target_id = :escalation_target_id,
			updated_at = :updated_at
		WHERE id = :id AND data_type <> 'temp'
	`
	res, err := database.Conn(ctx, r.db).NamedExecContext(ctx, query, trip)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperror.NotFoundError{Resource: "trip", ID: trip.ID.String()}
	}
	return nil
}
