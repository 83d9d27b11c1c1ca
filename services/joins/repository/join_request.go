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
	tripsrepo "github.com/piresc/nebengdinas/services/trips/repository"
)

// JoinColumns is the select list matching models.JoinRequest
const JoinColumns = `id, trip_id, requester_id, requester_email, requester_name, manager_id,
	manager_email, reason, status, admin_notes, decided_by, decided_at, created_trip_id,
	created_at, updated_at`

// JoinRepo implements the join request repository interface
type JoinRepo struct {
	db *sqlx.DB
}

// NewJoinRepository creates a new join request repository
func NewJoinRepository(db *sqlx.DB) *JoinRepo {
	return &JoinRepo{db: db}
}

// CreateJoinRequest inserts a new request
func (r *JoinRepo) CreateJoinRequest(ctx context.Context, req *models.JoinRequest) error {
	now := time.Now()
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	req.CreatedAt = now
	req.UpdatedAt = now

	query := `
		INSERT INTO join_requests (` + JoinColumns + `) VALUES (
			:id, :trip_id, :requester_id, :requester_email, :requester_name, :manager_id,
			:manager_email, :reason, :status, :admin_notes, :decided_by, :decided_at, :created_trip_id,
			:created_at, :updated_at
		)
	`
	if _, err := database.Conn(ctx, r.db).NamedExecContext(ctx, query, req); err != nil {
		return fmt.Errorf("failed to insert join request: %w", err)
	}
	return nil
}

// GetJoinRequestByID returns one request
func (r *JoinRepo) GetJoinRequestByID(ctx context.Context, id uuid.UUID) (*models.JoinRequest, error) {
	return r.getRequest(ctx, `SELECT `+JoinColumns+` FROM join_requests WHERE id = $1`, id)
}

// GetJoinRequestForUpdate returns one request and locks its row
func (r *JoinRepo) GetJoinRequestForUpdate(ctx context.Context, id uuid.UUID) (*models.JoinRequest, error) {
	return r.getRequest(ctx, `SELECT `+JoinColumns+` FROM join_requests WHERE id = $1 FOR UPDATE`, id)
}

func (r *JoinRepo) getRequest(ctx context.Context, query string, id uuid.UUID) (*models.JoinRequest, error) {
	var req models.JoinRequest
	if err := database.Conn(ctx, r.db).GetContext(ctx, &req, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFoundError{Resource: "join_request", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}
	return &req, nil
}

// ListJoinRequests returns requests in the given status, oldest first
func (r *JoinRepo) ListJoinRequests(ctx context.Context, status models.JoinRequestStatus) ([]*models.JoinRequest, error) {
	query := `SELECT ` + JoinColumns + ` FROM join_requests WHERE status = $1 ORDER BY created_at`

	requests := []*models.JoinRequest{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &requests, query, status); err != nil {
		return nil, fmt.Errorf("failed to list join requests: %w", err)
	}
	return requests, nil
}

// UpdateJoinDecision writes the outcome and audit columns
func (r *JoinRepo) UpdateJoinDecision(ctx context.Context, req *models.JoinRequest) error {
	req.UpdatedAt = time.Now()

	query := `
		UPDATE join_requests SET
			status = :status,
			admin_notes = :admin_notes,
			decided_by = :decided_by,
			decided_at = :decided_at,
			created_trip_id = :created_trip_id,
			updated_at = :updated_at
		WHERE id = :id
	`
	res, err := database.Conn(ctx, r.db).NamedExecContext(ctx, query, req)
	if err != nil {
		return fmt.Errorf("failed to update join request: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperror.NotFoundError{Resource: "join_request", ID: req.ID.String()}
	}
	return nil
}

// HasOpenRequest reports whether the requester already has a pending or
// approved request for the trip
func (r *JoinRepo) HasOpenRequest(ctx context.Context, requesterID, tripID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM join_requests
			WHERE requester_id = $1 AND trip_id = $2 AND status IN ('pending', 'approved')
		)
	`
	var exists bool
	if err := database.Conn(ctx, r.db).GetContext(ctx, &exists, query, requesterID, tripID); err != nil {
		return false, fmt.Errorf("failed to check open join requests: %w", err)
	}
	return exists, nil
}

// HasTravelBetween reports whether the requester owns a trip cleared to
// travel departing in [from, to)
func (r *JoinRepo) HasTravelBetween(ctx context.Context, requesterID uuid.UUID, from, to time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM trips
			WHERE requester_id = $1
				AND status = ANY($2)
				AND data_type <> 'temp'
				AND departure_at >= $3 AND departure_at < $4
		)
	`
	cleared := pq.Array([]string{
		string(models.TripStatusApproved),
		string(models.TripStatusApprovedSolo),
		string(models.TripStatusAutoApproved),
		string(models.TripStatusOptimized),
	})

	var exists bool
	if err := database.Conn(ctx, r.db).GetContext(ctx, &exists, query, requesterID, cleared, from, to); err != nil {
		return false, fmt.Errorf("failed to check schedule: %w", err)
	}
	return exists, nil
}

// ListGroupTrips returns the live member trips of a consolidation group
func (r *JoinRepo) ListGroupTrips(ctx context.Context, groupID uuid.UUID) ([]*models.Trip, error) {
	query := `
		SELECT ` + tripsrepo.TripColumns + `
		FROM trips
		WHERE optimized_group_id = $1 AND data_type <> 'temp'
		ORDER BY id
	`
	trips := []*models.Trip{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &trips, query, groupID); err != nil {
		return nil, fmt.Errorf("failed to list group trips: %w", err)
	}
	return trips, nil
}

// CountApprovedJoins counts approved requests across the given trips
func (r *JoinRepo) CountApprovedJoins(ctx context.Context, tripIDs []uuid.UUID) (int, error) {
	ids := make([]string, len(tripIDs))
	for i, id := range tripIDs {
		ids[i] = id.String()
	}

	query := `SELECT COUNT(*) FROM join_requests WHERE trip_id = ANY($1) AND status = 'approved'`
	var count int
	if err := database.Conn(ctx, r.db).GetContext(ctx, &count, query, pq.Array(ids)); err != nil {
		return 0, fmt.Errorf("failed to count approved joins: %w", err)
	}
	return count, nil
}

// PurgeDecided deletes rejected and cancelled requests decided before the cutoff.
// Approved requests are kept since seat counts depend on them.
func (r *JoinRepo) PurgeDecided(ctx context.Context, before time.Time) (int64, error) {
	query := `
		DELETE FROM join_requests
		WHERE status IN ('rejected', 'cancelled') AND decided_at < $1
	`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to purge join requests: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to purge join requests: %w", err)
	}
	return n, nil
}
