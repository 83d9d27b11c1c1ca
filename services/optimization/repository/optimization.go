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

// GroupColumns is the select list matching models.OptimizationGroup
const GroupColumns = `id, member_trip_ids, proposed_departure_at, vehicle_type, passenger_total,
	distance_km, baseline_cost, combined_cost, estimated_savings, savings_percent, source,
	status, created_by, approved_by, decided_at, created_at, updated_at`

// OptimizationRepo implements the optimization repository interface
type OptimizationRepo struct {
	db *sqlx.DB
}

// NewOptimizationRepository creates a new optimization repository
func NewOptimizationRepository(db *sqlx.DB) *OptimizationRepo {
	return &OptimizationRepo{db: db}
}

func uuidArray(ids []uuid.UUID) interface{} {
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}
	return pq.Array(raw)
}

// ListEligibleTrips returns upcoming approved trips not yet in a group, each
// with the number of join requests already approved onto it
func (r *OptimizationRepo) ListEligibleTrips(ctx context.Context) ([]*models.Trip, error) {
	query := `
		SELECT ` + tripsrepo.TripColumns + `,
			(SELECT COUNT(*) FROM join_requests
				WHERE join_requests.trip_id = trips.id AND join_requests.status = 'approved') AS approved_joins
		FROM trips
		WHERE status = ANY($1)
			AND data_type = 'raw'
			AND optimized_group_id IS NULL
			AND departure_at > NOW()
		ORDER BY departure_at
	`
	statuses := pq.Array([]string{string(models.TripStatusApproved), string(models.TripStatusAutoApproved)})

	trips := []*models.Trip{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &trips, query, statuses); err != nil {
		return nil, fmt.Errorf("failed to list eligible trips: %w", err)
	}
	return trips, nil
}

// GetTripsForUpdate locks the live trips with the given ids. Rows are locked
// in id order.
func (r *OptimizationRepo) GetTripsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*models.Trip, error) {
	query := `
		SELECT ` + tripsrepo.TripColumns + `
		FROM trips
		WHERE id = ANY($1) AND data_type <> 'temp'
		ORDER BY id
		FOR UPDATE
	`
	trips := []*models.Trip{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &trips, query, uuidArray(ids)); err != nil {
		return nil, fmt.Errorf("failed to lock trips: %w", err)
	}
	return trips, nil
}

// CountApprovedJoins counts approved join requests across the given trips
func (r *OptimizationRepo) CountApprovedJoins(ctx context.Context, tripIDs []uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM join_requests WHERE trip_id = ANY($1) AND status = 'approved'`
	var count int
	if err := database.Conn(ctx, r.db).GetContext(ctx, &count, query, uuidArray(tripIDs)); err != nil {
		return 0, fmt.Errorf("failed to count approved joins: %w", err)
	}
	return count, nil
}

// CreateGroup inserts a new group
func (r *OptimizationRepo) CreateGroup(ctx context.Context, group *models.OptimizationGroup) error {
	now := time.Now()
	if group.ID == uuid.Nil {
		group.ID = uuid.New()
	}
	group.CreatedAt = now
	group.UpdatedAt = now

	query := `
		INSERT INTO optimization_groups (` + GroupColumns + `) VALUES (
			:id, :member_trip_ids, :proposed_departure_at, :vehicle_type, :passenger_total,
			:distance_km, :baseline_cost, :combined_cost, :estimated_savings, :savings_percent, :source,
			:status, :created_by, :approved_by, :decided_at, :created_at, :updated_at
		)
	`
	if _, err := database.Conn(ctx, r.db).NamedExecContext(ctx, query, group); err != nil {
		return fmt.Errorf("failed to insert optimization group: %w", err)
	}
	return nil
}

// GetGroupByID returns a group
func (r *OptimizationRepo) GetGroupByID(ctx context.Context, id uuid.UUID) (*models.OptimizationGroup, error) {
	return r.getGroup(ctx, `SELECT `+GroupColumns+` FROM optimization_groups WHERE id = $1`, id)
}

// GetGroupForUpdate returns a group and locks its row
func (r *OptimizationRepo) GetGroupForUpdate(ctx context.Context, id uuid.UUID) (*models.OptimizationGroup, error) {
	return r.getGroup(ctx, `SELECT `+GroupColumns+` FROM optimization_groups WHERE id = $1 FOR UPDATE`, id)
}

func (r *OptimizationRepo) getGroup(ctx context.Context, query string, id uuid.UUID) (*models.OptimizationGroup, error) {
	var group models.OptimizationGroup
	if err := database.Conn(ctx, r.db).GetContext(ctx, &group, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFoundError{Resource: "optimization group", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get optimization group: %w", err)
	}
	return &group, nil
}

// ListGroups returns groups, newest first. An empty status lists all.
func (r *OptimizationRepo) ListGroups(ctx context.Context, status models.GroupStatus) ([]*models.OptimizationGroup, error) {
	query := `SELECT ` + GroupColumns + ` FROM optimization_groups`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC`

	groups := []*models.OptimizationGroup{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &groups, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list optimization groups: %w", err)
	}
	return groups, nil
}

// UpdateGroupDecision records the decision on a group
func (r *OptimizationRepo) UpdateGroupDecision(ctx context.Context, group *models.OptimizationGroup) error {
	group.UpdatedAt = time.Now()

	query := `
		UPDATE optimization_groups SET
			status = :status,
			approved_by = :approved_by,
			decided_at = :decided_at,
			updated_at = :updated_at
		WHERE id = :id
	`
	res, err := database.Conn(ctx, r.db).NamedExecContext(ctx, query, group)
	if err != nil {
		return fmt.Errorf("failed to update optimization group: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperror.NotFoundError{Resource: "optimization group", ID: group.ID.String()}
	}
	return nil
}

// CreateTempTrips stages the per-member copies of a proposal
func (r *OptimizationRepo) CreateTempTrips(ctx context.Context, trips []*models.Trip) error {
	now := time.Now()
	conn := database.Conn(ctx, r.db)
	for _, trip := range trips {
		if trip.ID == uuid.Nil {
			trip.ID = uuid.New()
		}
		trip.DataType = models.DataTypeTemp
		trip.CreatedAt = now
		trip.UpdatedAt = now
		if _, err := conn.NamedExecContext(ctx, tripsrepo.InsertTripQuery, trip); err != nil {
			return fmt.Errorf("failed to insert temp trip: %w", err)
		}
	}
	return nil
}

// ListTempTrips returns the staged copies of a group
func (r *OptimizationRepo) ListTempTrips(ctx context.Context, groupID uuid.UUID) ([]*models.Trip, error) {
	query := `
		SELECT ` + tripsrepo.TripColumns + `
		FROM trips
		WHERE optimized_group_id = $1 AND data_type = 'temp'
	`
	trips := []*models.Trip{}
	if err := database.Conn(ctx, r.db).SelectContext(ctx, &trips, query, groupID); err != nil {
		return nil, fmt.Errorf("failed to list temp trips: %w", err)
	}
	return trips, nil
}

// DeleteTempTrips removes every staged copy of a group
func (r *OptimizationRepo) DeleteTempTrips(ctx context.Context, groupID uuid.UUID) (int64, error) {
	query := `DELETE FROM trips WHERE optimized_group_id = $1 AND data_type = 'temp'`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, query, groupID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete temp trips: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// SetTripGroup links ungrouped live trips to a group. Every id must be linked.
func (r *OptimizationRepo) SetTripGroup(ctx context.Context, ids []uuid.UUID, groupID uuid.UUID) error {
	query := `
		UPDATE trips SET optimized_group_id = $1, updated_at = $2
		WHERE id = ANY($3) AND data_type = 'raw' AND optimized_group_id IS NULL
	`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, query, groupID, time.Now(), uuidArray(ids))
	if err != nil {
		return fmt.Errorf("failed to link trips to group: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n != int64(len(ids)) {
		return apperror.ConflictError{
			Resource: "trip",
			Msg:      fmt.Sprintf("linked %d of %d trips; some already belong to a group", n, len(ids)),
		}
	}
	return nil
}

// PromoteTrip writes a consolidated schedule onto the live parent trip
func (r *OptimizationRepo) PromoteTrip(ctx context.Context, trip *models.Trip) error {
	trip.UpdatedAt = time.Now()

	query := `
		UPDATE trips SET
			departure_at = :departure_at,
			vehicle_type = :vehicle_type,
			actual_cost = :actual_cost,
			optimized_group_id = :optimized_group_id,
			notified = :notified,
			data_type = :data_type,
			status = :status,
			updated_at = :updated_at
		WHERE id = :id AND data_type = 'raw'
	`
	res, err := database.Conn(ctx, r.db).NamedExecContext(ctx, query, trip)
	if err != nil {
		return fmt.Errorf("failed to promote trip: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apperror.ConflictError{Resource: "trip", Msg: fmt.Sprintf("trip %s is no longer a live raw trip", trip.ID)}
	}
	return nil
}

// ResetToSolo returns the members of a rejected group to approved_solo
func (r *OptimizationRepo) ResetToSolo(ctx context.Context, ids []uuid.UUID, groupID uuid.UUID) error {
	query := `
		UPDATE trips SET status = $1, optimized_group_id = NULL, updated_at = $2
		WHERE id = ANY($3) AND optimized_group_id = $4 AND data_type <> 'temp'
	`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, query,
		string(models.TripStatusApprovedSolo), time.Now(), uuidArray(ids), groupID)
	if err != nil {
		return fmt.Errorf("failed to reset group members: %w", err)
	}
	return nil
}
