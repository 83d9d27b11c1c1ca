package optimization

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// OptimizationRepo persists consolidation groups and their staged trips
type OptimizationRepo interface {
	ListEligibleTrips(ctx context.Context) ([]*models.Trip, error)
	GetTripsForUpdate(ctx context.Context, ids []uuid.UUID) ([]*models.Trip, error)
	CountApprovedJoins(ctx context.Context, tripIDs []uuid.UUID) (int, error)
	CreateGroup(ctx context.Context, group *models.OptimizationGroup) error
	GetGroupByID(ctx context.Context, id uuid.UUID) (*models.OptimizationGroup, error)
	GetGroupForUpdate(ctx context.Context, id uuid.UUID) (*models.OptimizationGroup, error)
	ListGroups(ctx context.Context, status models.GroupStatus) ([]*models.OptimizationGroup, error)
	UpdateGroupDecision(ctx context.Context, group *models.OptimizationGroup) error
	CreateTempTrips(ctx context.Context, trips []*models.Trip) error
	ListTempTrips(ctx context.Context, groupID uuid.UUID) ([]*models.Trip, error)
	DeleteTempTrips(ctx context.Context, groupID uuid.UUID) (int64, error)
	SetTripGroup(ctx context.Context, ids []uuid.UUID, groupID uuid.UUID) error
	PromoteTrip(ctx context.Context, trip *models.Trip) error
	ResetToSolo(ctx context.Context, ids []uuid.UUID, groupID uuid.UUID) error
}
