package joins

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// JoinRepo persists join requests and answers the seat and schedule
// questions asked before one is accepted
type JoinRepo interface {
	CreateJoinRequest(ctx context.Context, req *models.JoinRequest) error
	GetJoinRequestByID(ctx context.Context, id uuid.UUID) (*models.JoinRequest, error)
	GetJoinRequestForUpdate(ctx context.Context, id uuid.UUID) (*models.JoinRequest, error)
	ListJoinRequests(ctx context.Context, status models.JoinRequestStatus) ([]*models.JoinRequest, error)
	UpdateJoinDecision(ctx context.Context, req *models.JoinRequest) error
	HasOpenRequest(ctx context.Context, requesterID, tripID uuid.UUID) (bool, error)
	HasTravelBetween(ctx context.Context, requesterID uuid.UUID, from, to time.Time) (bool, error)
	ListGroupTrips(ctx context.Context, groupID uuid.UUID) ([]*models.Trip, error)
	CountApprovedJoins(ctx context.Context, tripIDs []uuid.UUID) (int, error)
	PurgeDecided(ctx context.Context, before time.Time) (int64, error)
}
