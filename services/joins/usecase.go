package joins

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/models"
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// JoinUC handles requests to ride along on an approved trip
type JoinUC interface {
	RequestJoin(ctx context.Context, requester models.Identity, tripID uuid.UUID, req *models.JoinTripRequest) (*models.JoinRequest, error)
	ApproveJoinRequest(ctx context.Context, admin models.Identity, id uuid.UUID, req *models.JoinDecisionRequest) (*models.JoinApproval, error)
	RejectJoinRequest(ctx context.Context, admin models.Identity, id uuid.UUID, req *models.JoinDecisionRequest) (*models.JoinRequest, error)
	CancelJoinRequest(ctx context.Context, requester models.Identity, id uuid.UUID) (*models.JoinRequest, error)
	ListJoinRequests(ctx context.Context, status models.JoinRequestStatus) ([]*models.JoinRequest, error)
	PurgeDecided(ctx context.Context, olderThan time.Duration) (int64, error)
}
