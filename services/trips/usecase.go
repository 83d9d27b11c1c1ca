package trips

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/models"
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// TripUC drives a trip through the approval workflow
type TripUC interface {
	SubmitTrip(ctx context.Context, requester models.Identity, req *models.SubmitTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, caller models.Identity, id uuid.UUID) (*models.Trip, error)
	ListMyTrips(ctx context.Context, caller models.Identity) ([]*models.Trip, error)
	CancelTrip(ctx context.Context, caller models.Identity, id uuid.UUID) (*models.Trip, error)

	// manager links
	PreviewByToken(ctx context.Context, token string) (*models.ApprovalPreview, error)
	DecideByToken(ctx context.Context, token string, req *models.ManagerDecisionRequest) (*models.ManagerDecision, error)
	RejectByToken(ctx context.Context, token string, req *models.ManagerDecisionRequest) (*models.ManagerDecision, error)

	// administration
	AdminOverride(ctx context.Context, admin models.Identity, id uuid.UUID, req *models.AdminOverrideRequest) (*models.Trip, error)
	Escalate(ctx context.Context, admin models.Identity, id uuid.UUID, req *models.EscalateRequest) (*models.Trip, error)
	SweepExpired(ctx context.Context) (*models.SweepResult, error)

	// used by join approval to create a trip inside its own transaction
	PrepareTrip(ctx context.Context, requester models.Identity, req *models.SubmitTripRequest) (*models.Trip, error)
	AnnounceTrip(ctx context.Context, trip *models.Trip)
}
