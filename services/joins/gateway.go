package joins

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/pkg/notifier"
)

//go:generate mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks

// TripCreator creates the joining employee's own trip. PrepareTrip runs
// inside the caller's transaction; AnnounceTrip after it commits.
type TripCreator interface {
	PrepareTrip(ctx context.Context, requester models.Identity, req *models.SubmitTripRequest) (*models.Trip, error)
	AnnounceTrip(ctx context.Context, trip *models.Trip)
}

// Directory resolves employees and administrators
type Directory interface {
	GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	ListAdmins(ctx context.Context) ([]*models.Employee, error)
}

// Notifier sends templated mail after commit
type Notifier interface {
	Notify(ctx context.Context, name string, to, cc []string, data notifier.Data)
}

// JoinGW publishes join request events
type JoinGW interface {
	PublishJoinRequested(ctx context.Context, event models.JoinEvent) error
	PublishJoinApproved(ctx context.Context, event models.JoinEvent) error
	PublishJoinRejected(ctx context.Context, event models.JoinEvent) error
	PublishJoinCancelled(ctx context.Context, event models.JoinEvent) error
}
