package trips

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/approvaltoken"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/pkg/notifier"
)

//go:generate mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks

// TokenService issues and checks manager approval links
type TokenService interface {
	Issue(tripID uuid.UUID, expiresAt time.Time) (approvaltoken.Issued, error)
	Sign(tripID uuid.UUID, tokenID string, expiresAt time.Time) (approvaltoken.Issued, error)
	Links(issued approvaltoken.Issued) map[string]string
	Verify(ctx context.Context, token string) (approvaltoken.Claims, error)
	MarkUsed(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// Notifier sends templated email after commit. It never fails the caller.
type Notifier interface {
	Notify(ctx context.Context, name string, to, cc []string, data notifier.Data)
}

// Directory resolves employees and their reporting line
type Directory interface {
	GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	EscalationTarget(ctx context.Context, managerID uuid.UUID) (*models.Employee, error)
	ListAdmins(ctx context.Context) ([]*models.Employee, error)
}

// TripGW publishes trip events
type TripGW interface {
	PublishTripSubmitted(ctx context.Context, event models.TripEvent) error
	PublishTripStatusChanged(ctx context.Context, event models.TripEvent) error
}
