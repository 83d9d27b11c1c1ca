package trips

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

// TripRepo persists trips. Every method joins the transaction carried by
// ctx, if any. Reads never return temp records.
type TripRepo interface {
	CreateTrip(ctx context.Context, trip *models.Trip) error
	GetTripByID(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	GetTripForUpdate(ctx context.Context, id uuid.UUID) (*models.Trip, error)
	ListTripsByRequester(ctx context.Context, requesterID uuid.UUID) ([]*models.Trip, error)
	ListOverduePending(ctx context.Context, now time.Time) ([]*models.Trip, error)
	UpdateApproval(ctx context.Context, trip *models.Trip) error
}
