package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/models"
)

// seatUsage is how many seats of a vehicle are already spoken for
type seatUsage struct {
	occupancy int
	joins     int
	capacity  int
	members   []*models.Trip
}

func (s seatUsage) current() int {
	return s.occupancy + s.joins
}

// seats counts the bookings sharing trip's vehicle. A trip promoted into an
// approved group shares it with every other member.
func (uc *JoinUC) seats(ctx context.Context, trip *models.Trip) (seatUsage, error) {
	usage := seatUsage{capacity: trip.VehicleType.PassengerCapacity(), members: []*models.Trip{trip}}

	if trip.OptimizedGroupID != nil {
		members, err := uc.joinRepo.ListGroupTrips(ctx, *trip.OptimizedGroupID)
		if err != nil {
			return usage, err
		}
		if len(members) > 0 {
			usage.members = members
		}
	}

	ids := make([]uuid.UUID, 0, len(usage.members))
	for _, member := range usage.members {
		// a proposed group has not merged any vehicles yet
		if member.ID != trip.ID && trip.Status != models.TripStatusOptimized {
			continue
		}
		usage.occupancy += member.Occupancy()
		ids = append(ids, member.ID)
	}

	joined, err := uc.joinRepo.CountApprovedJoins(ctx, ids)
	if err != nil {
		return usage, err
	}
	usage.joins = joined
	return usage, nil
}

// checkCapacity fails when one more passenger would not fit
func (s seatUsage) checkCapacity() error {
	if s.current()+1 > s.capacity {
		return apperror.CapacityExceededError{Current: s.current(), Requested: 1, Capacity: s.capacity}
	}
	return nil
}
