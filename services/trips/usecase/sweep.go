package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/approval"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/pkg/notifier"
)

const sweepActor = "system:sweep"

// SweepExpired expires every pending trip past its response deadline.
// Running it again finds nothing new to do.
func (uc *TripUC) SweepExpired(ctx context.Context) (*models.SweepResult, error) {
	now := uc.now()
	overdue, err := uc.tripRepo.ListOverduePending(ctx, now)
	if err != nil {
		return nil, err
	}

	result := &models.SweepResult{Scanned: len(overdue), Expired: []uuid.UUID{}}
	var (
		admins       []string
		adminsLoaded bool
	)
	for _, candidate := range overdue {
		trip, from, err := uc.expire(ctx, candidate.ID, now)
		if err != nil {
			logger.ErrorCtx(ctx, "Failed to expire trip",
				logger.UUID("trip_id", candidate.ID),
				logger.Err(err))
			result.Failed = append(result.Failed, candidate.ID)
			continue
		}
		if trip == nil {
			continue
		}
		result.Expired = append(result.Expired, trip.ID)

		if !adminsLoaded {
			admins, adminsLoaded = uc.adminEmails(ctx), true
		}
		uc.notifier.Notify(ctx, notifier.TemplateTripExpired, []string{trip.RequesterEmail}, admins, notifier.Data{Trip: trip})
		uc.publishStatusChanged(ctx, trip, from, sweepActor)
	}

	logger.Info("Approval sweep finished",
		logger.Int("scanned", result.Scanned),
		logger.Int("expired", len(result.Expired)),
		logger.Int("failed", len(result.Failed)))
	return result, nil
}

// expire moves one trip to expired. A nil trip means it no longer needed it.
func (uc *TripUC) expire(ctx context.Context, id uuid.UUID, now time.Time) (*models.Trip, models.TripStatus, error) {
	var (
		trip *models.Trip
		from models.TripStatus
	)
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		t, err := uc.tripRepo.GetTripForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !t.Status.IsPending() || t.ManagerTokenExpiresAt == nil || t.ManagerTokenExpiresAt.After(now) {
			return nil
		}
		next, err := approval.Next(t.Status, approval.EventTimeout, t.IsUrgent)
		if err != nil {
			return err
		}

		from = t.Status
		t.Status = next
		t.ManagerApprovalStatus = models.ManagerApprovalExpired
		if err := uc.tripRepo.UpdateApproval(ctx, t); err != nil {
			return err
		}
		trip = t
		return nil
	})
	return trip, from, err
}
