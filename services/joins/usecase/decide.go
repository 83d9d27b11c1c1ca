package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/pkg/notifier"
)

// ApproveJoinRequest grants the seat and creates the requester's own trip
// on the same route and time. The request, the capacity re-check and the
// new trip commit together or not at all.
func (uc *JoinUC) ApproveJoinRequest(ctx context.Context, admin models.Identity, id uuid.UUID, req *models.JoinDecisionRequest) (*models.JoinApproval, error) {
	var (
		join    *models.JoinRequest
		created *models.Trip
	)
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		j, err := uc.lockPending(ctx, id)
		if err != nil {
			return err
		}
		uc.decide(j, models.JoinRequestApproved, admin, req)

		target, err := uc.tripRepo.GetTripForUpdate(ctx, j.TripID)
		if err != nil {
			return err
		}
		if !target.Status.IsTravelApproved() {
			return apperror.ConflictError{Resource: "trip", Msg: "trip is no longer open for joining in status " + string(target.Status)}
		}
		usage, err := uc.seats(ctx, target)
		if err != nil {
			return err
		}
		if err := usage.checkCapacity(); err != nil {
			return err
		}

		trip, err := uc.creator.PrepareTrip(ctx, models.Identity{
			UserID: j.RequesterID,
			Email:  j.RequesterEmail,
			Name:   j.RequesterName,
			Role:   models.RoleEmployee,
		}, joinedTripRequest(target, j))
		if err != nil {
			return fmt.Errorf("failed to create joined trip: %w", err)
		}

		j.CreatedTripID = &trip.ID
		if err := uc.joinRepo.UpdateJoinDecision(ctx, j); err != nil {
			return err
		}
		join, created = j, trip
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Join request approved",
		logger.UUID("request_id", join.ID),
		logger.UUID("created_trip_id", created.ID),
		logger.String("status", string(created.Status)),
		logger.String("approved_by", admin.Email))

	uc.notifier.Notify(ctx, notifier.TemplateJoinDecided, []string{join.RequesterEmail}, nil, notifier.Data{Trip: created, Request: join})
	uc.creator.AnnounceTrip(ctx, created)
	uc.publish(ctx, join, uc.joinGW.PublishJoinApproved)
	return &models.JoinApproval{Request: join, Trip: created}, nil
}

// joinedTripRequest clones the target's itinerary for one extra passenger
func joinedTripRequest(target *models.Trip, join *models.JoinRequest) *models.SubmitTripRequest {
	return &models.SubmitTripRequest{
		Origin:         target.Origin,
		Destination:    target.Destination,
		DistanceKm:     target.DistanceKm,
		DepartureAt:    target.DepartureAt,
		ReturnAt:       target.ReturnAt,
		Purpose:        join.Reason,
		PassengerCount: 1,
		VehicleType:    target.VehicleType,
	}
}

// RejectJoinRequest declines a pending request
func (uc *JoinUC) RejectJoinRequest(ctx context.Context, admin models.Identity, id uuid.UUID, req *models.JoinDecisionRequest) (*models.JoinRequest, error) {
	join, err := uc.finish(ctx, id, func(j *models.JoinRequest) error {
		uc.decide(j, models.JoinRequestRejected, admin, req)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Join request rejected",
		logger.UUID("request_id", join.ID),
		logger.String("rejected_by", admin.Email))

	uc.notifyDecided(ctx, join)
	uc.publish(ctx, join, uc.joinGW.PublishJoinRejected)
	return join, nil
}

// CancelJoinRequest withdraws a pending request. Only its author may.
func (uc *JoinUC) CancelJoinRequest(ctx context.Context, requester models.Identity, id uuid.UUID) (*models.JoinRequest, error) {
	join, err := uc.finish(ctx, id, func(j *models.JoinRequest) error {
		if j.RequesterID != requester.UserID {
			return apperror.AuthorizationError{Action: "cancel join request", Msg: "only the requester can cancel a join request"}
		}
		uc.decide(j, models.JoinRequestCancelled, requester, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Join request cancelled", logger.UUID("request_id", join.ID))
	uc.notifyDecided(ctx, join)
	uc.publish(ctx, join, uc.joinGW.PublishJoinCancelled)
	return join, nil
}

// notifyDecided tells the requester the outcome, quoting the target trip
func (uc *JoinUC) notifyDecided(ctx context.Context, join *models.JoinRequest) {
	trip, err := uc.tripRepo.GetTripByID(ctx, join.TripID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load trip for join notification",
			logger.UUID("request_id", join.ID),
			logger.Err(err))
		return
	}
	uc.notifier.Notify(ctx, notifier.TemplateJoinDecided, []string{join.RequesterEmail}, nil, notifier.Data{Trip: trip, Request: join})
}

// finish locks a pending request, applies fn and stores the outcome
func (uc *JoinUC) finish(ctx context.Context, id uuid.UUID, fn func(*models.JoinRequest) error) (*models.JoinRequest, error) {
	var join *models.JoinRequest
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		j, err := uc.lockPending(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(j); err != nil {
			return err
		}
		if err := uc.joinRepo.UpdateJoinDecision(ctx, j); err != nil {
			return err
		}
		join = j
		return nil
	})
	return join, err
}

// lockPending locks the request and refuses anything already decided
func (uc *JoinUC) lockPending(ctx context.Context, id uuid.UUID) (*models.JoinRequest, error) {
	join, err := uc.joinRepo.GetJoinRequestForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if join.Status != models.JoinRequestPending {
		return nil, apperror.ConflictError{Resource: "join_request", Msg: fmt.Sprintf("request is already %s", join.Status)}
	}
	return join, nil
}

func (uc *JoinUC) decide(join *models.JoinRequest, status models.JoinRequestStatus, actor models.Identity, req *models.JoinDecisionRequest) {
	now := uc.now()
	by := actor.Email
	join.Status = status
	join.DecidedBy = &by
	join.DecidedAt = &now
	if req != nil {
		if notes := strings.TrimSpace(req.Notes); notes != "" {
			join.AdminNotes = &notes
		}
	}
}

// ListJoinRequests returns requests by status, pending when empty
func (uc *JoinUC) ListJoinRequests(ctx context.Context, status models.JoinRequestStatus) ([]*models.JoinRequest, error) {
	if status == "" {
		status = models.JoinRequestPending
	}
	if !status.Valid() {
		return nil, apperror.ValidationError{Field: "status", Msg: "unknown join request status " + string(status)}
	}
	return uc.joinRepo.ListJoinRequests(ctx, status)
}

// PurgeDecided removes rejected and cancelled requests decided more than
// olderThan ago
func (uc *JoinUC) PurgeDecided(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		return 0, apperror.ValidationError{Field: "older_than", Msg: "must be positive"}
	}
	cutoff := uc.now().Add(-olderThan)
	n, err := uc.joinRepo.PurgeDecided(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	logger.Info("Purged decided join requests",
		logger.Int64("deleted", n),
		logger.Time("cutoff", cutoff))
	return n, nil
}
