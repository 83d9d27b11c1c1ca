package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/approval"
	"github.com/piresc/nebengdinas/internal/pkg/approvaltoken"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/pkg/notifier"
	"github.com/piresc/nebengdinas/internal/utils"
)

// PreviewByToken resolves a manager link to its trip and action without
// spending it
func (uc *TripUC) PreviewByToken(ctx context.Context, token string) (*models.ApprovalPreview, error) {
	claims, err := uc.tokens.Verify(ctx, token)
	if err != nil {
		logTokenRejection(ctx, err, uuid.Nil)
		return nil, err
	}
	trip, err := uc.tripRepo.GetTripByID(ctx, claims.TripID)
	if err != nil {
		if apperror.IsNotFound(err) {
			err = apperror.TokenError{Kind: apperror.TokenInvalid, Err: err}
			logTokenRejection(ctx, err, claims.TripID)
		}
		return nil, err
	}
	if err := checkCurrentToken(trip, claims); err != nil {
		logTokenRejection(ctx, err, claims.TripID)
		return nil, err
	}
	return &models.ApprovalPreview{Trip: trip, Action: claims.Action, ExpiresAt: claims.ExpiresAt}, nil
}

// DecideByToken applies the action carried by a manager link
func (uc *TripUC) DecideByToken(ctx context.Context, token string, req *models.ManagerDecisionRequest) (*models.ManagerDecision, error) {
	return uc.decide(ctx, token, req, false)
}

// RejectByToken rejects with a reason. Only a reject link is accepted.
func (uc *TripUC) RejectByToken(ctx context.Context, token string, req *models.ManagerDecisionRequest) (*models.ManagerDecision, error) {
	return uc.decide(ctx, token, req, true)
}

func (uc *TripUC) decide(ctx context.Context, token string, req *models.ManagerDecisionRequest, rejectOnly bool) (*models.ManagerDecision, error) {
	var reason string
	if req != nil {
		if err := utils.ValidateStruct(req); err != nil {
			return nil, err
		}
		reason = strings.TrimSpace(req.Reason)
	}

	claims, err := uc.tokens.Verify(ctx, token)
	if err != nil {
		logTokenRejection(ctx, err, uuid.Nil)
		return nil, err
	}
	if rejectOnly && claims.Action != approval.ActionReject {
		err := apperror.TokenError{Kind: apperror.TokenInvalid, Err: fmt.Errorf("%s link used on the reject form", claims.Action)}
		logTokenRejection(ctx, err, claims.TripID)
		return nil, err
	}
	event, _ := approval.ManagerEvent(claims.Action)

	var (
		trip     *models.Trip
		from     models.TripStatus
		approver string
	)
	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		t, err := uc.tripRepo.GetTripForUpdate(ctx, claims.TripID)
		if err != nil {
			if apperror.IsNotFound(err) {
				return apperror.TokenError{Kind: apperror.TokenInvalid, Err: err}
			}
			return err
		}
		if err := checkCurrentToken(t, claims); err != nil {
			return err
		}
		next, err := approval.Next(t.Status, event, t.IsUrgent)
		if err != nil {
			return err
		}

		now := uc.now()
		approver = uc.approverEmail(ctx, t)
		from = t.Status
		t.Status = next
		t.ManagerApprovedBy = &approver
		t.ManagerDecidedAt = &now
		if event == approval.EventManagerReject {
			t.ManagerApprovalStatus = models.ManagerApprovalRejected
			if reason != "" {
				t.RejectionReason = &reason
			}
		} else {
			t.ManagerApprovalStatus = models.ManagerApprovalApproved
		}

		if err := uc.tripRepo.UpdateApproval(ctx, t); err != nil {
			return err
		}
		trip = t
		return nil
	})
	if err != nil {
		logTokenRejection(ctx, err, claims.TripID)
		return nil, err
	}

	if err := uc.tokens.MarkUsed(ctx, claims.TokenID, claims.ExpiresAt); err != nil {
		logger.WarnCtx(ctx, "Failed to mark approval token used",
			logger.UUID("trip_id", trip.ID),
			logger.Err(err))
	}

	logger.Info("Manager decision recorded",
		logger.UUID("trip_id", trip.ID),
		logger.String("action", claims.Action),
		logger.String("status", string(trip.Status)))

	uc.notifier.Notify(ctx, notifier.TemplateTripDecided, []string{trip.RequesterEmail}, nil, notifier.Data{Trip: trip, Reason: reason})
	uc.publishStatusChanged(ctx, trip, from, approver)

	return &models.ManagerDecision{Trip: trip, Outcome: claims.Action}, nil
}

// checkCurrentToken compares the link with the token stored on the locked
// trip. A decided trip reports reuse; a replaced or cleared token is invalid.
func checkCurrentToken(trip *models.Trip, claims approvaltoken.Claims) error {
	current := trip.ManagerApprovalToken != nil && *trip.ManagerApprovalToken == claims.TokenID
	if !current {
		return apperror.TokenError{Kind: apperror.TokenInvalid, Err: errors.New("token is no longer current for this trip")}
	}
	if trip.ManagerDecidedAt != nil {
		return apperror.TokenError{Kind: apperror.TokenReused}
	}
	return nil
}

func logTokenRejection(ctx context.Context, err error, tripID uuid.UUID) {
	tokenErr, ok := apperror.AsToken(err)
	if !ok {
		return
	}
	fields := []logger.Field{logger.String("outcome", tokenErr.Outcome()), logger.Err(err)}
	if tripID != uuid.Nil {
		fields = append(fields, logger.UUID("trip_id", tripID))
	}
	logger.Security(ctx, "Manager approval link refused", fields...)
}

// approverEmail is the address of whoever the current link was sent to
func (uc *TripUC) approverEmail(ctx context.Context, trip *models.Trip) string {
	if trip.EscalationTargetID == nil {
		return trip.ManagerEmail
	}
	target, err := uc.directory.GetEmployee(ctx, *trip.EscalationTargetID)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to resolve escalation target",
			logger.UUID("trip_id", trip.ID),
			logger.Err(err))
		return trip.EscalationTargetID.String()
	}
	return target.Email
}

// AdminOverride forces an approval outcome with a mandatory reason
func (uc *TripUC) AdminOverride(ctx context.Context, admin models.Identity, id uuid.UUID, req *models.AdminOverrideRequest) (*models.Trip, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, apperror.ValidationError{Field: "reason", Msg: "is required"}
	}
	event := approval.EventOverride
	if req.Solo {
		event = approval.EventOverrideSolo
	}

	var (
		trip *models.Trip
		from models.TripStatus
	)
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		t, err := uc.tripRepo.GetTripForUpdate(ctx, id)
		if err != nil {
			return err
		}
		next, err := approval.Next(t.Status, event, t.IsUrgent)
		if err != nil {
			return err
		}

		now := uc.now()
		by := admin.Email
		from = t.Status
		t.Status = next
		t.ManagerApprovalStatus = models.ManagerApprovalOverridden
		t.OverrideReason = &reason
		t.ManagerApprovedBy = &by
		t.ManagerDecidedAt = &now
		t.ManagerApprovalToken = nil

		if err := uc.tripRepo.UpdateApproval(ctx, t); err != nil {
			return err
		}
		trip = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Trip approval overridden",
		logger.UUID("trip_id", trip.ID),
		logger.String("admin", admin.Email),
		logger.String("status", string(trip.Status)))

	uc.notifier.Notify(ctx, notifier.TemplateTripDecided, []string{trip.RequesterEmail}, nil, notifier.Data{Trip: trip, Reason: reason})
	uc.publishStatusChanged(ctx, trip, from, admin.Email)
	return trip, nil
}

// Escalate sends an expired trip to the next approver with fresh links
func (uc *TripUC) Escalate(ctx context.Context, admin models.Identity, id uuid.UUID, req *models.EscalateRequest) (*models.Trip, error) {
	var (
		trip   *models.Trip
		from   models.TripStatus
		target *models.Employee
	)
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		t, err := uc.tripRepo.GetTripForUpdate(ctx, id)
		if err != nil {
			return err
		}

		now := uc.now()
		urgent := uc.policy.IsUrgent(t.DepartureAt, now)
		next, err := approval.Next(t.Status, approval.EventEscalate, urgent)
		if err != nil {
			return err
		}
		if target, err = uc.escalationTarget(ctx, t, req); err != nil {
			return err
		}

		from = t.Status
		t.Status = next
		t.IsUrgent = urgent
		t.EscalationTargetID = &target.ID
		t.ManagerApprovalStatus = models.ManagerApprovalEscalated
		t.ManagerApprovedBy = nil
		t.ManagerDecidedAt = nil
		if err := uc.issueToken(t, now); err != nil {
			return err
		}

		if err := uc.tripRepo.UpdateApproval(ctx, t); err != nil {
			return err
		}
		trip = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Trip approval escalated",
		logger.UUID("trip_id", trip.ID),
		logger.UUID("target_id", target.ID),
		logger.String("admin", admin.Email))

	uc.sendApprovalLinks(ctx, trip, notifier.TemplateEscalation, target.Email)
	uc.publishStatusChanged(ctx, trip, from, admin.Email)
	return trip, nil
}

// escalationTarget is the explicit target, or the manager of whoever was
// last asked to approve
func (uc *TripUC) escalationTarget(ctx context.Context, trip *models.Trip, req *models.EscalateRequest) (*models.Employee, error) {
	if req != nil && req.TargetID != nil {
		return uc.directory.GetEmployee(ctx, *req.TargetID)
	}
	from := trip.ManagerID
	if trip.EscalationTargetID != nil {
		from = trip.EscalationTargetID
	}
	if from == nil {
		return nil, apperror.ValidationError{Field: "target_id", Msg: "trip has no approver to escalate from; name a target"}
	}
	return uc.directory.EscalationTarget(ctx, *from)
}
