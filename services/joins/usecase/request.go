package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/pkg/notifier"
	"github.com/piresc/nebengdinas/internal/utils"
)

// RequestJoin asks for a seat on another employee's approved trip. The
// checks run in a fixed order and each failure has its own error.
func (uc *JoinUC) RequestJoin(ctx context.Context, requester models.Identity, tripID uuid.UUID, req *models.JoinTripRequest) (*models.JoinRequest, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	employee, err := uc.directory.GetEmployee(ctx, requester.UserID)
	if err != nil {
		return nil, err
	}
	var manager *models.Employee
	if employee.ManagerID != nil {
		if manager, err = uc.directory.GetEmployee(ctx, *employee.ManagerID); err != nil {
			logger.WarnCtx(ctx, "Failed to resolve requester's manager",
				logger.UUID("requester_id", employee.ID),
				logger.Err(err))
			manager = nil
		}
	}

	var (
		join *models.JoinRequest
		trip *models.Trip
	)
	err = uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		t, err := uc.tripRepo.GetTripForUpdate(ctx, tripID)
		if err != nil {
			return err
		}
		if err := uc.checkJoinable(ctx, employee.ID, t); err != nil {
			return err
		}

		j := &models.JoinRequest{
			ID:             uuid.New(),
			TripID:         t.ID,
			RequesterID:    employee.ID,
			RequesterEmail: employee.Email,
			RequesterName:  employee.Name,
			Reason:         strings.TrimSpace(req.Reason),
			Status:         models.JoinRequestPending,
		}
		if manager != nil {
			j.ManagerID = &manager.ID
			j.ManagerEmail = manager.Email
		}
		if err := uc.joinRepo.CreateJoinRequest(ctx, j); err != nil {
			return err
		}
		join, trip = j, t
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Join request created",
		logger.UUID("request_id", join.ID),
		logger.UUID("trip_id", trip.ID),
		logger.UUID("requester_id", join.RequesterID))

	var cc []string
	if join.ManagerEmail != "" {
		cc = []string{join.ManagerEmail}
	}
	if admins := uc.adminEmails(ctx); len(admins) > 0 {
		uc.notifier.Notify(ctx, notifier.TemplateJoinRequested, admins, cc, notifier.Data{Trip: trip, Request: join})
	} else {
		logger.WarnCtx(ctx, "No administrator to review join request", logger.UUID("request_id", join.ID))
	}
	uc.publish(ctx, join, uc.joinGW.PublishJoinRequested)
	return join, nil
}

// checkJoinable runs the ordered eligibility checks against a locked trip
func (uc *JoinUC) checkJoinable(ctx context.Context, requesterID uuid.UUID, trip *models.Trip) error {
	if trip.DataType == models.DataTypeTemp || !trip.Status.IsTravelApproved() {
		return apperror.ConflictError{Resource: "trip", Msg: "trip is not open for joining in status " + string(trip.Status)}
	}
	if trip.RequesterID == requesterID {
		return apperror.ConflictError{Resource: "trip", Msg: "you already travel on this trip"}
	}

	open, err := uc.joinRepo.HasOpenRequest(ctx, requesterID, trip.ID)
	if err != nil {
		return err
	}
	if open {
		return apperror.ConflictError{Resource: "join_request", Msg: "a request for this trip is already open"}
	}

	from, to := uc.dayBounds(trip.DepartureAt)
	busy, err := uc.joinRepo.HasTravelBetween(ctx, requesterID, from, to)
	if err != nil {
		return err
	}
	if busy {
		return apperror.ConflictError{Resource: "schedule", Msg: "you already have an approved trip on " + from.Format("2006-01-02")}
	}

	usage, err := uc.seats(ctx, trip)
	if err != nil {
		return err
	}
	for _, member := range usage.members {
		if member.RequesterID == requesterID {
			return apperror.ConflictError{Resource: "optimization_group", Msg: "you already travel in this trip's group"}
		}
	}
	return usage.checkCapacity()
}

// dayBounds returns the local calendar day containing t
func (uc *JoinUC) dayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(uc.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, uc.loc)
	return start, start.AddDate(0, 0, 1)
}

// adminEmails merges the configured admin addresses with the directory's
// administrators
func (uc *JoinUC) adminEmails(ctx context.Context) []string {
	seen := map[string]bool{}
	var out []string
	add := func(email string) {
		key := strings.ToLower(strings.TrimSpace(email))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, email)
	}

	for _, email := range uc.cfg.SMTP.AdminEmails {
		add(email)
	}
	admins, err := uc.directory.ListAdmins(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to list administrators", logger.Err(err))
	}
	for _, admin := range admins {
		add(admin.Email)
	}
	return out
}

func (uc *JoinUC) publish(ctx context.Context, join *models.JoinRequest, fn func(context.Context, models.JoinEvent) error) {
	event := models.JoinEvent{
		RequestID:     join.ID,
		TripID:        join.TripID,
		RequesterID:   join.RequesterID,
		Status:        join.Status,
		CreatedTripID: join.CreatedTripID,
		OccurredAt:    uc.now(),
	}
	if err := fn(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish join event",
			logger.UUID("request_id", join.ID),
			logger.String("status", string(join.Status)),
			logger.Err(err))
	}
}
