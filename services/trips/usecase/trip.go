package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/approval"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/pkg/notifier"
	"github.com/piresc/nebengdinas/internal/utils"
)

// SubmitTrip creates a trip for the requester and starts its approval
func (uc *TripUC) SubmitTrip(ctx context.Context, requester models.Identity, req *models.SubmitTripRequest) (*models.Trip, error) {
	var trip *models.Trip
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		trip, err = uc.PrepareTrip(ctx, requester, req)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Trip submitted",
		logger.UUID("trip_id", trip.ID),
		logger.UUID("requester_id", trip.RequesterID),
		logger.String("status", string(trip.Status)),
		logger.Bool("urgent", trip.IsUrgent))

	uc.AnnounceTrip(ctx, trip)
	return trip, nil
}

// PrepareTrip validates the request, decides the initial status, mints the
// manager token and stores the trip. Nothing is sent; call AnnounceTrip
// once the surrounding transaction has committed.
func (uc *TripUC) PrepareTrip(ctx context.Context, requester models.Identity, req *models.SubmitTripRequest) (*models.Trip, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	now := uc.now()
	if !req.DepartureAt.After(now) {
		return nil, apperror.ValidationError{Field: "departure_at", Msg: "must be in the future"}
	}
	if req.ReturnAt != nil && !req.ReturnAt.After(req.DepartureAt) {
		return nil, apperror.ValidationError{Field: "return_at", Msg: "must be after departure_at"}
	}

	passengers := req.PassengerCount
	if passengers < 1 {
		passengers = 1
	}
	vehicle := req.VehicleType
	if vehicle == "" {
		var ok bool
		if vehicle, ok = models.VehicleForPassengers(passengers); !ok {
			return nil, apperror.ValidationError{Field: "passenger_count", Msg: "no vehicle seats that many passengers"}
		}
	} else if passengers > vehicle.PassengerCapacity() {
		return nil, apperror.ValidationError{
			Field: "vehicle_type",
			Msg:   fmt.Sprintf("%s seats at most %d passengers", vehicle, vehicle.PassengerCapacity()),
		}
	}

	employee, err := uc.directory.GetEmployee(ctx, requester.UserID)
	if err != nil {
		return nil, err
	}
	var manager *models.Employee
	if employee.ManagerID != nil {
		if manager, err = uc.directory.GetEmployee(ctx, *employee.ManagerID); err != nil {
			return nil, err
		}
	}

	trip := &models.Trip{
		ID:                    uuid.New(),
		RequesterID:           employee.ID,
		RequesterEmail:        employee.Email,
		RequesterName:         employee.Name,
		Origin:                strings.TrimSpace(req.Origin),
		Destination:           strings.TrimSpace(req.Destination),
		DistanceKm:            req.DistanceKm,
		DepartureAt:           req.DepartureAt,
		ReturnAt:              req.ReturnAt,
		Purpose:               strings.TrimSpace(req.Purpose),
		PassengerCount:        passengers,
		Status:                uc.policy.InitialStatus(manager != nil, req.DepartureAt, now),
		VehicleType:           vehicle,
		EstimatedCost:         req.DistanceKm * uc.cfg.Optimization.RateFor(vehicle),
		DataType:              models.DataTypeRaw,
		IsUrgent:              uc.policy.IsUrgent(req.DepartureAt, now),
		ManagerApprovalStatus: models.ManagerApprovalNotRequired,
		SubmittedAt:           now,
	}

	if manager != nil {
		trip.ManagerID = &manager.ID
		trip.ManagerEmail = manager.Email
		trip.ManagerApprovalStatus = models.ManagerApprovalPending
		if err := uc.issueToken(trip, now); err != nil {
			return nil, err
		}
	}

	if err := uc.tripRepo.CreateTrip(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// AnnounceTrip publishes the submission and sends the first mail: the
// approval links to the manager, or the outcome to the requester when no
// approval is needed.
func (uc *TripUC) AnnounceTrip(ctx context.Context, trip *models.Trip) {
	event := models.TripEvent{
		TripID:      trip.ID,
		RequesterID: trip.RequesterID,
		To:          trip.Status,
		Actor:       trip.RequesterEmail,
		OccurredAt:  uc.now(),
	}
	if err := uc.tripGW.PublishTripSubmitted(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish trip submitted event",
			logger.UUID("trip_id", trip.ID),
			logger.Err(err))
	}

	if trip.Status.IsPending() {
		uc.sendApprovalLinks(ctx, trip, notifier.TemplateManagerApproval, trip.ManagerEmail)
		return
	}
	uc.notifier.Notify(ctx, notifier.TemplateTripDecided, []string{trip.RequesterEmail}, nil, notifier.Data{Trip: trip})
}

// GetTrip returns a trip visible to the caller
func (uc *TripUC) GetTrip(ctx context.Context, caller models.Identity, id uuid.UUID) (*models.Trip, error) {
	trip, err := uc.tripRepo.GetTripByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trip.RequesterID != caller.UserID && !caller.IsAdmin() {
		return nil, apperror.AuthorizationError{Action: "view trip", Msg: "trip belongs to another employee"}
	}
	return trip, nil
}

// ListMyTrips returns the caller's own trips
func (uc *TripUC) ListMyTrips(ctx context.Context, caller models.Identity) ([]*models.Trip, error) {
	return uc.tripRepo.ListTripsByRequester(ctx, caller.UserID)
}

// CancelTrip withdraws a pending trip and invalidates its manager links
func (uc *TripUC) CancelTrip(ctx context.Context, caller models.Identity, id uuid.UUID) (*models.Trip, error) {
	var (
		trip *models.Trip
		from models.TripStatus
	)
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		t, err := uc.tripRepo.GetTripForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if t.RequesterID != caller.UserID {
			return apperror.AuthorizationError{Action: "cancel trip", Msg: "only the requester can cancel a trip"}
		}
		next, err := approval.Next(t.Status, approval.EventCancel, t.IsUrgent)
		if err != nil {
			return err
		}

		from = t.Status
		t.Status = next
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

	logger.Info("Trip cancelled", logger.UUID("trip_id", trip.ID))
	uc.publishStatusChanged(ctx, trip, from, caller.Email)
	return trip, nil
}

// issueToken mints a fresh manager token whose deadline follows the
// trip's urgency
func (uc *TripUC) issueToken(trip *models.Trip, now time.Time) error {
	deadline := uc.policy.Deadline(now, trip.IsUrgent)
	issued, err := uc.tokens.Issue(trip.ID, deadline)
	if err != nil {
		return err
	}
	trip.ManagerApprovalToken = &issued.TokenID
	trip.ManagerTokenExpiresAt = &deadline
	return nil
}

func (uc *TripUC) sendApprovalLinks(ctx context.Context, trip *models.Trip, template, to string) {
	if trip.ManagerApprovalToken == nil || trip.ManagerTokenExpiresAt == nil {
		return
	}
	issued, err := uc.tokens.Sign(trip.ID, *trip.ManagerApprovalToken, *trip.ManagerTokenExpiresAt)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to sign approval links",
			logger.UUID("trip_id", trip.ID),
			logger.Err(err))
		return
	}
	uc.notifier.Notify(ctx, template, []string{to}, nil, notifier.Data{
		Trip:     trip,
		Links:    uc.tokens.Links(issued),
		Deadline: *trip.ManagerTokenExpiresAt,
	})
}

func (uc *TripUC) publishStatusChanged(ctx context.Context, trip *models.Trip, from models.TripStatus, actor string) {
	event := models.TripEvent{
		TripID:      trip.ID,
		RequesterID: trip.RequesterID,
		From:        from,
		To:          trip.Status,
		Actor:       actor,
		OccurredAt:  uc.now(),
	}
	if err := uc.tripGW.PublishTripStatusChanged(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish trip status event",
			logger.UUID("trip_id", trip.ID),
			logger.String("to", string(trip.Status)),
			logger.Err(err))
	}
}

// adminEmails merges the configured admin addresses with the directory's
// administrators
func (uc *TripUC) adminEmails(ctx context.Context) []string {
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
