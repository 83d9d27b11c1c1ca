package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
)

// ProposeOptimization runs the engine over every eligible trip and stores
// each proposal in its own transaction. Proposals whose members changed
// since the scan are skipped.
func (uc *OptimizationUC) ProposeOptimization(ctx context.Context, admin models.Identity) (*models.ProposeResult, error) {
	trips, err := uc.repo.ListEligibleTrips(ctx)
	if err != nil {
		return nil, err
	}

	proposals := uc.engine.Propose(ctx, trips)
	result := &models.ProposeResult{Created: []*models.OptimizationGroup{}}
	for i := range proposals {
		group, err := uc.stage(ctx, admin, &proposals[i])
		if err != nil {
			if !apperror.IsConflict(err) {
				logger.ErrorCtx(ctx, "Failed to stage proposal",
					logger.UUIDs("member_trip_ids", proposals[i].MemberTripIDs),
					logger.Err(err))
			}
			result.Skipped++
			continue
		}
		result.Created = append(result.Created, group)
		uc.publish(ctx, group, admin.Email, uc.optGW.PublishGroupProposed)
	}

	logger.Info("Optimization proposals created",
		logger.Int("eligible_trips", len(trips)),
		logger.Int("candidates", len(proposals)),
		logger.Int("created", len(result.Created)),
		logger.Int("skipped", result.Skipped))
	return result, nil
}

// stage persists one proposal with a temp trip per member
func (uc *OptimizationUC) stage(ctx context.Context, admin models.Identity, proposal *models.Proposal) (*models.OptimizationGroup, error) {
	var group *models.OptimizationGroup
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		members, err := uc.repo.GetTripsForUpdate(ctx, proposal.MemberTripIDs)
		if err != nil {
			return err
		}
		if err := checkStillEligible(members, proposal.MemberTripIDs); err != nil {
			return err
		}

		now := uc.now()
		g := &models.OptimizationGroup{
			ID:                  uuid.New(),
			MemberTripIDs:       uuidStrings(proposal.MemberTripIDs),
			ProposedDepartureAt: proposal.ProposedDepartureAt,
			VehicleType:         proposal.VehicleType,
			PassengerTotal:      proposal.PassengerTotal,
			DistanceKm:          proposal.DistanceKm,
			BaselineCost:        proposal.BaselineCost,
			CombinedCost:        proposal.CombinedCost,
			EstimatedSavings:    proposal.EstimatedSavings,
			SavingsPercent:      proposal.SavingsPercent,
			Source:              proposal.Source,
			Status:              models.GroupStatusProposed,
			CreatedBy:           admin.Email,
			CreatedAt:           now,
			UpdatedAt:           now,
		}
		if err := uc.repo.CreateGroup(ctx, g); err != nil {
			return err
		}

		cost := proposal.PerMemberCost()
		temps := make([]*models.Trip, 0, len(members))
		for _, member := range members {
			temps = append(temps, tempTrip(member, g, cost, now))
		}
		if err := uc.repo.CreateTempTrips(ctx, temps); err != nil {
			return err
		}
		if err := uc.repo.SetTripGroup(ctx, proposal.MemberTripIDs, g.ID); err != nil {
			return err
		}
		group = g
		return nil
	})
	return group, err
}

// checkStillEligible verifies the locked rows still match the scan
func checkStillEligible(members []*models.Trip, ids []uuid.UUID) error {
	if len(members) != len(ids) {
		return apperror.ConflictError{Resource: "trip", Msg: "a member trip no longer exists"}
	}
	for _, member := range members {
		groupable := member.Status == models.TripStatusApproved || member.Status == models.TripStatusAutoApproved
		if !groupable || member.DataType != models.DataTypeRaw || member.OptimizedGroupID != nil {
			return apperror.ConflictError{Resource: "trip", Msg: "member trip " + member.ID.String() + " is no longer eligible"}
		}
	}
	return nil
}

// tempTrip stages the member's consolidated itinerary
func tempTrip(member *models.Trip, group *models.OptimizationGroup, cost float64, now time.Time) *models.Trip {
	parentID := member.ID
	groupID := group.ID
	temp := *member
	temp.ID = uuid.New()
	temp.DepartureAt = group.ProposedDepartureAt
	temp.VehicleType = group.VehicleType
	temp.ActualCost = &cost
	temp.OptimizedGroupID = &groupID
	temp.ParentTripID = &parentID
	temp.DataType = models.DataTypeTemp
	temp.ManagerApprovalToken = nil
	temp.Notified = false
	temp.CreatedAt = now
	temp.UpdatedAt = now
	return &temp
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func (uc *OptimizationUC) publish(ctx context.Context, group *models.OptimizationGroup, actor string, fn func(context.Context, models.OptimizationEvent) error) {
	event := models.OptimizationEvent{
		GroupID:       group.ID,
		Status:        group.Status,
		MemberTripIDs: group.MemberTripIDs,
		Actor:         actor,
		OccurredAt:    uc.now(),
	}
	if err := fn(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish optimization event",
			logger.UUID("group_id", group.ID),
			logger.String("status", string(group.Status)),
			logger.Err(err))
	}
}
