package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/approval"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/pkg/notifier"
)

// ListProposals returns groups, optionally filtered by status
func (uc *OptimizationUC) ListProposals(ctx context.Context, status models.GroupStatus) ([]*models.OptimizationGroup, error) {
	if status != "" && !status.Valid() {
		return nil, apperror.ValidationError{Field: "status", Msg: "unknown group status " + string(status)}
	}
	return uc.repo.ListGroups(ctx, status)
}

// GetProposal returns one group
func (uc *OptimizationUC) GetProposal(ctx context.Context, id uuid.UUID) (*models.OptimizationGroup, error) {
	return uc.repo.GetGroupByID(ctx, id)
}

// ApproveProposal promotes every staged itinerary onto its parent trip.
// Either all members become optimized or nothing changes.
func (uc *OptimizationUC) ApproveProposal(ctx context.Context, admin models.Identity, id uuid.UUID) (*models.OptimizationGroup, error) {
	var (
		group   *models.OptimizationGroup
		members []*models.Trip
	)
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		g, err := uc.lockProposed(ctx, id)
		if err != nil {
			return err
		}

		temps, err := uc.repo.ListTempTrips(ctx, g.ID)
		if err != nil {
			return err
		}
		if len(temps) == 0 {
			return apperror.ConflictError{Resource: "optimization_group", Msg: "group has no staged trips"}
		}
		parents, err := uc.repo.GetTripsForUpdate(ctx, parentIDs(temps))
		if err != nil {
			return err
		}
		if err := uc.checkGroupCapacity(ctx, g, parents); err != nil {
			return err
		}
		byID := make(map[uuid.UUID]*models.Trip, len(parents))
		for _, parent := range parents {
			byID[parent.ID] = parent
		}

		now := uc.now()
		promoted := make([]*models.Trip, 0, len(temps))
		for _, temp := range temps {
			if temp.ParentTripID == nil {
				return fmt.Errorf("temp trip %s has no parent", temp.ID)
			}
			parent, ok := byID[*temp.ParentTripID]
			if !ok {
				return apperror.NotFoundError{Resource: "trip", ID: temp.ParentTripID.String()}
			}
			next, err := approval.Next(parent.Status, approval.EventConsolidate, parent.IsUrgent)
			if err != nil {
				return err
			}

			groupID := g.ID
			parent.DepartureAt = temp.DepartureAt
			parent.VehicleType = temp.VehicleType
			parent.ActualCost = temp.ActualCost
			parent.OptimizedGroupID = &groupID
			parent.Notified = true
			parent.DataType = models.DataTypeFinal
			parent.Status = next
			parent.UpdatedAt = now
			if err := uc.repo.PromoteTrip(ctx, parent); err != nil {
				return fmt.Errorf("failed to promote trip %s: %w", parent.ID, err)
			}
			promoted = append(promoted, parent)
		}

		if _, err := uc.repo.DeleteTempTrips(ctx, g.ID); err != nil {
			return err
		}
		if err := uc.decideGroup(ctx, g, models.GroupStatusApproved, admin); err != nil {
			return err
		}
		group, members = g, promoted
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Optimization group approved",
		logger.UUID("group_id", group.ID),
		logger.Int("members", len(members)),
		logger.Float64("savings", group.EstimatedSavings),
		logger.String("approved_by", admin.Email))

	for _, member := range members {
		uc.notifier.Notify(ctx, notifier.TemplateTripOptimized, []string{member.RequesterEmail}, nil, notifier.Data{
			Trip:   member,
			Others: len(members) - 1,
		})
	}
	uc.publish(ctx, group, admin.Email, uc.optGW.PublishGroupApproved)
	return group, nil
}

// checkGroupCapacity fails when the members' bookings and the joins approved
// onto them no longer fit the group vehicle. Callers hold the member locks.
func (uc *OptimizationUC) checkGroupCapacity(ctx context.Context, g *models.OptimizationGroup, members []*models.Trip) error {
	ids := make([]uuid.UUID, len(members))
	occupancy := 0
	for i, member := range members {
		ids[i] = member.ID
		occupancy += member.Occupancy()
	}
	joined, err := uc.repo.CountApprovedJoins(ctx, ids)
	if err != nil {
		return err
	}

	capacity := g.VehicleType.PassengerCapacity()
	if occupancy+joined > capacity {
		logger.Warn("Optimization group no longer fits its vehicle",
			logger.UUID("group_id", g.ID),
			logger.String("vehicle", string(g.VehicleType)),
			logger.Int("occupancy", occupancy),
			logger.Int("joined", joined))
		return apperror.CapacityExceededError{Current: joined, Requested: occupancy, Capacity: capacity}
	}
	return nil
}

// RejectProposal discards the staged itineraries and returns the members
// to approved_solo, leaving their own route, time and cost untouched.
func (uc *OptimizationUC) RejectProposal(ctx context.Context, admin models.Identity, id uuid.UUID, req *models.ProposalDecisionRequest) (*models.OptimizationGroup, error) {
	reason := ""
	if req != nil {
		reason = strings.TrimSpace(req.Reason)
	}

	var (
		group   *models.OptimizationGroup
		members []*models.Trip
	)
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		g, err := uc.lockProposed(ctx, id)
		if err != nil {
			return err
		}

		ids := g.MemberIDs()
		locked, err := uc.repo.GetTripsForUpdate(ctx, ids)
		if err != nil {
			return err
		}
		for _, member := range locked {
			next, err := approval.Next(member.Status, approval.EventProposalRejected, member.IsUrgent)
			if err != nil {
				return err
			}
			member.Status = next
			member.OptimizedGroupID = nil
		}

		if _, err := uc.repo.DeleteTempTrips(ctx, g.ID); err != nil {
			return err
		}
		if err := uc.repo.ResetToSolo(ctx, ids, g.ID); err != nil {
			return err
		}
		if err := uc.decideGroup(ctx, g, models.GroupStatusRejected, admin); err != nil {
			return err
		}
		group, members = g, locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Optimization group rejected",
		logger.UUID("group_id", group.ID),
		logger.Int("members", len(members)),
		logger.String("rejected_by", admin.Email))

	for _, member := range members {
		uc.notifier.Notify(ctx, notifier.TemplateProposalRejected, []string{member.RequesterEmail}, nil, notifier.Data{
			Trip:   member,
			Reason: reason,
		})
	}
	uc.publish(ctx, group, admin.Email, uc.optGW.PublishGroupRejected)
	return group, nil
}

// lockProposed locks the group and refuses anything already decided
func (uc *OptimizationUC) lockProposed(ctx context.Context, id uuid.UUID) (*models.OptimizationGroup, error) {
	group, err := uc.repo.GetGroupForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if group.Status != models.GroupStatusProposed {
		return nil, apperror.ConflictError{
			Resource: "optimization_group",
			Msg:      fmt.Sprintf("group is already %s", group.Status),
		}
	}
	return group, nil
}

func (uc *OptimizationUC) decideGroup(ctx context.Context, group *models.OptimizationGroup, status models.GroupStatus, admin models.Identity) error {
	now := uc.now()
	actor := admin.Email
	group.Status = status
	group.ApprovedBy = &actor
	group.DecidedAt = &now
	group.UpdatedAt = now
	return uc.repo.UpdateGroupDecision(ctx, group)
}

func parentIDs(temps []*models.Trip) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(temps))
	for _, temp := range temps {
		if temp.ParentTripID != nil {
			ids = append(ids, *temp.ParentTripID)
		}
	}
	return ids
}
