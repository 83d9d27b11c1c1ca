package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/pkg/notifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stagedGroup builds a proposed group whose members are already linked and
// the temp trips that belong to it
func stagedGroup(members ...*models.Trip) (*models.OptimizationGroup, []*models.Trip) {
	proposal := proposalFor(members...)
	group := &models.OptimizationGroup{
		ID:                  uuid.New(),
		MemberTripIDs:       pq.StringArray(uuidStrings(proposal.MemberTripIDs)),
		ProposedDepartureAt: proposal.ProposedDepartureAt,
		VehicleType:         proposal.VehicleType,
		CombinedCost:        proposal.CombinedCost,
		EstimatedSavings:    proposal.EstimatedSavings,
		Status:              models.GroupStatusProposed,
		CreatedBy:           admin.Email,
	}
	temps := make([]*models.Trip, 0, len(members))
	for _, member := range members {
		groupID := group.ID
		member.OptimizedGroupID = &groupID
		temps = append(temps, tempTrip(member, group, proposal.PerMemberCost(), fixedNow))
	}
	return group, temps
}

func TestApproveProposal_PromotesEveryMember(t *testing.T) {
	uc, m := setupOptimizationUC(t)
	a, b, c := approvedTrip("a@corp.id", 8, 0), approvedTrip("b@corp.id", 8, 20), approvedTrip("c@corp.id", 8, 40)
	c.Status = models.TripStatusAutoApproved
	group, temps := stagedGroup(a, b, c)

	m.repo.EXPECT().GetGroupForUpdate(gomock.Any(), group.ID).Return(group, nil)
	m.repo.EXPECT().ListTempTrips(gomock.Any(), group.ID).Return(temps, nil)
	m.repo.EXPECT().GetTripsForUpdate(gomock.Any(), []uuid.UUID{a.ID, b.ID, c.ID}).Return([]*models.Trip{a, b, c}, nil)
	m.repo.EXPECT().CountApprovedJoins(gomock.Any(), []uuid.UUID{a.ID, b.ID, c.ID}).Return(0, nil)
	m.repo.EXPECT().PromoteTrip(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, trip *models.Trip) {
			assert.Equal(t, models.TripStatusOptimized, trip.Status)
			assert.Equal(t, models.DataTypeFinal, trip.DataType)
			assert.True(t, trip.Notified)
			assert.Equal(t, group.ProposedDepartureAt, trip.DepartureAt)
			assert.Equal(t, 150*4500/3.0, *trip.ActualCost)
			assert.Equal(t, group.ID, *trip.OptimizedGroupID)
		}).Return(nil).Times(3)
	m.repo.EXPECT().DeleteTempTrips(gomock.Any(), group.ID).Return(int64(3), nil)
	m.repo.EXPECT().UpdateGroupDecision(gomock.Any(), group).Return(nil)
	m.notifier.EXPECT().Notify(gomock.Any(), notifier.TemplateTripOptimized, gomock.Any(), nil, gomock.Any()).
		Do(func(_ context.Context, _ string, to, _ []string, data notifier.Data) {
			require.Len(t, to, 1)
			assert.Equal(t, data.Trip.RequesterEmail, to[0])
			assert.Equal(t, 2, data.Others)
		}).Times(3)
	m.gw.EXPECT().PublishGroupApproved(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.ApproveProposal(context.Background(), admin, group.ID)

	require.NoError(t, err)
	assert.Equal(t, models.GroupStatusApproved, got.Status)
	assert.Equal(t, "travel@corp.id", *got.ApprovedBy)
	assert.Equal(t, fixedNow, *got.DecidedAt)
}

func TestApproveProposal_FailureRollsBackAndNotifiesNobody(t *testing.T) {
	uc, m := setupOptimizationUC(t)
	a, b := approvedTrip("a@corp.id", 8, 0), approvedTrip("b@corp.id", 8, 20)
	group, temps := stagedGroup(a, b)

	m.repo.EXPECT().GetGroupForUpdate(gomock.Any(), group.ID).Return(group, nil)
	m.repo.EXPECT().ListTempTrips(gomock.Any(), group.ID).Return(temps, nil)
	m.repo.EXPECT().GetTripsForUpdate(gomock.Any(), gomock.Any()).Return([]*models.Trip{a, b}, nil)
	m.repo.EXPECT().CountApprovedJoins(gomock.Any(), gomock.Any()).Return(0, nil)
	m.repo.EXPECT().PromoteTrip(gomock.Any(), a).Return(nil)
	m.repo.EXPECT().PromoteTrip(gomock.Any(), b).Return(errors.New("connection reset"))

	_, err := uc.ApproveProposal(context.Background(), admin, group.ID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to promote trip "+b.ID.String())
}

func TestApproveProposal_MemberCancelledMeanwhile(t *testing.T) {
	uc, m := setupOptimizationUC(t)
	a, b := approvedTrip("a@corp.id", 8, 0), approvedTrip("b@corp.id", 8, 20)
	group, temps := stagedGroup(a, b)
	b.Status = models.TripStatusCancelled

	m.repo.EXPECT().GetGroupForUpdate(gomock.Any(), group.ID).Return(group, nil)
	m.repo.EXPECT().ListTempTrips(gomock.Any(), group.ID).Return(temps, nil)
	m.repo.EXPECT().GetTripsForUpdate(gomock.Any(), gomock.Any()).Return([]*models.Trip{a, b}, nil)
	m.repo.EXPECT().CountApprovedJoins(gomock.Any(), gomock.Any()).Return(0, nil)
	m.repo.EXPECT().PromoteTrip(gomock.Any(), a).Return(nil)

	_, err := uc.ApproveProposal(context.Background(), admin, group.ID)

	assert.True(t, apperror.IsConflict(err))
}

func TestApproveProposal_JoinsNoLongerFit(t *testing.T) {
	uc, m := setupOptimizationUC(t)
	a, b := approvedTrip("a@corp.id", 8, 0), approvedTrip("b@corp.id", 8, 20)
	group, temps := stagedGroup(a, b)

	// two riders joined a while the group waited for a decision
	m.repo.EXPECT().GetGroupForUpdate(gomock.Any(), group.ID).Return(group, nil)
	m.repo.EXPECT().ListTempTrips(gomock.Any(), group.ID).Return(temps, nil)
	m.repo.EXPECT().GetTripsForUpdate(gomock.Any(), gomock.Any()).Return([]*models.Trip{a, b}, nil)
	m.repo.EXPECT().CountApprovedJoins(gomock.Any(), []uuid.UUID{a.ID, b.ID}).Return(2, nil)
	m.repo.EXPECT().PromoteTrip(gomock.Any(), gomock.Any()).Times(0)
	m.repo.EXPECT().DeleteTempTrips(gomock.Any(), gomock.Any()).Times(0)
	m.repo.EXPECT().UpdateGroupDecision(gomock.Any(), gomock.Any()).Times(0)

	got, err := uc.ApproveProposal(context.Background(), admin, group.ID)

	assert.Nil(t, got)
	capErr, ok := apperror.AsCapacity(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CapacityExceededError{Current: 2, Requested: 2, Capacity: 3}, capErr)
	assert.Equal(t, models.GroupStatusProposed, group.Status)
}

func TestApproveProposal_CountJoinsError(t *testing.T) {
	uc, m := setupOptimizationUC(t)
	a, b := approvedTrip("a@corp.id", 8, 0), approvedTrip("b@corp.id", 8, 20)
	group, temps := stagedGroup(a, b)

	m.repo.EXPECT().GetGroupForUpdate(gomock.Any(), group.ID).Return(group, nil)
	m.repo.EXPECT().ListTempTrips(gomock.Any(), group.ID).Return(temps, nil)
	m.repo.EXPECT().GetTripsForUpdate(gomock.Any(), gomock.Any()).Return([]*models.Trip{a, b}, nil)
	m.repo.EXPECT().CountApprovedJoins(gomock.Any(), gomock.Any()).Return(0, errors.New("failed to count approved joins: timeout"))

	_, err := uc.ApproveProposal(context.Background(), admin, group.ID)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count approved joins")
}

func TestDecideTerminalGroupIsConflict(t *testing.T) {
	for _, status := range []models.GroupStatus{models.GroupStatusApproved, models.GroupStatusRejected} {
		t.Run(string(status), func(t *testing.T) {
			uc, m := setupOptimizationUC(t)
			group := &models.OptimizationGroup{ID: uuid.New(), Status: status}
			m.repo.EXPECT().GetGroupForUpdate(gomock.Any(), group.ID).Return(group, nil).Times(2)

			_, err := uc.ApproveProposal(context.Background(), admin, group.ID)
			assert.True(t, apperror.IsConflict(err))

			_, err = uc.RejectProposal(context.Background(), admin, group.ID, nil)
			assert.True(t, apperror.IsConflict(err))
		})
	}
}

func TestRejectProposal_RestoresMembersToSolo(t *testing.T) {
	uc, m := setupOptimizationUC(t)
	a, b := approvedTrip("a@corp.id", 8, 0), approvedTrip("b@corp.id", 8, 20)
	group, _ := stagedGroup(a, b)
	departure := a.DepartureAt

	m.repo.EXPECT().GetGroupForUpdate(gomock.Any(), group.ID).Return(group, nil)
	m.repo.EXPECT().GetTripsForUpdate(gomock.Any(), []uuid.UUID{a.ID, b.ID}).Return([]*models.Trip{a, b}, nil)
	m.repo.EXPECT().DeleteTempTrips(gomock.Any(), group.ID).Return(int64(2), nil)
	m.repo.EXPECT().ResetToSolo(gomock.Any(), []uuid.UUID{a.ID, b.ID}, group.ID).Return(nil)
	m.repo.EXPECT().UpdateGroupDecision(gomock.Any(), group).Return(nil)
	m.notifier.EXPECT().Notify(gomock.Any(), notifier.TemplateProposalRejected, gomock.Any(), nil, gomock.Any()).
		Do(func(_ context.Context, _ string, _, _ []string, data notifier.Data) {
			assert.Equal(t, "timing does not work", data.Reason)
			assert.Equal(t, models.TripStatusApprovedSolo, data.Trip.Status)
			assert.Nil(t, data.Trip.OptimizedGroupID)
		}).Times(2)
	m.gw.EXPECT().PublishGroupRejected(gomock.Any(), gomock.Any()).Return(nil)

	got, err := uc.RejectProposal(context.Background(), admin, group.ID, &models.ProposalDecisionRequest{Reason: "  timing does not work "})

	require.NoError(t, err)
	assert.Equal(t, models.GroupStatusRejected, got.Status)
	assert.Equal(t, departure, a.DepartureAt)
	assert.Nil(t, a.ActualCost)
	assert.Equal(t, models.DataTypeRaw, a.DataType)
}

func TestRejectProposal_NotFound(t *testing.T) {
	uc, m := setupOptimizationUC(t)
	id := uuid.New()

	m.repo.EXPECT().GetGroupForUpdate(gomock.Any(), id).Return(nil, apperror.NotFoundError{Resource: "optimization_group", ID: id.String()})

	_, err := uc.RejectProposal(context.Background(), admin, id, nil)

	assert.True(t, apperror.IsNotFound(err))
}

func TestListProposals(t *testing.T) {
	uc, m := setupOptimizationUC(t)

	m.repo.EXPECT().ListGroups(gomock.Any(), models.GroupStatusProposed).Return([]*models.OptimizationGroup{{ID: uuid.New()}}, nil)

	groups, err := uc.ListProposals(context.Background(), models.GroupStatusProposed)
	require.NoError(t, err)
	assert.Len(t, groups, 1)

	_, err = uc.ListProposals(context.Background(), models.GroupStatus("bogus"))
	assert.True(t, apperror.IsValidation(err))
}
