package approval

import (
	"testing"
	"time"

	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicy_Defaults(t *testing.T) {
	p := NewPolicy(models.ApprovalConfig{})

	assert.Equal(t, 24*time.Hour, p.UrgentWindow)
	assert.Equal(t, 4*time.Hour, p.UrgentTimeout)
	assert.Equal(t, 48*time.Hour, p.StandardTimeout)
}

func TestInitialStatus(t *testing.T) {
	p := NewPolicy(models.ApprovalConfig{})
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		hasManager bool
		departure  time.Time
		want       models.TripStatus
	}{
		{"no manager is auto approved", false, now.Add(2 * time.Hour), models.TripStatusAutoApproved},
		{"departure in 20h is urgent", true, now.Add(20 * time.Hour), models.TripStatusPendingUrgent},
		{"departure exactly 24h away is standard", true, now.Add(24 * time.Hour), models.TripStatusPendingApproval},
		{"departure next week is standard", true, now.Add(7 * 24 * time.Hour), models.TripStatusPendingApproval},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.InitialStatus(tt.hasManager, tt.departure, now))
		})
	}
}

func TestDeadline_UrgentUsesShortTimeout(t *testing.T) {
	p := NewPolicy(models.ApprovalConfig{})
	submitted := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, submitted.Add(4*time.Hour), p.Deadline(submitted, true))
	assert.Equal(t, submitted.Add(48*time.Hour), p.Deadline(submitted, false))
}

func TestNext_ValidTransitions(t *testing.T) {
	tests := []struct {
		from   models.TripStatus
		event  Event
		urgent bool
		want   models.TripStatus
	}{
		{models.TripStatusPendingApproval, EventManagerApprove, false, models.TripStatusApproved},
		{models.TripStatusPendingUrgent, EventManagerApproveSolo, true, models.TripStatusApprovedSolo},
		{models.TripStatusPendingUrgent, EventManagerReject, true, models.TripStatusRejected},
		{models.TripStatusPendingApproval, EventTimeout, false, models.TripStatusExpired},
		{models.TripStatusExpired, EventEscalate, false, models.TripStatusPendingApproval},
		{models.TripStatusExpired, EventEscalate, true, models.TripStatusPendingUrgent},
		{models.TripStatusExpired, EventOverride, false, models.TripStatusApproved},
		{models.TripStatusPendingApproval, EventOverrideSolo, false, models.TripStatusApprovedSolo},
		{models.TripStatusPendingUrgent, EventCancel, true, models.TripStatusCancelled},
		{models.TripStatusAutoApproved, EventConsolidate, false, models.TripStatusOptimized},
		{models.TripStatusApproved, EventProposalRejected, false, models.TripStatusApprovedSolo},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.event), func(t *testing.T) {
			got, err := Next(tt.from, tt.event, tt.urgent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNext_InvalidTransitionsAreConflicts(t *testing.T) {
	tests := []struct {
		from  models.TripStatus
		event Event
	}{
		{models.TripStatusApproved, EventManagerApprove},
		{models.TripStatusRejected, EventManagerApprove},
		{models.TripStatusCancelled, EventCancel},
		{models.TripStatusApproved, EventCancel},
		{models.TripStatusExpired, EventTimeout},
		{models.TripStatusPendingApproval, EventEscalate},
		{models.TripStatusOptimized, EventConsolidate},
		{models.TripStatusRejected, EventOverride},
		{models.TripStatusApprovedSolo, EventConsolidate},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.event), func(t *testing.T) {
			_, err := Next(tt.from, tt.event, false)
			require.Error(t, err)
			assert.True(t, apperror.IsConflict(err))
			assert.Contains(t, err.Error(), string(tt.from))
		})
	}
}

func TestTransitionTable_OnlyKnownStatuses(t *testing.T) {
	for _, tr := range transitions {
		assert.True(t, tr.from.Valid(), "unknown from status %q", tr.from)
		assert.True(t, tr.to.Valid(), "unknown to status %q", tr.to)
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	for _, terminal := range []models.TripStatus{models.TripStatusRejected, models.TripStatusCancelled, models.TripStatusOptimized, models.TripStatusApprovedSolo} {
		for _, tr := range transitions {
			assert.NotEqual(t, terminal, tr.from, "%s must not leave via %s", terminal, tr.event)
		}
		_, err := Next(terminal, EventEscalate, true)
		assert.True(t, apperror.IsConflict(err), terminal)
	}
}

func TestManagerEvent(t *testing.T) {
	for _, action := range ManagerActions {
		_, ok := ManagerEvent(action)
		assert.True(t, ok, action)
	}
	_, ok := ManagerEvent("delete")
	assert.False(t, ok)
}
