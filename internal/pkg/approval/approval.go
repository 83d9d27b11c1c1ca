// Package approval holds the pure rules of the trip approval workflow:
// initial state, urgency, response deadlines and the transition table.
package approval

import (
	"fmt"
	"time"

	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/models"
)

const (
	DefaultUrgentWindow    = 24 * time.Hour
	DefaultUrgentTimeout   = 4 * time.Hour
	DefaultStandardTimeout = 48 * time.Hour
)

// Event is something that moves a trip between statuses
type Event string

const (
	EventManagerApprove     Event = "manager_approve"
	EventManagerApproveSolo Event = "manager_approve_solo"
	EventManagerReject      Event = "manager_reject"
	EventTimeout            Event = "timeout"
	EventEscalate           Event = "escalate"
	EventOverride           Event = "override"
	EventOverrideSolo       Event = "override_solo"
	EventCancel             Event = "cancel"
	EventConsolidate        Event = "consolidate"
	EventProposalRejected   Event = "proposal_rejected"
)

type transition struct {
	from  models.TripStatus
	event Event
	to    models.TripStatus
}

// transitions is the complete table. Anything not listed is rejected.
var transitions = []transition{
	{models.TripStatusPendingApproval, EventManagerApprove, models.TripStatusApproved},
	{models.TripStatusPendingUrgent, EventManagerApprove, models.TripStatusApproved},
	{models.TripStatusPendingApproval, EventManagerApproveSolo, models.TripStatusApprovedSolo},
	{models.TripStatusPendingUrgent, EventManagerApproveSolo, models.TripStatusApprovedSolo},
	{models.TripStatusPendingApproval, EventManagerReject, models.TripStatusRejected},
	{models.TripStatusPendingUrgent, EventManagerReject, models.TripStatusRejected},

	{models.TripStatusPendingApproval, EventTimeout, models.TripStatusExpired},
	{models.TripStatusPendingUrgent, EventTimeout, models.TripStatusExpired},

	{models.TripStatusExpired, EventEscalate, models.TripStatusPendingApproval},
	{models.TripStatusExpired, EventEscalate, models.TripStatusPendingUrgent},

	{models.TripStatusPendingApproval, EventOverride, models.TripStatusApproved},
	{models.TripStatusPendingUrgent, EventOverride, models.TripStatusApproved},
	{models.TripStatusExpired, EventOverride, models.TripStatusApproved},
	{models.TripStatusPendingApproval, EventOverrideSolo, models.TripStatusApprovedSolo},
	{models.TripStatusPendingUrgent, EventOverrideSolo, models.TripStatusApprovedSolo},
	{models.TripStatusExpired, EventOverrideSolo, models.TripStatusApprovedSolo},

	{models.TripStatusPendingApproval, EventCancel, models.TripStatusCancelled},
	{models.TripStatusPendingUrgent, EventCancel, models.TripStatusCancelled},

	{models.TripStatusApproved, EventConsolidate, models.TripStatusOptimized},
	{models.TripStatusAutoApproved, EventConsolidate, models.TripStatusOptimized},
	{models.TripStatusApproved, EventProposalRejected, models.TripStatusApprovedSolo},
	{models.TripStatusAutoApproved, EventProposalRejected, models.TripStatusApprovedSolo},
}

// Policy carries the configurable approval windows
type Policy struct {
	UrgentWindow    time.Duration
	UrgentTimeout   time.Duration
	StandardTimeout time.Duration
}

// NewPolicy builds a policy from config, filling unset windows with defaults
func NewPolicy(cfg models.ApprovalConfig) Policy {
	p := Policy{
		UrgentWindow:    cfg.UrgentWindow,
		UrgentTimeout:   cfg.UrgentTimeout,
		StandardTimeout: cfg.StandardTimeout,
	}
	if p.UrgentWindow <= 0 {
		p.UrgentWindow = DefaultUrgentWindow
	}
	if p.UrgentTimeout <= 0 {
		p.UrgentTimeout = DefaultUrgentTimeout
	}
	if p.StandardTimeout <= 0 {
		p.StandardTimeout = DefaultStandardTimeout
	}
	return p
}

// IsUrgent reports whether departure is less than the urgent window away from now
func (p Policy) IsUrgent(departure, now time.Time) bool {
	return departure.Sub(now) < p.UrgentWindow
}

// ResponseTimeout is how long the manager has to respond
func (p Policy) ResponseTimeout(urgent bool) time.Duration {
	if urgent {
		return p.UrgentTimeout
	}
	return p.StandardTimeout
}

// Deadline is the instant after which a pending trip expires
func (p Policy) Deadline(from time.Time, urgent bool) time.Time {
	return from.Add(p.ResponseTimeout(urgent))
}

// PendingStatus is the waiting status matching the urgency
func PendingStatus(urgent bool) models.TripStatus {
	if urgent {
		return models.TripStatusPendingUrgent
	}
	return models.TripStatusPendingApproval
}

// InitialStatus decides where a freshly submitted trip starts
func (p Policy) InitialStatus(hasManager bool, departure, now time.Time) models.TripStatus {
	if !hasManager {
		return models.TripStatusAutoApproved
	}
	return PendingStatus(p.IsUrgent(departure, now))
}

// Next resolves the status reached by applying event to from. For escalation
// the urgency picks which pending status the trip returns to.
func Next(from models.TripStatus, event Event, urgent bool) (models.TripStatus, error) {
	if event == EventEscalate && from == models.TripStatusExpired {
		return PendingStatus(urgent), nil
	}
	for _, t := range transitions {
		if t.from == from && t.event == event {
			return t.to, nil
		}
	}
	return "", apperror.ConflictError{
		Resource: "trip",
		Msg:      fmt.Sprintf("cannot %s a trip in status %s", event, from),
	}
}

// ManagerEvent maps a token action to its workflow event
func ManagerEvent(action string) (Event, bool) {
	switch action {
	case ActionApprove:
		return EventManagerApprove, true
	case ActionApproveSolo:
		return EventManagerApproveSolo, true
	case ActionReject:
		return EventManagerReject, true
	}
	return "", false
}

// Token actions embedded in manager approval links
const (
	ActionApprove     = "approve"
	ActionApproveSolo = "approve_solo"
	ActionReject      = "reject"
)

// ManagerActions lists the links sent to a manager for one trip
var ManagerActions = []string{ActionApprove, ActionApproveSolo, ActionReject}
