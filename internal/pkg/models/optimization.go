package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// GroupStatus is the lifecycle state of an optimization group
type GroupStatus string

const (
	GroupStatusProposed GroupStatus = "proposed"
	GroupStatusApproved GroupStatus = "approved"
	GroupStatusRejected GroupStatus = "rejected"
)

// Valid reports whether s is a known group status
func (s GroupStatus) Valid() bool {
	return s == GroupStatusProposed || s.IsTerminal()
}

// IsTerminal reports whether the group can no longer change
func (s GroupStatus) IsTerminal() bool {
	return s == GroupStatusApproved || s == GroupStatusRejected
}

// ProposalSource records which path produced a proposal
type ProposalSource string

const (
	ProposalSourceHeuristic ProposalSource = "heuristic"
	ProposalSourceExternal  ProposalSource = "external"
)

// OptimizationGroup is a proposed consolidation of several trips into one vehicle
type OptimizationGroup struct {
	ID                  uuid.UUID      `json:"id" db:"id"`
	MemberTripIDs       pq.StringArray `json:"member_trip_ids" db:"member_trip_ids"`
	ProposedDepartureAt time.Time      `json:"proposed_departure_at" db:"proposed_departure_at"`
	VehicleType         VehicleType    `json:"vehicle_type" db:"vehicle_type"`
	PassengerTotal      int            `json:"passenger_total" db:"passenger_total"`
	DistanceKm          float64        `json:"distance_km" db:"distance_km"`
	BaselineCost        float64        `json:"baseline_cost" db:"baseline_cost"`
	CombinedCost        float64        `json:"combined_cost" db:"combined_cost"`
	EstimatedSavings    float64        `json:"estimated_savings" db:"estimated_savings"`
	SavingsPercent      float64        `json:"savings_percent" db:"savings_percent"`
	Source              ProposalSource `json:"source" db:"source"`
	Status              GroupStatus    `json:"status" db:"status"`
	CreatedBy           string         `json:"created_by" db:"created_by"`
	ApprovedBy          *string        `json:"approved_by,omitempty" db:"approved_by"`
	DecidedAt           *time.Time     `json:"decided_at,omitempty" db:"decided_at"`
	CreatedAt           time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time      `json:"updated_at" db:"updated_at"`
}

// MemberIDs parses the member trip ids
func (g *OptimizationGroup) MemberIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(g.MemberTripIDs))
	for _, raw := range g.MemberTripIDs {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

// Proposal is a validated consolidation candidate produced by the engine
type Proposal struct {
	MemberTripIDs       []uuid.UUID    `json:"member_trip_ids"`
	ProposedDepartureAt time.Time      `json:"proposed_departure_at"`
	VehicleType         VehicleType    `json:"vehicle_type"`
	PassengerTotal      int            `json:"passenger_total"`
	DistanceKm          float64        `json:"distance_km"`
	BaselineCost        float64        `json:"baseline_cost"`
	CombinedCost        float64        `json:"combined_cost"`
	EstimatedSavings    float64        `json:"estimated_savings"`
	SavingsPercent      float64        `json:"savings_percent"`
	MaxWaitMinutes      float64        `json:"max_wait_minutes"`
	Source              ProposalSource `json:"source"`
}

// PerMemberCost splits the combined cost evenly across members
func (p *Proposal) PerMemberCost() float64 {
	if len(p.MemberTripIDs) == 0 {
		return 0
	}
	return p.CombinedCost / float64(len(p.MemberTripIDs))
}

// Suggestion is a raw grouping returned by an external suggestion source
type Suggestion struct {
	TripIDs []string `json:"trip_ids" validate:"required,min=2,dive,uuid"`
	Reason  string   `json:"reason,omitempty"`
}

// SuggestionConstraints are the limits passed to a suggestion source
type SuggestionConstraints struct {
	MaxWaitMinutes    int     `json:"max_wait_minutes"`
	MinSavingsPercent float64 `json:"min_savings_percent"`
	MaxPassengers     int     `json:"max_passengers"`
}

// ProposeResult summarises one proposal run
type ProposeResult struct {
	Created []*OptimizationGroup `json:"created"`
	Skipped int                  `json:"skipped"`
}

// ProposalDecisionRequest is the admin payload for approve/reject
type ProposalDecisionRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=1000"`
}
