package models

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus represents where a trip sits in the approval workflow
type TripStatus string

const (
	TripStatusPendingApproval TripStatus = "pending_approval"
	TripStatusPendingUrgent   TripStatus = "pending_urgent"
	TripStatusAutoApproved    TripStatus = "auto_approved"
	TripStatusApproved        TripStatus = "approved"
	TripStatusApprovedSolo    TripStatus = "approved_solo"
	TripStatusOptimized       TripStatus = "optimized"
	TripStatusRejected        TripStatus = "rejected"
	TripStatusCancelled       TripStatus = "cancelled"
	TripStatusExpired         TripStatus = "expired"
)

// TripStatuses lists every status a trip can hold. It is an array so its
// length is a compile-time constant.
var TripStatuses = [...]TripStatus{
	TripStatusPendingApproval,
	TripStatusPendingUrgent,
	TripStatusAutoApproved,
	TripStatusApproved,
	TripStatusApprovedSolo,
	TripStatusOptimized,
	TripStatusRejected,
	TripStatusCancelled,
	TripStatusExpired,
}

// Valid reports whether s is one of the known trip statuses
func (s TripStatus) Valid() bool {
	for _, known := range TripStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsPending reports whether the trip still waits on a manager decision
func (s TripStatus) IsPending() bool {
	return s == TripStatusPendingApproval || s == TripStatusPendingUrgent
}

// IsTravelApproved reports whether the trip is cleared to travel
func (s TripStatus) IsTravelApproved() bool {
	switch s {
	case TripStatusApproved, TripStatusApprovedSolo, TripStatusAutoApproved, TripStatusOptimized:
		return true
	}
	return false
}

// ManagerApprovalStatus tracks the manager side of the approval
type ManagerApprovalStatus string

const (
	ManagerApprovalPending     ManagerApprovalStatus = "pending"
	ManagerApprovalApproved    ManagerApprovalStatus = "approved"
	ManagerApprovalRejected    ManagerApprovalStatus = "rejected"
	ManagerApprovalExpired     ManagerApprovalStatus = "expired"
	ManagerApprovalEscalated   ManagerApprovalStatus = "escalated"
	ManagerApprovalOverridden  ManagerApprovalStatus = "overridden"
	ManagerApprovalNotRequired ManagerApprovalStatus = "not_required"
)

// DataType distinguishes live trip records from staged consolidation copies
type DataType string

const (
	DataTypeRaw   DataType = "raw"
	DataTypeTemp  DataType = "temp"
	DataTypeFinal DataType = "final"
)

// VehicleType is the booked vehicle tier
type VehicleType string

const (
	VehicleCar4  VehicleType = "car_4"
	VehicleCar7  VehicleType = "car_7"
	VehicleVan16 VehicleType = "van_16"
)

// VehicleTiers is ordered from smallest to largest
var VehicleTiers = []VehicleType{VehicleCar4, VehicleCar7, VehicleVan16}

// PassengerCapacity returns the seats available to passengers, the driver seat excluded
func (v VehicleType) PassengerCapacity() int {
	switch v {
	case VehicleCar4:
		return 3
	case VehicleCar7:
		return 6
	case VehicleVan16:
		return 15
	}
	return 0
}

// Valid reports whether v is a known vehicle tier
func (v VehicleType) Valid() bool {
	return v.PassengerCapacity() > 0
}

// VehicleForPassengers picks the smallest tier that seats n passengers
func VehicleForPassengers(n int) (VehicleType, bool) {
	if n <= 0 {
		return "", false
	}
	for _, tier := range VehicleTiers {
		if n <= tier.PassengerCapacity() {
			return tier, true
		}
	}
	return "", false
}

// Trip is one logical business-trip booking
type Trip struct {
	ID                    uuid.UUID             `json:"id" db:"id"`
	RequesterID           uuid.UUID             `json:"requester_id" db:"requester_id"`
	RequesterEmail        string                `json:"requester_email" db:"requester_email"`
	RequesterName         string                `json:"requester_name" db:"requester_name"`
	Origin                string                `json:"origin" db:"origin"`
	Destination           string                `json:"destination" db:"destination"`
	DistanceKm            float64               `json:"distance_km" db:"distance_km"`
	DepartureAt           time.Time             `json:"departure_at" db:"departure_at"`
	ReturnAt              *time.Time            `json:"return_at,omitempty" db:"return_at"`
	Purpose               string                `json:"purpose" db:"purpose"`
	PassengerCount        int                   `json:"passenger_count" db:"passenger_count"`
	Status                TripStatus            `json:"status" db:"status"`
	VehicleType           VehicleType           `json:"vehicle_type" db:"vehicle_type"`
	EstimatedCost         float64               `json:"estimated_cost" db:"estimated_cost"`
	ActualCost            *float64              `json:"actual_cost,omitempty" db:"actual_cost"`
	OptimizedGroupID      *uuid.UUID            `json:"optimized_group_id,omitempty" db:"optimized_group_id"`
	DataType              DataType              `json:"data_type" db:"data_type"`
	ParentTripID          *uuid.UUID            `json:"parent_trip_id,omitempty" db:"parent_trip_id"`
	IsUrgent              bool                  `json:"is_urgent" db:"is_urgent"`
	ManagerID             *uuid.UUID            `json:"manager_id,omitempty" db:"manager_id"`
	ManagerEmail          string                `json:"manager_email,omitempty" db:"manager_email"`
	ManagerApprovalStatus ManagerApprovalStatus `json:"manager_approval_status" db:"manager_approval_status"`
	ManagerApprovalToken  *string               `json:"-" db:"manager_approval_token"`
	ManagerTokenExpiresAt *time.Time            `json:"manager_token_expires_at,omitempty" db:"manager_token_expires_at"`
	ManagerApprovedBy     *string               `json:"manager_approved_by,omitempty" db:"manager_approved_by"`
	ManagerDecidedAt      *time.Time            `json:"manager_decided_at,omitempty" db:"manager_decided_at"`
	RejectionReason       *string               `json:"rejection_reason,omitempty" db:"rejection_reason"`
	OverrideReason        *string               `json:"override_reason,omitempty" db:"override_reason"`
	EscalationTargetID    *uuid.UUID            `json:"escalation_target_id,omitempty" db:"escalation_target_id"`
	Notified              bool                  `json:"notified" db:"notified"`
	SubmittedAt           time.Time             `json:"submitted_at" db:"submitted_at"`
	CreatedAt             time.Time             `json:"created_at" db:"created_at"`
	UpdatedAt             time.Time             `json:"updated_at" db:"updated_at"`

	// ApprovedJoins is only loaded by queries that select approved_joins
	ApprovedJoins int `json:"-" db:"approved_joins"`
}

// Occupancy is the number of seats the trip's own booking consumes
func (t *Trip) Occupancy() int {
	if t.PassengerCount < 1 {
		return 1
	}
	return t.PassengerCount
}

// Seats is the trip's own occupancy plus the riders it has accepted
func (t *Trip) Seats() int {
	return t.Occupancy() + t.ApprovedJoins
}

// SubmitTripRequest is the payload for a new trip submission
type SubmitTripRequest struct {
	Origin         string      `json:"origin" validate:"required,max=200"`
	Destination    string      `json:"destination" validate:"required,max=200,nefield=Origin"`
	DistanceKm     float64     `json:"distance_km" validate:"required,gt=0,lte=5000"`
	DepartureAt    time.Time   `json:"departure_at" validate:"required"`
	ReturnAt       *time.Time  `json:"return_at,omitempty"`
	Purpose        string      `json:"purpose" validate:"required,max=500"`
	PassengerCount int         `json:"passenger_count" validate:"omitempty,min=1,max=15"`
	VehicleType    VehicleType `json:"vehicle_type" validate:"omitempty,oneof=car_4 car_7 van_16"`
}

// ManagerDecisionRequest carries the optional reason sent with a reject link
type ManagerDecisionRequest struct {
	Reason string `json:"reason" validate:"max=1000"`
}

// AdminOverrideRequest forces an approval outcome
type AdminOverrideRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
	Solo   bool   `json:"solo"`
}

// EscalateRequest optionally names an explicit escalation target
type EscalateRequest struct {
	TargetID *uuid.UUID `json:"target_id,omitempty"`
}

// SweepResult summarises one timeout sweep run
type SweepResult struct {
	Scanned int         `json:"scanned"`
	Expired []uuid.UUID `json:"expired"`
	Failed  []uuid.UUID `json:"failed,omitempty"`
}

// ManagerDecision is the outcome of a token-based manager decision
type ManagerDecision struct {
	Trip    *Trip  `json:"trip"`
	Outcome string `json:"outcome"`
}

// ApprovalPreview is the trip and action behind a manager link that has
// not been confirmed yet
type ApprovalPreview struct {
	Trip      *Trip     `json:"trip"`
	Action    string    `json:"action"`
	ExpiresAt time.Time `json:"expires_at"`
}
