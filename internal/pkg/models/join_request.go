package models

import (
	"time"

	"github.com/google/uuid"
)

// JoinRequestStatus is the lifecycle state of a join request
type JoinRequestStatus string

const (
	JoinRequestPending   JoinRequestStatus = "pending"
	JoinRequestApproved  JoinRequestStatus = "approved"
	JoinRequestRejected  JoinRequestStatus = "rejected"
	JoinRequestCancelled JoinRequestStatus = "cancelled"
)

// Valid reports whether s is a known request status
func (s JoinRequestStatus) Valid() bool {
	switch s {
	case JoinRequestPending, JoinRequestApproved, JoinRequestRejected, JoinRequestCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the request has been decided
func (s JoinRequestStatus) IsTerminal() bool {
	return s != JoinRequestPending
}

// JoinRequest is a rider's request to join an existing booking
type JoinRequest struct {
	ID             uuid.UUID         `json:"id" db:"id"`
	TripID         uuid.UUID         `json:"trip_id" db:"trip_id"`
	RequesterID    uuid.UUID         `json:"requester_id" db:"requester_id"`
	RequesterEmail string            `json:"requester_email" db:"requester_email"`
	RequesterName  string            `json:"requester_name" db:"requester_name"`
	ManagerID      *uuid.UUID        `json:"manager_id,omitempty" db:"manager_id"`
	ManagerEmail   string            `json:"manager_email,omitempty" db:"manager_email"`
	Reason         string            `json:"reason" db:"reason"`
	Status         JoinRequestStatus `json:"status" db:"status"`
	AdminNotes     *string           `json:"admin_notes,omitempty" db:"admin_notes"`
	DecidedBy      *string           `json:"decided_by,omitempty" db:"decided_by"`
	DecidedAt      *time.Time        `json:"decided_at,omitempty" db:"decided_at"`
	CreatedTripID  *uuid.UUID        `json:"created_trip_id,omitempty" db:"created_trip_id"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at" db:"updated_at"`
}

// JoinTripRequest is the rider payload for requesting a seat
type JoinTripRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

// JoinDecisionRequest is the admin payload for approve/reject
type JoinDecisionRequest struct {
	Notes string `json:"notes,omitempty" validate:"max=1000"`
}

// JoinApproval is returned when a join request is approved
type JoinApproval struct {
	Request *JoinRequest `json:"request"`
	Trip    *Trip        `json:"trip"`
}
