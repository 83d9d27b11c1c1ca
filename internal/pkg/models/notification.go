package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is an outbound email
type Message struct {
	To       []string `json:"to"`
	Cc       []string `json:"cc,omitempty"`
	Subject  string   `json:"subject"`
	TextBody string   `json:"text_body"`
	HTMLBody string   `json:"html_body,omitempty"`
}

// QueuedMessage is a message waiting in the out-of-band retry queue
type QueuedMessage struct {
	Message   Message   `json:"message"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"last_error,omitempty"`
	QueuedAt  time.Time `json:"queued_at"`
}

// TripEvent is published whenever a trip changes state
type TripEvent struct {
	TripID      uuid.UUID  `json:"trip_id"`
	RequesterID uuid.UUID  `json:"requester_id"`
	From        TripStatus `json:"from,omitempty"`
	To          TripStatus `json:"to"`
	Actor       string     `json:"actor,omitempty"`
	OccurredAt  time.Time  `json:"occurred_at"`
}

// OptimizationEvent is published when a group is proposed or decided
type OptimizationEvent struct {
	GroupID       uuid.UUID   `json:"group_id"`
	Status        GroupStatus `json:"status"`
	MemberTripIDs []string    `json:"member_trip_ids"`
	Actor         string      `json:"actor,omitempty"`
	OccurredAt    time.Time   `json:"occurred_at"`
}

// JoinEvent is published when a join request changes state
type JoinEvent struct {
	RequestID     uuid.UUID         `json:"request_id"`
	TripID        uuid.UUID         `json:"trip_id"`
	RequesterID   uuid.UUID         `json:"requester_id"`
	Status        JoinRequestStatus `json:"status"`
	CreatedTripID *uuid.UUID        `json:"created_trip_id,omitempty"`
	OccurredAt    time.Time         `json:"occurred_at"`
}
