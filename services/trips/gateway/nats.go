package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/piresc/nebengdinas/internal/pkg/constants"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	natspkg "github.com/piresc/nebengdinas/internal/pkg/nats"
)

// ErrNotConnected is returned when no NATS connection is available
var ErrNotConnected = errors.New("nats client is not connected")

// TripGW publishes trip lifecycle events
type TripGW struct {
	natsClient *natspkg.Client
}

// NewTripGW creates a new trip gateway. A nil client turns every publish
// into ErrNotConnected.
func NewTripGW(client *natspkg.Client) *TripGW {
	return &TripGW{natsClient: client}
}

// PublishTripSubmitted announces a new trip
func (g *TripGW) PublishTripSubmitted(ctx context.Context, event models.TripEvent) error {
	return g.publish(ctx, constants.SubjectTripSubmitted, event)
}

// PublishTripStatusChanged announces a status transition
func (g *TripGW) PublishTripStatusChanged(ctx context.Context, event models.TripEvent) error {
	return g.publish(ctx, constants.SubjectTripStatusChanged, event)
}

func (g *TripGW) publish(ctx context.Context, subject string, event models.TripEvent) error {
	if !g.natsClient.IsConnected() {
		return ErrNotConnected
	}
	if err := g.natsClient.PublishJSON(ctx, subject, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish trip event",
			logger.String("subject", subject),
			logger.UUID("trip_id", event.TripID),
			logger.Err(err))
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	logger.Debug("Published trip event",
		logger.String("subject", subject),
		logger.UUID("trip_id", event.TripID),
		logger.String("to", string(event.To)))
	return nil
}
