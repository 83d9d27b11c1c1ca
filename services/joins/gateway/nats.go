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

// JoinGW publishes join request events
type JoinGW struct {
	natsClient *natspkg.Client
}

// NewJoinGW creates a new join gateway
func NewJoinGW(client *natspkg.Client) *JoinGW {
	return &JoinGW{natsClient: client}
}

func (g *JoinGW) PublishJoinRequested(ctx context.Context, event models.JoinEvent) error {
	return g.publish(ctx, constants.SubjectJoinRequested, event)
}

func (g *JoinGW) PublishJoinApproved(ctx context.Context, event models.JoinEvent) error {
	return g.publish(ctx, constants.SubjectJoinApproved, event)
}

func (g *JoinGW) PublishJoinRejected(ctx context.Context, event models.JoinEvent) error {
	return g.publish(ctx, constants.SubjectJoinRejected, event)
}

func (g *JoinGW) PublishJoinCancelled(ctx context.Context, event models.JoinEvent) error {
	return g.publish(ctx, constants.SubjectJoinCancelled, event)
}

func (g *JoinGW) publish(ctx context.Context, subject string, event models.JoinEvent) error {
	if !g.natsClient.IsConnected() {
		return ErrNotConnected
	}
	if err := g.natsClient.PublishJSON(ctx, subject, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish join event",
			logger.String("subject", subject),
			logger.UUID("request_id", event.RequestID),
			logger.Err(err))
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}
