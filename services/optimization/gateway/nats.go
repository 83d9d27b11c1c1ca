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

// OptimizationGW publishes optimization group events
type OptimizationGW struct {
	natsClient *natspkg.Client
}

// NewOptimizationGW creates a new optimization gateway
func NewOptimizationGW(client *natspkg.Client) *OptimizationGW {
	return &OptimizationGW{natsClient: client}
}

// PublishGroupProposed announces a new proposal
func (g *OptimizationGW) PublishGroupProposed(ctx context.Context, event models.OptimizationEvent) error {
	return g.publish(ctx, constants.SubjectOptimizationProposed, event)
}

// PublishGroupApproved announces an applied consolidation
func (g *OptimizationGW) PublishGroupApproved(ctx context.Context, event models.OptimizationEvent) error {
	return g.publish(ctx, constants.SubjectOptimizationApproved, event)
}

// PublishGroupRejected announces a discarded proposal
func (g *OptimizationGW) PublishGroupRejected(ctx context.Context, event models.OptimizationEvent) error {
	return g.publish(ctx, constants.SubjectOptimizationRejected, event)
}

func (g *OptimizationGW) publish(ctx context.Context, subject string, event models.OptimizationEvent) error {
	if !g.natsClient.IsConnected() {
		return ErrNotConnected
	}
	if err := g.natsClient.PublishJSON(ctx, subject, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish optimization event",
			logger.String("subject", subject),
			logger.UUID("group_id", event.GroupID),
			logger.Err(err))
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	return nil
}
