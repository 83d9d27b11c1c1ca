package optimization

import (
	"context"

	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/internal/pkg/notifier"
)

//go:generate mockgen -source=gateway.go -destination=mocks/mock_gateway.go -package=mocks

// SuggestionSource proposes groupings from outside the heuristic
type SuggestionSource interface {
	Suggest(ctx context.Context, trips []*models.Trip, constraints models.SuggestionConstraints) ([]models.Suggestion, error)
}

// Engine turns eligible trips into validated proposals
type Engine interface {
	Propose(ctx context.Context, trips []*models.Trip) []models.Proposal
}

// Notifier sends templated mail after commit
type Notifier interface {
	Notify(ctx context.Context, name string, to, cc []string, data notifier.Data)
}

// OptimizationGW publishes group lifecycle events
type OptimizationGW interface {
	PublishGroupProposed(ctx context.Context, event models.OptimizationEvent) error
	PublishGroupApproved(ctx context.Context, event models.OptimizationEvent) error
	PublishGroupRejected(ctx context.Context, event models.OptimizationEvent) error
}
