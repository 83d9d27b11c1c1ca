package optimization

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/nebengdinas/internal/pkg/models"
)

//go:generate mockgen -source=usecase.go -destination=mocks/mock_usecase.go -package=mocks

// OptimizationUC proposes and decides trip consolidations
type OptimizationUC interface {
	ProposeOptimization(ctx context.Context, admin models.Identity) (*models.ProposeResult, error)
	ListProposals(ctx context.Context, status models.GroupStatus) ([]*models.OptimizationGroup, error)
	GetProposal(ctx context.Context, id uuid.UUID) (*models.OptimizationGroup, error)
	ApproveProposal(ctx context.Context, admin models.Identity, id uuid.UUID) (*models.OptimizationGroup, error)
	RejectProposal(ctx context.Context, admin models.Identity, id uuid.UUID, req *models.ProposalDecisionRequest) (*models.OptimizationGroup, error)
}
