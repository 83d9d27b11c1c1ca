package usecase

import (
	"time"

	"github.com/piresc/nebengdinas/internal/pkg/database"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/services/optimization"
)

// OptimizationUC implements the consolidation proposal lifecycle
type OptimizationUC struct {
	cfg      *models.Config
	repo     optimization.OptimizationRepo
	tx       database.Transactor
	engine   optimization.Engine
	notifier optimization.Notifier
	optGW    optimization.OptimizationGW
	now      func() time.Time
}

// NewOptimizationUC creates a new optimization usecase instance
func NewOptimizationUC(
	cfg *models.Config,
	repo optimization.OptimizationRepo,
	tx database.Transactor,
	engine optimization.Engine,
	notifier optimization.Notifier,
	optGW optimization.OptimizationGW,
) *OptimizationUC {
	return &OptimizationUC{
		cfg:      cfg,
		repo:     repo,
		tx:       tx,
		engine:   engine,
		notifier: notifier,
		optGW:    optGW,
		now:      time.Now,
	}
}
