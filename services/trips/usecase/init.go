package usecase

import (
	"time"

	"github.com/piresc/nebengdinas/internal/pkg/approval"
	"github.com/piresc/nebengdinas/internal/pkg/database"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/services/trips"
)

// TripUC implements the trip approval workflow
type TripUC struct {
	cfg       *models.Config
	tripRepo  trips.TripRepo
	tx        database.Transactor
	tokens    trips.TokenService
	directory trips.Directory
	notifier  trips.Notifier
	tripGW    trips.TripGW
	policy    approval.Policy
	now       func() time.Time
}

// NewTripUC creates a new trip usecase instance
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	tx database.Transactor,
	tokens trips.TokenService,
	directory trips.Directory,
	notifier trips.Notifier,
	tripGW trips.TripGW,
) *TripUC {
	return &TripUC{
		cfg:       cfg,
		tripRepo:  tripRepo,
		tx:        tx,
		tokens:    tokens,
		directory: directory,
		notifier:  notifier,
		tripGW:    tripGW,
		policy:    approval.NewPolicy(cfg.Approval),
		now:       time.Now,
	}
}
