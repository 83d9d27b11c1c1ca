package usecase

import (
	"time"

	"github.com/piresc/nebengdinas/internal/pkg/database"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/piresc/nebengdinas/services/joins"
	"github.com/piresc/nebengdinas/services/trips"
)

// JoinUC implements the join request workflow
type JoinUC struct {
	cfg       *models.Config
	joinRepo  joins.JoinRepo
	tripRepo  trips.TripRepo
	tx        database.Transactor
	creator   joins.TripCreator
	directory joins.Directory
	notifier  joins.Notifier
	joinGW    joins.JoinGW
	loc       *time.Location
	now       func() time.Time
}

// NewJoinUC creates a new join usecase instance. Calendar dates are taken
// in loc; nil means UTC.
func NewJoinUC(
	cfg *models.Config,
	joinRepo joins.JoinRepo,
	tripRepo trips.TripRepo,
	tx database.Transactor,
	creator joins.TripCreator,
	directory joins.Directory,
	notifier joins.Notifier,
	joinGW joins.JoinGW,
	loc *time.Location,
) *JoinUC {
	if loc == nil {
		loc = time.UTC
	}
	return &JoinUC{
		cfg:       cfg,
		joinRepo:  joinRepo,
		tripRepo:  tripRepo,
		tx:        tx,
		creator:   creator,
		directory: directory,
		notifier:  notifier,
		joinGW:    joinGW,
		loc:       loc,
		now:       time.Now,
	}
}
