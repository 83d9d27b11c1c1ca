// Package directory looks up employees, their managers and the
// administrator list. Employee rows are cached in redis with a TTL.
package directory

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/constants"
	"github.com/piresc/nebengdinas/internal/pkg/database"
	"github.com/piresc/nebengdinas/internal/pkg/logger"
	"github.com/piresc/nebengdinas/internal/pkg/models"
)

const defaultCacheTTL = 10 * time.Minute

// Directory is the postgres-backed identity directory
type Directory struct {
	db    *sqlx.DB
	redis *database.RedisClient
	ttl   time.Duration
}

// NewDirectory creates a directory. A nil redis client disables caching.
func NewDirectory(db *sqlx.DB, redis *database.RedisClient, cfg models.DirectoryConfig) *Directory {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &Directory{db: db, redis: redis, ttl: ttl}
}

// GetEmployee returns the employee with id
func (d *Directory) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	if emp, ok := d.cached(ctx, id); ok {
		return emp, nil
	}

	query := `SELECT id, email, name, role, manager_id FROM employees WHERE id = $1`

	var emp models.Employee
	if err := d.db.GetContext(ctx, &emp, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFoundError{Resource: "employee", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	d.store(ctx, &emp)
	return &emp, nil
}

// GetManager returns the direct manager of the employee, or nil when the
// employee reports to nobody.
func (d *Directory) GetManager(ctx context.Context, employeeID uuid.UUID) (*models.Employee, error) {
	emp, err := d.GetEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if emp.ManagerID == nil {
		return nil, nil
	}
	return d.GetEmployee(ctx, *emp.ManagerID)
}

// EscalationTarget returns the manager's own manager
func (d *Directory) EscalationTarget(ctx context.Context, managerID uuid.UUID) (*models.Employee, error) {
	target, err := d.GetManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, apperror.NotFoundError{Resource: "escalation target", ID: managerID.String()}
	}
	return target, nil
}

// ListAdmins returns every administrator, ordered by name
func (d *Directory) ListAdmins(ctx context.Context) ([]*models.Employee, error) {
	query := `SELECT id, email, name, role, manager_id FROM employees WHERE role = $1 ORDER BY name`

	var admins []*models.Employee
	if err := d.db.SelectContext(ctx, &admins, query, models.RoleAdmin); err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

func (d *Directory) cached(ctx context.Context, id uuid.UUID) (*models.Employee, bool) {
	if d.redis == nil {
		return nil, false
	}
	raw, err := d.redis.Get(ctx, cacheKey(id))
	if err != nil {
		if !database.IsNil(err) {
			logger.Warn("Directory cache read failed", logger.UUID("employee_id", id), logger.Err(err))
		}
		return nil, false
	}

	var emp models.Employee
	if err := json.Unmarshal([]byte(raw), &emp); err != nil {
		return nil, false
	}
	return &emp, true
}

func (d *Directory) store(ctx context.Context, emp *models.Employee) {
	if d.redis == nil {
		return
	}
	payload, err := json.Marshal(emp)
	if err != nil {
		return
	}
	if err := d.redis.Set(ctx, cacheKey(emp.ID), payload, d.ttl); err != nil {
		logger.Warn("Directory cache write failed", logger.UUID("employee_id", emp.ID), logger.Err(err))
	}
}

func cacheKey(id uuid.UUID) string {
	return fmt.Sprintf(constants.KeyEmployee, id)
}
