package directory

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/nebengdinas/internal/pkg/apperror"
	"github.com/piresc/nebengdinas/internal/pkg/database"
	"github.com/piresc/nebengdinas/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var employeeColumns = []string{"id", "email", "name", "role", "manager_id"}

func setupDirectory(t *testing.T) (*Directory, sqlmock.Sqlmock, *miniredis.Miniredis) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	mr := miniredis.RunT(t)
	rc := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	return NewDirectory(sqlx.NewDb(mockDB, "sqlmock"), rc, models.DirectoryConfig{CacheTTL: 5 * time.Minute}), mock, mr
}

func TestGetEmployee_CachesAfterFirstRead(t *testing.T) {
	dir, mock, mr := setupDirectory(t)
	ctx := context.Background()
	id := uuid.New()
	managerID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM employees WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(employeeColumns).AddRow(id.String(), "rina@corp.id", "Rina", models.RoleEmployee, managerID.String()))

	first, err := dir.GetEmployee(ctx, id)
	require.NoError(t, err)
	second, err := dir.GetEmployee(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, managerID, *second.ManagerID)
	assert.Equal(t, 5*time.Minute, mr.TTL(cacheKey(id)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEmployee_NotFound(t *testing.T) {
	dir, mock, _ := setupDirectory(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM employees WHERE id").
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(employeeColumns))

	_, err := dir.GetEmployee(context.Background(), id)

	assert.True(t, apperror.IsNotFound(err))
}

func TestGetEmployee_DatabaseError(t *testing.T) {
	dir, mock, _ := setupDirectory(t)

	mock.ExpectQuery("SELECT (.+) FROM employees WHERE id").WillReturnError(errors.New("conn refused"))

	_, err := dir.GetEmployee(context.Background(), uuid.New())

	require.Error(t, err)
	assert.False(t, apperror.IsNotFound(err))
}

func TestGetManager_NoManager(t *testing.T) {
	dir, _, mr := setupDirectory(t)
	id := uuid.New()

	payload, _ := json.Marshal(models.Employee{ID: id, Email: "ceo@corp.id", Name: "CEO", Role: models.RoleAdmin})
	require.NoError(t, mr.Set(cacheKey(id), string(payload)))

	mgr, err := dir.GetManager(context.Background(), id)

	require.NoError(t, err)
	assert.Nil(t, mgr)
}

func TestEscalationTarget(t *testing.T) {
	dir, mock, _ := setupDirectory(t)
	ctx := context.Background()
	managerID := uuid.New()
	directorID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM employees WHERE id").
		WithArgs(managerID).
		WillReturnRows(sqlmock.NewRows(employeeColumns).AddRow(managerID.String(), "boss@corp.id", "Boss", models.RoleEmployee, directorID.String()))
	mock.ExpectQuery("SELECT (.+) FROM employees WHERE id").
		WithArgs(directorID).
		WillReturnRows(sqlmock.NewRows(employeeColumns).AddRow(directorID.String(), "dir@corp.id", "Director", models.RoleEmployee, nil))

	target, err := dir.EscalationTarget(ctx, managerID)
	require.NoError(t, err)
	assert.Equal(t, "dir@corp.id", target.Email)

	_, err = dir.EscalationTarget(ctx, directorID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestListAdmins(t *testing.T) {
	dir, mock, _ := setupDirectory(t)

	mock.ExpectQuery("SELECT (.+) FROM employees WHERE role").
		WithArgs(models.RoleAdmin).
		WillReturnRows(sqlmock.NewRows(employeeColumns).
			AddRow(uuid.NewString(), "ops@corp.id", "Ops", models.RoleAdmin, nil).
			AddRow(uuid.NewString(), "travel@corp.id", "Travel Desk", models.RoleAdmin, nil))

	admins, err := dir.ListAdmins(context.Background())

	require.NoError(t, err)
	require.Len(t, admins, 2)
	assert.Equal(t, "ops@corp.id", admins[0].Email)
}

func TestGetEmployee_WithoutCache(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()
	dir := NewDirectory(sqlx.NewDb(mockDB, "sqlmock"), nil, models.DirectoryConfig{})
	id := uuid.New()

	for i := 0; i < 2; i++ {
		mock.ExpectQuery("SELECT (.+) FROM employees WHERE id").
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows(employeeColumns).AddRow(id.String(), "a@corp.id", "A", models.RoleEmployee, nil))
	}

	for i := 0; i < 2; i++ {
		_, err := dir.GetEmployee(context.Background(), id)
		require.NoError(t, err)
	}
	assert.Equal(t, defaultCacheTTL, dir.ttl)
	assert.NoError(t, mock.ExpectationsWereMet())
}
