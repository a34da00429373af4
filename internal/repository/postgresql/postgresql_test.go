package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/absence"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/punch"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/database"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB connects to TEST_DATABASE_URL and empties the tables. Tests are
// skipped when no database is configured.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, postgresql.Migrate(ctx, db))
	_, err = db.Exec(ctx, "TRUNCATE TABLE employees, punches, absence_requests RESTART IDENTITY")
	require.NoError(t, err)
	return db
}

func TestEmployeeRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	created, err := repo.Create(ctx, employee.Employee{
		ID:           "0190f7a0-0000-7000-8000-000000000001",
		Username:     "anna",
		PasswordHash: "hash",
		Role:         employee.RoleEmployee,
		DisplayName:  "Anna Schmidt",
	})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	_, err = repo.Create(ctx, employee.Employee{
		ID:           "0190f7a0-0000-7000-8000-000000000002",
		Username:     "anna",
		PasswordHash: "hash",
		Role:         employee.RoleEmployee,
		DisplayName:  "Duplicate",
	})
	assert.ErrorIs(t, err, employee.ErrUsernameExists)

	quota := 20
	updated, err := repo.Update(ctx, employee.Employee{ID: created.ID, DisplayName: "Anna S.", VacationQuota: &quota})
	require.NoError(t, err)
	assert.Equal(t, "Anna S.", updated.DisplayName)
	assert.Equal(t, 20, updated.QuotaOr(30))

	_, err = repo.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestPunchRepository(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewPunchRepository(db)

	arrive, err := repo.Create(ctx, punch.Punch{
		EmployeeID: "emp-1",
		Action:     punch.ActionArrive,
		PunchedAt:  time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = repo.Create(ctx, punch.Punch{
		EmployeeID: "emp-1",
		Action:     punch.ActionLeave,
		PunchedAt:  time.Date(2026, 3, 2, 16, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	replaced, err := repo.Replace(ctx, arrive.ID, punch.Punch{
		EmployeeID: "emp-1",
		Action:     punch.ActionArrive,
		PunchedAt:  time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	emp := "emp-1"
	list, err := repo.List(ctx, punch.PunchFilter{EmployeeID: &emp})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, replaced.ID, list[0].ID)

	assert.ErrorIs(t, repo.Delete(ctx, arrive.ID), punch.ErrPunchNotFound)
}

func TestAbsenceRepository_Decide(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := postgresql.NewAbsenceRepository(db)

	req, err := repo.Create(ctx, absence.AbsenceRequest{
		EmployeeID: "emp-1",
		StartDate:  time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 7, 3, 0, 0, 0, 0, time.UTC),
		Kind:       absence.KindVacation,
	})
	require.NoError(t, err)
	assert.Equal(t, absence.StatusPending, req.Status)

	decided, err := repo.Decide(ctx, req.ID, absence.StatusRejected, nil, "adm-1")
	require.NoError(t, err)
	assert.Equal(t, absence.StatusRejected, decided.Status)

	_, err = repo.Decide(ctx, req.ID, absence.StatusApproved, nil, "adm-1")
	assert.ErrorIs(t, err, absence.ErrAbsenceAlreadyDecided)

	_, err = repo.Decide(ctx, req.ID+1, absence.StatusApproved, nil, "adm-1")
	assert.ErrorIs(t, err, absence.ErrAbsenceRequestNotFound)
}
