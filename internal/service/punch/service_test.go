package punch

import (
	"context"
	"testing"
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/auth"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/punch"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/database"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/validator"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

type recordingInvalidator struct {
	calls []string
}

func (r *recordingInvalidator) Invalidate(employeeID string) {
	r.calls = append(r.calls, employeeID)
}

var (
	adminCtx = auth.WithPrincipal(context.Background(), auth.Principal{EmployeeID: "adm-1", Username: "admin", Role: employee.RoleAdmin})
	annaCtx  = auth.WithPrincipal(context.Background(), auth.Principal{EmployeeID: "emp-1", Username: "anna", Role: employee.RoleEmployee})
	benCtx   = auth.WithPrincipal(context.Background(), auth.Principal{EmployeeID: "emp-2", Username: "ben", Role: employee.RoleEmployee})
)

func setupPunchService(t *testing.T) (*PunchServiceImpl, *recordingInvalidator) {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))

	employees := sqlite.NewEmployeeRepository(db)
	for _, e := range []employee.Employee{
		{ID: "adm-1", Username: "admin", PasswordHash: "x", Role: employee.RoleAdmin, DisplayName: "Admin"},
		{ID: "emp-1", Username: "anna", PasswordHash: "x", Role: employee.RoleEmployee, DisplayName: "Anna"},
		{ID: "emp-2", Username: "ben", PasswordHash: "x", Role: employee.RoleEmployee, DisplayName: "Ben"},
	} {
		_, err := employees.Create(context.Background(), e)
		require.NoError(t, err)
	}

	views := &recordingInvalidator{}
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	service := NewPunchService(sqlite.NewPunchRepository(db), employees, views, berlin).(*PunchServiceImpl)
	service.now = func() time.Time { return time.Date(2026, 3, 2, 7, 30, 0, 0, time.UTC) }
	return service, views
}

func TestClock(t *testing.T) {
	service, views := setupPunchService(t)

	resp, err := service.Clock(annaCtx, punch.ClockRequest{Activity: " Office ", Action: punch.ActionArrive})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "Office", resp.Activity)
	assert.Equal(t, "2026-03-02T08:30:00+01:00", resp.PunchedAt)
	assert.Equal(t, []string{"emp-1"}, views.calls)
}

func TestClock_Errors(t *testing.T) {
	service, views := setupPunchService(t)

	_, err := service.Clock(context.Background(), punch.ClockRequest{Action: punch.ActionArrive})
	assert.ErrorIs(t, err, auth.ErrMissingPrincipal)

	_, err = service.Clock(annaCtx, punch.ClockRequest{Action: "lunch"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "action")

	assert.Empty(t, views.calls)
}

func TestClock_RoundTrip(t *testing.T) {
	service, _ := setupPunchService(t)

	created, err := service.Clock(annaCtx, punch.ClockRequest{Activity: "Remote", Action: punch.ActionBreak})
	require.NoError(t, err)

	listed, err := service.List(annaCtx, punch.ListPunchesRequest{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, created, listed[0])
}

func TestBackfill(t *testing.T) {
	service, views := setupPunchService(t)
	req := punch.BackfillPunchRequest{
		EmployeeID: "emp-2",
		Activity:   "Office",
		Action:     punch.ActionLeave,
		PunchedAt:  "2026-03-01T17:00:00+01:00",
	}

	_, err := service.Backfill(annaCtx, req)
	assert.ErrorIs(t, err, auth.ErrAdminPrivilegeRequired)

	resp, err := service.Backfill(adminCtx, req)
	require.NoError(t, err)
	assert.Equal(t, "emp-2", resp.EmployeeID)
	assert.Equal(t, "2026-03-01T17:00:00+01:00", resp.PunchedAt)
	assert.Equal(t, []string{"emp-2"}, views.calls)

	req.EmployeeID = "ghost"
	_, err = service.Backfill(adminCtx, req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	req.EmployeeID = "emp-2"
	req.PunchedAt = "yesterday"
	_, err = service.Backfill(adminCtx, req)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "punched_at")
}

func TestCorrectAndDelete(t *testing.T) {
	service, views := setupPunchService(t)
	original, err := service.Clock(annaCtx, punch.ClockRequest{Action: punch.ActionArrive})
	require.NoError(t, err)

	_, err = service.Correct(annaCtx, punch.CorrectPunchRequest{ID: original.ID, Action: punch.ActionArrive, PunchedAt: "2026-03-02T08:00:00+01:00"})
	assert.ErrorIs(t, err, auth.ErrAdminPrivilegeRequired)

	corrected, err := service.Correct(adminCtx, punch.CorrectPunchRequest{
		ID:        original.ID,
		Activity:  "Office",
		Action:    punch.ActionArrive,
		PunchedAt: "2026-03-02T08:00:00+01:00",
	})
	require.NoError(t, err)
	assert.NotEqual(t, original.ID, corrected.ID)
	assert.Equal(t, "emp-1", corrected.EmployeeID)
	assert.Equal(t, "2026-03-02T08:00:00+01:00", corrected.PunchedAt)

	_, err = service.Correct(adminCtx, punch.CorrectPunchRequest{ID: original.ID, Action: punch.ActionArrive, PunchedAt: "2026-03-02T08:00:00+01:00"})
	assert.ErrorIs(t, err, punch.ErrPunchNotFound)

	assert.ErrorIs(t, service.Delete(annaCtx, corrected.ID), auth.ErrAdminPrivilegeRequired)
	require.NoError(t, service.Delete(adminCtx, corrected.ID))
	assert.ErrorIs(t, service.Delete(adminCtx, corrected.ID), punch.ErrPunchNotFound)

	assert.Equal(t, []string{"emp-1", "emp-1", "emp-1"}, views.calls)

	remaining, err := service.List(adminCtx, punch.ListPunchesRequest{})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestList_ScopeAndRange(t *testing.T) {
	service, _ := setupPunchService(t)
	backfill := func(employeeID, at string) {
		_, err := service.Backfill(adminCtx, punch.BackfillPunchRequest{EmployeeID: employeeID, Action: punch.ActionArrive, PunchedAt: at})
		require.NoError(t, err)
	}
	// 00:30 Berlin on March 3rd is still March 2nd in UTC.
	backfill("emp-1", "2026-03-02T08:00:00+01:00")
	backfill("emp-1", "2026-03-03T00:30:00+01:00")
	backfill("emp-2", "2026-03-02T09:00:00+01:00")

	mine, err := service.List(annaCtx, punch.ListPunchesRequest{From: "2026-03-02", To: "2026-03-02"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "2026-03-02T08:00:00+01:00", mine[0].PunchedAt)

	_, err = service.List(annaCtx, punch.ListPunchesRequest{EmployeeID: "emp-2"})
	assert.ErrorIs(t, err, auth.ErrAccessDenied)

	bens, err := service.List(benCtx, punch.ListPunchesRequest{})
	require.NoError(t, err)
	assert.Len(t, bens, 1)

	all, err := service.List(adminCtx, punch.ListPunchesRequest{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "emp-1", all[0].EmployeeID)
	assert.Equal(t, "emp-2", all[1].EmployeeID)

	_, err = service.List(adminCtx, punch.ListPunchesRequest{From: "2026-03-05", To: "2026-03-01"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}
