package timesheet

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/config"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/auth"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/punch"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/timesheet"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/cache"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/database"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/validator"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm/logger"
)

var (
	adminCtx = auth.WithPrincipal(context.Background(), auth.Principal{EmployeeID: "adm-1", Username: "admin", Role: employee.RoleAdmin})
	maxCtx   = auth.WithPrincipal(context.Background(), auth.Principal{EmployeeID: "max", Username: "max", Role: employee.RoleEmployee})
)

type serviceFixture struct {
	service *TimesheetServiceImpl
	punches punch.PunchRepository
	shifts  *cache.ViewCache[[]timesheet.DayShift]
}

func setupTimesheetService(t *testing.T) *serviceFixture {
	t.Helper()
	db, err := database.NewSQLiteDB(":memory:", logger.Silent)
	require.NoError(t, err)
	require.NoError(t, sqlite.Migrate(db))

	employees := sqlite.NewEmployeeRepository(db)
	for _, e := range []employee.Employee{
		{ID: "adm-1", Username: "admin", PasswordHash: "x", Role: employee.RoleAdmin, DisplayName: "Admin"},
		{ID: "max", Username: "max", PasswordHash: "x", Role: employee.RoleEmployee, DisplayName: "Max Mustermann"},
		{ID: "erika", Username: "erika", PasswordHash: "x", Role: employee.RoleEmployee, DisplayName: "Erika Musterfrau"},
	} {
		_, err := employees.Create(context.Background(), e)
		require.NoError(t, err)
	}

	shifts, err := cache.New[[]timesheet.DayShift](16)
	require.NoError(t, err)
	punches := sqlite.NewPunchRepository(db)
	accounting := config.AccountingConfig{DailyTarget: 8 * time.Hour, DefaultVacationQuota: 30}

	service := NewTimesheetService(punches, employees, shifts, accounting, berlin).(*TimesheetServiceImpl)
	return &serviceFixture{service: service, punches: punches, shifts: shifts}
}

func (f *serviceFixture) punch(t *testing.T, employeeID string, action punch.Action, at time.Time) {
	t.Helper()
	_, err := f.punches.Create(context.Background(), punch.Punch{EmployeeID: employeeID, Action: action, PunchedAt: at})
	require.NoError(t, err)
}

func TestService_DailyBalances(t *testing.T) {
	f := setupTimesheetService(t)
	f.punch(t, "max", punch.ActionArrive, at(4, 8, 0))
	f.punch(t, "max", punch.ActionLeave, at(4, 17, 0))
	f.punch(t, "max", punch.ActionArrive, at(5, 8, 0))
	f.punch(t, "max", punch.ActionLeave, at(5, 14, 0))

	balances, err := f.service.DailyBalances(maxCtx, timesheet.BalanceQuery{})
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.Equal(t, "2024-03-04", balances[0].Date.Format(validator.DateLayout))
	assert.Equal(t, time.Hour, balances[0].Balance)
	assert.Equal(t, -2*time.Hour, balances[1].Balance)
	assert.Equal(t, "Max Mustermann", balances[0].EmployeeName)

	total, err := f.service.AggregateBalance(maxCtx, timesheet.BalanceQuery{})
	require.NoError(t, err)
	assert.Equal(t, -time.Hour, total)

	again, err := f.service.DailyBalances(maxCtx, timesheet.BalanceQuery{})
	require.NoError(t, err)
	assert.Equal(t, balances, again)
}

func TestService_DateRange(t *testing.T) {
	f := setupTimesheetService(t)
	f.punch(t, "max", punch.ActionArrive, at(4, 8, 0))
	f.punch(t, "max", punch.ActionLeave, at(4, 16, 0))
	f.punch(t, "max", punch.ActionArrive, at(5, 23, 30))

	shifts, err := f.service.Shifts(maxCtx, timesheet.BalanceQuery{From: "2024-03-05", To: "2024-03-05"})
	require.NoError(t, err)
	require.Len(t, shifts, 1)
	assert.Equal(t, timesheet.StatusStillWorking, shifts[0].Status)

	_, err = f.service.Shifts(maxCtx, timesheet.BalanceQuery{From: "2024-03-06", To: "2024-03-01"})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestService_CacheInvalidation(t *testing.T) {
	f := setupTimesheetService(t)
	f.punch(t, "max", punch.ActionArrive, at(4, 8, 0))

	first, err := f.service.Shifts(maxCtx, timesheet.BalanceQuery{})
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, timesheet.StatusStillWorking, first[0].Status)
	_, err = f.service.Shifts(adminCtx, timesheet.BalanceQuery{All: true})
	require.NoError(t, err)
	assert.Equal(t, 2, f.shifts.Len())

	// Written behind the service's back: the cached view stays stale.
	f.punch(t, "max", punch.ActionLeave, at(4, 16, 0))
	stale, err := f.service.Shifts(maxCtx, timesheet.BalanceQuery{})
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusStillWorking, stale[0].Status)

	f.service.Invalidate("max")
	assert.Equal(t, 0, f.shifts.Len())

	fresh, err := f.service.Shifts(maxCtx, timesheet.BalanceQuery{})
	require.NoError(t, err)
	assert.Equal(t, timesheet.StatusCompleted, fresh[0].Status)
	assert.Equal(t, 8*time.Hour, fresh[0].Worked)
}

// writeDuringList runs onList once, after the wrapped List has read its rows.
type writeDuringList struct {
	punch.PunchRepository
	onList func()
}

func (r *writeDuringList) List(ctx context.Context, filter punch.PunchFilter) ([]punch.Punch, error) {
	punches, err := r.PunchRepository.List(ctx, filter)
	if r.onList != nil {
		hook := r.onList
		r.onList = nil
		hook()
	}
	return punches, err
}

func TestService_Shifts_WriteDuringLoadIsNotCached(t *testing.T) {
	// Setup
	f := setupTimesheetService(t)
	f.punch(t, "max", punch.ActionArrive, at(4, 8, 0))

	repo := &writeDuringList{PunchRepository: f.punches}
	service := NewTimesheetService(repo, f.service.employeeRepo, f.shifts,
		config.AccountingConfig{DailyTarget: 8 * time.Hour}, berlin).(*TimesheetServiceImpl)
	repo.onList = func() {
		f.punch(t, "max", punch.ActionLeave, at(4, 16, 0))
		service.Invalidate("max")
	}

	// Act
	during, err := service.Shifts(maxCtx, timesheet.BalanceQuery{})
	require.NoError(t, err)
	after, err := service.Shifts(maxCtx, timesheet.BalanceQuery{})
	require.NoError(t, err)

	// Assert
	require.Len(t, during, 1)
	assert.Equal(t, timesheet.StatusStillWorking, during[0].Status)
	require.Len(t, after, 1)
	assert.Equal(t, timesheet.StatusCompleted, after[0].Status)
	assert.Equal(t, 8*time.Hour, after[0].Worked)
}

func TestService_CachedViewsAreNotShared(t *testing.T) {
	f := setupTimesheetService(t)
	f.punch(t, "max", punch.ActionArrive, at(4, 8, 0))

	first, err := f.service.Shifts(maxCtx, timesheet.BalanceQuery{})
	require.NoError(t, err)
	first[0].EmployeeName = "changed"

	second, err := f.service.Shifts(maxCtx, timesheet.BalanceQuery{})
	require.NoError(t, err)
	assert.Equal(t, "Max Mustermann", second[0].EmployeeName)
}

func TestService_Access(t *testing.T) {
	f := setupTimesheetService(t)

	_, err := f.service.Shifts(maxCtx, timesheet.BalanceQuery{EmployeeID: "erika"})
	assert.ErrorIs(t, err, auth.ErrAccessDenied)

	_, err = f.service.Shifts(maxCtx, timesheet.BalanceQuery{All: true})
	assert.ErrorIs(t, err, auth.ErrAdminPrivilegeRequired)

	_, err = f.service.Shifts(adminCtx, timesheet.BalanceQuery{EmployeeID: "ghost"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	_, err = f.service.Shifts(context.Background(), timesheet.BalanceQuery{})
	assert.ErrorIs(t, err, auth.ErrMissingPrincipal)
}

func TestService_CompanyWideReport(t *testing.T) {
	f := setupTimesheetService(t)
	f.punch(t, "max", punch.ActionArrive, at(4, 8, 0))
	f.punch(t, "max", punch.ActionLeave, at(4, 17, 0))
	f.punch(t, "erika", punch.ActionArrive, at(4, 9, 0))
	f.punch(t, "erika", punch.ActionLeave, at(4, 16, 30))

	report, err := f.service.Report(adminCtx, timesheet.BalanceQuery{All: true})
	require.NoError(t, err)
	assert.Empty(t, report.EmployeeID)
	require.Len(t, report.Days, 2)
	assert.Equal(t, "Erika Musterfrau", report.Days[0].EmployeeName)
	assert.Equal(t, "Max Mustermann", report.Days[1].EmployeeName)
	assert.Equal(t, 16.5, report.WorkedHours)
	assert.Equal(t, 0.5, report.AggregateHours)

	mine, err := f.service.Report(maxCtx, timesheet.BalanceQuery{})
	require.NoError(t, err)
	assert.Equal(t, "max", mine.EmployeeID)
	assert.Equal(t, 1.0, mine.AggregateHours)
}

func TestService_Export(t *testing.T) {
	f := setupTimesheetService(t)
	f.punch(t, "max", punch.ActionArrive, at(4, 8, 0))
	f.punch(t, "max", punch.ActionLeave, at(4, 17, 0))

	var buf bytes.Buffer
	require.NoError(t, f.service.Export(maxCtx, timesheet.BalanceQuery{}, &buf))

	wb, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Employee", rows[0][0])
	assert.Equal(t, []string{"Max Mustermann", "2024-03-04", "08:00", "17:00", "Completed", "0", "9", "8", "1"}, rows[1])
	assert.Equal(t, "Total", rows[2][0])
}
