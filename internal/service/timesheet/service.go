package timesheet

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/config"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/auth"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/punch"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/timesheet"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/cache"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/validator"
)

// allEmployeesScope is the cache scope of company-wide views.
const allEmployeesScope = "*"

type TimesheetServiceImpl struct {
	punchRepo    punch.PunchRepository
	employeeRepo employee.EmployeeRepository
	shifts       *cache.ViewCache[[]timesheet.DayShift]
	loc          *time.Location
	target       time.Duration
	deductBreaks bool

	// generation counts invalidations. A view built across one is not cached.
	generation atomic.Uint64
}

func NewTimesheetService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	shifts *cache.ViewCache[[]timesheet.DayShift],
	accounting config.AccountingConfig,
	loc *time.Location,
) timesheet.TimesheetService {
	target := accounting.DailyTarget
	if target <= 0 {
		target = timesheet.DefaultDailyTarget
	}
	return &TimesheetServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		shifts:       shifts,
		loc:          loc,
		target:       target,
		deductBreaks: accounting.DeductBreaks,
	}
}

// Invalidate implements timesheet.Invalidator.
func (s *TimesheetServiceImpl) Invalidate(employeeID string) {
	s.generation.Add(1)
	removed := s.shifts.InvalidatePrefix(employeeID) + s.shifts.InvalidatePrefix(allEmployeesScope)
	if removed > 0 {
		slog.Debug("shift views invalidated", "employee_id", employeeID, "removed", removed)
	}
}

// Shifts implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Shifts(ctx context.Context, query timesheet.BalanceQuery) ([]timesheet.DayShift, error) {
	_, shifts, err := s.load(ctx, query)
	return shifts, err
}

// load returns the resolved scope and its shifts, named and sorted for display.
func (s *TimesheetServiceImpl) load(ctx context.Context, query timesheet.BalanceQuery) (string, []timesheet.DayShift, error) {
	if err := query.Validate(); err != nil {
		return "", nil, err
	}

	scope, names, err := s.resolveScope(ctx, query)
	if err != nil {
		return "", nil, err
	}

	key := cache.Key(scope, query.From, query.To)
	cached, ok := s.shifts.Get(key)
	if !ok {
		generation := s.generation.Load()
		filter, err := s.punchFilter(scope, query)
		if err != nil {
			return "", nil, err
		}
		punches, err := s.punchRepo.List(ctx, filter)
		if err != nil {
			return "", nil, fmt.Errorf("failed to list punches: %w", err)
		}
		cached = Reconstruct(punches, s.loc, s.deductBreaks)
		if s.generation.Load() == generation {
			s.shifts.Add(key, cached)
		}
	}

	// Cached slices are shared; names go onto a copy.
	shifts := make([]timesheet.DayShift, len(cached))
	copy(shifts, cached)
	for i := range shifts {
		shifts[i].EmployeeName = names[shifts[i].EmployeeID]
	}
	sort.SliceStable(shifts, func(i, j int) bool {
		if !shifts[i].Date.Equal(shifts[j].Date) {
			return shifts[i].Date.Before(shifts[j].Date)
		}
		return shifts[i].EmployeeName < shifts[j].EmployeeName
	})
	return scope, shifts, nil
}

// DailyBalances implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) DailyBalances(ctx context.Context, query timesheet.BalanceQuery) ([]timesheet.DayBalance, error) {
	shifts, err := s.Shifts(ctx, query)
	if err != nil {
		return nil, err
	}
	return Balances(shifts, s.target), nil
}

// AggregateBalance implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) AggregateBalance(ctx context.Context, query timesheet.BalanceQuery) (time.Duration, error) {
	balances, err := s.DailyBalances(ctx, query)
	if err != nil {
		return 0, err
	}
	return Aggregate(balances), nil
}

// Report implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Report(ctx context.Context, query timesheet.BalanceQuery) (timesheet.BalanceReportResponse, error) {
	scope, shifts, err := s.load(ctx, query)
	if err != nil {
		return timesheet.BalanceReportResponse{}, err
	}
	report := BuildReport(Balances(shifts, s.target), query.From, query.To)
	if scope != allEmployeesScope {
		report.EmployeeID = scope
	}
	return report, nil
}

// Export implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Export(ctx context.Context, query timesheet.BalanceQuery, w io.Writer) error {
	report, err := s.Report(ctx, query)
	if err != nil {
		return err
	}
	if err := WriteWorkbook(w, report); err != nil {
		return fmt.Errorf("failed to write timesheet workbook: %w", err)
	}
	return nil
}

// BuildReport rounds balances for display. Totals are summed before rounding.
func BuildReport(balances []timesheet.DayBalance, from, to string) timesheet.BalanceReportResponse {
	days := make([]timesheet.DayBalanceResponse, 0, len(balances))
	for _, b := range balances {
		days = append(days, MapDayBalanceToResponse(b))
	}
	return timesheet.BalanceReportResponse{
		From:           from,
		To:             to,
		Days:           days,
		WorkedHours:    Hours(TotalWorked(balances), 2),
		AggregateHours: Hours(Aggregate(balances), 2),
	}
}

// MapDayBalanceToResponse rounds a balance for display.
func MapDayBalanceToResponse(b timesheet.DayBalance) timesheet.DayBalanceResponse {
	return timesheet.DayBalanceResponse{
		EmployeeID:   b.EmployeeID,
		EmployeeName: b.EmployeeName,
		Date:         b.Date.Format(validator.DateLayout),
		Start:        clockTime(b.Start),
		End:          clockTime(b.End),
		Status:       string(b.Status),
		BreakHours:   Hours(b.BreakTime, 2),
		WorkedHours:  Hours(b.Worked, 2),
		TargetHours:  Hours(b.Target, 2),
		BalanceHours: Hours(b.Balance, 2),
	}
}

// resolveScope checks access and returns the cache scope plus the display
// names of the employees in it.
func (s *TimesheetServiceImpl) resolveScope(ctx context.Context, query timesheet.BalanceQuery) (string, map[string]string, error) {
	if query.All {
		if _, err := auth.RequireAdmin(ctx); err != nil {
			return "", nil, err
		}
		employees, err := s.employeeRepo.List(ctx, employee.EmployeeFilter{})
		if err != nil {
			return "", nil, fmt.Errorf("failed to list employees: %w", err)
		}
		names := make(map[string]string, len(employees))
		for _, e := range employees {
			names[e.ID] = e.DisplayName
		}
		return allEmployeesScope, names, nil
	}

	employeeID, err := auth.ResolveEmployee(ctx, query.EmployeeID)
	if err != nil {
		return "", nil, err
	}
	e, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return "", nil, err
	}
	return e.ID, map[string]string{e.ID: e.DisplayName}, nil
}

// punchFilter turns the inclusive calendar range into instants in the
// configured time zone.
func (s *TimesheetServiceImpl) punchFilter(scope string, query timesheet.BalanceQuery) (punch.PunchFilter, error) {
	var filter punch.PunchFilter
	if scope != allEmployeesScope {
		employeeID := scope
		filter.EmployeeID = &employeeID
	}
	if query.From != "" {
		from, err := time.ParseInLocation(validator.DateLayout, query.From, s.loc)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if query.To != "" {
		to, err := time.ParseInLocation(validator.DateLayout, query.To, s.loc)
		if err != nil {
			return filter, err
		}
		to = to.AddDate(0, 0, 1)
		filter.To = &to
	}
	return filter, nil
}

func clockTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}
