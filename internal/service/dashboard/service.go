package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/config"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/absence"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/auth"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/dashboard"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/timesheet"
	absencesvc "github.com/mrbeatmaker/zeiterfassung-demo/internal/service/absence"
	timesheetsvc "github.com/mrbeatmaker/zeiterfassung-demo/internal/service/timesheet"
	"golang.org/x/sync/errgroup"
)

const recentRequestLimit = 5

type DashboardServiceImpl struct {
	employeeRepo         employee.EmployeeRepository
	absenceRepo          absence.AbsenceRepository
	timesheets           timesheet.TimesheetService
	defaultQuota         int
	sickRequiresApproval bool
	loc                  *time.Location
	now                  func() time.Time
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	absenceRepo absence.AbsenceRepository,
	timesheets timesheet.TimesheetService,
	accounting config.AccountingConfig,
	loc *time.Location,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:         employeeRepo,
		absenceRepo:          absenceRepo,
		timesheets:           timesheets,
		defaultQuota:         accounting.DefaultVacationQuota,
		sickRequiresApproval: accounting.SickRequiresApproval,
		loc:                  loc,
		now:                  time.Now,
	}
}

// Company returns the admin cockpit. Employees, absences and balances are
// loaded in parallel. Totals cover non-admin employees only, so BalanceHours
// differs from the company-wide AggregateBalance when admins punch.
func (s *DashboardServiceImpl) Company(ctx context.Context) (*dashboard.CompanyOverviewResponse, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	var (
		employees []employee.Employee
		requests  []absence.AbsenceRequest
		balances  []timesheet.DayBalance
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		role := employee.RoleEmployee
		list, err := s.employeeRepo.List(gCtx, employee.EmployeeFilter{Role: &role})
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		employees = list
		return nil
	})

	g.Go(func() error {
		list, err := s.absenceRepo.List(gCtx, absence.AbsenceFilter{})
		if err != nil {
			return fmt.Errorf("failed to list absence requests: %w", err)
		}
		requests = list
		return nil
	})

	g.Go(func() error {
		list, err := s.timesheets.DailyBalances(gCtx, timesheet.BalanceQuery{All: true})
		if err != nil {
			return err
		}
		balances = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	requestsByEmployee := make(map[string][]absence.AbsenceRequest)
	for _, r := range requests {
		requestsByEmployee[r.EmployeeID] = append(requestsByEmployee[r.EmployeeID], r)
	}
	balancesByEmployee := make(map[string][]timesheet.DayBalance)
	for _, b := range balances {
		balancesByEmployee[b.EmployeeID] = append(balancesByEmployee[b.EmployeeID], b)
	}

	overview := &dashboard.CompanyOverviewResponse{
		EmployeeCount: len(employees),
		Employees:     make([]dashboard.EmployeeKPIResponse, 0, len(employees)),
		GeneratedAt:   s.now().In(s.loc).Format(time.RFC3339),
	}

	var worked, balance time.Duration
	for _, e := range employees {
		own := requestsByEmployee[e.ID]
		days := balancesByEmployee[e.ID]
		stats := absencesvc.ComputeVacationStats(e.ID, own, e.QuotaOr(s.defaultQuota))
		sick := absencesvc.CountSickDays(own, s.sickRequiresApproval)
		pending := countPending(own)
		employeeBalance := timesheetsvc.Aggregate(days)

		overview.Employees = append(overview.Employees, dashboard.EmployeeKPIResponse{
			EmployeeID:        e.ID,
			DisplayName:       e.DisplayName,
			Department:        e.Department,
			JobTitle:          e.JobTitle,
			DaysWorked:        countCompleted(days),
			BalanceHours:      timesheetsvc.Hours(employeeBalance, 2),
			VacationQuota:     stats.Quota,
			VacationTaken:     stats.Taken,
			VacationRemaining: stats.Remaining,
			SickDays:          sick,
			PendingRequests:   pending,
		})

		worked += timesheetsvc.TotalWorked(days)
		balance += employeeBalance
		overview.ApprovedVacationDays += stats.Taken
		overview.TotalVacationQuota += stats.Quota
		overview.SickDays += sick
	}

	overview.PendingRequests = countPending(requests)
	overview.WorkedHours = timesheetsvc.Hours(worked, 2)
	overview.BalanceHours = timesheetsvc.Hours(balance, 2)
	overview.VacationUtilization = absencesvc.UtilizationRate(overview.ApprovedVacationDays, overview.TotalVacationQuota)

	return overview, nil
}

// Employee implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Employee(ctx context.Context, employeeID string) (*dashboard.EmployeeOverviewResponse, error) {
	employeeID, err := auth.ResolveEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	var (
		profile  employee.Employee
		requests []absence.AbsenceRequest
		balances []timesheet.DayBalance
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		e, err := s.employeeRepo.GetByID(gCtx, employeeID)
		if err != nil {
			return err
		}
		profile = e
		return nil
	})

	g.Go(func() error {
		list, err := s.absenceRepo.List(gCtx, absence.AbsenceFilter{EmployeeID: &employeeID})
		if err != nil {
			return fmt.Errorf("failed to list absence requests: %w", err)
		}
		requests = list
		return nil
	})

	g.Go(func() error {
		list, err := s.timesheets.DailyBalances(gCtx, timesheet.BalanceQuery{EmployeeID: employeeID})
		if err != nil {
			return err
		}
		balances = list
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview := &dashboard.EmployeeOverviewResponse{
		Employee:       employee.ToResponse(profile),
		DaysWorked:     countCompleted(balances),
		WorkedHours:    timesheetsvc.Hours(timesheetsvc.TotalWorked(balances), 2),
		BalanceHours:   timesheetsvc.Hours(timesheetsvc.Aggregate(balances), 2),
		Vacation:       absencesvc.ComputeVacationStats(employeeID, requests, profile.QuotaOr(s.defaultQuota)),
		SickDays:       absencesvc.CountSickDays(requests, s.sickRequiresApproval),
		RecentRequests: make([]absence.AbsenceResponse, 0, recentRequestLimit),
	}

	today := s.now().In(s.loc)
	for _, b := range balances {
		y, m, d := b.Date.Date()
		if y == today.Year() && m == today.Month() && d == today.Day() {
			resp := timesheetsvc.MapDayBalanceToResponse(b)
			overview.Today = &resp
			break
		}
	}

	for i, r := range requests {
		if i == recentRequestLimit {
			break
		}
		overview.RecentRequests = append(overview.RecentRequests, absence.ToResponse(r, absencesvc.InclusiveDays(r)))
	}

	return overview, nil
}

// Me implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Me(ctx context.Context) (*dashboard.EmployeeOverviewResponse, error) {
	return s.Employee(ctx, "")
}

// countCompleted counts days with both an arrive and a later leave.
func countCompleted(days []timesheet.DayBalance) int {
	n := 0
	for _, d := range days {
		if d.Status == timesheet.StatusCompleted {
			n++
		}
	}
	return n
}

func countPending(requests []absence.AbsenceRequest) int {
	n := 0
	for _, r := range requests {
		if r.Status == absence.StatusPending {
			n++
		}
	}
	return n
}
