package fixtures

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/absence"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/punch"
	employeeService "github.com/mrbeatmaker/zeiterfassung-demo/internal/service/employee"
	"golang.org/x/crypto/bcrypt"
)

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

const (
	demoActivity    = "Projekt Alpha"
	demoWorkdays    = 5
	demoVacationIn  = 10
	demoVacationLen = 5
)

// DemoAccount is one seeded login.
type DemoAccount struct {
	Username      string
	Password      string
	Role          employee.Role
	DisplayName   string
	Department    string
	JobTitle      string
	VacationQuota int
}

var DemoAccounts = []DemoAccount{
	{Username: "admin", Password: "admin123", Role: employee.RoleAdmin, DisplayName: "HR Admin", Department: "HR", JobTitle: "Head of HR", VacationQuota: 30},
	{Username: "max", Password: "1234", Role: employee.RoleEmployee, DisplayName: "Max Mustermann", Department: "IT", JobTitle: "Senior Developer", VacationQuota: 30},
	{Username: "erika", Password: "1234", Role: employee.RoleEmployee, DisplayName: "Erika Musterfrau", Department: "Marketing", JobTitle: "Content Manager", VacationQuota: 28},
}

// Seeder fills an empty database with demo accounts, a week of punches and a
// pending vacation request.
type Seeder struct {
	Employees  employee.EmployeeRepository
	Punches    punch.PunchRepository
	Absences   absence.AbsenceRepository
	Location   *time.Location
	BcryptCost int
}

// Seed does nothing when any employee exists. It reports whether data was
// written.
func (s *Seeder) Seed(ctx context.Context, now time.Time) (bool, error) {
	count, err := s.Employees.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		slog.Debug("Demo data skipped, employees already exist", "count", count)
		return false, nil
	}

	cost := s.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	ids := make(map[string]string, len(DemoAccounts))
	for _, account := range DemoAccounts {
		hash, err := employeeService.HashPassword(account.Password, cost)
		if err != nil {
			return false, fmt.Errorf("failed to hash demo password: %w", err)
		}
		id, err := uuid.NewV7()
		if err != nil {
			return false, err
		}
		created, err := s.Employees.Create(ctx, employee.Employee{
			ID:            id.String(),
			Username:      account.Username,
			PasswordHash:  hash,
			Role:          account.Role,
			DisplayName:   account.DisplayName,
			Department:    strPtr(account.Department),
			JobTitle:      strPtr(account.JobTitle),
			VacationQuota: intPtr(account.VacationQuota),
			CreatedAt:     now.UTC(),
			UpdatedAt:     now.UTC(),
		})
		if err != nil {
			return false, fmt.Errorf("failed to seed employee %s: %w", account.Username, err)
		}
		ids[account.Username] = created.ID
	}

	maxID := ids["max"]
	for _, day := range previousWeekdays(now.In(s.Location), demoWorkdays) {
		for _, p := range []struct {
			action punch.Action
			hour   int
		}{{punch.ActionArrive, 8}, {punch.ActionLeave, 17}} {
			at := time.Date(day.Year(), day.Month(), day.Day(), p.hour, 0, 0, 0, s.Location)
			if _, err := s.Punches.Create(ctx, punch.Punch{
				EmployeeID: maxID,
				Activity:   demoActivity,
				Action:     p.action,
				PunchedAt:  at,
				CreatedAt:  now.UTC(),
			}); err != nil {
				return false, fmt.Errorf("failed to seed punch: %w", err)
			}
		}
	}

	local := now.In(s.Location)
	start := time.Date(local.Year(), local.Month(), local.Day()+demoVacationIn, 0, 0, 0, 0, time.UTC)
	if _, err := s.Absences.Create(ctx, absence.AbsenceRequest{
		EmployeeID: maxID,
		StartDate:  start,
		EndDate:    start.AddDate(0, 0, demoVacationLen-1),
		Kind:       absence.KindVacation,
		Comment:    "Sommerurlaub",
		Status:     absence.StatusPending,
		CreatedAt:  now.UTC(),
		UpdatedAt:  now.UTC(),
	}); err != nil {
		return false, fmt.Errorf("failed to seed absence request: %w", err)
	}

	slog.Info("Seeded demo data", "employees", len(DemoAccounts), "workdays", demoWorkdays)
	return true, nil
}

// previousWeekdays returns the n weekdays before day, oldest first.
func previousWeekdays(day time.Time, n int) []time.Time {
	days := make([]time.Time, n)
	for d := day.AddDate(0, 0, -1); n > 0; d = d.AddDate(0, 0, -1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		n--
		days[n] = d
	}
	return days
}
