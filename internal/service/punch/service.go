package punch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/auth"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/punch"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/timesheet"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/validator"
)

type PunchServiceImpl struct {
	punchRepo    punch.PunchRepository
	employeeRepo employee.EmployeeRepository
	views        timesheet.Invalidator
	loc          *time.Location
	now          func() time.Time
}

func NewPunchService(
	punchRepo punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	views timesheet.Invalidator,
	loc *time.Location,
) punch.PunchService {
	return &PunchServiceImpl{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		views:        views,
		loc:          loc,
		now:          time.Now,
	}
}

// Clock implements punch.PunchService.
func (s *PunchServiceImpl) Clock(ctx context.Context, req punch.ClockRequest) (punch.PunchResponse, error) {
	p, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	req.Activity = strings.TrimSpace(req.Activity)
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	return s.record(ctx, punch.Punch{
		EmployeeID: p.EmployeeID,
		Activity:   req.Activity,
		Action:     req.Action,
		PunchedAt:  s.now(),
	})
}

// Backfill implements punch.PunchService.
func (s *PunchServiceImpl) Backfill(ctx context.Context, req punch.BackfillPunchRequest) (punch.PunchResponse, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return punch.PunchResponse{}, err
	}
	req.Activity = strings.TrimSpace(req.Activity)
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	punchedAt, _ := validator.IsValidDateTime(req.PunchedAt)
	return s.record(ctx, punch.Punch{
		EmployeeID: req.EmployeeID,
		Activity:   req.Activity,
		Action:     req.Action,
		PunchedAt:  punchedAt,
	})
}

// Correct implements punch.PunchService.
func (s *PunchServiceImpl) Correct(ctx context.Context, req punch.CorrectPunchRequest) (punch.PunchResponse, error) {
	admin, err := auth.RequireAdmin(ctx)
	if err != nil {
		return punch.PunchResponse{}, err
	}
	req.Activity = strings.TrimSpace(req.Activity)
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	existing, err := s.punchRepo.GetByID(ctx, req.ID)
	if err != nil {
		return punch.PunchResponse{}, err
	}

	punchedAt, _ := validator.IsValidDateTime(req.PunchedAt)
	replaced, err := s.punchRepo.Replace(ctx, existing.ID, punch.Punch{
		EmployeeID: existing.EmployeeID,
		Activity:   req.Activity,
		Action:     req.Action,
		PunchedAt:  punchedAt,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return punch.PunchResponse{}, err
	}
	s.views.Invalidate(existing.EmployeeID)

	slog.Info("Punch corrected", "old_id", existing.ID, "new_id", replaced.ID, "employee_id", existing.EmployeeID, "by", admin.EmployeeID)
	return punch.ToResponse(replaced, s.loc), nil
}

// Delete implements punch.PunchService.
func (s *PunchServiceImpl) Delete(ctx context.Context, id int64) error {
	admin, err := auth.RequireAdmin(ctx)
	if err != nil {
		return err
	}

	existing, err := s.punchRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.punchRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.views.Invalidate(existing.EmployeeID)

	slog.Info("Punch deleted", "id", id, "employee_id", existing.EmployeeID, "by", admin.EmployeeID)
	return nil
}

// List implements punch.PunchService. Admins without an employee filter see
// every employee's punches.
func (s *PunchServiceImpl) List(ctx context.Context, req punch.ListPunchesRequest) ([]punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var filter punch.PunchFilter
	if !p.IsAdmin() || req.EmployeeID != "" {
		employeeID, err := auth.ResolveEmployee(ctx, req.EmployeeID)
		if err != nil {
			return nil, err
		}
		filter.EmployeeID = &employeeID
	}
	if req.From != "" {
		from, err := time.ParseInLocation(validator.DateLayout, req.From, s.loc)
		if err != nil {
			return nil, err
		}
		filter.From = &from
	}
	if req.To != "" {
		to, err := time.ParseInLocation(validator.DateLayout, req.To, s.loc)
		if err != nil {
			return nil, err
		}
		to = to.AddDate(0, 0, 1)
		filter.To = &to
	}

	punches, err := s.punchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, punch.ToResponse(p, s.loc))
	}
	return responses, nil
}

// record appends a punch for an existing employee and drops the employee's
// cached views.
func (s *PunchServiceImpl) record(ctx context.Context, p punch.Punch) (punch.PunchResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, p.EmployeeID); err != nil {
		return punch.PunchResponse{}, err
	}

	p.CreatedAt = time.Now().UTC()
	created, err := s.punchRepo.Create(ctx, p)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to record punch: %w", err)
	}
	s.views.Invalidate(p.EmployeeID)

	slog.Debug("Punch recorded", "id", created.ID, "employee_id", created.EmployeeID, "action", created.Action)
	return punch.ToResponse(created, s.loc), nil
}
