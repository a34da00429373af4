package absence

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/config"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/absence"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/auth"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/validator"
)

type AbsenceServiceImpl struct {
	absenceRepo          absence.AbsenceRepository
	employeeRepo         employee.EmployeeRepository
	defaultQuota         int
	sickRequiresApproval bool
}

func NewAbsenceService(
	absenceRepo absence.AbsenceRepository,
	employeeRepo employee.EmployeeRepository,
	accounting config.AccountingConfig,
) absence.AbsenceService {
	return &AbsenceServiceImpl{
		absenceRepo:          absenceRepo,
		employeeRepo:         employeeRepo,
		defaultQuota:         accounting.DefaultVacationQuota,
		sickRequiresApproval: accounting.SickRequiresApproval,
	}
}

// Request implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Request(ctx context.Context, req absence.CreateAbsenceRequest) (absence.AbsenceResponse, error) {
	req.Comment = strings.TrimSpace(req.Comment)
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	employeeID, err := auth.ResolveEmployee(ctx, req.EmployeeID)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return absence.AbsenceResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	created, err := s.absenceRepo.Create(ctx, absence.AbsenceRequest{
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
		Kind:       req.Kind,
		Comment:    req.Comment,
		Status:     absence.StatusPending,
	})
	if err != nil {
		return absence.AbsenceResponse{}, fmt.Errorf("failed to create absence request: %w", err)
	}

	slog.Info("Absence requested", "request_id", created.ID, "employee_id", employeeID, "kind", created.Kind)
	return absence.ToResponse(created, InclusiveDays(created)), nil
}

// Decide implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Decide(ctx context.Context, req absence.DecideAbsenceRequest) (absence.AbsenceResponse, error) {
	admin, err := auth.RequireAdmin(ctx)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}
	if req.Note != nil {
		note := strings.TrimSpace(*req.Note)
		req.Note = &note
		if note == "" {
			req.Note = nil
		}
	}
	if err := req.Validate(); err != nil {
		return absence.AbsenceResponse{}, err
	}

	status, _ := req.Decision.Status()
	decided, err := s.absenceRepo.Decide(ctx, req.ID, status, req.Note, admin.EmployeeID)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	slog.Info("Absence decided", "request_id", decided.ID, "status", decided.Status, "decided_by", admin.EmployeeID)
	return absence.ToResponse(decided, InclusiveDays(decided)), nil
}

// Delete implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return err
	}
	return s.absenceRepo.Delete(ctx, id)
}

// Get implements absence.AbsenceService.
func (s *AbsenceServiceImpl) Get(ctx context.Context, id int64) (absence.AbsenceResponse, error) {
	p, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}

	request, err := s.absenceRepo.GetByID(ctx, id)
	if err != nil {
		return absence.AbsenceResponse{}, err
	}
	if !p.CanAccess(request.EmployeeID) {
		return absence.AbsenceResponse{}, auth.ErrAccessDenied
	}
	return absence.ToResponse(request, InclusiveDays(request)), nil
}

// List implements absence.AbsenceService. Admins without an employee filter
// see every request.
func (s *AbsenceServiceImpl) List(ctx context.Context, req absence.ListAbsencesRequest) ([]absence.AbsenceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p, err := auth.PrincipalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var filter absence.AbsenceFilter
	if !p.IsAdmin() || req.EmployeeID != "" {
		employeeID, err := auth.ResolveEmployee(ctx, req.EmployeeID)
		if err != nil {
			return nil, err
		}
		filter.EmployeeID = &employeeID
	}
	if req.Status != "" {
		status := absence.Status(req.Status)
		filter.Status = &status
	}
	if req.Kind != "" {
		kind := absence.Kind(req.Kind)
		filter.Kind = &kind
	}

	return s.list(ctx, filter)
}

// ListPending implements absence.AbsenceService.
func (s *AbsenceServiceImpl) ListPending(ctx context.Context) ([]absence.AbsenceResponse, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	status := absence.StatusPending
	return s.list(ctx, absence.AbsenceFilter{Status: &status})
}

// VacationStats implements absence.AbsenceService.
func (s *AbsenceServiceImpl) VacationStats(ctx context.Context, employeeID string) (absence.VacationStats, error) {
	employeeID, err := auth.ResolveEmployee(ctx, employeeID)
	if err != nil {
		return absence.VacationStats{}, err
	}
	e, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return absence.VacationStats{}, err
	}

	kind := absence.KindVacation
	requests, err := s.absenceRepo.List(ctx, absence.AbsenceFilter{EmployeeID: &employeeID, Kind: &kind})
	if err != nil {
		return absence.VacationStats{}, fmt.Errorf("failed to list vacation requests: %w", err)
	}
	return ComputeVacationStats(employeeID, requests, e.QuotaOr(s.defaultQuota)), nil
}

// SickDays implements absence.AbsenceService.
func (s *AbsenceServiceImpl) SickDays(ctx context.Context, employeeID string) (absence.SickDaysResponse, error) {
	employeeID, err := auth.ResolveEmployee(ctx, employeeID)
	if err != nil {
		return absence.SickDaysResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return absence.SickDaysResponse{}, err
	}

	kind := absence.KindSick
	requests, err := s.absenceRepo.List(ctx, absence.AbsenceFilter{EmployeeID: &employeeID, Kind: &kind})
	if err != nil {
		return absence.SickDaysResponse{}, fmt.Errorf("failed to list sick requests: %w", err)
	}
	return absence.SickDaysResponse{
		EmployeeID: employeeID,
		Days:       CountSickDays(requests, s.sickRequiresApproval),
	}, nil
}

func (s *AbsenceServiceImpl) list(ctx context.Context, filter absence.AbsenceFilter) ([]absence.AbsenceResponse, error) {
	requests, err := s.absenceRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list absence requests: %w", err)
	}
	responses := make([]absence.AbsenceResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, absence.ToResponse(r, InclusiveDays(r)))
	}
	return responses, nil
}
