package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/auth"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	bcryptCost   int
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		bcryptCost:   bcrypt.DefaultCost,
	}
}

// HashPassword returns the bcrypt hash stored as the employee's credential.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return employee.EmployeeResponse{}, err
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to generate employee id: %w", err)
	}

	now := time.Now().UTC()
	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		ID:            id.String(),
		Username:      req.Username,
		PasswordHash:  hash,
		Role:          req.Role,
		DisplayName:   req.DisplayName,
		Department:    trimmed(req.Department),
		JobTitle:      trimmed(req.JobTitle),
		VacationQuota: req.VacationQuota,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Created employee", "employee_id", created.ID, "username", created.Username, "role", created.Role)
	return employee.ToResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	id, err := auth.ResolveEmployee(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, req employee.ListEmployeesRequest) ([]employee.EmployeeResponse, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	var filter employee.EmployeeFilter
	if !req.IncludeAdmins {
		role := employee.RoleEmployee
		filter.Role = &role
	}

	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, nil
}

// Update implements employee.EmployeeService. Absent fields keep their value;
// an empty department or job title clears it.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if _, err := auth.RequireAdmin(ctx); err != nil {
		return employee.EmployeeResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.DisplayName != nil {
		current.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.Department != nil {
		current.Department = trimmed(req.Department)
	}
	if req.JobTitle != nil {
		current.JobTitle = trimmed(req.JobTitle)
	}
	if req.VacationQuota != nil {
		current.VacationQuota = req.VacationQuota
	}

	updated, err := s.employeeRepo.Update(ctx, current)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	slog.Info("Updated employee", "employee_id", updated.ID)
	return employee.ToResponse(updated), nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
