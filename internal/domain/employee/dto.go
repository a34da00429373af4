package employee

import (
	"strings"
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Username      string  `json:"username"`
	Password      string  `json:"password"`
	Role          Role    `json:"role"`
	DisplayName   string  `json:"display_name"`
	Department    *string `json:"department,omitempty"`
	JobTitle      *string `json:"job_title,omitempty"`
	VacationQuota *int    `json:"vacation_quota,omitempty"`
}

// Normalize lowercases the username and defaults the role.
func (r *CreateEmployeeRequest) Normalize() {
	r.Username = strings.ToLower(strings.TrimSpace(r.Username))
	r.DisplayName = strings.TrimSpace(r.DisplayName)
	if r.Role == "" {
		r.Role = RoleEmployee
	}
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters of a-z, 0-9, '.', '_' or '-'",
		})
	}

	if len(r.Password) < 4 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 4 characters",
		})
	}

	if !r.Role.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or employee",
		})
	}

	if validator.IsEmpty(r.DisplayName) {
		errs = append(errs, validator.ValidationError{
			Field:   "display_name",
			Message: "display_name is required",
		})
	} else if validator.ExceedsLength(r.DisplayName, 255) {
		errs = append(errs, validator.ValidationError{
			Field:   "display_name",
			Message: "display_name must not exceed 255 characters",
		})
	}

	if r.VacationQuota != nil && *r.VacationQuota < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "vacation_quota",
			Message: "vacation_quota must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID            string  `json:"-"`
	DisplayName   *string `json:"display_name,omitempty"`
	Department    *string `json:"department,omitempty"`
	JobTitle      *string `json:"job_title,omitempty"`
	VacationQuota *int    `json:"vacation_quota,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.DisplayName != nil {
		if validator.IsEmpty(*r.DisplayName) {
			errs = append(errs, validator.ValidationError{
				Field:   "display_name",
				Message: "display_name must not be empty",
			})
		} else if validator.ExceedsLength(*r.DisplayName, 255) {
			errs = append(errs, validator.ValidationError{
				Field:   "display_name",
				Message: "display_name must not exceed 255 characters",
			})
		}
	}

	if r.VacationQuota != nil && *r.VacationQuota < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "vacation_quota",
			Message: "vacation_quota must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListEmployeesRequest struct {
	IncludeAdmins bool `json:"include_admins"`
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Role          Role    `json:"role"`
	DisplayName   string  `json:"display_name"`
	Department    *string `json:"department,omitempty"`
	JobTitle      *string `json:"job_title,omitempty"`
	VacationQuota *int    `json:"vacation_quota,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:            e.ID,
		Username:      e.Username,
		Role:          e.Role,
		DisplayName:   e.DisplayName,
		Department:    e.Department,
		JobTitle:      e.JobTitle,
		VacationQuota: e.VacationQuota,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     e.UpdatedAt.Format(time.RFC3339),
	}
}
