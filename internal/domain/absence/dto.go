package absence

import (
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/validator"
)

type CreateAbsenceRequest struct {
	EmployeeID string `json:"employee_id,omitempty"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Kind       Kind   `json:"kind"`
	Comment    string `json:"comment"`
}

func (r *CreateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a date in YYYY-MM-DD format",
		})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a date in YYYY-MM-DD format",
		})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if !r.Kind.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of vacation, sick, training",
		})
	}

	if validator.ExceedsLength(r.Comment, 1000) {
		errs = append(errs, validator.ValidationError{
			Field:   "comment",
			Message: "comment must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideAbsenceRequest struct {
	ID       int64    `json:"-"`
	Decision Decision `json:"decision"`
	Note     *string  `json:"note,omitempty"`
}

func (r *DecideAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	if _, ok := r.Decision.Status(); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be approve or reject",
		})
	}
	if r.Note != nil && validator.ExceedsLength(*r.Note, 1000) {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListAbsencesRequest struct {
	EmployeeID string
	Status     string
	Kind       string
}

func (r *ListAbsencesRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != "" && !Status(r.Status).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of pending, approved, rejected",
		})
	}
	if r.Kind != "" && !Kind(r.Kind).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "kind",
			Message: "kind must be one of vacation, sick, training",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AbsenceResponse struct {
	ID         int64   `json:"id"`
	EmployeeID string  `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Days       int     `json:"days"`
	Kind       Kind    `json:"kind"`
	Comment    string  `json:"comment"`
	Status     Status  `json:"status"`
	AdminNote  *string `json:"admin_note,omitempty"`
	DecidedBy  *string `json:"decided_by,omitempty"`
	DecidedAt  *string `json:"decided_at,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type VacationStats struct {
	EmployeeID string `json:"employee_id"`
	Quota      int    `json:"quota"`
	Taken      int    `json:"taken"`
	Remaining  int    `json:"remaining"`
}

type SickDaysResponse struct {
	EmployeeID string `json:"employee_id"`
	Days       int    `json:"days"`
}

// ToResponse converts an AbsenceRequest; days is its inclusive length.
func ToResponse(a AbsenceRequest, days int) AbsenceResponse {
	var decidedAt *string
	if a.DecidedAt != nil {
		s := a.DecidedAt.Format(time.RFC3339)
		decidedAt = &s
	}
	return AbsenceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		StartDate:  a.StartDate.Format(validator.DateLayout),
		EndDate:    a.EndDate.Format(validator.DateLayout),
		Days:       days,
		Kind:       a.Kind,
		Comment:    a.Comment,
		Status:     a.Status,
		AdminNote:  a.AdminNote,
		DecidedBy:  a.DecidedBy,
		DecidedAt:  decidedAt,
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
	}
}
