package punch

import (
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/validator"
)

const maxActivityLength = 255

type ClockRequest struct {
	Activity string `json:"activity"`
	Action   Action `json:"action"`
}

func (r *ClockRequest) Validate() error {
	var errs validator.ValidationErrors
	errs = validateActionAndActivity(errs, r.Action, r.Activity)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BackfillPunchRequest struct {
	EmployeeID string `json:"employee_id"`
	Activity   string `json:"activity"`
	Action     Action `json:"action"`
	PunchedAt  string `json:"punched_at"`
}

func (r *BackfillPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	errs = validateActionAndActivity(errs, r.Action, r.Activity)
	errs = validatePunchedAt(errs, r.PunchedAt)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CorrectPunchRequest struct {
	ID        int64  `json:"-"`
	Activity  string `json:"activity"`
	Action    Action `json:"action"`
	PunchedAt string `json:"punched_at"`
}

func (r *CorrectPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}
	errs = validateActionAndActivity(errs, r.Action, r.Activity)
	errs = validatePunchedAt(errs, r.PunchedAt)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListPunchesRequest selects punches by employee and calendar date range.
// Dates are YYYY-MM-DD and both ends are inclusive.
type ListPunchesRequest struct {
	EmployeeID string
	From       string
	To         string
}

func (r *ListPunchesRequest) Validate() error {
	var errs validator.ValidationErrors

	var from, to time.Time
	var okFrom, okTo bool
	if r.From != "" {
		if from, okFrom = validator.IsValidDate(r.From); !okFrom {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be a date in YYYY-MM-DD format",
			})
		}
	}
	if r.To != "" {
		if to, okTo = validator.IsValidDate(r.To); !okTo {
			errs = append(errs, validator.ValidationError{
				Field:   "to",
				Message: "to must be a date in YYYY-MM-DD format",
			})
		}
	}
	if okFrom && okTo && to.Before(from) {
		errs = append(errs, validator.ValidationError{
			Field:   "to",
			Message: "to must not be before from",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	Activity   string `json:"activity"`
	Action     Action `json:"action"`
	PunchedAt  string `json:"punched_at"`
	CreatedAt  string `json:"created_at"`
}

func ToResponse(p Punch, loc *time.Location) PunchResponse {
	return PunchResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Activity:   p.Activity,
		Action:     p.Action,
		PunchedAt:  p.PunchedAt.In(loc).Format(time.RFC3339),
		CreatedAt:  p.CreatedAt.In(loc).Format(time.RFC3339),
	}
}

func validateActionAndActivity(errs validator.ValidationErrors, action Action, activity string) validator.ValidationErrors {
	if !action.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of arrive, break, leave",
		})
	}
	if validator.ExceedsLength(activity, maxActivityLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "activity",
			Message: "activity must not exceed 255 characters",
		})
	}
	return errs
}

func validatePunchedAt(errs validator.ValidationErrors, punchedAt string) validator.ValidationErrors {
	if validator.IsEmpty(punchedAt) {
		return append(errs, validator.ValidationError{
			Field:   "punched_at",
			Message: "punched_at is required",
		})
	}
	if _, ok := validator.IsValidDateTime(punchedAt); !ok {
		return append(errs, validator.ValidationError{
			Field:   "punched_at",
			Message: "punched_at must be an RFC 3339 timestamp",
		})
	}
	return errs
}
