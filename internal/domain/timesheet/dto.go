package timesheet

import (
	"time"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/validator"
)

// BalanceQuery scopes a balance computation to one employee or, with All, to
// every employee. From and To are inclusive YYYY-MM-DD dates; empty means open.
type BalanceQuery struct {
	EmployeeID string
	All        bool
	From       string
	To         string
}

func (q *BalanceQuery) Validate() error {
	var errs validator.ValidationErrors

	var from, to time.Time
	var okFrom, okTo bool
	if q.From != "" {
		if from, okFrom = validator.IsValidDate(q.From); !okFrom {
			errs = append(errs, validator.ValidationError{
				Field:   "from",
				Message: "from must be a date in YYYY-MM-DD format",
			})
		}
	}
	if q.To != "" {
		if to, okTo = validator.IsValidDate(q.To); !okTo {
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
	if q.All && q.EmployeeID != "" {
		errs = append(errs, validator.ValidationError{
			Field:   "all",
			Message: "all cannot be combined with employee_id",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DayBalanceResponse struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	Start        *string `json:"start,omitempty"`
	End          *string `json:"end,omitempty"`
	Status       string  `json:"status"`
	BreakHours   float64 `json:"break_hours"`
	WorkedHours  float64 `json:"worked_hours"`
	TargetHours  float64 `json:"target_hours"`
	BalanceHours float64 `json:"balance_hours"`
}

type BalanceReportResponse struct {
	EmployeeID     string               `json:"employee_id,omitempty"`
	From           string               `json:"from,omitempty"`
	To             string               `json:"to,omitempty"`
	Days           []DayBalanceResponse `json:"days"`
	WorkedHours    float64              `json:"worked_hours"`
	AggregateHours float64              `json:"aggregate_balance_hours"`
}
