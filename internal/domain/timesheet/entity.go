package timesheet

import (
	"time"
)

// DefaultDailyTarget is the fixed number of hours owed per worked day.
const DefaultDailyTarget = 8 * time.Hour

type ShiftStatus string

const (
	StatusCompleted    ShiftStatus = "Completed"
	StatusStillWorking ShiftStatus = "Still working"
	StatusMissing      ShiftStatus = "Missing"
)

// DayShift is the work interval reconstructed from one employee's punches on
// one calendar date.
type DayShift struct {
	EmployeeID string
	Date       time.Time
	Start      *time.Time
	End        *time.Time
	BreakTime  time.Duration
	Worked     time.Duration
	Status     ShiftStatus

	// Attached at read time, never cached.
	EmployeeName string
}

type DayBalance struct {
	DayShift
	Target  time.Duration
	Balance time.Duration
}
