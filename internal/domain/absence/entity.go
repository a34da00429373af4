package absence

import (
	"time"
)

// AbsenceRequest is one vacation, sick or training application. StartDate and
// EndDate are calendar dates at midnight UTC; both ends are inclusive.
type AbsenceRequest struct {
	ID         int64
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	Kind       Kind
	Comment    string
	Status     Status
	AdminNote  *string
	DecidedBy  *string
	DecidedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Kind string

const (
	KindVacation Kind = "vacation"
	KindSick     Kind = "sick"
	KindTraining Kind = "training"
)

func (k Kind) IsValid() bool {
	return k == KindVacation || k == KindSick || k == KindTraining
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Status returns the status a decision moves a pending request to.
func (d Decision) Status() (Status, bool) {
	switch d {
	case DecisionApprove:
		return StatusApproved, true
	case DecisionReject:
		return StatusRejected, true
	default:
		return "", false
	}
}
