package employee

import (
	"time"
)

type Employee struct {
	ID            string
	Username      string
	PasswordHash  string
	Role          Role
	DisplayName   string
	Department    *string
	JobTitle      *string
	VacationQuota *int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// QuotaOr returns the employee's annual vacation quota, or fallback when the
// profile does not carry one.
func (e Employee) QuotaOr(fallback int) int {
	if e.VacationQuota == nil {
		return fallback
	}
	return *e.VacationQuota
}
