package dashboard

import (
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/absence"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/timesheet"
)

// ========== COMPANY COCKPIT ==========

// CompanyOverviewResponse is the combined response for the admin cockpit
type CompanyOverviewResponse struct {
	EmployeeCount        int                   `json:"employee_count"`
	PendingRequests      int                   `json:"pending_requests"`
	WorkedHours          float64               `json:"worked_hours"`
	BalanceHours         float64               `json:"balance_hours"`
	ApprovedVacationDays int                   `json:"approved_vacation_days"`
	TotalVacationQuota   int                   `json:"total_vacation_quota"`
	VacationUtilization  float64               `json:"vacation_utilization_percent"`
	SickDays             int                   `json:"sick_days"`
	Employees            []EmployeeKPIResponse `json:"employees"`
	GeneratedAt          string                `json:"generated_at"`
}

// EmployeeKPIResponse is one row of the cockpit's employee table
type EmployeeKPIResponse struct {
	EmployeeID        string  `json:"employee_id"`
	DisplayName       string  `json:"display_name"`
	Department        *string `json:"department,omitempty"`
	JobTitle          *string `json:"job_title,omitempty"`
	DaysWorked        int     `json:"days_worked"`
	BalanceHours      float64 `json:"balance_hours"`
	VacationQuota     int     `json:"vacation_quota"`
	VacationTaken     int     `json:"vacation_taken"`
	VacationRemaining int     `json:"vacation_remaining"`
	SickDays          int     `json:"sick_days"`
	PendingRequests   int     `json:"pending_requests"`
}

// ========== EMPLOYEE OVERVIEW ==========

type EmployeeOverviewResponse struct {
	Employee       employee.EmployeeResponse     `json:"employee"`
	DaysWorked     int                           `json:"days_worked"`
	WorkedHours    float64                       `json:"worked_hours"`
	BalanceHours   float64                       `json:"balance_hours"`
	Today          *timesheet.DayBalanceResponse `json:"today,omitempty"`
	Vacation       absence.VacationStats         `json:"vacation"`
	SickDays       int                           `json:"sick_days"`
	RecentRequests []absence.AbsenceResponse     `json:"recent_requests"`
}
