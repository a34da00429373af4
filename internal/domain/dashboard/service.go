package dashboard

import "context"

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// Company returns the company-wide cockpit (admin only)
	Company(ctx context.Context) (*CompanyOverviewResponse, error)

	// Employee returns the KPIs of one employee; employees may only read themselves
	Employee(ctx context.Context, employeeID string) (*EmployeeOverviewResponse, error)

	// Me returns the KPIs of the caller
	Me(ctx context.Context) (*EmployeeOverviewResponse, error)
}
