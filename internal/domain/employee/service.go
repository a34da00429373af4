package employee

import "context"

// EmployeeService defines business logic for the employee directory
type EmployeeService interface {
	// Create registers a new employee (admin only)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves one employee; employees may only read themselves
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// List lists employees ordered by display name (admin only)
	List(ctx context.Context, req ListEmployeesRequest) ([]EmployeeResponse, error)

	// Update changes profile fields (admin only). Renaming keeps history linked by id.
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
}
