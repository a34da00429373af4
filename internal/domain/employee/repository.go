package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUsername(ctx context.Context, username string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, error)
	Update(ctx context.Context, employee Employee) (Employee, error)
	Count(ctx context.Context) (int64, error)
}

// EmployeeFilter narrows List. A nil Role returns every employee.
type EmployeeFilter struct {
	Role *Role
}
