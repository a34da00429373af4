package auth

import (
	"context"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	EmployeeID string
	Username   string
	Role       employee.Role
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns ErrMissingPrincipal when the request was not
// authenticated.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok || p.EmployeeID == "" {
		return Principal{}, ErrMissingPrincipal
	}
	return p, nil
}

func (p Principal) IsAdmin() bool {
	return p.Role == employee.RoleAdmin
}

// CanAccess reports whether p may read or act on the records of employeeID.
func (p Principal) CanAccess(employeeID string) bool {
	return p.IsAdmin() || p.EmployeeID == employeeID
}

// RequireAdmin returns the principal when it is an admin.
func RequireAdmin(ctx context.Context) (Principal, error) {
	p, err := PrincipalFromContext(ctx)
	if err != nil {
		return Principal{}, err
	}
	if !p.IsAdmin() {
		return Principal{}, ErrAdminPrivilegeRequired
	}
	return p, nil
}

// ResolveEmployee picks the employee a call acts on: the requested one, or the
// caller when none was requested.
func ResolveEmployee(ctx context.Context, requested string) (string, error) {
	p, err := PrincipalFromContext(ctx)
	if err != nil {
		return "", err
	}
	if requested == "" {
		return p.EmployeeID, nil
	}
	if !p.CanAccess(requested) {
		return "", ErrAccessDenied
	}
	return requested, nil
}
