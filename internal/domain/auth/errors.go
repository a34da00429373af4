package auth

import "errors"

var (
	ErrInvalidCredentials     = errors.New("invalid username or password")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrMissingPrincipal       = errors.New("no authenticated principal in context")
	ErrAccessDenied           = errors.New("access to another employee's records denied")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
