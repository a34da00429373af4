package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrUsernameExists   = errors.New("username already exists")
)
