package auth

import (
	"strings"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Username = strings.ToLower(strings.TrimSpace(r.Username))

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken string                    `json:"access_token"`
	ExpiresAt   int64                     `json:"expires_at"`
	Employee    employee.EmployeeResponse `json:"employee"`
}
