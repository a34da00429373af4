package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/absence"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/auth"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/punch"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingPrincipal):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, auth.ErrAccessDenied):
		Forbidden(w, "Access to another employee's records denied")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUsernameExists):
		Conflict(w, "Username already exists")

	// Punch domain errors
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")

	// Absence domain errors
	case errors.Is(err, absence.ErrAbsenceRequestNotFound):
		NotFound(w, "Absence request not found")
	case errors.Is(err, absence.ErrAbsenceAlreadyDecided):
		Conflict(w, "Absence request already decided")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
