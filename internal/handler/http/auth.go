package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/auth"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Debug("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee logged in", "employee_id", tokenResponse.Employee.ID)
	response.SuccessWithMessage(w, "Login successful", tokenResponse)
}
