package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/auth"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employee.EmployeeRepository
	jwt.Service
}

func NewAuthService(employeeRepository employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	account, err := a.EmployeeRepository.GetByUsername(ctx, loginReq.Username)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get employee by username: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(loginReq.Password)); err != nil {
		slog.Debug("Login rejected", "username", loginReq.Username)
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(account.ID, account.Username, account.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Employee:    employee.ToResponse(account),
	}, nil
}
