package jwt

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/auth"
	"github.com/mrbeatmaker/zeiterfassung-demo/internal/domain/employee"
)

const tokenTypeAccess = "access"

type Service interface {
	GenerateAccessToken(employeeID string, username string, role employee.Role) (token string, expiresAt int64, err error)
	// PrincipalFromClaims rebuilds the caller identity from verified claims.
	PrincipalFromClaims(claims map[string]interface{}) (auth.Principal, error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	now                       func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		now:                       time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(employeeID string, username string, role employee.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = j.now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"employee_id": employeeID,
		"username":    username,
		"role":        string(role),
		"type":        tokenTypeAccess,
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) PrincipalFromClaims(claims map[string]interface{}) (auth.Principal, error) {
	tokenType, ok := claims["type"].(string)
	if !ok || tokenType != tokenTypeAccess {
		return auth.Principal{}, auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return auth.Principal{}, fmt.Errorf("%w: employee_id claim missing", auth.ErrInvalidToken)
	}
	username, _ := claims["username"].(string)

	role := employee.Role(fmt.Sprint(claims["role"]))
	if !role.IsValid() {
		return auth.Principal{}, fmt.Errorf("%w: unknown role %q", auth.ErrInvalidToken, role)
	}

	return auth.Principal{EmployeeID: employeeID, Username: username, Role: role}, nil
}

// ParseAccessToken verifies a raw token and returns its principal.
func ParseAccessToken(ctx context.Context, s Service, tokenString string) (auth.Principal, error) {
	token, err := jwtauth.VerifyToken(s.JWTAuth(), tokenString)
	if err != nil {
		return auth.Principal{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	claims, err := token.AsMap(ctx)
	if err != nil {
		return auth.Principal{}, fmt.Errorf("%w: %v", auth.ErrInvalidToken, err)
	}
	return s.PrincipalFromClaims(claims)
}
