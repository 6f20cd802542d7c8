package security

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Identity is the claim set the HRMS API issues; the client only consumes
// it. Employee id scopes the "my" views, role gates the admin screens.
type Identity struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

type IdentityClaims struct {
	Identity
	jwt.RegisteredClaims
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// CreateIdentityToken mints an HS256 token, used by cmd/createtoken and
// by the endpoint tests.
func CreateIdentityToken(identity *Identity, base64Secret string, expiresInSeconds int64) (string, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", err
	}
	claims := IdentityClaims{
		Identity: *identity,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "peoplehub",
			Audience:  []string{"api.peoplehub.com"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiresInSeconds) * time.Second)),
		},
	}

	// HS256 signing method (symmetric key)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secretBytes))
}

// ParseIdentityToken validates the signature and expiry and returns the
// embedded identity.
func ParseIdentityToken(tokenStr, base64Secret string) (*Identity, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return nil, err
	}

	var claims IdentityClaims
	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secretBytes, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	return &claims.Identity, nil
}
