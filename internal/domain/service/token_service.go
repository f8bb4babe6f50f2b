package service

import (
	"github.com/golang-jwt/jwt/v5"

	"taskboard/internal/domain/entity"
)

// Claims defines the custom claims carried by issued tokens. The subject is
// the user's email; the role travels alongside for stateless authorization.
type Claims struct {
	Email string
	Role  entity.Role
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer
// credentials. It abstracts the token mechanics from the use cases.
type TokenService interface {
	// Issue creates a signed token bound to the given identity and role and
	// returns it together with its validity duration in milliseconds.
	Issue(email string, role entity.Role) (token string, expiresInMillis int64, err error)

	// Validate checks a token string and returns its claims when valid.
	Validate(tokenString string) (*Claims, error)
}
