package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless session tokens.
type TokenService interface {
	// IssueToken signs a token whose subject is userID.
	IssueToken(userID uuid.UUID) (string, error)

	// ValidateToken checks signature and expiry and decodes the subject.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenDuration returns the configured token lifetime.
	TokenDuration() time.Duration
}
