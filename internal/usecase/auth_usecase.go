// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"tasktrack/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Firstname  string
	Lastname   string
	Email      string
	Credential entity.Credential
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email      string
	Credential entity.Credential
}

// --- Output DTOs ---

// SessionAction tells the delivery layer what to do with the session carrier.
type SessionAction int

const (
	// SessionKeep leaves the carrier untouched.
	SessionKeep SessionAction = iota
	// SessionSet stores Token in the carrier.
	SessionSet
	// SessionClear empties the carrier.
	SessionClear
)

// SessionDirective is returned instead of mutating the request.
type SessionDirective struct {
	Action SessionAction
	Token  string
}

// SetSession builds a directive that stores token.
func SetSession(token string) SessionDirective {
	return SessionDirective{Action: SessionSet, Token: token}
}

// ClearSession builds a directive that empties the carrier.
func ClearSession() SessionDirective {
	return SessionDirective{Action: SessionClear}
}

// AuthOutput is the result of every auth operation.
type AuthOutput struct {
	Status  int
	Message string
	UserID  uuid.UUID
	Token   string
	// Created is set when a Google login registered a new account.
	Created bool
	Session SessionDirective
}

// AuthUsecase defines the interface for signup, login and logout.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	// HandleExternalAuth signs a caller in with a Google access token,
	// creating the account on first use.
	HandleExternalAuth(ctx context.Context, accessToken string) (*AuthOutput, error)
	Logout(ctx context.Context) *AuthOutput
}

// TokenSources holds every place a session token may arrive from, as
// extracted by the delivery layer.
type TokenSources struct {
	Session             string
	AuthorizationHeader string
	Query               string
}

// Authorizer decides whether a request may reach a protected route.
type Authorizer interface {
	Authorize(ctx context.Context, sources TokenSources) (entity.Identity, error)
}
