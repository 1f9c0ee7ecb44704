// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tasktrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store. Email uniqueness is enforced by the
// storage itself; Create reports a violation as ErrEmailAlreadyRegistered.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByGoogleID retrieves the user linked to a Google subject id.
	FindByGoogleID(ctx context.Context, googleID string) (*entity.User, error)

	// Create persists a new user and fills in its generated ID and timestamps.
	Create(ctx context.Context, user *entity.User) error
}
