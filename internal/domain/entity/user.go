// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns tasks. Accounts are created either by local
// signup (PasswordHash set) or by a first Google login (GoogleID set).
type User struct {
	ID           uuid.UUID // Subject identifier embedded in session tokens.
	Firstname    string
	Lastname     string
	Email        string // Unique across all accounts.
	PasswordHash string // Empty for Google-only accounts.
	GoogleID     string // Google 'sub' claim; empty for local accounts.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasPassword reports whether the account can log in with a password.
func (u *User) HasPassword() bool {
	return u != nil && u.PasswordHash != ""
}

// HasExternalIdentity reports whether the account is linked to Google.
func (u *User) HasExternalIdentity() bool {
	return u != nil && u.GoogleID != ""
}
