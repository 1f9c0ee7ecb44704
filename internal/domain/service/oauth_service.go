package service

import (
	"context"

	"tasktrack/internal/domain/entity"
)

// IdentityVerifier exchanges a caller-held provider access token for a
// verified profile.
type IdentityVerifier interface {
	// FetchProfile calls the provider's userinfo endpoint with accessToken.
	FetchProfile(ctx context.Context, accessToken string) (*entity.ExternalProfile, error)

	// GetProvider returns the OAuth provider type
	GetProvider() entity.ProviderType
}

// OAuthService drives the browser consent flow.
type OAuthService interface {
	// BuildAuthorizationURL returns the consent URL and remembers the state it embedded.
	BuildAuthorizationURL() (authURL string, state string, err error)

	// ValidateState consumes a state value; it is valid at most once.
	ValidateState(state string) bool

	// ExchangeCode trades an authorization code for a provider access token.
	ExchangeCode(ctx context.Context, code string) (string, error)
}
