// Package google implements the Google side of external login: the browser
// consent flow and access-token profile verification.
package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/oauth2"
	googleendpoint "golang.org/x/oauth2/google"

	"tasktrack/config"
	"tasktrack/internal/domain/service"
	"tasktrack/internal/errors"
)

const (
	// StateTTL bounds how long a consent round trip may take.
	StateTTL = 10 * time.Minute

	stateBytes = 32
)

var defaultScopes = []string{"openid", "email", "profile"}

// OAuthService drives the Google consent redirect and code exchange.
type OAuthService struct {
	oauth  *oauth2.Config
	states *cache.Cache
	mu     sync.Mutex
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config) service.OAuthService {
	return NewOAuthServiceWithEndpoint(cfg, googleendpoint.Endpoint)
}

// NewOAuthServiceWithEndpoint builds the service against a custom endpoint pair.
func NewOAuthServiceWithEndpoint(cfg *config.Config, endpoint oauth2.Endpoint) *OAuthService {
	var clientID, clientSecret, callbackURL string
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
		clientSecret = cfg.GoogleOAuth.ClientSecret
		callbackURL = cfg.GoogleOAuth.CallbackURL
	}

	return &OAuthService{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Endpoint:     endpoint,
			Scopes:       defaultScopes,
		},
		states: cache.New(StateTTL, 2*StateTTL),
	}
}

// BuildAuthorizationURL returns the consent URL with a fresh state embedded.
func (s *OAuthService) BuildAuthorizationURL() (string, string, error) {
	state, err := generateState()
	if err != nil {
		return "", "", err
	}
	s.states.Set(state, struct{}{}, cache.DefaultExpiration)

	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline), state, nil
}

// ValidateState validates the state parameter to prevent CSRF attacks.
// A state is accepted at most once.
func (s *OAuthService) ValidateState(state string) bool {
	if state == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.states.Get(state); !ok {
		return false
	}
	s.states.Delete(state)

	return true
}

// ExchangeCode exchanges an authorization code for an access token.
func (s *OAuthService) ExchangeCode(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", errors.New("authorization code is empty")
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange code for token")
	}
	if token.AccessToken == "" {
		return "", errors.New("token response carried no access token")
	}

	return token.AccessToken, nil
}

// generateState generates a cryptographically secure random state string
func generateState() (string, error) {
	buf := make([]byte, stateBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate oauth state")
	}

	return hex.EncodeToString(buf), nil
}
