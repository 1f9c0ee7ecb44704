package google

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"tasktrack/config"
	"tasktrack/internal/domain/entity"
	domainerrors "tasktrack/internal/domain/errors"
	"tasktrack/internal/domain/service"
	"tasktrack/internal/errors"
)

const (
	// DefaultUserInfoURL is Google's OpenID userinfo endpoint.
	DefaultUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

// userInfoResponse mirrors the v3 userinfo payload.
type userInfoResponse struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}

// Verifier fetches a Google profile for a caller-held access token.
type Verifier struct {
	userInfoURL string
	client      *http.Client
}

// NewVerifier creates the Google identity verifier.
func NewVerifier(cfg *config.Config) service.IdentityVerifier {
	userInfoURL := DefaultUserInfoURL
	timeout := defaultTimeout
	if cfg.GoogleOAuth != nil {
		if cfg.GoogleOAuth.UserInfoURL != "" {
			userInfoURL = cfg.GoogleOAuth.UserInfoURL
		}
		if cfg.GoogleOAuth.Timeout > 0 {
			timeout = cfg.GoogleOAuth.Timeout
		}
	}

	return &Verifier{
		userInfoURL: userInfoURL,
		client:      &http.Client{Timeout: timeout},
	}
}

// FetchProfile retrieves user information using an access token.
// A non-2xx answer means Google rejected the token.
func (v *Verifier) FetchProfile(ctx context.Context, accessToken string) (*entity.ExternalProfile, error) {
	if accessToken == "" {
		return nil, domainerrors.ErrProviderRejected.WrapMessage("access token is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))

		return nil, domainerrors.ErrProviderRejected.WrapMessage(
			"user info request failed with status " + http.StatusText(resp.StatusCode))
	}

	var info userInfoResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&info); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}
	if info.Sub == "" || info.Email == "" {
		return nil, errors.New("user info response is missing sub or email")
	}

	return &entity.ExternalProfile{
		Subject:       info.Sub,
		Email:         info.Email,
		EmailVerified: info.EmailVerified,
		GivenName:     info.GivenName,
		FamilyName:    info.FamilyName,
	}, nil
}

// GetProvider returns the OAuth provider type
func (v *Verifier) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}
