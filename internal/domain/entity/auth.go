package entity

import "github.com/google/uuid"

// ProviderType names the origin of a credential.
type ProviderType string

const (
	ProviderTypeEmail  ProviderType = "email"
	ProviderTypeGoogle ProviderType = "google"
)

// Credential is what a caller presents at signup or login: either a local
// password or an external provider id. Exactly one variant is ever set.
type Credential interface {
	Provider() ProviderType
	isCredential()
}

// LocalCredential carries a plaintext password. An empty Password means the
// caller did not send one.
type LocalCredential struct {
	Password string
}

func (LocalCredential) Provider() ProviderType { return ProviderTypeEmail }
func (LocalCredential) isCredential()          {}

// ExternalCredential carries a provider-issued subject id.
type ExternalCredential struct {
	ProviderID string
}

func (ExternalCredential) Provider() ProviderType { return ProviderTypeGoogle }
func (ExternalCredential) isCredential()          {}

// Identity is the authenticated caller derived from a verified session token.
// It lives for a single request.
type Identity struct {
	UserID uuid.UUID
}

// ExternalProfile is a verified profile returned by an identity provider.
type ExternalProfile struct {
	Subject       string
	Email         string
	EmailVerified bool
	GivenName     string
	FamilyName    string
}
