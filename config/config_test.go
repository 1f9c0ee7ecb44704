package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{
		JWT:      JWTConfig{Secret: "secret"},
		Cookie:   CookieConfig{Keys: []string{"key-one", "key-two"}},
		Postgres: &PostgresConfig{Host: "localhost"},
	}
	cfg.applyDefaults()

	return cfg
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpiresIn)
	assert.Equal(t, "session", cfg.Cookie.Name)
	assert.Equal(t, 7*24*time.Hour, cfg.Cookie.MaxAge)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 10*time.Second, cfg.GoogleOAuth.Timeout)
	assert.Equal(t, "50M", cfg.HTTP.MaxRequestBodySize)
}

func TestConfig_ProductionDisablesQueryToken(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{AllowQueryToken: true}}
	cfg.Env.Env = "production"
	cfg.applyDefaults()

	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.Auth.AllowQueryToken)

	dev := &Config{Auth: &AuthConfig{AllowQueryToken: true}}
	dev.Env.Env = "development"
	dev.applyDefaults()
	assert.True(t, dev.Auth.AllowQueryToken)
}

func TestConfig_Validate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	noSecret := validConfig()
	noSecret.JWT.Secret = ""
	assert.ErrorContains(t, noSecret.Validate(), "jwt.secret")

	oneKey := validConfig()
	oneKey.Cookie.Keys = []string{"only"}
	assert.ErrorContains(t, oneKey.Validate(), "cookie.keys")

	blankKey := validConfig()
	blankKey.Cookie.Keys = []string{"one", " "}
	assert.ErrorContains(t, blankKey.Validate(), "cookie.keys[1]")

	noDB := validConfig()
	noDB.Postgres = nil
	assert.ErrorContains(t, noDB.Validate(), "postgres.host")
}
