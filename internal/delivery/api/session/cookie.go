// Package session stores the session token in a signed cookie.
package session

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"

	"tasktrack/config"
	"tasktrack/internal/domain/service"
	"tasktrack/internal/errors"
	"tasktrack/internal/usecase"
)

type payload struct {
	JWT string `json:"jwt"`
}

// Carrier reads and writes the session cookie. The first configured key
// signs; every key is accepted when reading, so keys can be rotated.
type Carrier struct {
	name     string
	domain   string
	maxAge   time.Duration
	secure   bool
	sameSite http.SameSite
	codecs   []securecookie.Codec
}

// ErrCookieOutlivedByToken is returned when the cookie would expire before
// the token it carries.
var ErrCookieOutlivedByToken = errors.New("cookie max age is shorter than the token lifetime")

// NewCarrier builds the carrier from cookie configuration. The cookie must
// live at least as long as tokens issued by tokens.
func NewCarrier(cfg *config.Config, tokens service.TokenService) (*Carrier, error) {
	if ttl := tokens.TokenDuration(); cfg.Cookie.MaxAge < ttl {
		return nil, errors.Wrapf(ErrCookieOutlivedByToken, "max age %s, token lifetime %s", cfg.Cookie.MaxAge, ttl)
	}

	pairs := make([][]byte, 0, len(cfg.Cookie.Keys)*2)
	for _, key := range cfg.Cookie.Keys {
		pairs = append(pairs, []byte(key), nil)
	}

	codecs := securecookie.CodecsFromPairs(pairs...)
	for _, codec := range codecs {
		if sc, ok := codec.(*securecookie.SecureCookie); ok {
			sc.MaxAge(int(cfg.Cookie.MaxAge.Seconds()))
			sc.SetSerializer(securecookie.JSONEncoder{})
		}
	}

	sameSite := http.SameSiteLaxMode
	if cfg.IsProduction() {
		sameSite = http.SameSiteNoneMode
	}

	return &Carrier{
		name:     cfg.Cookie.Name,
		domain:   cfg.Cookie.Domain,
		maxAge:   cfg.Cookie.MaxAge,
		secure:   cfg.IsProduction(),
		sameSite: sameSite,
		codecs:   codecs,
	}, nil
}

// Name returns the cookie name.
func (c *Carrier) Name() string {
	return c.name
}

// Encode signs token into a cookie value.
func (c *Carrier) Encode(token string) (string, error) {
	value, err := securecookie.EncodeMulti(c.name, payload{JWT: token}, c.codecs...)
	if err != nil {
		return "", errors.Wrap(err, "encode session cookie")
	}

	return value, nil
}

// Decode verifies a cookie value and returns the token inside it.
func (c *Carrier) Decode(value string) (string, error) {
	var data payload
	if err := securecookie.DecodeMulti(c.name, value, &data, c.codecs...); err != nil {
		return "", errors.Wrap(err, "decode session cookie")
	}

	return data.JWT, nil
}

// Token returns the session token of r. A missing, tampered or expired
// cookie yields "".
func (c *Carrier) Token(r *http.Request) string {
	cookie, err := r.Cookie(c.name)
	if err != nil || cookie.Value == "" {
		return ""
	}

	token, err := c.Decode(cookie.Value)
	if err != nil {
		return ""
	}

	return token
}

// Set writes token into the response cookie.
func (c *Carrier) Set(ctx echo.Context, token string) error {
	value, err := c.Encode(token)
	if err != nil {
		return err
	}

	cookie := c.cookie(value)
	cookie.MaxAge = int(c.maxAge.Seconds())
	cookie.Expires = time.Now().Add(c.maxAge)
	ctx.SetCookie(cookie)

	return nil
}

// Clear expires the cookie on the client.
func (c *Carrier) Clear(ctx echo.Context) {
	cookie := c.cookie("")
	cookie.MaxAge = -1
	cookie.Expires = time.Unix(0, 0)
	ctx.SetCookie(cookie)
}

// Apply carries out a usecase session directive.
func (c *Carrier) Apply(ctx echo.Context, directive usecase.SessionDirective) error {
	switch directive.Action {
	case usecase.SessionSet:
		return c.Set(ctx, directive.Token)
	case usecase.SessionClear:
		c.Clear(ctx)
	case usecase.SessionKeep:
	}

	return nil
}

func (c *Carrier) cookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     c.name,
		Value:    value,
		Path:     "/",
		Domain:   c.domain,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: c.sameSite,
	}
}
