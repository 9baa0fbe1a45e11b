// Package cookie sets and clears the authentication cookie.
package cookie

import (
	"net/http"
	"time"
)

// TokenName is the name of the cookie carrying the access token.
const TokenName = "token"

// Config holds cookie configuration.
type Config struct {
	// Domain scopes the cookie. Empty means host-only.
	Domain string

	// Secure determines whether cookies require HTTPS.
	// Should be true in production, false in development.
	Secure bool

	// SameSite is Lax by default. Cross-site frontends on another origin
	// need None, which browsers only accept together with Secure.
	SameSite http.SameSite
}

// NewConfig creates a new cookie configuration.
func NewConfig(domain string, secure bool, crossSite bool) *Config {
	sameSite := http.SameSiteLaxMode
	if crossSite && secure {
		sameSite = http.SameSiteNoneMode
	}
	return &Config{
		Domain:   domain,
		Secure:   secure,
		SameSite: sameSite,
	}
}

// SetToken sets the HttpOnly access token cookie until expiresAt.
func (c *Config) SetToken(w http.ResponseWriter, value string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	http.SetCookie(w, &http.Cookie{
		Name:     TokenName,
		Value:    value,
		Path:     "/",
		Domain:   c.Domain,
		Expires:  expiresAt,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}

// ClearToken expires the access token cookie.
func (c *Config) ClearToken(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenName,
		Value:    "",
		Path:     "/",
		Domain:   c.Domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}

// Token returns the access token cookie value, or "" when absent.
func Token(r *http.Request) string {
	ck, err := r.Cookie(TokenName)
	if err != nil {
		return ""
	}
	return ck.Value
}
