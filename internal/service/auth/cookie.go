package auth

import (
	"net/http"
	"time"
)

// CookieConfig captures the environment-dependent session cookie settings.
// In production the cookie is Secure with SameSite=None so the browser
// frontend can send it cross-site; elsewhere SameSite=Strict.
type CookieConfig struct {
	Name     string
	Secure   bool
	Lifetime time.Duration
}

// SessionCookie builds the HTTP-only cookie carrying a signed session token.
func SessionCookie(cfg CookieConfig, token string) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(cfg.Lifetime / time.Second),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: sameSite(cfg),
	}
}

// ClearSessionCookie builds the cookie that removes the client's session
// token. The token itself stays cryptographically valid until expiry; there
// is no server-side revocation list.
func ClearSessionCookie(cfg CookieConfig) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: sameSite(cfg),
	}
}

func sameSite(cfg CookieConfig) http.SameSite {
	if cfg.Secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}
