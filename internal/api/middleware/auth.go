package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pawhaven/paw-haven-api/internal/api/shared"
	"github.com/pawhaven/paw-haven-api/internal/redact"
	"github.com/pawhaven/paw-haven-api/internal/service/auth"
)

// AuthMiddleware provides session authentication for routes. The session
// credential is a signed token carried in an HTTP-only cookie.
type AuthMiddleware struct {
	jwtService auth.JWTService
	cookieName string
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		cookieName: cookieName,
	}
}

// Authenticate validates the session token from the cookie and adds the
// caller's email to the request context. Requests with a missing, tampered,
// or expired token are rejected before any handler runs.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Session cookie required")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Session expired")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid session")
			default:
				slog.Error("failed to validate session token", "error", redact.Error(err))
				shared.RespondWithError(
					w,
					r,
					http.StatusInternalServerError,
					"Authentication error",
				)
			}
			return
		}

		ctx := shared.WithUserEmail(r.Context(), claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserEmail extracts the authenticated caller's email from the request
// context. Returns the email and a boolean indicating if it was found.
func GetUserEmail(r *http.Request) (string, bool) {
	return shared.UserEmail(r.Context())
}
