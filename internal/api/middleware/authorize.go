package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pawhaven/paw-haven-api/internal/api/shared"
	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/redact"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// RoleMiddleware provides second-stage authorization checks that run
// strictly after Authenticate: role lookups against the user store and
// declarative owner checks against URL parameters.
type RoleMiddleware struct {
	userStore store.UserStore
}

// NewRoleMiddleware creates a new RoleMiddleware with the given dependencies.
func NewRoleMiddleware(userStore store.UserStore) *RoleMiddleware {
	return &RoleMiddleware{
		userStore: userStore,
	}
}

// RequireAdmin loads the authenticated caller's user record and rejects the
// request unless the stored role is admin. Banned users are rejected even
// when their stored role is admin.
func (m *RoleMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := shared.UserEmail(r.Context())
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
			return
		}

		user, err := m.userStore.GetByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondWithError(w, r, http.StatusForbidden, "Admin access required")
				return
			}
			slog.Error("failed to look up user role", "error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authorization error")
			return
		}

		if user.IsBanned || user.Role != domain.RoleAdmin {
			shared.RespondWithError(w, r, http.StatusForbidden, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireActiveUser rejects requests from callers whose user record is
// missing or banned. Used on resource-creating routes.
func (m *RoleMiddleware) RequireActiveUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := shared.UserEmail(r.Context())
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
			return
		}

		user, err := m.userStore.GetByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondWithError(w, r, http.StatusForbidden, "User account required")
				return
			}
			slog.Error("failed to look up user", "error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authorization error")
			return
		}

		if user.IsBanned {
			shared.RespondWithError(w, r, http.StatusForbidden, "Account is banned")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireOwner returns a middleware enforcing that the authenticated
// caller's email exactly equals the named URL parameter. This is the
// declarative form of the per-route owner check: it prevents one user from
// reading another's private resource lists.
func RequireOwner(paramName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, ok := shared.UserEmail(r.Context())
			if !ok {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
				return
			}

			if chi.URLParam(r, paramName) != email {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
