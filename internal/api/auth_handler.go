package api

import (
	"net/http"

	"github.com/pawhaven/paw-haven-api/internal/api/shared"
	"github.com/pawhaven/paw-haven-api/internal/platform/logger"
	"github.com/pawhaven/paw-haven-api/internal/service/auth"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// AuthHandler handles session issuance and revocation.
type AuthHandler struct {
	jwtService auth.JWTService
	userStore  store.UserStore
	cookieCfg  auth.CookieConfig
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	jwtService auth.JWTService,
	userStore store.UserStore,
	cookieCfg auth.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		userStore:  userStore,
		cookieCfg:  cookieCfg,
	}
}

// IssueToken handles POST /jwt. It signs a session token for the claimed
// email and sets it as an HTTP-only cookie. A user record is created on
// first issuance for a new email; the claim itself is not verified beyond
// being a structurally valid email.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req IssueTokenRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation error: a valid email is required")
		return
	}

	log := logger.FromContext(r.Context())

	user, err := h.userStore.CreateOrGet(r.Context(), req.Email)
	if err != nil {
		log.ErrorContext(r.Context(), "failed to create or fetch user on session issuance",
			"error", err)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to issue session")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.Email)
	if err != nil {
		log.ErrorContext(r.Context(), "failed to generate session token", "error", err)
		RespondWithError(w, r, http.StatusInternalServerError, "Failed to issue session")
		return
	}

	http.SetCookie(w, auth.SessionCookie(h.cookieCfg, token))
	RespondWithJSON(w, r, http.StatusOK, AckResponse{Success: true})
}

// Logout handles GET /logout. It clears the session cookie on the client.
// The token itself stays valid until its expiry; there is no server-side
// revocation list.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, auth.ClearSessionCookie(h.cookieCfg))
	RespondWithJSON(w, r, http.StatusOK, AckResponse{Success: true})
}
