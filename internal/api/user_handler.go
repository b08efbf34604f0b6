package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/platform/logger"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// UserHandler handles user lookup and the admin user-management endpoints.
type UserHandler struct {
	userStore  store.UserStore
	statsStore store.StatsStore
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userStore store.UserStore, statsStore store.StatsStore) *UserHandler {
	return &UserHandler{
		userStore:  userStore,
		statsStore: statsStore,
	}
}

// CreateOrFetch handles POST /users/{email}. It creates a user record for
// the email if none exists and returns the record either way, so repeated
// calls are harmless.
func (h *UserHandler) CreateOrFetch(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		HandleAPIError(w, r, domain.NewValidationError("email", "is required", domain.ErrValidation), "")
		return
	}

	user, err := h.userStore.CreateOrGet(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, user)
}

// GetRole handles GET /users/role/{email}. Unknown emails report the
// default role rather than an error, matching the frontend's expectation
// that every visitor has a role.
func (h *UserHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if email == "" {
		HandleAPIError(w, r, domain.NewValidationError("email", "is required", domain.ErrValidation), "")
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), email)
	if err != nil {
		if store.IsNotFoundError(err) {
			RespondWithJSON(w, r, http.StatusOK, RoleResponse{Role: string(domain.RoleUser)})
			return
		}
		HandleAPIError(w, r, err, "Failed to look up role")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, RoleResponse{Role: string(user.Role)})
}

// ListOthers handles GET /all-users/{email}: every user except the caller,
// newest first. The route is gated by both the owner check and the admin
// check.
func (h *UserHandler) ListOthers(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	users, err := h.userStore.ListOthers(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list users")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, users)
}

// PromoteRole handles PATCH /user/role/{id}: it sets the target user's
// role to admin. Demotion is not supported.
func (h *UserHandler) PromoteRole(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.userStore.PromoteToAdmin(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to update role")
		return
	}

	log := logger.FromContext(r.Context())
	log.InfoContext(r.Context(), "user promoted to admin", "user_id", id)

	RespondWithJSON(w, r, http.StatusOK, RoleResponse{Role: string(domain.RoleAdmin)})
}

// SetBan handles PATCH /user/ban/{id}. The flag in the body selects ban
// or unban; a missing body or flag defaults to banning. Banned users keep
// their records and sessions but fail the active-user gate.
func (h *UserHandler) SetBan(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	banned := true
	var req SetBanRequest
	if err := DecodeJSON(r, &req); err == nil && req.IsBanned != nil {
		banned = *req.IsBanned
	}

	if err := h.userStore.SetBanned(r.Context(), id, banned); err != nil {
		HandleAPIError(w, r, err, "Failed to update ban state")
		return
	}

	log := logger.FromContext(r.Context())
	log.InfoContext(r.Context(), "user ban state changed", "user_id", id, "banned", banned)

	RespondWithJSON(w, r, http.StatusOK, ToggleResponse{Value: banned})
}

// Stats handles GET /admin/stats: row counts across all collections plus
// the total donated amount, for the admin dashboard.
func (h *UserHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsStore.Global(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute statistics")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, stats)
}
