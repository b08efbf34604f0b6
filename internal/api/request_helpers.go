package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pawhaven/paw-haven-api/internal/api/shared"
	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// Re-exported shared helpers so handlers in this package read naturally.
var (
	RespondWithJSON  = shared.RespondWithJSON
	RespondWithError = shared.RespondWithError
	DecodeJSON       = shared.DecodeJSON
)

// getUserEmailFromContext extracts the authenticated caller's email from the
// request context. The email is placed there by the authentication middleware.
func getUserEmailFromContext(r *http.Request) (string, bool) {
	return shared.UserEmail(r.Context())
}

// getPathUUID extracts a UUID from the URL path parameters.
// It parses and validates the UUID, handling common error cases.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// requirePathUUID extracts a UUID path parameter, writing the error response
// itself on failure. The boolean reports whether the handler should continue.
func requirePathUUID(w http.ResponseWriter, r *http.Request, paramName string) (uuid.UUID, bool) {
	id, err := getPathUUID(r, paramName)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return uuid.Nil, false
	}
	return id, true
}

// requireUserEmail extracts the authenticated email from the context,
// writing the error response itself when it is absent.
func requireUserEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email, ok := getUserEmailFromContext(r)
	if !ok {
		HandleAPIError(w, r, domain.ErrUnauthorized, "Authentication required")
		return "", false
	}
	return email, true
}

// getPageParams reads the page and limit query parameters, falling back to
// the store defaults for missing or malformed values.
func getPageParams(r *http.Request) (page, limit int) {
	page = store.DefaultPage
	limit = store.DefaultLimit

	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	return store.NormalizePage(page, limit)
}

// upsertRequested reports whether the request opted in to upsert-on-miss
// semantics via the upsert query parameter. Updates are strict by default.
func upsertRequested(r *http.Request) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get("upsert"))
	return err == nil && v
}
