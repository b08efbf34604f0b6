package api

import (
	"errors"
	"net/http"

	"github.com/pawhaven/paw-haven-api/internal/api/shared"
	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/service/auth"
	"github.com/pawhaven/paw-haven-api/internal/service/payment"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var headroomErr *payment.HeadroomError

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrEmptyContent),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, store.ErrEmptyPatch),
		errors.Is(err, store.ErrCampaignCapacity),
		errors.Is(err, payment.ErrInvalidAmount),
		errors.As(err, &headroomErr):
		return http.StatusBadRequest

	// Upstream failures
	case errors.Is(err, payment.ErrProviderFailure):
		return http.StatusBadGateway

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var headroomErr *payment.HeadroomError
	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Invalid session"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Session expired"

	case errors.Is(err, auth.ErrMissingToken):
		return "Session cookie required"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Access denied"

	case errors.Is(err, domain.ErrForbidden):
		return "Forbidden"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrPetNotFound):
		return "Pet not found"

	case errors.Is(err, store.ErrCampaignNotFound):
		return "Campaign not found"

	case errors.Is(err, store.ErrDonationNotFound):
		return "Donation not found"

	case errors.Is(err, store.ErrAdoptionRequestNotFound):
		return "Adoption request not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, store.ErrCampaignCapacity):
		return "Donation exceeds the campaign's remaining capacity"

	case errors.Is(err, store.ErrEmptyPatch):
		return "Update contains no fields"

	case errors.Is(err, payment.ErrInvalidAmount):
		return "Donation amount must be a positive number"

	case errors.Is(err, payment.ErrProviderFailure):
		return "Payment provider is unavailable"

	// The headroom message deliberately carries the remaining capacity;
	// the frontend shows it to the donor.
	case errors.As(err, &headroomErr):
		return headroomErr.Error()

	case errors.As(err, &validationErr):
		return "Invalid " + validationErr.Field

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the JSON error response for an internal error,
// mapping it to a status code and a safe message. userMessage is the
// fallback shown for errors the taxonomy has no specific message for;
// recognized errors keep their derived message (the headroom text, the
// not-found messages) so the frontend can rely on them.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, userMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if message == "An unexpected error occurred" && userMessage != "" {
		message = userMessage
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
