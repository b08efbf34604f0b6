package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/service/auth"
	"github.com/pawhaven/paw-haven-api/internal/service/payment"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"pet not found", store.ErrPetNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("loading: %w", store.ErrCampaignNotFound), http.StatusNotFound},
		{"duplicate email", store.ErrEmailExists, http.StatusConflict},
		{"empty patch", store.ErrEmptyPatch, http.StatusBadRequest},
		{"capacity exceeded", store.ErrCampaignCapacity, http.StatusBadRequest},
		{"headroom", &payment.HeadroomError{Headroom: 10}, http.StatusBadRequest},
		{"invalid amount", payment.ErrInvalidAmount, http.StatusBadRequest},
		{"provider failure", payment.ErrProviderFailure, http.StatusBadGateway},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("headroom message carries remaining capacity", func(t *testing.T) {
		t.Parallel()
		msg := GetSafeErrorMessage(&payment.HeadroomError{Headroom: 10})
		assert.Contains(t, msg, "10")
	})

	t.Run("unknown errors are not leaked", func(t *testing.T) {
		t.Parallel()
		msg := GetSafeErrorMessage(errors.New("pq: connection to db-host:5432 refused"))
		assert.Equal(t, "An unexpected error occurred", msg)
	})
}
