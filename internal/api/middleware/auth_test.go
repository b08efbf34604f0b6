package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pawhaven/paw-haven-api/internal/api/shared"
	"github.com/pawhaven/paw-haven-api/internal/mocks"
	"github.com/pawhaven/paw-haven-api/internal/service/auth"
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	const cookieName = "token"

	okHandler := func(calls *int) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*calls++
			email, ok := shared.UserEmail(r.Context())
			assert.True(t, ok)
			assert.Equal(t, "donor@example.com", email)
			w.WriteHeader(http.StatusOK)
		})
	}

	tests := []struct {
		name       string
		cookie     *http.Cookie
		validate   error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing cookie",
			cookie:     nil,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Session cookie required",
		},
		{
			name:       "empty cookie value",
			cookie:     &http.Cookie{Name: cookieName, Value: ""},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Session cookie required",
		},
		{
			name:       "expired token",
			cookie:     &http.Cookie{Name: cookieName, Value: "expired"},
			validate:   auth.ErrExpiredToken,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Session expired",
		},
		{
			name:       "tampered token",
			cookie:     &http.Cookie{Name: cookieName, Value: "tampered"},
			validate:   auth.ErrInvalidToken,
			wantStatus: http.StatusUnauthorized,
			wantBody:   "Invalid session",
		},
		{
			name:       "valid token",
			cookie:     &http.Cookie{Name: cookieName, Value: "good"},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				Claims:      &auth.Claims{Email: "donor@example.com"},
				ValidateErr: tc.validate,
			}
			mw := NewAuthMiddleware(jwtService, cookieName)

			var calls int
			handler := mw.Authenticate(okHandler(&calls))

			req := httptest.NewRequest(http.MethodGet, "/donations", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, 1, calls)
			} else {
				assert.Zero(t, calls, "handler must not run for rejected requests")
				assert.Contains(t, rec.Body.String(), tc.wantBody)
			}
		})
	}
}
