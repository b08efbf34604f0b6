package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/paw-haven-api/internal/mocks"
	"github.com/pawhaven/paw-haven-api/internal/service/auth"
)

func testCookieConfig() auth.CookieConfig {
	return auth.CookieConfig{
		Name:     "token",
		Secure:   false,
		Lifetime: 365 * 24 * time.Hour,
	}
}

func TestIssueToken(t *testing.T) {
	t.Parallel()

	t.Run("sets session cookie and creates user", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		jwtService := &mocks.MockJWTService{Token: "signed-token"}
		handler := NewAuthHandler(jwtService, users, testCookieConfig())

		req := httptest.NewRequest(http.MethodPost, "/jwt",
			strings.NewReader(`{"email":"donor@example.com"}`))
		rec := httptest.NewRecorder()

		handler.IssueToken(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "token", cookies[0].Name)
		assert.Equal(t, "signed-token", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)

		_, exists := users.Users["donor@example.com"]
		assert.True(t, exists, "a user record should be created on first issuance")
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(&mocks.MockJWTService{}, mocks.NewMockUserStore(), testCookieConfig())

		req := httptest.NewRequest(http.MethodPost, "/jwt",
			strings.NewReader(`{"email":"not-an-email"}`))
		rec := httptest.NewRecorder()

		handler.IssueToken(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("rejects malformed body", func(t *testing.T) {
		t.Parallel()
		handler := NewAuthHandler(&mocks.MockJWTService{}, mocks.NewMockUserStore(), testCookieConfig())

		req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{`))
		rec := httptest.NewRecorder()

		handler.IssueToken(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	handler := NewAuthHandler(&mocks.MockJWTService{}, mocks.NewMockUserStore(), testCookieConfig())

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()

	handler.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
