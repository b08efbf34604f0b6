package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/mocks"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

func withEmailParam(req *http.Request, email string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("email", email)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestUserGetRole(t *testing.T) {
	t.Parallel()

	t.Run("known admin reports admin", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		admin, err := domain.NewUser("admin@example.com")
		require.NoError(t, err)
		admin.Role = domain.RoleAdmin
		users.AddUser(admin)
		handler := NewUserHandler(users, &mocks.MockStatsStore{})

		req := withEmailParam(httptest.NewRequest(http.MethodGet, "/users/role/x", nil),
			"admin@example.com")
		rec := httptest.NewRecorder()

		handler.GetRole(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp RoleResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "admin", resp.Role)
	})

	t.Run("unknown email reports the default role", func(t *testing.T) {
		t.Parallel()
		handler := NewUserHandler(mocks.NewMockUserStore(), &mocks.MockStatsStore{})

		req := withEmailParam(httptest.NewRequest(http.MethodGet, "/users/role/x", nil),
			"stranger@example.com")
		rec := httptest.NewRecorder()

		handler.GetRole(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp RoleResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "user", resp.Role)
	})
}

func TestUserCreateOrFetch(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	handler := NewUserHandler(users, &mocks.MockStatsStore{})

	fetch := func() *domain.User {
		req := withEmailParam(httptest.NewRequest(http.MethodPost, "/users/x", nil),
			"donor@example.com")
		rec := httptest.NewRecorder()
		handler.CreateOrFetch(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var user domain.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		return &user
	}

	first := fetch()
	second := fetch()
	assert.Equal(t, first.ID, second.ID, "repeated calls return the same record")
}

func TestUserSetBan(t *testing.T) {
	t.Parallel()

	t.Run("missing flag defaults to banning", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		user, err := domain.NewUser("donor@example.com")
		require.NoError(t, err)
		users.AddUser(user)
		handler := NewUserHandler(users, &mocks.MockStatsStore{})

		req := withIDParam(httptest.NewRequest(http.MethodPatch, "/user/ban/x", nil),
			user.ID.String())
		rec := httptest.NewRecorder()

		handler.SetBan(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, user.IsBanned)
	})

	t.Run("explicit false unbans", func(t *testing.T) {
		t.Parallel()
		users := mocks.NewMockUserStore()
		user, err := domain.NewUser("donor@example.com")
		require.NoError(t, err)
		user.IsBanned = true
		users.AddUser(user)
		handler := NewUserHandler(users, &mocks.MockStatsStore{})

		req := withIDParam(httptest.NewRequest(http.MethodPatch, "/user/ban/x",
			strings.NewReader(`{"is_banned":false}`)), user.ID.String())
		rec := httptest.NewRecorder()

		handler.SetBan(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, user.IsBanned)
	})
}

func TestUserStats(t *testing.T) {
	t.Parallel()

	stats := &mocks.MockStatsStore{Stats: &store.GlobalStats{
		Users:        3,
		Pets:         5,
		Campaigns:    2,
		Donations:    7,
		TotalDonated: 420,
	}}
	handler := NewUserHandler(mocks.NewMockUserStore(), stats)

	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rec := httptest.NewRecorder()

	handler.Stats(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp store.GlobalStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(420), resp.TotalDonated)
}
