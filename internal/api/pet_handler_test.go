package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/paw-haven-api/internal/api/shared"
	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/mocks"
)

func withSession(req *http.Request, email string) *http.Request {
	return req.WithContext(shared.WithUserEmail(req.Context(), email))
}

func withIDParam(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newTestPet(t *testing.T, name, owner string) *domain.Pet {
	t.Helper()
	pet, err := domain.NewPet(name, "Dogs", "", "", owner)
	require.NoError(t, err)
	return pet
}

func TestPetCreate(t *testing.T) {
	t.Parallel()

	t.Run("authenticated create succeeds", func(t *testing.T) {
		t.Parallel()
		pets := mocks.NewMockPetStore()
		handler := NewPetHandler(pets)

		req := withSession(httptest.NewRequest(http.MethodPost, "/add-pet",
			strings.NewReader(`{"name":"Biscuit","category":"Dogs"}`)), "owner@example.com")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp CreatedResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		created, exists := pets.Pets[resp.InsertedID]
		require.True(t, exists)
		assert.Equal(t, "owner@example.com", created.AddedBy)
	})

	t.Run("missing session is rejected", func(t *testing.T) {
		t.Parallel()
		handler := NewPetHandler(mocks.NewMockPetStore())

		req := httptest.NewRequest(http.MethodPost, "/add-pet",
			strings.NewReader(`{"name":"Biscuit","category":"Dogs"}`))
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing category is rejected", func(t *testing.T) {
		t.Parallel()
		handler := NewPetHandler(mocks.NewMockPetStore())

		req := withSession(httptest.NewRequest(http.MethodPost, "/add-pet",
			strings.NewReader(`{"name":"Biscuit"}`)), "owner@example.com")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPetUpdate(t *testing.T) {
	t.Parallel()

	t.Run("strict update of missing pet returns 404", func(t *testing.T) {
		t.Parallel()
		handler := NewPetHandler(mocks.NewMockPetStore())

		req := withIDParam(httptest.NewRequest(http.MethodPut, "/update-pet/x",
			strings.NewReader(`{"name":"Renamed"}`)), uuid.New().String())
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("upsert opt-in inserts a fresh pet", func(t *testing.T) {
		t.Parallel()
		pets := mocks.NewMockPetStore()
		handler := NewPetHandler(pets)

		req := withIDParam(httptest.NewRequest(http.MethodPut, "/update-pet/x?upsert=true",
			strings.NewReader(`{"name":"Renamed"}`)), uuid.New().String())
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp UpdateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.UpsertedID)
		assert.Contains(t, pets.Pets, *resp.UpsertedID)
	})

	t.Run("existing pet is patched", func(t *testing.T) {
		t.Parallel()
		pets := mocks.NewMockPetStore()
		pet := newTestPet(t, "Biscuit", "owner@example.com")
		pets.AddPet(pet)
		handler := NewPetHandler(pets)

		req := withIDParam(httptest.NewRequest(http.MethodPut, "/update-pet/x",
			strings.NewReader(`{"name":"Renamed"}`)), pet.ID.String())
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Renamed", pets.Pets[pet.ID].Name)
	})

	t.Run("invalid id returns 400", func(t *testing.T) {
		t.Parallel()
		handler := NewPetHandler(mocks.NewMockPetStore())

		req := withIDParam(httptest.NewRequest(http.MethodPut, "/update-pet/x",
			strings.NewReader(`{"name":"Renamed"}`)), "not-a-uuid")
		rec := httptest.NewRecorder()

		handler.Update(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPetDelete(t *testing.T) {
	t.Parallel()

	t.Run("delete is idempotent", func(t *testing.T) {
		t.Parallel()
		pets := mocks.NewMockPetStore()
		pet := newTestPet(t, "Biscuit", "owner@example.com")
		pets.AddPet(pet)
		handler := NewPetHandler(pets)

		del := func() DeleteResponse {
			req := withIDParam(httptest.NewRequest(http.MethodDelete, "/pet/x", nil), pet.ID.String())
			rec := httptest.NewRecorder()
			handler.Delete(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp DeleteResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			return resp
		}

		assert.Equal(t, int64(1), del().DeletedCount)
		assert.Equal(t, int64(0), del().DeletedCount, "second delete reports zero rows")
	})
}

func TestPetToggleAdopted(t *testing.T) {
	t.Parallel()

	pets := mocks.NewMockPetStore()
	pet := newTestPet(t, "Biscuit", "owner@example.com")
	pets.AddPet(pet)
	handler := NewPetHandler(pets)

	toggle := func() ToggleResponse {
		req := withIDParam(httptest.NewRequest(http.MethodPatch, "/pet/x", nil), pet.ID.String())
		rec := httptest.NewRecorder()
		handler.ToggleAdopted(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp ToggleResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp
	}

	assert.True(t, toggle().Value)
	assert.False(t, toggle().Value, "second toggle flips the flag back")
}

func TestPetGet(t *testing.T) {
	t.Parallel()

	t.Run("missing pet returns 404", func(t *testing.T) {
		t.Parallel()
		handler := NewPetHandler(mocks.NewMockPetStore())

		req := withIDParam(httptest.NewRequest(http.MethodGet, "/pets/x", nil), uuid.New().String())
		rec := httptest.NewRecorder()

		handler.Get(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Pet not found")
	})
}
