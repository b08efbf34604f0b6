package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/paw-haven-api/internal/mocks"
)

func TestAdoptionCreate(t *testing.T) {
	t.Parallel()

	t.Run("snapshots pet details when not provided", func(t *testing.T) {
		t.Parallel()
		pets := mocks.NewMockPetStore()
		pet := newTestPet(t, "Biscuit", "owner@example.com")
		pet.Image = "https://cdn.example.com/biscuit.jpg"
		pets.AddPet(pet)
		requests := &mocks.MockAdoptionRequestStore{}
		handler := NewAdoptionHandler(requests, pets)

		body := fmt.Sprintf(`{"pet_id":%q}`, pet.ID)
		req := withSession(httptest.NewRequest(http.MethodPost, "/adopted-pet",
			strings.NewReader(body)), "adopter@example.com")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, requests.Requests, 1)
		assert.Equal(t, "Biscuit", requests.Requests[0].PetName)
		assert.Equal(t, pet.Image, requests.Requests[0].PetImage)
		assert.Equal(t, "adopter@example.com", requests.Requests[0].AddedBy)
		assert.False(t, pets.Pets[pet.ID].Adopted,
			"filing a request must not flip the pet's adoption flag")
	})

	t.Run("unknown pet without snapshot returns 404", func(t *testing.T) {
		t.Parallel()
		handler := NewAdoptionHandler(&mocks.MockAdoptionRequestStore{}, mocks.NewMockPetStore())

		body := fmt.Sprintf(`{"pet_id":%q}`, uuid.New())
		req := withSession(httptest.NewRequest(http.MethodPost, "/adopted-pet",
			strings.NewReader(body)), "adopter@example.com")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("provided snapshot skips the pet lookup", func(t *testing.T) {
		t.Parallel()
		requests := &mocks.MockAdoptionRequestStore{}
		handler := NewAdoptionHandler(requests, mocks.NewMockPetStore())

		body := fmt.Sprintf(`{"pet_id":%q,"pet_name":"Biscuit","pet_image":"img.jpg"}`, uuid.New())
		req := withSession(httptest.NewRequest(http.MethodPost, "/adopted-pet",
			strings.NewReader(body)), "adopter@example.com")
		rec := httptest.NewRecorder()

		handler.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.Len(t, requests.Requests, 1)
		assert.Equal(t, "Biscuit", requests.Requests[0].PetName)
	})
}

func TestAdoptionListMine(t *testing.T) {
	t.Parallel()

	requests := &mocks.MockAdoptionRequestStore{}
	handler := NewAdoptionHandler(requests, mocks.NewMockPetStore())

	req := withEmailParam(httptest.NewRequest(http.MethodGet, "/adopted-pet/x", nil),
		"adopter@example.com")
	rec := httptest.NewRecorder()

	handler.ListMine(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp)
}
