package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pawhaven/paw-haven-api/internal/api/shared"
	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// AdoptionHandler handles adoption request endpoints.
type AdoptionHandler struct {
	adoptionStore store.AdoptionRequestStore
	petStore      store.PetStore
}

// NewAdoptionHandler creates a new AdoptionHandler with the given dependencies.
func NewAdoptionHandler(
	adoptionStore store.AdoptionRequestStore,
	petStore store.PetStore,
) *AdoptionHandler {
	return &AdoptionHandler{
		adoptionStore: adoptionStore,
		petStore:      petStore,
	}
}

// Create handles POST /adopted-pet. It files an adoption request for the
// session's email, snapshotting the pet's name and image so the request
// list stays meaningful even if the pet is later edited or deleted.
// Filing a request does not change the pet's adoption flag.
func (h *AdoptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	email, ok := requireUserEmail(w, r)
	if !ok {
		return
	}

	var req CreateAdoptionRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation failed: pet_id is required")
		return
	}

	petName, petImage := req.PetName, req.PetImage
	if petName == "" {
		pet, err := h.petStore.GetByID(r.Context(), req.PetID)
		if err != nil {
			HandleAPIError(w, r, err, "Pet not found")
			return
		}
		petName, petImage = pet.Name, pet.Image
	}

	request, err := domain.NewAdoptionRequest(req.PetID, petName, petImage, email)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.adoptionStore.Create(r.Context(), request); err != nil {
		HandleAPIError(w, r, err, "Failed to file adoption request")
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{InsertedID: request.ID})
}

// ListMine handles GET /adopted-pet/{email}. The owner middleware has
// already verified the path email matches the session.
func (h *AdoptionHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	requests, err := h.adoptionStore.ListByRequester(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list adoption requests")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, requests)
}
