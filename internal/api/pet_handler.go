package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pawhaven/paw-haven-api/internal/api/shared"
	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/platform/logger"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// defaultFeaturedLimit caps the unauthenticated featured listings.
const defaultFeaturedLimit = 6

// PetHandler handles pet listing and management endpoints.
type PetHandler struct {
	petStore store.PetStore
}

// NewPetHandler creates a new PetHandler with the given dependencies.
func NewPetHandler(petStore store.PetStore) *PetHandler {
	return &PetHandler{petStore: petStore}
}

// Create handles POST /add-pet. The pet is owned by the session's email.
func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	email, ok := requireUserEmail(w, r)
	if !ok {
		return
	}

	var req CreatePetRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation failed: name and category are required")
		return
	}

	pet, err := domain.NewPet(req.Name, req.Category, req.Image, req.Description, email)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.petStore.Create(r.Context(), pet); err != nil {
		HandleAPIError(w, r, err, "Failed to create pet")
		return
	}

	log := logger.FromContext(r.Context())
	log.DebugContext(r.Context(), "pet created",
		"pet_id", pet.ID, "category", pet.Category)

	RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{InsertedID: pet.ID})
}

// Get handles GET /pets/{id}.
func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	pet, err := h.petStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Pet not found")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, pet)
}

// List handles GET /pets. It supports search, category, page and limit
// query parameters; only unadopted pets are shown, newest first.
func (h *PetHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := getPageParams(r)
	adopted := false
	filter := store.PetFilter{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		Adopted:  &adopted,
	}

	result, err := h.petStore.List(r.Context(), filter, page, limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list pets")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}

// ListAll handles GET /all-pets: every pet regardless of adoption state,
// paginated, with the same search and category filters as List.
func (h *PetHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	page, limit := getPageParams(r)
	filter := store.PetFilter{
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
	}

	result, err := h.petStore.List(r.Context(), filter, page, limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list pets")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}

// Featured handles GET /featuredPets: a short list of the newest
// unadopted pets for the landing page.
func (h *PetHandler) Featured(w http.ResponseWriter, r *http.Request) {
	adopted := false
	result, err := h.petStore.List(r.Context(),
		store.PetFilter{Adopted: &adopted}, store.DefaultPage, defaultFeaturedLimit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list pets")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result.Items)
}

// Categories handles GET /pet-categories: pets grouped by category with a
// count and a URL slug per group.
func (h *PetHandler) Categories(w http.ResponseWriter, r *http.Request) {
	counts, err := h.petStore.CategoryCounts(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to aggregate categories")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, counts)
}

// ListMine handles GET /my-pets/{email}. The owner middleware has already
// verified the path email matches the session.
func (h *PetHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	pets, err := h.petStore.ListByOwner(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list pets")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, pets)
}

// Update handles PUT /update-pet/{id}. Missing pets fail with 404 unless
// the caller opted in to upsert via the upsert query parameter.
func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	var patch domain.PetPatch
	if err := DecodeJSON(r, &patch); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	var opts []store.UpdateOption
	if upsertRequested(r) {
		opts = append(opts, store.UpsertOnMiss())
	}

	result, err := h.petStore.Update(r.Context(), id, patch, opts...)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update pet")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewUpdateResponse(result))
}

// ToggleAdopted handles PATCH /pet/{id}: it flips the adoption flag and
// reports the new value.
func (h *PetHandler) ToggleAdopted(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	adopted, err := h.petStore.ToggleAdopted(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update pet")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ToggleResponse{Value: adopted})
}

// Delete handles DELETE /pet/{id}. Deleting a missing pet succeeds and
// reports zero deleted rows.
func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.petStore.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete pet")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, DeleteResponse{DeletedCount: deleted})
}
