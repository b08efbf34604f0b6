package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pawhaven/paw-haven-api/internal/api/shared"
	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/platform/logger"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// limitedCampaignCount caps the /limited-campaigns listing.
const limitedCampaignCount = 3

// CampaignHandler handles donation campaign endpoints.
type CampaignHandler struct {
	campaignStore store.CampaignStore
}

// NewCampaignHandler creates a new CampaignHandler with the given dependencies.
func NewCampaignHandler(campaignStore store.CampaignStore) *CampaignHandler {
	return &CampaignHandler{campaignStore: campaignStore}
}

// Create handles POST /donation-campaigns. The campaign is owned by the
// session's email and starts with zeroed accumulators.
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	email, ok := requireUserEmail(w, r)
	if !ok {
		return
	}

	var req CreateCampaignRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest,
			"Validation failed: title, max_donation and last_date are required")
		return
	}

	campaign, err := domain.NewCampaign(
		req.Title, req.Image, req.Description, email, req.MaxDonation, req.LastDate)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.campaignStore.Create(r.Context(), campaign); err != nil {
		HandleAPIError(w, r, err, "Failed to create campaign")
		return
	}

	log := logger.FromContext(r.Context())
	log.DebugContext(r.Context(), "campaign created",
		"campaign_id", campaign.ID, "max_donation", campaign.MaxDonation)

	RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{InsertedID: campaign.ID})
}

// Get handles GET /donation-campaigns/{id}.
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	campaign, err := h.campaignStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Campaign not found")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, campaign)
}

// List handles GET /allCampaigns: all campaigns with optional title
// search, paginated, newest first.
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := getPageParams(r)

	result, err := h.campaignStore.List(r.Context(), r.URL.Query().Get("search"), page, limit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list campaigns")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}

// Featured handles GET /featuredCampaigns: the newest active campaigns
// for the landing page.
func (h *CampaignHandler) Featured(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaignStore.ListActive(r.Context(), defaultFeaturedLimit)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list campaigns")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, campaigns)
}

// Limited handles GET /limited-campaigns: a three-item active listing
// used by the donation detail sidebar.
func (h *CampaignHandler) Limited(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaignStore.ListActive(r.Context(), limitedCampaignCount)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list campaigns")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, campaigns)
}

// ListMine handles GET /all-campaigns/{email}. The owner middleware has
// already verified the path email matches the session.
func (h *CampaignHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	campaigns, err := h.campaignStore.ListByOwner(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list campaigns")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, campaigns)
}

// Update handles PUT /update-campaign/{id}. Accumulator fields are not
// part of the patch shape; they move only through ApplyDonation and
// RevertDonation. Missing campaigns fail with 404 unless the caller opted
// in to upsert via the upsert query parameter.
func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	var patch domain.CampaignPatch
	if err := DecodeJSON(r, &patch); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	var opts []store.UpdateOption
	if upsertRequested(r) {
		opts = append(opts, store.UpsertOnMiss())
	}

	result, err := h.campaignStore.Update(r.Context(), id, patch, opts...)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update campaign")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, NewUpdateResponse(result))
}

// TogglePaused handles PATCH /donation-campaigns/{id}: it flips the pause
// flag and reports the new value. Paused campaigns stay readable but drop
// out of the active listings.
func (h *CampaignHandler) TogglePaused(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	paused, err := h.campaignStore.TogglePaused(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update campaign")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ToggleResponse{Value: paused})
}

// ApplyDonation handles PATCH /donated-camp/{id}: it adds the amount to
// the campaign's accumulated total and bumps the donor count in a single
// conditional update, so concurrent donations cannot overshoot the
// campaign's maximum.
func (h *CampaignHandler) ApplyDonation(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	var req ApplyDonationRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation failed: a positive amount is required")
		return
	}

	if err := h.campaignStore.ApplyDonation(r.Context(), id, req.Amount); err != nil {
		HandleAPIError(w, r, err, "Failed to apply donation")
		return
	}

	log := logger.FromContext(r.Context())
	log.DebugContext(r.Context(), "donation applied",
		"campaign_id", id, "amount", req.Amount)

	RespondWithJSON(w, r, http.StatusOK, AckResponse{Success: true})
}

// Delete handles DELETE /donation-campaign/{id}. Deleting a missing
// campaign succeeds and reports zero deleted rows.
func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.campaignStore.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete campaign")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, DeleteResponse{DeletedCount: deleted})
}
