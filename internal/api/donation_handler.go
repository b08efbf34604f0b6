package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pawhaven/paw-haven-api/internal/api/shared"
	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/platform/logger"
	"github.com/pawhaven/paw-haven-api/internal/service"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// DonationHandler handles donation records and the transactional refund.
type DonationHandler struct {
	donationStore   store.DonationStore
	donationService *service.DonationService
}

// NewDonationHandler creates a new DonationHandler with the given dependencies.
func NewDonationHandler(
	donationStore store.DonationStore,
	donationService *service.DonationService,
) *DonationHandler {
	return &DonationHandler{
		donationStore:   donationStore,
		donationService: donationService,
	}
}

// Create handles POST /donations. It records a completed donation against
// the session's email. The campaign accumulator moves separately through
// the atomic apply endpoint.
func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	email, ok := requireUserEmail(w, r)
	if !ok {
		return
	}

	var req CreateDonationRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest,
			"Validation failed: campaign_id and a positive amount are required")
		return
	}

	donation, err := domain.NewDonation(req.CampaignID, email, req.Amount)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.donationStore.Create(r.Context(), donation); err != nil {
		HandleAPIError(w, r, err, "Failed to record donation")
		return
	}

	log := logger.FromContext(r.Context())
	log.DebugContext(r.Context(), "donation recorded",
		"donation_id", donation.ID, "campaign_id", donation.CampaignID,
		"amount", donation.Amount)

	RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{InsertedID: donation.ID})
}

// ListMine handles GET /donations/{email}. The owner middleware has
// already verified the path email matches the session.
func (h *DonationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	donations, err := h.donationStore.ListByDonor(r.Context(), email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list donations")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, donations)
}

// ListByCampaign handles GET /donationCampaign/{id}: every donation made
// against the given campaign, newest first.
func (h *DonationHandler) ListByCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	donations, err := h.donationStore.ListByCampaign(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list donations")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, donations)
}

// Delete handles DELETE /delete-donation/{id}. It removes only the
// donation record; use the refund endpoint to also revert the campaign
// accumulator.
func (h *DonationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.donationStore.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete donation")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, DeleteResponse{DeletedCount: deleted})
}

// Refund handles PATCH /refundMoney/{id}: in one transaction it reverts
// the donation's amount and donor count on the campaign and deletes the
// donation record. Missing donations fail with 404 and leave the campaign
// untouched.
func (h *DonationHandler) Refund(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePathUUID(w, r, "id")
	if !ok {
		return
	}

	refunded, err := h.donationService.Refund(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to refund donation")
		return
	}

	log := logger.FromContext(r.Context())
	log.InfoContext(r.Context(), "donation refunded",
		"donation_id", refunded.ID, "campaign_id", refunded.CampaignID,
		"amount", refunded.Amount)

	RespondWithJSON(w, r, http.StatusOK, refunded)
}
