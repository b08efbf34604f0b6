package api

import (
	"net/http"

	"github.com/pawhaven/paw-haven-api/internal/api/shared"
	"github.com/pawhaven/paw-haven-api/internal/service/payment"
)

// PaymentHandler handles the payment-intent gate in front of donations.
type PaymentHandler struct {
	paymentService *payment.Service
}

// NewPaymentHandler creates a new PaymentHandler with the given dependencies.
func NewPaymentHandler(paymentService *payment.Service) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreateIntent handles POST /create-payment-intent. The amount is checked
// against the campaign's remaining headroom before any provider call, so a
// donation that cannot fit never reaches the payment provider. Rejections
// cite the remaining headroom.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var req CreateIntentRequest
	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Validation failed: campaign_id and amount are required")
		return
	}

	clientSecret, err := h.paymentService.CreateIntent(r.Context(), req.CampaignID, *req.Amount)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, CreateIntentResponse{ClientSecret: clientSecret})
}
