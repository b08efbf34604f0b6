package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/paw-haven-api/internal/mocks"
	"github.com/pawhaven/paw-haven-api/internal/service/payment"
)

func TestPaymentCreateIntent(t *testing.T) {
	t.Parallel()

	newHandler := func(campaigns *mocks.MockCampaignStore, provider *mocks.MockIntentCreator) *PaymentHandler {
		return NewPaymentHandler(payment.NewService(campaigns, provider, "usd", nil))
	}

	t.Run("returns the provider client secret", func(t *testing.T) {
		t.Parallel()
		campaigns := mocks.NewMockCampaignStore()
		campaign := newTestCampaign(t, 100, 90)
		campaigns.AddCampaign(campaign)
		handler := newHandler(campaigns, &mocks.MockIntentCreator{ClientSecret: "pi_secret_123"})

		body := fmt.Sprintf(`{"campaign_id":%q,"amount":10}`, campaign.ID)
		req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.CreateIntent(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp CreateIntentResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "pi_secret_123", resp.ClientSecret)
	})

	t.Run("oversized donation is rejected citing headroom", func(t *testing.T) {
		t.Parallel()
		campaigns := mocks.NewMockCampaignStore()
		campaign := newTestCampaign(t, 100, 90)
		campaigns.AddCampaign(campaign)
		provider := &mocks.MockIntentCreator{ClientSecret: "pi_secret_123"}
		handler := newHandler(campaigns, provider)

		body := fmt.Sprintf(`{"campaign_id":%q,"amount":11}`, campaign.ID)
		req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.CreateIntent(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "headroom is 10")
		assert.Empty(t, provider.Calls)
	})

	t.Run("missing amount is rejected", func(t *testing.T) {
		t.Parallel()
		campaigns := mocks.NewMockCampaignStore()
		campaign := newTestCampaign(t, 100, 0)
		campaigns.AddCampaign(campaign)
		handler := newHandler(campaigns, &mocks.MockIntentCreator{})

		body := fmt.Sprintf(`{"campaign_id":%q}`, campaign.ID)
		req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.CreateIntent(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("provider failure maps to 502", func(t *testing.T) {
		t.Parallel()
		campaigns := mocks.NewMockCampaignStore()
		campaign := newTestCampaign(t, 100, 0)
		campaigns.AddCampaign(campaign)
		handler := newHandler(campaigns, &mocks.MockIntentCreator{
			Err: fmt.Errorf("stripe: connection reset"),
		})

		body := fmt.Sprintf(`{"campaign_id":%q,"amount":10}`, campaign.ID)
		req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", strings.NewReader(body))
		rec := httptest.NewRecorder()

		handler.CreateIntent(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})
}
