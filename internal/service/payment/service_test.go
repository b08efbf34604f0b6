package payment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/mocks"
	"github.com/pawhaven/paw-haven-api/internal/service/payment"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

func newTestCampaign(t *testing.T, maxDonation, currentDonation int64) *domain.Campaign {
	t.Helper()
	campaign, err := domain.NewCampaign(
		"Surgery for Biscuit", "", "", "owner@example.com",
		maxDonation, time.Now().Add(30*24*time.Hour))
	require.NoError(t, err)
	campaign.CurrentDonation = currentDonation
	return campaign
}

func TestCreateIntent(t *testing.T) {
	t.Parallel()

	t.Run("donation within headroom reaches the provider", func(t *testing.T) {
		t.Parallel()
		campaign := newTestCampaign(t, 100, 90)
		campaigns := mocks.NewMockCampaignStore()
		campaigns.AddCampaign(campaign)
		provider := &mocks.MockIntentCreator{ClientSecret: "pi_secret_123"}

		svc := payment.NewService(campaigns, provider, "usd", nil)
		secret, err := svc.CreateIntent(context.Background(), campaign.ID, 10)

		require.NoError(t, err)
		assert.Equal(t, "pi_secret_123", secret)
		require.Len(t, provider.Calls, 1)
		assert.Equal(t, int64(1000), provider.Calls[0].AmountMinor, "amount should be converted to cents")
		assert.Equal(t, "usd", provider.Calls[0].Currency)
	})

	t.Run("donation past headroom is rejected before the provider", func(t *testing.T) {
		t.Parallel()
		campaign := newTestCampaign(t, 100, 90)
		campaigns := mocks.NewMockCampaignStore()
		campaigns.AddCampaign(campaign)
		provider := &mocks.MockIntentCreator{ClientSecret: "pi_secret_123"}

		svc := payment.NewService(campaigns, provider, "usd", nil)
		_, err := svc.CreateIntent(context.Background(), campaign.ID, 11)

		var headroomErr *payment.HeadroomError
		require.ErrorAs(t, err, &headroomErr)
		assert.Equal(t, int64(10), headroomErr.Headroom)
		assert.Contains(t, err.Error(), "10")
		assert.Empty(t, provider.Calls, "provider must not be called for oversized donations")
	})

	t.Run("donation exactly filling the campaign succeeds", func(t *testing.T) {
		t.Parallel()
		campaign := newTestCampaign(t, 100, 90)
		campaigns := mocks.NewMockCampaignStore()
		campaigns.AddCampaign(campaign)
		provider := &mocks.MockIntentCreator{ClientSecret: "pi_secret_123"}

		svc := payment.NewService(campaigns, provider, "usd", nil)
		_, err := svc.CreateIntent(context.Background(), campaign.ID, 10)

		assert.NoError(t, err)
	})

	t.Run("non-positive amounts are rejected", func(t *testing.T) {
		t.Parallel()
		campaigns := mocks.NewMockCampaignStore()
		provider := &mocks.MockIntentCreator{}
		svc := payment.NewService(campaigns, provider, "usd", nil)

		for _, amount := range []int64{0, -5} {
			_, err := svc.CreateIntent(context.Background(), uuid.New(), amount)
			assert.ErrorIs(t, err, payment.ErrInvalidAmount)
		}
		assert.Empty(t, provider.Calls)
	})

	t.Run("unknown campaign propagates not found", func(t *testing.T) {
		t.Parallel()
		campaigns := mocks.NewMockCampaignStore()
		provider := &mocks.MockIntentCreator{}
		svc := payment.NewService(campaigns, provider, "usd", nil)

		_, err := svc.CreateIntent(context.Background(), uuid.New(), 10)
		assert.ErrorIs(t, err, store.ErrCampaignNotFound)
	})

	t.Run("provider failure is wrapped", func(t *testing.T) {
		t.Parallel()
		campaign := newTestCampaign(t, 100, 0)
		campaigns := mocks.NewMockCampaignStore()
		campaigns.AddCampaign(campaign)
		provider := &mocks.MockIntentCreator{Err: errors.New("stripe: connection reset")}

		svc := payment.NewService(campaigns, provider, "usd", nil)
		_, err := svc.CreateIntent(context.Background(), campaign.ID, 10)

		assert.ErrorIs(t, err, payment.ErrProviderFailure)
	})
}
