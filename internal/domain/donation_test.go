package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDonation(t *testing.T) {
	t.Parallel()

	campaignID := uuid.New()

	t.Run("valid donation", func(t *testing.T) {
		t.Parallel()
		donation, err := NewDonation(campaignID, "donor@example.com", 50)
		require.NoError(t, err)

		assert.Equal(t, campaignID, donation.CampaignID)
		assert.Equal(t, "donor@example.com", donation.DonorEmail)
		assert.Equal(t, int64(50), donation.Amount)
	})

	t.Run("nil campaign rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewDonation(uuid.Nil, "donor@example.com", 50)
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		t.Parallel()
		for _, amount := range []int64{0, -10} {
			_, err := NewDonation(campaignID, "donor@example.com", amount)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		}
	})
}
