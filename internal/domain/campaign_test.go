package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCampaign(t *testing.T) {
	t.Parallel()

	lastDate := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("valid campaign starts with zeroed accumulators", func(t *testing.T) {
		t.Parallel()
		campaign, err := NewCampaign("Surgery for Biscuit", "", "Urgent surgery",
			"owner@example.com", 500, lastDate)
		require.NoError(t, err)

		assert.Equal(t, int64(500), campaign.MaxDonation)
		assert.Zero(t, campaign.CurrentDonation)
		assert.Zero(t, campaign.Donors)
		assert.False(t, campaign.IsPaused)
		assert.Equal(t, lastDate, campaign.LastDate)
	})

	t.Run("missing title rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewCampaign("", "", "", "owner@example.com", 500, lastDate)
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("non-positive maximum rejected", func(t *testing.T) {
		t.Parallel()
		for _, max := range []int64{0, -100} {
			_, err := NewCampaign("Surgery", "", "", "owner@example.com", max, lastDate)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		}
	})
}

func TestCampaignHeadroom(t *testing.T) {
	t.Parallel()

	campaign := &Campaign{MaxDonation: 100, CurrentDonation: 90}
	assert.Equal(t, int64(10), campaign.Headroom())

	campaign.CurrentDonation = 100
	assert.Zero(t, campaign.Headroom())
}

func TestCampaignPatchEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, CampaignPatch{}.Empty())

	title := "Updated title"
	assert.False(t, CampaignPatch{Title: &title}.Empty())
}
