package domain

import (
	"time"

	"github.com/google/uuid"
)

// Donation records a completed contribution to a campaign.
// Deleting a donation does not reverse the campaign's accumulator; only
// the explicit refund operation does that.
type Donation struct {
	ID         uuid.UUID `json:"id"`
	CampaignID uuid.UUID `json:"campaign_id"`
	DonorEmail string    `json:"donor_email"`
	Amount     int64     `json:"amount"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewDonation creates a new Donation with a fresh ID and creation timestamp.
// Returns an error if validation fails.
func NewDonation(campaignID uuid.UUID, donorEmail string, amount int64) (*Donation, error) {
	donation := &Donation{
		ID:         uuid.New(),
		CampaignID: campaignID,
		DonorEmail: donorEmail,
		Amount:     amount,
		CreatedAt:  time.Now().UTC(),
	}

	if err := donation.Validate(); err != nil {
		return nil, err
	}

	return donation, nil
}

// Validate checks if the Donation has valid data.
func (d *Donation) Validate() error {
	if d.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}

	if d.CampaignID == uuid.Nil {
		return NewValidationError("campaign_id", "cannot be empty", ErrInvalidID)
	}

	if d.DonorEmail == "" {
		return NewValidationError("donor_email", "cannot be empty", ErrEmptyContent)
	}

	if d.Amount <= 0 {
		return NewValidationError("amount", "must be positive", ErrInvalidAmount)
	}

	return nil
}
