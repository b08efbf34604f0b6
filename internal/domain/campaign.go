package domain

import (
	"time"

	"github.com/google/uuid"
)

// Campaign represents a donation campaign for a pet in need.
// CurrentDonation accumulates accepted donations and must never pass
// MaxDonation at the point a new donation is accepted; the store enforces
// this with an atomic conditional increment.
type Campaign struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Image           string    `json:"image,omitempty"`
	Description     string    `json:"description,omitempty"`
	AddedBy         string    `json:"added_by"`
	MaxDonation     int64     `json:"max_donation"`
	CurrentDonation int64     `json:"current_donation"`
	Donors          int64     `json:"donors"`
	IsPaused        bool      `json:"is_paused"`
	LastDate        time.Time `json:"last_date"`
	CreatedAt       time.Time `json:"created_at"`
}

// Headroom returns the remaining amount the campaign may still accept.
func (c *Campaign) Headroom() int64 {
	return c.MaxDonation - c.CurrentDonation
}

// NewCampaign creates a new Campaign owned by the given email, applying the
// server-assigned defaults (fresh ID, zeroed accumulators, not paused,
// creation timestamp). Returns an error if validation fails.
func NewCampaign(
	title, image, description, addedBy string,
	maxDonation int64,
	lastDate time.Time,
) (*Campaign, error) {
	campaign := &Campaign{
		ID:              uuid.New(),
		Title:           title,
		Image:           image,
		Description:     description,
		AddedBy:         addedBy,
		MaxDonation:     maxDonation,
		CurrentDonation: 0,
		Donors:          0,
		IsPaused:        false,
		LastDate:        lastDate,
		CreatedAt:       time.Now().UTC(),
	}

	if err := campaign.Validate(); err != nil {
		return nil, err
	}

	return campaign, nil
}

// Validate checks if the Campaign has valid data.
func (c *Campaign) Validate() error {
	if c.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}

	if c.Title == "" {
		return NewValidationError("title", "cannot be empty", ErrEmptyContent)
	}

	if c.AddedBy == "" {
		return NewValidationError("added_by", "cannot be empty", ErrEmptyContent)
	}

	if c.MaxDonation <= 0 {
		return NewValidationError("max_donation", "must be positive", ErrInvalidAmount)
	}

	if c.CurrentDonation < 0 {
		return NewValidationError("current_donation", "cannot be negative", ErrInvalidAmount)
	}

	return nil
}

// CampaignPatch describes a partial update to a campaign. Nil fields are
// left untouched by the store. Accumulator fields (CurrentDonation, Donors)
// are deliberately absent: those move only through the dedicated atomic
// apply/revert operations.
type CampaignPatch struct {
	Title       *string    `json:"title,omitempty"`
	Image       *string    `json:"image,omitempty"`
	Description *string    `json:"description,omitempty"`
	MaxDonation *int64     `json:"max_donation,omitempty"`
	LastDate    *time.Time `json:"last_date,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (p CampaignPatch) Empty() bool {
	return p.Title == nil && p.Image == nil && p.Description == nil &&
		p.MaxDonation == nil && p.LastDate == nil
}
