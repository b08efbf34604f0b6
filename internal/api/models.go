package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/pawhaven/paw-haven-api/internal/store"
)

// Common request/response structures

// IssueTokenRequest defines the payload for the session issuance endpoint.
type IssueTokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// AckResponse is the minimal success acknowledgement used by the session
// endpoints, mirroring the frontend's expectations.
type AckResponse struct {
	Success bool `json:"success"`
}

// CreatePetRequest defines the payload for the pet creation endpoint.
type CreatePetRequest struct {
	Name        string `json:"name"     validate:"required"`
	Category    string `json:"category" validate:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

// CreateCampaignRequest defines the payload for the campaign creation endpoint.
type CreateCampaignRequest struct {
	Title       string    `json:"title"        validate:"required"`
	Image       string    `json:"image"`
	Description string    `json:"description"`
	MaxDonation int64     `json:"max_donation" validate:"required,gt=0"`
	LastDate    time.Time `json:"last_date"    validate:"required"`
}

// CreateDonationRequest defines the payload for recording a completed donation.
type CreateDonationRequest struct {
	CampaignID uuid.UUID `json:"campaign_id" validate:"required"`
	Amount     int64     `json:"amount"      validate:"required,gt=0"`
}

// ApplyDonationRequest defines the payload for the atomic campaign
// accumulator update.
type ApplyDonationRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// CreateAdoptionRequest defines the payload for filing an adoption request.
type CreateAdoptionRequest struct {
	PetID    uuid.UUID `json:"pet_id" validate:"required"`
	PetName  string    `json:"pet_name"`
	PetImage string    `json:"pet_image"`
}

// CreateIntentRequest defines the payload for the payment gate.
// Amount is a pointer so a missing amount is distinguishable from zero.
type CreateIntentRequest struct {
	CampaignID uuid.UUID `json:"campaign_id" validate:"required"`
	Amount     *int64    `json:"amount"      validate:"required"`
}

// CreateIntentResponse carries the payment provider's client secret back to
// the frontend.
type CreateIntentResponse struct {
	ClientSecret string `json:"client_secret"`
}

// SetBanRequest defines the payload for the admin ban endpoint.
// A missing flag defaults to banning.
type SetBanRequest struct {
	IsBanned *bool `json:"is_banned"`
}

// RoleResponse carries a user's stored role.
type RoleResponse struct {
	Role string `json:"role"`
}

// ToggleResponse reports the new value of a toggled flag.
type ToggleResponse struct {
	Value bool `json:"value"`
}

// DeleteResponse reports how many records a delete removed.
type DeleteResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// CreatedResponse reports the ID assigned to a newly inserted record.
type CreatedResponse struct {
	InsertedID uuid.UUID `json:"inserted_id"`
}

// UpdateResponse mirrors the store's update result.
type UpdateResponse struct {
	MatchedCount  int64      `json:"matched_count"`
	ModifiedCount int64      `json:"modified_count"`
	UpsertedID    *uuid.UUID `json:"upserted_id,omitempty"`
}

// NewUpdateResponse converts a store.UpdateResult into the response shape.
func NewUpdateResponse(result store.UpdateResult) UpdateResponse {
	return UpdateResponse{
		MatchedCount:  result.Matched,
		ModifiedCount: result.Modified,
		UpsertedID:    result.UpsertedID,
	}
}
