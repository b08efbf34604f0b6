package domain

import (
	"time"

	"github.com/google/uuid"
)

// AdoptionRequest records a user's request to adopt a pet. The pet's
// Adopted flag is not linked to request existence; marking a pet adopted
// is a separate owner-side operation.
type AdoptionRequest struct {
	ID        uuid.UUID `json:"id"`
	PetID     uuid.UUID `json:"pet_id"`
	PetName   string    `json:"pet_name,omitempty"`
	PetImage  string    `json:"pet_image,omitempty"`
	AddedBy   string    `json:"added_by"`
	CreatedAt time.Time `json:"created_at"`
}

// NewAdoptionRequest creates a new AdoptionRequest with a fresh ID and
// creation timestamp. Returns an error if validation fails.
func NewAdoptionRequest(petID uuid.UUID, petName, petImage, addedBy string) (*AdoptionRequest, error) {
	req := &AdoptionRequest{
		ID:        uuid.New(),
		PetID:     petID,
		PetName:   petName,
		PetImage:  petImage,
		AddedBy:   addedBy,
		CreatedAt: time.Now().UTC(),
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	return req, nil
}

// Validate checks if the AdoptionRequest has valid data.
func (r *AdoptionRequest) Validate() error {
	if r.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}

	if r.PetID == uuid.Nil {
		return NewValidationError("pet_id", "cannot be empty", ErrInvalidID)
	}

	if r.AddedBy == "" {
		return NewValidationError("added_by", "cannot be empty", ErrEmptyContent)
	}

	return nil
}
