package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pet represents an animal listed for adoption.
// The Adopted flag is an independent boolean; it is not derived from the
// existence of adoption requests against this pet.
type Pet struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Image       string    `json:"image,omitempty"`
	Description string    `json:"description,omitempty"`
	AddedBy     string    `json:"added_by"`
	Adopted     bool      `json:"adopted"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewPet creates a new Pet owned by the given email, applying the
// server-assigned defaults (fresh ID, Adopted=false, creation timestamp).
// Returns an error if validation fails.
func NewPet(name, category, image, description, addedBy string) (*Pet, error) {
	pet := &Pet{
		ID:          uuid.New(),
		Name:        name,
		Category:    category,
		Image:       image,
		Description: description,
		AddedBy:     addedBy,
		Adopted:     false,
		CreatedAt:   time.Now().UTC(),
	}

	if err := pet.Validate(); err != nil {
		return nil, err
	}

	return pet, nil
}

// Validate checks if the Pet has valid data.
func (p *Pet) Validate() error {
	if p.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}

	if p.Name == "" {
		return NewValidationError("name", "cannot be empty", ErrEmptyContent)
	}

	if p.Category == "" {
		return NewValidationError("category", "cannot be empty", ErrEmptyContent)
	}

	if p.AddedBy == "" {
		return NewValidationError("added_by", "cannot be empty", ErrEmptyContent)
	}

	return nil
}

// PetPatch describes a partial update to a pet. Nil fields are left
// untouched by the store.
type PetPatch struct {
	Name        *string `json:"name,omitempty"`
	Category    *string `json:"category,omitempty"`
	Image       *string `json:"image,omitempty"`
	Description *string `json:"description,omitempty"`
	Adopted     *bool   `json:"adopted,omitempty"`
}

// Empty reports whether the patch carries no fields at all.
func (p PetPatch) Empty() bool {
	return p.Name == nil && p.Category == nil && p.Image == nil &&
		p.Description == nil && p.Adopted == nil
}

// CategoryCount is the aggregate view of pets grouped by category.
// Slug is the URL-safe form of the category name.
type CategoryCount struct {
	Category string `json:"category"`
	Slug     string `json:"slug"`
	Count    int64  `json:"count"`
}
