package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/pawhaven/paw-haven-api/internal/domain"
)

// PetFilter narrows a pet listing. Search is a case-insensitive substring
// match on the name; Category is an exact match. Nil Adopted means both
// adopted and unadopted pets are included.
type PetFilter struct {
	Search   string
	Category string
	Adopted  *bool
}

// PetPage is one page of a filtered pet listing, newest first.
type PetPage struct {
	Items []*domain.Pet `json:"items"`
	PageInfo
}

// UpdateResult reports how many rows an update matched and modified, and
// the ID of a row inserted by an opt-in upsert.
type UpdateResult struct {
	Matched    int64      `json:"matched_count"`
	Modified   int64      `json:"modified_count"`
	UpsertedID *uuid.UUID `json:"upserted_id,omitempty"`
}

// PetStore defines the interface for pet data persistence.
type PetStore interface {
	// Create saves a new pet to the store.
	// Returns validation errors from the domain Pet if data is invalid.
	Create(ctx context.Context, pet *domain.Pet) error

	// GetByID retrieves a pet by its unique ID.
	// Returns ErrPetNotFound if the pet does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error)

	// List returns one page of pets matching the filter, ordered by
	// creation time descending.
	List(ctx context.Context, filter PetFilter, page, limit int) (*PetPage, error)

	// ListByOwner returns all pets added by the given email, newest first.
	ListByOwner(ctx context.Context, email string) ([]*domain.Pet, error)

	// Update applies the non-nil patch fields to an existing pet.
	// By default it is strict: ErrPetNotFound when the id matches nothing.
	// Pass UpsertOnMiss to insert a fresh-ID pet from the patch instead.
	// Returns ErrEmptyPatch if the patch carries no fields.
	Update(ctx context.Context, id uuid.UUID, patch domain.PetPatch, opts ...UpdateOption) (UpdateResult, error)

	// ToggleAdopted flips the pet's adoption flag and returns the new value.
	// Returns ErrPetNotFound if the pet does not exist.
	ToggleAdopted(ctx context.Context, id uuid.UUID) (bool, error)

	// Delete removes a pet by ID and returns the number of rows deleted.
	// Deleting a missing pet is not an error; it reports 0.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	// CategoryCounts groups pets by category, returning a count and a
	// URL slug per category.
	CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error)

	// WithTx returns a new PetStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) PetStore
}

// UpdateOption adjusts the behavior of a store update.
type UpdateOption func(*UpdateOptions)

// UpdateOptions holds the resolved update behavior.
type UpdateOptions struct {
	Upsert bool
}

// UpsertOnMiss makes an update insert a new row (with a database-generated
// ID, populated only from the patch fields) when the target id matches
// nothing, instead of failing with a not-found error. Updates are strict
// unless this is requested explicitly.
func UpsertOnMiss() UpdateOption {
	return func(o *UpdateOptions) {
		o.Upsert = true
	}
}

// ResolveUpdateOptions applies the given options over the strict defaults.
func ResolveUpdateOptions(opts []UpdateOption) UpdateOptions {
	var resolved UpdateOptions
	for _, opt := range opts {
		opt(&resolved)
	}
	return resolved
}
