package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/pawhaven/paw-haven-api/internal/domain"
)

// CampaignPage is one page of a campaign listing, newest first.
type CampaignPage struct {
	Items []*domain.Campaign `json:"items"`
	PageInfo
}

// CampaignStore defines the interface for donation campaign persistence.
type CampaignStore interface {
	// Create saves a new campaign to the store.
	// Returns validation errors from the domain Campaign if data is invalid.
	Create(ctx context.Context, campaign *domain.Campaign) error

	// GetByID retrieves a campaign by its unique ID.
	// Returns ErrCampaignNotFound if the campaign does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)

	// List returns one page of campaigns matching the optional title search,
	// ordered by creation time descending.
	List(ctx context.Context, search string, page, limit int) (*CampaignPage, error)

	// ListByOwner returns all campaigns added by the given email, newest first.
	ListByOwner(ctx context.Context, email string) ([]*domain.Campaign, error)

	// ListActive returns up to limit campaigns that are not paused,
	// newest first. Used by the featured and limited listings.
	ListActive(ctx context.Context, limit int) ([]*domain.Campaign, error)

	// Update applies the non-nil patch fields to an existing campaign.
	// By default it is strict: ErrCampaignNotFound when the id matches
	// nothing. Pass UpsertOnMiss to insert a fresh-ID campaign instead.
	// Returns ErrEmptyPatch if the patch carries no fields.
	Update(ctx context.Context, id uuid.UUID, patch domain.CampaignPatch, opts ...UpdateOption) (UpdateResult, error)

	// TogglePaused flips the campaign's pause flag and returns the new value.
	// Returns ErrCampaignNotFound if the campaign does not exist.
	TogglePaused(ctx context.Context, id uuid.UUID) (bool, error)

	// ApplyDonation atomically adds amount to the campaign's accumulated
	// total and increments the donor count, but only when the result stays
	// within the campaign's maximum. Returns ErrCampaignCapacity when the
	// donation would not fit, and ErrCampaignNotFound when the campaign
	// does not exist. The check and the increment are a single conditional
	// update; concurrent donations cannot race past the maximum.
	ApplyDonation(ctx context.Context, id uuid.UUID, amount int64) error

	// RevertDonation subtracts amount from the campaign's accumulated total
	// and decrements the donor count, flooring both at zero. Used by the
	// refund flow. Returns ErrCampaignNotFound if the campaign does not exist.
	RevertDonation(ctx context.Context, id uuid.UUID, amount int64) error

	// Delete removes a campaign by ID and returns the number of rows deleted.
	// Deleting a missing campaign is not an error; it reports 0.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	// WithTx returns a new CampaignStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) CampaignStore
}
