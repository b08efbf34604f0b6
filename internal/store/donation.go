package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/pawhaven/paw-haven-api/internal/domain"
)

// DonationStore defines the interface for donation record persistence.
type DonationStore interface {
	// Create saves a new donation record.
	// Returns validation errors from the domain Donation if data is invalid.
	Create(ctx context.Context, donation *domain.Donation) error

	// GetByID retrieves a donation by its unique ID.
	// Returns ErrDonationNotFound if the donation does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Donation, error)

	// ListByDonor returns all donations made by the given email, newest first.
	ListByDonor(ctx context.Context, email string) ([]*domain.Donation, error)

	// ListByCampaign returns all donations against the given campaign,
	// newest first.
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*domain.Donation, error)

	// Delete removes a donation by ID and returns the number of rows
	// deleted. Deleting a donation does not touch the campaign accumulator;
	// the refund flow handles that explicitly.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)

	// SumAmounts returns the total of all donation amounts.
	SumAmounts(ctx context.Context) (int64, error)

	// WithTx returns a new DonationStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) DonationStore
}

// AdoptionRequestStore defines the interface for adoption request persistence.
type AdoptionRequestStore interface {
	// Create saves a new adoption request.
	// Returns validation errors from the domain AdoptionRequest if data is invalid.
	Create(ctx context.Context, req *domain.AdoptionRequest) error

	// ListByRequester returns all adoption requests made by the given email,
	// newest first.
	ListByRequester(ctx context.Context, email string) ([]*domain.AdoptionRequest, error)

	// WithTx returns a new AdoptionRequestStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) AdoptionRequestStore
}
