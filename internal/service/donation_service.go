// Package service implements business operations that span multiple stores.
package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/platform/logger"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// DonationService provides donation operations that touch both the donation
// records and the campaign accumulators.
type DonationService struct {
	db        *sql.DB
	donations store.DonationStore
	campaigns store.CampaignStore
	logger    *slog.Logger
}

// NewDonationService creates a DonationService over the given stores.
// If logger is nil, a default logger will be used.
func NewDonationService(
	db *sql.DB,
	donations store.DonationStore,
	campaigns store.CampaignStore,
	logger *slog.Logger,
) *DonationService {
	if logger == nil {
		logger = slog.Default()
	}

	return &DonationService{
		db:        db,
		donations: donations,
		campaigns: campaigns,
		logger:    logger.With(slog.String("component", "donation_service")),
	}
}

// Refund reverses a donation: it subtracts the donated amount from the
// campaign's accumulator, decrements the donor count, and deletes the
// donation record, all within a single transaction. A failure on either
// side leaves both untouched.
// Returns store.ErrDonationNotFound if the donation does not exist.
func (s *DonationService) Refund(ctx context.Context, donationID uuid.UUID) (*domain.Donation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var refunded *domain.Donation

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		donations := s.donations.WithTx(tx)
		campaigns := s.campaigns.WithTx(tx)

		donation, err := donations.GetByID(ctx, donationID)
		if err != nil {
			return err
		}

		if err := campaigns.RevertDonation(ctx, donation.CampaignID, donation.Amount); err != nil {
			return err
		}

		if _, err := donations.Delete(ctx, donationID); err != nil {
			return err
		}

		refunded = donation
		return nil
	})

	if err != nil {
		return nil, err
	}

	log.Info("donation refunded",
		slog.String("donation_id", refunded.ID.String()),
		slog.String("campaign_id", refunded.CampaignID.String()),
		slog.Int64("amount", refunded.Amount))
	return refunded, nil
}
