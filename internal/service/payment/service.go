// Package payment implements the payment gate: validating a donation amount
// against a campaign's remaining capacity before delegating to the external
// payment provider.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pawhaven/paw-haven-api/internal/platform/logger"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// Common payment gate errors.
var (
	// ErrInvalidAmount indicates the requested amount is missing, not
	// numeric, or not strictly positive.
	ErrInvalidAmount = errors.New("donation amount must be a positive number")

	// ErrProviderFailure indicates the external payment provider rejected
	// or failed the intent creation.
	ErrProviderFailure = errors.New("payment provider failure")
)

// HeadroomError is returned when a donation would push a campaign past its
// maximum. It carries the remaining headroom so handlers can surface it.
type HeadroomError struct {
	Headroom int64
}

// Error implements the error interface.
func (e *HeadroomError) Error() string {
	return fmt.Sprintf("donation exceeds campaign capacity: remaining headroom is %d", e.Headroom)
}

// IntentCreator abstracts the external payment provider. The amount is in
// minor currency units (cents).
type IntentCreator interface {
	CreateIntent(ctx context.Context, campaignID uuid.UUID, amountMinor int64, currency string) (clientSecret string, err error)
}

// Service is the payment gate. It checks campaign headroom and delegates to
// the provider. No intent record is persisted server-side; the accounting
// happens later through the campaign store's atomic ApplyDonation.
type Service struct {
	campaigns store.CampaignStore
	provider  IntentCreator
	currency  string
	logger    *slog.Logger
}

// NewService creates a payment gate over the given campaign store and
// provider. If logger is nil, a default logger will be used.
func NewService(campaigns store.CampaignStore, provider IntentCreator, currency string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		campaigns: campaigns,
		provider:  provider,
		currency:  currency,
		logger:    logger.With(slog.String("component", "payment_gate")),
	}
}

// CreateIntent validates amount (major currency units) against the
// campaign's remaining capacity, then asks the provider for a payment
// intent and returns its client secret.
func (s *Service) CreateIntent(ctx context.Context, campaignID uuid.UUID, amount int64) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if amount <= 0 {
		return "", ErrInvalidAmount
	}

	campaign, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return "", err
	}

	if campaign.CurrentDonation+amount > campaign.MaxDonation {
		log.Debug("donation rejected: insufficient campaign headroom",
			slog.String("campaign_id", campaignID.String()),
			slog.Int64("amount", amount),
			slog.Int64("headroom", campaign.Headroom()))
		return "", &HeadroomError{Headroom: campaign.Headroom()}
	}

	clientSecret, err := s.provider.CreateIntent(ctx, campaignID, amount*100, s.currency)
	if err != nil {
		log.Error("payment provider failed to create intent",
			slog.String("campaign_id", campaignID.String()),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}

	log.Info("payment intent created",
		slog.String("campaign_id", campaignID.String()),
		slog.Int64("amount", amount))
	return clientSecret, nil
}
