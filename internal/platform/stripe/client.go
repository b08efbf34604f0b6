// Package stripe adapts the Stripe Go SDK to the payment gate's
// IntentCreator interface.
package stripe

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	stripego "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"github.com/pawhaven/paw-haven-api/internal/config"
	"github.com/pawhaven/paw-haven-api/internal/service/payment"
)

// IntentCreator creates payment intents against the Stripe API.
type IntentCreator struct {
	api *client.API
}

// Ensure IntentCreator implements payment.IntentCreator
var _ payment.IntentCreator = (*IntentCreator)(nil)

// NewIntentCreator builds a Stripe-backed intent creator from the payment
// configuration.
func NewIntentCreator(cfg config.PaymentConfig) (*IntentCreator, error) {
	if cfg.StripeSecretKey == "" {
		return nil, fmt.Errorf("stripe secret key is required")
	}

	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)

	return &IntentCreator{api: api}, nil
}

// CreateIntent implements payment.IntentCreator. The amount is in minor
// currency units. The intent is tagged with the campaign ID so payments can
// be traced back from the Stripe dashboard.
func (c *IntentCreator) CreateIntent(
	ctx context.Context,
	campaignID uuid.UUID,
	amountMinor int64,
	currency string,
) (string, error) {
	params := &stripego.PaymentIntentParams{
		Params: stripego.Params{
			Context: ctx,
		},
		Amount:   stripego.Int64(amountMinor),
		Currency: stripego.String(currency),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	params.AddMetadata("campaign_id", campaignID.String())

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}
