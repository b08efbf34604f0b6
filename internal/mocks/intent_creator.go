package mocks

import (
	"context"

	"github.com/google/uuid"
)

// MockIntentCreator implements payment.IntentCreator for testing
type MockIntentCreator struct {
	// CreateIntentFn allows test cases to mock the CreateIntent behavior
	CreateIntentFn func(ctx context.Context, campaignID uuid.UUID, amountMinor int64, currency string) (string, error)

	// Default values used when the function isn't explicitly defined
	ClientSecret string
	Err          error

	// Calls records every invocation for assertion
	Calls []IntentCall
}

// IntentCall captures the arguments of one CreateIntent invocation.
type IntentCall struct {
	CampaignID  uuid.UUID
	AmountMinor int64
	Currency    string
}

// CreateIntent implements the payment.IntentCreator interface
func (m *MockIntentCreator) CreateIntent(
	ctx context.Context,
	campaignID uuid.UUID,
	amountMinor int64,
	currency string,
) (string, error) {
	m.Calls = append(m.Calls, IntentCall{
		CampaignID:  campaignID,
		AmountMinor: amountMinor,
		Currency:    currency,
	})

	if m.CreateIntentFn != nil {
		return m.CreateIntentFn(ctx, campaignID, amountMinor, currency)
	}
	return m.ClientSecret, m.Err
}
