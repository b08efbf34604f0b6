package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// MockDonationStore implements store.DonationStore for testing
type MockDonationStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, donation *domain.Donation) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Donation, error)
	ListByDonorFn    func(ctx context.Context, email string) ([]*domain.Donation, error)
	ListByCampaignFn func(ctx context.Context, campaignID uuid.UUID) ([]*domain.Donation, error)
	DeleteFn         func(ctx context.Context, id uuid.UUID) (int64, error)
	SumAmountsFn     func(ctx context.Context) (int64, error)

	// Data for the default implementation, keyed by ID
	Donations map[uuid.UUID]*domain.Donation
	Err       error
}

// NewMockDonationStore creates a new mock store with initialized defaults
func NewMockDonationStore() *MockDonationStore {
	return &MockDonationStore{
		Donations: make(map[uuid.UUID]*domain.Donation),
	}
}

// AddDonation seeds the mock with an existing donation.
func (m *MockDonationStore) AddDonation(donation *domain.Donation) {
	m.Donations[donation.ID] = donation
}

// Create implements the DonationStore interface
func (m *MockDonationStore) Create(ctx context.Context, donation *domain.Donation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, donation)
	}
	if m.Err != nil {
		return m.Err
	}

	m.Donations[donation.ID] = donation
	return nil
}

// GetByID implements the DonationStore interface
func (m *MockDonationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Donation, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	donation, exists := m.Donations[id]
	if !exists {
		return nil, store.ErrDonationNotFound
	}
	return donation, nil
}

// ListByDonor implements the DonationStore interface
func (m *MockDonationStore) ListByDonor(
	ctx context.Context,
	email string,
) ([]*domain.Donation, error) {
	if m.ListByDonorFn != nil {
		return m.ListByDonorFn(ctx, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	var donations []*domain.Donation
	for _, donation := range m.Donations {
		if donation.DonorEmail == email {
			donations = append(donations, donation)
		}
	}
	return donations, nil
}

// ListByCampaign implements the DonationStore interface
func (m *MockDonationStore) ListByCampaign(
	ctx context.Context,
	campaignID uuid.UUID,
) ([]*domain.Donation, error) {
	if m.ListByCampaignFn != nil {
		return m.ListByCampaignFn(ctx, campaignID)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	var donations []*domain.Donation
	for _, donation := range m.Donations {
		if donation.CampaignID == campaignID {
			donations = append(donations, donation)
		}
	}
	return donations, nil
}

// Delete implements the DonationStore interface
func (m *MockDonationStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if m.Err != nil {
		return 0, m.Err
	}

	if _, exists := m.Donations[id]; !exists {
		return 0, nil
	}
	delete(m.Donations, id)
	return 1, nil
}

// SumAmounts implements the DonationStore interface
func (m *MockDonationStore) SumAmounts(ctx context.Context) (int64, error) {
	if m.SumAmountsFn != nil {
		return m.SumAmountsFn(ctx)
	}
	if m.Err != nil {
		return 0, m.Err
	}

	var total int64
	for _, donation := range m.Donations {
		total += donation.Amount
	}
	return total, nil
}

// WithTx implements the DonationStore interface
func (m *MockDonationStore) WithTx(tx *sql.Tx) store.DonationStore {
	return m
}

// MockAdoptionRequestStore implements store.AdoptionRequestStore for testing
type MockAdoptionRequestStore struct {
	CreateFn          func(ctx context.Context, req *domain.AdoptionRequest) error
	ListByRequesterFn func(ctx context.Context, email string) ([]*domain.AdoptionRequest, error)

	Requests []*domain.AdoptionRequest
	Err      error
}

// Create implements the AdoptionRequestStore interface
func (m *MockAdoptionRequestStore) Create(ctx context.Context, req *domain.AdoptionRequest) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, req)
	}
	if m.Err != nil {
		return m.Err
	}

	m.Requests = append(m.Requests, req)
	return nil
}

// ListByRequester implements the AdoptionRequestStore interface
func (m *MockAdoptionRequestStore) ListByRequester(
	ctx context.Context,
	email string,
) ([]*domain.AdoptionRequest, error) {
	if m.ListByRequesterFn != nil {
		return m.ListByRequesterFn(ctx, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	var requests []*domain.AdoptionRequest
	for _, req := range m.Requests {
		if req.AddedBy == email {
			requests = append(requests, req)
		}
	}
	return requests, nil
}

// WithTx implements the AdoptionRequestStore interface
func (m *MockAdoptionRequestStore) WithTx(tx *sql.Tx) store.AdoptionRequestStore {
	return m
}
