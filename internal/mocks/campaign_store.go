package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// MockCampaignStore implements store.CampaignStore for testing
type MockCampaignStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, campaign *domain.Campaign) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	ListFn           func(ctx context.Context, search string, page, limit int) (*store.CampaignPage, error)
	ListByOwnerFn    func(ctx context.Context, email string) ([]*domain.Campaign, error)
	ListActiveFn     func(ctx context.Context, limit int) ([]*domain.Campaign, error)
	UpdateFn         func(ctx context.Context, id uuid.UUID, patch domain.CampaignPatch, opts ...store.UpdateOption) (store.UpdateResult, error)
	TogglePausedFn   func(ctx context.Context, id uuid.UUID) (bool, error)
	ApplyDonationFn  func(ctx context.Context, id uuid.UUID, amount int64) error
	RevertDonationFn func(ctx context.Context, id uuid.UUID, amount int64) error
	DeleteFn         func(ctx context.Context, id uuid.UUID) (int64, error)

	// Data for the default implementation, keyed by ID
	Campaigns map[uuid.UUID]*domain.Campaign
	Err       error
}

// NewMockCampaignStore creates a new mock store with initialized defaults
func NewMockCampaignStore() *MockCampaignStore {
	return &MockCampaignStore{
		Campaigns: make(map[uuid.UUID]*domain.Campaign),
	}
}

// AddCampaign seeds the mock with an existing campaign.
func (m *MockCampaignStore) AddCampaign(campaign *domain.Campaign) {
	m.Campaigns[campaign.ID] = campaign
}

// Create implements the CampaignStore interface
func (m *MockCampaignStore) Create(ctx context.Context, campaign *domain.Campaign) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, campaign)
	}
	if m.Err != nil {
		return m.Err
	}

	m.Campaigns[campaign.ID] = campaign
	return nil
}

// GetByID implements the CampaignStore interface
func (m *MockCampaignStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	campaign, exists := m.Campaigns[id]
	if !exists {
		return nil, store.ErrCampaignNotFound
	}
	return campaign, nil
}

// List implements the CampaignStore interface
func (m *MockCampaignStore) List(
	ctx context.Context,
	search string,
	page, limit int,
) (*store.CampaignPage, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, search, page, limit)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	items := make([]*domain.Campaign, 0, len(m.Campaigns))
	for _, campaign := range m.Campaigns {
		items = append(items, campaign)
	}
	return &store.CampaignPage{
		Items:    items,
		PageInfo: store.NewPageInfo(page, limit, int64(len(items))),
	}, nil
}

// ListByOwner implements the CampaignStore interface
func (m *MockCampaignStore) ListByOwner(
	ctx context.Context,
	email string,
) ([]*domain.Campaign, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	var campaigns []*domain.Campaign
	for _, campaign := range m.Campaigns {
		if campaign.AddedBy == email {
			campaigns = append(campaigns, campaign)
		}
	}
	return campaigns, nil
}

// ListActive implements the CampaignStore interface
func (m *MockCampaignStore) ListActive(
	ctx context.Context,
	limit int,
) ([]*domain.Campaign, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx, limit)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	var campaigns []*domain.Campaign
	for _, campaign := range m.Campaigns {
		if !campaign.IsPaused && len(campaigns) < limit {
			campaigns = append(campaigns, campaign)
		}
	}
	return campaigns, nil
}

// Update implements the CampaignStore interface
func (m *MockCampaignStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.CampaignPatch,
	opts ...store.UpdateOption,
) (store.UpdateResult, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, id, patch, opts...)
	}
	if m.Err != nil {
		return store.UpdateResult{}, m.Err
	}

	if patch.Empty() {
		return store.UpdateResult{}, store.ErrEmptyPatch
	}

	campaign, exists := m.Campaigns[id]
	if !exists {
		if store.ResolveUpdateOptions(opts).Upsert {
			fresh := &domain.Campaign{ID: uuid.New()}
			applyCampaignPatch(fresh, patch)
			m.Campaigns[fresh.ID] = fresh
			upsertedID := fresh.ID
			return store.UpdateResult{UpsertedID: &upsertedID}, nil
		}
		return store.UpdateResult{}, store.ErrCampaignNotFound
	}

	applyCampaignPatch(campaign, patch)
	return store.UpdateResult{Matched: 1, Modified: 1}, nil
}

func applyCampaignPatch(campaign *domain.Campaign, patch domain.CampaignPatch) {
	if patch.Title != nil {
		campaign.Title = *patch.Title
	}
	if patch.Image != nil {
		campaign.Image = *patch.Image
	}
	if patch.Description != nil {
		campaign.Description = *patch.Description
	}
	if patch.MaxDonation != nil {
		campaign.MaxDonation = *patch.MaxDonation
	}
	if patch.LastDate != nil {
		campaign.LastDate = *patch.LastDate
	}
}

// TogglePaused implements the CampaignStore interface
func (m *MockCampaignStore) TogglePaused(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.TogglePausedFn != nil {
		return m.TogglePausedFn(ctx, id)
	}
	if m.Err != nil {
		return false, m.Err
	}

	campaign, exists := m.Campaigns[id]
	if !exists {
		return false, store.ErrCampaignNotFound
	}
	campaign.IsPaused = !campaign.IsPaused
	return campaign.IsPaused, nil
}

// ApplyDonation implements the CampaignStore interface
func (m *MockCampaignStore) ApplyDonation(ctx context.Context, id uuid.UUID, amount int64) error {
	if m.ApplyDonationFn != nil {
		return m.ApplyDonationFn(ctx, id, amount)
	}
	if m.Err != nil {
		return m.Err
	}

	campaign, exists := m.Campaigns[id]
	if !exists {
		return store.ErrCampaignNotFound
	}
	if campaign.CurrentDonation+amount > campaign.MaxDonation {
		return store.ErrCampaignCapacity
	}
	campaign.CurrentDonation += amount
	campaign.Donors++
	return nil
}

// RevertDonation implements the CampaignStore interface
func (m *MockCampaignStore) RevertDonation(ctx context.Context, id uuid.UUID, amount int64) error {
	if m.RevertDonationFn != nil {
		return m.RevertDonationFn(ctx, id, amount)
	}
	if m.Err != nil {
		return m.Err
	}

	campaign, exists := m.Campaigns[id]
	if !exists {
		return store.ErrCampaignNotFound
	}
	campaign.CurrentDonation -= amount
	if campaign.CurrentDonation < 0 {
		campaign.CurrentDonation = 0
	}
	if campaign.Donors > 0 {
		campaign.Donors--
	}
	return nil
}

// Delete implements the CampaignStore interface
func (m *MockCampaignStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if m.Err != nil {
		return 0, m.Err
	}

	if _, exists := m.Campaigns[id]; !exists {
		return 0, nil
	}
	delete(m.Campaigns, id)
	return 1, nil
}

// WithTx implements the CampaignStore interface
func (m *MockCampaignStore) WithTx(tx *sql.Tx) store.CampaignStore {
	return m
}
