package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// MockPetStore implements store.PetStore for testing
type MockPetStore struct {
	// Function fields for customizable behavior
	CreateFn         func(ctx context.Context, pet *domain.Pet) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*domain.Pet, error)
	ListFn           func(ctx context.Context, filter store.PetFilter, page, limit int) (*store.PetPage, error)
	ListByOwnerFn    func(ctx context.Context, email string) ([]*domain.Pet, error)
	UpdateFn         func(ctx context.Context, id uuid.UUID, patch domain.PetPatch, opts ...store.UpdateOption) (store.UpdateResult, error)
	ToggleAdoptedFn  func(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteFn         func(ctx context.Context, id uuid.UUID) (int64, error)
	CategoryCountsFn func(ctx context.Context) ([]domain.CategoryCount, error)

	// Data for the default implementation, keyed by ID
	Pets map[uuid.UUID]*domain.Pet
	Err  error
}

// NewMockPetStore creates a new mock store with initialized defaults
func NewMockPetStore() *MockPetStore {
	return &MockPetStore{
		Pets: make(map[uuid.UUID]*domain.Pet),
	}
}

// AddPet seeds the mock with an existing pet.
func (m *MockPetStore) AddPet(pet *domain.Pet) {
	m.Pets[pet.ID] = pet
}

// Create implements the PetStore interface
func (m *MockPetStore) Create(ctx context.Context, pet *domain.Pet) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, pet)
	}
	if m.Err != nil {
		return m.Err
	}

	m.Pets[pet.ID] = pet
	return nil
}

// GetByID implements the PetStore interface
func (m *MockPetStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	pet, exists := m.Pets[id]
	if !exists {
		return nil, store.ErrPetNotFound
	}
	return pet, nil
}

// List implements the PetStore interface
func (m *MockPetStore) List(
	ctx context.Context,
	filter store.PetFilter,
	page, limit int,
) (*store.PetPage, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter, page, limit)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	items := make([]*domain.Pet, 0, len(m.Pets))
	for _, pet := range m.Pets {
		if filter.Adopted != nil && pet.Adopted != *filter.Adopted {
			continue
		}
		if filter.Category != "" && pet.Category != filter.Category {
			continue
		}
		items = append(items, pet)
	}
	return &store.PetPage{
		Items:    items,
		PageInfo: store.NewPageInfo(page, limit, int64(len(items))),
	}, nil
}

// ListByOwner implements the PetStore interface
func (m *MockPetStore) ListByOwner(ctx context.Context, email string) ([]*domain.Pet, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	var pets []*domain.Pet
	for _, pet := range m.Pets {
		if pet.AddedBy == email {
			pets = append(pets, pet)
		}
	}
	return pets, nil
}

// Update implements the PetStore interface
func (m *MockPetStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.PetPatch,
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

	pet, exists := m.Pets[id]
	if !exists {
		if store.ResolveUpdateOptions(opts).Upsert {
			fresh := &domain.Pet{ID: uuid.New()}
			applyPetPatch(fresh, patch)
			m.Pets[fresh.ID] = fresh
			upsertedID := fresh.ID
			return store.UpdateResult{UpsertedID: &upsertedID}, nil
		}
		return store.UpdateResult{}, store.ErrPetNotFound
	}

	applyPetPatch(pet, patch)
	return store.UpdateResult{Matched: 1, Modified: 1}, nil
}

func applyPetPatch(pet *domain.Pet, patch domain.PetPatch) {
	if patch.Name != nil {
		pet.Name = *patch.Name
	}
	if patch.Category != nil {
		pet.Category = *patch.Category
	}
	if patch.Image != nil {
		pet.Image = *patch.Image
	}
	if patch.Description != nil {
		pet.Description = *patch.Description
	}
	if patch.Adopted != nil {
		pet.Adopted = *patch.Adopted
	}
}

// ToggleAdopted implements the PetStore interface
func (m *MockPetStore) ToggleAdopted(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ToggleAdoptedFn != nil {
		return m.ToggleAdoptedFn(ctx, id)
	}
	if m.Err != nil {
		return false, m.Err
	}

	pet, exists := m.Pets[id]
	if !exists {
		return false, store.ErrPetNotFound
	}
	pet.Adopted = !pet.Adopted
	return pet.Adopted, nil
}

// Delete implements the PetStore interface
func (m *MockPetStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	if m.Err != nil {
		return 0, m.Err
	}

	if _, exists := m.Pets[id]; !exists {
		return 0, nil
	}
	delete(m.Pets, id)
	return 1, nil
}

// CategoryCounts implements the PetStore interface
func (m *MockPetStore) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	if m.CategoryCountsFn != nil {
		return m.CategoryCountsFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	counts := make(map[string]int64)
	for _, pet := range m.Pets {
		counts[pet.Category]++
	}
	result := make([]domain.CategoryCount, 0, len(counts))
	for category, count := range counts {
		result = append(result, domain.CategoryCount{
			Category: category,
			Slug:     domain.Slugify(category),
			Count:    count,
		})
	}
	return result, nil
}

// WithTx implements the PetStore interface
func (m *MockPetStore) WithTx(tx *sql.Tx) store.PetStore {
	return m
}
