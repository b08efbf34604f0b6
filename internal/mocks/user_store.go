package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/google/uuid"

	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateOrGetFn    func(ctx context.Context, email string) (*domain.User, error)
	GetByEmailFn     func(ctx context.Context, email string) (*domain.User, error)
	ListOthersFn     func(ctx context.Context, excludeEmail string) ([]*domain.User, error)
	PromoteToAdminFn func(ctx context.Context, id uuid.UUID) error
	SetBannedFn      func(ctx context.Context, id uuid.UUID, banned bool) error

	// Data for the default implementation, keyed by email
	Users map[string]*domain.User
	Err   error
}

// NewMockUserStore creates a new mock store with initialized defaults
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// AddUser seeds the mock with an existing user.
func (m *MockUserStore) AddUser(user *domain.User) {
	m.Users[user.Email] = user
}

// CreateOrGet implements the UserStore interface
func (m *MockUserStore) CreateOrGet(ctx context.Context, email string) (*domain.User, error) {
	if m.CreateOrGetFn != nil {
		return m.CreateOrGetFn(ctx, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	if user, exists := m.Users[email]; exists {
		return user, nil
	}

	user, err := domain.NewUser(email)
	if err != nil {
		return nil, err
	}
	m.Users[email] = user
	return user, nil
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	user, exists := m.Users[email]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// ListOthers implements the UserStore interface
func (m *MockUserStore) ListOthers(
	ctx context.Context,
	excludeEmail string,
) ([]*domain.User, error) {
	if m.ListOthersFn != nil {
		return m.ListOthersFn(ctx, excludeEmail)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	var users []*domain.User
	for email, user := range m.Users {
		if email != excludeEmail {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

// PromoteToAdmin implements the UserStore interface
func (m *MockUserStore) PromoteToAdmin(ctx context.Context, id uuid.UUID) error {
	if m.PromoteToAdminFn != nil {
		return m.PromoteToAdminFn(ctx, id)
	}
	if m.Err != nil {
		return m.Err
	}

	for _, user := range m.Users {
		if user.ID == id {
			user.Role = domain.RoleAdmin
			return nil
		}
	}
	return store.ErrUserNotFound
}

// SetBanned implements the UserStore interface
func (m *MockUserStore) SetBanned(ctx context.Context, id uuid.UUID, banned bool) error {
	if m.SetBannedFn != nil {
		return m.SetBannedFn(ctx, id, banned)
	}
	if m.Err != nil {
		return m.Err
	}

	for _, user := range m.Users {
		if user.ID == id {
			user.IsBanned = banned
			return nil
		}
	}
	return store.ErrUserNotFound
}

// WithTx implements the UserStore interface
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
