package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/pawhaven/paw-haven-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// CreateOrGet returns the existing user with the given email, or creates
	// a new one with the default role when none exists. Users are created
	// implicitly on first session issuance and never deleted.
	CreateOrGet(ctx context.Context, email string) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListOthers returns every user except the one with the given email,
	// newest first. Used by the admin user-management view.
	ListOthers(ctx context.Context, excludeEmail string) ([]*domain.User, error)

	// PromoteToAdmin sets the user's role to admin. The only supported role
	// transition is user -> admin; promoting an admin is a no-op.
	// Returns ErrUserNotFound if the user does not exist.
	PromoteToAdmin(ctx context.Context, id uuid.UUID) error

	// SetBanned sets the user's ban flag.
	// Returns ErrUserNotFound if the user does not exist.
	SetBanned(ctx context.Context, id uuid.UUID, banned bool) error

	// WithTx returns a new UserStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
