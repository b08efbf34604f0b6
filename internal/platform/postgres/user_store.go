package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/platform/logger"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{db: tx, logger: s.logger}
}

// CreateOrGet implements store.UserStore.CreateOrGet
// It returns the existing user for the email, or inserts a new one with
// the default role. A concurrent insert of the same email is absorbed by
// re-reading after a unique violation.
func (s *PostgresUserStore) CreateOrGet(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return nil, err
	}

	user, err := domain.NewUser(email)
	if err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()))
		return nil, err
	}

	query := `
		INSERT INTO users (id, email, role, is_banned, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = s.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.Role,
		user.IsBanned,
		user.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			// Lost a race with a concurrent first-session insert.
			return s.GetByEmail(ctx, email)
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return nil, err
	}

	log.Info("user created",
		slog.String("user_id", user.ID.String()),
		slog.String("role", string(user.Role)))
	return user, nil
}

// GetByEmail implements store.UserStore.GetByEmail
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, role, is_banned, created_at
		FROM users
		WHERE email = $1
	`

	var user domain.User
	var role string

	err := s.db.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(email))).Scan(
		&user.ID,
		&user.Email,
		&role,
		&user.IsBanned,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by email",
			slog.String("error", err.Error()))
		return nil, err
	}

	user.Role = domain.Role(role)
	return &user, nil
}

// ListOthers implements store.UserStore.ListOthers
func (s *PostgresUserStore) ListOthers(ctx context.Context, excludeEmail string) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, email, role, is_banned, created_at
		FROM users
		WHERE email <> $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, strings.ToLower(strings.TrimSpace(excludeEmail)))
	if err != nil {
		log.Error("failed to list users",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		var role string
		if err := rows.Scan(&user.ID, &user.Email, &role, &user.IsBanned, &user.CreatedAt); err != nil {
			log.Error("failed to scan user row",
				slog.String("error", err.Error()))
			return nil, err
		}
		user.Role = domain.Role(role)
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating user rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return users, nil
}

// PromoteToAdmin implements store.UserStore.PromoteToAdmin
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) PromoteToAdmin(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET role = $1
		WHERE id = $2
	`

	result, err := s.db.ExecContext(ctx, query, domain.RoleAdmin, id)
	if err != nil {
		log.Error("failed to promote user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrUserNotFound
	}

	log.Info("user promoted to admin", slog.String("user_id", id.String()))
	return nil
}

// SetBanned implements store.UserStore.SetBanned
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) SetBanned(ctx context.Context, id uuid.UUID, banned bool) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET is_banned = $1
		WHERE id = $2
	`

	result, err := s.db.ExecContext(ctx, query, banned, id)
	if err != nil {
		log.Error("failed to set ban flag",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrUserNotFound
	}

	log.Info("user ban flag updated",
		slog.String("user_id", id.String()),
		slog.Bool("banned", banned))
	return nil
}
