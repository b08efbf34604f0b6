package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/platform/logger"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// PostgresAdoptionRequestStore implements the store.AdoptionRequestStore
// interface using a PostgreSQL database as the storage backend.
type PostgresAdoptionRequestStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAdoptionRequestStore creates a new PostgreSQL implementation of
// the AdoptionRequestStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresAdoptionRequestStore(db store.DBTX, logger *slog.Logger) *PostgresAdoptionRequestStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAdoptionRequestStore{
		db:     db,
		logger: logger.With(slog.String("component", "adoption_request_store")),
	}
}

// Ensure PostgresAdoptionRequestStore implements store.AdoptionRequestStore interface
var _ store.AdoptionRequestStore = (*PostgresAdoptionRequestStore)(nil)

// WithTx implements store.AdoptionRequestStore.WithTx
func (s *PostgresAdoptionRequestStore) WithTx(tx *sql.Tx) store.AdoptionRequestStore {
	return &PostgresAdoptionRequestStore{db: tx, logger: s.logger}
}

// Create implements store.AdoptionRequestStore.Create
// Returns store.ErrInvalidEntity when the referenced pet does not exist.
func (s *PostgresAdoptionRequestStore) Create(ctx context.Context, req *domain.AdoptionRequest) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := req.Validate(); err != nil {
		log.Warn("adoption request validation failed during create",
			slog.String("error", err.Error()),
			slog.String("request_id", req.ID.String()))
		return err
	}

	query := `
		INSERT INTO adoption_requests (id, pet_id, pet_name, pet_image, added_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		req.ID,
		req.PetID,
		req.PetName,
		req.PetImage,
		req.AddedBy,
		req.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during adoption request creation",
				slog.String("request_id", req.ID.String()),
				slog.String("pet_id", req.PetID.String()))
			return fmt.Errorf("%w: pet with ID %s not found",
				store.ErrInvalidEntity, req.PetID)
		}
		log.Error("failed to create adoption request",
			slog.String("error", err.Error()),
			slog.String("request_id", req.ID.String()))
		return err
	}

	log.Info("adoption request created",
		slog.String("request_id", req.ID.String()),
		slog.String("pet_id", req.PetID.String()))
	return nil
}

// ListByRequester implements store.AdoptionRequestStore.ListByRequester
func (s *PostgresAdoptionRequestStore) ListByRequester(ctx context.Context, email string) ([]*domain.AdoptionRequest, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, pet_id, pet_name, pet_image, added_by, created_at
		FROM adoption_requests
		WHERE added_by = $1
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, email)
	if err != nil {
		log.Error("failed to list adoption requests",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var requests []*domain.AdoptionRequest
	for rows.Next() {
		var req domain.AdoptionRequest
		if err := rows.Scan(
			&req.ID,
			&req.PetID,
			&req.PetName,
			&req.PetImage,
			&req.AddedBy,
			&req.CreatedAt,
		); err != nil {
			log.Error("failed to scan adoption request row",
				slog.String("error", err.Error()))
			return nil, err
		}
		requests = append(requests, &req)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
