package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/platform/logger"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// PostgresPetStore implements the store.PetStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPetStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPetStore creates a new PostgreSQL implementation of the
// PetStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPetStore(db store.DBTX, logger *slog.Logger) *PostgresPetStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPetStore{
		db:     db,
		logger: logger.With(slog.String("component", "pet_store")),
	}
}

// Ensure PostgresPetStore implements store.PetStore interface
var _ store.PetStore = (*PostgresPetStore)(nil)

// WithTx implements store.PetStore.WithTx
func (s *PostgresPetStore) WithTx(tx *sql.Tx) store.PetStore {
	return &PostgresPetStore{db: tx, logger: s.logger}
}

const petColumns = "id, name, category, image, description, added_by, adopted, created_at"

func scanPet(row interface{ Scan(dest ...any) error }) (*domain.Pet, error) {
	var pet domain.Pet
	err := row.Scan(
		&pet.ID,
		&pet.Name,
		&pet.Category,
		&pet.Image,
		&pet.Description,
		&pet.AddedBy,
		&pet.Adopted,
		&pet.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

// Create implements store.PetStore.Create
// Returns validation errors from the domain Pet if data is invalid.
func (s *PostgresPetStore) Create(ctx context.Context, pet *domain.Pet) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := pet.Validate(); err != nil {
		log.Warn("pet validation failed during create",
			slog.String("error", err.Error()),
			slog.String("pet_id", pet.ID.String()))
		return err
	}

	query := `
		INSERT INTO pets (id, name, category, image, description, added_by, adopted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		pet.ID,
		pet.Name,
		pet.Category,
		pet.Image,
		pet.Description,
		pet.AddedBy,
		pet.Adopted,
		pet.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create pet",
			slog.String("error", err.Error()),
			slog.String("pet_id", pet.ID.String()))
		return err
	}

	log.Info("pet created",
		slog.String("pet_id", pet.ID.String()),
		slog.String("category", pet.Category))
	return nil
}

// GetByID implements store.PetStore.GetByID
// Returns store.ErrPetNotFound if the pet does not exist.
func (s *PostgresPetStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + petColumns + ` FROM pets WHERE id = $1`

	pet, err := scanPet(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPetNotFound
		}
		log.Error("failed to get pet by ID",
			slog.String("error", err.Error()),
			slog.String("pet_id", id.String()))
		return nil, err
	}

	return pet, nil
}

// List implements store.PetStore.List
// Search matches the name case-insensitively as a substring; category is an
// exact match. Results are ordered by creation time descending and paged
// with an offset of (page-1)*limit.
func (s *PostgresPetStore) List(
	ctx context.Context,
	filter store.PetFilter,
	page, limit int,
) (*store.PetPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	page, limit = store.NormalizePage(page, limit)

	where, args := petFilterClause(filter)

	countQuery := `SELECT COUNT(*) FROM pets` + where
	var total int64
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count pets",
			slog.String("error", err.Error()))
		return nil, err
	}

	listQuery := fmt.Sprintf(
		`SELECT %s FROM pets%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		petColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, store.Offset(page, limit))

	rows, err := s.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		log.Error("failed to list pets",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := []*domain.Pet{}
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			log.Error("failed to scan pet row",
				slog.String("error", err.Error()))
			return nil, err
		}
		items = append(items, pet)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating pet rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	return &store.PetPage{
		Items:    items,
		PageInfo: store.NewPageInfo(page, limit, total),
	}, nil
}

// petFilterClause builds the WHERE clause and arguments for a pet filter.
func petFilterClause(filter store.PetFilter) (string, []any) {
	var conds []string
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Adopted != nil {
		args = append(args, *filter.Adopted)
		conds = append(conds, fmt.Sprintf("adopted = $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// ListByOwner implements store.PetStore.ListByOwner
func (s *PostgresPetStore) ListByOwner(ctx context.Context, email string) ([]*domain.Pet, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + petColumns + ` FROM pets WHERE added_by = $1 ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, email)
	if err != nil {
		log.Error("failed to list pets by owner",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var pets []*domain.Pet
	for rows.Next() {
		pet, err := scanPet(rows)
		if err != nil {
			log.Error("failed to scan pet row",
				slog.String("error", err.Error()))
			return nil, err
		}
		pets = append(pets, pet)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pets, nil
}

// Update implements store.PetStore.Update
// Strict by default: store.ErrPetNotFound when the id matches nothing.
// With store.UpsertOnMiss a fresh-ID pet is inserted from the patch fields.
func (s *PostgresPetStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.PetPatch,
	opts ...store.UpdateOption,
) (store.UpdateResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	options := store.ResolveUpdateOptions(opts)

	if patch.Empty() {
		return store.UpdateResult{}, store.ErrEmptyPatch
	}

	var sets []string
	var args []any
	addSet := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		addSet("name", *patch.Name)
	}
	if patch.Category != nil {
		addSet("category", *patch.Category)
	}
	if patch.Image != nil {
		addSet("image", *patch.Image)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.Adopted != nil {
		addSet("adopted", *patch.Adopted)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE pets SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update pet",
			slog.String("error", err.Error()),
			slog.String("pet_id", id.String()))
		return store.UpdateResult{}, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return store.UpdateResult{}, err
	}

	if rowsAffected > 0 {
		return store.UpdateResult{Matched: rowsAffected, Modified: rowsAffected}, nil
	}

	if !options.Upsert {
		return store.UpdateResult{}, store.ErrPetNotFound
	}

	// Opt-in upsert: insert a new pet carrying only the patch fields and a
	// fresh ID (distinct from the requested one).
	inserted := &domain.Pet{
		ID:        uuid.New(),
		Adopted:   false,
		CreatedAt: time.Now().UTC(),
	}
	if patch.Name != nil {
		inserted.Name = *patch.Name
	}
	if patch.Category != nil {
		inserted.Category = *patch.Category
	}
	if patch.Image != nil {
		inserted.Image = *patch.Image
	}
	if patch.Description != nil {
		inserted.Description = *patch.Description
	}
	if patch.Adopted != nil {
		inserted.Adopted = *patch.Adopted
	}

	insertQuery := `
		INSERT INTO pets (id, name, category, image, description, added_by, adopted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = s.db.ExecContext(ctx, insertQuery,
		inserted.ID,
		inserted.Name,
		inserted.Category,
		inserted.Image,
		inserted.Description,
		inserted.AddedBy,
		inserted.Adopted,
		inserted.CreatedAt,
	)
	if err != nil {
		log.Error("failed to upsert pet",
			slog.String("error", err.Error()),
			slog.String("pet_id", inserted.ID.String()))
		return store.UpdateResult{}, err
	}

	log.Info("pet upserted on update miss",
		slog.String("requested_id", id.String()),
		slog.String("pet_id", inserted.ID.String()))
	return store.UpdateResult{UpsertedID: &inserted.ID}, nil
}

// ToggleAdopted implements store.PetStore.ToggleAdopted
// Returns store.ErrPetNotFound if the pet does not exist.
func (s *PostgresPetStore) ToggleAdopted(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE pets
		SET adopted = NOT adopted
		WHERE id = $1
		RETURNING adopted
	`

	var adopted bool
	err := s.db.QueryRowContext(ctx, query, id).Scan(&adopted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, store.ErrPetNotFound
		}
		log.Error("failed to toggle adoption status",
			slog.String("error", err.Error()),
			slog.String("pet_id", id.String()))
		return false, err
	}

	log.Info("pet adoption status toggled",
		slog.String("pet_id", id.String()),
		slog.Bool("adopted", adopted))
	return adopted, nil
}

// Delete implements store.PetStore.Delete
// Returns the number of rows deleted; a missing pet reports 0.
func (s *PostgresPetStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete pet",
			slog.String("error", err.Error()),
			slog.String("pet_id", id.String()))
		return 0, err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		log.Info("pet deleted", slog.String("pet_id", id.String()))
	}
	return deleted, nil
}

// CategoryCounts implements store.PetStore.CategoryCounts
func (s *PostgresPetStore) CategoryCounts(ctx context.Context) ([]domain.CategoryCount, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT category, COUNT(*)
		FROM pets
		GROUP BY category
		ORDER BY COUNT(*) DESC, category ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to aggregate pet categories",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var counts []domain.CategoryCount
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			log.Error("failed to scan category row",
				slog.String("error", err.Error()))
			return nil, err
		}
		c.Slug = domain.Slugify(c.Category)
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
