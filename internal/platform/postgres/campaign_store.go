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

// PostgresCampaignStore implements the store.CampaignStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCampaignStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCampaignStore creates a new PostgreSQL implementation of the
// CampaignStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCampaignStore(db store.DBTX, logger *slog.Logger) *PostgresCampaignStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCampaignStore{
		db:     db,
		logger: logger.With(slog.String("component", "campaign_store")),
	}
}

// Ensure PostgresCampaignStore implements store.CampaignStore interface
var _ store.CampaignStore = (*PostgresCampaignStore)(nil)

// WithTx implements store.CampaignStore.WithTx
func (s *PostgresCampaignStore) WithTx(tx *sql.Tx) store.CampaignStore {
	return &PostgresCampaignStore{db: tx, logger: s.logger}
}

const campaignColumns = "id, title, image, description, added_by, max_donation, " +
	"current_donation, donors, is_paused, last_date, created_at"

func scanCampaign(row interface{ Scan(dest ...any) error }) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Image,
		&c.Description,
		&c.AddedBy,
		&c.MaxDonation,
		&c.CurrentDonation,
		&c.Donors,
		&c.IsPaused,
		&c.LastDate,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create implements store.CampaignStore.Create
// Returns validation errors from the domain Campaign if data is invalid.
func (s *PostgresCampaignStore) Create(ctx context.Context, campaign *domain.Campaign) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := campaign.Validate(); err != nil {
		log.Warn("campaign validation failed during create",
			slog.String("error", err.Error()),
			slog.String("campaign_id", campaign.ID.String()))
		return err
	}

	query := `
		INSERT INTO campaigns (id, title, image, description, added_by, max_donation,
			current_donation, donors, is_paused, last_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := s.db.ExecContext(ctx, query,
		campaign.ID,
		campaign.Title,
		campaign.Image,
		campaign.Description,
		campaign.AddedBy,
		campaign.MaxDonation,
		campaign.CurrentDonation,
		campaign.Donors,
		campaign.IsPaused,
		campaign.LastDate,
		campaign.CreatedAt,
	)

	if err != nil {
		log.Error("failed to create campaign",
			slog.String("error", err.Error()),
			slog.String("campaign_id", campaign.ID.String()))
		return err
	}

	log.Info("campaign created",
		slog.String("campaign_id", campaign.ID.String()),
		slog.Int64("max_donation", campaign.MaxDonation))
	return nil
}

// GetByID implements store.CampaignStore.GetByID
// Returns store.ErrCampaignNotFound if the campaign does not exist.
func (s *PostgresCampaignStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	campaign, err := scanCampaign(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCampaignNotFound
		}
		log.Error("failed to get campaign by ID",
			slog.String("error", err.Error()),
			slog.String("campaign_id", id.String()))
		return nil, err
	}

	return campaign, nil
}

// List implements store.CampaignStore.List
func (s *PostgresCampaignStore) List(
	ctx context.Context,
	search string,
	page, limit int,
) (*store.CampaignPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	page, limit = store.NormalizePage(page, limit)

	var where string
	var args []any
	if search != "" {
		where = " WHERE title ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM campaigns`+where, args...).Scan(&total); err != nil {
		log.Error("failed to count campaigns",
			slog.String("error", err.Error()))
		return nil, err
	}

	listQuery := fmt.Sprintf(
		`SELECT %s FROM campaigns%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		campaignColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, store.Offset(page, limit))

	rows, err := s.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		log.Error("failed to list campaigns",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := []*domain.Campaign{}
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			log.Error("failed to scan campaign row",
				slog.String("error", err.Error()))
			return nil, err
		}
		items = append(items, campaign)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &store.CampaignPage{
		Items:    items,
		PageInfo: store.NewPageInfo(page, limit, total),
	}, nil
}

// ListByOwner implements store.CampaignStore.ListByOwner
func (s *PostgresCampaignStore) ListByOwner(ctx context.Context, email string) ([]*domain.Campaign, error) {
	return s.listWhere(ctx, "WHERE added_by = $1 ORDER BY created_at DESC", email)
}

// ListActive implements store.CampaignStore.ListActive
func (s *PostgresCampaignStore) ListActive(ctx context.Context, limit int) ([]*domain.Campaign, error) {
	if limit < 1 {
		limit = store.DefaultLimit
	}
	return s.listWhere(ctx, "WHERE NOT is_paused ORDER BY created_at DESC LIMIT $1", limit)
}

func (s *PostgresCampaignStore) listWhere(ctx context.Context, clause string, args ...any) ([]*domain.Campaign, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + campaignColumns + ` FROM campaigns ` + clause

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list campaigns",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var campaigns []*domain.Campaign
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			log.Error("failed to scan campaign row",
				slog.String("error", err.Error()))
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return campaigns, nil
}

// Update implements store.CampaignStore.Update
// Strict by default: store.ErrCampaignNotFound when the id matches nothing.
// With store.UpsertOnMiss a fresh-ID campaign is inserted from the patch fields.
func (s *PostgresCampaignStore) Update(
	ctx context.Context,
	id uuid.UUID,
	patch domain.CampaignPatch,
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

	if patch.Title != nil {
		addSet("title", *patch.Title)
	}
	if patch.Image != nil {
		addSet("image", *patch.Image)
	}
	if patch.Description != nil {
		addSet("description", *patch.Description)
	}
	if patch.MaxDonation != nil {
		addSet("max_donation", *patch.MaxDonation)
	}
	if patch.LastDate != nil {
		addSet("last_date", *patch.LastDate)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE campaigns SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update campaign",
			slog.String("error", err.Error()),
			slog.String("campaign_id", id.String()))
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
		return store.UpdateResult{}, store.ErrCampaignNotFound
	}

	inserted := &domain.Campaign{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		LastDate:  time.Now().UTC(),
	}
	if patch.Title != nil {
		inserted.Title = *patch.Title
	}
	if patch.Image != nil {
		inserted.Image = *patch.Image
	}
	if patch.Description != nil {
		inserted.Description = *patch.Description
	}
	if patch.MaxDonation != nil {
		inserted.MaxDonation = *patch.MaxDonation
	}
	if patch.LastDate != nil {
		inserted.LastDate = *patch.LastDate
	}

	insertQuery := `
		INSERT INTO campaigns (id, title, image, description, added_by, max_donation,
			current_donation, donors, is_paused, last_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, 0, FALSE, $7, $8)
	`
	_, err = s.db.ExecContext(ctx, insertQuery,
		inserted.ID,
		inserted.Title,
		inserted.Image,
		inserted.Description,
		inserted.AddedBy,
		inserted.MaxDonation,
		inserted.LastDate,
		inserted.CreatedAt,
	)
	if err != nil {
		log.Error("failed to upsert campaign",
			slog.String("error", err.Error()),
			slog.String("campaign_id", inserted.ID.String()))
		return store.UpdateResult{}, err
	}

	log.Info("campaign upserted on update miss",
		slog.String("requested_id", id.String()),
		slog.String("campaign_id", inserted.ID.String()))
	return store.UpdateResult{UpsertedID: &inserted.ID}, nil
}

// TogglePaused implements store.CampaignStore.TogglePaused
// Returns store.ErrCampaignNotFound if the campaign does not exist.
func (s *PostgresCampaignStore) TogglePaused(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE campaigns
		SET is_paused = NOT is_paused
		WHERE id = $1
		RETURNING is_paused
	`

	var paused bool
	err := s.db.QueryRowContext(ctx, query, id).Scan(&paused)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, store.ErrCampaignNotFound
		}
		log.Error("failed to toggle campaign pause",
			slog.String("error", err.Error()),
			slog.String("campaign_id", id.String()))
		return false, err
	}

	log.Info("campaign pause toggled",
		slog.String("campaign_id", id.String()),
		slog.Bool("is_paused", paused))
	return paused, nil
}

// ApplyDonation implements store.CampaignStore.ApplyDonation
// The capacity check and the increment are a single conditional update, so
// concurrent donations cannot race the accumulator past the maximum.
func (s *PostgresCampaignStore) ApplyDonation(ctx context.Context, id uuid.UUID, amount int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if amount <= 0 {
		return domain.NewValidationError("amount", "must be positive", domain.ErrInvalidAmount)
	}

	query := `
		UPDATE campaigns
		SET current_donation = current_donation + $1,
		    donors = donors + 1
		WHERE id = $2
		  AND current_donation + $1 <= max_donation
	`

	result, err := s.db.ExecContext(ctx, query, amount, id)
	if err != nil {
		log.Error("failed to apply donation",
			slog.String("error", err.Error()),
			slog.String("campaign_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		// Distinguish a missing campaign from one that is full.
		if _, err := s.GetByID(ctx, id); err != nil {
			return err
		}
		return store.ErrCampaignCapacity
	}

	log.Info("donation applied to campaign",
		slog.String("campaign_id", id.String()),
		slog.Int64("amount", amount))
	return nil
}

// RevertDonation implements store.CampaignStore.RevertDonation
// Both the accumulator and the donor count floor at zero.
func (s *PostgresCampaignStore) RevertDonation(ctx context.Context, id uuid.UUID, amount int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if amount <= 0 {
		return domain.NewValidationError("amount", "must be positive", domain.ErrInvalidAmount)
	}

	query := `
		UPDATE campaigns
		SET current_donation = GREATEST(current_donation - $1, 0),
		    donors = GREATEST(donors - 1, 0)
		WHERE id = $2
	`

	result, err := s.db.ExecContext(ctx, query, amount, id)
	if err != nil {
		log.Error("failed to revert donation",
			slog.String("error", err.Error()),
			slog.String("campaign_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return store.ErrCampaignNotFound
	}

	log.Info("donation reverted from campaign",
		slog.String("campaign_id", id.String()),
		slog.Int64("amount", amount))
	return nil
}

// Delete implements store.CampaignStore.Delete
// Returns the number of rows deleted; a missing campaign reports 0.
func (s *PostgresCampaignStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete campaign",
			slog.String("error", err.Error()),
			slog.String("campaign_id", id.String()))
		return 0, err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		log.Info("campaign deleted", slog.String("campaign_id", id.String()))
	}
	return deleted, nil
}
