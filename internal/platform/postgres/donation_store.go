package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pawhaven/paw-haven-api/internal/domain"
	"github.com/pawhaven/paw-haven-api/internal/platform/logger"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// PostgresDonationStore implements the store.DonationStore interface
// using a PostgreSQL database as the storage backend.
type PostgresDonationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDonationStore creates a new PostgreSQL implementation of the
// DonationStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresDonationStore(db store.DBTX, logger *slog.Logger) *PostgresDonationStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresDonationStore{
		db:     db,
		logger: logger.With(slog.String("component", "donation_store")),
	}
}

// Ensure PostgresDonationStore implements store.DonationStore interface
var _ store.DonationStore = (*PostgresDonationStore)(nil)

// WithTx implements store.DonationStore.WithTx
func (s *PostgresDonationStore) WithTx(tx *sql.Tx) store.DonationStore {
	return &PostgresDonationStore{db: tx, logger: s.logger}
}

const donationColumns = "id, campaign_id, donor_email, amount, created_at"

func scanDonation(row interface{ Scan(dest ...any) error }) (*domain.Donation, error) {
	var d domain.Donation
	err := row.Scan(
		&d.ID,
		&d.CampaignID,
		&d.DonorEmail,
		&d.Amount,
		&d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Create implements store.DonationStore.Create
// Returns store.ErrInvalidEntity when the campaign the donation references
// does not exist (foreign key violation).
func (s *PostgresDonationStore) Create(ctx context.Context, donation *domain.Donation) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := donation.Validate(); err != nil {
		log.Warn("donation validation failed during create",
			slog.String("error", err.Error()),
			slog.String("donation_id", donation.ID.String()))
		return err
	}

	query := `
		INSERT INTO donations (id, campaign_id, donor_email, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query,
		donation.ID,
		donation.CampaignID,
		donation.DonorEmail,
		donation.Amount,
		donation.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during donation creation",
				slog.String("donation_id", donation.ID.String()),
				slog.String("campaign_id", donation.CampaignID.String()))
			return fmt.Errorf("%w: campaign with ID %s not found",
				store.ErrInvalidEntity, donation.CampaignID)
		}
		log.Error("failed to create donation",
			slog.String("error", err.Error()),
			slog.String("donation_id", donation.ID.String()))
		return err
	}

	log.Info("donation created",
		slog.String("donation_id", donation.ID.String()),
		slog.String("campaign_id", donation.CampaignID.String()),
		slog.Int64("amount", donation.Amount))
	return nil
}

// GetByID implements store.DonationStore.GetByID
// Returns store.ErrDonationNotFound if the donation does not exist.
func (s *PostgresDonationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Donation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + donationColumns + ` FROM donations WHERE id = $1`

	donation, err := scanDonation(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrDonationNotFound
		}
		log.Error("failed to get donation by ID",
			slog.String("error", err.Error()),
			slog.String("donation_id", id.String()))
		return nil, err
	}

	return donation, nil
}

// ListByDonor implements store.DonationStore.ListByDonor
func (s *PostgresDonationStore) ListByDonor(ctx context.Context, email string) ([]*domain.Donation, error) {
	return s.listWhere(ctx, "donor_email = $1", email)
}

// ListByCampaign implements store.DonationStore.ListByCampaign
func (s *PostgresDonationStore) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*domain.Donation, error) {
	return s.listWhere(ctx, "campaign_id = $1", campaignID)
}

func (s *PostgresDonationStore) listWhere(ctx context.Context, cond string, arg any) ([]*domain.Donation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + donationColumns + ` FROM donations WHERE ` + cond + ` ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		log.Error("failed to list donations",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var donations []*domain.Donation
	for rows.Next() {
		donation, err := scanDonation(rows)
		if err != nil {
			log.Error("failed to scan donation row",
				slog.String("error", err.Error()))
			return nil, err
		}
		donations = append(donations, donation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return donations, nil
}

// Delete implements store.DonationStore.Delete
// Returns the number of rows deleted; a missing donation reports 0.
// The campaign accumulator is untouched; refunds go through the
// transactional refund flow.
func (s *PostgresDonationStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM donations WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete donation",
			slog.String("error", err.Error()),
			slog.String("donation_id", id.String()))
		return 0, err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if deleted > 0 {
		log.Info("donation deleted", slog.String("donation_id", id.String()))
	}
	return deleted, nil
}

// SumAmounts implements store.DonationStore.SumAmounts
func (s *PostgresDonationStore) SumAmounts(ctx context.Context) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var total int64
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount), 0) FROM donations`).Scan(&total)
	if err != nil {
		log.Error("failed to sum donation amounts",
			slog.String("error", err.Error()))
		return 0, err
	}

	return total, nil
}
