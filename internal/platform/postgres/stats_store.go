package postgres

import (
	"context"
	"log/slog"

	"github.com/pawhaven/paw-haven-api/internal/platform/logger"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// PostgresStatsStore implements the store.StatsStore interface
// using a PostgreSQL database as the storage backend.
type PostgresStatsStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStatsStore creates a new PostgreSQL implementation of the
// StatsStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresStatsStore(db store.DBTX, logger *slog.Logger) *PostgresStatsStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStatsStore{
		db:     db,
		logger: logger.With(slog.String("component", "stats_store")),
	}
}

// Ensure PostgresStatsStore implements store.StatsStore interface
var _ store.StatsStore = (*PostgresStatsStore)(nil)

// Global implements store.StatsStore.Global
// A single query gathers the per-collection counts and the donation sum.
func (s *PostgresStatsStore) Global(ctx context.Context) (*store.GlobalStats, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM pets),
			(SELECT COUNT(*) FROM campaigns),
			(SELECT COUNT(*) FROM donations),
			(SELECT COUNT(*) FROM adoption_requests),
			(SELECT COALESCE(SUM(amount), 0) FROM donations)
	`

	var stats store.GlobalStats
	err := s.db.QueryRowContext(ctx, query).Scan(
		&stats.Users,
		&stats.Pets,
		&stats.Campaigns,
		&stats.Donations,
		&stats.AdoptionRequests,
		&stats.TotalDonated,
	)
	if err != nil {
		log.Error("failed to compute global stats",
			slog.String("error", err.Error()))
		return nil, err
	}

	return &stats, nil
}
