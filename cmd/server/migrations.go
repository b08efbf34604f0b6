package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/pawhaven/paw-haven-api/internal/config"
	"github.com/pawhaven/paw-haven-api/migrations"
)

// slogGooseLogger adapts goose's logger interface to slog.
type slogGooseLogger struct{}

// Printf implements the goose.Logger Printf method by forwarding to slog.Info.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements the goose.Logger Fatalf method by forwarding to slog.Error.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...))
}

// configureGoose points goose at the embedded migration files and the
// postgres dialect.
func configureGoose() error {
	goose.SetLogger(&slogGooseLogger{})
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	return nil
}

// migrateUp applies all pending migrations. It runs at every boot so a
// fresh database is usable without a separate migration step.
func migrateUp(db *sql.DB, logger *slog.Logger) error {
	if err := configureGoose(); err != nil {
		return err
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("Database migrations applied")
	return nil
}

// runMigrationCommand executes a single migration command (up, down,
// status) against the configured database and returns. Used by the
// -migrate flag.
func runMigrationCommand(cfg *config.Config, command string) error {
	if err := configureGoose(); err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			slog.Error("failed to close database connection", "error", cerr)
		}
	}()

	switch command {
	case "up":
		err = goose.Up(db, ".")
	case "down":
		err = goose.Down(db, ".")
	case "status":
		err = goose.Status(db, ".")
	default:
		return fmt.Errorf("unknown migration command %q (want up, down or status)", command)
	}

	if err != nil {
		return fmt.Errorf("migration command %q failed: %w", command, err)
	}

	return nil
}
