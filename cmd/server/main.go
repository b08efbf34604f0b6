// Package main implements the entry point for the Paw Haven API server,
// the backend of a pet adoption and donation campaign platform.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/pawhaven/paw-haven-api/internal/config"
	"github.com/pawhaven/paw-haven-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status) and exit")
	flag.Parse()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if *migrateCmd != "" {
		if err := runMigrationCommand(cfg, *migrateCmd); err != nil {
			appLogger.Error("Migration command failed",
				"command", *migrateCmd, "error", err)
			log.Fatalf("Migration command %q failed: %v", *migrateCmd, err)
		}
		return
	}

	ctx := context.Background()

	db, err := setupAppDatabase(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to set up database: %v", err)
	}

	if err := migrateUp(db, appLogger); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.Config{Level: cfg.Server.LogLevel})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"env", cfg.Server.Env)

	return cfg, appLogger, nil
}
