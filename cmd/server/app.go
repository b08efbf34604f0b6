package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/pawhaven/paw-haven-api/internal/config"
	"github.com/pawhaven/paw-haven-api/internal/platform/postgres"
	"github.com/pawhaven/paw-haven-api/internal/platform/stripe"
	"github.com/pawhaven/paw-haven-api/internal/service"
	"github.com/pawhaven/paw-haven-api/internal/service/auth"
	"github.com/pawhaven/paw-haven-api/internal/service/payment"
	"github.com/pawhaven/paw-haven-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (interfaces keep the wiring swappable in tests)
	userStore     store.UserStore
	petStore      store.PetStore
	campaignStore store.CampaignStore
	donationStore store.DonationStore
	adoptionStore store.AdoptionRequestStore
	statsStore    store.StatsStore

	// Services
	jwtService      auth.JWTService
	cookieConfig    auth.CookieConfig
	paymentService  *payment.Service
	donationService *service.DonationService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the core dependencies that must be established
// before wiring: configuration, logger, and database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT session service initialized",
		"token_lifetime_days", cfg.Auth.TokenLifetimeDays)

	app.cookieConfig = auth.CookieConfig{
		Name:     cfg.Auth.CookieName,
		Secure:   cfg.Server.IsProduction(),
		Lifetime: app.jwtService.TokenLifetime(),
	}

	app.userStore = postgres.NewPostgresUserStore(db, logger)
	app.petStore = postgres.NewPostgresPetStore(db, logger)
	app.campaignStore = postgres.NewPostgresCampaignStore(db, logger)
	app.donationStore = postgres.NewPostgresDonationStore(db, logger)
	app.adoptionStore = postgres.NewPostgresAdoptionRequestStore(db, logger)
	app.statsStore = postgres.NewPostgresStatsStore(db, logger)

	intentCreator, err := stripe.NewIntentCreator(cfg.Payment)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment provider: %w", err)
	}
	app.paymentService = payment.NewService(
		app.campaignStore,
		intentCreator,
		cfg.Payment.Currency,
		logger.With("component", "payment_service"),
	)

	app.donationService = service.NewDonationService(
		db,
		app.donationStore,
		app.campaignStore,
		logger.With("component", "donation_service"),
	)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}

// shutdownTimeout is how long in-flight requests get to drain on shutdown.
const shutdownTimeout = 10 * time.Second
