package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables use the
// PAWHAVEN_ prefix with underscores for nesting (PAWHAVEN_SERVER_PORT,
// PAWHAVEN_AUTH_JWT_SECRET, ...) and take precedence over file values.
// Returns a populated Config struct or an error if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PAWHAVEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Viper only unmarshals keys it knows about; keys with no default
	// (secrets, the database URL) must be bound explicitly or environment
	// values for them are silently dropped.
	for _, key := range []string{
		"server.port", "server.log_level", "server.env", "server.allowed_origins",
		"database.url",
		"auth.jwt_secret", "auth.token_lifetime_days", "auth.cookie_name",
		"payment.stripe_secret_key", "payment.currency",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; everything can come from the
		// environment. Any other read failure is fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers defaults for everything that has a sensible one.
// Secrets and the database URL deliberately have no default.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.env", "development")
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost:5173",
		"http://localhost:5174",
	})
	v.SetDefault("auth.token_lifetime_days", 365)
	v.SetDefault("auth.cookie_name", "token")
	v.SetDefault("payment.currency", "usd")
}
