package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Payment  PaymentConfig  `mapstructure:"payment"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Env selects the deployment environment; it drives the session cookie
	// flags (Secure + SameSite=None in production, SameSite=Strict otherwise).
	Env string `mapstructure:"env" validate:"required,oneof=development production"`
	// AllowedOrigins is the CORS origin allow-list for the browser frontend.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// IsProduction reports whether the server runs in the production environment.
func (c ServerConfig) IsProduction() bool {
	return c.Env == "production"
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`
	// TokenLifetimeDays is the signed session token validity window.
	TokenLifetimeDays int `mapstructure:"token_lifetime_days" validate:"required,gt=0"`
	// CookieName is the name of the HTTP-only session cookie.
	CookieName string `mapstructure:"cookie_name" validate:"required"`
}

// PaymentConfig contains the payment provider settings.
type PaymentConfig struct {
	StripeSecretKey string `mapstructure:"stripe_secret_key" validate:"required"`
	// Currency is the ISO 4217 code donations are charged in.
	Currency string `mapstructure:"currency" validate:"required,len=3"`
}
