package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Payment  PaymentConfig  `mapstructure:"payment"  validate:"required"`
}

// ServerConfig contains all HTTP server related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains the document store connection settings.
type DatabaseConfig struct {
	URI  string `mapstructure:"uri"  validate:"required"`
	Name string `mapstructure:"name" validate:"required"`
}

// AuthConfig contains authentication and authorization settings.
type AuthConfig struct {
	// JWTSecret signs identity tokens; HMAC needs a reasonable key length.
	JWTSecret string `mapstructure:"jwt_secret" validate:"required,min=32"`

	// TokenLifetimeHours bounds how long an issued identity token stays
	// valid. Sessions are re-asserted by signing in again.
	TokenLifetimeHours int `mapstructure:"token_lifetime_hours" validate:"required,gt=0"`
}

// PaymentConfig contains payment gateway settings.
type PaymentConfig struct {
	StripeSecretKey string `mapstructure:"stripe_secret_key" validate:"required"`
}
