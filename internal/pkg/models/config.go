package models

// Config is the full application configuration tree, loaded from env vars.
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Geo      GeoConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig identifies the running application.
type AppConfig struct {
	Name        string
	Environment string
	Version     string
	Debug       bool
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig holds NATS connection settings.
type NATSConfig struct {
	URL string
}

// JWTConfig holds token signing settings. Expiration is in minutes.
type JWTConfig struct {
	Secret     string
	Expiration int
	Issuer     string
}

// AuthConfig holds OTP and password hashing settings.
type AuthConfig struct {
	OTPTTLSeconds  int
	BcryptCost     int
	OTPRateLimit   int
	OTPRatePeriodS int
}

// GeoConfig bounds proximity queries. Radii are kilometers.
type GeoConfig struct {
	MaxRadiusKm            float64
	DefaultRequestRadiusKm float64
	DefaultDonorRadiusKm   float64
}

// NewRelicConfig holds APM settings.
type NewRelicConfig struct {
	LicenseKey string
	AppName    string
	Enabled    bool
}

// LoggerConfig holds structured logging settings.
type LoggerConfig struct {
	Level    string
	FilePath string
}
