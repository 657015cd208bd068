package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/emresource/emresource/internal/pkg/models"
)

// InitConfig loads configuration from an env file in local environments and
// from the process environment everywhere else.
func InitConfig(configPath string) *models.Config {
	env := GetEnv("APP_ENV", "local")
	if env == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "emresource")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 9990)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 30)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 30)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "emresource")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "nats://localhost:4222")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "emresource")

	// Auth config
	configs.Auth.OTPTTLSeconds = GetEnvAsInt("AUTH_OTP_TTL_SECONDS", 300)
	configs.Auth.BcryptCost = GetEnvAsInt("AUTH_BCRYPT_COST", 12)
	configs.Auth.OTPRateLimit = GetEnvAsInt("AUTH_OTP_RATE_LIMIT", 5)
	configs.Auth.OTPRatePeriodS = GetEnvAsInt("AUTH_OTP_RATE_PERIOD_SECONDS", 300)

	// Geo config
	configs.Geo.MaxRadiusKm = GetEnvAsFloat("GEO_MAX_RADIUS_KM", 100.0)
	configs.Geo.DefaultRequestRadiusKm = GetEnvAsFloat("GEO_DEFAULT_REQUEST_RADIUS_KM", 50.0)
	configs.Geo.DefaultDonorRadiusKm = GetEnvAsFloat("GEO_DEFAULT_DONOR_RADIUS_KM", 25.0)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", configs.App.Name)
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// GetEnv retrieves an environment variable or returns a default value.
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetEnvAsInt retrieves an environment variable as an integer.
func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsBool retrieves an environment variable as a boolean.
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// GetEnvAsFloat retrieves an environment variable as a float64.
func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
