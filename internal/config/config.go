package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	MinIO    MinIOConfig
	Import   ImportConfig
	Seed     SeedConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	BaseURL     string // public base URL used to absolutize stored file paths
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type SMTPConfig struct {
	Host string
	Port string
	From string
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// ImportConfig controls the bulk candidate importer.
// DefaultPassword is assigned to accounts created during import; it is
// deliberately config-injected rather than a shared constant in code.
type ImportConfig struct {
	DefaultPassword string
	MaxRows         int
}

// SeedConfig controls the superadmin account created on first startup.
type SeedConfig struct {
	AdminUsername string
	AdminPassword string
}

// Load reads config from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "BNP Digital API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			BaseURL:     getEnv("APP_BASE_URL", "http://localhost:8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "bnp_digital"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			ExpiryHours: getEnvInt("JWT_EXPIRY_HOURS", 24),
		},
		SMTP: SMTPConfig{
			Host: getEnv("SMTP_HOST", "localhost"),
			Port: getEnv("SMTP_PORT", "1025"),
			From: getEnv("SMTP_FROM", "noreply@bnp-digital.org"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "bnp-uploads"),
			UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		},
		Import: ImportConfig{
			DefaultPassword: getEnv("IMPORT_DEFAULT_PASSWORD", ""),
			MaxRows:         getEnvInt("IMPORT_MAX_ROWS", 1000),
		},
		Seed: SeedConfig{
			AdminUsername: getEnv("SEED_ADMIN_USERNAME", "superadmin"),
			AdminPassword: getEnv("SEED_ADMIN_PASSWORD", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks critical config values
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.JWT.Secret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Import.DefaultPassword == "" {
			return fmt.Errorf("IMPORT_DEFAULT_PASSWORD must be set in production")
		}
	}

	if c.Import.DefaultPassword == "" {
		// Development fallback so local imports still work; production is
		// rejected above.
		c.Import.DefaultPassword = "Dev-import-only"
	}

	// Empty admin password skips superadmin seeding entirely rather than
	// shipping a well-known default.
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
