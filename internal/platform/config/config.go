package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	LogLevel      string
	StorageDriver string

	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string

	DefaultCurrency         string
	DefaultDueDays          int
	SeedPaymentMethods      bool
	StrictStatusTransitions bool
	OverdueSweepSchedule    string

	RateLimit          string
	CORSAllowedOrigins []string
	PostHogAPIKey      string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("DEFAULT_CURRENCY", "USD")
	v.SetDefault("DEFAULT_DUE_DAYS", 30)
	v.SetDefault("SEED_PAYMENT_METHODS", true)
	v.SetDefault("STRICT_STATUS_TRANSITIONS", true)
	v.SetDefault("OVERDUE_SWEEP_SCHEDULE", "")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("POSTHOG_API_KEY", "")

	v.AutomaticEnv()

	cfg := &Config{
		Port:                    v.GetString("PORT"),
		IsProduction:            v.GetBool("IS_PRODUCTION"),
		LogLevel:                strings.ToLower(v.GetString("LOG_LEVEL")),
		StorageDriver:           strings.ToLower(v.GetString("STORAGE_DRIVER")),
		DatabaseURL:             v.GetString("PGSQL_URL"),
		EnableDBCheck:           v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:          v.GetString("MIGRATIONS_PATH"),
		DefaultCurrency:         strings.ToUpper(v.GetString("DEFAULT_CURRENCY")),
		DefaultDueDays:          v.GetInt("DEFAULT_DUE_DAYS"),
		SeedPaymentMethods:      v.GetBool("SEED_PAYMENT_METHODS"),
		StrictStatusTransitions: v.GetBool("STRICT_STATUS_TRANSITIONS"),
		OverdueSweepSchedule:    v.GetString("OVERDUE_SWEEP_SCHEDULE"),
		RateLimit:               v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:      splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		PostHogAPIKey:           v.GetString("POSTHOG_API_KEY"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.DefaultDueDays <= 0 {
		log.Printf("Warning: Invalid value for DEFAULT_DUE_DAYS (%d). Defaulting to 30.\n", cfg.DefaultDueDays)
		cfg.DefaultDueDays = 30
	}

	switch cfg.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL must be set when STORAGE_DRIVER is %q", StoragePostgres)
		}
	default:
		return nil, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
