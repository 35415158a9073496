package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// ChanceryID is the tenant partition that receives decree copies.
	ChanceryID string

	// RedisURL points at the notification sink. Empty disables notifications;
	// decree operations then report a partial-delivery warning.
	RedisURL string

	// NotifyMaxAttempts bounds delivery retries for one notification.
	NotifyMaxAttempts int

	// Rate limiting, expressed in ulule/limiter format, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("CHANCERY_ID", "chancery")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("NOTIFY_MAX_ATTEMPTS", 3)
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:       viper.GetString("PGSQL_URL"),
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     viper.GetBool("ENABLE_DB_CHECK"),
		ChanceryID:        viper.GetString("CHANCERY_ID"),
		RedisURL:          viper.GetString("REDIS_URL"),
		NotifyMaxAttempts: viper.GetInt("NOTIFY_MAX_ATTEMPTS"),
		RateLimit:         viper.GetString("RATE_LIMIT"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set; decree notifications are disabled.")
	}
	if cfg.NotifyMaxAttempts < 1 {
		log.Printf("Warning: NOTIFY_MAX_ATTEMPTS %d is below 1. Defaulting to 1.\n", cfg.NotifyMaxAttempts)
		cfg.NotifyMaxAttempts = 1
	}

	return cfg, nil
}
