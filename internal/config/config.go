package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port       int    `validate:"gte=1,lte=65535"`
	LogLevel   string `validate:"oneof=DEBUG INFO WARN ERROR"`
	LogDir     string `validate:"required"`
	DBUser     string `validate:"required"`
	DBPassword string `validate:"required"`
	DBHost     string `validate:"required"`
	DBPort     string `validate:"required"`
	DBName     string `validate:"required"`
	APIKey     string // ops API key; required only in loop mode

	// Job settings
	RunMode       string        `validate:"oneof=once loop"`
	SweepInterval time.Duration `validate:"gte=1m"`
	StoreTimeout  time.Duration `validate:"gte=1s"`

	// Eligibility thresholds; defaults come from domain constants
	MinLevel    int `validate:"gte=1"`
	MinFairPlay int `validate:"gte=0,lte=100"`

	// Audit retention for the cleanup job (loop mode)
	AuditRetentionDays int `validate:"gte=1"`

	// Notification webhook; empty disables dispatch (noop)
	WebhookURL string
}

// Run modes
const (
	RunModeOnce = "once"
	RunModeLoop = "loop"
)

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:   getEnv("LOG_LEVEL", "INFO"),
		LogDir:     getEnv("LOG_DIR", "logs"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", "roulette"),
		APIKey:     getEnv("API_KEY", ""),
		RunMode:    getEnv("RUN_MODE", RunModeOnce),
		WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", DefaultPort); err != nil {
		return nil, err
	}
	if cfg.MinLevel, err = getEnvInt("MIN_LEVEL", DefaultMinLevel); err != nil {
		return nil, err
	}
	if cfg.MinFairPlay, err = getEnvInt("MIN_FAIR_PLAY", DefaultMinFairPlay); err != nil {
		return nil, err
	}
	if cfg.AuditRetentionDays, err = getEnvInt("AUDIT_RETENTION_DAYS", DefaultAuditRetentionDays); err != nil {
		return nil, err
	}

	sweepMinutes, err := getEnvInt("SWEEP_INTERVAL_MINUTES", DefaultSweepIntervalMinutes)
	if err != nil {
		return nil, err
	}
	cfg.SweepInterval = time.Duration(sweepMinutes) * time.Minute

	timeoutSeconds, err := getEnvInt("STORE_TIMEOUT_SECONDS", DefaultStoreTimeoutSeconds)
	if err != nil {
		return nil, err
	}
	cfg.StoreTimeout = time.Duration(timeoutSeconds) * time.Second

	if cfg.RunMode == RunModeLoop && cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY must be set when RUN_MODE=loop (ops server authentication)")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return n, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
