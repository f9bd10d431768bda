package common

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Oracle   OracleConfig
	Market   MarketConfig
	Payment  PaymentConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr    string
	WebhookAddr string
}

// OracleConfig holds reasoning-oracle configuration
type OracleConfig struct {
	Model       string
	VisionModel string
	SearchModel string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// MarketConfig holds the switching-cost and decision policy.
// These are business policy, kept configurable rather than hardcoded.
type MarketConfig struct {
	SwitchingCostEUR   float64
	AmortizationMonths int
	BonusAmortMonths   int
	SwitchThresholdEUR float64
	RecheckCron        string
	SnapshotTimeout    time.Duration
}

// PaymentConfig holds checkout collaborator configuration
type PaymentConfig struct {
	APIKey      string
	BaseURL     string
	RedirectURL string
	WebhookURL  string
	PremiumEUR  float64
}

// LoadConfig loads configuration from environment variables.
// A .env file in the working directory is honored when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr:    getEnv("GRPC_ADDR", ":8080"),
			WebhookAddr: getEnv("WEBHOOK_ADDR", ":8081"),
		},
		Oracle: OracleConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			VisionModel: getEnv("OPENAI_VISION_MODEL", "gpt-4o"),
			SearchModel: getEnv("OPENAI_SEARCH_MODEL", "gpt-4o-search-preview"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
		Market: MarketConfig{
			SwitchingCostEUR:   getEnvAsFloat64("MARKET_SWITCHING_COST_EUR", 75),
			AmortizationMonths: getEnvAsInt("MARKET_AMORTIZATION_MONTHS", 12),
			BonusAmortMonths:   getEnvAsInt("MARKET_BONUS_AMORT_MONTHS", 12),
			SwitchThresholdEUR: getEnvAsFloat64("MARKET_SWITCH_THRESHOLD_EUR", 10),
			RecheckCron:        getEnv("MARKET_RECHECK_CRON", "0 7 * * 1"),
			SnapshotTimeout:    getEnvAsDuration("MARKET_SNAPSHOT_TIMEOUT", 60*time.Second),
		},
		Payment: PaymentConfig{
			APIKey:      getEnv("MOLLIE_API_KEY", ""),
			BaseURL:     getEnv("MOLLIE_BASE_URL", "https://api.mollie.com/v2"),
			RedirectURL: getEnv("PAYMENT_REDIRECT_URL", ""),
			WebhookURL:  getEnv("PAYMENT_WEBHOOK_URL", ""),
			PremiumEUR:  getEnvAsFloat64("PREMIUM_PRICE_EUR", 4.99),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Oracle.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Market.AmortizationMonths <= 0 || c.Market.BonusAmortMonths <= 0 {
		return NewAppError("CONFIG_ERROR", "amortization months must be positive", ErrInvalidInput)
	}
	return nil
}
