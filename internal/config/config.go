// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/leadexchange/leadmarket/internal/pricing"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Database  DatabaseConfig
	Market    MarketConfig
	Notify    NotifyConfig
	RateLimit RateLimitConfig
	Admin     AdminConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	ConnMaxLifetime time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
}

// MarketConfig holds the lead market rules.
type MarketConfig struct {
	Schedule         pricing.Schedule
	SeedBalance      decimal.Decimal
	RawPriceSchedule string
	RawSeedBalance   string
	FreshnessMonths  int
	MaxUploadBytes   int
}

// NotifyConfig holds outbound notification settings. Empty endpoints disable a sink.
type NotifyConfig struct {
	BotAPIURL        string
	TelegramBotToken string
	Timeout          time.Duration
	MaxInFlight      int
}

// RateLimitConfig holds request and upload throttling settings.
type RateLimitConfig struct {
	RedisAddr          string
	RedisPassword      string
	RequestsPerSecond  float64
	Burst              int
	RedisDB            int
	UploadQuotaPerHour int
}

// AdminConfig holds the shared secret for administrative routes.
type AdminConfig struct {
	Token string
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level string // debug, info, warn, error
}

// Load loads configuration from a .env file (if present) and environment
// variables, with sensible defaults
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", "15s"),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "leadmarket"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", "5m"),
		},
		Market: MarketConfig{
			RawPriceSchedule: getEnv("PRICE_SCHEDULE", "1.0,0.7,0.3"),
			RawSeedBalance:   getEnv("ACCOUNT_SEED_BALANCE", "5"),
			FreshnessMonths:  getEnvAsInt("LEAD_FRESHNESS_MONTHS", 3),
			MaxUploadBytes:   getEnvAsInt("MAX_UPLOAD_BYTES", 64*1024),
		},
		Notify: NotifyConfig{
			BotAPIURL:        getEnv("BOT_API_URL", ""),
			TelegramBotToken: getEnv("TELEGRAM_BOT_TOKEN", ""),
			Timeout:          getEnvAsDuration("NOTIFY_TIMEOUT", "5s"),
			MaxInFlight:      getEnvAsInt("NOTIFY_MAX_INFLIGHT", 64),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond:  getEnvAsFloat("RATE_LIMIT_RPS", 5),
			Burst:              getEnvAsInt("RATE_LIMIT_BURST", 10),
			RedisAddr:          getEnv("REDIS_ADDR", ""),
			RedisPassword:      getEnv("REDIS_PASSWORD", ""),
			RedisDB:            getEnvAsInt("REDIS_DB", 0),
			UploadQuotaPerHour: getEnvAsInt("UPLOAD_QUOTA_PER_HOUR", 20),
		},
		Admin: AdminConfig{
			Token: getEnv("ADMIN_TOKEN", ""),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration and parses the market settings.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	schedule, err := pricing.ParseSchedule(c.Market.RawPriceSchedule)
	if err != nil {
		return fmt.Errorf("invalid price schedule: %w", err)
	}
	c.Market.Schedule = schedule

	seed, err := decimal.NewFromString(c.Market.RawSeedBalance)
	if err != nil {
		return fmt.Errorf("invalid seed balance %q: %w", c.Market.RawSeedBalance, err)
	}
	if seed.IsNegative() {
		return fmt.Errorf("seed balance cannot be negative, got %s", seed)
	}
	c.Market.SeedBalance = seed

	if c.Market.FreshnessMonths <= 0 {
		return fmt.Errorf("lead freshness must be positive, got %d months", c.Market.FreshnessMonths)
	}
	if c.Market.MaxUploadBytes <= 0 {
		return fmt.Errorf("max upload size must be positive, got %d", c.Market.MaxUploadBytes)
	}

	if c.Notify.MaxInFlight <= 0 {
		return fmt.Errorf("notify max in-flight must be positive, got %d", c.Notify.MaxInFlight)
	}

	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit must be positive, got %v rps burst %d", c.RateLimit.RequestsPerSecond, c.RateLimit.Burst)
	}
	if c.RateLimit.UploadQuotaPerHour < 0 {
		return fmt.Errorf("upload quota cannot be negative")
	}

	if _, ok := logLevels[strings.ToLower(c.Logger.Level)]; !ok {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	return nil
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// URL returns the connection string in URL form, as expected by the migrator.
func (c *DatabaseConfig) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to parsing the default if provided value is invalid
		duration, err = time.ParseDuration(defaultValue)
		if err != nil {
			return 0
		}
	}
	return duration
}
