package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Accounting AccountingConfig
	Cache      CacheConfig
}

type DatabaseConfig struct {
	Driver     string
	SQLitePath string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SSLMode    string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	Timezone       string
	AllowedOrigins []string
	SeedDemoData   bool
}

// AccountingConfig holds the rules of the time and absence accounting.
type AccountingConfig struct {
	DailyTarget          time.Duration
	DefaultVacationQuota int
	DeductBreaks         bool
	SickRequiresApproval bool
}

type CacheConfig struct {
	Size int
}

func Load() (*Config, error) {
	// Environment variables win over .env; a missing file is fine in containers.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Driver:     strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		SQLitePath: getEnv("SQLITE_PATH", "zeiterfassung.db"),
		Host:       getEnv("DB_HOST", "localhost"),
		Port:       dbPort,
		User:       getEnv("DB_USER", "postgres"),
		Password:   getEnv("DB_PASSWORD", ""),
		Name:       getEnv("DB_NAME", "zeiterfassung"),
		SSLMode:    getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	seed, err := getEnvBool("SEED_DEMO_DATA", false)
	if err != nil {
		return nil, err
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Timezone:       getEnv("APP_TIMEZONE", "Europe/Berlin"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		SeedDemoData:   seed,
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Accounting rules
	target, err := time.ParseDuration(getEnv("ACCOUNTING_DAILY_TARGET", "8h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ACCOUNTING_DAILY_TARGET: %w", err)
	}
	quota, err := strconv.Atoi(getEnv("ACCOUNTING_DEFAULT_VACATION_QUOTA", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid ACCOUNTING_DEFAULT_VACATION_QUOTA: %w", err)
	}
	deductBreaks, err := getEnvBool("ACCOUNTING_DEDUCT_BREAKS", false)
	if err != nil {
		return nil, err
	}
	sickApproval, err := getEnvBool("ACCOUNTING_SICK_REQUIRES_APPROVAL", false)
	if err != nil {
		return nil, err
	}

	config.Accounting = AccountingConfig{
		DailyTarget:          target,
		DefaultVacationQuota: quota,
		DeductBreaks:         deductBreaks,
		SickRequiresApproval: sickApproval,
	}

	cacheSize, err := strconv.Atoi(getEnv("CACHE_SIZE", "256"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_SIZE: %w", err)
	}
	config.Cache = CacheConfig{Size: cacheSize}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required")
		}
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	if c.Accounting.DailyTarget <= 0 {
		return fmt.Errorf("ACCOUNTING_DAILY_TARGET must be positive")
	}
	if c.Accounting.DefaultVacationQuota < 0 {
		return fmt.Errorf("ACCOUNTING_DEFAULT_VACATION_QUOTA must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location returns the time zone calendar dates are derived in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getEnvSlice(env string, fallback []string) []string {
	value := getEnv(env, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
