package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/ndewijer/Wealth-Dashboard-Backend/internal/analytics"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	Log       LogConfig
	Snapshot  SnapshotConfig
	Analytics AnalyticsConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
	// MemoKey is a base64 fernet key. Empty stores memos as plain text.
	MemoKey string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// SnapshotConfig controls how the dashboard snapshot is loaded and refreshed.
type SnapshotConfig struct {
	DemoFallback bool
	RefreshSpec  string // cron spec, e.g. "@every 5m"
}

// AnalyticsConfig holds the engine tables and the reporting currency.
type AnalyticsConfig struct {
	Currency   string
	TablesFile string
	Tables     analytics.Tables
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path:    getEnv("DB_PATH", "./data/wealth_dashboard.db"),
			MemoKey: os.Getenv("MEMO_KEY"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
		Snapshot: SnapshotConfig{
			DemoFallback: getEnvBool("DEMO_FALLBACK", true),
			RefreshSpec:  getEnv("SNAPSHOT_REFRESH", "@every 5m"),
		},
		Analytics: AnalyticsConfig{
			Currency:   strings.ToUpper(getEnv("CURRENCY", "JPY")),
			TablesFile: os.Getenv("ANALYTICS_TABLES_FILE"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	tables, err := LoadTables(config.Analytics.TablesFile)
	if err != nil {
		return nil, err
	}
	config.Analytics.Tables = tables

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks settings that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	if money.GetCurrency(c.Analytics.Currency) == nil {
		return fmt.Errorf("unknown currency code %q", c.Analytics.Currency)
	}
	if _, err := cron.ParseStandard(c.Snapshot.RefreshSpec); err != nil {
		return fmt.Errorf("invalid SNAPSHOT_REFRESH %q: %w", c.Snapshot.RefreshSpec, err)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
