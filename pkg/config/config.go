// Package config loads application configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv    string
	LogLevel  string
	LogFormat string

	// DataDir holds projects.csv, scenarios.json and masters.json.
	DataDir string

	// Fiscal calendar
	FiscalStartMonth int
	FiscalYear       int

	// Today overrides the reporting date (YYYY-MM-DD). Empty means the
	// system date. All derived metrics are computed against this date, so
	// pinning it makes output reproducible.
	Today string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		DataDir: getEnv("GENBA_DATA_DIR", "data"),

		FiscalStartMonth: getIntEnv("GENBA_FISCAL_START_MONTH", 7),
		FiscalYear:       getIntEnv("GENBA_FISCAL_YEAR", 2025),

		Today: getEnv("GENBA_TODAY", ""),
	}

	if cfg.FiscalStartMonth < 1 || cfg.FiscalStartMonth > 12 {
		cfg.FiscalStartMonth = 7
	}

	return cfg, nil
}

// ReportingDate resolves the date derived metrics are computed against.
// Falls back to the current system date when GENBA_TODAY is unset or
// unparseable.
func (c *Config) ReportingDate() time.Time {
	if c.Today != "" {
		if t, err := time.ParseInLocation("2006-01-02", c.Today, time.UTC); err == nil {
			return t
		}
	}
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ProjectsPath returns the path of the projects CSV file.
func (c *Config) ProjectsPath() string {
	return filepath.Join(c.DataDir, "projects.csv")
}

// ScenariosPath returns the path of the scenarios JSON file.
func (c *Config) ScenariosPath() string {
	return filepath.Join(c.DataDir, "scenarios.json")
}

// MastersPath returns the path of the masters JSON file.
func (c *Config) MastersPath() string {
	return filepath.Join(c.DataDir, "masters.json")
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
