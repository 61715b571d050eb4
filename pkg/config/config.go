package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Ingest   IngestConfig
	Report   ReportConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// IngestConfig controls where statement files are discovered and where
// manual-entry templates are written.
type IngestConfig struct {
	FinancialsDir string
	TemplateDir   string
}

// ReportConfig controls the missing-statement report.
type ReportConfig struct {
	MonthsBack int
	// Schedule is a standard 5-field cron expression for the periodic
	// missing-statement check.
	Schedule string
}

// Load reads configuration from environment variables, picking up a local
// .env file first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvAsInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", "postgres"),
			Database: getEnv("POSTGRES_DB", "masons-financials"),
			SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
		},
		Ingest: IngestConfig{
			FinancialsDir: getEnv("FINANCIALS_DIR", "./financials"),
			TemplateDir:   getEnv("TEMPLATE_DIR", "./financials"),
		},
		Report: ReportConfig{
			MonthsBack: getEnvAsInt("REPORT_MONTHS_BACK", 3),
			Schedule:   getEnv("REPORT_SCHEDULE", "0 8 * * 1"),
		},
	}

	if cfg.Report.MonthsBack < 1 {
		return nil, fmt.Errorf("REPORT_MONTHS_BACK must be at least 1, got %d", cfg.Report.MonthsBack)
	}

	return cfg, nil
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
