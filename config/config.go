package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds settings for the catalogue report/export pipeline
type Config struct {
	// Input
	CataloguePath string // empty uses the embedded catalogue

	// Output
	CSVFilePath string
	ReportPath  string
	SQLitePath  string // empty disables the SQLite export

	// Database
	DatabaseURL  string // empty disables the PostgreSQL export
	DBMaxRetries int

	// Marketplace lookup API
	LookupBaseURL    string // empty disables the lookup check
	LookupRatePerSec int

	LogLevel string
	Verbose  bool // also print the Markdown report to stdout
}

// Load reads configuration from environment variables or falls back to defaults
func Load() *Config {
	return &Config{
		CataloguePath:    getEnv("CATALOGUE_PATH", ""),
		CSVFilePath:      getEnv("CSV_FILE_PATH", "output/bike_variants.csv"),
		ReportPath:       getEnv("REPORT_PATH", "output/DATABASE_REPORT.md"),
		SQLitePath:       getEnv("SQLITE_PATH", ""),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		DBMaxRetries:     getEnvInt("DB_MAX_RETRIES", 3),
		LookupBaseURL:    getEnv("LOOKUP_BASE_URL", ""),
		LookupRatePerSec: getEnvInt("LOOKUP_RATE_PER_SEC", 5),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Verbose:          getEnvBool("VERBOSE", false),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
