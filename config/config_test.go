package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"CATALOGUE_PATH", "CSV_FILE_PATH", "DATABASE_URL", "DB_MAX_RETRIES", "VERBOSE"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	if cfg.CSVFilePath != "output/bike_variants.csv" {
		t.Errorf("CSVFilePath = %q", cfg.CSVFilePath)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("DatabaseURL = %q, want empty", cfg.DatabaseURL)
	}
	if cfg.DBMaxRetries != 3 {
		t.Errorf("DBMaxRetries = %d, want 3", cfg.DBMaxRetries)
	}
	if cfg.Verbose {
		t.Error("Verbose should default to false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("REPORT_PATH", "/tmp/r.md")
	t.Setenv("DB_MAX_RETRIES", "7")
	t.Setenv("LOOKUP_RATE_PER_SEC", "not-a-number")
	t.Setenv("VERBOSE", "true")
	cfg := Load()
	if cfg.ReportPath != "/tmp/r.md" {
		t.Errorf("ReportPath = %q", cfg.ReportPath)
	}
	if cfg.DBMaxRetries != 7 {
		t.Errorf("DBMaxRetries = %d, want 7", cfg.DBMaxRetries)
	}
	if cfg.LookupRatePerSec != 5 {
		t.Errorf("LookupRatePerSec = %d, want default 5", cfg.LookupRatePerSec)
	}
	if !cfg.Verbose {
		t.Error("Verbose should be true")
	}
}
