package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"bikenode/config"
	"bikenode/data"
	"bikenode/lookup"
	"bikenode/models"
	"bikenode/services"
	"bikenode/storage"
	"bikenode/utils"
)

func main() {
	// ================== Bootstrap ====================
	cfg := config.Load()
	logger := utils.NewLogger().SetLevel(utils.ParseLevel(cfg.LogLevel))

	logger.Info("Electric Bike Catalogue Report")

	// =============== Catalogue ===================================
	cat, err := loadCatalogue(cfg)
	if err != nil {
		logger.Error("Cannot load catalogue: %v", err)
		os.Exit(1)
	}
	db := services.NewDatabase(cat, logger)
	variants := db.AllModelsAndVariants()
	logger.Info("Loaded %d brands / %d variants", cat.Len(), len(variants))

	exportID := storage.NewExportID()
	logger.Debug("Export run %s", exportID)

	// ========= CSV: flattened variants ===========================
	if err := save(storage.NewCSVWriter(cfg.CSVFilePath, logger), exportID, variants); err != nil {
		logger.Error("Failed to write CSV: %v", err)
		// Non-fatal: continue to DB storage
	}

	// ========= SQLite / PostgreSQL ============
	if cfg.SQLitePath != "" {
		if err := exportSQLite(cfg.SQLitePath, exportID, variants, logger); err != nil {
			logger.Error("SQLite export failed: %v", err)
		}
	}
	if cfg.DatabaseURL != "" {
		if err := exportPostgres(cfg, exportID, variants, logger); err != nil {
			logger.Error("PostgreSQL export failed: %v", err)
		}
	}

	// ==== Marketplace cross-check ============================
	if cfg.LookupBaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		client := lookup.NewClient(cfg.LookupBaseURL, cfg.LookupRatePerSec, logger)
		missing := lookup.MissingBrands(ctx, client, "motorcycles", db.AllBrands())
		cancel()
		if len(missing) > 0 {
			logger.Warn("%d catalogue brands are not offered by the marketplace: %v", len(missing), missing)
		}
	}

	// ==== Statistics + report ============================
	stats := db.Statistics()
	report := services.RenderMarkdownReport(stats)
	if err := writeReport(cfg.ReportPath, report); err != nil {
		logger.Error("Failed to write report: %v", err)
		os.Exit(1)
	}
	logger.Info("Report written to %s", cfg.ReportPath)

	services.PrintStatistics(os.Stdout, stats)
	if cfg.Verbose {
		fmt.Println(report)
	}

	fmt.Println(" Done! Variants →", cfg.CSVFilePath)
	fmt.Println(" Report →", cfg.ReportPath)
}

func loadCatalogue(cfg *config.Config) (*models.Catalogue, error) {
	if cfg.CataloguePath != "" {
		return data.LoadCatalogueFile(cfg.CataloguePath)
	}
	return data.Catalogue()
}

func exportSQLite(path, exportID string, variants []models.FlatVariant, logger *utils.Logger) error {
	w, err := storage.NewSQLiteWriter(path, logger)
	if err != nil {
		return err
	}
	if err := w.CreateTable(); err != nil {
		w.Close()
		return err
	}
	return save(w, exportID, variants)
}

func exportPostgres(cfg *config.Config, exportID string, variants []models.FlatVariant, logger *utils.Logger) error {
	w, err := storage.NewPostgresWriter(cfg.DatabaseURL, cfg.DBMaxRetries, logger)
	if err != nil {
		return err
	}
	if err := w.CreateTable(); err != nil {
		w.Close()
		return err
	}
	return save(w, exportID, variants)
}

// save writes variants to target and closes it
func save(target storage.VariantStorage, exportID string, variants []models.FlatVariant) error {
	defer target.Close()
	return target.SaveVariants(exportID, variants)
}

func writeReport(path, report string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}
	return os.WriteFile(path, []byte(report), 0644)
}
