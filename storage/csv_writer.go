package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"bikenode/models"
	"bikenode/utils"
)

// CSVWriter writes flattened variants to a CSV file
type CSVWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(filePath string, logger *utils.Logger) *CSVWriter {
	return &CSVWriter{filePath: filePath, logger: logger}
}

// SaveVariants writes a header row and one row per variant, replacing the file
func (w *CSVWriter) SaveVariants(exportID string, variants []models.FlatVariant) error {
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, v := range variants {
		vals := exportRow(exportID, v)
		row := make([]string, len(vals))
		for i, val := range vals {
			row[i] = textValue(val)
		}
		if err := writer.Write(row); err != nil {
			w.logger.Error("Failed to write CSV row for '%s / %s': %v", v.Brand, v.Variant, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	w.logger.Info("Variants written to: %s (%d rows)", w.filePath, len(variants))
	return nil
}

// Close is a no-op; the file is closed after each write
func (w *CSVWriter) Close() error { return nil }
