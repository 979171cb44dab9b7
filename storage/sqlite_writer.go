package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bikenode/models"
	"bikenode/utils"

	_ "modernc.org/sqlite"
)

// SQLiteWriter stores flattened variants in a local SQLite file
type SQLiteWriter struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewSQLiteWriter opens (creating if needed) the SQLite database at path
func NewSQLiteWriter(path string, logger *utils.Logger) (*SQLiteWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	return &SQLiteWriter{db: db, logger: logger}, nil
}

// CreateTable creates the bike_variants table and its indexes
func (w *SQLiteWriter) CreateTable() error {
	colTypes := map[string]string{"power_watts": "INTEGER", "price_usd": "INTEGER"}
	defs := make([]string, 0, len(columns)+1)
	for _, c := range columns {
		t := colTypes[c]
		if t == "" {
			t = "TEXT"
		}
		defs = append(defs, fmt.Sprintf("%q %s", c, t))
	}
	defs = append(defs, "UNIQUE (brand, model, variant)")

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS bike_variants (` + strings.Join(defs, ", ") + `)`,
		`CREATE INDEX IF NOT EXISTS idx_bike_variants_brand ON bike_variants(brand)`,
		`CREATE INDEX IF NOT EXISTS idx_bike_variants_power ON bike_variants(power_watts)`,
		`CREATE INDEX IF NOT EXISTS idx_bike_variants_price ON bike_variants(price_usd)`,
	}
	for _, s := range stmts {
		if _, err := w.db.Exec(s); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// SaveVariants replaces rows with the same (brand, model, variant) in one transaction
func (w *SQLiteWriter) SaveVariants(exportID string, variants []models.FlatVariant) (err error) {
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	ph := strings.TrimRight(strings.Repeat("?,", len(columns)), ",")
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO bike_variants (` + strings.Join(columns, ",") + `) VALUES (` + ph + `)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, v := range variants {
		if _, err = stmt.Exec(exportRow(exportID, v)...); err != nil {
			return fmt.Errorf("insert %s / %s: %w", v.Brand, v.Variant, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	w.logger.Info("Saved %d variants to SQLite", len(variants))
	return nil
}

// CountByBrand returns how many exported variants each brand has
func (w *SQLiteWriter) CountByBrand() (map[string]int, error) {
	rows, err := w.db.Query(`SELECT brand, COUNT(*) FROM bike_variants GROUP BY brand`)
	if err != nil {
		return nil, fmt.Errorf("count by brand: %w", err)
	}
	defer rows.Close()
	out := make(map[string]int)
	for rows.Next() {
		var brand string
		var n int
		if err := rows.Scan(&brand, &n); err != nil {
			return nil, fmt.Errorf("count by brand: %w", err)
		}
		out[brand] = n
	}
	return out, rows.Err()
}

// Close closes the database
func (w *SQLiteWriter) Close() error {
	return w.db.Close()
}
