package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"bikenode/models"
	"bikenode/utils"

	_ "github.com/lib/pq"
)

// PostgresWriter stores flattened variants in PostgreSQL
type PostgresWriter struct {
	db     *sql.DB
	logger *utils.Logger
}

// NewPostgresWriter opens the DB and pings it, retrying with backoff
func NewPostgresWriter(connStr string, maxRetries int, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open DB: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Minute * 5)

	if err := utils.RetryWithBackoff(maxRetries, time.Second, db.Ping, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping DB: %w", err)
	}

	logger.Info("Connected to PostgreSQL successfully")
	return &PostgresWriter{db: db, logger: logger}, nil
}

// CreateTable creates the bike_variants table if it doesn't exist, with indexes
func (w *PostgresWriter) CreateTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS bike_variants (
		id           SERIAL PRIMARY KEY,
		export_id    UUID         NOT NULL,
		brand        TEXT         NOT NULL,
		model        TEXT         NOT NULL,
		variant      TEXT         NOT NULL,
		motor        TEXT,
		battery      TEXT,
		top_speed    TEXT,
		weight       TEXT,
		range_text   TEXT,
		price        TEXT,
		availability TEXT,
		suspension   TEXT,
		brakes       TEXT,
		tires        TEXT,
		notes        TEXT,
		power_watts  INTEGER,
		price_usd    INTEGER,
		extra        JSONB        NOT NULL DEFAULT '{}',
		exported_at  TIMESTAMP    NOT NULL DEFAULT NOW(),
		UNIQUE (brand, model, variant)
	);

	CREATE INDEX IF NOT EXISTS idx_bike_variants_brand        ON bike_variants (brand);
	CREATE INDEX IF NOT EXISTS idx_bike_variants_power        ON bike_variants (power_watts);
	CREATE INDEX IF NOT EXISTS idx_bike_variants_price        ON bike_variants (price_usd);
	CREATE INDEX IF NOT EXISTS idx_bike_variants_availability ON bike_variants (availability);
	`
	_, err := w.db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}
	w.logger.Info("Table 'bike_variants' is ready")
	return nil
}

// upsertQuery inserts a variant or refreshes the existing row for (brand, model, variant)
func upsertQuery() string {
	ph := make([]string, len(columns))
	var updates []string
	for i, c := range columns {
		ph[i] = fmt.Sprintf("$%d", i+1)
		if c == "extra" {
			ph[i] += "::jsonb"
		}
		switch c {
		case "brand", "model", "variant":
		default:
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", c, c))
		}
	}
	updates = append(updates, "exported_at = NOW()")
	return fmt.Sprintf(
		"INSERT INTO bike_variants (%s) VALUES (%s) ON CONFLICT (brand, model, variant) DO UPDATE SET %s",
		strings.Join(columns, ", "), strings.Join(ph, ", "), strings.Join(updates, ", "),
	)
}

// SaveVariants upserts variants in a single transaction
func (w *PostgresWriter) SaveVariants(exportID string, variants []models.FlatVariant) (err error) {
	if len(variants) == 0 {
		return nil
	}

	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(upsertQuery())
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

	w.logger.Info("Upserted %d variants into PostgreSQL", len(variants))
	return nil
}

// Close closes the database connection
func (w *PostgresWriter) Close() error {
	if w.db == nil {
		return nil
	}
	return w.db.Close()
}
