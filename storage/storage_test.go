package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bikenode/models"
	"bikenode/utils"
)

func sampleVariants() []models.FlatVariant {
	return []models.FlatVariant{
		{Brand: "Acme", Model: "One", Variant: "Base", Specs: models.Variant{
			Name: "Base", Motor: "6000W peak / 3000W nominal", Price: "$4,500", Availability: "In stock",
			Extra: map[string]string{"warranty": "2 years"},
		}},
		{Brand: "Acme", Model: "One", Variant: "Plus", Specs: models.Variant{Name: "Plus", Price: "TBA"}},
		{Brand: "Bolt", Model: "Two", Variant: "Only", Specs: models.Variant{Name: "Only", Motor: "750W", Price: "$999"}},
	}
}

func TestExportRow(t *testing.T) {
	vs := sampleVariants()
	row := exportRow("run-1", vs[0])
	if len(row) != len(columns) {
		t.Fatalf("row has %d values for %d columns", len(row), len(columns))
	}
	get := func(col string) interface{} {
		for i, c := range columns {
			if c == col {
				return row[i]
			}
		}
		t.Fatalf("no column %s", col)
		return nil
	}
	if get("power_watts") != 6000 {
		t.Errorf("power_watts = %v, want 6000", get("power_watts"))
	}
	if get("price_usd") != 4 {
		t.Errorf("price_usd = %v, want 4", get("price_usd"))
	}
	if get("extra") != `{"warranty":"2 years"}` {
		t.Errorf("extra = %v", get("extra"))
	}

	row = exportRow("run-1", vs[1])
	if row[15] != nil || row[16] != nil {
		t.Errorf("unparsed numbers should be nil, got %v %v", row[15], row[16])
	}
	if row[17] != "{}" {
		t.Errorf("empty extra = %v", row[17])
	}
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "variants.csv")
	w := NewCSVWriter(path, utils.Discard())
	if err := w.SaveVariants("run-1", sampleVariants()); err != nil {
		t.Fatalf("SaveVariants: %v", err)
	}
	defer w.Close()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 4 {
		t.Fatalf("records = %d, want 4 (header + 3)", len(records))
	}
	if strings.Join(records[0], ",") != strings.Join(columns, ",") {
		t.Errorf("header = %v", records[0])
	}
	if records[1][0] != "run-1" || records[1][1] != "Acme" || records[1][15] != "6000" {
		t.Errorf("row 1 = %v", records[1])
	}
	if records[2][15] != "" {
		t.Errorf("missing power should be empty, got %q", records[2][15])
	}
}

func TestSQLiteWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "variants.sqlite")
	w, err := NewSQLiteWriter(path, utils.Discard())
	if err != nil {
		t.Fatalf("NewSQLiteWriter: %v", err)
	}
	defer w.Close()

	if err := w.CreateTable(); err != nil {
		t.Fatalf("CreateTable: %v", err)
	}
	if err := w.SaveVariants(NewExportID(), sampleVariants()); err != nil {
		t.Fatalf("SaveVariants: %v", err)
	}
	// a second export replaces rows rather than duplicating them
	if err := w.SaveVariants(NewExportID(), sampleVariants()); err != nil {
		t.Fatalf("SaveVariants again: %v", err)
	}

	counts, err := w.CountByBrand()
	if err != nil {
		t.Fatal(err)
	}
	if counts["Acme"] != 2 || counts["Bolt"] != 1 {
		t.Errorf("counts = %v", counts)
	}

	var watts int
	if err := w.db.QueryRow(`SELECT power_watts FROM bike_variants WHERE variant = 'Only'`).Scan(&watts); err != nil {
		t.Fatal(err)
	}
	if watts != 750 {
		t.Errorf("power_watts = %d, want 750", watts)
	}
}

func TestUpsertQuery(t *testing.T) {
	q := upsertQuery()
	for _, want := range []string{
		"INSERT INTO bike_variants (export_id, brand,",
		"$18::jsonb",
		"ON CONFLICT (brand, model, variant) DO UPDATE SET",
		"power_watts = EXCLUDED.power_watts",
		"exported_at = NOW()",
	} {
		if !strings.Contains(q, want) {
			t.Errorf("query missing %q: %s", want, q)
		}
	}
	if strings.Contains(q, "brand = EXCLUDED.brand") {
		t.Error("conflict key columns should not be updated")
	}
}

func TestNewExportIDUnique(t *testing.T) {
	a, b := NewExportID(), NewExportID()
	if a == b || len(a) != 36 {
		t.Errorf("ids %q %q", a, b)
	}
}

func TestWritersShareStorageInterface(t *testing.T) {
	var targets []VariantStorage
	targets = append(targets, NewCSVWriter(filepath.Join(t.TempDir(), "v.csv"), utils.Discard()))
	sq, err := NewSQLiteWriter(filepath.Join(t.TempDir(), "v.sqlite"), utils.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if err := sq.CreateTable(); err != nil {
		t.Fatal(err)
	}
	targets = append(targets, sq)

	for _, target := range targets {
		if err := target.SaveVariants(NewExportID(), sampleVariants()); err != nil {
			t.Errorf("%T SaveVariants: %v", target, err)
		}
		if err := target.Close(); err != nil {
			t.Errorf("%T Close: %v", target, err)
		}
	}
}
