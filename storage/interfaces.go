package storage

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"

	"bikenode/models"
	"bikenode/services"
)

// VariantStorage persists a flattened catalogue export
type VariantStorage interface {
	SaveVariants(exportID string, variants []models.FlatVariant) error
	Close() error
}

var (
	_ VariantStorage = (*CSVWriter)(nil)
	_ VariantStorage = (*SQLiteWriter)(nil)
	_ VariantStorage = (*PostgresWriter)(nil)
)

// NewExportID returns a fresh identifier stamped on every row of one export run
func NewExportID() string {
	return uuid.NewString()
}

// columns is the shared column order of every export target
var columns = []string{
	"export_id", "brand", "model", "variant",
	"motor", "battery", "top_speed", "weight", "range_text", "price", "availability",
	"suspension", "brakes", "tires", "notes",
	"power_watts", "price_usd", "extra",
}

// exportRow flattens one variant into column values. Unparsed numbers are nil.
func exportRow(exportID string, v models.FlatVariant) []interface{} {
	s := v.Specs
	var watts, usd interface{}
	if n, ok := services.ExtractPower(s.Motor); ok {
		watts = n
	}
	if n, ok := services.ExtractPrice(s.Price); ok {
		usd = n
	}
	return []interface{}{
		exportID, v.Brand, v.Model, v.Variant,
		s.Motor, s.Battery, s.TopSpeed, s.Weight, s.Range, s.Price, s.Availability,
		s.Suspension, s.Brakes, s.Tires, s.Notes,
		watts, usd, extraJSON(s.Extra),
	}
}

func extraJSON(extra map[string]string) string {
	if len(extra) == 0 {
		return "{}"
	}
	b, err := json.Marshal(extra) // map keys are sorted
	if err != nil {
		return "{}"
	}
	return string(b)
}

// textValue renders a column value for text outputs such as CSV
func textValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	}
	return ""
}
