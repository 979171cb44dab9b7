package services

import (
	"bikenode/models"
	"bikenode/utils"
)

// Database is the read-only query surface over one catalogue
type Database struct {
	cat   *models.Catalogue
	stats *StatisticsService
}

// NewDatabase wraps a catalogue
func NewDatabase(cat *models.Catalogue, logger *utils.Logger) *Database {
	return &Database{cat: cat, stats: NewStatisticsService(logger)}
}

// WithStatistics replaces the statistics service, e.g. to pin its clock
func (d *Database) WithStatistics(s *StatisticsService) *Database {
	d.stats = s
	return d
}

// AllBrands returns brand names in catalogue order
func (d *Database) AllBrands() []string {
	names := make([]string, 0, d.cat.Len())
	for _, b := range d.cat.Brands() {
		names = append(names, b.Name)
	}
	return names
}

// BrandModels returns the model names of a brand, or an empty slice if the brand is unknown
func (d *Database) BrandModels(brand string) []string {
	b, ok := d.cat.Brand(brand)
	if !ok {
		return []string{}
	}
	names := make([]string, 0, len(b.Models))
	for _, m := range b.Models {
		names = append(names, m.Name)
	}
	return names
}

// AllModelsAndVariants returns the flattened catalogue
func (d *Database) AllModelsAndVariants() []models.FlatVariant {
	return Flatten(d.cat)
}

// Statistics computes the catalogue statistics
func (d *Database) Statistics() *models.Statistics {
	return d.stats.Generate(d.cat)
}

// Report renders the catalogue statistics as Markdown
func (d *Database) Report() string {
	return RenderMarkdownReport(d.Statistics())
}
