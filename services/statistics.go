package services

import (
	"sort"
	"time"

	"bikenode/models"
	"bikenode/utils"
)

// Power range bucket labels, in report order
const (
	PowerUnder750   = "under750W"
	Power750To1500  = "750W-1500W"
	Power1500To3000 = "1500W-3000W"
	Power3000To5000 = "3000W-5000W"
	PowerOver5000   = "over5000W"
)

// Price range bucket labels, in report order
const (
	PriceUnder1000  = "under1000"
	Price1000To2000 = "1000-2000"
	Price2000To4000 = "2000-4000"
	Price4000To6000 = "4000-6000"
	PriceOver6000   = "over6000"
)

// UnknownKey is the breakdown key used when a country or availability is missing
const UnknownKey = "Unknown"

const topBrandsLimit = 10

// StatisticsService computes analytics over a catalogue
type StatisticsService struct {
	logger *utils.Logger
	now    func() time.Time
}

// NewStatisticsService creates a new StatisticsService
func NewStatisticsService(logger *utils.Logger) *StatisticsService {
	return &StatisticsService{logger: logger, now: time.Now}
}

// WithClock overrides the clock used for the generation timestamp
func (s *StatisticsService) WithClock(now func() time.Time) *StatisticsService {
	s.now = now
	return s
}

// Generate computes all breakdowns for the catalogue
func (s *StatisticsService) Generate(cat *models.Catalogue) *models.Statistics {
	variants := Flatten(cat)
	stats := &models.Statistics{
		Summary: models.Summary{
			TotalBrands: cat.Len(),
			TotalModels: len(variants),
			GeneratedAt: s.now().UTC(),
		},
		CountryBreakdown: models.NewBreakdown(),
		PowerRangeBreakdown: models.NewBreakdown(
			PowerUnder750, Power750To1500, Power1500To3000, Power3000To5000, PowerOver5000),
		PriceRangeBreakdown: models.NewBreakdown(
			PriceUnder1000, Price1000To2000, Price2000To4000, Price4000To6000, PriceOver6000),
		AvailabilityBreakdown: models.NewBreakdown(),
	}

	if cat.Len() == 0 {
		s.logger.Warn("Catalogue is empty, statistics will be blank")
	}

	// Country: one per brand
	for _, b := range cat.Brands() {
		country := b.Country
		if country == "" {
			country = UnknownKey
		}
		stats.CountryBreakdown.Inc(country)
	}

	var noPower, noPrice int
	for _, v := range variants {
		if watts, ok := ExtractPower(v.Specs.Motor); ok {
			stats.PowerRangeBreakdown.Inc(powerBucket(watts))
		} else {
			noPower++
		}

		if usd, ok := ExtractPrice(v.Specs.Price); ok {
			stats.PriceRangeBreakdown.Inc(priceBucket(usd))
		} else {
			noPrice++
		}

		availability := v.Specs.Availability
		if availability == "" {
			availability = UnknownKey
		}
		stats.AvailabilityBreakdown.Inc(availability)
	}
	if noPower > 0 || noPrice > 0 {
		s.logger.Debug("Excluded %d variants without motor wattage and %d without a price", noPower, noPrice)
	}

	stats.TopBrandsByModels = topBrands(cat, topBrandsLimit)

	s.logger.Info("Computed statistics for %d brands / %d variants", stats.Summary.TotalBrands, stats.Summary.TotalModels)
	return stats
}

func powerBucket(watts int) string {
	switch {
	case watts < 750:
		return PowerUnder750
	case watts <= 1500:
		return Power750To1500
	case watts <= 3000:
		return Power1500To3000
	case watts <= 5000:
		return Power3000To5000
	default:
		return PowerOver5000
	}
}

func priceBucket(usd int) string {
	switch {
	case usd < 1000:
		return PriceUnder1000
	case usd < 2000:
		return Price1000To2000
	case usd < 4000:
		return Price2000To4000
	case usd < 6000:
		return Price4000To6000
	default:
		return PriceOver6000
	}
}

// topBrands ranks brands by total variant count, highest first
func topBrands(cat *models.Catalogue, limit int) []models.BrandModelCount {
	ranked := make([]models.BrandModelCount, 0, cat.Len())
	for i := range cat.Brands() {
		b := &cat.Brands()[i]
		ranked = append(ranked, models.BrandModelCount{Brand: b.Name, ModelCount: b.VariantCount()})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ModelCount > ranked[j].ModelCount
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
