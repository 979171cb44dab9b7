// Package search filters the brand metadata dataset and drives the
// interactive brand search shell.
package search

import (
	"strings"
	"time"

	"bikenode/models"
)

// now is the clock used for the default upper bound of year ranges
var now = time.Now

// Criteria combines optional filters for AdvancedSearch. Zero values mean "any".
type Criteria struct {
	Name           string
	Country        string
	FoundedAfter   *int // inclusive
	FoundedBefore  *int // inclusive
	Industry       string
	HasWebsite     *bool
	HasSocialMedia *bool
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func filter(brands []models.BrandMetadata, keep func(*models.BrandMetadata) bool) []models.BrandMetadata {
	out := make([]models.BrandMetadata, 0)
	for i := range brands {
		if keep(&brands[i]) {
			out = append(out, brands[i])
		}
	}
	return out
}

func matchName(b *models.BrandMetadata, q string) bool {
	return containsFold(b.BrandName, q) || containsFold(b.BrandID, q)
}

func matchCountry(b *models.BrandMetadata, q string) bool {
	return b.Headquarters.Country != "" && containsFold(b.Headquarters.Country, q)
}

func matchIndustry(b *models.BrandMetadata, q string) bool {
	return (b.Industry != "" && containsFold(b.Industry, q)) ||
		(b.IndustrySubcategory != "" && containsFold(b.IndustrySubcategory, q))
}

func matchYears(b *models.BrandMetadata, start, end int) bool {
	y, ok := b.FoundingYear()
	return ok && y >= start && y <= end
}

// SearchByName matches query case-insensitively against brand name or id
func SearchByName(brands []models.BrandMetadata, query string) []models.BrandMetadata {
	return filter(brands, func(b *models.BrandMetadata) bool { return matchName(b, query) })
}

// FilterByCountry matches query case-insensitively against the headquarters country
func FilterByCountry(brands []models.BrandMetadata, country string) []models.BrandMetadata {
	return filter(brands, func(b *models.BrandMetadata) bool { return matchCountry(b, country) })
}

// FilterByFoundingYear keeps brands founded in [start, end]. An end of 0 means the current year.
// Brands without a founding year never match.
func FilterByFoundingYear(brands []models.BrandMetadata, start, end int) []models.BrandMetadata {
	if end == 0 {
		end = now().Year()
	}
	return filter(brands, func(b *models.BrandMetadata) bool { return matchYears(b, start, end) })
}

// FilterByIndustry matches query against industry or industry subcategory
func FilterByIndustry(brands []models.BrandMetadata, industry string) []models.BrandMetadata {
	return filter(brands, func(b *models.BrandMetadata) bool { return matchIndustry(b, industry) })
}

// AdvancedSearch keeps brands that satisfy every set field of c
func AdvancedSearch(brands []models.BrandMetadata, c Criteria) []models.BrandMetadata {
	return filter(brands, func(b *models.BrandMetadata) bool {
		if c.Name != "" && !matchName(b, c.Name) {
			return false
		}
		if c.Country != "" && !matchCountry(b, c.Country) {
			return false
		}
		if c.FoundedAfter != nil || c.FoundedBefore != nil {
			y, ok := b.FoundingYear()
			if !ok {
				return false
			}
			if c.FoundedAfter != nil && y < *c.FoundedAfter {
				return false
			}
			if c.FoundedBefore != nil && y > *c.FoundedBefore {
				return false
			}
		}
		if c.Industry != "" && !matchIndustry(b, c.Industry) {
			return false
		}
		if c.HasWebsite != nil && (b.Website != "") != *c.HasWebsite {
			return false
		}
		if c.HasSocialMedia != nil && b.HasSocialMedia() != *c.HasSocialMedia {
			return false
		}
		return true
	})
}
