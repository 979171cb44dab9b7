package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// Breakdown is a frequency table that remembers the order keys were first seen in
type Breakdown struct {
	keys   []string
	counts map[string]int
}

// NewBreakdown returns a breakdown pre-seeded with zero-count keys in the given order
func NewBreakdown(keys ...string) *Breakdown {
	b := &Breakdown{counts: make(map[string]int, len(keys))}
	for _, k := range keys {
		b.Add(k, 0)
	}
	return b
}

// Inc adds one to key
func (b *Breakdown) Inc(key string) { b.Add(key, 1) }

// Add adds n to key, registering it if new
func (b *Breakdown) Add(key string, n int) {
	if b.counts == nil {
		b.counts = make(map[string]int)
	}
	if _, ok := b.counts[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.counts[key] += n
}

// Get returns the count for key (0 if absent)
func (b *Breakdown) Get(key string) int {
	if b == nil {
		return 0
	}
	return b.counts[key]
}

// Keys returns keys in first-seen order
func (b *Breakdown) Keys() []string {
	if b == nil {
		return nil
	}
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Len returns the number of distinct keys
func (b *Breakdown) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}

// Total returns the sum of all counts
func (b *Breakdown) Total() int {
	if b == nil {
		return 0
	}
	total := 0
	for _, n := range b.counts {
		total += n
	}
	return total
}

// MarshalJSON encodes the breakdown as an object whose keys keep their order
func (b *Breakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range b.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, _ := json.Marshal(b.counts[k])
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Summary holds the headline counts of a statistics run
type Summary struct {
	TotalBrands int       `json:"totalBrands"`
	TotalModels int       `json:"totalModels"` // flattened variant count
	GeneratedAt time.Time `json:"generatedAt"`
}

// BrandModelCount is one row of the top-brands leaderboard
type BrandModelCount struct {
	Brand      string `json:"brand"`
	ModelCount int    `json:"modelCount"`
}

// Statistics holds computed analytics for a catalogue
type Statistics struct {
	Summary               Summary           `json:"summary"`
	CountryBreakdown      *Breakdown        `json:"countryBreakdown"`
	PowerRangeBreakdown   *Breakdown        `json:"powerRangeBreakdown"`
	PriceRangeBreakdown   *Breakdown        `json:"priceRangeBreakdown"`
	AvailabilityBreakdown *Breakdown        `json:"availabilityBreakdown"`
	TopBrandsByModels     []BrandModelCount `json:"topBrandsByModels"`
}
