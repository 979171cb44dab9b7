package search

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"bikenode/models"
)

// Stats summarises the brand metadata dataset
type Stats struct {
	Total            int
	WithWebsite      int
	WithSocialMedia  int
	WithFoundingYear int
	Countries        *models.Breakdown // sorted by count, highest first
	Decades          *models.Breakdown // e.g. "1970s", oldest first
	Industries       *models.Breakdown // sorted by count, highest first
}

// ComputeStats tallies the dataset
func ComputeStats(brands []models.BrandMetadata) Stats {
	st := Stats{Total: len(brands)}
	countries := models.NewBreakdown()
	industries := models.NewBreakdown()
	decades := map[int]int{}

	for i := range brands {
		b := &brands[i]
		if b.Website != "" {
			st.WithWebsite++
		}
		if b.HasSocialMedia() {
			st.WithSocialMedia++
		}
		if y, ok := b.FoundingYear(); ok {
			st.WithFoundingYear++
			decades[y/10*10]++
		}
		if b.Headquarters.Country != "" {
			countries.Inc(b.Headquarters.Country)
		}
		if b.Industry != "" {
			industries.Inc(b.Industry)
		}
	}

	st.Countries = sortedByCount(countries)
	st.Industries = sortedByCount(industries)

	keys := make([]int, 0, len(decades))
	for d := range decades {
		keys = append(keys, d)
	}
	sort.Ints(keys)
	st.Decades = models.NewBreakdown()
	for _, d := range keys {
		st.Decades.Add(fmt.Sprintf("%ds", d), decades[d])
	}
	return st
}

func sortedByCount(b *models.Breakdown) *models.Breakdown {
	keys := b.Keys()
	sort.SliceStable(keys, func(i, j int) bool {
		if b.Get(keys[i]) == b.Get(keys[j]) {
			return keys[i] < keys[j]
		}
		return b.Get(keys[i]) > b.Get(keys[j])
	})
	out := models.NewBreakdown()
	for _, k := range keys {
		out.Add(k, b.Get(k))
	}
	return out
}

// PrintStats writes the dataset summary to w
func PrintStats(w io.Writer, st Stats) {
	thin := strings.Repeat("─", 45)
	fmt.Fprintf(w, "\n BRAND DATABASE STATISTICS\n%s\n", thin)
	fmt.Fprintf(w, "  Total brands        : %d\n", st.Total)
	fmt.Fprintf(w, "  With website        : %d\n", st.WithWebsite)
	fmt.Fprintf(w, "  With social media   : %d\n", st.WithSocialMedia)
	fmt.Fprintf(w, "  With founding year  : %d\n", st.WithFoundingYear)

	printTop(w, "TOP COUNTRIES", thin, st.Countries, 10)
	printTop(w, "BY DECADE FOUNDED", thin, st.Decades, 0)
	printTop(w, "INDUSTRIES", thin, st.Industries, 10)
	fmt.Fprintln(w)
}

func printTop(w io.Writer, title, thin string, b *models.Breakdown, limit int) {
	if b.Len() == 0 {
		return
	}
	fmt.Fprintf(w, "\n %s\n%s\n", title, thin)
	for i, k := range b.Keys() {
		if limit > 0 && i >= limit {
			break
		}
		fmt.Fprintf(w, "  %-28s %3d\n", k+":", b.Get(k))
	}
}
