package services

import (
	"fmt"
	"io"
	"strings"
	"time"

	"bikenode/models"
)

// RenderMarkdownReport formats statistics as a Markdown document.
// Breakdowns are listed in their stored order, one bullet per entry.
func RenderMarkdownReport(stats *models.Statistics) string {
	lines := []string{
		"# Electric Bike Database Report",
		"",
		"## Summary",
		bullet("Total Brands", stats.Summary.TotalBrands, ""),
		bullet("Total Models", stats.Summary.TotalModels, ""),
		bullet("Generated", stats.Summary.GeneratedAt.Format(time.RFC3339), ""),
		"",
	}
	lines = appendBreakdown(lines, "Geographic Distribution", stats.CountryBreakdown, " brands")
	lines = appendBreakdown(lines, "Power Range Distribution", stats.PowerRangeBreakdown, " models")
	lines = appendBreakdown(lines, "Price Range Distribution", stats.PriceRangeBreakdown, " models")
	lines = appendBreakdown(lines, "Availability Status", stats.AvailabilityBreakdown, " models")

	lines = append(lines, "## Top Brands by Model Count")
	for _, b := range stats.TopBrandsByModels {
		lines = append(lines, bullet(b.Brand, b.ModelCount, " models"))
	}
	lines = append(lines, "")

	return strings.Join(lines, "\n")
}

func appendBreakdown(lines []string, title string, b *models.Breakdown, suffix string) []string {
	lines = append(lines, "## "+title)
	for _, k := range b.Keys() {
		lines = append(lines, bullet(k, b.Get(k), suffix))
	}
	return append(lines, "")
}

func bullet(key string, value interface{}, suffix string) string {
	return fmt.Sprintf("- **%s**: %v%s", key, value, suffix)
}

// PrintStatistics writes a boxed terminal summary of the statistics to w
func PrintStatistics(w io.Writer, stats *models.Statistics) {
	border := strings.Repeat("═", 55)
	thin := strings.Repeat("─", 55)

	fmt.Fprintf(w, "\n╔%s╗\n", border)
	fmt.Fprintf(w, "║%s║\n", center("ELECTRIC BIKE CATALOGUE STATISTICS", 55))
	fmt.Fprintf(w, "╚%s╝\n", border)

	fmt.Fprintf(w, "\n OVERVIEW\n%s\n", thin)
	fmt.Fprintf(w, "  Brands                  : %d\n", stats.Summary.TotalBrands)
	fmt.Fprintf(w, "  Models (variants)       : %d\n", stats.Summary.TotalModels)
	fmt.Fprintf(w, "  Generated               : %s\n", stats.Summary.GeneratedAt.Format(time.RFC3339))

	printBars(w, "BRANDS PER COUNTRY", thin, stats.CountryBreakdown)
	printBars(w, "POWER RANGES", thin, stats.PowerRangeBreakdown)
	printBars(w, "PRICE RANGES", thin, stats.PriceRangeBreakdown)
	printBars(w, "AVAILABILITY", thin, stats.AvailabilityBreakdown)

	if len(stats.TopBrandsByModels) > 0 {
		fmt.Fprintf(w, "\n TOP %d BRANDS BY MODEL COUNT\n%s\n", len(stats.TopBrandsByModels), thin)
		for i, b := range stats.TopBrandsByModels {
			fmt.Fprintf(w, "  %2d. %-35s %3d\n", i+1, truncate(b.Brand, 35), b.ModelCount)
		}
	}

	fmt.Fprintf(w, "\n%s\n\n", border)
}

func printBars(w io.Writer, title, thin string, b *models.Breakdown) {
	if b.Len() == 0 {
		return
	}
	fmt.Fprintf(w, "\n %s\n%s\n", title, thin)
	for _, k := range b.Keys() {
		n := b.Get(k)
		fmt.Fprintf(w, "  %-25s %3d  %s\n", truncate(k, 24)+":", n, strings.Repeat("▓", n))
	}
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
