package search

import (
	"fmt"
	"io"
	"strings"

	"bikenode/models"
)

// RunOnce handles one-shot invocations: "search <query>", "country <query>" or "stats".
// Anything else prints usage. It always returns normally.
func RunOnce(brands []models.BrandMetadata, args []string, out io.Writer) {
	cmd := strings.ToLower(args[0])
	query := strings.TrimSpace(strings.Join(args[1:], " "))

	switch {
	case cmd == "search" && query != "":
		PrintBrands(out, fmt.Sprintf("Brands matching %q", query), SearchByName(brands, query))
	case cmd == "country" && query != "":
		PrintBrands(out, fmt.Sprintf("Brands in %q", query), FilterByCountry(brands, query))
	case cmd == "stats":
		PrintStats(out, ComputeStats(brands))
	default:
		fmt.Fprintln(out, "Usage: brand-search [search <query> | country <query> | stats]")
		fmt.Fprintln(out, "Run without arguments for the interactive shell.")
	}
}
