package search

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"bikenode/models"
)

const usage = `Commands:
  search <query>        search brands by name or id
  country <query>       filter by headquarters country
  year <start> [end]    filter by founding year range (end defaults to this year)
  industry <query>      filter by industry or subcategory
  advanced              combine several filters interactively
  list                  list every brand
  stats                 show dataset statistics
  help                  show this message
  exit                  quit`

// maxLineBytes bounds a single command line
const maxLineBytes = 4 << 20

// Shell is the interactive brand search loop
type Shell struct {
	brands  []models.BrandMetadata
	scanner *bufio.Scanner
	in      io.Reader
	out     io.Writer
	closed  bool
}

// NewShell creates a shell reading commands from in and printing to out
func NewShell(brands []models.BrandMetadata, in io.Reader, out io.Writer) *Shell {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Shell{
		brands:  brands,
		scanner: scanner,
		in:      in,
		out:     out,
	}
}

// Run prompts for commands until "exit" or end of input
func (s *Shell) Run() error {
	fmt.Fprintf(s.out, "Brand search: %d brands loaded. Type 'help' for commands.\n", len(s.brands))
	for {
		line, ok := s.ask("> ")
		if !ok {
			break
		}
		if quit := s.Execute(line); quit {
			break
		}
	}
	if err := s.scanner.Err(); err != nil {
		return fmt.Errorf("read command: %w", err)
	}
	return nil
}

// Close releases the input if it is closable. Safe to call more than once.
func (s *Shell) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if c, ok := s.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ask prints prompt and returns the next trimmed input line
func (s *Shell) ask(prompt string) (string, bool) {
	if s.closed {
		return "", false
	}
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.scanner.Text()), true
}

// Execute runs one command line and reports whether the loop should stop
func (s *Shell) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	query := strings.Join(args, " ")

	switch cmd {
	case "exit", "quit":
		fmt.Fprintln(s.out, "Goodbye!")
		return true
	case "help":
		fmt.Fprintln(s.out, usage)
	case "list":
		PrintBrands(s.out, "All brands", s.brands)
	case "stats":
		PrintStats(s.out, ComputeStats(s.brands))
	case "search", "country", "industry":
		if query == "" {
			fmt.Fprintf(s.out, "Usage: %s <query>\n", cmd)
			return false
		}
		s.runQuery(cmd, query)
	case "year":
		if len(args) == 0 || len(args) > 2 {
			fmt.Fprintln(s.out, "Usage: year <start> [end]")
			return false
		}
		s.runYear(args)
	case "advanced":
		s.runAdvanced()
	default:
		fmt.Fprintf(s.out, "Unknown command %q.\n%s\n", cmd, usage)
	}
	return false
}

func (s *Shell) runQuery(cmd, query string) {
	switch cmd {
	case "search":
		PrintBrands(s.out, fmt.Sprintf("Brands matching %q", query), SearchByName(s.brands, query))
	case "country":
		PrintBrands(s.out, fmt.Sprintf("Brands in %q", query), FilterByCountry(s.brands, query))
	case "industry":
		PrintBrands(s.out, fmt.Sprintf("Brands in industry %q", query), FilterByIndustry(s.brands, query))
	}
}

// runYear filters by founding year. Unparseable years match nothing.
func (s *Shell) runYear(args []string) {
	title := "Brands founded " + strings.Join(args, "-")
	start, err := strconv.Atoi(args[0])
	if err != nil {
		PrintBrands(s.out, title, nil)
		return
	}
	end := 0
	if len(args) == 2 {
		if end, err = strconv.Atoi(args[1]); err != nil {
			PrintBrands(s.out, title, nil)
			return
		}
	}
	PrintBrands(s.out, title, FilterByFoundingYear(s.brands, start, end))
}

func (s *Shell) runAdvanced() {
	fmt.Fprintln(s.out, "Advanced search (press Enter to skip a filter)")
	var c Criteria
	var ok bool
	if c.Name, ok = s.ask("Name: "); !ok {
		return
	}
	if c.Country, ok = s.ask("Country: "); !ok {
		return
	}
	for _, q := range []struct {
		prompt string
		dst    **int
		lower  bool
	}{
		{"Founded after (year): ", &c.FoundedAfter, true},
		{"Founded before (year): ", &c.FoundedBefore, false},
	} {
		answer, ok := s.ask(q.prompt)
		if !ok {
			return
		}
		if answer != "" {
			*q.dst = parseBound(answer, q.lower)
		}
	}
	if c.Industry, ok = s.ask("Industry: "); !ok {
		return
	}
	for _, q := range []struct {
		prompt string
		dst    **bool
	}{
		{"Has website (y/n): ", &c.HasWebsite},
		{"Has social media (y/n): ", &c.HasSocialMedia},
	} {
		answer, ok := s.ask(q.prompt)
		if !ok {
			return
		}
		*q.dst = parseYesNo(answer)
	}
	PrintBrands(s.out, "Advanced search results", AdvancedSearch(s.brands, c))
}

// parseBound parses a year bound. A non-numeric answer yields a bound no
// founding year can satisfy, so the search matches nothing.
func parseBound(s string, lower bool) *int {
	y, err := strconv.Atoi(s)
	if err != nil {
		y = math.MinInt32
		if lower {
			y = math.MaxInt32
		}
	}
	return &y
}

func parseYesNo(s string) *bool {
	switch strings.ToLower(s) {
	case "y", "yes", "true":
		v := true
		return &v
	case "n", "no", "false":
		v := false
		return &v
	}
	return nil
}

// PrintBrands writes a numbered result listing to w
func PrintBrands(w io.Writer, title string, brands []models.BrandMetadata) {
	fmt.Fprintf(w, "\n%s: %d found\n", title, len(brands))
	if len(brands) == 0 {
		fmt.Fprintln(w, "  No brands found.")
		return
	}
	for i := range brands {
		fmt.Fprintf(w, "%3d. %s\n", i+1, FormatBrand(&brands[i]))
	}
}

// FormatBrand renders one brand as a multi-line summary
func FormatBrand(b *models.BrandMetadata) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s)", b.BrandName, b.BrandID)

	founded := "unknown"
	if y, ok := b.FoundingYear(); ok {
		founded = strconv.Itoa(y)
	}
	country := b.Headquarters.Country
	if country == "" {
		country = "unknown"
	}
	fmt.Fprintf(&sb, "\n     Founded: %s | Country: %s", founded, country)

	if b.Industry != "" {
		industry := b.Industry
		if b.IndustrySubcategory != "" {
			industry += " / " + b.IndustrySubcategory
		}
		fmt.Fprintf(&sb, "\n     Industry: %s", industry)
	}
	if b.Website != "" {
		fmt.Fprintf(&sb, "\n     Website: %s", b.Website)
	}
	return sb.String()
}
