package search

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

type closeTracker struct {
	io.Reader
	closed int
}

func (c *closeTracker) Close() error {
	c.closed++
	return nil
}

func runShell(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	sh := NewShell(loadBrands(t), strings.NewReader(input), &out)
	if err := sh.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestShellCommands(t *testing.T) {
	out := runShell(t, "search sur\ncountry spain\nindustry folding\nyear 1970 1975\nexit\n")
	for _, want := range []string{
		`Brands matching "sur": 1 found`,
		"Sur-Ron (sur-ron)",
		`Brands in "spain": 1 found`,
		`Brands in industry "folding": 1 found`,
		"Brands founded 1970-1975: 2 found",
		"Goodbye!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q\n%s", want, out)
		}
	}
}

func TestShellKeepsGoingAfterBadInput(t *testing.T) {
	out := runShell(t, "bogus\nsearch\nyear\nyear abc\n\nlist\nexit\nstats\n")
	if !strings.Contains(out, `Unknown command "bogus"`) {
		t.Error("missing unknown command message")
	}
	if !strings.Contains(out, "Usage: search <query>") {
		t.Error("missing search usage")
	}
	if !strings.Contains(out, "Usage: year <start> [end]") {
		t.Error("missing year usage")
	}
	if !strings.Contains(out, "Brands founded abc: 0 found") {
		t.Errorf("malformed year should match nothing:\n%s", out)
	}
	if !strings.Contains(out, "All brands: 11 found") {
		t.Error("list did not run after errors")
	}
	if strings.Contains(out, "BRAND DATABASE STATISTICS") {
		t.Error("command after exit was executed")
	}
}

func TestShellAdvanced(t *testing.T) {
	input := strings.Join([]string{
		"advanced",
		"",         // name
		"united",   // country
		"1970",     // founded after
		"",         // founded before
		"bicycles", // industry
		"y",        // website
		"yes",      // social media
		"exit",
	}, "\n") + "\n"
	out := runShell(t, input)
	if !strings.Contains(out, "Advanced search results: 3 found") {
		t.Errorf("unexpected advanced output:\n%s", out)
	}
	for _, name := range []string{"Super73", "Trek Bicycle Corporation", "Specialized"} {
		if !strings.Contains(out, name) {
			t.Errorf("missing %s", name)
		}
	}
}

func TestShellAdvancedMalformedYear(t *testing.T) {
	out := runShell(t, "advanced\n\n\nnineteen\n\n\n\n\nexit\n")
	if !strings.Contains(out, "Advanced search results: 0 found") {
		t.Errorf("malformed year should match nothing:\n%s", out)
	}
}

func TestShellStopsAtEOF(t *testing.T) {
	out := runShell(t, "advanced\nsur\n")
	if strings.Contains(out, "Advanced search results") {
		t.Error("advanced search ran with truncated input")
	}
}

func TestShellClose(t *testing.T) {
	in := &closeTracker{Reader: strings.NewReader("list\n")}
	sh := NewShell(loadBrands(t), in, io.Discard)
	if err := sh.Close(); err != nil {
		t.Fatal(err)
	}
	if err := sh.Close(); err != nil {
		t.Fatal(err)
	}
	if in.closed != 1 {
		t.Errorf("closed %d times, want 1", in.closed)
	}
	if _, ok := sh.ask("> "); ok {
		t.Error("ask succeeded after Close")
	}
}

func TestRunOnce(t *testing.T) {
	brands := loadBrands(t)
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"search", "sur"}, `Brands matching "sur": 1 found`},
		{[]string{"country", "united", "kingdom"}, `Brands in "united kingdom": 1 found`},
		{[]string{"stats"}, "BRAND DATABASE STATISTICS"},
		{[]string{"search"}, "Usage: brand-search"},
		{[]string{"frobnicate"}, "Usage: brand-search"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			var out bytes.Buffer
			RunOnce(brands, tt.args, &out)
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out.String())
			}
		})
	}
}

func TestShellSurvivesLongLine(t *testing.T) {
	long := "search " + strings.Repeat("x", 200*1024)
	var out bytes.Buffer
	sh := NewShell(loadBrands(t), strings.NewReader(long+"\nlist\nexit\n"), &out)
	if err := sh.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "All brands: 11 found") {
		t.Error("loop ended before the command after the long line")
	}
	if !strings.Contains(out.String(), "Goodbye!") {
		t.Error("loop did not reach exit")
	}
}
