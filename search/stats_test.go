package search

import (
	"bytes"
	"strings"
	"testing"
)

func TestComputeStats(t *testing.T) {
	brands := loadBrands(t)
	st := ComputeStats(brands)

	if st.Total != 11 {
		t.Errorf("Total = %d, want 11", st.Total)
	}
	if st.WithWebsite != 9 {
		t.Errorf("WithWebsite = %d, want 9", st.WithWebsite)
	}
	if st.WithSocialMedia != 7 {
		t.Errorf("WithSocialMedia = %d, want 7", st.WithSocialMedia)
	}
	if st.WithFoundingYear != 10 {
		t.Errorf("WithFoundingYear = %d, want 10", st.WithFoundingYear)
	}
	if keys := st.Countries.Keys(); keys[0] != "United States" || st.Countries.Get("United States") != 4 {
		t.Errorf("Countries = %v", keys)
	}
	if got := strings.Join(st.Decades.Keys(), ","); got != "1930s,1970s,2000s,2010s" {
		t.Errorf("Decades = %s", got)
	}
	if st.Decades.Get("1970s") != 4 {
		t.Errorf("1970s = %d, want 4", st.Decades.Get("1970s"))
	}
}

func TestPrintStats(t *testing.T) {
	var buf bytes.Buffer
	PrintStats(&buf, ComputeStats(loadBrands(t)))
	out := buf.String()
	for _, want := range []string{"Total brands", "TOP COUNTRIES", "United States:", "BY DECADE FOUNDED", "1970s:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
