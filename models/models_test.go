package models

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestBreakdownOrderAndCounts(t *testing.T) {
	b := NewBreakdown("low", "high")
	b.Inc("high")
	b.Inc("mid")
	b.Inc("high")

	if got := strings.Join(b.Keys(), ","); got != "low,high,mid" {
		t.Errorf("Keys = %s, want low,high,mid", got)
	}
	if b.Get("high") != 2 || b.Get("low") != 0 || b.Get("missing") != 0 {
		t.Errorf("counts = %d %d %d", b.Get("high"), b.Get("low"), b.Get("missing"))
	}
	if b.Total() != 3 {
		t.Errorf("Total = %d, want 3", b.Total())
	}
}

func TestBreakdownKeysIsCopy(t *testing.T) {
	b := NewBreakdown("a")
	keys := b.Keys()
	keys[0] = "z"
	if b.Keys()[0] != "a" {
		t.Error("Keys exposed internal slice")
	}
}

func TestBreakdownMarshalJSONKeepsOrder(t *testing.T) {
	b := NewBreakdown()
	b.Inc("Zeta")
	b.Add("Alpha", 3)
	got, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"Zeta":1,"Alpha":3}` {
		t.Errorf("json = %s", got)
	}
}

func TestNilBreakdown(t *testing.T) {
	var b *Breakdown
	if b.Len() != 0 || b.Total() != 0 || b.Get("x") != 0 || b.Keys() != nil {
		t.Error("nil breakdown should read as empty")
	}
}

func TestCatalogueLookup(t *testing.T) {
	cat, err := NewCatalogue(
		Brand{Name: "A", Models: []Model{{Name: "m", Variants: []Variant{{Name: "x"}, {Name: "y"}}}}},
		Brand{Name: "B"},
	)
	if err != nil {
		t.Fatal(err)
	}
	a, ok := cat.Brand("A")
	if !ok || a.VariantCount() != 2 {
		t.Errorf("Brand(A) = %+v, %v", a, ok)
	}
	if _, ok := cat.Brand("C"); ok {
		t.Error("Brand(C) should be missing")
	}
	if cat.Len() != 2 {
		t.Errorf("Len = %d", cat.Len())
	}
}

func TestCatalogueDuplicate(t *testing.T) {
	_, err := NewCatalogue(Brand{Name: "A"}, Brand{Name: "A"})
	if !errors.Is(err, ErrDuplicateBrand) {
		t.Errorf("err = %v, want ErrDuplicateBrand", err)
	}
}

func TestBrandMetadataHelpers(t *testing.T) {
	year := 2001
	b := BrandMetadata{Founding: Founding{Year: &year}, SocialMedia: SocialMedia{YouTube: "yt"}}
	if y, ok := b.FoundingYear(); !ok || y != 2001 {
		t.Errorf("FoundingYear = %d,%v", y, ok)
	}
	if b.HasSocialMedia() {
		t.Error("youtube alone should not count as social media")
	}
	b.SocialMedia.Twitter = "tw"
	if !b.HasSocialMedia() {
		t.Error("twitter should count as social media")
	}
	var empty BrandMetadata
	if _, ok := empty.FoundingYear(); ok {
		t.Error("missing year reported as known")
	}
}
