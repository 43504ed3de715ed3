package site

import (
	"encoding/json"
	"testing"
)

func TestDecodeLegacySinglePage(t *testing.T) {
	raw := `{
		"siteName": "Acme",
		"sections": [
			{"id": "hero-1", "type": "hero", "order": 0, "content": {"headline": "Hi"}},
			{"id": "cta-1", "type": "cta", "order": 1, "content": {"headline": "Go"}}
		]
	}`

	doc, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !doc.IsLegacy() {
		t.Fatal("document with root sections and no pages should be legacy")
	}
	if doc.TotalSections() != 2 {
		t.Fatalf("expected 2 sections, got %d", doc.TotalSections())
	}

	doc.EnsureMultiPage()
	if doc.IsLegacy() {
		t.Fatal("document should no longer be legacy after EnsureMultiPage")
	}
	home := doc.HomePage()
	if home == nil {
		t.Fatal("expected a home page")
	}
	if home.ID != "home" || home.Slug != "" || !home.IsHome {
		t.Fatalf("unexpected home page: %+v", home)
	}
	if len(home.Sections) != 2 {
		t.Fatalf("expected sections moved to home page, got %d", len(home.Sections))
	}
	if doc.Sections != nil {
		t.Fatal("root sections should be cleared after conversion")
	}
	for i, sec := range home.Sections {
		if sec.Order != i {
			t.Fatalf("section %d has order %d", i, sec.Order)
		}
	}
}

func TestEnsureMultiPageIsIdempotent(t *testing.T) {
	doc := &Document{Pages: []Page{{ID: "home", IsHome: true}}}
	doc.EnsureMultiPage()
	if len(doc.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(doc.Pages))
	}
}

func TestSectionVisibleDefaultsTrue(t *testing.T) {
	var sec Section
	if err := json.Unmarshal([]byte(`{"id":"a","type":"hero","content":{}}`), &sec); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if !sec.Visible {
		t.Fatal("visible should default to true when absent")
	}

	if err := json.Unmarshal([]byte(`{"id":"a","type":"hero","visible":false,"content":{}}`), &sec); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if sec.Visible {
		t.Fatal("explicit visible=false must survive decoding")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	doc := &Document{
		SiteName: "Acme",
		Pages: []Page{{
			ID: "home", Name: "Home", IsHome: true,
			Sections: []Section{{
				ID: "hero-1", Type: "hero", Visible: true,
				Content: map[string]any{"headline": "Hi", "nested": map[string]any{"k": "v"}},
			}},
		}},
	}

	clone := doc.Clone()
	clone.SiteName = "Other"
	clone.Pages[0].Sections[0].Content["headline"] = "Changed"
	nested := clone.Pages[0].Sections[0].Content["nested"].(map[string]any)
	nested["k"] = "changed"

	if doc.SiteName != "Acme" {
		t.Fatal("clone mutated the original site name")
	}
	if doc.Pages[0].Sections[0].Content["headline"] != "Hi" {
		t.Fatal("clone mutated the original section content")
	}
	if doc.Pages[0].Sections[0].Content["nested"].(map[string]any)["k"] != "v" {
		t.Fatal("clone shares nested content with the original")
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"About Us":        "about-us",
		"  Pricing  ":     "pricing",
		"FAQ & Contact!!": "faq-contact",
		"---":             "",
		"Überblick":       "berblick",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewSectionIDCarriesType(t *testing.T) {
	id := NewSectionID("hero")
	if len(id) <= len("hero-") || id[:5] != "hero-" {
		t.Fatalf("unexpected section id %q", id)
	}
	if id == NewSectionID("hero") {
		t.Fatal("section ids should be unique")
	}
}
