package agent

import (
	"strings"
	"testing"

	"github.com/plumeworks/siteagent/internal/schema"
	"github.com/plumeworks/siteagent/internal/site"
)

func TestBuildSystemPromptEmptySite(t *testing.T) {
	reg := schema.NewRegistry()
	prompt := BuildSystemPrompt(reg, nil)

	if !strings.Contains(prompt, "(no site exists yet)") {
		t.Fatal("prompt should state that no site exists")
	}
	for _, want := range []string{"hero:", "footer:", "create_full_site", "list_pages"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

func TestBuildSystemPromptEmbedsDocument(t *testing.T) {
	reg := schema.NewRegistry()
	doc := &site.Document{
		SiteName: "Acme Tools",
		Pages: []site.Page{{ID: "home", Name: "Home", IsHome: true, Sections: []site.Section{
			{ID: "hero-1", Type: "hero", Visible: true, Content: map[string]any{"headline": "Hi"}},
		}}},
	}

	prompt := BuildSystemPrompt(reg, doc)
	if !strings.Contains(prompt, `"siteName": "Acme Tools"`) {
		t.Fatal("prompt should embed the document JSON")
	}
	if !strings.Contains(prompt, "hero-1") {
		t.Fatal("prompt should include section ids the model can reference")
	}
}
