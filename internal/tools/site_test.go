package tools

import (
	"strings"
	"testing"

	"github.com/plumeworks/siteagent/internal/site"
)

func TestCreateFullSiteFromNothing(t *testing.T) {
	e := newExecutor()

	result := e.Execute(ToolCreateFullSite, nil, mustInput(t, map[string]any{
		"siteName": "Fresh Bakery",
		"theme":    map[string]any{"presetKey": "sunset"},
		"sections": []map[string]any{
			{"type": "hero", "content": map[string]any{"headline": "Fresh bread daily"}},
			{"type": "carousel"},
			{"type": "contact"},
		},
	}))
	if !result.Success {
		t.Fatalf("create_full_site failed: %s", result.Message)
	}

	doc := result.Doc
	if doc.SiteName != "Fresh Bakery" {
		t.Fatalf("unexpected site name %q", doc.SiteName)
	}
	preset, _ := e.reg.Preset("sunset")
	if doc.Theme.PrimaryColor != preset.PrimaryColor {
		t.Fatalf("theme preset not applied, got %+v", doc.Theme)
	}

	home := doc.HomePage()
	if home == nil || len(home.Sections) != 2 {
		t.Fatalf("expected 2 sections on the home page, got %+v", home)
	}
	if home.Sections[0].Content["headline"] != "Fresh bread daily" {
		t.Fatal("seed content must override the type default")
	}
	if !strings.Contains(result.Message, "carousel") {
		t.Fatalf("skipped unknown types must be reported: %q", result.Message)
	}
}

func TestCreateFullSiteRequiresNameWhenEmpty(t *testing.T) {
	e := newExecutor()

	result := e.Execute(ToolCreateFullSite, nil, mustInput(t, map[string]any{
		"sections": []map[string]any{{"type": "hero"}},
	}))
	if result.Success {
		t.Fatal("creating a site without a name must fail")
	}
}

func TestCreateFullSiteMergesIntoExisting(t *testing.T) {
	e := newExecutor()
	doc := testDoc(e)
	doc.Pages[0].Sections[0].Content["headline"] = "Hand-written headline"

	result := e.Execute(ToolCreateFullSite, doc, mustInput(t, map[string]any{
		"siteName": "Acme Reborn",
		"sections": []map[string]any{
			{"type": "hero", "content": map[string]any{"subheadline": "Now with more"}},
			{"type": "gallery"},
		},
	}))
	if !result.Success {
		t.Fatalf("create_full_site failed: %s", result.Message)
	}

	out := result.Doc
	if out.SiteName != "Acme Reborn" {
		t.Fatal("site name should be updated on merge")
	}

	hero := out.HomePage().Sections[0]
	if hero.Content["headline"] != "Hand-written headline" {
		t.Fatal("existing content must be preserved, not replaced")
	}
	if hero.Content["subheadline"] != "Now with more" {
		t.Fatal("same-type seed content must merge into the existing section")
	}

	sections := out.HomePage().Sections
	last := sections[len(sections)-1]
	if last.Type != "gallery" {
		t.Fatalf("new types must be appended to the home page, got %s", last.Type)
	}
	if out.TotalSections() != doc.TotalSections()+1 {
		t.Fatalf("expected exactly one new section, got %d vs %d", out.TotalSections(), doc.TotalSections())
	}
	if !strings.Contains(result.Message, "preserved") {
		t.Fatalf("merge message should state that existing sections were preserved: %q", result.Message)
	}
}

func TestUpdateNavigationReplacesLinks(t *testing.T) {
	e := newExecutor()
	doc := testDoc(e)
	doc.Navigation = &site.Navigation{Links: []site.NavLink{{PageID: "home", Label: "Old"}}}

	result := e.Execute(ToolUpdateNavigation, doc, mustInput(t, map[string]any{
		"style": "sidebar",
		"links": []map[string]any{
			{"pageId": "about-page", "label": "About"},
		},
	}))
	if !result.Success {
		t.Fatalf("update_navigation failed: %s", result.Message)
	}
	nav := result.Doc.Navigation
	if nav.Style != "sidebar" {
		t.Fatalf("style not applied: %q", nav.Style)
	}
	if len(nav.Links) != 1 || nav.Links[0].Label != "About" {
		t.Fatalf("links must replace wholesale, got %v", nav.Links)
	}
}

func TestUpdateNavigationRejectsDanglingLink(t *testing.T) {
	e := newExecutor()
	doc := testDoc(e)

	result := e.Execute(ToolUpdateNavigation, doc, mustInput(t, map[string]any{
		"links": []map[string]any{{"pageId": "ghost", "label": "Ghost"}},
	}))
	if result.Success {
		t.Fatal("link to a missing page must fail")
	}
	if !strings.Contains(result.Message, "ghost") {
		t.Fatalf("failure should name the bad pageId: %q", result.Message)
	}
}

func TestUpdateNavigationRejectsBadStyle(t *testing.T) {
	e := newExecutor()
	doc := testDoc(e)

	result := e.Execute(ToolUpdateNavigation, doc, mustInput(t, map[string]any{
		"style": "vertical",
		"links": []map[string]any{{"pageId": "home", "label": "Home"}},
	}))
	if result.Success {
		t.Fatal("invalid navigation style must fail")
	}
}
