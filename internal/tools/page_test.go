package tools

import (
	"strings"
	"testing"

	"github.com/plumeworks/siteagent/internal/site"
)

func TestAddPageFromTemplate(t *testing.T) {
	e := newExecutor()
	doc := testDoc(e)

	result := e.Execute(ToolAddPage, doc, mustInput(t, map[string]any{"templateId": "pricing"}))
	if !result.Success {
		t.Fatalf("add_page failed: %s", result.Message)
	}

	if len(result.Doc.Pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(result.Doc.Pages))
	}
	page := result.Doc.Pages[2]
	tpl, _ := e.reg.Template("pricing")
	if page.Name != tpl.Name || page.IsHome {
		t.Fatalf("unexpected page: %+v", page)
	}
	if len(page.Sections) != len(tpl.Sections) {
		t.Fatalf("expected %d sections from template, got %d", len(tpl.Sections), len(page.Sections))
	}
	for i, sec := range page.Sections {
		if sec.Order != i {
			t.Fatalf("template page order not dense: section %d has order %d", i, sec.Order)
		}
		if sec.Content == nil {
			t.Fatalf("template section %d has no content", i)
		}
	}
}

func TestAddPageUniqueSlug(t *testing.T) {
	e := newExecutor()
	doc := testDoc(e)

	result := e.Execute(ToolAddPage, doc, mustInput(t, map[string]any{
		"templateId": "blank",
		"name":       "About",
	}))
	if !result.Success {
		t.Fatalf("add_page failed: %s", result.Message)
	}
	page := result.Doc.Pages[2]
	if page.Slug != "about-2" {
		t.Fatalf("colliding slug should be suffixed, got %q", page.Slug)
	}
}

func TestAddPageUnknownTemplate(t *testing.T) {
	e := newExecutor()
	doc := testDoc(e)

	result := e.Execute(ToolAddPage, doc, mustInput(t, map[string]any{"templateId": "shop"}))
	if result.Success {
		t.Fatal("unknown template must fail")
	}
	if !strings.Contains(result.Message, "available templates") {
		t.Fatalf("failure should list valid templates: %q", result.Message)
	}
}

func TestRemovePageHomeIsProtected(t *testing.T) {
	e := newExecutor()
	doc := testDoc(e)

	result := e.Execute(ToolRemovePage, doc, mustInput(t, map[string]any{"pageId": "home"}))
	if result.Success {
		t.Fatal("removing the home page must fail")
	}
	if !strings.Contains(result.Message, "home page cannot be removed") {
		t.Fatalf("unexpected failure message: %q", result.Message)
	}
	if len(result.Doc.Pages) != 2 {
		t.Fatal("failed removal must leave the document unchanged")
	}
}

func TestRemovePagePrunesNavigation(t *testing.T) {
	e := newExecutor()
	doc := testDoc(e)
	doc.Navigation = &site.Navigation{
		Style: "horizontal",
		Links: []site.NavLink{
			{PageID: "home", Label: "Home"},
			{PageID: "about-page", Label: "About"},
		},
	}

	result := e.Execute(ToolRemovePage, doc, mustInput(t, map[string]any{"pageId": "about-page"}))
	if !result.Success {
		t.Fatalf("remove_page failed: %s", result.Message)
	}
	if len(result.Doc.Pages) != 1 {
		t.Fatalf("expected 1 page left, got %d", len(result.Doc.Pages))
	}
	links := result.Doc.Navigation.Links
	if len(links) != 1 || links[0].PageID != "home" {
		t.Fatalf("navigation link to the removed page must be pruned, got %v", links)
	}
}

func TestListPages(t *testing.T) {
	e := newExecutor()
	doc := testDoc(e)
	doc.Pages[0].Sections[2].Visible = false

	result := e.Execute(ToolListPages, doc, nil)
	if !result.Success {
		t.Fatalf("list_pages failed: %s", result.Message)
	}
	for _, want := range []string{"[home]", "about-page", `slug "about"`, "hero-1", "hidden"} {
		if !strings.Contains(result.Message, want) {
			t.Fatalf("listing missing %q:\n%s", want, result.Message)
		}
	}
	if result.Doc != doc {
		t.Fatal("list_pages is read-only and must return the input document")
	}
}
