package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/plumeworks/siteagent/internal/site"
)

type addPageInput struct {
	TemplateID string `json:"templateId"`
	Name       string `json:"name,omitempty"`
}

// addPage instantiates a page from the template catalog. Slugs are kept
// unique by auto-suffixing on collision.
func (e *Executor) addPage(doc *site.Document, input json.RawMessage) Result {
	var in addPageInput
	if err := parseInput(input, &in); err != nil {
		return failure(doc, "%v", err)
	}

	tpl, ok := e.reg.Template(in.TemplateID)
	if !ok {
		return failure(doc, "unknown page template %q; available templates: %s",
			in.TemplateID, strings.Join(e.reg.TemplateIDs(), ", "))
	}

	work := doc.Clone()
	work.EnsureMultiPage()

	name := in.Name
	if name == "" {
		name = tpl.Name
	}
	slug := site.Slugify(name)
	if slug == "" {
		slug = tpl.Slug
	}
	slug = uniqueSlug(work, slug)

	page := site.Page{
		ID:       site.NewPageID(slug),
		Name:     name,
		Slug:     slug,
		Sections: []site.Section{},
	}
	for _, ts := range tpl.Sections {
		def, ok := e.reg.Definition(ts.Type)
		if !ok {
			// Template catalog and section catalog live in the same
			// registry; a miss here is a programming error, not user input.
			continue
		}
		page.Sections = append(page.Sections, site.Section{
			ID:      site.NewSectionID(ts.Type),
			Type:    ts.Type,
			Visible: true,
			Content: DeepMerge(def.DefaultContent, ts.Content),
		})
	}
	page.Renumber()
	work.Pages = append(work.Pages, page)

	return success(work, "Added page %q (id %s, slug %q) from template %q with %d section(s).",
		page.Name, page.ID, page.Slug, tpl.ID, len(page.Sections))
}

func uniqueSlug(d *site.Document, slug string) string {
	if slug == "" {
		slug = "page"
	}
	taken := make(map[string]bool, len(d.Pages))
	for i := range d.Pages {
		taken[d.Pages[i].Slug] = true
	}
	out := slug
	for n := 2; taken[out]; n++ {
		out = fmt.Sprintf("%s-%d", slug, n)
	}
	return out
}

type removePageInput struct {
	PageID string `json:"pageId"`
}

// removePage deletes a page. The home page can never be removed; navigation
// links pointing at the removed page are pruned.
func (e *Executor) removePage(doc *site.Document, input json.RawMessage) Result {
	var in removePageInput
	if err := parseInput(input, &in); err != nil {
		return failure(doc, "%v", err)
	}
	if in.PageID == "" {
		return failure(doc, "pageId is required")
	}

	work := doc.Clone()
	work.EnsureMultiPage()

	idx := -1
	for i := range work.Pages {
		if work.Pages[i].ID == in.PageID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return failure(doc, "page %q not found", in.PageID)
	}
	if work.Pages[idx].IsHome {
		return failure(doc, "the home page cannot be removed")
	}

	removed := work.Pages[idx]
	work.Pages = append(work.Pages[:idx], work.Pages[idx+1:]...)

	if work.Navigation != nil {
		kept := work.Navigation.Links[:0]
		for _, link := range work.Navigation.Links {
			if link.PageID != removed.ID {
				kept = append(kept, link)
			}
		}
		work.Navigation.Links = kept
	}

	return success(work, "Removed page %q (slug %q) and any navigation links to it. %d page(s) remain.",
		removed.Name, removed.Slug, len(work.Pages))
}

// listPages is read-only; the orchestration loop uses it to ground its
// answers in the actual document structure.
func (e *Executor) listPages(doc *site.Document) Result {
	if doc.IsLegacy() {
		return success(doc, "Legacy single-page site %q with %d root section(s): %s",
			doc.SiteName, len(doc.Sections), strings.Join(sectionSummaries(doc.Sections), "; "))
	}

	var lines []string
	for i := range doc.Pages {
		page := &doc.Pages[i]
		marker := ""
		if page.IsHome {
			marker = " [home]"
		}
		lines = append(lines, fmt.Sprintf("- %s (id %s, slug %q)%s: %s",
			page.Name, page.ID, page.Slug, marker, strings.Join(sectionSummaries(page.Sections), "; ")))
	}
	if len(lines) == 0 {
		return success(doc, "The site has no pages yet.")
	}
	return success(doc, "Pages of %q:\n%s", doc.SiteName, strings.Join(lines, "\n"))
}

func sectionSummaries(sections []site.Section) []string {
	if len(sections) == 0 {
		return []string{"(no sections)"}
	}
	out := make([]string, 0, len(sections))
	for i := range sections {
		sec := &sections[i]
		hidden := ""
		if !sec.Visible {
			hidden = ", hidden"
		}
		out = append(out, fmt.Sprintf("%s %s (order %d%s)", sec.Type, sec.ID, sec.Order, hidden))
	}
	return out
}
