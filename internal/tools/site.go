package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/plumeworks/siteagent/internal/site"
)

type sectionSeed struct {
	Type    string         `json:"type"`
	Content map[string]any `json:"content,omitempty"`
}

type createFullSiteInput struct {
	SiteName string            `json:"siteName"`
	Theme    *updateThemeInput `json:"theme,omitempty"`
	Sections []sectionSeed     `json:"sections,omitempty"`
}

// createFullSite populates an empty document from scratch. On a document that
// already has content it merges instead of replacing: existing sections are
// preserved, input sections whose type already exists are content-merged into
// the existing section, and new types are appended. Naively replacing here
// would silently discard user edits, which is the one thing this tool must
// never do.
func (e *Executor) createFullSite(doc *site.Document, input json.RawMessage) Result {
	var in createFullSiteInput
	if err := parseInput(input, &in); err != nil {
		return failure(doc, "%v", err)
	}

	if doc.Empty() {
		return e.populateEmptySite(doc, in)
	}
	return e.mergeIntoExistingSite(doc, in)
}

func (e *Executor) populateEmptySite(doc *site.Document, in createFullSiteInput) Result {
	if strings.TrimSpace(in.SiteName) == "" {
		return failure(doc, "siteName is required when creating a new site")
	}

	work := doc.Clone()
	if work == nil {
		work = &site.Document{}
	}
	work.SiteName = in.SiteName
	work.Theme = e.buildTheme(work.Theme, in.Theme)
	work.EnsureMultiPage()

	home := work.HomePage()
	added, skipped := e.appendSeeds(home, in.Sections)

	msg := fmt.Sprintf("Created site %q with %d section(s) on the home page.", work.SiteName, len(added))
	if len(added) > 0 {
		msg += " Sections: " + strings.Join(added, ", ") + "."
	}
	if len(skipped) > 0 {
		msg += " Skipped unknown section type(s): " + strings.Join(skipped, ", ") + "."
	}
	return success(work, "%s", msg)
}

func (e *Executor) mergeIntoExistingSite(doc *site.Document, in createFullSiteInput) Result {
	work := doc.Clone()

	if strings.TrimSpace(in.SiteName) != "" {
		work.SiteName = in.SiteName
	}
	if in.Theme != nil {
		work.Theme = e.buildTheme(work.Theme, in.Theme)
	}

	var merged, appended, skipped []string
	var pendingSeeds []sectionSeed
	for _, seed := range in.Sections {
		if _, ok := e.reg.Definition(seed.Type); !ok {
			skipped = append(skipped, seed.Type)
			continue
		}
		if ref, ok := firstSectionOfType(work, seed.Type); ok {
			sec := ref.section()
			sec.Content = DeepMerge(sec.Content, seed.Content)
			merged = append(merged, fmt.Sprintf("%s (%s)", seed.Type, sec.ID))
			continue
		}
		pendingSeeds = append(pendingSeeds, seed)
	}

	if len(pendingSeeds) > 0 {
		work.EnsureMultiPage()
		home := work.HomePage()
		added, _ := e.appendSeeds(home, pendingSeeds)
		appended = added
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("Site %q already had content, so existing sections were preserved.", work.SiteName))
	if len(merged) > 0 {
		parts = append(parts, "Merged content into: "+strings.Join(merged, ", ")+".")
	}
	if len(appended) > 0 {
		parts = append(parts, "Appended new sections: "+strings.Join(appended, ", ")+".")
	}
	if len(merged) == 0 && len(appended) == 0 {
		parts = append(parts, "No section changes were needed.")
	}
	if len(skipped) > 0 {
		parts = append(parts, "Skipped unknown section type(s): "+strings.Join(skipped, ", ")+".")
	}
	return success(work, "%s", strings.Join(parts, " "))
}

// appendSeeds adds seed sections to a page in input order, merging seed
// content over each type's default payload. Unknown types are reported, not
// fatal, so one bad entry cannot void the whole call.
func (e *Executor) appendSeeds(page *site.Page, seeds []sectionSeed) (added, skipped []string) {
	for _, seed := range seeds {
		def, ok := e.reg.Definition(seed.Type)
		if !ok {
			skipped = append(skipped, seed.Type)
			continue
		}
		sec := site.Section{
			ID:      site.NewSectionID(seed.Type),
			Type:    seed.Type,
			Visible: true,
			Content: DeepMerge(def.DefaultContent, seed.Content),
		}
		page.Sections = append(page.Sections, sec)
		added = append(added, fmt.Sprintf("%s (%s)", seed.Type, sec.ID))
	}
	page.Renumber()
	return added, skipped
}

func (e *Executor) buildTheme(current site.Theme, patch *updateThemeInput) site.Theme {
	out := current
	if out == (site.Theme{}) {
		out = themeFromPreset(e.reg.DefaultTheme())
	}
	if patch == nil {
		return out
	}
	if patch.PresetKey != "" {
		if preset, ok := e.reg.Preset(patch.PresetKey); ok {
			out = themeFromPreset(preset)
		}
	}
	applyOverride(&out.PrimaryColor, patch.PrimaryColor)
	applyOverride(&out.SecondaryColor, patch.SecondaryColor)
	applyOverride(&out.BackgroundColor, patch.BackgroundColor)
	applyOverride(&out.TextColor, patch.TextColor)
	applyOverride(&out.FontFamily, patch.FontFamily)
	return out
}

type updateNavigationInput struct {
	Links []site.NavLink `json:"links"`
	Style string         `json:"style,omitempty"`
}

// updateNavigation replaces the navigation links and style wholesale. It does
// not require every page to have a link; navigation may intentionally omit
// pages.
func (e *Executor) updateNavigation(doc *site.Document, input json.RawMessage) Result {
	var in updateNavigationInput
	if err := parseInput(input, &in); err != nil {
		return failure(doc, "%v", err)
	}

	if in.Style != "" && !validNavigationStyle(in.Style) {
		return failure(doc, "invalid navigation style %q; expected one of: %s",
			in.Style, strings.Join(navigationStyles(), ", "))
	}

	work := doc.Clone()
	work.EnsureMultiPage()

	for i, link := range in.Links {
		if link.PageID == "" {
			return failure(doc, "links[%d] is missing pageId", i)
		}
		if work.PageByID(link.PageID) == nil {
			return failure(doc, "links[%d] pageId %q does not resolve to a page; use list_pages to see valid ids", i, link.PageID)
		}
		if link.Label == "" {
			return failure(doc, "links[%d] is missing label", i)
		}
	}

	if work.Navigation == nil {
		work.Navigation = &site.Navigation{}
	}
	if in.Style != "" {
		work.Navigation.Style = in.Style
	}
	work.Navigation.Links = append([]site.NavLink(nil), in.Links...)

	return success(work, "Navigation updated: %d link(s), style %q.", len(in.Links), work.Navigation.Style)
}
