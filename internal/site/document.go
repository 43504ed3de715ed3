// Package site holds the in-memory site document model, its validator, and
// the sanitizer that repairs invalid documents. Persistence and rendering are
// the caller's business; this package only deals in document values.
package site

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Theme holds the document-level visual settings.
type Theme struct {
	PrimaryColor    string `json:"primaryColor,omitempty"`
	SecondaryColor  string `json:"secondaryColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	FontFamily      string `json:"fontFamily,omitempty"`
}

// Section is one content block on a page.
type Section struct {
	ID      string         `json:"id"`
	Type    string         `json:"type"`
	Order   int            `json:"order"`
	Visible bool           `json:"visible"`
	Content map[string]any `json:"content"`
}

// UnmarshalJSON defaults visible to true when the key is absent.
func (s *Section) UnmarshalJSON(data []byte) error {
	type alias Section
	aux := struct {
		Visible *bool `json:"visible"`
		*alias
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Visible == nil {
		s.Visible = true
	} else {
		s.Visible = *aux.Visible
	}
	return nil
}

// NavLink is one navigation entry pointing at a page.
type NavLink struct {
	PageID string `json:"pageId"`
	Label  string `json:"label"`
}

// Navigation holds the document navigation style and ordered links.
type Navigation struct {
	Style string    `json:"style,omitempty"`
	Links []NavLink `json:"links"`
}

// Page is one page of the site with its ordered sections.
type Page struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	IsHome   bool      `json:"isHome"`
	Sections []Section `json:"sections"`
}

// Document is the full site configuration. A document with no pages but a
// root-level sections array is the legacy single-page shape; it converts to
// the multi-page shape lazily on the first structural mutation.
type Document struct {
	SiteName   string         `json:"siteName"`
	Theme      Theme          `json:"theme"`
	Pages      []Page         `json:"pages,omitempty"`
	Sections   []Section      `json:"sections,omitempty"`
	Navigation *Navigation    `json:"navigation,omitempty"`
	Footer     map[string]any `json:"footer,omitempty"`
}

// Decode parses a document from JSON, accepting both the multi-page and the
// legacy single-page shape.
func Decode(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("invalid site document: %w", err)
	}
	return &d, nil
}

// Encode marshals the document to indented JSON.
func (d *Document) Encode() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// IsLegacy reports whether the document uses the legacy single-page shape.
func (d *Document) IsLegacy() bool {
	return len(d.Pages) == 0 && d.Sections != nil
}

// EnsureMultiPage converts a legacy document to the multi-page shape in
// place. Safe to call on documents that already have pages.
func (d *Document) EnsureMultiPage() {
	if len(d.Pages) > 0 {
		return
	}
	sections := d.Sections
	if sections == nil {
		sections = []Section{}
	}
	d.Pages = []Page{{
		ID:       "home",
		Name:     "Home",
		Slug:     "",
		IsHome:   true,
		Sections: sections,
	}}
	d.Sections = nil
	d.Pages[0].Renumber()
}

// Clone returns a deep copy. Tools mutate clones, never their input.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	data, err := json.Marshal(d)
	if err != nil {
		// A document is a plain JSON tree; marshal cannot fail for one
		// built through this package.
		panic(fmt.Sprintf("site: clone marshal: %v", err))
	}
	var out Document
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("site: clone unmarshal: %v", err))
	}
	return &out
}

// TotalSections counts sections across all pages, including the legacy root.
func (d *Document) TotalSections() int {
	n := len(d.Sections)
	for i := range d.Pages {
		n += len(d.Pages[i].Sections)
	}
	return n
}

// Empty reports whether the document has no sections at all. create_full_site
// only populates from scratch on an empty document.
func (d *Document) Empty() bool {
	return d == nil || d.TotalSections() == 0
}

// HomePage returns the page marked isHome, or nil.
func (d *Document) HomePage() *Page {
	for i := range d.Pages {
		if d.Pages[i].IsHome {
			return &d.Pages[i]
		}
	}
	return nil
}

// PageByID returns the page with the given id, or nil.
func (d *Document) PageByID(id string) *Page {
	for i := range d.Pages {
		if d.Pages[i].ID == id {
			return &d.Pages[i]
		}
	}
	return nil
}

// Renumber makes section order values dense and consistent with list position.
func (p *Page) Renumber() {
	for i := range p.Sections {
		p.Sections[i].Order = i
	}
}

// CloneContent deep-copies a content object.
func CloneContent(content map[string]any) map[string]any {
	if content == nil {
		return nil
	}
	data, err := json.Marshal(content)
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return map[string]any{}
	}
	return out
}

// NewSectionID synthesizes a deterministic-looking unique section id.
func NewSectionID(sectionType string) string {
	return sectionType + "-" + uuid.NewString()[:8]
}

// NewPageID synthesizes a unique page id from a slug or name.
func NewPageID(hint string) string {
	hint = Slugify(hint)
	if hint == "" {
		hint = "page"
	}
	return hint + "-" + uuid.NewString()[:8]
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases a name and collapses everything non-alphanumeric to
// single hyphens.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
