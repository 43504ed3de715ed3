package site

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/plumeworks/siteagent/internal/schema"
)

// ValidationError is one path-qualified problem found in a document.
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) String() string {
	return e.Path + ": " + e.Message
}

// Report is the outcome of Validate. Validation never mutates; it only reports.
type Report struct {
	Valid  bool
	Errors []ValidationError
}

var (
	hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// Validate checks the document against the registry: top-level fields first,
// then page structure, then every section's content field by field.
func Validate(reg *schema.Registry, d *Document) Report {
	var errs []ValidationError
	add := func(path, format string, args ...any) {
		errs = append(errs, ValidationError{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	if d == nil {
		add("document", "document is nil")
		return Report{Valid: false, Errors: errs}
	}

	if strings.TrimSpace(d.SiteName) == "" {
		add("siteName", "siteName is required")
	}
	checkThemeColor(add, "theme.primaryColor", d.Theme.PrimaryColor)
	checkThemeColor(add, "theme.secondaryColor", d.Theme.SecondaryColor)
	checkThemeColor(add, "theme.backgroundColor", d.Theme.BackgroundColor)
	checkThemeColor(add, "theme.textColor", d.Theme.TextColor)
	if strings.TrimSpace(d.Theme.FontFamily) == "" {
		add("theme.fontFamily", "fontFamily is required")
	}

	if len(d.Pages) == 0 && d.Sections == nil {
		add("pages", "document has no pages")
		return Report{Valid: len(errs) == 0, Errors: errs}
	}

	if d.IsLegacy() {
		validateSections(reg, "sections", d.Sections, add)
	} else {
		validatePages(reg, d, add)
	}

	validateNavigation(d, add)

	return Report{Valid: len(errs) == 0, Errors: errs}
}

func checkThemeColor(add func(string, string, ...any), path, value string) {
	if value == "" {
		add(path, "color is required")
		return
	}
	if !hexColorPattern.MatchString(value) {
		add(path, "%q is not a hex color", value)
	}
}

func validatePages(reg *schema.Registry, d *Document, add func(string, string, ...any)) {
	homeCount := 0
	slugs := make(map[string]int)
	for i := range d.Pages {
		page := &d.Pages[i]
		path := fmt.Sprintf("pages[%d]", i)

		if page.ID == "" {
			add(path, "page id is required")
		}
		if page.Name == "" {
			add(path, "page name is required")
		}
		if page.IsHome {
			homeCount++
			if page.Slug != "" {
				add(path, "home page slug must be empty, got %q", page.Slug)
			}
		} else if page.Slug == "" {
			add(path, "slug is required for non-home pages")
		}
		if prev, seen := slugs[page.Slug]; seen {
			add(path, "slug %q already used by pages[%d]", page.Slug, prev)
		} else {
			slugs[page.Slug] = i
		}

		validateSections(reg, path+".sections", page.Sections, add)
	}
	if homeCount == 0 {
		add("pages", "exactly one page must be marked isHome, found none")
	} else if homeCount > 1 {
		add("pages", "exactly one page must be marked isHome, found %d", homeCount)
	}
}

func validateSections(reg *schema.Registry, prefix string, sections []Section, add func(string, string, ...any)) {
	ids := make(map[string]int)
	for i := range sections {
		sec := &sections[i]
		path := fmt.Sprintf("%s[%d] (%s)", prefix, i, sec.ID)

		if sec.ID == "" {
			add(fmt.Sprintf("%s[%d]", prefix, i), "section id is required")
		} else if prev, seen := ids[sec.ID]; seen {
			add(path, "duplicate section id, already used at index %d", prev)
		} else {
			ids[sec.ID] = i
		}
		if sec.Order != i {
			add(path, "order is %d, expected %d", sec.Order, i)
		}

		def, ok := reg.Definition(sec.Type)
		if !ok {
			add(path, "unknown section type %q", sec.Type)
			continue
		}
		validateContent(path, def, sec.Content, add)
	}
}

func validateContent(path string, def *schema.SectionType, content map[string]any, add func(string, string, ...any)) {
	if content == nil {
		add(path, "content is required")
		return
	}
	for _, name := range sortedFieldNames(def.ContentSchema) {
		spec := def.ContentSchema[name]
		value, present := content[name]
		if !present || value == nil {
			if spec.Required {
				add(path, "%s is required", name)
			}
			continue
		}
		checkField(path, name, spec, value, add)
	}
	// Unknown extra keys pass through unchecked on purpose.
}

func sortedFieldNames(fields map[string]schema.FieldSpec) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkField(path, name string, spec schema.FieldSpec, value any, add func(string, string, ...any)) {
	switch spec.Kind {
	case schema.KindString, schema.KindText:
		s, ok := value.(string)
		if !ok {
			add(path, "%s must be a string", name)
			return
		}
		if spec.MaxLength > 0 && utf8.RuneCountInString(s) > spec.MaxLength {
			add(path, "%s exceeds maximum length of %d", name, spec.MaxLength)
		}

	case schema.KindEmail:
		s, ok := value.(string)
		if !ok {
			add(path, "%s must be a string", name)
			return
		}
		if !emailPattern.MatchString(s) {
			add(path, "%s is not a valid email address", name)
		}

	case schema.KindURL:
		s, ok := value.(string)
		if !ok {
			add(path, "%s must be a string", name)
			return
		}
		if !isValidLink(s) {
			add(path, "%s is not a valid link", name)
		}

	case schema.KindEnum:
		s, ok := value.(string)
		if !ok {
			add(path, "%s must be a string", name)
			return
		}
		for _, allowed := range spec.AllowedValues {
			if s == allowed {
				return
			}
		}
		add(path, "%s must be one of: %s", name, strings.Join(spec.AllowedValues, ", "))

	case schema.KindBoolean:
		if _, ok := value.(bool); !ok {
			add(path, "%s must be a boolean", name)
		}

	case schema.KindHexColor:
		s, ok := value.(string)
		if !ok {
			add(path, "%s must be a string", name)
			return
		}
		if !hexColorPattern.MatchString(s) {
			add(path, "%s must be a hex color like #1A2B3C", name)
		}

	case schema.KindArray:
		items, ok := value.([]any)
		if !ok {
			add(path, "%s must be an array", name)
			return
		}
		if spec.MinItems > 0 && len(items) < spec.MinItems {
			add(path, "%s must have at least %d item(s)", name, spec.MinItems)
		}
		if spec.MaxItems > 0 && len(items) > spec.MaxItems {
			add(path, "%s must have at most %d item(s)", name, spec.MaxItems)
		}
		if spec.Items != nil {
			for i, item := range items {
				checkField(path, fmt.Sprintf("%s[%d]", name, i), *spec.Items, item, add)
			}
		}

	case schema.KindObject:
		obj, ok := value.(map[string]any)
		if !ok {
			add(path, "%s must be an object", name)
			return
		}
		for _, sub := range sortedFieldNames(spec.Fields) {
			subSpec := spec.Fields[sub]
			subValue, present := obj[sub]
			subName := name + "." + sub
			if !present || subValue == nil {
				if subSpec.Required {
					add(path, "%s is required", subName)
				}
				continue
			}
			checkField(path, subName, subSpec, subValue, add)
		}

	default:
		add(path, "%s has unsupported field kind %q", name, spec.Kind)
	}
}

// isValidLink accepts absolute http(s) URLs plus the relative/anchor/mailto
// forms that site links commonly use.
func isValidLink(s string) bool {
	if s == "" {
		return false
	}
	if strings.HasPrefix(s, "/") || strings.HasPrefix(s, "#") {
		return true
	}
	if strings.HasPrefix(s, "mailto:") || strings.HasPrefix(s, "tel:") {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validateNavigation(d *Document, add func(string, string, ...any)) {
	if d.Navigation == nil {
		return
	}
	nav := d.Navigation
	if nav.Style != "" {
		valid := false
		for _, style := range schema.NavigationStyles {
			if nav.Style == style {
				valid = true
				break
			}
		}
		if !valid {
			add("navigation.style", "style must be one of: %s", strings.Join(schema.NavigationStyles, ", "))
		}
	}
	for i, link := range nav.Links {
		path := fmt.Sprintf("navigation.links[%d]", i)
		if link.Label == "" {
			add(path, "label is required")
		}
		if link.PageID == "" {
			add(path, "pageId is required")
			continue
		}
		if !d.IsLegacy() && d.PageByID(link.PageID) == nil {
			add(path, "pageId %q does not resolve to a page", link.PageID)
		}
	}
}
