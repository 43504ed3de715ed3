package site

import (
	"encoding/json"
	"fmt"

	"github.com/plumeworks/siteagent/internal/logger"
	"github.com/plumeworks/siteagent/internal/schema"
)

// Sanitize repairs a document that failed validation: it fills missing
// required structure and replaces malformed values with registry defaults.
// Extra unknown keys pass through untouched. The input is never mutated;
// the repaired copy is returned.
func Sanitize(reg *schema.Registry, d *Document) *Document {
	out := d.Clone()
	if out == nil {
		out = &Document{}
	}

	if out.SiteName == "" {
		out.SiteName = "My Site"
	}
	sanitizeTheme(reg, &out.Theme)

	out.EnsureMultiPage()
	sanitizePages(reg, out)
	sanitizeNavigation(out)

	return out
}

func sanitizeTheme(reg *schema.Registry, theme *Theme) {
	defaults := reg.DefaultTheme()
	fix := func(field *string, fallback string) {
		if *field == "" || !hexColorPattern.MatchString(*field) {
			*field = fallback
		}
	}
	fix(&theme.PrimaryColor, defaults.PrimaryColor)
	fix(&theme.SecondaryColor, defaults.SecondaryColor)
	fix(&theme.BackgroundColor, defaults.BackgroundColor)
	fix(&theme.TextColor, defaults.TextColor)
	if theme.FontFamily == "" {
		theme.FontFamily = defaults.FontFamily
	}
}

func sanitizePages(reg *schema.Registry, d *Document) {
	pageIDs := make(map[string]bool)
	slugs := make(map[string]bool)
	homeSeen := false

	for i := range d.Pages {
		page := &d.Pages[i]

		if page.Name == "" {
			page.Name = fmt.Sprintf("Page %d", i+1)
		}
		if page.ID == "" || pageIDs[page.ID] {
			page.ID = NewPageID(page.Name)
		}
		pageIDs[page.ID] = true

		if page.IsHome {
			if homeSeen {
				page.IsHome = false
			}
			homeSeen = true
		}
	}
	if !homeSeen && len(d.Pages) > 0 {
		d.Pages[0].IsHome = true
	}

	for i := range d.Pages {
		page := &d.Pages[i]
		if page.IsHome {
			page.Slug = ""
		} else {
			if page.Slug == "" {
				page.Slug = Slugify(page.Name)
			}
			if page.Slug == "" {
				page.Slug = "page"
			}
			base := page.Slug
			for n := 2; slugs[page.Slug]; n++ {
				page.Slug = fmt.Sprintf("%s-%d", base, n)
			}
		}
		slugs[page.Slug] = true

		sanitizePageSections(reg, page)
	}
}

func sanitizePageSections(reg *schema.Registry, page *Page) {
	if page.Sections == nil {
		page.Sections = []Section{}
	}

	kept := page.Sections[:0]
	ids := make(map[string]bool)
	for i := range page.Sections {
		sec := page.Sections[i]

		def, ok := reg.Definition(sec.Type)
		if !ok {
			// Nothing can repair a section of a type the registry does not
			// know; dropping it is the only way back to a valid document.
			logger.Debug("[Sanitize] Dropping section %q with unknown type %q", sec.ID, sec.Type)
			continue
		}

		if sec.ID == "" || ids[sec.ID] {
			sec.ID = NewSectionID(sec.Type)
		}
		ids[sec.ID] = true

		sec.Content = sanitizeContent(def, sec.Content)
		kept = append(kept, sec)
	}
	page.Sections = kept
	page.Renumber()
}

// sanitizeContent repairs a content object against its section schema. Fields
// that are present and valid are kept as-is; missing required fields and
// malformed values are filled from the type's default content; extra keys
// survive untouched.
func sanitizeContent(def *schema.SectionType, content map[string]any) map[string]any {
	if content == nil {
		return CloneContent(def.DefaultContent)
	}
	out := CloneContent(content)
	for name, spec := range def.ContentSchema {
		value, present := out[name]
		if !present || value == nil {
			if spec.Required {
				out[name] = defaultFieldValue(def, name, spec)
			} else if present {
				delete(out, name)
			}
			continue
		}
		if spec.Kind == schema.KindArray && spec.Items != nil {
			if repaired, ok := sanitizeArray(spec, value); ok {
				out[name] = repaired
				continue
			}
		}
		if fieldIsValid(name, spec, value) {
			continue
		}
		if spec.Required {
			out[name] = defaultFieldValue(def, name, spec)
		} else {
			delete(out, name)
		}
	}
	return out
}

// sanitizeArray keeps the valid items of an array field and drops the broken
// ones. Returns ok=false when the pruned array would violate MinItems, in
// which case the caller falls back to the default value.
func sanitizeArray(spec schema.FieldSpec, value any) ([]any, bool) {
	items, ok := value.([]any)
	if !ok {
		return nil, false
	}
	kept := make([]any, 0, len(items))
	for _, item := range items {
		if fieldIsValid("item", *spec.Items, item) {
			kept = append(kept, item)
		}
	}
	if spec.MaxItems > 0 && len(kept) > spec.MaxItems {
		kept = kept[:spec.MaxItems]
	}
	if len(kept) < spec.MinItems {
		return nil, false
	}
	return kept, true
}

func fieldIsValid(name string, spec schema.FieldSpec, value any) bool {
	valid := true
	check := func(string, string, ...any) { valid = false }
	checkField("", name, spec, value, check)
	return valid
}

func defaultFieldValue(def *schema.SectionType, name string, spec schema.FieldSpec) any {
	if v, ok := def.DefaultContent[name]; ok {
		return cloneValue(v)
	}
	return zeroFieldValue(spec)
}

func cloneValue(v any) any {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil
	}
	return out
}

func zeroFieldValue(spec schema.FieldSpec) any {
	switch spec.Kind {
	case schema.KindString, schema.KindText:
		return "Untitled"
	case schema.KindEmail:
		return "hello@example.com"
	case schema.KindURL:
		return "/"
	case schema.KindHexColor:
		return "#000000"
	case schema.KindEnum:
		if len(spec.AllowedValues) > 0 {
			return spec.AllowedValues[0]
		}
		return ""
	case schema.KindBoolean:
		return false
	case schema.KindArray:
		items := make([]any, 0, spec.MinItems)
		for i := 0; i < spec.MinItems; i++ {
			if spec.Items != nil {
				items = append(items, zeroFieldValue(*spec.Items))
			}
		}
		return items
	case schema.KindObject:
		obj := make(map[string]any, len(spec.Fields))
		for sub, subSpec := range spec.Fields {
			if subSpec.Required {
				obj[sub] = zeroFieldValue(subSpec)
			}
		}
		return obj
	default:
		return nil
	}
}

func sanitizeNavigation(d *Document) {
	if d.Navigation == nil {
		return
	}
	nav := d.Navigation

	styleOK := nav.Style == ""
	for _, style := range schema.NavigationStyles {
		if nav.Style == style {
			styleOK = true
			break
		}
	}
	if !styleOK {
		nav.Style = ""
	}

	kept := nav.Links[:0]
	for _, link := range nav.Links {
		page := d.PageByID(link.PageID)
		if page == nil {
			logger.Debug("[Sanitize] Dropping navigation link to missing page %q", link.PageID)
			continue
		}
		if link.Label == "" {
			link.Label = page.Name
		}
		kept = append(kept, link)
	}
	nav.Links = kept
}
