package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/plumeworks/siteagent/internal/site"
)

type addSectionInput struct {
	Type     string         `json:"type"`
	Position *int           `json:"position,omitempty"`
	Content  map[string]any `json:"content,omitempty"`
	PageID   string         `json:"pageId,omitempty"`
}

// addSection inserts a new section of a registered type, merging any supplied
// content over the type's default payload.
func (e *Executor) addSection(doc *site.Document, input json.RawMessage) Result {
	var in addSectionInput
	if err := parseInput(input, &in); err != nil {
		return failure(doc, "%v", err)
	}

	def, ok := e.reg.Definition(in.Type)
	if !ok {
		return failure(doc, "unknown section type %q; available types: %s",
			in.Type, strings.Join(e.reg.Types(), ", "))
	}

	work := doc.Clone()
	work.EnsureMultiPage()

	page := work.HomePage()
	if in.PageID != "" {
		page = work.PageByID(in.PageID)
		if page == nil {
			return failure(doc, "page %q not found", in.PageID)
		}
	}
	if page == nil {
		return failure(doc, "document has no home page")
	}

	section := site.Section{
		ID:      site.NewSectionID(in.Type),
		Type:    in.Type,
		Visible: true,
		Content: DeepMerge(def.DefaultContent, in.Content),
	}

	position := len(page.Sections)
	if in.Position != nil {
		position = *in.Position
		if position < 0 {
			position = 0
		}
		if position > len(page.Sections) {
			position = len(page.Sections)
		}
	}

	page.Sections = append(page.Sections, site.Section{})
	copy(page.Sections[position+1:], page.Sections[position:])
	page.Sections[position] = section
	page.Renumber()

	return success(work, "Added %s section %q to page %q at position %d.",
		in.Type, section.ID, page.Name, position)
}

type updateSectionInput struct {
	SectionID   string         `json:"sectionId,omitempty"`
	SectionType string         `json:"sectionType,omitempty"`
	Content     map[string]any `json:"content,omitempty"`
	Visible     *bool          `json:"visible,omitempty"`
}

// updateSection deep-merges content over an existing section, resolved by id,
// type, or schema-key overlap. The message lists every changed field with its
// old and new value so the caller can roll back by hand.
func (e *Executor) updateSection(doc *site.Document, input json.RawMessage) Result {
	var in updateSectionInput
	if err := parseInput(input, &in); err != nil {
		return failure(doc, "%v", err)
	}
	if in.SectionID == "" && in.SectionType == "" && len(in.Content) == 0 {
		return failure(doc, "update_section needs a sectionId, a sectionType, or content to match against")
	}

	work := doc.Clone()
	ref, ok := e.resolveSection(work, in.SectionID, in.SectionType, in.Content)
	if !ok {
		return failure(doc, "could not resolve a section from id=%q type=%q; use list_pages to inspect the document",
			in.SectionID, in.SectionType)
	}

	sec := ref.section()
	previous := site.CloneContent(sec.Content)

	var changes []string
	if len(in.Content) > 0 {
		merged := DeepMerge(sec.Content, in.Content)
		changes = ChangedFields(sec.Content, merged, in.Content)
		sec.Content = merged
	}
	if in.Visible != nil && *in.Visible != sec.Visible {
		changes = append(changes, fmt.Sprintf("visible: %v → %v", sec.Visible, *in.Visible))
		sec.Visible = *in.Visible
	}

	if len(changes) == 0 {
		return Result{
			Success:  true,
			Message:  fmt.Sprintf("Section %q (%s) already matched the requested values; nothing changed.", sec.ID, sec.Type),
			Doc:      work,
			Previous: previous,
		}
	}
	return Result{
		Success:  true,
		Message:  fmt.Sprintf("Updated %s section %q:\n%s", sec.Type, sec.ID, strings.Join(changes, "\n")),
		Doc:      work,
		Previous: previous,
	}
}

type removeSectionInput struct {
	SectionID   string `json:"sectionId,omitempty"`
	SectionType string `json:"sectionType,omitempty"`
}

// removeSection deletes one section, resolved by id then type, and renumbers
// the remaining sections of that page.
func (e *Executor) removeSection(doc *site.Document, input json.RawMessage) Result {
	var in removeSectionInput
	if err := parseInput(input, &in); err != nil {
		return failure(doc, "%v", err)
	}
	if in.SectionID == "" && in.SectionType == "" {
		return failure(doc, "remove_section needs a sectionId or a sectionType")
	}

	work := doc.Clone()
	work.EnsureMultiPage()
	ref, ok := e.resolveSection(work, in.SectionID, in.SectionType, nil)
	if !ok {
		return failure(doc, "could not resolve a section from id=%q type=%q", in.SectionID, in.SectionType)
	}

	removed := *ref.section()
	previous := site.CloneContent(removed.Content)

	*ref.list = append((*ref.list)[:ref.index], (*ref.list)[ref.index+1:]...)
	renumber(ref.list)

	return Result{
		Success:  true,
		Message:  fmt.Sprintf("Removed %s section %q. %d section(s) remain on that page.", removed.Type, removed.ID, len(*ref.list)),
		Doc:      work,
		Previous: previous,
	}
}

type moveSectionSpec struct {
	SectionID string `json:"sectionId"`
	Direction string `json:"direction"` // up | down | first | last
}

type reorderSectionsInput struct {
	NewOrder    []string         `json:"newOrder,omitempty"`
	MoveSection *moveSectionSpec `json:"moveSection,omitempty"`
	PageID      string           `json:"pageId,omitempty"`
}

// reorderSections applies either a full explicit order (unlisted ids keep
// their relative order and are appended) or a single-step move. Either way
// the page ends with dense, position-consistent order values.
func (e *Executor) reorderSections(doc *site.Document, input json.RawMessage) Result {
	var in reorderSectionsInput
	if err := parseInput(input, &in); err != nil {
		return failure(doc, "%v", err)
	}
	if len(in.NewOrder) == 0 && in.MoveSection == nil {
		return failure(doc, "reorder_sections needs either newOrder or moveSection")
	}

	work := doc.Clone()
	work.EnsureMultiPage()

	if in.MoveSection != nil {
		return e.moveSection(doc, work, *in.MoveSection)
	}

	page := work.HomePage()
	if in.PageID != "" {
		page = work.PageByID(in.PageID)
		if page == nil {
			return failure(doc, "page %q not found", in.PageID)
		}
	}
	if page == nil {
		return failure(doc, "document has no home page")
	}

	byID := make(map[string]int, len(page.Sections))
	for i := range page.Sections {
		byID[page.Sections[i].ID] = i
	}

	used := make(map[string]bool, len(in.NewOrder))
	var unknown []string
	reordered := make([]site.Section, 0, len(page.Sections))
	for _, id := range in.NewOrder {
		idx, ok := byID[id]
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		if used[id] {
			continue
		}
		used[id] = true
		reordered = append(reordered, page.Sections[idx])
	}
	for i := range page.Sections {
		if !used[page.Sections[i].ID] {
			reordered = append(reordered, page.Sections[i])
		}
	}
	page.Sections = reordered
	page.Renumber()

	msg := fmt.Sprintf("Reordered page %q; new order: %s.", page.Name, strings.Join(sectionIDs(page.Sections), ", "))
	if len(unknown) > 0 {
		msg += fmt.Sprintf(" Ignored unknown section id(s): %s.", strings.Join(unknown, ", "))
	}
	return success(work, "%s", msg)
}

func (e *Executor) moveSection(orig, work *site.Document, move moveSectionSpec) Result {
	if move.SectionID == "" {
		return failure(orig, "moveSection.sectionId is required")
	}

	ref, ok := e.resolveSection(work, move.SectionID, "", nil)
	if !ok {
		return failure(orig, "section %q not found", move.SectionID)
	}

	list := ref.list
	from := ref.index
	to := from
	switch move.Direction {
	case "up":
		to = from - 1
	case "down":
		to = from + 1
	case "first":
		to = 0
	case "last":
		to = len(*list) - 1
	default:
		return failure(orig, "invalid direction %q; expected up, down, first, or last", move.Direction)
	}
	if to < 0 {
		to = 0
	}
	if to > len(*list)-1 {
		to = len(*list) - 1
	}

	if to != from {
		sec := (*list)[from]
		*list = append((*list)[:from], (*list)[from+1:]...)
		*list = append(*list, site.Section{})
		copy((*list)[to+1:], (*list)[to:])
		(*list)[to] = sec
	}
	renumber(list)

	return success(work, "Moved section %q from position %d to %d; new order: %s.",
		move.SectionID, from, to, strings.Join(sectionIDs(*list), ", "))
}

func sectionIDs(sections []site.Section) []string {
	ids := make([]string, 0, len(sections))
	for i := range sections {
		ids = append(ids, sections[i].ID)
	}
	return ids
}
