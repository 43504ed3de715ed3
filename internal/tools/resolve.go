package tools

import (
	"github.com/plumeworks/siteagent/internal/site"
)

// sectionRef points at one section inside its owning slice.
type sectionRef struct {
	list  *[]site.Section
	index int
}

func (r sectionRef) section() *site.Section {
	return &(*r.list)[r.index]
}

// resolveSection finds the section a tool call refers to. Resolution order:
// exact id match, then first section of the given type, then the first
// section whose schema shares a key with the incoming content. First match in
// document order wins at every step; the overlap heuristic deliberately has
// no further tie-break.
func (e *Executor) resolveSection(d *site.Document, sectionID, sectionType string, content map[string]any) (sectionRef, bool) {
	lists := sectionLists(d)

	if sectionID != "" {
		for _, list := range lists {
			for i := range *list {
				if (*list)[i].ID == sectionID {
					return sectionRef{list: list, index: i}, true
				}
			}
		}
	}

	if sectionType != "" {
		for _, list := range lists {
			for i := range *list {
				if (*list)[i].Type == sectionType {
					return sectionRef{list: list, index: i}, true
				}
			}
		}
	}

	if len(content) > 0 {
		for _, list := range lists {
			for i := range *list {
				def, ok := e.reg.Definition((*list)[i].Type)
				if !ok {
					continue
				}
				for key := range content {
					if _, ok := def.ContentSchema[key]; ok {
						return sectionRef{list: list, index: i}, true
					}
				}
			}
		}
	}

	return sectionRef{}, false
}

// firstSectionOfType returns the first section with the given type in
// document order.
func firstSectionOfType(d *site.Document, sectionType string) (sectionRef, bool) {
	for _, list := range sectionLists(d) {
		for i := range *list {
			if (*list)[i].Type == sectionType {
				return sectionRef{list: list, index: i}, true
			}
		}
	}
	return sectionRef{}, false
}
