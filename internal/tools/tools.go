// Package tools implements the fixed vocabulary of atomic site mutations the
// orchestration loop may invoke. Every tool is a pure step: it clones the
// incoming document, applies one schema-checked change, and returns the new
// document with a human-readable message. Domain failures (unknown type,
// unresolved section) are values, never panics or errors, because the message
// is fed back to the model as tool-call feedback.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/plumeworks/siteagent/internal/logger"
	"github.com/plumeworks/siteagent/internal/schema"
	"github.com/plumeworks/siteagent/internal/site"
)

// Tool name constants, also used by the orchestration loop and MCP surface.
const (
	ToolUpdateTheme      = "update_theme"
	ToolAddSection       = "add_section"
	ToolUpdateSection    = "update_section"
	ToolRemoveSection    = "remove_section"
	ToolReorderSections  = "reorder_sections"
	ToolCreateFullSite   = "create_full_site"
	ToolAddPage          = "add_page"
	ToolRemovePage       = "remove_page"
	ToolListPages        = "list_pages"
	ToolUpdateNavigation = "update_navigation"
)

// Result is the outcome of one tool execution. On failure Doc is the input
// document, untouched. Previous carries the pre-mutation content of the
// affected section as a rollback hint where that makes sense.
type Result struct {
	Success  bool
	Message  string
	Doc      *site.Document
	Previous map[string]any
}

// Executor applies named tools to documents against one schema registry.
type Executor struct {
	reg *schema.Registry
}

// NewExecutor creates a tool executor bound to a registry.
func NewExecutor(reg *schema.Registry) *Executor {
	return &Executor{reg: reg}
}

// Registry returns the registry the executor validates against.
func (e *Executor) Registry() *schema.Registry {
	return e.reg
}

// Execute runs one tool by name. The input document may be nil, meaning "no
// site exists yet"; only create_full_site accepts that.
func (e *Executor) Execute(name string, doc *site.Document, input json.RawMessage) Result {
	logger.Debug("[Tools] Executing %s", name)

	if doc == nil && name != ToolCreateFullSite {
		return failure(doc, "no site document exists yet; call %s first", ToolCreateFullSite)
	}

	switch name {
	case ToolUpdateTheme:
		return e.updateTheme(doc, input)
	case ToolAddSection:
		return e.addSection(doc, input)
	case ToolUpdateSection:
		return e.updateSection(doc, input)
	case ToolRemoveSection:
		return e.removeSection(doc, input)
	case ToolReorderSections:
		return e.reorderSections(doc, input)
	case ToolCreateFullSite:
		return e.createFullSite(doc, input)
	case ToolAddPage:
		return e.addPage(doc, input)
	case ToolRemovePage:
		return e.removePage(doc, input)
	case ToolListPages:
		return e.listPages(doc)
	case ToolUpdateNavigation:
		return e.updateNavigation(doc, input)
	default:
		return failure(doc, "unknown tool %q", name)
	}
}

func failure(doc *site.Document, format string, args ...any) Result {
	return Result{Success: false, Message: fmt.Sprintf(format, args...), Doc: doc}
}

func success(doc *site.Document, format string, args ...any) Result {
	return Result{Success: true, Message: fmt.Sprintf(format, args...), Doc: doc}
}

func parseInput(input json.RawMessage, v any) error {
	if len(input) == 0 {
		return nil
	}
	if err := json.Unmarshal(input, v); err != nil {
		return fmt.Errorf("invalid tool input: %w", err)
	}
	return nil
}

// sectionLists returns the mutable section slices of a document in page
// order. Legacy single-page documents expose their root slice so that
// content-only mutations do not force a shape migration.
func sectionLists(d *site.Document) []*[]site.Section {
	if d.IsLegacy() {
		return []*[]site.Section{&d.Sections}
	}
	lists := make([]*[]site.Section, 0, len(d.Pages))
	for i := range d.Pages {
		lists = append(lists, &d.Pages[i].Sections)
	}
	return lists
}

func renumber(list *[]site.Section) {
	for i := range *list {
		(*list)[i].Order = i
	}
}

func navigationStyles() []string {
	return schema.NavigationStyles
}

func validNavigationStyle(s string) bool {
	for _, style := range schema.NavigationStyles {
		if s == style {
			return true
		}
	}
	return false
}
