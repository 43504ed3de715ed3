package agent

import (
	"fmt"
	"strings"

	"github.com/plumeworks/siteagent/internal/schema"
	"github.com/plumeworks/siteagent/internal/site"
)

// BuildSystemPrompt assembles the system prompt for one model round: the
// assistant's role, the registry vocabulary, the working rules, and the
// current site document. Rebuilt between tool rounds so the model always
// sees the post-mutation state.
func BuildSystemPrompt(reg *schema.Registry, doc *site.Document) string {
	var b strings.Builder

	b.WriteString("You are a website configuration assistant. You modify a site by calling tools; you never output site JSON yourself.\n\n")

	b.WriteString("Available section types:\n")
	for _, typeName := range reg.Types() {
		def, _ := reg.Definition(typeName)
		b.WriteString(fmt.Sprintf("- %s: %s\n", typeName, def.Description))
	}

	b.WriteString("\nTheme presets: ")
	b.WriteString(strings.Join(reg.PresetKeys(), ", "))
	b.WriteString("\nPage templates: ")
	b.WriteString(strings.Join(reg.TemplateIDs(), ", "))
	b.WriteString("\nNavigation styles: ")
	b.WriteString(strings.Join(schema.NavigationStyles, ", "))
	b.WriteString("\n")

	b.WriteString(`
Rules:
- Make changes only through tool calls. One tool call per change.
- If the site is empty and the user describes a site, use create_full_site.
- Prefer updating existing sections over adding duplicates of the same type.
- When you are unsure of a section or page id, call list_pages first.
- Removing the home page is not possible; do not attempt it.
- After your tool calls finish, reply with a short summary of what changed.
- If a tool reports failure, read its message and correct the call; do not repeat it unchanged.
`)

	b.WriteString("\nCurrent site document:\n")
	if doc == nil || doc.Empty() {
		b.WriteString("(no site exists yet)\n")
	} else {
		data, err := doc.Encode()
		if err != nil {
			b.WriteString("(document unavailable)\n")
		} else {
			b.WriteString("```json\n")
			b.Write(data)
			b.WriteString("\n```\n")
		}
	}

	return b.String()
}
