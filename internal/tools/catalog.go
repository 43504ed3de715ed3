package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/plumeworks/siteagent/internal/schema"
)

// Spec describes one tool to the language model: name, description, and a
// JSON Schema for its input.
type Spec struct {
	Name        string
	Description string
	InputSchema json.RawMessage
}

func jsonSchema(v map[string]any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(`{"type":"object"}`)
	}
	return data
}

// Catalog builds the tool specs for a registry. Descriptions embed the
// registry's vocabulary so the model never has to guess valid type keys.
func Catalog(reg *schema.Registry) []Spec {
	types := strings.Join(reg.Types(), ", ")
	presets := strings.Join(reg.PresetKeys(), ", ")
	templates := strings.Join(reg.TemplateIDs(), ", ")
	navStyles := strings.Join(schema.NavigationStyles, ", ")

	colorProp := func(desc string) map[string]string {
		return map[string]string{"type": "string", "description": desc + " as a hex color, e.g. #2563EB"}
	}

	return []Spec{
		{
			Name:        ToolUpdateTheme,
			Description: fmt.Sprintf("Update the site theme. Applies presetKey first (one of: %s), then explicit field overrides. All fields optional.", presets),
			InputSchema: jsonSchema(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"presetKey":       map[string]string{"type": "string", "description": "Named theme preset to start from"},
					"primaryColor":    colorProp("Primary brand color"),
					"secondaryColor":  colorProp("Secondary accent color"),
					"backgroundColor": colorProp("Page background color"),
					"textColor":       colorProp("Body text color"),
					"fontFamily":      map[string]string{"type": "string", "description": "Font family name, e.g. Inter"},
				},
			}),
		},
		{
			Name:        ToolAddSection,
			Description: fmt.Sprintf("Add a new section to a page. Section type must be one of: %s. Content is merged over the type's defaults.", types),
			InputSchema: jsonSchema(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type":     map[string]string{"type": "string", "description": "Section type key"},
					"position": map[string]string{"type": "number", "description": "Insert position (default: end of page)"},
					"content":  map[string]string{"type": "object", "description": "Field values overriding the type defaults"},
					"pageId":   map[string]string{"type": "string", "description": "Target page id (default: home page)"},
				},
				"required": []string{"type"},
			}),
		},
		{
			Name:        ToolUpdateSection,
			Description: "Update an existing section's content (deep merge; arrays replace wholesale) and/or visibility. Resolve by sectionId, sectionType, or content field overlap. The result lists every changed field with old and new values.",
			InputSchema: jsonSchema(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"sectionId":   map[string]string{"type": "string", "description": "Exact section id"},
					"sectionType": map[string]string{"type": "string", "description": "Section type, used when the id is unknown"},
					"content":     map[string]string{"type": "object", "description": "Fields to merge into the section content"},
					"visible":     map[string]string{"type": "boolean", "description": "Show or hide the section"},
				},
			}),
		},
		{
			Name:        ToolRemoveSection,
			Description: "Remove a section, resolved by sectionId or sectionType. Remaining sections are renumbered.",
			InputSchema: jsonSchema(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"sectionId":   map[string]string{"type": "string", "description": "Exact section id"},
					"sectionType": map[string]string{"type": "string", "description": "Section type, used when the id is unknown"},
				},
			}),
		},
		{
			Name:        ToolReorderSections,
			Description: "Reorder sections on a page. Give either newOrder (full id list; unlisted ids keep their relative order and go last) or moveSection (single step).",
			InputSchema: jsonSchema(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"newOrder": map[string]any{
						"type":        "array",
						"items":       map[string]string{"type": "string"},
						"description": "Section ids in the desired order",
					},
					"moveSection": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"sectionId": map[string]string{"type": "string", "description": "Section to move"},
							"direction": map[string]string{"type": "string", "description": "up, down, first, or last"},
						},
						"required": []string{"sectionId", "direction"},
					},
					"pageId": map[string]string{"type": "string", "description": "Target page id (default: home page)"},
				},
			}),
		},
		{
			Name:        ToolCreateFullSite,
			Description: fmt.Sprintf("Create a site from a description, or merge into an existing one. On a non-empty site existing sections are always preserved: same-type input sections are content-merged, new types appended. Section types: %s.", types),
			InputSchema: jsonSchema(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"siteName": map[string]string{"type": "string", "description": "Site name"},
					"theme": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"presetKey":       map[string]string{"type": "string", "description": "Theme preset key"},
							"primaryColor":    colorProp("Primary brand color"),
							"secondaryColor":  colorProp("Secondary accent color"),
							"backgroundColor": colorProp("Page background color"),
							"textColor":       colorProp("Body text color"),
							"fontFamily":      map[string]string{"type": "string"},
						},
					},
					"sections": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"type":    map[string]string{"type": "string", "description": "Section type key"},
								"content": map[string]string{"type": "object", "description": "Field values overriding the type defaults"},
							},
							"required": []string{"type"},
						},
						"description": "Sections for the home page, in order",
					},
				},
				"required": []string{"siteName"},
			}),
		},
		{
			Name:        ToolAddPage,
			Description: fmt.Sprintf("Add a page from a template (one of: %s). Slugs are auto-suffixed on collision.", templates),
			InputSchema: jsonSchema(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"templateId": map[string]string{"type": "string", "description": "Page template id"},
					"name":       map[string]string{"type": "string", "description": "Page name override (default: template name)"},
				},
				"required": []string{"templateId"},
			}),
		},
		{
			Name:        ToolRemovePage,
			Description: "Remove a page by id. The home page cannot be removed.",
			InputSchema: jsonSchema(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"pageId": map[string]string{"type": "string", "description": "Page id to remove"},
				},
				"required": []string{"pageId"},
			}),
		},
		{
			Name:        ToolListPages,
			Description: "List all pages with their ids, slugs, and sections. Read-only; use this to find ids before mutating.",
			InputSchema: jsonSchema(map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			}),
		},
		{
			Name:        ToolUpdateNavigation,
			Description: fmt.Sprintf("Replace the navigation links and style (one of: %s). Navigation may intentionally omit pages.", navStyles),
			InputSchema: jsonSchema(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"links": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"pageId": map[string]string{"type": "string", "description": "Target page id"},
								"label":  map[string]string{"type": "string", "description": "Link label"},
							},
							"required": []string{"pageId", "label"},
						},
					},
					"style": map[string]string{"type": "string", "description": "Navigation style"},
				},
				"required": []string{"links"},
			}),
		},
	}
}
