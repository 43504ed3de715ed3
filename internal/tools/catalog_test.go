package tools

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/plumeworks/siteagent/internal/schema"
)

func TestCatalogCoversEveryTool(t *testing.T) {
	reg := schema.NewRegistry()
	specs := Catalog(reg)

	want := []string{
		ToolUpdateTheme, ToolAddSection, ToolUpdateSection, ToolRemoveSection,
		ToolReorderSections, ToolCreateFullSite, ToolAddPage, ToolRemovePage,
		ToolListPages, ToolUpdateNavigation,
	}
	if len(specs) != len(want) {
		t.Fatalf("expected %d tool specs, got %d", len(want), len(specs))
	}

	byName := make(map[string]Spec, len(specs))
	for _, spec := range specs {
		byName[spec.Name] = spec
	}
	for _, name := range want {
		spec, ok := byName[name]
		if !ok {
			t.Fatalf("missing spec for %s", name)
		}
		var parsed map[string]any
		if err := json.Unmarshal(spec.InputSchema, &parsed); err != nil {
			t.Fatalf("%s schema is not valid JSON: %v", name, err)
		}
		if parsed["type"] != "object" {
			t.Fatalf("%s schema root must be an object, got %v", name, parsed["type"])
		}
		if spec.Description == "" {
			t.Fatalf("%s has no description", name)
		}
	}
}

func TestCatalogDescriptionsEmbedVocabulary(t *testing.T) {
	reg := schema.NewRegistry()
	specs := Catalog(reg)

	byName := make(map[string]Spec, len(specs))
	for _, spec := range specs {
		byName[spec.Name] = spec
	}

	if !strings.Contains(byName[ToolAddSection].Description, "hero") {
		t.Fatal("add_section description should list section types")
	}
	if !strings.Contains(byName[ToolUpdateTheme].Description, "ocean") {
		t.Fatal("update_theme description should list preset keys")
	}
	if !strings.Contains(byName[ToolAddPage].Description, "landing") {
		t.Fatal("add_page description should list template ids")
	}
}
