package tools

import (
	"strings"
	"testing"
)

func TestUpdateThemePresetThenOverrides(t *testing.T) {
	e := newExecutor()
	doc := testDoc(e)

	result := e.Execute(ToolUpdateTheme, doc, mustInput(t, map[string]any{
		"presetKey":    "forest",
		"primaryColor": "#112233",
	}))
	if !result.Success {
		t.Fatalf("update_theme failed: %s", result.Message)
	}

	preset, _ := e.reg.Preset("forest")
	theme := result.Doc.Theme
	if theme.PrimaryColor != "#112233" {
		t.Fatalf("explicit override must win over the preset, got %q", theme.PrimaryColor)
	}
	if theme.SecondaryColor != preset.SecondaryColor || theme.FontFamily != preset.FontFamily {
		t.Fatalf("non-overridden fields must come from the preset, got %+v", theme)
	}
	if !strings.Contains(result.Message, "primaryColor") {
		t.Fatalf("message should list the changed fields: %q", result.Message)
	}
}

func TestUpdateThemeUnknownPreset(t *testing.T) {
	e := newExecutor()
	doc := testDoc(e)
	before := doc.Theme

	result := e.Execute(ToolUpdateTheme, doc, mustInput(t, map[string]any{"presetKey": "neon"}))
	if result.Success {
		t.Fatal("unknown preset must fail")
	}
	if !strings.Contains(result.Message, "available presets") {
		t.Fatalf("failure should list valid presets: %q", result.Message)
	}
	if result.Doc.Theme != before {
		t.Fatal("failed calls must leave the theme untouched")
	}
}

func TestUpdateThemeNoChanges(t *testing.T) {
	e := newExecutor()
	doc := testDoc(e)

	result := e.Execute(ToolUpdateTheme, doc, mustInput(t, map[string]any{
		"primaryColor": doc.Theme.PrimaryColor,
	}))
	if !result.Success {
		t.Fatalf("no-op theme update should succeed: %s", result.Message)
	}
	if !strings.Contains(result.Message, "unchanged") {
		t.Fatalf("no-op update should say so: %q", result.Message)
	}
}
