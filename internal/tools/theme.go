package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/plumeworks/siteagent/internal/schema"
	"github.com/plumeworks/siteagent/internal/site"
)

type updateThemeInput struct {
	PresetKey       string `json:"presetKey,omitempty"`
	PrimaryColor    string `json:"primaryColor,omitempty"`
	SecondaryColor  string `json:"secondaryColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	FontFamily      string `json:"fontFamily,omitempty"`
}

// updateTheme applies a named preset first, then explicit field overrides on
// top. All fields are optional; the tool only fails on an unknown preset key.
func (e *Executor) updateTheme(doc *site.Document, input json.RawMessage) Result {
	var in updateThemeInput
	if err := parseInput(input, &in); err != nil {
		return failure(doc, "%v", err)
	}

	work := doc.Clone()
	before := work.Theme

	if in.PresetKey != "" {
		preset, ok := e.reg.Preset(in.PresetKey)
		if !ok {
			return failure(doc, "unknown theme preset %q; available presets: %s",
				in.PresetKey, strings.Join(e.reg.PresetKeys(), ", "))
		}
		work.Theme = themeFromPreset(preset)
	}

	applyOverride(&work.Theme.PrimaryColor, in.PrimaryColor)
	applyOverride(&work.Theme.SecondaryColor, in.SecondaryColor)
	applyOverride(&work.Theme.BackgroundColor, in.BackgroundColor)
	applyOverride(&work.Theme.TextColor, in.TextColor)
	applyOverride(&work.Theme.FontFamily, in.FontFamily)

	changes := themeChanges(before, work.Theme)
	if len(changes) == 0 {
		return success(work, "Theme unchanged; no fields differed from the current values.")
	}
	return success(work, "Updated theme:\n%s", strings.Join(changes, "\n"))
}

func themeFromPreset(p schema.ThemePreset) site.Theme {
	return site.Theme{
		PrimaryColor:    p.PrimaryColor,
		SecondaryColor:  p.SecondaryColor,
		BackgroundColor: p.BackgroundColor,
		TextColor:       p.TextColor,
		FontFamily:      p.FontFamily,
	}
}

func applyOverride(field *string, value string) {
	if value != "" {
		*field = value
	}
}

func themeChanges(before, after site.Theme) []string {
	fields := []struct {
		name     string
		old, new string
	}{
		{"primaryColor", before.PrimaryColor, after.PrimaryColor},
		{"secondaryColor", before.SecondaryColor, after.SecondaryColor},
		{"backgroundColor", before.BackgroundColor, after.BackgroundColor},
		{"textColor", before.TextColor, after.TextColor},
		{"fontFamily", before.FontFamily, after.FontFamily},
	}
	var lines []string
	for _, f := range fields {
		if f.old != f.new {
			lines = append(lines, fmt.Sprintf("%s: %q → %q", f.name, f.old, f.new))
		}
	}
	return lines
}
