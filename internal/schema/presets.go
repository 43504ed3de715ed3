package schema

var builtinIcons = []string{
	"star", "check", "bolt", "shield", "rocket", "heart", "globe", "chart",
	"lock", "cloud", "gear", "mail", "phone", "map-pin", "users", "sparkles",
	"code", "camera", "truck", "leaf",
}

var defaultTheme = ThemePreset{
	PrimaryColor:    "#2563EB",
	SecondaryColor:  "#7C3AED",
	BackgroundColor: "#FFFFFF",
	TextColor:       "#1F2937",
	FontFamily:      "Inter",
}

// keyed list instead of a bare map so catalog order is stable
var builtinThemePresets = []struct {
	key   string
	theme ThemePreset
}{
	{"ocean", ThemePreset{
		PrimaryColor:    "#0E7490",
		SecondaryColor:  "#155E75",
		BackgroundColor: "#F0FDFF",
		TextColor:       "#164E63",
		FontFamily:      "Inter",
	}},
	{"forest", ThemePreset{
		PrimaryColor:    "#15803D",
		SecondaryColor:  "#166534",
		BackgroundColor: "#F7FEF7",
		TextColor:       "#14532D",
		FontFamily:      "Lora",
	}},
	{"sunset", ThemePreset{
		PrimaryColor:    "#EA580C",
		SecondaryColor:  "#C2410C",
		BackgroundColor: "#FFF7ED",
		TextColor:       "#431407",
		FontFamily:      "Poppins",
	}},
	{"midnight", ThemePreset{
		PrimaryColor:    "#818CF8",
		SecondaryColor:  "#6366F1",
		BackgroundColor: "#0F172A",
		TextColor:       "#E2E8F0",
		FontFamily:      "Space Grotesk",
	}},
	{"mono", ThemePreset{
		PrimaryColor:    "#111111",
		SecondaryColor:  "#444444",
		BackgroundColor: "#FFFFFF",
		TextColor:       "#111111",
		FontFamily:      "IBM Plex Mono",
	}},
}

func builtinPageTemplates() []PageTemplate {
	return []PageTemplate{
		{
			ID:   "landing",
			Name: "Landing",
			Slug: "landing",
			Sections: []TemplateSection{
				{Type: "hero"},
				{Type: "features"},
				{Type: "cta"},
			},
		},
		{
			ID:   "about",
			Name: "About",
			Slug: "about",
			Sections: []TemplateSection{
				{Type: "about"},
				{Type: "team"},
			},
		},
		{
			ID:   "pricing",
			Name: "Pricing",
			Slug: "pricing",
			Sections: []TemplateSection{
				{Type: "pricing"},
				{Type: "faq"},
				{Type: "cta"},
			},
		},
		{
			ID:   "portfolio",
			Name: "Portfolio",
			Slug: "portfolio",
			Sections: []TemplateSection{
				{Type: "gallery"},
				{Type: "testimonials"},
			},
		},
		{
			ID:   "contact",
			Name: "Contact",
			Slug: "contact",
			Sections: []TemplateSection{
				{Type: "contact"},
			},
		},
		{
			ID:       "blank",
			Name:     "New Page",
			Slug:     "page",
			Sections: nil,
		},
	}
}
