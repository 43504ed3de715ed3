package schema

// Registry is the immutable lookup table for section types, theme presets,
// icons, and page templates. Construct it once with NewRegistry and pass it
// into every component that needs it.
type Registry struct {
	sections      map[string]*SectionType
	sectionOrder  []string
	icons         []string
	presets       map[string]ThemePreset
	presetOrder   []string
	templates     map[string]*PageTemplate
	templateOrder []string
	defaultTheme  ThemePreset
}

// NewRegistry builds the registry from the builtin catalog.
func NewRegistry() *Registry {
	r := &Registry{
		sections:     make(map[string]*SectionType),
		presets:      make(map[string]ThemePreset),
		templates:    make(map[string]*PageTemplate),
		icons:        append([]string(nil), builtinIcons...),
		defaultTheme: defaultTheme,
	}
	for _, def := range builtinSectionTypes() {
		def := def
		r.sections[def.Type] = &def
		r.sectionOrder = append(r.sectionOrder, def.Type)
	}
	for _, p := range builtinThemePresets {
		r.presets[p.key] = p.theme
		r.presetOrder = append(r.presetOrder, p.key)
	}
	for _, tpl := range builtinPageTemplates() {
		tpl := tpl
		r.templates[tpl.ID] = &tpl
		r.templateOrder = append(r.templateOrder, tpl.ID)
	}
	return r
}

// Definition returns the section type definition for the given key.
func (r *Registry) Definition(sectionType string) (*SectionType, bool) {
	def, ok := r.sections[sectionType]
	return def, ok
}

// Types returns all registered section type keys in catalog order.
func (r *Registry) Types() []string {
	return append([]string(nil), r.sectionOrder...)
}

// Icons returns the icon vocabulary.
func (r *Registry) Icons() []string {
	return append([]string(nil), r.icons...)
}

// Preset returns a named theme preset.
func (r *Registry) Preset(key string) (ThemePreset, bool) {
	p, ok := r.presets[key]
	return p, ok
}

// PresetKeys returns the theme preset keys in catalog order.
func (r *Registry) PresetKeys() []string {
	return append([]string(nil), r.presetOrder...)
}

// DefaultTheme returns the theme applied to documents that carry none.
func (r *Registry) DefaultTheme() ThemePreset {
	return r.defaultTheme
}

// Template returns a page template by id.
func (r *Registry) Template(id string) (*PageTemplate, bool) {
	tpl, ok := r.templates[id]
	return tpl, ok
}

// TemplateIDs returns the page template ids in catalog order.
func (r *Registry) TemplateIDs() []string {
	return append([]string(nil), r.templateOrder...)
}
