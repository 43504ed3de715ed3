// Package schema holds the static catalog of section types, theme presets,
// the icon vocabulary, and page templates. The registry is built once at
// startup and is read-only afterwards; every other package receives it by
// reference instead of reaching for globals.
package schema

// FieldKind enumerates the value kinds a content field may hold.
type FieldKind string

const (
	KindString   FieldKind = "string"
	KindText     FieldKind = "text"
	KindEmail    FieldKind = "email"
	KindURL      FieldKind = "url"
	KindEnum     FieldKind = "enum"
	KindBoolean  FieldKind = "boolean"
	KindArray    FieldKind = "array"
	KindHexColor FieldKind = "hexColor"
	KindObject   FieldKind = "object"
)

// FieldSpec describes one content field of a section type.
type FieldSpec struct {
	Kind          FieldKind
	Required      bool
	MaxLength     int // strings; 0 = unbounded
	MinItems      int // arrays
	MaxItems      int // arrays; 0 = unbounded
	AllowedValues []string
	Items         *FieldSpec           // array item schema
	Fields        map[string]FieldSpec // object nested fields
}

// SectionType is one registry entry: a section kind with its default
// content payload and field-level validation schema.
type SectionType struct {
	Type           string
	DisplayName    string
	Description    string
	DefaultContent map[string]any
	ContentSchema  map[string]FieldSpec
}

// ThemePreset is a named set of document theme values.
type ThemePreset struct {
	PrimaryColor    string
	SecondaryColor  string
	BackgroundColor string
	TextColor       string
	FontFamily      string
}

// TemplateSection is one canned section inside a page template. A nil
// Content means "use the section type's default content".
type TemplateSection struct {
	Type    string
	Content map[string]any
}

// PageTemplate is a canned page the add_page tool can instantiate.
type PageTemplate struct {
	ID       string
	Name     string
	Slug     string
	Sections []TemplateSection
}

// NavigationStyles lists the accepted navigation style values.
var NavigationStyles = []string{"horizontal", "sidebar", "hamburger"}
