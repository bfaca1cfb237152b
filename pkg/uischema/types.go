package uischema

// Store keeps the parsed overlays by form id. It is safe for concurrent
// readers when treated as immutable after construction.
type Store struct {
	forms map[string]Overlay
}

// Overlay holds the copy overrides for one form.
type Overlay struct {
	ID     string
	Source string
	Form   FormConfig
	Fields map[string]FieldConfig
}

// FormConfig replaces form-level copy. Blank entries keep the default.
type FormConfig struct {
	Title       string `json:"title" yaml:"title"`
	Intro       string `json:"intro" yaml:"intro"`
	SubmitLabel string `json:"submitLabel" yaml:"submitLabel"`
	ResetLabel  string `json:"resetLabel" yaml:"resetLabel"`
}

// FieldConfig replaces a field label and, for select and checkbox-group
// fields, option labels keyed by option value.
type FieldConfig struct {
	Label   string            `json:"label,omitempty" yaml:"label,omitempty"`
	Options map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
}
