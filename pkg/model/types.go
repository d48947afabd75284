package model

import "strings"

// FieldKind selects the control a renderer emits for a field.
type FieldKind string

const (
	FieldKindInput    FieldKind = "input"
	FieldKindTextarea FieldKind = "textarea"
)

const (
	DefaultInputType    = "text"
	DefaultTextareaRows = 4
	// DefaultPlaceholder keeps the native placeholder non-empty so CSS can
	// detect an empty control without showing any text.
	DefaultPlaceholder = " "
)

// Valid reports whether the kind is one renderers understand. The empty kind
// is valid and means input.
func (k FieldKind) Valid() bool {
	switch k {
	case "", FieldKindInput, FieldKindTextarea:
		return true
	default:
		return false
	}
}

// Field describes one floating-label control.
type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label,omitempty"`
	Type        string    `json:"type,omitempty"`
	Kind        FieldKind `json:"kind,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	Help        string    `json:"help,omitempty"`
	Rows        int       `json:"rows,omitempty"`
	Disabled    bool      `json:"disabled,omitempty"`
	Required    bool      `json:"required,omitempty"`
	Class       string    `json:"class,omitempty"`
}

// IsTextarea reports whether the field renders as a multi-line control.
func (f Field) IsTextarea() bool {
	return f.Kind == FieldKindTextarea
}

// InputType returns the HTML input type, defaulting to text.
func (f Field) InputType() string {
	if t := strings.TrimSpace(f.Type); t != "" {
		return t
	}
	return DefaultInputType
}

// RowCount returns the textarea row count, defaulting to four.
func (f Field) RowCount() int {
	if f.Rows > 0 {
		return f.Rows
	}
	return DefaultTextareaRows
}

// PlaceholderText returns the placeholder, defaulting to a single space.
func (f Field) PlaceholderText() string {
	if f.Placeholder != "" {
		return f.Placeholder
	}
	return DefaultPlaceholder
}

// LabelText returns the caption with " *" appended for required fields.
func (f Field) LabelText() string {
	label := f.Label
	if label == "" {
		label = f.Name
	}
	if f.Required {
		return label + " *"
	}
	return label
}

// FormModel is the top-level form descriptor.
type FormModel struct {
	ID          string  `json:"id"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Action      string  `json:"action,omitempty"`
	Method      string  `json:"method,omitempty"`
	SubmitLabel string  `json:"submitLabel,omitempty"`
	ResetLabel  string  `json:"resetLabel,omitempty"`
	Fields      []Field `json:"fields"`
}

// Field returns the field named name.
func (m FormModel) Field(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// FieldNames returns the field names in declaration order.
func (m FormModel) FieldNames() []string {
	names := make([]string, 0, len(m.Fields))
	for _, field := range m.Fields {
		names = append(names, field.Name)
	}
	return names
}
