package model

import "strings"

// FieldView is a field paired with its state for a single render.
type FieldView struct {
	Field
	Value   string
	Error   string
	Floated bool
	Invalid bool
}

// BuildViews pairs every field of form with its value and error. Values and
// errors are plain maps so callers can pass either a form store snapshot or
// render options.
func BuildViews(form FormModel, values map[string]string, errs map[string]string) []FieldView {
	views := make([]FieldView, 0, len(form.Fields))
	for _, field := range form.Fields {
		views = append(views, BuildView(field, values[field.Name], errs[field.Name]))
	}
	return views
}

// BuildView computes the state flags for a single field.
func BuildView(field Field, value, message string) FieldView {
	message = strings.TrimSpace(message)
	return FieldView{
		Field:   field,
		Value:   value,
		Error:   message,
		Floated: value != "",
		Invalid: message != "",
	}
}
