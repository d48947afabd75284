package render

import (
	"github.com/goliatone/go-floatform/pkg/model"
	"github.com/goliatone/go-floatform/pkg/validation"
)

// RenderOptions carry the per-request state a renderer draws on top of the
// static form model.
type RenderOptions struct {
	// Values are the current field values keyed by field name.
	Values map[string]string
	// Errors are the current field messages keyed by field name.
	Errors validation.Errors
	// Rules let renderers emit constraint attributes (required, minlength,
	// maxlength, pattern) next to each control.
	Rules validation.RuleSet
	Hidden []HiddenField
	// Notice is a banner shown above the fields, e.g. after a successful submit.
	Notice     string
	FormErrors []string
}

// Views builds the field views for form using the option values and errors.
func (o RenderOptions) Views(form model.FormModel) []model.FieldView {
	return model.BuildViews(form, o.Values, o.Errors)
}
