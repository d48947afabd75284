package definition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-floatform/pkg/form"
	"github.com/goliatone/go-floatform/pkg/model"
	"github.com/goliatone/go-floatform/pkg/validation"
)

var (
	ErrMissingID     = errors.New("definition: id is required")
	ErrNoFields      = errors.New("definition: at least one field is required")
	ErrFieldName     = errors.New("definition: field name is required")
	ErrDuplicateName = errors.New("definition: duplicate field name")
	ErrUnknownKind   = errors.New("definition: unknown field kind")
)

// Definition describes a form and its fields.
type Definition struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title,omitempty" yaml:"title,omitempty"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Action      string  `json:"action,omitempty" yaml:"action,omitempty"`
	Method      string  `json:"method,omitempty" yaml:"method,omitempty"`
	SubmitLabel string  `json:"submitLabel,omitempty" yaml:"submitLabel,omitempty"`
	ResetLabel  string  `json:"resetLabel,omitempty" yaml:"resetLabel,omitempty"`
	Fields      []Field `json:"fields" yaml:"fields"`
}

// Field describes a single field, its initial value and its rules. Required
// on the field and on its rules are merged.
type Field struct {
	Name        string              `json:"name" yaml:"name"`
	Label       string              `json:"label,omitempty" yaml:"label,omitempty"`
	Type        string              `json:"type,omitempty" yaml:"type,omitempty"`
	Kind        model.FieldKind     `json:"kind,omitempty" yaml:"kind,omitempty"`
	Placeholder string              `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Help        string              `json:"help,omitempty" yaml:"help,omitempty"`
	Rows        int                 `json:"rows,omitempty" yaml:"rows,omitempty"`
	Disabled    bool                `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Class       string              `json:"class,omitempty" yaml:"class,omitempty"`
	Default     string              `json:"default,omitempty" yaml:"default,omitempty"`
	Required    bool                `json:"required,omitempty" yaml:"required,omitempty"`
	Rules       validation.RuleSpec `json:"rules,omitempty" yaml:"rules,omitempty"`
}

func (f Field) required() bool {
	return f.Required || f.Rules.Required
}

// Validate checks structural constraints and that every rule compiles.
func (d Definition) Validate(customs *validation.CustomRegistry) error {
	if strings.TrimSpace(d.ID) == "" {
		return ErrMissingID
	}
	if len(d.Fields) == 0 {
		return ErrNoFields
	}
	seen := make(map[string]struct{}, len(d.Fields))
	for i, field := range d.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return fmt.Errorf("%w (field #%d)", ErrFieldName, i+1)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		seen[name] = struct{}{}
		if !field.Kind.Valid() {
			return fmt.Errorf("%w %q on field %q", ErrUnknownKind, field.Kind, name)
		}
		if _, err := field.Rules.Compile(customs); err != nil {
			return fmt.Errorf("definition: field %q: %w", name, err)
		}
	}
	return nil
}

// Model converts the definition into the presentation model.
func (d Definition) Model() model.FormModel {
	out := model.FormModel{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Action:      d.Action,
		Method:      d.Method,
		SubmitLabel: d.SubmitLabel,
		ResetLabel:  d.ResetLabel,
		Fields:      make([]model.Field, 0, len(d.Fields)),
	}
	for _, field := range d.Fields {
		kind := field.Kind
		if kind == "" {
			kind = model.FieldKindInput
		}
		out.Fields = append(out.Fields, model.Field{
			Name:        strings.TrimSpace(field.Name),
			Label:       field.Label,
			Type:        field.Type,
			Kind:        kind,
			Placeholder: field.Placeholder,
			Help:        field.Help,
			Rows:        field.Rows,
			Disabled:    field.Disabled,
			Required:    field.required(),
			Class:       field.Class,
		})
	}
	return out
}

// Rules compiles the rule set. Fields with no constraints get no entry.
func (d Definition) Rules(customs *validation.CustomRegistry) (validation.RuleSet, error) {
	specs := make(map[string]validation.RuleSpec, len(d.Fields))
	for _, field := range d.Fields {
		spec := field.Rules
		spec.Required = field.required()
		if spec.IsZero() {
			continue
		}
		specs[strings.TrimSpace(field.Name)] = spec
	}
	rules, err := validation.CompileSet(specs, customs)
	if err != nil {
		return nil, fmt.Errorf("definition: %w", err)
	}
	return rules, nil
}

// InitialValues returns the default value of every field.
func (d Definition) InitialValues() validation.Values {
	values := make(validation.Values, len(d.Fields))
	for _, field := range d.Fields {
		values[strings.TrimSpace(field.Name)] = field.Default
	}
	return values
}

// NewForm validates the definition and builds a form store seeded with the
// initial values and compiled rules. Options are applied after the rules.
func (d Definition) NewForm(customs *validation.CustomRegistry, options ...form.Option) (*form.Form, error) {
	if err := d.Validate(customs); err != nil {
		return nil, err
	}
	rules, err := d.Rules(customs)
	if err != nil {
		return nil, err
	}
	opts := append([]form.Option{form.WithRules(rules)}, options...)
	return form.New(d.InitialValues(), opts...), nil
}
