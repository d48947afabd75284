package floatform

import (
	"context"
	"fmt"

	"github.com/goliatone/go-floatform/pkg/definition"
	"github.com/goliatone/go-floatform/pkg/form"
	"github.com/goliatone/go-floatform/pkg/render"
	"github.com/goliatone/go-floatform/pkg/renderers/floating"
	"github.com/goliatone/go-floatform/pkg/renderers/tui"
	"github.com/goliatone/go-floatform/pkg/validation"
)

type (
	// Values maps field names to their current string values.
	Values = validation.Values
	// Errors maps field names to their current messages.
	Errors = validation.Errors
	// Rule is the validation rule of one field.
	Rule = validation.Rule
	// RuleSet maps field names to rules.
	RuleSet = validation.RuleSet
	// Form is the form state store.
	Form = form.Form
	// Definition is a declarative form description.
	Definition = definition.Definition
	// RenderOptions carry values, errors and rules to a renderer.
	RenderOptions = render.RenderOptions
)

// NewForm creates a store over initial with rules.
func NewForm(initial Values, rules RuleSet, options ...form.Option) *Form {
	opts := append([]form.Option{form.WithRules(rules)}, options...)
	return form.New(initial, opts...)
}

// ValidateField validates a single value against rule.
func ValidateField(value string, rule *Rule) (string, bool) {
	return validation.ValidateField(value, rule)
}

// ValidateForm validates every value against rules.
func ValidateForm(values Values, rules RuleSet) (bool, Errors) {
	return validation.ValidateForm(values, rules)
}

// RenderHTML renders the current state of f with the floating renderer
// using the definition's presentation model.
func RenderHTML(ctx context.Context, def Definition, f *Form, options ...floating.Option) ([]byte, error) {
	if f == nil {
		return nil, fmt.Errorf("floatform: form is nil")
	}
	renderer, err := floating.New(options...)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, def.Model(), render.RenderOptions{
		Values: f.Values(),
		Errors: f.Errors(),
		Rules:  f.Rules(),
	})
}

// RegistryConfig configures the renderers NewRegistry registers.
type RegistryConfig struct {
	Floating []floating.Option
	TUI      []tui.Option
}

// NewRegistry returns a registry holding the floating HTML renderer (the
// default) and the terminal renderer.
func NewRegistry(cfg RegistryConfig) (*render.Registry, error) {
	html, err := floating.New(cfg.Floating...)
	if err != nil {
		return nil, err
	}
	term, err := tui.New(cfg.TUI...)
	if err != nil {
		return nil, err
	}

	registry := render.NewRegistry()
	if err := registry.Register(html); err != nil {
		return nil, err
	}
	if err := registry.Register(term); err != nil {
		return nil, err
	}
	return registry, nil
}
