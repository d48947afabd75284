// Package tui collects form values interactively in a terminal. Each field is
// prompted in order and validated when the answer is given, so a bad answer
// is reported and asked again before moving on.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-floatform/pkg/form"
	"github.com/goliatone/go-floatform/pkg/model"
	"github.com/goliatone/go-floatform/pkg/render"
	"github.com/goliatone/go-floatform/pkg/validation"
)

// Name is the registry name of the renderer.
const Name = "tui"

// Renderer implements render.Renderer for terminal sessions. The output is
// the serialized answers, not markup.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	styles       Styles
	maxAttempts  int
	logger       *log.Logger
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
		styles:       DefaultStyles(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	if _, ok := ParseOutputFormat(string(r.outputFormat)); !ok {
		return nil, fmt.Errorf("tui: unknown output format %q", r.outputFormat)
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Render prompts for every enabled field of spec, starting from the values
// in options, and returns the serialized answers. Disabled fields keep their
// starting value. A session whose answers fail whole-form validation returns
// a *ValidationError.
func (r *Renderer) Render(ctx context.Context, spec model.FormModel, options render.RenderOptions) ([]byte, error) {
	store, err := r.Collect(ctx, spec, options)
	if err != nil {
		return nil, err
	}
	return r.serialize(spec, store.Values())
}

// Collect runs the prompt session and returns the populated store.
func (r *Renderer) Collect(ctx context.Context, spec model.FormModel, options render.RenderOptions) (*form.Form, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	initial := make(validation.Values, len(spec.Fields))
	for _, field := range spec.Fields {
		initial[field.Name] = options.Values[field.Name]
	}
	store := form.New(initial, form.WithRules(options.Rules), form.WithLogger(r.logger))
	if len(options.Errors) > 0 {
		store.SetErrors(options.Errors)
	}

	for _, field := range spec.Fields {
		if field.Disabled {
			continue
		}
		if err := r.promptField(ctx, store, field); err != nil {
			return nil, err
		}
	}

	if !store.Validate() {
		r.logger.Info("form invalid after prompts", "form", spec.ID, "errors", len(store.Errors()))
		return store, &ValidationError{Errors: store.Errors()}
	}
	return store, nil
}

func (r *Renderer) promptField(ctx context.Context, store *form.Form, field model.Field) error {
	rules := store.Rules()
	if rules.Required(field.Name) {
		field.Required = true
	}
	label := field.LabelText()

	if message := store.Error(field.Name); message != "" {
		if err := r.driver.Info(ctx, r.styles.Error.Render(message)); err != nil {
			return err
		}
	}

	for attempt := 1; ; attempt++ {
		answer, err := r.ask(ctx, field, label, store.Value(field.Name))
		if err != nil {
			return err
		}

		store.SetFieldValue(field.Name, answer)
		message, ok := store.Blur(field.Name)
		if ok {
			r.logger.Debug("field accepted", "field", field.Name, "attempt", attempt)
			return nil
		}

		if err := r.driver.Info(ctx, r.styles.Error.Render(fmt.Sprintf("%s: %s", displayLabel(field), message))); err != nil {
			return err
		}
		if r.maxAttempts > 0 && attempt >= r.maxAttempts {
			r.logger.Debug("giving up on field", "field", field.Name, "attempts", attempt)
			notice := fmt.Sprintf("%s: keeping the last answer after %d attempts", displayLabel(field), attempt)
			return r.driver.Info(ctx, r.styles.Info.Render(notice))
		}
	}
}

func (r *Renderer) ask(ctx context.Context, field model.Field, label, current string) (string, error) {
	switch {
	case field.IsTextarea():
		return r.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: current, Help: field.Help})
	case field.InputType() == "password":
		return r.driver.Password(ctx, InputConfig{Message: label, Help: field.Help})
	default:
		return r.driver.Input(ctx, InputConfig{Message: label, Default: current, Help: field.Help})
	}
}

func (r *Renderer) serialize(spec model.FormModel, values validation.Values) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		encoded := url.Values{}
		for _, name := range values.Keys() {
			encoded.Set(name, values[name])
		}
		return []byte(encoded.Encode()), nil
	case OutputFormatText:
		return []byte(r.prettyPrint(spec, values)), nil
	default:
		out, err := json.Marshal(values)
		if err != nil {
			return nil, fmt.Errorf("tui: encode json: %w", err)
		}
		return out, nil
	}
}

func (r *Renderer) prettyPrint(spec model.FormModel, values validation.Values) string {
	width := 0
	for _, field := range spec.Fields {
		if n := len([]rune(displayLabel(field))); n > width {
			width = n
		}
	}

	var b strings.Builder
	for _, field := range spec.Fields {
		label := displayLabel(field)
		padding := strings.Repeat(" ", width-len([]rune(label)))
		fmt.Fprintf(&b, "%s:%s %s\n", r.styles.Label.Render(label), padding, values[field.Name])
	}
	return b.String()
}

func displayLabel(field model.Field) string {
	if field.Label != "" {
		return field.Label
	}
	return field.Name
}
