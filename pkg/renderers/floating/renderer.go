// Package floating renders forms as HTML with floating labels: the label
// sits inside the control while it is empty and moves above the value once
// the control holds text or has focus.
package floating

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/charmbracelet/log"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-floatform/pkg/model"
	"github.com/goliatone/go-floatform/pkg/render"
	rendertemplate "github.com/goliatone/go-floatform/pkg/render/template"
	"github.com/goliatone/go-floatform/pkg/render/template/pongo"
	"github.com/goliatone/go-floatform/pkg/validation"
)

// Name is the registry name of the renderer.
const Name = "floating"

const defaultSubmitLabel = "Submit"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	theme            *theme.RendererConfig
	classes          *Classes
	sanitizer        Sanitizer
	logger           *log.Logger
}

// WithTemplatesFS replaces the embedded templates.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from dir first and falls back to the
// embedded set for anything dir does not provide.
func WithTemplatesDir(dir string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(dir)
	}
}

// WithTemplateRenderer injects a template engine, bypassing the template
// sources entirely.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTheme applies theme tokens, CSS variables, partial overrides and the
// stylesheet asset.
func WithTheme(themeCfg *theme.RendererConfig) Option {
	return func(cfg *config) {
		cfg.theme = themeCfg
	}
}

// WithClasses replaces the default class set. Theme tokens still apply on
// top of it.
func WithClasses(classes Classes) Option {
	return func(cfg *config) {
		cfg.classes = &classes
	}
}

// WithSanitizer replaces LabelPolicy for label, help and description markup.
func WithSanitizer(s Sanitizer) Option {
	return func(cfg *config) {
		if s != nil {
			cfg.sanitizer = s
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// Renderer is the floating label HTML renderer.
type Renderer struct {
	templates     rendertemplate.TemplateRenderer
	classes       Classes
	theme         *theme.RendererConfig
	sanitizer     Sanitizer
	logger        *log.Logger
	formTemplate  string
	fieldTemplate string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer.
func New(options ...Option) (*Renderer, error) {
	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	engine := cfg.templateRenderer
	if engine == nil {
		opts := []pongo.Option{pongo.WithFS(cfg.templateFS), pongo.WithExtension(".tmpl")}
		if cfg.templateDir != "" {
			opts = append(opts, pongo.WithDir(cfg.templateDir))
		}
		built, err := pongo.New(opts...)
		if err != nil {
			return nil, fmt.Errorf("floating renderer: configure template renderer: %w", err)
		}
		engine = built
	}

	classes := DefaultClasses()
	if cfg.classes != nil {
		classes = *cfg.classes
	}

	r := &Renderer{
		templates:     engine,
		classes:       classes,
		theme:         cfg.theme,
		sanitizer:     cfg.sanitizer,
		logger:        cfg.logger,
		formTemplate:  FormTemplate,
		fieldTemplate: FieldTemplate,
	}
	if r.sanitizer == nil {
		r.sanitizer = LabelPolicy()
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}
	if cfg.theme != nil {
		r.classes = r.classes.WithTokens(cfg.theme.Tokens)
		if partial := strings.TrimSpace(cfg.theme.Partials[FormTemplate]); partial != "" {
			r.formTemplate = partial
		}
		if partial := strings.TrimSpace(cfg.theme.Partials[FieldTemplate]); partial != "" {
			r.fieldTemplate = partial
		}
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Classes returns the effective class set after theme tokens.
func (r *Renderer) Classes() Classes {
	return r.classes
}

// Render produces the form markup for form with the values, errors and
// rules in options.
func (r *Renderer) Render(ctx context.Context, form model.FormModel, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("floating renderer: template renderer is nil")
	}

	views := options.Views(form)
	fields := make([]string, 0, len(views))
	for _, view := range views {
		html, err := r.renderField(form.ID, view, options.Rules.Rule(view.Name))
		if err != nil {
			return nil, err
		}
		fields = append(fields, html)
	}

	data := r.formContext(form, options)
	data["fields"] = fields

	out, err := r.templates.Render(r.formTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("floating renderer: render form %q: %w", form.ID, err)
	}
	r.logger.Debug("rendered form", "form", form.ID, "fields", len(fields), "errors", len(options.Errors))
	return []byte(out), nil
}

// RenderField renders a single field view on its own, e.g. for partial page
// updates after a blur.
func (r *Renderer) RenderField(formID string, view model.FieldView, rule *validation.Rule) (string, error) {
	return r.renderField(formID, view, rule)
}

func (r *Renderer) renderField(formID string, view model.FieldView, rule *validation.Rule) (string, error) {
	out, err := r.templates.Render(r.fieldTemplate, r.fieldContext(formID, view, rule))
	if err != nil {
		return "", fmt.Errorf("floating renderer: render field %q: %w", view.Name, err)
	}
	return out, nil
}

func (r *Renderer) fieldContext(formID string, view model.FieldView, rule *validation.Rule) map[string]any {
	required := view.Required
	var minLength, maxLength int
	var pattern string
	if rule != nil {
		required = required || rule.Required
		minLength = rule.MinLength
		maxLength = rule.MaxLength
		if rule.Pattern != nil {
			pattern = browserPattern(rule.Pattern.String())
		}
	}

	label := view.Label
	if strings.TrimSpace(label) == "" {
		label = view.Name
	}

	textarea := view.IsTextarea()
	placeholder := view.PlaceholderText()
	if textarea {
		placeholder = model.DefaultPlaceholder
	}
	return map[string]any{
		"id":            fieldID(formID, view.Name),
		"name":          view.Name,
		"type":          view.InputType(),
		"value":         view.Value,
		"placeholder":   placeholder,
		"textarea":      textarea,
		"rows":          view.RowCount(),
		"required":      required,
		"disabled":      view.Disabled,
		"minlength":     minLength,
		"maxlength":     maxLength,
		"pattern":       pattern,
		"label":         r.sanitizer.Sanitize(label),
		"help":          r.sanitizer.Sanitize(view.Help),
		"error":         view.Error,
		"invalid":       view.Invalid,
		"floated":       view.Floated,
		"wrapper_class": r.classes.wrapperClass(view.Class, view.Floated, view.Invalid),
		"inner_class":   r.classes.Inner,
		"control_class": r.classes.controlClass(textarea, view.Invalid),
		"label_class":   r.classes.labelClass(view.Invalid, view.Disabled),
		"error_class":   r.classes.Error,
		"help_class":    r.classes.Help,
	}
}

func (r *Renderer) formContext(form model.FormModel, options render.RenderOptions) map[string]any {
	method, override := formMethod(form.Method)
	hidden := options.Hidden
	if override != "" {
		hidden = render.MergeHiddenFields(hidden, []render.HiddenField{render.Hidden("_method", override)})
	}

	submit := form.SubmitLabel
	if submit == "" {
		submit = defaultSubmitLabel
	}

	data := map[string]any{
		"form_id":      form.ID,
		"title":        form.Title,
		"description":  r.sanitizer.Sanitize(form.Description),
		"action":       form.Action,
		"method":       method,
		"hidden":       hidden,
		"notice":       strings.TrimSpace(options.Notice),
		"form_errors":  render.MergeFormErrors(options.FormErrors),
		"submit_label": submit,
		"reset_label":  form.ResetLabel,
		"classes":      r.classes,
	}
	if r.theme != nil {
		data["theme_name"] = r.theme.Theme
		data["theme_variant"] = r.theme.Variant
		data["css_vars"] = cssVarsStyle(r.theme.CSSVars)
		if r.theme.AssetURL != nil {
			data["stylesheet"] = r.theme.AssetURL(AssetStylesheet)
		}
	}
	return data
}

// formMethod maps the declared method onto what an HTML form can submit.
// Verbs other than GET and POST are posted with a _method override.
func formMethod(declared string) (string, string) {
	method := strings.ToUpper(strings.TrimSpace(declared))
	switch method {
	case "", "POST":
		return "post", ""
	case "GET":
		return "get", ""
	default:
		return "post", method
	}
}

func fieldID(formID, name string) string {
	if formID == "" {
		return "ff-" + name
	}
	return formID + "-" + name
}
