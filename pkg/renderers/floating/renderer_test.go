package floating_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-floatform/pkg/model"
	"github.com/goliatone/go-floatform/pkg/render"
	"github.com/goliatone/go-floatform/pkg/renderers/floating"
	"github.com/goliatone/go-floatform/pkg/testsupport"
	"github.com/goliatone/go-floatform/pkg/validation"
)

func newRenderer(t *testing.T, options ...floating.Option) *floating.Renderer {
	t.Helper()

	r, err := floating.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return r
}

func renderContact(t *testing.T, r *floating.Renderer, opts render.RenderOptions) string {
	t.Helper()

	if opts.Rules == nil {
		opts.Rules = testsupport.ContactRules(t)
	}
	out, err := r.Render(testsupport.Context(), testsupport.ContactDefinition().Model(), opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

// fieldSnippet returns the markup of a single field wrapper.
func fieldSnippet(t *testing.T, html, name string) string {
	t.Helper()

	marker := `data-field="` + name + `"`
	start := strings.Index(html, marker)
	if start < 0 {
		t.Fatalf("field %q not rendered in:\n%s", name, html)
	}
	rest := html[start+len(marker):]
	end := strings.Index(rest, `data-field="`)
	if end < 0 {
		end = strings.Index(rest, "</form>")
	}
	return rest[:end]
}

func TestRenderMarksFieldState(t *testing.T) {
	r := newRenderer(t)
	html := renderContact(t, r, render.RenderOptions{
		Values: map[string]string{"name": "Ada", "email": "not-an-email"},
		Errors: validation.Errors{"email": validation.MessageInvalidEmail},
	})

	name := fieldSnippet(t, html, "name")
	for _, want := range []string{"ff-floated", "border-gray-300", `value="Ada"`, "Full Name *", `minlength="2"`, " required"} {
		if !strings.Contains(name, want) {
			t.Fatalf("name field missing %q:\n%s", want, name)
		}
	}
	if strings.Contains(name, "border-red-300") || strings.Contains(name, `role="alert"`) {
		t.Fatalf("name field should not be invalid:\n%s", name)
	}

	email := fieldSnippet(t, html, "email")
	for _, want := range []string{
		"border-red-300",
		`type="email"`,
		`aria-invalid="true"`,
		validation.MessageInvalidEmail,
		"peer-[:not(:placeholder-shown)]:text-red-600",
		"ff-invalid",
	} {
		if !strings.Contains(email, want) {
			t.Fatalf("email field missing %q:\n%s", want, email)
		}
	}

	company := fieldSnippet(t, html, "company")
	if strings.Contains(company, "ff-floated") {
		t.Fatalf("empty field should not float:\n%s", company)
	}
	if !strings.Contains(company, `placeholder=" "`) {
		t.Fatalf("expected single-space placeholder:\n%s", company)
	}

	website := fieldSnippet(t, html, "website")
	if !strings.Contains(website, ">Website</label>") {
		t.Fatalf("optional label should have no marker:\n%s", website)
	}
	if !strings.Contains(website, `pattern="^https?://.+"`) {
		t.Fatalf("expected pattern attribute:\n%s", website)
	}

	message := fieldSnippet(t, html, "message")
	for _, want := range []string{"<textarea", `rows="5"`, `maxlength="500"`, "resize-none"} {
		if !strings.Contains(message, want) {
			t.Fatalf("message field missing %q:\n%s", want, message)
		}
	}
}

func TestRenderFormChrome(t *testing.T) {
	r := newRenderer(t)
	html := renderContact(t, r, render.RenderOptions{
		Hidden:     []render.HiddenField{render.CSRFToken("_csrf", "tok<en>")},
		Notice:     "Form submitted successfully!",
		FormErrors: []string{"Service unavailable", " Service unavailable "},
	})

	for _, want := range []string{
		`<form id="contact"`,
		`method="post"`,
		`action="/contact"`,
		`<input type="hidden" name="_csrf" value="tok&lt;en&gt;">`,
		`role="status">Form submitted successfully!</div>`,
		">Send message</button>",
		">Reset</button>",
		"<h2",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("form missing %q:\n%s", want, html)
		}
	}
	if got := strings.Count(html, "Service unavailable"); got != 1 {
		t.Fatalf("expected deduplicated form error, got %d occurrences", got)
	}

	order := []string{`data-field="name"`, `data-field="email"`, `data-field="phone"`, `data-field="company"`, `data-field="website"`, `data-field="message"`}
	last := -1
	for _, marker := range order {
		idx := strings.Index(html, marker)
		if idx <= last {
			t.Fatalf("field %s out of order", marker)
		}
		last = idx
	}
}

func TestRenderMethodOverride(t *testing.T) {
	r := newRenderer(t)
	form := model.FormModel{ID: "profile", Method: "patch", Fields: []model.Field{{Name: "bio", Label: "Bio"}}}

	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, `method="post"`) || !strings.Contains(html, `name="_method" value="PATCH"`) {
		t.Fatalf("expected method override:\n%s", html)
	}
	if !strings.Contains(html, ">Submit</button>") {
		t.Fatalf("expected default submit label:\n%s", html)
	}
	if strings.Contains(html, `type="reset"`) {
		t.Fatalf("reset button should be omitted without a label")
	}
}

func TestRenderSanitizesLabels(t *testing.T) {
	r := newRenderer(t)
	form := model.FormModel{ID: "f", Fields: []model.Field{{
		Name:  "first",
		Label: `Name <em>first</em><script>alert(1)</script>`,
		Help:  `<a href="javascript:alert(1)">help</a>`,
	}}}

	out, err := r.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<em>first</em>") {
		t.Fatalf("expected inline markup kept:\n%s", html)
	}
	if strings.Contains(html, "<script") || strings.Contains(html, "javascript:") {
		t.Fatalf("expected unsafe markup stripped:\n%s", html)
	}
}

func TestRenderEscapesValuesAndErrors(t *testing.T) {
	r := newRenderer(t)
	form := model.FormModel{ID: "f", Fields: []model.Field{{Name: "note", Kind: model.FieldKindTextarea}}}

	out, err := r.Render(context.Background(), form, render.RenderOptions{
		Values: map[string]string{"note": "</textarea><b>x</b>"},
		Errors: validation.Errors{"note": "<i>bad</i>"},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if strings.Contains(html, "<b>x</b>") || strings.Contains(html, "<i>bad</i>") {
		t.Fatalf("values and errors must be escaped:\n%s", html)
	}
	if !strings.Contains(html, `rows="4"`) {
		t.Fatalf("expected default textarea rows:\n%s", html)
	}
}

func TestRenderWithTheme(t *testing.T) {
	cfg, err := floating.ThemeConfig("midnight", "contrast")
	if err != nil {
		t.Fatalf("theme config: %v", err)
	}
	r := newRenderer(t, floating.WithTheme(cfg))

	if got := r.Classes().ControlInvalid; got != "border-red-500" {
		t.Fatalf("invalid border = %q, want variant token", got)
	}
	if got := r.Classes().Error; !strings.Contains(got, "text-rose-400") {
		t.Fatalf("error class = %q, want base theme token", got)
	}

	html := renderContact(t, r, render.RenderOptions{Errors: validation.Errors{"name": validation.MessageRequired}})
	for _, want := range []string{`data-theme="midnight"`, `data-theme-variant="contrast"`, `style="--brand: #facc15;"`, "border-red-500", "border-white"} {
		if !strings.Contains(html, want) {
			t.Fatalf("themed form missing %q:\n%s", want, html)
		}
	}
	if strings.Contains(html, "<link") {
		t.Fatalf("no stylesheet asset configured")
	}
}

func TestManifestConfig(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":              "#123456",
			floating.TokenSubmit: "btn btn-primary",
		},
		Assets: theme.Assets{
			Prefix: "/assets/acme/",
			Files:  map[string]string{floating.AssetStylesheet: "form.css"},
		},
	}

	cfg, err := floating.ManifestConfig(manifest, "")
	if err != nil {
		t.Fatalf("manifest config: %v", err)
	}
	if diff := cmp.Diff(map[string]string{"--brand": "#123456"}, cfg.CSSVars); diff != "" {
		t.Fatalf("css vars mismatch (-want +got):\n%s", diff)
	}
	if got := cfg.AssetURL(floating.AssetStylesheet); got != "/assets/acme/form.css" {
		t.Fatalf("asset url = %q", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Fatalf("missing asset should resolve empty, got %q", got)
	}

	html := renderContact(t, newRenderer(t, floating.WithTheme(cfg)), render.RenderOptions{})
	if !strings.HasPrefix(html, `<link rel="stylesheet" href="/assets/acme/form.css">`) {
		t.Fatalf("expected stylesheet link first:\n%s", html)
	}
	if !strings.Contains(html, `class="btn btn-primary"`) {
		t.Fatalf("expected submit token applied:\n%s", html)
	}

	if _, err := floating.ManifestConfig(manifest, "dark"); err == nil {
		t.Fatalf("expected unknown variant error")
	}
	if _, err := floating.ThemeConfig("nope", ""); err == nil {
		t.Fatalf("expected unknown theme error")
	}
	if cfg, err := floating.ThemeConfig("", ""); cfg != nil || err != nil {
		t.Fatalf("empty theme name should resolve to nil, got %v, %v", cfg, err)
	}
}

func TestTemplatesDirOverridesField(t *testing.T) {
	dir := t.TempDir()
	custom := `<div data-field="{{ name }}" class="custom">{{ label|safe }}{% if required %}!{% endif %}</div>` + "\n"
	if err := os.WriteFile(filepath.Join(dir, floating.FieldTemplate), []byte(custom), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}

	html := renderContact(t, newRenderer(t, floating.WithTemplatesDir(dir)), render.RenderOptions{})
	if !strings.Contains(html, `<div data-field="name" class="custom">Full Name!</div>`) {
		t.Fatalf("expected custom field template:\n%s", html)
	}
	if !strings.Contains(html, `<form id="contact"`) {
		t.Fatalf("form template should fall back to the embedded set:\n%s", html)
	}
}

func TestThemePartialSelectsTemplate(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "compact-field.tmpl"), []byte(`<span data-field="{{ name }}"></span>`), 0o644); err != nil {
		t.Fatalf("write template: %v", err)
	}
	cfg := &theme.RendererConfig{
		Theme:    "compact",
		Partials: map[string]string{floating.FieldTemplate: "compact-field.tmpl"},
	}

	html := renderContact(t, newRenderer(t, floating.WithTemplatesDir(dir), floating.WithTheme(cfg)), render.RenderOptions{})
	if got := strings.Count(html, "<span data-field="); got != 6 {
		t.Fatalf("expected 6 partial fields, got %d:\n%s", got, html)
	}
}

func TestRenderField(t *testing.T) {
	r := newRenderer(t)
	rules := testsupport.ContactRules(t)
	view := model.BuildView(model.Field{Name: "phone", Label: "Phone Number", Type: "tel"}, "123", validation.MessagePhoneDigits)

	html, err := r.RenderField("contact", view, rules.Rule("phone"))
	if err != nil {
		t.Fatalf("render field: %v", err)
	}
	for _, want := range []string{`id="contact-phone"`, "Phone Number *", validation.MessagePhoneDigits, "border-red-300"} {
		if !strings.Contains(html, want) {
			t.Fatalf("field missing %q:\n%s", want, html)
		}
	}
}

func TestRenderTextareaKeepsBlankPlaceholder(t *testing.T) {
	r := newRenderer(t)
	view := model.BuildView(model.Field{
		Name:        "message",
		Label:       "Message",
		Kind:        model.FieldKindTextarea,
		Placeholder: "Tell us more",
	}, "", "")

	html, err := r.RenderField("contact", view, nil)
	if err != nil {
		t.Fatalf("render field: %v", err)
	}
	if !strings.Contains(html, `placeholder=" "`) || strings.Contains(html, "Tell us more") {
		t.Fatalf("textarea should keep the blank placeholder:\n%s", html)
	}
}

func TestRenderSkipsPatternsBrowsersReject(t *testing.T) {
	r := newRenderer(t)
	html := renderContact(t, r, render.RenderOptions{})

	phone := fieldSnippet(t, html, "phone")
	if strings.Contains(phone, "pattern=") {
		t.Fatalf("phone pattern should not reach the browser:\n%s", phone)
	}
	if !strings.Contains(phone, " required") {
		t.Fatalf("phone should keep its other constraints:\n%s", phone)
	}
}

func TestRenderHonoursContext(t *testing.T) {
	r := newRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Render(ctx, testsupport.ContactDefinition().Model(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected context error")
	}
	if r.Name() != floating.Name || !strings.HasPrefix(r.ContentType(), "text/html") {
		t.Fatalf("unexpected renderer identity %s %s", r.Name(), r.ContentType())
	}
}
