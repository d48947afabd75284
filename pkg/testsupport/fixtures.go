package testsupport

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-floatform/pkg/definition"
	"github.com/goliatone/go-floatform/pkg/model"
	"github.com/goliatone/go-floatform/pkg/validation"
)

// Contact patterns used by the contact fixture.
const (
	EmailPattern   = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	PhonePattern   = `^\+?[\d\s\-()]+$`
	WebsitePattern = `^https?://.+`
)

// ContactDefinition returns the contact form used across renderer and
// handler tests: six fields, four of them required, one textarea.
func ContactDefinition() definition.Definition {
	return definition.Definition{
		ID:          "contact",
		Title:       "Contact us",
		Action:      "/contact",
		Method:      "POST",
		SubmitLabel: "Send message",
		ResetLabel:  "Reset",
		Fields: []definition.Field{
			{Name: "name", Label: "Full Name", Required: true, Rules: validation.RuleSpec{MinLength: 2}},
			{Name: "email", Label: "Email Address", Type: "email", Required: true, Rules: validation.RuleSpec{Pattern: EmailPattern}},
			{
				Name:     "phone",
				Label:    "Phone Number",
				Type:     "tel",
				Required: true,
				Rules:    validation.RuleSpec{Pattern: PhonePattern, Custom: "phoneDigits"},
			},
			{Name: "company", Label: "Company", Required: true},
			{Name: "website", Label: "Website", Type: "url", Rules: validation.RuleSpec{Pattern: WebsitePattern, Custom: "httpURL"}},
			{
				Name:  "message",
				Label: "Message",
				Kind:  model.FieldKindTextarea,
				Rows:  5,
				Rules: validation.RuleSpec{MinLength: 10, MaxLength: 500},
			},
		},
	}
}

// ContactRules compiles the contact rule set, failing the test on error.
func ContactRules(t *testing.T) validation.RuleSet {
	t.Helper()

	rules, err := ContactDefinition().Rules(nil)
	if err != nil {
		t.Fatalf("contact rules: %v", err)
	}
	return rules
}

// ValidContactValues is a submission that passes every contact rule.
func ValidContactValues() validation.Values {
	return validation.Values{
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"phone":   "+1 (555) 010-2030",
		"company": "Analytical Engines",
		"website": "https://example.com",
		"message": "I would like to hear more.",
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file as a string.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set and
// reports whether it did, so the caller can return early.
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput runs render against a buffer and returns both the
// returned string and what was written.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}
	return out, buf.String()
}
