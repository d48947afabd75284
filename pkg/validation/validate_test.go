package validation_test

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-floatform/pkg/validation"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[\d\s\-()]+$`)
	urlPattern   = regexp.MustCompile(`^https?://.+`)
)

func TestValidateField(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		rule    *validation.Rule
		wantMsg string
		wantOK  bool
	}{
		{name: "nil rule passes empty", value: "", rule: nil, wantOK: true},
		{name: "nil rule passes anything", value: "whatever", rule: nil, wantOK: true},
		{name: "required empty", value: "", rule: &validation.Rule{Required: true}, wantMsg: validation.MessageRequired},
		{name: "required whitespace", value: "   \t", rule: &validation.Rule{Required: true}, wantMsg: validation.MessageRequired},
		{
			name:    "required wins over other rules",
			value:   "  ",
			rule:    &validation.Rule{Required: true, Pattern: emailPattern, MinLength: 5, Custom: func(string) string { return "custom" }},
			wantMsg: validation.MessageRequired,
		},
		{
			name:   "optional empty skips everything",
			value:  " ",
			rule:   &validation.Rule{Pattern: emailPattern, MinLength: 5, Custom: func(string) string { return "custom" }},
			wantOK: true,
		},
		{name: "email pattern", value: "bad", rule: &validation.Rule{Pattern: emailPattern}, wantMsg: validation.MessageInvalidEmail},
		{name: "phone pattern", value: "abc", rule: &validation.Rule{Pattern: phonePattern}, wantMsg: validation.MessageInvalidPhone},
		{name: "generic pattern", value: "ftp://x", rule: &validation.Rule{Pattern: urlPattern}, wantMsg: validation.MessageInvalidFormat},
		{name: "pattern matches", value: "ada@example.com", rule: &validation.Rule{Pattern: emailPattern}, wantOK: true},
		{name: "min length", value: "a", rule: &validation.Rule{MinLength: 2}, wantMsg: "Minimum 2 characters required"},
		{name: "max length", value: "abcdef", rule: &validation.Rule{MaxLength: 5}, wantMsg: "Maximum 5 characters allowed"},
		{name: "length counts runes", value: "ñandú", rule: &validation.Rule{MaxLength: 5}, wantOK: true},
		{name: "length uses raw value", value: " ab ", rule: &validation.Rule{MinLength: 4}, wantOK: true},
		{
			name:    "pattern checked before length",
			value:   "x",
			rule:    &validation.Rule{Pattern: emailPattern, MinLength: 10},
			wantMsg: validation.MessageInvalidEmail,
		},
		{
			name:    "length checked before custom",
			value:   "x",
			rule:    &validation.Rule{MinLength: 3, Custom: func(string) string { return "custom" }},
			wantMsg: "Minimum 3 characters required",
		},
		{name: "custom message verbatim", value: "x", rule: &validation.Rule{Custom: func(string) string { return "Nope." }}, wantMsg: "Nope."},
		{name: "custom pass", value: "x", rule: &validation.Rule{Custom: func(string) string { return "" }}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := validation.ValidateField(tt.value, tt.rule)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v (message %q)", ok, tt.wantOK, msg)
			}
			if msg != tt.wantMsg {
				t.Fatalf("message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestValidateFieldSkipsLaterChecks(t *testing.T) {
	called := false
	rule := &validation.Rule{
		Pattern: emailPattern,
		Custom: func(string) string {
			called = true
			return ""
		},
	}
	if _, ok := validation.ValidateField("bad", rule); ok {
		t.Fatalf("expected failure")
	}
	if called {
		t.Fatalf("custom validator ran after pattern failure")
	}
}

func TestValidateFormScenarios(t *testing.T) {
	tests := []struct {
		name      string
		values    validation.Values
		rules     validation.RuleSet
		wantValid bool
		wantErrs  validation.Errors
	}{
		{
			name:      "A required email empty",
			values:    validation.Values{"email": ""},
			rules:     validation.RuleSet{"email": {Required: true}},
			wantValid: false,
			wantErrs:  validation.Errors{"email": validation.MessageRequired},
		},
		{
			name:      "B bad email",
			values:    validation.Values{"email": "bad"},
			rules:     validation.RuleSet{"email": {Required: true, Pattern: emailPattern}},
			wantValid: false,
			wantErrs:  validation.Errors{"email": validation.MessageInvalidEmail},
		},
		{
			name:   "C phone passes pattern fails custom",
			values: validation.Values{"phone": "12345"},
			rules: validation.RuleSet{"phone": {
				Pattern: phonePattern,
				Custom:  validation.MinDigits(10, validation.MessagePhoneDigits),
			}},
			wantValid: false,
			wantErrs:  validation.Errors{"phone": "Phone number must be at least 10 digits"},
		},
		{
			name:      "D fields without rules never fail",
			values:    validation.Values{"note": "", "company": "anything"},
			rules:     validation.RuleSet{},
			wantValid: true,
			wantErrs:  validation.Errors{},
		},
		{
			name:      "empty optional field has no entry",
			values:    validation.Values{"website": ""},
			rules:     validation.RuleSet{"website": {Pattern: urlPattern}},
			wantValid: true,
			wantErrs:  validation.Errors{},
		},
		{
			name: "all failures reported together",
			values: validation.Values{
				"name":    "A",
				"email":   "",
				"message": "hello",
			},
			rules: validation.RuleSet{
				"name":    {Required: true, MinLength: 2},
				"email":   {Required: true, Pattern: emailPattern},
				"message": {MinLength: 10, MaxLength: 500},
			},
			wantValid: false,
			wantErrs: validation.Errors{
				"name":    "Minimum 2 characters required",
				"email":   validation.MessageRequired,
				"message": "Minimum 10 characters required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, errs := validation.ValidateForm(tt.values, tt.rules)
			if valid != tt.wantValid {
				t.Fatalf("valid = %v, want %v", valid, tt.wantValid)
			}
			if diff := cmp.Diff(tt.wantErrs, errs); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateFormIsIdempotent(t *testing.T) {
	values := validation.Values{"email": "bad", "name": ""}
	rules := validation.RuleSet{
		"email": {Required: true, Pattern: emailPattern},
		"name":  {Required: true},
	}

	firstValid, firstErrs := validation.ValidateForm(values, rules)
	secondValid, secondErrs := validation.ValidateForm(values, rules)
	if firstValid != secondValid {
		t.Fatalf("valid differs between runs: %v vs %v", firstValid, secondValid)
	}
	if diff := cmp.Diff(firstErrs, secondErrs); diff != "" {
		t.Fatalf("errors differ between runs (-first +second):\n%s", diff)
	}
}

func TestValidateFormAgreesWithValidateFieldOnEmptyOptional(t *testing.T) {
	rule := validation.Rule{Pattern: emailPattern, MinLength: 3}
	msg, ok := validation.ValidateField("", &rule)
	if !ok || msg != "" {
		t.Fatalf("field check: got (%q, %v), want pass", msg, ok)
	}
	valid, errs := validation.ValidateForm(validation.Values{"email": ""}, validation.RuleSet{"email": rule})
	if !valid {
		t.Fatalf("form check failed: %v", errs)
	}
	if _, exists := errs["email"]; exists {
		t.Fatalf("expected no entry for empty optional field, got %q", errs["email"])
	}
}
