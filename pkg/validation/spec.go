package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnknownCustom is returned when a rule spec names a custom validator
// that is not registered.
var ErrUnknownCustom = errors.New("validation: unknown custom validator")

// RuleSpec is the serializable form of a Rule used by definition files.
type RuleSpec struct {
	Required   bool   `json:"required,omitempty" yaml:"required,omitempty"`
	Pattern    string `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MinLength  int    `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength  int    `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Custom     string `json:"custom,omitempty" yaml:"custom,omitempty"`
	Tag        string `json:"tag,omitempty" yaml:"tag,omitempty"`
	TagMessage string `json:"tagMessage,omitempty" yaml:"tagMessage,omitempty"`
}

// IsZero reports whether s configures nothing.
func (s RuleSpec) IsZero() bool {
	return s == RuleSpec{}
}

// Compile builds a Rule from s. Custom names are resolved against
// customs; a nil registry falls back to DefaultCustoms. When both a custom
// name and a tag are set the named validator runs first.
func (s RuleSpec) Compile(customs *CustomRegistry) (Rule, error) {
	rule := Rule{
		Required:  s.Required,
		MinLength: s.MinLength,
		MaxLength: s.MaxLength,
	}

	if s.MinLength < 0 || s.MaxLength < 0 {
		return Rule{}, fmt.Errorf("validation: length bounds must not be negative")
	}
	if s.MinLength > 0 && s.MaxLength > 0 && s.MinLength > s.MaxLength {
		return Rule{}, fmt.Errorf("validation: minLength %d exceeds maxLength %d", s.MinLength, s.MaxLength)
	}

	if pattern := strings.TrimSpace(s.Pattern); pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return Rule{}, fmt.Errorf("validation: compile pattern %q: %w", pattern, err)
		}
		rule.Pattern = re
	}

	var funcs []CustomFunc
	if name := strings.TrimSpace(s.Custom); name != "" {
		if customs == nil {
			customs = DefaultCustoms()
		}
		fn, ok := customs.Get(name)
		if !ok {
			return Rule{}, fmt.Errorf("%w: %q", ErrUnknownCustom, name)
		}
		funcs = append(funcs, fn)
	}
	if tag := strings.TrimSpace(s.Tag); tag != "" {
		funcs = append(funcs, Tag(tag, s.TagMessage))
	}
	switch len(funcs) {
	case 0:
	case 1:
		rule.Custom = funcs[0]
	default:
		rule.Custom = Chain(funcs...)
	}

	return rule, nil
}

// CompileSet compiles every spec keyed by field name. Errors name the field.
func CompileSet(specs map[string]RuleSpec, customs *CustomRegistry) (RuleSet, error) {
	set := make(RuleSet, len(specs))
	for field, spec := range specs {
		rule, err := spec.Compile(customs)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field, err)
		}
		set[field] = rule
	}
	return set, nil
}
