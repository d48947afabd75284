package validation

import (
	"regexp"
	"sort"
)

// Values maps field names to their current string values.
type Values map[string]string

// Clone returns an independent copy of the values.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// Keys returns the field names in sorted order.
func (v Values) Keys() []string {
	keys := make([]string, 0, len(v))
	for key := range v {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Errors maps field names to validation messages. A missing key or an empty
// message both mean the field has no error.
type Errors map[string]string

// Clone returns an independent copy with empty messages dropped.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for key, message := range e {
		if message == "" {
			continue
		}
		out[key] = message
	}
	return out
}

// Has reports whether field carries a non-empty message.
func (e Errors) Has(field string) bool {
	return e[field] != ""
}

// Empty reports whether no field carries a message.
func (e Errors) Empty() bool {
	for _, message := range e {
		if message != "" {
			return false
		}
	}
	return true
}

// CustomFunc inspects a raw value and returns a message to fail it, or an
// empty string to let it pass. Implementations must not mutate form state.
type CustomFunc func(value string) string

// Rule describes the constraints attached to a single field. Zero MinLength
// and MaxLength values mean the bound is not set.
type Rule struct {
	Required  bool
	Pattern   *regexp.Regexp
	MinLength int
	MaxLength int
	Custom    CustomFunc
}

// RuleSet maps field names to rules. Fields without an entry always pass.
type RuleSet map[string]Rule

// Rule returns the rule for field, or nil when none is configured.
func (rs RuleSet) Rule(field string) *Rule {
	if rs == nil {
		return nil
	}
	rule, ok := rs[field]
	if !ok {
		return nil
	}
	return &rule
}

// Required reports whether field is configured as required.
func (rs RuleSet) Required(field string) bool {
	rule := rs.Rule(field)
	return rule != nil && rule.Required
}

// ValidateField looks up the rule for field and validates value against it.
func (rs RuleSet) ValidateField(field, value string) (string, bool) {
	return ValidateField(value, rs.Rule(field))
}

// Clone returns a shallow copy of the set. Rules hold no mutable state so a
// shallow copy is independent for callers that add or remove entries.
func (rs RuleSet) Clone() RuleSet {
	if rs == nil {
		return nil
	}
	out := make(RuleSet, len(rs))
	for key, rule := range rs {
		out[key] = rule
	}
	return out
}
