package validation

import (
	"strings"
	"unicode/utf8"
)

// ValidateField checks value against rule and returns the failure message
// with ok=false, or an empty message with ok=true. Checks short-circuit in a
// fixed order: required, empty-optional, pattern, minimum length, maximum
// length, custom. A nil rule always passes.
//
// Lengths are counted in runes on the raw (untrimmed) value.
func ValidateField(value string, rule *Rule) (string, bool) {
	if rule == nil {
		return "", true
	}

	blank := strings.TrimSpace(value) == ""
	if rule.Required && blank {
		return MessageRequired, false
	}
	if blank {
		return "", true
	}

	if rule.Pattern != nil && !rule.Pattern.MatchString(value) {
		return patternMessage(rule.Pattern.String()), false
	}

	length := utf8.RuneCountInString(value)
	if rule.MinLength > 0 && length < rule.MinLength {
		return minLengthMessage(rule.MinLength), false
	}
	if rule.MaxLength > 0 && length > rule.MaxLength {
		return maxLengthMessage(rule.MaxLength), false
	}

	if rule.Custom != nil {
		if message := rule.Custom(value); message != "" {
			return message, false
		}
	}

	return "", true
}

// ValidateForm checks every field present in values, not only those with a
// rule, and returns the overall outcome with a complete replacement error
// map. Required fields with a blank value fail without running the remaining
// checks; blank optional fields are skipped entirely.
func ValidateForm(values Values, rules RuleSet) (bool, Errors) {
	valid := true
	errs := make(Errors)

	for _, field := range values.Keys() {
		value := values[field]
		rule := rules.Rule(field)
		blank := strings.TrimSpace(value) == ""

		switch {
		case rule != nil && rule.Required && blank:
			errs[field] = MessageRequired
			valid = false
		case !blank:
			if message, ok := ValidateField(value, rule); !ok {
				errs[field] = message
				valid = false
			}
		}
	}

	return valid, errs
}
