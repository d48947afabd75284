package validation

import (
	"fmt"
	"strings"
)

const (
	MessageRequired      = "This field is required"
	MessageInvalidEmail  = "Please enter a valid email address"
	MessageInvalidPhone  = "Please enter a valid phone number"
	MessageInvalidFormat = "Invalid format"
)

func minLengthMessage(n int) string {
	return fmt.Sprintf("Minimum %d characters required", n)
}

func maxLengthMessage(n int) string {
	return fmt.Sprintf("Maximum %d characters allowed", n)
}

// patternMessage picks the failure message from the pattern source text.
func patternMessage(source string) string {
	switch {
	case strings.Contains(source, "@"):
		return MessageInvalidEmail
	case strings.Contains(source, `\d`):
		return MessageInvalidPhone
	default:
		return MessageInvalidFormat
	}
}
