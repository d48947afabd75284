package httpform

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors lets a SubmitFunc reject a submission with messages keyed by
// field path. Keys are resolved with render.MapErrorPayload, so JSON pointer
// and dotted paths work; unknown keys become form-level messages.
type FieldErrors struct {
	Fields map[string][]string
}

// NewFieldError returns a FieldErrors with a single message.
func NewFieldError(field, message string) *FieldErrors {
	return &FieldErrors{Fields: map[string][]string{field: {message}}}
}

func (e *FieldErrors) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, strings.Join(e.Fields[key], ", ")))
	}
	return "httpform: submission rejected (" + strings.Join(parts, "; ") + ")"
}
