package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-floatform/pkg/validation"
)

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrInvalid is wrapped by ValidationError when the collected values fail
	// whole-form validation.
	ErrInvalid = errors.New("tui: form is invalid")
)

// ValidationError carries the error map of a failed session.
type ValidationError struct {
	Errors validation.Errors
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, key := range validation.Values(e.Errors).Keys() {
		parts = append(parts, fmt.Sprintf("%s: %s", key, e.Errors[key]))
	}
	return fmt.Sprintf("%s (%s)", ErrInvalid.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}
