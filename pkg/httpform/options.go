package httpform

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-floatform/pkg/render"
	"github.com/goliatone/go-floatform/pkg/validation"
)

// DefaultSuccessNotice is shown above the reset form after a valid submit.
const DefaultSuccessNotice = "Form submitted successfully!"

// DefaultFailureMessage is shown when the submit callback fails without
// field errors.
const DefaultFailureMessage = "We could not process your submission. Please try again."

// SubmitFunc receives the values of a valid submission. Returning a
// *FieldErrors re-renders the form with those messages.
type SubmitFunc func(ctx context.Context, values validation.Values) error

// HiddenFunc supplies per-request hidden fields such as CSRF tokens.
type HiddenFunc func(r *http.Request) []render.HiddenField

type Option func(*Handler)

func WithOnSubmit(fn SubmitFunc) Option {
	return func(h *Handler) {
		h.onSubmit = fn
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithHidden adds static hidden fields to every rendered form.
func WithHidden(fields ...render.HiddenField) Option {
	return func(h *Handler) {
		h.hidden = append(h.hidden, fields...)
	}
}

// WithHiddenFunc adds hidden fields computed from the request.
func WithHiddenFunc(fn HiddenFunc) Option {
	return func(h *Handler) {
		h.hiddenFunc = fn
	}
}

// WithCustoms resolves custom rule names against registry instead of the
// built-in one.
func WithCustoms(registry *validation.CustomRegistry) Option {
	return func(h *Handler) {
		h.customs = registry
	}
}

func WithSuccessNotice(notice string) Option {
	return func(h *Handler) {
		if notice != "" {
			h.successNotice = notice
		}
	}
}

// WithLayout wraps rendered forms in a full HTML page when the renderer
// produces HTML.
func WithLayout(enabled bool) Option {
	return func(h *Handler) {
		h.layout = enabled
	}
}

// WithMaxBodyBytes caps the request body size. Defaults to 1 MiB.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}
