package form

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-floatform/pkg/validation"
)

// Option configures a Form at construction time.
type Option func(*Form)

// WithRules attaches the rule set used by Blur and Validate.
func WithRules(rules validation.RuleSet) Option {
	return func(f *Form) {
		f.rules = rules.Clone()
	}
}

// WithLogger routes store diagnostics to logger. Nil keeps the discard logger.
func WithLogger(logger *log.Logger) Option {
	return func(f *Form) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithListener subscribes fn before the form is returned.
func WithListener(fn Listener) Option {
	return func(f *Form) {
		f.Subscribe(fn)
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
