package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// OutputFormat controls how collected values are serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits a JSON object keyed by field name.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatFormURLEncoded emits application/x-www-form-urlencoded.
	OutputFormatFormURLEncoded OutputFormat = "form"
	// OutputFormatText emits one aligned "Label: value" line per field.
	OutputFormatText OutputFormat = "text"
)

// ParseOutputFormat maps a flag value to an OutputFormat.
func ParseOutputFormat(raw string) (OutputFormat, bool) {
	switch OutputFormat(raw) {
	case OutputFormatJSON, OutputFormatFormURLEncoded, OutputFormatText:
		return OutputFormat(raw), true
	case "":
		return OutputFormatJSON, true
	default:
		return "", false
	}
}

// Styles are applied to messages the renderer prints between prompts.
type Styles struct {
	Error lipgloss.Style
	Info  lipgloss.Style
	Label lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Info:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Label: lipgloss.NewStyle().Bold(true),
	}
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the survey driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

func WithStyles(styles Styles) Option {
	return func(r *Renderer) {
		r.styles = styles
	}
}

// WithMaxAttempts bounds how many times a field is asked again after a
// failed answer. Zero keeps asking until the answer passes.
func WithMaxAttempts(n int) Option {
	return func(r *Renderer) {
		if n >= 0 {
			r.maxAttempts = n
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}
