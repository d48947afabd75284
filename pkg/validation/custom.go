package validation

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	MessagePhoneDigits = "Phone number must be at least 10 digits"
	MessageHTTPURL     = "Website URL must start with http:// or https://"
)

var (
	tagValidatorOnce sync.Once
	tagValidator     *validator.Validate
)

func tags() *validator.Validate {
	tagValidatorOnce.Do(func() {
		tagValidator = validator.New()
	})
	return tagValidator
}

// Tag returns a CustomFunc that runs a go-playground/validator tag (for
// example "url", "alphanum" or "e164") against the value and fails with
// message when the tag rejects it. An empty message falls back to a generic
// one naming the tag.
func Tag(tag, message string) CustomFunc {
	tag = strings.TrimSpace(tag)
	if message == "" {
		message = fmt.Sprintf("Value does not satisfy %q", tag)
	}
	return func(value string) string {
		if tag == "" {
			return ""
		}
		if err := tags().Var(value, tag); err != nil {
			return message
		}
		return ""
	}
}

// MinDigits fails values containing fewer than n ASCII digits, ignoring any
// other characters such as spaces, dashes or parentheses.
func MinDigits(n int, message string) CustomFunc {
	return func(value string) string {
		digits := 0
		for _, r := range value {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		if digits < n {
			return message
		}
		return ""
	}
}

// HTTPPrefix fails non-empty values that do not start with "http".
func HTTPPrefix(message string) CustomFunc {
	return func(value string) string {
		if value != "" && !strings.HasPrefix(value, "http") {
			return message
		}
		return ""
	}
}

// Chain runs each function in order and returns the first failure.
func Chain(funcs ...CustomFunc) CustomFunc {
	return func(value string) string {
		for _, fn := range funcs {
			if fn == nil {
				continue
			}
			if message := fn(value); message != "" {
				return message
			}
		}
		return ""
	}
}

// CustomRegistry stores named custom validators that declarative rule specs
// can reference.
type CustomRegistry struct {
	mu    sync.RWMutex
	funcs map[string]CustomFunc
}

// NewCustomRegistry returns an empty registry.
func NewCustomRegistry() *CustomRegistry {
	return &CustomRegistry{funcs: make(map[string]CustomFunc)}
}

// DefaultCustoms returns a registry seeded with the built-in validators:
// "phoneDigits" and "httpURL".
func DefaultCustoms() *CustomRegistry {
	reg := NewCustomRegistry()
	reg.MustRegister("phoneDigits", MinDigits(10, MessagePhoneDigits))
	reg.MustRegister("httpURL", HTTPPrefix(MessageHTTPURL))
	return reg
}

// Register adds fn under name. Duplicate names return an error.
func (r *CustomRegistry) Register(name string, fn CustomFunc) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("validation: custom validator name is required")
	}
	if fn == nil {
		return fmt.Errorf("validation: custom validator %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[name]; exists {
		return fmt.Errorf("validation: custom validator %q already registered", name)
	}
	r.funcs[name] = fn
	return nil
}

// MustRegister panics on registration failure.
func (r *CustomRegistry) MustRegister(name string, fn CustomFunc) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Get returns the validator registered under name.
func (r *CustomRegistry) Get(name string) (CustomFunc, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.funcs[strings.TrimSpace(name)]
	return fn, ok
}

// Names lists the registered names in sorted order.
func (r *CustomRegistry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
