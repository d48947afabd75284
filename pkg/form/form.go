package form

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/goliatone/go-floatform/pkg/validation"
)

// Form tracks the values and validation messages of one form instance.
type Form struct {
	initial validation.Values
	values  validation.Values
	errors  validation.Errors
	rules   validation.RuleSet
	logger  *log.Logger

	listeners    map[int]Listener
	order        []int
	nextListener int
}

// New seeds a Form with initial values. The snapshot is copied so later
// changes to the caller's map do not affect the form or its Reset target.
func New(initial validation.Values, options ...Option) *Form {
	f := &Form{
		initial: initial.Clone(),
		values:  initial.Clone(),
		errors:  make(validation.Errors),
		logger:  discardLogger(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Has reports whether field was present in the initial values.
func (f *Form) Has(field string) bool {
	_, ok := f.values[field]
	return ok
}

// Fields returns the known field names in sorted order.
func (f *Form) Fields() []string {
	return f.values.Keys()
}

// Value returns the current value of field.
func (f *Form) Value(field string) string {
	return f.values[field]
}

// Values returns a copy of the current values.
func (f *Form) Values() validation.Values {
	return f.values.Clone()
}

// Initial returns a copy of the snapshot Reset restores.
func (f *Form) Initial() validation.Values {
	return f.initial.Clone()
}

// Error returns the current message for field, or "" when it has none.
func (f *Form) Error(field string) string {
	return f.errors[field]
}

// Errors returns a copy of the current error map.
func (f *Form) Errors() validation.Errors {
	return f.errors.Clone()
}

// HasErrors reports whether any field carries a message.
func (f *Form) HasErrors() bool {
	return !f.errors.Empty()
}

// Rules returns the rule set attached to the form.
func (f *Form) Rules() validation.RuleSet {
	return f.rules
}

// SetFieldValue stores value for field and clears any message the field
// carries, before any revalidation happens.
func (f *Form) SetFieldValue(field, value string) {
	if !f.known(field, "set value") {
		return
	}
	f.values[field] = value
	if _, ok := f.errors[field]; ok {
		delete(f.errors, field)
		f.logger.Debug("cleared error on change", "field", field)
	}
	f.emit(EventChange, field)
}

// MarkFieldError records message for field. An empty message clears it.
func (f *Form) MarkFieldError(field, message string) {
	if !f.known(field, "mark error") {
		return
	}
	if message == "" {
		f.ClearFieldError(field)
		return
	}
	f.errors[field] = message
	f.emit(EventError, field)
}

// ClearFieldError removes any message recorded for field.
func (f *Form) ClearFieldError(field string) {
	if !f.known(field, "clear error") {
		return
	}
	delete(f.errors, field)
	f.emit(EventClear, field)
}

// Blur validates field against its rule and records the outcome: a failure
// stores the message, a pass clears the field's entry.
func (f *Form) Blur(field string) (string, bool) {
	if !f.known(field, "blur") {
		return "", true
	}
	message, ok := f.rules.ValidateField(field, f.values[field])
	if ok {
		delete(f.errors, field)
	} else {
		f.errors[field] = message
		f.logger.Debug("field invalid", "field", field, "message", message)
	}
	f.emit(EventBlur, field)
	return message, ok
}

// Validate checks every field, replaces the error map with the outcome and
// reports whether the form may be submitted.
func (f *Form) Validate() bool {
	valid, errs := validation.ValidateForm(f.values, f.rules)
	f.errors = errs
	f.logger.Debug("form validated", "valid", valid, "errors", len(errs))
	f.emit(EventValidate, "")
	return valid
}

// Reset restores the initial snapshot and drops every message.
func (f *Form) Reset() {
	f.values = f.initial.Clone()
	f.errors = make(validation.Errors)
	f.emit(EventReset, "")
}

// SetValues loads several values at once. Unknown keys are ignored and keys
// missing from values keep their current value. Fields whose value changes
// lose their message, as with SetFieldValue.
func (f *Form) SetValues(values validation.Values) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !f.known(name, "set values") {
			continue
		}
		value := values[name]
		if f.values[name] == value {
			continue
		}
		f.values[name] = value
		delete(f.errors, name)
	}
	f.emit(EventValues, "")
}

// SetErrors replaces the error map. Unknown fields and empty messages are
// dropped.
func (f *Form) SetErrors(errs validation.Errors) {
	next := make(validation.Errors, len(errs))
	for field, message := range errs {
		if message == "" || !f.known(field, "set errors") {
			continue
		}
		next[field] = message
	}
	f.errors = next
	f.emit(EventErrors, "")
}

func (f *Form) known(field, op string) bool {
	if _, ok := f.values[field]; ok {
		return true
	}
	f.logger.Warn("unknown form field", "op", op, "field", field)
	return false
}
