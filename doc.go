// Package floatform is a form state store with declarative per-field
// validation and floating label renderers.
//
// A form is a record of named string fields, one error message per field
// and a snapshot of the initial values. Values change through
// SetFieldValue, fields are checked individually on blur and the whole form
// is checked before submit:
//
//	f := floatform.NewForm(floatform.Values{"email": ""}, floatform.RuleSet{
//		"email": {Required: true, Pattern: regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)},
//	})
//	f.SetFieldValue("email", "ada@")
//	msg, ok := f.Blur("email") // "Please enter a valid email address", false
//
// Forms are usually described by a Definition file and rendered as HTML
// with the floating renderer, served with pkg/httpform or prompted in a
// terminal with the tui renderer.
package floatform
