package floating

import "strings"

// Classes holds the utility class strings applied to each part of the
// markup. The defaults are Tailwind classes for the floating label effect:
// the control carries `peer` and a single-space placeholder so the label can
// react to :placeholder-shown.
type Classes struct {
	Form           string
	Title          string
	Description    string
	Notice         string
	FormError      string
	Wrapper        string
	Inner          string
	Control        string
	ControlValid   string
	ControlInvalid string
	Textarea       string
	Label          string
	LabelInvalid   string
	LabelDisabled  string
	Error          string
	Help           string
	Floated        string
	Actions        string
	Submit         string
	Reset          string
}

const (
	fontClass    = "font-['Poppins']"
	controlClass = "peer w-full px-4 pt-5 pb-2 border rounded-lg bg-gray-50 text-gray-900 text-base " + fontClass +
		" focus:outline-none focus:ring-2 focus:ring-yellow-500 focus:border-transparent" +
		" transition-all duration-200 disabled:bg-gray-100 disabled:cursor-not-allowed"
	labelClass = "absolute left-4 top-3 text-gray-500 text-base " + fontClass +
		" transition-all duration-200 pointer-events-none" +
		" peer-placeholder-shown:top-3 peer-placeholder-shown:text-gray-400 peer-placeholder-shown:text-base" +
		" peer-[:not(:placeholder-shown)]:top-1.5 peer-[:not(:placeholder-shown)]:text-xs peer-[:not(:placeholder-shown)]:text-gray-600" +
		" peer-focus:top-1.5 peer-focus:text-xs peer-focus:text-yellow-600 peer-focus:!text-yellow-600"
)

// DefaultClasses returns the built-in class set.
func DefaultClasses() Classes {
	return Classes{
		Form:           "space-y-6",
		Title:          "text-2xl font-semibold text-gray-900 " + fontClass,
		Description:    "text-sm text-gray-600 " + fontClass,
		Notice:         "rounded-lg bg-green-50 px-4 py-3 text-sm text-green-700 " + fontClass,
		FormError:      "rounded-lg bg-red-50 px-4 py-3 text-sm text-red-700 " + fontClass,
		Wrapper:        "space-y-2",
		Inner:          "relative",
		Control:        controlClass,
		ControlValid:   "border-gray-300",
		ControlInvalid: "border-red-300",
		Textarea:       "resize-none",
		Label:          labelClass,
		LabelInvalid:   "peer-[:not(:placeholder-shown)]:text-red-600",
		LabelDisabled:  "text-gray-400",
		Error:          "text-sm text-red-600 " + fontClass,
		Help:           "text-xs text-gray-500 " + fontClass,
		Floated:        "ff-floated",
		Actions:        "flex gap-3",
		Submit:         "rounded-lg bg-yellow-500 px-6 py-3 text-base font-medium text-gray-900 hover:bg-yellow-400 " + fontClass,
		Reset:          "rounded-lg border border-gray-300 px-6 py-3 text-base text-gray-700 hover:bg-gray-50 " + fontClass,
	}
}

// Theme token keys that replace individual class strings.
const (
	TokenForm           = "floatform.form"
	TokenTitle          = "floatform.title"
	TokenDescription    = "floatform.description"
	TokenNotice         = "floatform.notice"
	TokenFormError      = "floatform.form-error"
	TokenWrapper        = "floatform.wrapper"
	TokenInner          = "floatform.inner"
	TokenControl        = "floatform.control"
	TokenControlValid   = "floatform.control.valid"
	TokenControlInvalid = "floatform.control.invalid"
	TokenTextarea       = "floatform.textarea"
	TokenLabel          = "floatform.label"
	TokenLabelInvalid   = "floatform.label.invalid"
	TokenLabelDisabled  = "floatform.label.disabled"
	TokenError          = "floatform.error"
	TokenHelp           = "floatform.help"
	TokenFloated        = "floatform.floated"
	TokenActions        = "floatform.actions"
	TokenSubmit         = "floatform.submit"
	TokenReset          = "floatform.reset"
)

// WithTokens returns a copy of c where every known token key present in
// tokens replaces the matching class string. Unknown keys are ignored.
func (c Classes) WithTokens(tokens map[string]string) Classes {
	if len(tokens) == 0 {
		return c
	}
	targets := map[string]*string{
		TokenForm:           &c.Form,
		TokenTitle:          &c.Title,
		TokenDescription:    &c.Description,
		TokenNotice:         &c.Notice,
		TokenFormError:      &c.FormError,
		TokenWrapper:        &c.Wrapper,
		TokenInner:          &c.Inner,
		TokenControl:        &c.Control,
		TokenControlValid:   &c.ControlValid,
		TokenControlInvalid: &c.ControlInvalid,
		TokenTextarea:       &c.Textarea,
		TokenLabel:          &c.Label,
		TokenLabelInvalid:   &c.LabelInvalid,
		TokenLabelDisabled:  &c.LabelDisabled,
		TokenError:          &c.Error,
		TokenHelp:           &c.Help,
		TokenFloated:        &c.Floated,
		TokenActions:        &c.Actions,
		TokenSubmit:         &c.Submit,
		TokenReset:          &c.Reset,
	}
	for key, value := range tokens {
		if dst, ok := targets[key]; ok {
			*dst = strings.TrimSpace(value)
		}
	}
	return c
}

func (c Classes) wrapperClass(extra string, floated, invalid bool) string {
	parts := []string{c.Wrapper, extra}
	if floated {
		parts = append(parts, c.Floated)
	}
	if invalid {
		parts = append(parts, "ff-invalid")
	}
	return joinClasses(parts...)
}

func (c Classes) controlClass(textarea, invalid bool) string {
	border := c.ControlValid
	if invalid {
		border = c.ControlInvalid
	}
	parts := []string{c.Control, border}
	if textarea {
		parts = append(parts, c.Textarea)
	}
	return joinClasses(parts...)
}

func (c Classes) labelClass(invalid, disabled bool) string {
	parts := []string{c.Label}
	if invalid {
		parts = append(parts, c.LabelInvalid)
	}
	if disabled {
		parts = append(parts, c.LabelDisabled)
	}
	return joinClasses(parts...)
}

func joinClasses(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return strings.Join(out, " ")
}
