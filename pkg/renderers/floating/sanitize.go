package floating

import "github.com/microcosm-cc/bluemonday"

// Sanitizer cleans author-supplied label and help markup.
type Sanitizer interface {
	Sanitize(string) string
}

// LabelPolicy allows a handful of inline formatting elements and strips
// everything else.
func LabelPolicy() *bluemonday.Policy {
	policy := bluemonday.StrictPolicy()
	policy.AllowElements("b", "strong", "i", "em", "small", "span", "abbr", "code")
	policy.AllowAttrs("title").OnElements("abbr")
	return policy
}
