package render

import (
	"sort"
	"strings"
)

// HiddenField is a hidden input rendered alongside the visible fields.
type HiddenField struct {
	Name  string
	Value string
}

// Hidden returns a HiddenField with a trimmed name.
func Hidden(name, value string) HiddenField {
	return HiddenField{Name: strings.TrimSpace(name), Value: value}
}

// CSRFToken carries a CSRF token under the input name the backend expects,
// for example "_csrf" or "csrf_token".
func CSRFToken(name, token string) HiddenField {
	return Hidden(name, token)
}

// MergeHiddenFields combines hidden field lists. Blank names are dropped and
// later entries win on name collisions. The result is sorted by name.
func MergeHiddenFields(groups ...[]HiddenField) []HiddenField {
	merged := make(map[string]string)
	for _, group := range groups {
		for _, field := range group {
			name := strings.TrimSpace(field.Name)
			if name == "" {
				continue
			}
			merged[name] = field.Value
		}
	}
	return SortedHiddenFields(merged)
}

// SortedHiddenFields converts a name/value map into a name-sorted slice.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if strings.TrimSpace(name) != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil
	}
	sort.Strings(names)

	out := make([]HiddenField, 0, len(names))
	for _, name := range names {
		out = append(out, HiddenField{Name: strings.TrimSpace(name), Value: fields[name]})
	}
	return out
}
