package floating

import "strings"

// classSyntax are characters that must be escaped inside a character class
// when browsers compile the pattern attribute with the v flag.
const classSyntax = "()[]{}/|"

// classDoubles are punctuators reserved in pairs inside v flag classes.
const classDoubles = "&!#$%*+,.:;<=>?@^`~"

// browserPattern returns source when browsers can compile it as an HTML
// pattern attribute and "" otherwise. Rules still apply server side.
func browserPattern(source string) string {
	if source == "" {
		return ""
	}
	for _, marker := range []string{`\A`, `\z`, `\C`, `\Q`} {
		if strings.Contains(source, marker) {
			return ""
		}
	}

	inClass := false
	classStart := false
	for i := 0; i < len(source); i++ {
		c := source[i]
		if c == '\\' {
			// RE2 accepts one-letter classes such as \pL; JavaScript needs braces.
			if i+2 < len(source) && (source[i+1] == 'p' || source[i+1] == 'P') && source[i+2] != '{' {
				return ""
			}
			i++
			classStart = false
			continue
		}

		if !inClass {
			switch c {
			case '[':
				inClass = true
				classStart = true
				if i+1 < len(source) && source[i+1] == '^' {
					i++
				}
			case '(':
				if i+1 < len(source) && source[i+1] == '?' && !groupSupported(source[i+2:]) {
					return ""
				}
			}
			continue
		}

		if c == ']' && !classStart {
			inClass = false
			continue
		}
		if strings.IndexByte(classSyntax, c) >= 0 {
			return ""
		}
		if c == '-' && (classStart || i+1 >= len(source) || source[i+1] == ']') {
			return ""
		}
		if strings.IndexByte(classDoubles, c) >= 0 && i+1 < len(source) && source[i+1] == c {
			return ""
		}
		classStart = false
	}
	if inClass {
		return ""
	}
	return source
}

// groupSupported reports whether the text after "(?" opens a group kind
// JavaScript understands.
func groupSupported(rest string) bool {
	for _, prefix := range []string{":", "=", "!", "<=", "<!"} {
		if strings.HasPrefix(rest, prefix) {
			return true
		}
	}
	// named group "(?<name>"; RE2's "(?P<name>" and inline flags are not.
	return strings.HasPrefix(rest, "<")
}
