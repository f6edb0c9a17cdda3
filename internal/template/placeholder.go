package template

import "regexp"

// placeholderPattern matches {{name}} where name is one or more ASCII word
// characters. There is no escape syntax.
var placeholderPattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// substitute replaces every bound placeholder in src with its value in a
// single pass. Unbound placeholders are left as they are.
func substitute(src []byte, vars map[string]string) []byte {
	return placeholderPattern.ReplaceAllFunc(src, func(m []byte) []byte {
		name := string(m[2 : len(m)-2])
		if v, ok := vars[name]; ok {
			return []byte(v)
		}
		return m
	})
}

// substituteString is substitute for path patterns.
func substituteString(s string, vars map[string]string) string {
	return string(substitute([]byte(s), vars))
}

// findPlaceholders returns the names of all placeholders in src, in order
// of appearance.
func findPlaceholders(src []byte) []string {
	matches := placeholderPattern.FindAllSubmatch(src, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, string(m[1]))
	}
	return names
}
