package workflow

import (
	"regexp"
	"strings"
)

// Placeholders look like {{first_name}}. Matching is case-insensitive and
// tolerant of whitespace inside the braces; unknown placeholders are left
// in place.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

func Render(text string, values map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		key := placeholderPattern.FindStringSubmatch(match)[1]
		if value, ok := values[strings.ToLower(key)]; ok {
			return value
		}
		return match
	})
}
