package expense

import (
	"regexp"
	"strings"
)

// tagPattern matches HTML-tag-like substrings. Best effort: it is not an
// HTML parser, so malformed markup or sequences split across tags may not
// be fully stripped.
var tagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeDescription strips HTML/script-tag-like substrings from a
// description and trims the surrounding whitespace left behind.
func SanitizeDescription(s string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(s, ""))
}
