package corpus

import (
	"regexp"
	"strings"
)

var (
	markupPattern     = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize cleans a raw CSV field into a plain string: markup tags are
// stripped, internal whitespace runs collapse to a single space, and
// the ends are trimmed. Empty input yields the empty string. The
// function is idempotent.
func Normalize(raw string) string {
	s := markupPattern.ReplaceAllString(raw, "")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
