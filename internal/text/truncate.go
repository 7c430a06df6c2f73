package text

import (
	"strings"
	"unicode/utf8"
)

// Truncate caps s at max bytes, keeping the opening of the document. Papers
// front-load their summary signal (abstract, intro), so the tail is the part
// to drop. The cut backs off to a rune boundary and then to the previous
// whitespace so no word is split.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}

	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	truncated := s[:cut]
	if idx := strings.LastIndexFunc(truncated, func(r rune) bool {
		return r == ' ' || r == '\n' || r == '\t'
	}); idx > 0 {
		truncated = truncated[:idx]
	}

	return truncated
}

// CollapseWhitespace squeezes runs of whitespace into single spaces and
// trims the ends. Scraped HTML text tends to arrive full of layout gaps.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
