package event

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize collapses all runs of whitespace to single spaces and trims the
// result. Scraped text arrives with newlines and indentation from the HTML.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
