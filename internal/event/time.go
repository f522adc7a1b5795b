package event

import (
	"fmt"
	"regexp"
)

// Times are opaque display strings. They are never parsed into clock values
// or shifted between zones; what the page says is what the record stores.
var (
	timeRangeRe  = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:am|pm))\s*-\s*(\d{1,2}:\d{2}\s*(?:am|pm))`)
	singleTimeRe = regexp.MustCompile(`(?i)(\d{1,2}:\d{2}\s*(?:am|pm))`)
)

// ExtractTime returns the first time range in text as "<start> - <end>",
// else the first single time verbatim, else "".
func ExtractTime(text string) string {
	if m := timeRangeRe.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s - %s", m[1], m[2])
	}
	if m := singleTimeRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
