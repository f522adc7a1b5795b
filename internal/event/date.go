package event

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// MonthPattern matches fully spelled month names. Case matters: the calendar
// pages capitalize months, and a looser match pulls in too much prose. The
// scraper shares this pattern for its candidate heuristics.
const MonthPattern = `(January|February|March|April|May|June|July|August|September|October|November|December)`

var monthNumbers = map[string]time.Month{
	"January": time.January, "February": time.February, "March": time.March,
	"April": time.April, "May": time.May, "June": time.June,
	"July": time.July, "August": time.August, "September": time.September,
	"October": time.October, "November": time.November, "December": time.December,
}

// dateRule pairs a surface-form pattern with a resolver that turns its
// submatches into a calendar date. Rules are tried in order and the first
// pattern that matches is authoritative, even if its date is invalid.
type dateRule struct {
	pattern *regexp.Regexp
	resolve func(matches []string, fallbackYear int) (int, time.Month, int)
}

var dateRules = []dateRule{
	{
		// "December 2, 2025" or "December 2" with the year filled in later
		pattern: regexp.MustCompile(MonthPattern + `\s+(\d{1,2})(?:,\s*(\d{4}))?`),
		resolve: func(m []string, fallbackYear int) (int, time.Month, int) {
			day, _ := strconv.Atoi(m[2])
			year := fallbackYear
			if m[3] != "" {
				year, _ = strconv.Atoi(m[3])
			}
			return year, monthNumbers[m[1]], day
		},
	},
	{
		// "12/2/2025"
		pattern: regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`),
		resolve: func(m []string, _ int) (int, time.Month, int) {
			month, _ := strconv.Atoi(m[1])
			day, _ := strconv.Atoi(m[2])
			year, _ := strconv.Atoi(m[3])
			return year, time.Month(month), day
		},
	},
}

// ExtractDate scans text for the first recognizable date and returns it in
// YYYY-MM-DD form, or "" if no rule matches or the match is not a real
// calendar date. fallbackYear fills in when the text omits the year; pass
// 0 to use the current year.
func ExtractDate(text string, fallbackYear int) string {
	if fallbackYear <= 0 {
		fallbackYear = time.Now().Year()
	}
	for _, rule := range dateRules {
		m := rule.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		year, month, day := rule.resolve(m, fallbackYear)
		if !validDate(year, month, day) {
			return ""
		}
		return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
	}
	return ""
}

// validDate rejects impossible dates like month 13 or February 30.
// time.Date normalizes out-of-range components, so a round-trip that
// changes any component means the input was not a real date.
func validDate(year int, month time.Month, day int) bool {
	if month < time.January || month > time.December || day < 1 {
		return false
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && t.Month() == month && t.Day() == day
}
