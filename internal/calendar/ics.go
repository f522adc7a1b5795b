// Package calendar renders stored event records as iCalendar data so they
// can be imported into personal calendars.
package calendar

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Exportable is the slice of an event record the ICS rendering needs.
type Exportable struct {
	ID          string
	Title       string
	Date        string // YYYY-MM-DD
	Time        string // verbatim display time or range, possibly ""
	Location    string
	Description string
	URL         string
}

var clockTokenRe = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(am|pm)`)

// GenerateICS renders one VCALENDAR containing a VEVENT per record. Records
// without a parseable date are skipped; a record without a time becomes an
// all-day event.
func GenerateICS(records []Exportable) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//CampusConnect//campus-events//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")

	stamp := formatICSTime(time.Now().UTC())
	for _, rec := range records {
		day, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			continue
		}

		ics.WriteString("BEGIN:VEVENT\r\n")
		ics.WriteString(fmt.Sprintf("UID:%s@campusconnect\r\n", rec.ID))
		ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", stamp))

		if start, end, ok := eventWindow(day, rec.Time); ok {
			ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(start)))
			ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(end)))
		} else {
			ics.WriteString(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", day.Format("20060102")))
			ics.WriteString(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", day.AddDate(0, 0, 1).Format("20060102")))
		}

		ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(rec.Title)))
		if rec.Description != "" && rec.Description != rec.Title {
			ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(rec.Description)))
		}
		if rec.Location != "" {
			ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(rec.Location)))
		}
		if rec.URL != "" {
			ics.WriteString(fmt.Sprintf("URL:%s\r\n", rec.URL))
		}
		ics.WriteString("STATUS:CONFIRMED\r\n")
		ics.WriteString("TRANSP:OPAQUE\r\n")
		ics.WriteString("END:VEVENT\r\n")
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

// eventWindow resolves the record's display time against its date. A range
// gives the full window; a single time gets a one-hour default duration.
func eventWindow(day time.Time, display string) (time.Time, time.Time, bool) {
	tokens := clockTokenRe.FindAllStringSubmatch(display, 2)
	if len(tokens) == 0 {
		return time.Time{}, time.Time{}, false
	}

	start, ok := clockOn(day, tokens[0])
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	if len(tokens) > 1 {
		if end, ok := clockOn(day, tokens[1]); ok && end.After(start) {
			return start, end, true
		}
	}
	return start, start.Add(time.Hour), true
}

func clockOn(day time.Time, token []string) (time.Time, bool) {
	hour, minute := atoi(token[1]), atoi(token[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return time.Time{}, false
	}
	if strings.EqualFold(token[3], "pm") && hour != 12 {
		hour += 12
	}
	if strings.EqualFold(token[3], "am") && hour == 12 {
		hour = 0
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC), true
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters per RFC 5545
func escapeICS(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
