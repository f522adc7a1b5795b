package calendar

import (
	"strings"
	"testing"
)

func TestGenerateICS(t *testing.T) {
	records := []Exportable{
		{
			ID:    "evt-1",
			Title: "Choir Concert, Abbey Basilica",
			Date:  "2025-12-02",
			Time:  "7:00 pm - 9:00 pm",
			URL:   "https://example.edu/calendar",
		},
	}

	ics := GenerateICS(records)

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//CampusConnect//campus-events//EN",
		"BEGIN:VEVENT",
		"UID:evt-1@campusconnect",
		"DTSTAMP:",
		"DTSTART:20251202T190000Z",
		"DTEND:20251202T210000Z",
		"SUMMARY:Choir Concert\\, Abbey Basilica", // comma escaped
		"URL:https://example.edu/calendar",
		"STATUS:CONFIRMED",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	for _, field := range requiredFields {
		if !strings.Contains(ics, field) {
			t.Errorf("ICS missing required field: %s", field)
		}
	}

	if !strings.Contains(ics, "\r\n") {
		t.Error("ICS should use \\r\\n line endings")
	}
}

func TestGenerateICSAllDayWhenNoTime(t *testing.T) {
	ics := GenerateICS([]Exportable{
		{ID: "evt-2", Title: "Fall Break", Date: "2025-10-09"},
	})

	if !strings.Contains(ics, "DTSTART;VALUE=DATE:20251009") {
		t.Error("expected all-day DTSTART")
	}
	if !strings.Contains(ics, "DTEND;VALUE=DATE:20251010") {
		t.Error("expected all-day DTEND on the following day")
	}
}

func TestGenerateICSSingleTimeGetsHourWindow(t *testing.T) {
	ics := GenerateICS([]Exportable{
		{ID: "evt-3", Title: "Basketball vs. Catawba", Date: "2025-12-13", Time: "7:00 pm"},
	})

	if !strings.Contains(ics, "DTSTART:20251213T190000Z") {
		t.Error("expected 7:00 pm start")
	}
	if !strings.Contains(ics, "DTEND:20251213T200000Z") {
		t.Error("expected one-hour default duration")
	}
}

func TestGenerateICSSkipsUndatedRecords(t *testing.T) {
	ics := GenerateICS([]Exportable{
		{ID: "evt-4", Title: "Campus Movie Night", Date: ""},
	})

	if strings.Contains(ics, "BEGIN:VEVENT") {
		t.Error("records without a date should not produce a VEVENT")
	}
}
