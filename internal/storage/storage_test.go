package storage

import (
	"path/filepath"
	"testing"

	"github.com/campusconnect/campus-events/internal/event"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "campusconnect.json"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s
}

func TestInsertEventAssignsID(t *testing.T) {
	s := openTestStore(t)
	defer s.Close()

	rec := &event.Record{Title: "Fall Break", Date: "2025-10-09", Source: event.SourceAcademic}
	id, err := s.InsertEvent(rec)
	if err != nil {
		t.Fatalf("InsertEvent failed: %v", err)
	}
	if id == "" {
		t.Fatal("expected a non-empty id")
	}
	if rec.ID != "" {
		t.Error("caller's record should not be mutated")
	}

	events := s.ListEvents()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].ID != id {
		t.Errorf("stored event id %q does not match returned id %q", events[0].ID, id)
	}
}

func TestAppendOnlyDuplicatesKept(t *testing.T) {
	// Running extraction twice over the same page inserts everything twice.
	// There is no dedup key; the duplicates are the expected outcome.
	s := openTestStore(t)
	defer s.Close()

	rec := &event.Record{Title: "Homecoming", Date: "2025-10-18", Source: event.SourceAcademic}
	id1, err := s.InsertEvent(rec)
	if err != nil {
		t.Fatalf("first insert failed: %v", err)
	}
	id2, err := s.InsertEvent(rec)
	if err != nil {
		t.Fatalf("second insert failed: %v", err)
	}

	if id1 == id2 {
		t.Error("duplicate inserts should get distinct ids")
	}
	if got := len(s.ListEvents()); got != 2 {
		t.Errorf("expected 2 stored events, got %d", got)
	}
}

func TestListEventsWithDate(t *testing.T) {
	s := openTestStore(t)
	defer s.Close()

	for _, rec := range []*event.Record{
		{Title: "Dated", Date: "2025-12-02", Source: event.SourceAcademic},
		{Title: "Undated", Date: "", Source: event.SourceAcademic},
		{Title: "Also dated", Date: "2025-12-03", Source: event.SourceAthletics},
	} {
		if _, err := s.InsertEvent(rec); err != nil {
			t.Fatalf("insert failed: %v", err)
		}
	}

	dated := s.ListEventsWithDate()
	if len(dated) != 2 {
		t.Fatalf("expected 2 dated events, got %d", len(dated))
	}
	for _, rec := range dated {
		if rec.Date == "" {
			t.Errorf("event %q returned with empty date", rec.Title)
		}
	}
}

func TestReopenRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campusconnect.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	eventID, err := s.InsertEvent(&event.Record{Title: "Commencement", Date: "2026-05-09", Source: event.SourceAcademic})
	if err != nil {
		t.Fatalf("InsertEvent failed: %v", err)
	}
	if _, err := s.InsertObservation(&event.Observation{
		EventID: eventID, Date: "2026-05-09", Provider: "open-meteo",
		TempMax: 74.1, TempMin: 55.3, WeatherCode: 2, WeatherText: "Partly Cloudy",
	}); err != nil {
		t.Fatalf("InsertObservation failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	if got := len(reopened.ListEvents()); got != 1 {
		t.Fatalf("expected 1 event after reopen, got %d", got)
	}
	obs := reopened.ListObservations()
	if len(obs) != 1 {
		t.Fatalf("expected 1 observation after reopen, got %d", len(obs))
	}
	if obs[0].EventID != eventID {
		t.Errorf("observation event_id %q does not match event %q", obs[0].EventID, eventID)
	}
	if obs[0].WeatherText != "Partly Cloudy" {
		t.Errorf("unexpected weather text %q", obs[0].WeatherText)
	}
}
