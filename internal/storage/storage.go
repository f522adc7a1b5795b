package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campusconnect/campus-events/internal/event"
)

// Store is a JSON-file backed store for event records and weather
// observations. It is not safe for concurrent use; the pipeline is
// single-threaded and opens the store for the scope of one run.
type Store struct {
	path string
	data *dataFile
}

type dataFile struct {
	UpdatedAt    string               `json:"updated_at"`
	Events       []*event.Record      `json:"events"`
	Observations []*event.Observation `json:"observations"`
}

// Open loads the data file at path, creating parent directories and an
// empty store if the file does not exist yet. ~ expands to the home
// directory.
func Open(path string) (*Store, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	s := &Store{path: path, data: &dataFile{}}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading data file: %w", err)
	}
	if err := json.Unmarshal(raw, s.data); err != nil {
		return nil, fmt.Errorf("parsing data file: %w", err)
	}
	return s, nil
}

// InsertEvent appends a record, assigns its ID, and writes the file.
// The caller's record is not mutated; the stored copy gets the ID.
func (s *Store) InsertEvent(rec *event.Record) (string, error) {
	stored := *rec
	stored.ID = uuid.NewString()
	s.data.Events = append(s.data.Events, &stored)
	if err := s.save(); err != nil {
		s.data.Events = s.data.Events[:len(s.data.Events)-1]
		return "", err
	}
	return stored.ID, nil
}

// InsertObservation appends an observation, assigns its ID, and writes the
// file. No check is made that EventID refers to a live event.
func (s *Store) InsertObservation(obs *event.Observation) (string, error) {
	stored := *obs
	stored.ID = uuid.NewString()
	s.data.Observations = append(s.data.Observations, &stored)
	if err := s.save(); err != nil {
		s.data.Observations = s.data.Observations[:len(s.data.Observations)-1]
		return "", err
	}
	return stored.ID, nil
}

// ListEvents returns all stored event records in insertion order.
func (s *Store) ListEvents() []*event.Record {
	return s.data.Events
}

// ListEventsWithDate returns the records whose date is non-empty. These are
// the only records the weather join can key on.
func (s *Store) ListEventsWithDate() []*event.Record {
	dated := make([]*event.Record, 0, len(s.data.Events))
	for _, rec := range s.data.Events {
		if rec.Date != "" {
			dated = append(dated, rec)
		}
	}
	return dated
}

// ListObservations returns all stored observations in insertion order.
func (s *Store) ListObservations() []*event.Observation {
	return s.data.Observations
}

// Close flushes the store to disk.
func (s *Store) Close() error {
	return s.save()
}

func (s *Store) save() error {
	s.data.UpdatedAt = time.Now().UTC().Format(time.RFC3339)

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding data file: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0644); err != nil {
		return fmt.Errorf("writing data file: %w", err)
	}
	return nil
}
