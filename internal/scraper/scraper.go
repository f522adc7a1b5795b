package scraper

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/campusconnect/campus-events/internal/event"
	"github.com/campusconnect/campus-events/internal/observability"
)

const (
	// DefaultAcademicURL is the Belmont Abbey academic calendar page.
	DefaultAcademicURL = "https://belmontabbeycollege.edu/academics/calendar/#fall-2025"
	// DefaultAthleticsURL is the Abbey Athletics month-view calendar.
	DefaultAthleticsURL = "https://abbeyathletics.com/calendar?date=12/2/2025&vtype=month"

	UserAgent = "campus-events/1.0 (github.com/campusconnect/campus-events)"
	Timeout   = 15 * time.Second
)

// EventStore is the narrow sink the scraper writes extracted records to.
type EventStore interface {
	InsertEvent(rec *event.Record) (string, error)
}

// Scraper fetches both calendar pages and turns candidate text blocks into
// stored event records. All failures are contained: a page that cannot be
// fetched yields zero records, a record that cannot be stored is skipped.
type Scraper struct {
	client       *http.Client
	store        EventStore
	logger       *zap.Logger
	academicURL  string
	athleticsURL string
}

// New creates a Scraper. Empty URLs fall back to the Belmont defaults.
func New(store EventStore, logger *zap.Logger, academicURL, athleticsURL string) *Scraper {
	if academicURL == "" {
		academicURL = DefaultAcademicURL
	}
	if athleticsURL == "" {
		athleticsURL = DefaultAthleticsURL
	}
	return &Scraper{
		client:       &http.Client{Timeout: Timeout},
		store:        store,
		logger:       logger,
		academicURL:  academicURL,
		athleticsURL: athleticsURL,
	}
}

// ScrapeAcademic extracts academic calendar events and returns how many
// records were inserted.
func (s *Scraper) ScrapeAcademic() (int, error) {
	doc, err := s.fetchDocument(s.academicURL)
	if err != nil {
		observability.ScrapeErrorsTotal.WithLabelValues(event.SourceAcademic, "fetch").Inc()
		return 0, err
	}
	inserted := s.insertCandidates(selectAcademicCandidates(doc), event.SourceAcademic, s.academicURL)
	s.logger.Info("academic calendar scraped",
		zap.String("url", s.academicURL),
		zap.Int("inserted", inserted))
	return inserted, nil
}

// ScrapeAthletics extracts athletics calendar events and returns how many
// records were inserted. Records derived from anchors keep the anchor href
// as their URL.
func (s *Scraper) ScrapeAthletics() (int, error) {
	doc, err := s.fetchDocument(s.athleticsURL)
	if err != nil {
		observability.ScrapeErrorsTotal.WithLabelValues(event.SourceAthletics, "fetch").Inc()
		return 0, err
	}
	inserted := s.insertCandidates(selectAthleticsCandidates(doc), event.SourceAthletics, s.athleticsURL)
	s.logger.Info("athletics calendar scraped",
		zap.String("url", s.athleticsURL),
		zap.Int("inserted", inserted))
	return inserted, nil
}

// ScrapeAll runs both scrapers and returns the total records inserted.
// A source that fails entirely is logged and contributes zero; the run
// itself never fails.
func (s *Scraper) ScrapeAll() int {
	total := 0

	n, err := s.ScrapeAcademic()
	if err != nil {
		s.logger.Error("academic scrape failed", zap.String("url", s.academicURL), zap.Error(err))
	}
	total += n

	n, err = s.ScrapeAthletics()
	if err != nil {
		s.logger.Error("athletics scrape failed", zap.String("url", s.athleticsURL), zap.Error(err))
	}
	total += n

	return total
}

// insertCandidates builds a record per candidate and writes it to the
// store. Store failures are logged and skipped; the rest of the batch
// continues.
func (s *Scraper) insertCandidates(candidates []Candidate, sourceTag, pageURL string) int {
	year := time.Now().Year()
	inserted := 0
	for _, c := range candidates {
		rec := event.BuildRecord(c.Text, c.Link, sourceTag, pageURL, year)
		if _, err := s.store.InsertEvent(rec); err != nil {
			observability.ScrapeErrorsTotal.WithLabelValues(sourceTag, "store").Inc()
			s.logger.Warn("event insert failed",
				zap.String("source", sourceTag),
				zap.String("title", rec.Title),
				zap.Error(err))
			continue
		}
		observability.EventsInsertedTotal.WithLabelValues(sourceTag).Inc()
		inserted++
	}
	return inserted
}

func (s *Scraper) fetchDocument(url string) (*goquery.Document, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}
	return doc, nil
}
