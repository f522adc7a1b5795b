package weather

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/campusconnect/campus-events/internal/event"
	"github.com/campusconnect/campus-events/internal/observability"
)

// Store is the slice of the persistence layer enrichment needs: the dated
// events to join on, and a sink for the observations it produces.
type Store interface {
	ListEventsWithDate() []*event.Record
	InsertObservation(obs *event.Observation) (string, error)
}

// Fetcher fetches one day's forecast. Satisfied by *Client.
type Fetcher interface {
	FetchDailyForecast(ctx context.Context, date string) (*Forecast, error)
}

// Enricher runs the date-keyed weather join.
type Enricher struct {
	store   Store
	fetcher Fetcher
	logger  *zap.Logger
}

// NewEnricher creates an Enricher.
func NewEnricher(store Store, fetcher Fetcher, logger *zap.Logger) *Enricher {
	return &Enricher{store: store, fetcher: fetcher, logger: logger}
}

// Enrich fetches one forecast per distinct event date and writes one
// observation per (event, date) pairing. Dates whose fetch or normalization
// fails are skipped with a logged warning and cost the batch nothing else.
// Returns the number of observations written. Nothing deduplicates against
// earlier runs; repeated passes accumulate rows.
func (e *Enricher) Enrich(ctx context.Context) int {
	events := e.store.ListEventsWithDate()
	if len(events) == 0 {
		e.logger.Info("no dated events to enrich")
		return 0
	}

	// Group event ids by date so one fetch serves every event on that day.
	byDate := make(map[string][]string)
	var dates []string
	for _, rec := range events {
		if _, seen := byDate[rec.Date]; !seen {
			dates = append(dates, rec.Date)
		}
		byDate[rec.Date] = append(byDate[rec.Date], rec.ID)
	}

	written := 0
	for _, date := range dates {
		iso, ok := normalizeDate(date)
		if !ok {
			e.logger.Warn("skipping invalid event date", zap.String("date", date))
			continue
		}

		forecast, err := e.fetcher.FetchDailyForecast(ctx, iso)
		if err != nil {
			observability.ForecastFetchesTotal.WithLabelValues("error").Inc()
			e.logger.Warn("forecast fetch failed",
				zap.String("date", iso),
				zap.Int("events", len(byDate[date])),
				zap.Error(err))
			continue
		}
		observability.ForecastFetchesTotal.WithLabelValues("ok").Inc()

		text := CodeText(forecast.WeatherCode)
		for _, eventID := range byDate[date] {
			obs := &event.Observation{
				EventID:     eventID,
				Date:        iso,
				Provider:    Provider,
				TempMax:     forecast.TempMax,
				TempMin:     forecast.TempMin,
				WeatherCode: forecast.WeatherCode,
				WeatherText: text,
				RawPayload:  forecast.Raw,
			}
			if _, err := e.store.InsertObservation(obs); err != nil {
				e.logger.Warn("observation insert failed",
					zap.String("date", iso),
					zap.String("event_id", eventID),
					zap.Error(err))
				continue
			}
			observability.ObservationsInsertedTotal.Inc()
			written++
		}
	}

	e.logger.Info("weather enrichment finished",
		zap.Int("distinct_dates", len(dates)),
		zap.Int("observations", written))
	return written
}

// normalizeDate accepts YYYY-MM-DD directly and takes one generic parse
// attempt at anything else. Dates that survive neither are skipped.
func normalizeDate(s string) (string, bool) {
	if _, err := time.Parse("2006-01-02", s); err == nil {
		return s, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format("2006-01-02"), true
	}
	return "", false
}
