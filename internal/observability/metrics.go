package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry *prometheus.Registry

	// Events inserted per scrape pass, by source tag. Watch for: a source
	// dropping to zero usually means its page markup changed.
	EventsInsertedTotal *prometheus.CounterVec

	// Scrape failures by source and kind (fetch, parse, store).
	ScrapeErrorsTotal *prometheus.CounterVec

	// Forecast provider calls by outcome. One call per distinct event date.
	ForecastFetchesTotal *prometheus.CounterVec

	// Weather observations written by enrichment passes.
	ObservationsInsertedTotal prometheus.Counter
)

func init() {
	Register()
}

// Register builds a fresh registry and re-creates all metrics against it.
// Called once at init; tests may call it again for a clean slate.
func Register() {
	registry = prometheus.NewRegistry()

	EventsInsertedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_events_inserted_total",
		Help: "Event records inserted into the store, by source.",
	}, []string{"source"})

	ScrapeErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_scrape_errors_total",
		Help: "Scrape failures, by source and error kind.",
	}, []string{"source", "kind"})

	ForecastFetchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "campus_forecast_fetches_total",
		Help: "Forecast provider calls, by outcome.",
	}, []string{"status"})

	ObservationsInsertedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "campus_weather_observations_inserted_total",
		Help: "Weather observations written by enrichment.",
	})

	registry.MustRegister(
		EventsInsertedTotal,
		ScrapeErrorsTotal,
		ForecastFetchesTotal,
		ObservationsInsertedTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// MetricsHandler serves the registry in Prometheus exposition format.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
