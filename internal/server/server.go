// Package server exposes the pipeline over HTTP. The routes mirror the
// original site layout: /events runs both scrapers and returns every stored
// record, /api runs weather enrichment and returns the observations. Both
// are scrape-on-request; a visit is the external trigger for a run.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/campusconnect/campus-events/internal/config"
	"github.com/campusconnect/campus-events/internal/event"
	"github.com/campusconnect/campus-events/internal/observability"
	"github.com/campusconnect/campus-events/internal/scraper"
	"github.com/campusconnect/campus-events/internal/storage"
	"github.com/campusconnect/campus-events/internal/weather"
)

// Server holds the route handlers and their dependencies.
type Server struct {
	cfg    config.Config
	logger *zap.Logger
	router *mux.Router
}

// New wires the routes. The store itself is opened per request, matching
// the single-run scope of the pipeline.
func New(cfg config.Config, logger *zap.Logger) *Server {
	s := &Server{cfg: cfg, logger: logger}

	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/events", s.handleEvents).Methods(http.MethodGet)
	r.HandleFunc("/api", s.handleWeather).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", observability.MetricsHandler()).Methods(http.MethodGet)
	s.router = r

	return s
}

// Router returns the underlying handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe blocks serving the configured address.
func (s *Server) ListenAndServe() error {
	s.logger.Info("listening", zap.String("addr", s.cfg.ListenAddr))
	return http.ListenAndServe(s.cfg.ListenAddr, s.router)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"service": "campus-events",
		"events":  "/events",
		"weather": "/api",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type eventsResponse struct {
	Inserted int             `json:"inserted"`
	Events   []*event.Record `json:"events"`
}

// handleEvents scrapes both calendars, then returns everything in the
// store. Scrape failures are logged inside the scraper and never fail the
// request; only an unopenable store does.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	store, err := storage.Open(s.cfg.DataFile)
	if err != nil {
		s.logger.Error("opening store failed", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "store unavailable"})
		return
	}
	defer store.Close()

	sc := scraper.New(store, s.logger, s.cfg.AcademicURL, s.cfg.AthleticsURL)
	inserted := sc.ScrapeAll()

	s.writeJSON(w, http.StatusOK, eventsResponse{
		Inserted: inserted,
		Events:   store.ListEvents(),
	})
}

type weatherResponse struct {
	Written      int                  `json:"written"`
	Observations []*event.Observation `json:"observations"`
}

// handleWeather runs the date-keyed enrichment pass and returns all stored
// observations, newest runs last.
func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	store, err := storage.Open(s.cfg.DataFile)
	if err != nil {
		s.logger.Error("opening store failed", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "store unavailable"})
		return
	}
	defer store.Close()

	client := weather.NewClient(s.cfg.WeatherURL, s.cfg.Latitude, s.cfg.Longitude, s.cfg.Timezone)
	written := weather.NewEnricher(store, client, s.logger).Enrich(r.Context())

	s.writeJSON(w, http.StatusOK, weatherResponse{
		Written:      written,
		Observations: store.ListObservations(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("encoding response failed", zap.Error(err))
	}
}
