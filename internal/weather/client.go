package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the public Open-Meteo forecast endpoint.
	DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	// Default coordinates: Belmont Abbey College campus.
	DefaultLatitude  = 35.26143
	DefaultLongitude = -81.036361
	DefaultTimezone  = "America/New_York"

	// Provider tags every observation this client produces.
	Provider = "open-meteo"

	Timeout = 10 * time.Second
)

// Forecast holds the daily fields for a single date, plus the raw provider
// payload kept for audit.
type Forecast struct {
	TempMax     float64
	TempMin     float64
	WeatherCode int
	Raw         []byte
}

// Client fetches single-day forecasts from Open-Meteo. No API key is
// required.
type Client struct {
	http     *resty.Client
	baseURL  string
	lat      float64
	lon      float64
	timezone string
}

// NewClient creates a forecast client for a fixed coordinate pair. An empty
// baseURL uses the public endpoint; an empty timezone uses the campus zone.
func NewClient(baseURL string, lat, lon float64, timezone string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timezone == "" {
		timezone = DefaultTimezone
	}
	return &Client{
		http:     resty.New().SetTimeout(Timeout),
		baseURL:  baseURL,
		lat:      lat,
		lon:      lon,
		timezone: timezone,
	}
}

type forecastResponse struct {
	Daily struct {
		TemperatureMax []float64 `json:"temperature_2m_max"`
		TemperatureMin []float64 `json:"temperature_2m_min"`
		WeatherCode    []int     `json:"weathercode"`
	} `json:"daily"`
}

// FetchDailyForecast queries a single-day window (start_date == end_date)
// of daily-resolution fields for the given ISO date.
func (c *Client) FetchDailyForecast(ctx context.Context, date string) (*Forecast, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"latitude":   strconv.FormatFloat(c.lat, 'f', -1, 64),
			"longitude":  strconv.FormatFloat(c.lon, 'f', -1, 64),
			"daily":      "temperature_2m_max,temperature_2m_min,weathercode",
			"timezone":   c.timezone,
			"start_date": date,
			"end_date":   date,
		}).
		Get(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	body := resp.Body()
	var parsed forecastResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("parsing forecast response: %w", err)
	}
	daily := parsed.Daily
	if len(daily.TemperatureMax) == 0 || len(daily.TemperatureMin) == 0 || len(daily.WeatherCode) == 0 {
		return nil, fmt.Errorf("forecast response missing daily fields for %s", date)
	}

	return &Forecast{
		TempMax:     daily.TemperatureMax[0],
		TempMin:     daily.TemperatureMin[0],
		WeatherCode: daily.WeatherCode[0],
		Raw:         body,
	}, nil
}
