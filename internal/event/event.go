package event

// Source tags identify which collector produced a record.
const (
	SourceAcademic  = "belmont_academic"
	SourceAthletics = "abbey_athletics"
)

// Record represents one extracted calendar event. Records are append-only:
// the store assigns ID on insert and no field is mutated afterwards.
type Record struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"` // YYYY-MM-DD, or "" when unparseable
	Time        string `json:"time"` // verbatim time or range, or ""
	Location    string `json:"location"`
	Description string `json:"description"`
	Source      string `json:"source"`
	URL         string `json:"url"`
}

// Observation is one weather forecast joined to a single event by date.
// EventID is a weak reference: nothing checks the event still exists, and
// orphaned observations are tolerated.
type Observation struct {
	ID          string  `json:"id"`
	EventID     string  `json:"event_id"`
	Date        string  `json:"date"`
	Provider    string  `json:"provider"`
	TempMax     float64 `json:"temp_max"`
	TempMin     float64 `json:"temp_min"`
	WeatherCode int     `json:"weather_code"`
	WeatherText string  `json:"weather_text"`
	RawPayload  []byte  `json:"raw_payload,omitempty"`
}

// BuildRecord assembles a persistable record from one scraped candidate.
// Title and Description are both the raw line; there is no summarization
// step. A date that fails to parse is stored as "" so the record survives.
func BuildRecord(text, link, sourceTag, pageURL string, fallbackYear int) *Record {
	url := pageURL
	if link != "" {
		url = link
	}
	return &Record{
		Title:       text,
		Date:        ExtractDate(text, fallbackYear),
		Time:        ExtractTime(text),
		Location:    "",
		Description: text,
		Source:      sourceTag,
		URL:         url,
	}
}
