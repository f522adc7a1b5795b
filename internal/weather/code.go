package weather

// codeRules maps WMO weather code ranges to display labels, first match
// wins, ranges inclusive. WMO codes run 0-99; anything unmatched, including
// values outside that space, is Unknown.
var codeRules = []struct {
	min, max int
	text     string
}{
	{0, 0, "Clear"},
	{1, 3, "Partly Cloudy"},
	{45, 48, "Fog"},
	{51, 67, "Rain"},
	{71, 77, "Snow/Ice"},
	{80, 82, "Rain Showers"},
	{95, 99, "Thunderstorm"},
}

// CodeText returns the display label for a provider weather code.
func CodeText(code int) string {
	for _, rule := range codeRules {
		if code >= rule.min && code <= rule.max {
			return rule.text
		}
	}
	return "Unknown"
}
