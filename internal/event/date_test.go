package event

import (
	"fmt"
	"testing"
	"time"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		fallbackYear int
		expected     string
	}{
		{
			name:     "Full month day year",
			text:     "December 2, 2025",
			expected: "2025-12-02",
		},
		{
			name:     "Slash format",
			text:     "12/2/2025",
			expected: "2025-12-02",
		},
		{
			name:         "Month day with fallback year",
			text:         "December 2",
			fallbackYear: 2025,
			expected:     "2025-12-02",
		},
		{
			name:         "Date embedded in event text",
			text:         "Final Exams Begin December 8, 2025 @ Main Hall",
			fallbackYear: 2024,
			expected:     "2025-12-08",
		},
		{
			name:         "Slash date embedded in event text",
			text:         "Basketball vs. Catawba 12/13/2025 7:00 pm",
			fallbackYear: 2024,
			expected:     "2025-12-13",
		},
		{
			name:         "Month name rule wins over slash rule",
			text:         "January 5, 2026 (was 12/20/2025)",
			fallbackYear: 2025,
			expected:     "2026-01-05",
		},
		{
			name:     "No date",
			text:     "no date here",
			expected: "",
		},
		{
			name:     "Invalid day rejected",
			text:     "February 30, 2025",
			expected: "",
		},
		{
			name:     "Invalid slash month rejected",
			text:     "13/13/2025",
			expected: "",
		},
		{
			name:     "Lowercase month not recognized",
			text:     "december 2, 2025",
			expected: "",
		},
		{
			name:     "Empty input",
			text:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExtractDate(tt.text, tt.fallbackYear)
			if result != tt.expected {
				t.Errorf("ExtractDate(%q, %d) = %q, expected %q", tt.text, tt.fallbackYear, result, tt.expected)
			}
		})
	}
}

func TestExtractDateCurrentYearDefault(t *testing.T) {
	expected := fmt.Sprintf("%04d-12-02", time.Now().Year())
	if got := ExtractDate("December 2", 0); got != expected {
		t.Errorf("ExtractDate with zero fallback year = %q, expected %q", got, expected)
	}
}
