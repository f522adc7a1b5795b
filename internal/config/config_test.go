package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/campusconnect/campus-events/internal/scraper"
	"github.com/campusconnect/campus-events/internal/weather"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AcademicURL != scraper.DefaultAcademicURL {
		t.Errorf("unexpected academic URL: %q", cfg.AcademicURL)
	}
	if cfg.AthleticsURL != scraper.DefaultAthleticsURL {
		t.Errorf("unexpected athletics URL: %q", cfg.AthleticsURL)
	}
	if cfg.Latitude != weather.DefaultLatitude || cfg.Longitude != weather.DefaultLongitude {
		t.Errorf("unexpected coordinates: %v, %v", cfg.Latitude, cfg.Longitude)
	}
	if cfg.Timezone != weather.DefaultTimezone {
		t.Errorf("unexpected timezone: %q", cfg.Timezone)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `academic_url: https://example.edu/calendar
athletics_url: https://athletics.example.edu/calendar
latitude: 40.5
longitude: -74.1
data_file: /tmp/test-events.json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AcademicURL != "https://example.edu/calendar" {
		t.Errorf("file value not applied: %q", cfg.AcademicURL)
	}
	if cfg.Latitude != 40.5 || cfg.Longitude != -74.1 {
		t.Errorf("coordinates not applied: %v, %v", cfg.Latitude, cfg.Longitude)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Timezone != weather.DefaultTimezone {
		t.Errorf("expected default timezone, got %q", cfg.Timezone)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("CAMPUS_ACADEMIC_URL", "https://override.example.edu/cal")
	t.Setenv("CAMPUS_LATITUDE", "35.0")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AcademicURL != "https://override.example.edu/cal" {
		t.Errorf("env override not applied: %q", cfg.AcademicURL)
	}
	if cfg.Latitude != 35.0 {
		t.Errorf("env override not applied: %v", cfg.Latitude)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("CAMPUS_LATITUDE", "91.5")
	if _, err := Load(""); err == nil {
		t.Fatal("expected out-of-range latitude to fail validation")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
