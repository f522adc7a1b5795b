// Package config assembles the runtime configuration: compiled-in defaults,
// an optional YAML file, then environment overrides, in that order.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/campusconnect/campus-events/internal/scraper"
	"github.com/campusconnect/campus-events/internal/weather"
)

// Config holds everything the pipeline is parameterized on: the two source
// URLs, the forecast coordinate pair, and where the data file lives.
type Config struct {
	AcademicURL  string  `yaml:"academic_url"`
	AthleticsURL string  `yaml:"athletics_url"`
	Latitude     float64 `yaml:"latitude"`
	Longitude    float64 `yaml:"longitude"`
	Timezone     string  `yaml:"timezone"`
	WeatherURL   string  `yaml:"weather_base_url"`
	DataFile     string  `yaml:"data_file"`
	ListenAddr   string  `yaml:"listen_addr"`
}

// Default returns the compiled-in Belmont Abbey configuration.
func Default() Config {
	return Config{
		AcademicURL:  scraper.DefaultAcademicURL,
		AthleticsURL: scraper.DefaultAthleticsURL,
		Latitude:     weather.DefaultLatitude,
		Longitude:    weather.DefaultLongitude,
		Timezone:     weather.DefaultTimezone,
		WeatherURL:   weather.DefaultBaseURL,
		DataFile:     "~/.local/share/campus-events/campusconnect.json",
		ListenAddr:   ":8080",
	}
}

// Load builds a Config from defaults, then the YAML file at path if path is
// non-empty, then environment variables. A .env file in the working
// directory is loaded first when present.
func Load(path string) (Config, error) {
	// Missing .env is the normal case outside local development.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("CAMPUS_ACADEMIC_URL"); v != "" {
		c.AcademicURL = v
	}
	if v := os.Getenv("CAMPUS_ATHLETICS_URL"); v != "" {
		c.AthleticsURL = v
	}
	if v := os.Getenv("CAMPUS_LATITUDE"); v != "" {
		lat, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing CAMPUS_LATITUDE: %w", err)
		}
		c.Latitude = lat
	}
	if v := os.Getenv("CAMPUS_LONGITUDE"); v != "" {
		lon, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing CAMPUS_LONGITUDE: %w", err)
		}
		c.Longitude = lon
	}
	if v := os.Getenv("CAMPUS_TIMEZONE"); v != "" {
		c.Timezone = v
	}
	if v := os.Getenv("CAMPUS_WEATHER_URL"); v != "" {
		c.WeatherURL = v
	}
	if v := os.Getenv("CAMPUS_DATA_FILE"); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv("CAMPUS_LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	return nil
}

func (c *Config) validate() error {
	if c.AcademicURL == "" || c.AthleticsURL == "" {
		return fmt.Errorf("both source URLs must be set")
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range", c.Longitude)
	}
	if c.DataFile == "" {
		return fmt.Errorf("data_file must be set")
	}
	return nil
}
