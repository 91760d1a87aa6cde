// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// OverpassConfig provides settings for the Overpass interpreter client.
type OverpassConfig interface {
	GetOverpassURL() string
	GetUserAgent() string
	GetHTTPTimeout() time.Duration
	GetRequestSpacing() time.Duration
}

// NominatimConfig provides settings for the Nominatim geocoding client.
type NominatimConfig interface {
	GetNominatimURL() string
	GetUserAgent() string
	GetHTTPTimeout() time.Duration
	GetRequestSpacing() time.Duration
}

// PipelineConfig provides settings shared by the pipeline entrypoints.
type PipelineConfig interface {
	GetPlaceName() string
	GetSpreadsheetPath() string
	GetMapImagePath() string
}

// Config is the root application configuration.
type Config struct {
	Env             string
	PlaceName       string
	SpreadsheetPath string
	MapImagePath    string
	OverpassURL     string
	NominatimURL    string
	UserAgent       string
	HTTPTimeout     time.Duration
	RequestSpacing  time.Duration
}

// OverpassConfig / NominatimConfig implementation
func (c *Config) GetOverpassURL() string           { return c.OverpassURL }
func (c *Config) GetNominatimURL() string          { return c.NominatimURL }
func (c *Config) GetUserAgent() string             { return c.UserAgent }
func (c *Config) GetHTTPTimeout() time.Duration    { return c.HTTPTimeout }
func (c *Config) GetRequestSpacing() time.Duration { return c.RequestSpacing }

// PipelineConfig implementation
func (c *Config) GetPlaceName() string       { return c.PlaceName }
func (c *Config) GetSpreadsheetPath() string { return c.SpreadsheetPath }
func (c *Config) GetMapImagePath() string    { return c.MapImagePath }

// Load reads configuration from environment variables. Every setting has a
// working default; a run with no environment at all targets Wrocław against
// the public OSM endpoints.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:             getEnv("APP_ENV", "development"),
		PlaceName:       getEnv("PLACE_NAME", "Wrocław, Poland"),
		SpreadsheetPath: getEnv("SPREADSHEET_PATH", "zabka_shops_wroclaw.xlsx"),
		MapImagePath:    getEnv("MAP_IMAGE_PATH", "zabka_wroclaw.png"),
		OverpassURL:     getEnv("OVERPASS_URL", "https://overpass.kumi.systems/api/interpreter"),
		NominatimURL:    getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org/search"),
		UserAgent:       getEnv("USER_AGENT", "zabka-atlas/1.0"),
		HTTPTimeout:     mustDuration(getEnv("HTTP_TIMEOUT", "90s")),
		RequestSpacing:  mustDuration(getEnv("REQUEST_SPACING", "1s")),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}
