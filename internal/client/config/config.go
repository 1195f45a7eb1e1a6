package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/emergencyhelp/internal/flagx"
)

// Config holds runtime settings for the emergency help CLI.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration

	GeocodingURL       string
	GeocodingKey       string
	GeocodeConcurrency int
	AddressCacheSize   int
	AddressCacheTTL    time.Duration

	// Used when no position could be obtained from the locator.
	DefaultLatitude  float64
	DefaultLongitude float64

	DatabasePath string

	LogBackend string
	LogLevel   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:5000"
	c.RequestTimeout = 10 * time.Second
	c.GeocodingURL = "https://api.opencagedata.com/geocode/v1/json"
	c.GeocodeConcurrency = 4
	c.AddressCacheSize = 512
	c.AddressCacheTTL = time.Hour
	c.DefaultLatitude = 51.505
	c.DefaultLongitude = -0.09
	c.DatabasePath = "data/emergency.db"
	c.LogBackend = "slog"
	c.LogLevel = "info"
}

// Validate rejects values that would make the client unusable.
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server url is required")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.GeocodeConcurrency < 1 {
		return fmt.Errorf("geocode concurrency must be at least 1, got %d", c.GeocodeConcurrency)
	}
	if c.AddressCacheSize < 1 {
		return fmt.Errorf("address cache size must be at least 1, got %d", c.AddressCacheSize)
	}
	if c.DefaultLatitude < -90 || c.DefaultLatitude > 90 {
		return fmt.Errorf("default latitude out of range: %v", c.DefaultLatitude)
	}
	if c.DefaultLongitude < -180 || c.DefaultLongitude > 180 {
		return fmt.Errorf("default longitude out of range: %v", c.DefaultLongitude)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the JSON file named by
// -c/--config, then .env and the environment, then args. Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigFileFlag(args); path != "" {
		if err := parseJSON(cfg, path); err != nil {
			return nil, err
		}
	}

	loadDotEnv(".env")
	if err := parseEnv(cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
