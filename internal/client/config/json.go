package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/emergencyhelp/internal/jsonx"
	"github.com/tidwall/jsonc"
)

// Duration accepts either a Go duration string ("3s") or integer nanoseconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		d.Duration = v
		return nil
	}

	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid duration %s", b)
	}
	d.Duration = time.Duration(n)
	return nil
}

// fileConfig mirrors Config for JSON decoding. Pointer fields distinguish
// "absent" from zero so a partial file only overrides what it names.
type fileConfig struct {
	ServerURL          *string   `json:"server_url"`
	RequestTimeout     *Duration `json:"request_timeout"`
	GeocodingURL       *string   `json:"geocoding_url"`
	GeocodingKey       *string   `json:"geocoding_key"`
	GeocodeConcurrency *int      `json:"geocode_concurrency"`
	AddressCacheSize   *int      `json:"address_cache_size"`
	AddressCacheTTL    *Duration `json:"address_cache_ttl"`
	DefaultLatitude    *float64  `json:"default_latitude"`
	DefaultLongitude   *float64  `json:"default_longitude"`
	DatabasePath       *string   `json:"database_path"`
	LogBackend         *string   `json:"log_backend"`
	LogLevel           *string   `json:"log_level"`
}

// parseJSON overlays cfg with the values present in the file at path.
func parseJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := jsonx.Unmarshal(jsonc.ToJSON(data), &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setIf(&cfg.ServerURL, fc.ServerURL)
	setIf(&cfg.GeocodingURL, fc.GeocodingURL)
	setIf(&cfg.GeocodingKey, fc.GeocodingKey)
	setIf(&cfg.GeocodeConcurrency, fc.GeocodeConcurrency)
	setIf(&cfg.AddressCacheSize, fc.AddressCacheSize)
	setIf(&cfg.DefaultLatitude, fc.DefaultLatitude)
	setIf(&cfg.DefaultLongitude, fc.DefaultLongitude)
	setIf(&cfg.DatabasePath, fc.DatabasePath)
	setIf(&cfg.LogBackend, fc.LogBackend)
	setIf(&cfg.LogLevel, fc.LogLevel)
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.AddressCacheTTL != nil {
		cfg.AddressCacheTTL = fc.AddressCacheTTL.Duration
	}
	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
