package config

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"
)

// lookupFunc matches os.LookupEnv.
type lookupFunc func(key string) (string, bool)

// loadDotEnv copies variables from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func loadDotEnv(path string) {
	_ = godotenv.Load(path)
}

// parseEnv overlays cfg with the environment variables listed in the package
// documentation.
func parseEnv(cfg *Config, lookup lookupFunc) error {
	if v, ok := lookup("SERVER_URL"); ok && v != "" {
		cfg.ServerURL = v
	}
	if v, ok := lookup("GEOCODING_URL"); ok && v != "" {
		cfg.GeocodingURL = v
	}
	if v, ok := lookup("GEOCODING_KEY"); ok {
		cfg.GeocodingKey = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}

	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"DEFAULT_LAT", &cfg.DefaultLatitude},
		{"DEFAULT_LONG", &cfg.DefaultLongitude},
	} {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = n
	}
	return nil
}
