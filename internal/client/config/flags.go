package config

import (
	"io"

	"github.com/spf13/pflag"
)

// parseFlags overlays cfg with command-line flags. Defaults are the values
// already in cfg, so unset flags leave earlier sources untouched.
func parseFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("client", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Consumed by flagx.ConfigFileFlag; declared so parsing does not reject it.
	fs.StringP("config", "c", "", "path to config file")

	fs.StringVarP(&cfg.ServerURL, "server", "a", cfg.ServerURL, "base URL of the backend API")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.GeocodingURL, "geocoding-url", cfg.GeocodingURL, "reverse geocoding endpoint")
	fs.StringVar(&cfg.GeocodingKey, "geocoding-key", cfg.GeocodingKey, "reverse geocoding API key")
	fs.IntVar(&cfg.GeocodeConcurrency, "geocode-workers", cfg.GeocodeConcurrency, "concurrent address lookups")
	fs.IntVar(&cfg.AddressCacheSize, "cache-size", cfg.AddressCacheSize, "resolved address cache entries")
	fs.DurationVar(&cfg.AddressCacheTTL, "cache-ttl", cfg.AddressCacheTTL, "resolved address cache TTL")
	fs.Float64Var(&cfg.DefaultLatitude, "lat", cfg.DefaultLatitude, "fallback latitude")
	fs.Float64Var(&cfg.DefaultLongitude, "long", cfg.DefaultLongitude, "fallback longitude")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path to the local session database")
	fs.StringVar(&cfg.LogBackend, "log-backend", cfg.LogBackend, "logging backend: slog or zap")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	return fs.Parse(args)
}
