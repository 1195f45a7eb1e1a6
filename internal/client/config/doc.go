// Package config loads runtime configuration for the emergency help CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file, comments allowed, selected with -c or --config.
//  3. A .env file in the working directory, then process environment.
//  4. Command-line flags, which override everything above.
//
// # Environment
//
//	SERVER_URL      base URL of the backend REST API
//	GEOCODING_URL   reverse geocoding endpoint (OpenCage compatible)
//	GEOCODING_KEY   API key for the geocoding endpoint
//	DEFAULT_LAT     fallback latitude when no position is available
//	DEFAULT_LONG    fallback longitude when no position is available
//	LOG_LEVEL       debug, info, warn or error
//
// # JSON schema
//
// Durations can be strings like "10s" or integer nanoseconds:
//
//	{
//	  // backend
//	  "server_url": "http://localhost:5000",
//	  "request_timeout": "10s",
//	  "geocoding_key": "...",
//	  "default_latitude": 51.505,
//	  "default_longitude": -0.09,
//	  "address_cache_ttl": "1h"
//	}
package config
