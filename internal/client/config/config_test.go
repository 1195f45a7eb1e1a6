package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:5000", c.ServerURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "https://api.opencagedata.com/geocode/v1/json", c.GeocodingURL)
	assert.Equal(t, time.Hour, c.AddressCacheTTL)
	assert.NoError(t, c.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty server", func(c *Config) { c.ServerURL = "" }},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }},
		{"no workers", func(c *Config) { c.GeocodeConcurrency = 0 }},
		{"no cache", func(c *Config) { c.AddressCacheSize = 0 }},
		{"latitude", func(c *Config) { c.DefaultLatitude = 91 }},
		{"longitude", func(c *Config) { c.DefaultLongitude = -181 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoadConfig_PrecedenceFileEnvFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{
		// comments are allowed
		"server_url": "http://file:1",
		"geocoding_key": "from-file",
		"default_latitude": 10,
	}`), 0o600))

	t.Setenv("SERVER_URL", "http://env:2")
	t.Setenv("DEFAULT_LONG", "20.5")

	cfg, err := LoadConfig([]string{"-c", path, "--lat", "30"})
	require.NoError(t, err)

	assert.Equal(t, "http://env:2", cfg.ServerURL)
	assert.Equal(t, "from-file", cfg.GeocodingKey)
	assert.Equal(t, 30.0, cfg.DefaultLatitude)
	assert.Equal(t, 20.5, cfg.DefaultLongitude)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig([]string{"--config", filepath.Join(t.TempDir(), "nope.jsonc")})
	require.Error(t, err)
}

func TestLoadConfig_InvalidAfterMerge(t *testing.T) {
	_, err := LoadConfig([]string{"--geocode-workers", "0"})
	require.Error(t, err)
}
