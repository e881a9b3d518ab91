// Package config loads server configuration from an optional yaml file
// with environment overrides.
package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Addr the HTTP server listens on.
	Addr string `yaml:"addr"`

	// Database is the sqlite path holding the session snapshot.
	Database string `yaml:"database"`

	// LatencyMS is the simulated backend round-trip in milliseconds.
	// Zero disables the delay.
	LatencyMS int `yaml:"latency_ms"`
}

func Default() Config {
	return Config{
		Addr:      ":8080",
		Database:  "./data/network.db",
		LatencyMS: 1000,
	}
}

// Load reads the yaml file at path, falling back to defaults when the
// file does not exist. Env overrides apply either way.
func Load(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}
	if err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, err
		}
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if p := os.Getenv("PORT"); p != "" {
		c.Addr = ":" + p
	}
	if db := os.Getenv("COLLEGE_NETWORK_DB"); db != "" {
		c.Database = db
	}
}

// Latency returns the simulated round trip as a duration.
func (c Config) Latency() time.Duration {
	return time.Duration(c.LatencyMS) * time.Millisecond
}
