package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, Default().Addr, cfg.Addr)
		assert.Equal(t, Default().LatencyMS, cfg.LatencyMS)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\nlatency_ms: 0\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Addr)
		assert.Equal(t, 0, cfg.LatencyMS)
		assert.Equal(t, Default().Database, cfg.Database)
	})

	t.Run("env overrides win", func(t *testing.T) {
		t.Setenv("PORT", "7777")
		t.Setenv("COLLEGE_NETWORK_DB", "/tmp/custom.db")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, ":7777", cfg.Addr)
		assert.Equal(t, "/tmp/custom.db", cfg.Database)
	})

	t.Run("malformed yaml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("addr: [unclosed"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestLatency(t *testing.T) {
	cfg := Config{LatencyMS: 250}
	assert.Equal(t, 250*time.Millisecond, cfg.Latency())
}
