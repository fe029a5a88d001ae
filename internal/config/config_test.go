package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Empty(t, cfg.SeedFile)
	assert.False(t, cfg.LogConsole)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STUDIODESK_LOG_LEVEL", "DEBUG")
	t.Setenv("STUDIODESK_SEED_FILE", "/tmp/seed.yaml")
	t.Setenv("STUDIODESK_LOG_CONSOLE", "true")

	cfg := DefaultConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "/tmp/seed.yaml", cfg.SeedFile)
	assert.True(t, cfg.LogConsole)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	// Point HOME at an empty directory so no config file exists.
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "INFO", cfg.LogLevel)
}
