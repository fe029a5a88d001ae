package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("DEBUG"))
	assert.Equal(t, WARN, ParseLevel("WARN"))
	assert.Equal(t, ERROR, ParseLevel("ERROR"))
	assert.Equal(t, INFO, ParseLevel("INFO"))
	assert.Equal(t, INFO, ParseLevel("garbage"))
}

func TestFileOutputRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	l, err := New(Config{Level: INFO, FilePath: path})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("shown", F("key", "value"))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "INFO: shown")
	assert.Contains(t, string(data), "key=value")
}

func TestNoWritersIsSafe(t *testing.T) {
	l, err := New(Config{Level: DEBUG})
	require.NoError(t, err)
	l.Info("goes nowhere")
	require.NoError(t, l.Close())
}
