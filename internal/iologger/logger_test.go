package iologger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/filmsurvey/ratedb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInit_FileDestination verifies the log file is created.
func TestInit_FileDestination(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}

	err := Init(tmpDir, cfg, false)
	require.NoError(t, err)

	slog.Info("test entry")

	logPath := filepath.Join(tmpDir, "ratedb.log")
	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

// TestInit_Append verifies append mode preserves earlier entries.
func TestInit_Append(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}

	require.NoError(t, Init(tmpDir, cfg, false))
	slog.Info("first entry")

	require.NoError(t, Init(tmpDir, cfg, true))
	slog.Info("second entry")

	data, err := os.ReadFile(filepath.Join(tmpDir, "ratedb.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first entry")
	assert.Contains(t, string(data), "second entry")
}

// TestInit_StderrDestination verifies no file is created for
// stream destinations.
func TestInit_StderrDestination(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := config.LogConfig{
		Format:      "text",
		Level:       "debug",
		Destination: "stderr",
	}

	err := Init(tmpDir, cfg, false)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(tmpDir, "ratedb.log"))
	assert.True(t, os.IsNotExist(err),
		"stderr destination should not create a log file")
}

// TestInit_BadLogDir verifies a missing log directory surfaces
// as an error.
func TestInit_BadLogDir(t *testing.T) {
	cfg := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}

	err := Init("/nonexistent/path/for/sure", cfg, false)
	assert.Error(t, err)
}

// TestParseLevel verifies level string conversion.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLevel(tt.input), tt.input)
	}
}
