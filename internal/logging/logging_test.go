package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "ERROR", want: slog.LevelError},
		{input: "critical", want: LevelCritical},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entrycard.log")

	log, closeLog, err := Setup(path, slog.LevelDebug)
	require.NoError(t, err)

	log.Info("first run")
	closeLog()

	// A second setup must append, not truncate
	log, closeLog, err = Setup(path, slog.LevelDebug)
	require.NoError(t, err)

	log.Info("second run")
	Critical(log, "going down")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "first run")
	assert.Contains(t, content, "second run")
	assert.Contains(t, content, "session=")
	assert.Contains(t, content, "level=CRITICAL")
}

func TestSetupLevelFiltersDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entrycard.log")

	log, closeLog, err := Setup(path, slog.LevelWarn)
	require.NoError(t, err)

	log.Debug("noise")
	log.Warn("signal")
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "noise")
	assert.Contains(t, string(data), "signal")
}
