package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		"debug":       {input: "debug", expected: slog.LevelDebug},
		"info":        {input: "info", expected: slog.LevelInfo},
		"warn":        {input: "warn", expected: slog.LevelWarn},
		"error":       {input: "error", expected: slog.LevelError},
		"upper case":  {input: "INFO", expected: slog.LevelInfo},
		"empty":       {input: "", expected: slog.LevelWarn},
		"unknown":     {input: "verbose", wantErr: true},
		"padded warn": {input: " warn ", expected: slog.LevelWarn},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNew_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "file", "pr-1.yml")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "file=pr-1.yml")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	assert.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}
