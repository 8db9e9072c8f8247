package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "valid info level", level: "info", wantErr: false},
		{name: "valid debug level", level: "debug", wantErr: false},
		{name: "valid warn level", level: "warn", wantErr: false},
		{name: "valid error level", level: "error", wantErr: false},
		{name: "warning alias", level: "warning", wantErr: false},
		{name: "mixed case", level: "InFo", wantErr: false},
		{name: "unknown level", level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, logger)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	logger.Info("test message", "key", "value")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "member-service")
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger, err := NewWithWriter("warn", &buf)
	require.NoError(t, err)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer

	base, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	scoped := WithComponent(base, "token_provider")
	scoped.Info("issued")

	assert.Contains(t, buf.String(), "token_provider")
}

func TestWithMember(t *testing.T) {
	var buf bytes.Buffer

	base, err := NewWithWriter("info", &buf)
	require.NoError(t, err)

	scoped := WithMember(base, "member-123")
	scoped.Info("login")

	assert.Contains(t, buf.String(), "member-123")
}

func TestParseLogLevel(t *testing.T) {
	level, err := parseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = parseLogLevel("nope")
	assert.Error(t, err)
}
