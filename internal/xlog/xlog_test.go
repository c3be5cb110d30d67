package xlog

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWithoutSinkIsNop(t *testing.T) {
	logger, closeFn, err := New()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
	assert.NoError(t, closeFn())
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(WithWriter(&buf))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("run started", zap.String("engine", "Bubble Sort"), zap.Uint64("epoch", 3))
	require.NoError(t, closeFn())

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "run started", rec["msg"])
	assert.Equal(t, "Bubble Sort", rec["engine"])
	assert.EqualValues(t, 3, rec["epoch"])
}

func TestDebugLowersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New(WithWriter(&buf), WithDebug(true))
	require.NoError(t, err)
	logger.Debug("tick dropped")
	assert.Contains(t, buf.String(), "tick dropped")
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "algoviz.log")
	logger, closeFn, err := New(WithFile(path), WithLevel("warn"))
	require.NoError(t, err)

	logger.Info("skipped")
	logger.Warn("tree rejected")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "skipped")
	assert.Contains(t, string(data), "tree rejected")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"", zapcore.InfoLevel},
		{"Warning", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrUnknownLevel)

	_, _, err = New(WithLevel("loud"))
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn, err := New(WithWriter(&buf), WithFormat("console"))
	require.NoError(t, err)
	logger.Info("run finished", zap.Int("steps", 12))
	require.NoError(t, closeFn())

	line := buf.String()
	assert.NotEqual(t, byte('{'), line[0])
	assert.Contains(t, line, "INFO")
	assert.Contains(t, line, "run finished")
	assert.Contains(t, line, `{"steps": 12}`)
}

func TestUnknownFormat(t *testing.T) {
	logger, closeFn, err := New(WithWriter(&bytes.Buffer{}), WithFormat("xml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.NotNil(t, logger)
	assert.NoError(t, closeFn())
}
