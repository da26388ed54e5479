package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := Logger
	t.Cleanup(func() { Logger = original })

	Logger = slog.New(NewStructuredJSONHandler(&buf, Config{
		Level:       level,
		TimeFormat:  time.RFC3339,
		ServiceName: "test-service",
		Environment: "test",
		Version:     "abc123",
	}))
	return &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []LogEntry {
	t.Helper()
	var entries []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry LogEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry), "line: %s", line)
		entries = append(entries, entry)
	}
	return entries
}

func TestStructuredJSONOutput(t *testing.T) {
	buf := captureLogger(t, LevelDebug)

	Info(context.Background(), "Test message", "key", "value")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "Test message", entry.Message)
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "test-service", entry.Service)
	assert.Equal(t, "test", entry.Environment)
	assert.Equal(t, "abc123", entry.Version)
	assert.Equal(t, "value", entry.Attributes["key"])
	assert.NotEmpty(t, entry.Timestamp)
}

func TestContextEnrichment(t *testing.T) {
	buf := captureLogger(t, LevelDebug)

	ctx := WithRequestID(context.Background(), "req-123")
	ctx = WithCorrelationID(ctx, "corr-456")
	ctx = WithComponent(ctx, ComponentNames.Service)
	ctx = WithStage(ctx, LogStages.ProviderRequest)

	Debug(ctx, "Calling provider", "model", "gpt-3.5-turbo")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "llm.Service", entry.Component)
	assert.Equal(t, "ProviderRequest", entry.Stage)
	assert.Equal(t, "req-123", entry.Request["request_id"])
	assert.Equal(t, "corr-456", entry.Request["correlation_id"])
	assert.Equal(t, "gpt-3.5-turbo", entry.Attributes["model"])

	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
	assert.Equal(t, "corr-456", CorrelationIDFromContext(ctx))
}

func TestErrorSection(t *testing.T) {
	buf := captureLogger(t, LevelDebug)

	Error(context.Background(), "Operation failed", errors.New("boom"),
		"operation", "GenerateText",
		"error_status_code", 429,
	)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Error)
	assert.Equal(t, "boom", entries[0].Error.Message)
	assert.Equal(t, "*errors.errorString", entries[0].Error.Type)
	assert.EqualValues(t, 429, entries[0].Error.Details["status_code"])
	assert.Equal(t, "GenerateText", entries[0].Attributes["operation"])
}

func TestRequestResponseSections(t *testing.T) {
	buf := captureLogger(t, LevelDebug)

	Info(context.Background(), "Request completed",
		"request", map[string]interface{}{"method": "POST", "endpoint": "/openai/generate-text"},
		"response", map[string]interface{}{"status_code": 200},
		"response_duration_ms", int64(12),
	)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "POST", entries[0].Request["method"])
	assert.Equal(t, "/openai/generate-text", entries[0].Request["endpoint"])
	assert.EqualValues(t, 200, entries[0].Response["status_code"])
	assert.EqualValues(t, 12, entries[0].Response["duration_ms"])
	assert.Nil(t, entries[0].Attributes)
}

func TestLogLevels(t *testing.T) {
	buf := captureLogger(t, LevelWarn)
	ctx := context.Background()

	Debug(ctx, "debug message")
	Info(ctx, "info message")
	Warn(ctx, "warn message")
	Error(ctx, "error message", nil)

	entries := decodeLines(t, buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "warn message", entries[0].Message)
	assert.Equal(t, "error message", entries[1].Message)
	assert.Nil(t, entries[1].Error)
}

func TestWithAttrs(t *testing.T) {
	buf := captureLogger(t, LevelDebug)

	Logger.With("instance", "a1").Info("scoped")

	entries := decodeLines(t, buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "a1", entries[0].Attributes["instance"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"warning", LevelWarn},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"nonsense", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestInitFromEnv(t *testing.T) {
	original := Logger
	t.Cleanup(func() { Logger = original })

	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("LOG_OUTPUT", "stderr")
	t.Setenv("SERVICE_NAME", "env-service")
	t.Setenv("ENVIRONMENT", "staging")

	require.NoError(t, InitFromEnv())
	assert.Equal(t, "env-service", ServiceName)
	assert.Equal(t, "staging", Environment)
	assert.True(t, Logger.Enabled(context.Background(), LevelDebug))
}

func TestSerializeValue(t *testing.T) {
	assert.EqualValues(t, 1500, SerializeValue(1500*time.Millisecond))
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "2024-01-02T03:04:05Z", SerializeValue(ts))
	assert.Equal(t, "plain", SerializeValue("plain"))
}
