package database

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aashari/go-openai-text-api/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu      sync.Mutex
	records []*UsageRecordDocument
	err     error
	block   chan struct{}
}

func (f *fakeWriter) InsertUsageRecord(ctx context.Context, record *UsageRecordDocument) error {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, record)
	return f.err
}

func TestUsageLoggerRecordsMetadata(t *testing.T) {
	writer := &fakeWriter{}
	usageLogger := NewUsageLogger(writer, "test", "abc123")

	requestedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	usageLogger.RecordUsage(context.Background(), llm.UsageRecord{
		RequestID:        "req-1",
		CorrelationID:    "corr-1",
		Operation:        llm.OperationGenerateText,
		Parameters:       llm.Parameters{Model: "gpt-4o", Temperature: 0.7, MaxTokens: 100, TopP: 1},
		MessageCount:     1,
		ChoiceCount:      1,
		PromptTokens:     3,
		CompletionTokens: 4,
		TotalTokens:      7,
		Duration:         250 * time.Millisecond,
		Status:           llm.UsageStatusSuccess,
		RequestedAt:      requestedAt,
	})

	require.NoError(t, usageLogger.Wait(context.Background()))
	require.Len(t, writer.records, 1)

	doc := writer.records[0]
	assert.Equal(t, "req-1", doc.RequestID)
	assert.Equal(t, "corr-1", doc.CorrelationID)
	assert.Equal(t, llm.OperationGenerateText, doc.Operation)
	assert.Equal(t, "gpt-4o", doc.Parameters.Model)
	assert.Equal(t, 7, doc.TotalTokens)
	assert.Equal(t, int64(250), doc.DurationMs)
	assert.Equal(t, "test", doc.Environment)
	assert.Equal(t, "abc123", doc.Version)
	assert.Equal(t, requestedAt, doc.RequestedAt)
}

func TestUsageLoggerSurvivesWriteErrors(t *testing.T) {
	writer := &fakeWriter{err: errors.New("write failed")}
	usageLogger := NewUsageLogger(writer, "test", "")

	usageLogger.RecordUsage(context.Background(), llm.UsageRecord{Operation: llm.OperationSystemPrompt, Status: llm.UsageStatusError})

	require.NoError(t, usageLogger.Wait(context.Background()))
	assert.Len(t, writer.records, 1)
}

func TestUsageLoggerOutlivesRequestContext(t *testing.T) {
	writer := &fakeWriter{}
	usageLogger := NewUsageLogger(writer, "test", "")

	ctx, cancel := context.WithCancel(context.Background())
	usageLogger.RecordUsage(ctx, llm.UsageRecord{Operation: llm.OperationGenerateText})
	cancel()

	require.NoError(t, usageLogger.Wait(context.Background()))
	assert.Len(t, writer.records, 1)
}

func TestUsageLoggerBoundedWrite(t *testing.T) {
	writer := &fakeWriter{block: make(chan struct{})}
	usageLogger := NewUsageLogger(writer, "test", "")
	usageLogger.timeout = 20 * time.Millisecond

	usageLogger.RecordUsage(context.Background(), llm.UsageRecord{Operation: llm.OperationGenerateText})

	waitCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, usageLogger.Wait(waitCtx))
	assert.Empty(t, writer.records)
}

func TestUsageLoggerNilWriter(t *testing.T) {
	var usageLogger *UsageLogger
	assert.NotPanics(t, func() {
		usageLogger.RecordUsage(context.Background(), llm.UsageRecord{})
	})
}
