package database

import (
	"context"
	"sync"
	"time"

	"github.com/aashari/go-openai-text-api/internal/llm"
	"github.com/aashari/go-openai-text-api/internal/logger"
)

// DefaultWriteTimeout bounds each asynchronous usage write
const DefaultWriteTimeout = 5 * time.Second

// UsageWriter persists usage documents
type UsageWriter interface {
	InsertUsageRecord(ctx context.Context, record *UsageRecordDocument) error
}

// UsageLogger writes usage records to MongoDB in the background. It
// implements llm.UsageRecorder and never fails the request it observes.
type UsageLogger struct {
	writer      UsageWriter
	environment string
	version     string
	timeout     time.Duration
	wg          sync.WaitGroup
}

// NewUsageLogger creates a usage logger over writer
func NewUsageLogger(writer UsageWriter, environment, version string) *UsageLogger {
	return &UsageLogger{
		writer:      writer,
		environment: environment,
		version:     version,
		timeout:     DefaultWriteTimeout,
	}
}

// RecordUsage stores record asynchronously with a bounded timeout
func (l *UsageLogger) RecordUsage(ctx context.Context, record llm.UsageRecord) {
	if l == nil || l.writer == nil {
		return
	}

	doc := NewUsageRecordDocument(record, l.environment, l.version)
	logCtx := logger.WithStage(logger.WithComponent(context.WithoutCancel(ctx), logger.ComponentNames.Database), logger.LogStages.DatabaseOperation)

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		writeCtx, cancel := context.WithTimeout(logCtx, l.timeout)
		defer cancel()

		if err := l.writer.InsertUsageRecord(writeCtx, doc); err != nil {
			logger.Warn(logCtx, "Failed to store usage record",
				"error_message", err.Error(),
				"operation", doc.Operation,
			)
			return
		}
		logger.Debug(logCtx, "Usage record stored", "operation", doc.Operation)
	}()
}

// Wait blocks until in-flight writes finish or ctx is done
func (l *UsageLogger) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
