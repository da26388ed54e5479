package database

import (
	"time"

	"github.com/aashari/go-openai-text-api/internal/llm"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UsageRecordDocument is the stored form of one provider call. It holds
// metadata only, never message contents.
type UsageRecordDocument struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	RequestID     string `bson:"request_id,omitempty" json:"request_id,omitempty"`
	CorrelationID string `bson:"correlation_id,omitempty" json:"correlation_id,omitempty"`
	Operation     string `bson:"operation" json:"operation"`

	Parameters   llm.Parameters `bson:"parameters" json:"parameters"`
	MessageCount int            `bson:"message_count" json:"message_count"`
	ChoiceCount  int            `bson:"choice_count" json:"choice_count"`

	PromptTokens     int `bson:"prompt_tokens" json:"prompt_tokens"`
	CompletionTokens int `bson:"completion_tokens" json:"completion_tokens"`
	TotalTokens      int `bson:"total_tokens" json:"total_tokens"`

	DurationMs int64  `bson:"duration_ms" json:"duration_ms"`
	Status     string `bson:"status" json:"status"`
	StatusCode int    `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Error      string `bson:"error,omitempty" json:"error,omitempty"`

	Environment string `bson:"environment,omitempty" json:"environment,omitempty"`
	Version     string `bson:"version,omitempty" json:"version,omitempty"`

	RequestedAt time.Time `bson:"requested_at" json:"requested_at"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// NewUsageRecordDocument converts a usage record for storage
func NewUsageRecordDocument(record llm.UsageRecord, environment, version string) *UsageRecordDocument {
	return &UsageRecordDocument{
		RequestID:        record.RequestID,
		CorrelationID:    record.CorrelationID,
		Operation:        record.Operation,
		Parameters:       record.Parameters,
		MessageCount:     record.MessageCount,
		ChoiceCount:      record.ChoiceCount,
		PromptTokens:     record.PromptTokens,
		CompletionTokens: record.CompletionTokens,
		TotalTokens:      record.TotalTokens,
		DurationMs:       record.Duration.Milliseconds(),
		Status:           record.Status,
		StatusCode:       record.StatusCode,
		Error:            record.Error,
		Environment:      environment,
		Version:          version,
		RequestedAt:      record.RequestedAt,
	}
}
