package llm

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_provider.go -package=mocks github.com/aashari/go-openai-text-api/internal/llm Provider
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_usage_recorder.go -package=mocks github.com/aashari/go-openai-text-api/internal/llm UsageRecorder

import (
	"context"
	"time"
)

// Provider is the outbound completion client as the service consumes it.
type Provider interface {
	// CreateChatCompletion issues exactly one completion request.
	CreateChatCompletion(ctx context.Context, req ChatCompletionRequest) (*Completion, error)
	// ListModels returns the model identifiers visible to the credentials.
	ListModels(ctx context.Context) ([]string, error)
}

// UsageRecorder observes completed provider calls. Implementations must not
// block the caller for long and must not fail the request.
type UsageRecorder interface {
	RecordUsage(ctx context.Context, record UsageRecord)
}

// Usage record statuses
const (
	UsageStatusSuccess = "success"
	UsageStatusError   = "error"
)

// UsageRecord describes one provider call. It never carries message content.
type UsageRecord struct {
	RequestID        string
	CorrelationID    string
	Operation        string
	Parameters       Parameters
	MessageCount     int
	ChoiceCount      int
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
	Duration         time.Duration
	Status           string
	StatusCode       int
	Error            string
	RequestedAt      time.Time
}
