package llm

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/openai/openai-go"
)

var (
	// ErrClientNotReady is returned when no provider client was configured.
	ErrClientNotReady = errors.New("OpenAI client not initialized")
	// ErrInvalidInput is returned when a prompt cannot be composed into turns.
	ErrInvalidInput = errors.New("invalid input")
)

// InputError names the field that failed composition. It matches
// ErrInvalidInput under errors.Is.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidInput, e.Field, e.Message)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func invalidInput(field, message string) error {
	return &InputError{Field: field, Message: message}
}

// ProviderStatusCode extracts the HTTP status of a provider API error.
// Transport failures and other errors report false.
func ProviderStatusCode(err error) (int, bool) {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode >= http.StatusBadRequest {
		return apiErr.StatusCode, true
	}
	return 0, false
}
