package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/aashari/go-openai-text-api/internal/logger"
	"github.com/aashari/go-openai-text-api/internal/utils"
)

// ErrorType represents different types of errors
type ErrorType string

const (
	ErrorTypeValidation     ErrorType = "validation_error"
	ErrorTypeAuthentication ErrorType = "authentication_error"
	ErrorTypeAuthorization  ErrorType = "authorization_error"
	ErrorTypeNotFound       ErrorType = "not_found_error"
	ErrorTypeInternal       ErrorType = "internal_error"
	ErrorTypeExternal       ErrorType = "external_error"
	ErrorTypeConfiguration  ErrorType = "configuration_error"
)

// defaultStatus is the HTTP status WriteError uses for each type
var defaultStatus = map[ErrorType]int{
	ErrorTypeValidation:     http.StatusBadRequest,
	ErrorTypeAuthentication: http.StatusUnauthorized,
	ErrorTypeAuthorization:  http.StatusForbidden,
	ErrorTypeNotFound:       http.StatusNotFound,
	ErrorTypeInternal:       http.StatusInternalServerError,
	ErrorTypeExternal:       http.StatusBadGateway,
	ErrorTypeConfiguration:  http.StatusServiceUnavailable,
}

// APIError represents a structured API error
type APIError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    string    `json:"code,omitempty"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// WithCode sets a machine-readable code and returns e
func (e *APIError) WithCode(code string) *APIError {
	e.Code = code
	return e
}

// WithDetails sets free-form details and returns e
func (e *APIError) WithDetails(details string) *APIError {
	e.Details = details
	return e
}

// StatusCode is the default HTTP status for the error's type
func (e *APIError) StatusCode() int {
	if status, ok := defaultStatus[e.Type]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorResponse represents the JSON error response format
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// NewAPIError creates a new APIError
func NewAPIError(errorType ErrorType, message string) *APIError {
	return &APIError{
		Type:    errorType,
		Message: message,
	}
}

func NewValidationError(message string) *APIError {
	return NewAPIError(ErrorTypeValidation, message)
}

func NewNotFoundError(message string) *APIError {
	return NewAPIError(ErrorTypeNotFound, message)
}

func NewInternalError(message string) *APIError {
	return NewAPIError(ErrorTypeInternal, message)
}

// NewExternalError creates an upstream (OpenAI, MongoDB) failure
func NewExternalError(message string) *APIError {
	return NewAPIError(ErrorTypeExternal, message)
}

func NewConfigurationError(message string) *APIError {
	return NewAPIError(ErrorTypeConfiguration, message)
}

// WriteError writes apiErr with the default status for its type
func WriteError(ctx context.Context, w http.ResponseWriter, apiErr *APIError) {
	HandleError(ctx, w, apiErr, apiErr.StatusCode())
}

// HandleError writes the error envelope with statusCode. Errors that do not
// wrap an *APIError are classified by status.
func HandleError(ctx context.Context, w http.ResponseWriter, err error, statusCode int) {
	var apiError *APIError
	if !stderrors.As(err, &apiError) {
		apiError = inferErrorType(err, statusCode)
	}

	ctx = logger.WithComponent(ctx, logger.ComponentNames.ErrorHandler)

	body, marshalErr := json.Marshal(ErrorResponse{Error: *apiError})
	if marshalErr != nil {
		logger.Error(ctx, "Error marshaling error response", marshalErr)
		body = []byte(`{"error":{"type":"internal_error","message":"Internal server error"}}`)
	}

	w.Header().Set(utils.HeaderContentType, utils.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if _, writeErr := w.Write(body); writeErr != nil {
		logger.Error(ctx, "Failed to write error response", writeErr)
	}

	args := []any{
		"response_status_code", statusCode,
		"error_type", string(apiError.Type),
		"error_code", apiError.Code,
		"message", apiError.Message,
	}
	if statusCode >= http.StatusInternalServerError {
		logger.Error(ctx, "API error", apiError, args...)
		return
	}
	logger.Warn(ctx, "API error", args...)
}

// inferErrorType maps a plain error to an APIError by status code
func inferErrorType(err error, statusCode int) *APIError {
	message := err.Error()

	switch statusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return NewValidationError(message)
	case http.StatusUnauthorized:
		return NewAPIError(ErrorTypeAuthentication, message)
	case http.StatusForbidden:
		return NewAPIError(ErrorTypeAuthorization, message)
	case http.StatusNotFound:
		return NewNotFoundError(message)
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusGatewayTimeout:
		return NewExternalError(message)
	case http.StatusServiceUnavailable:
		return NewConfigurationError(message)
	default:
		return NewInternalError(message)
	}
}
