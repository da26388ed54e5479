package logger

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// LogEntry is the JSON shape of every structured log line
type LogEntry struct {
	Timestamp   string                 `json:"timestamp"`
	Level       string                 `json:"level"`
	Message     string                 `json:"message"`
	Service     string                 `json:"service"`
	Environment string                 `json:"environment"`
	Version     string                 `json:"version,omitempty"`
	Component   string                 `json:"component,omitempty"`
	Stage       string                 `json:"stage,omitempty"`
	Request     map[string]interface{} `json:"request,omitempty"`
	Response    map[string]interface{} `json:"response,omitempty"`
	Attributes  map[string]interface{} `json:"attributes,omitempty"`
	Error       *ErrorContext          `json:"error,omitempty"`
}

// ErrorContext contains standardized error information
type ErrorContext struct {
	Message string                 `json:"message"`
	Type    string                 `json:"type"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *LogEntry) request() map[string]interface{} {
	if e.Request == nil {
		e.Request = make(map[string]interface{})
	}
	return e.Request
}

func (e *LogEntry) response() map[string]interface{} {
	if e.Response == nil {
		e.Response = make(map[string]interface{})
	}
	return e.Response
}

func (e *LogEntry) errorContext() *ErrorContext {
	if e.Error == nil {
		e.Error = &ErrorContext{}
	}
	return e.Error
}

// route places an attribute in its section. "request", "response" and "error"
// are sections; request_/response_/error_ prefixes address a single field.
func (e *LogEntry) route(a slog.Attr) {
	key := a.Key
	value := SerializeValue(a.Value.Resolve().Any())

	switch {
	case key == "request":
		mergeSection(e.request(), value)
	case key == "response":
		mergeSection(e.response(), value)
	case key == "error":
		ec := e.errorContext()
		if err, ok := value.(error); ok {
			ec.Message = err.Error()
			ec.Type = fmt.Sprintf("%T", err)
		} else {
			ec.Message = fmt.Sprintf("%v", value)
			ec.Type = "string"
		}
	case strings.HasPrefix(key, "request_"):
		e.request()[strings.TrimPrefix(key, "request_")] = value
	case strings.HasPrefix(key, "response_"):
		e.response()[strings.TrimPrefix(key, "response_")] = value
	case strings.HasPrefix(key, "error_"):
		ec := e.errorContext()
		if ec.Details == nil {
			ec.Details = make(map[string]interface{})
		}
		ec.Details[strings.TrimPrefix(key, "error_")] = value
	default:
		if e.Attributes == nil {
			e.Attributes = make(map[string]interface{})
		}
		e.Attributes[key] = value
	}
}

func mergeSection(section map[string]interface{}, value interface{}) {
	switch v := value.(type) {
	case map[string]interface{}:
		for k, val := range v {
			section[k] = SerializeValue(val)
		}
	case map[string]string:
		for k, val := range v {
			section[k] = val
		}
	default:
		section["value"] = v
	}
}

// SerializeValue converts time values to their log representation
func SerializeValue(val interface{}) interface{} {
	switch v := val.(type) {
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case time.Duration:
		return v.Milliseconds()
	default:
		return val
	}
}
