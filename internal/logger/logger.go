package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aashari/go-openai-text-api/internal/utils"
)

// Logger levels
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// Context keys
type contextKey string

const (
	RequestIDKey     contextKey = "request_id"
	CorrelationIDKey contextKey = "correlation_id"
	ComponentKey     contextKey = "component"
	StageKey         contextKey = "stage"
)

// Global logger instance
var Logger *slog.Logger

// Service configuration
var (
	ServiceName = utils.ServiceName
	Environment = "development"
	Version     = "unknown"
)

// Configuration for logger
type Config struct {
	Level       slog.Level
	Format      string // "json" or "text"
	Output      string // "stdout", "stderr", or file path
	TimeFormat  string
	ServiceName string
	Environment string
	Version     string
}

// Default configuration
var DefaultConfig = Config{
	Level:       LevelInfo,
	Format:      "json",
	Output:      "stdout",
	TimeFormat:  time.RFC3339,
	ServiceName: utils.ServiceName,
	Environment: "development",
	Version:     "unknown",
}

// Init initializes the global logger
func Init(config Config) error {
	var output io.Writer

	switch config.Output {
	case "stdout", "":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		file, err := os.OpenFile(config.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", config.Output, err)
		}
		output = file
	}

	ServiceName = config.ServiceName
	Environment = config.Environment
	Version = config.Version

	Logger = slog.New(newHandler(output, config))
	return nil
}

func newHandler(output io.Writer, config Config) slog.Handler {
	if config.Format == "text" {
		return slog.NewTextHandler(output, &slog.HandlerOptions{Level: config.Level})
	}
	return NewStructuredJSONHandler(output, config)
}

// InitFromEnv initializes the logger from LOG_* and service environment variables
func InitFromEnv() error {
	config := DefaultConfig
	config.Level = ParseLevel(utils.GetLogLevel())
	config.Format = utils.GetEnvString("LOG_FORMAT", config.Format)
	config.Output = utils.GetEnvString("LOG_OUTPUT", config.Output)
	config.ServiceName = utils.GetEnvString("SERVICE_NAME", config.ServiceName)
	config.Environment = utils.GetEnvString("ENVIRONMENT", utils.GetEnvString("ENV", config.Environment))
	config.Version = utils.GetEnvString("VERSION", config.Version)
	return Init(config)
}

// ParseLevel maps a level name to its slog level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// StructuredJSONHandler writes one LogEntry per record
type StructuredJSONHandler struct {
	mu          *sync.Mutex
	writer      io.Writer
	level       slog.Leveler
	timeFormat  string
	serviceName string
	environment string
	version     string
	attrs       []slog.Attr
}

// NewStructuredJSONHandler creates a handler writing to w
func NewStructuredJSONHandler(w io.Writer, config Config) *StructuredJSONHandler {
	timeFormat := config.TimeFormat
	if timeFormat == "" {
		timeFormat = time.RFC3339
	}
	return &StructuredJSONHandler{
		mu:          &sync.Mutex{},
		writer:      w,
		level:       config.Level,
		timeFormat:  timeFormat,
		serviceName: config.ServiceName,
		environment: config.Environment,
		version:     config.Version,
	}
}

func (h *StructuredJSONHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *StructuredJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *StructuredJSONHandler) WithGroup(name string) slog.Handler {
	return h
}

func (h *StructuredJSONHandler) Handle(ctx context.Context, r slog.Record) error {
	entry := LogEntry{
		Timestamp:   r.Time.UTC().Format(h.timeFormat),
		Level:       r.Level.String(),
		Message:     r.Message,
		Service:     h.serviceName,
		Environment: h.environment,
		Version:     h.version,
	}

	if ctx != nil {
		entry.Component = stringFromContext(ctx, ComponentKey)
		entry.Stage = stringFromContext(ctx, StageKey)
		if requestID := stringFromContext(ctx, RequestIDKey); requestID != "" {
			entry.request()["request_id"] = requestID
		}
		if correlationID := stringFromContext(ctx, CorrelationIDKey); correlationID != "" {
			entry.request()["correlation_id"] = correlationID
		}
	}

	for _, a := range h.attrs {
		entry.route(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		entry.route(a)
		return true
	})

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = fmt.Fprintln(h.writer, string(data))
	return err
}

// WithContext returns the global logger, initializing defaults on first use
func WithContext(ctx context.Context) *slog.Logger {
	if Logger == nil {
		if err := Init(DefaultConfig); err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: Failed to initialize default logger: %v\n", err)
			return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: LevelDebug}))
		}
	}
	return Logger
}

// WithComponent tags subsequent log lines with the emitting component
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, ComponentKey, component)
}

// WithStage tags subsequent log lines with a processing stage
func WithStage(ctx context.Context, stage string) context.Context {
	return context.WithValue(ctx, StageKey, stage)
}

// WithRequestID stores the request ID in ctx
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithCorrelationID stores the correlation ID in ctx
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, correlationID)
}

// RequestIDFromContext returns the request ID stored in ctx, if any
func RequestIDFromContext(ctx context.Context) string {
	return stringFromContext(ctx, RequestIDKey)
}

// CorrelationIDFromContext returns the correlation ID stored in ctx, if any
func CorrelationIDFromContext(ctx context.Context) string {
	return stringFromContext(ctx, CorrelationIDKey)
}

func stringFromContext(ctx context.Context, key contextKey) string {
	if ctx == nil {
		return ""
	}
	if value, ok := ctx.Value(key).(string); ok {
		return value
	}
	return ""
}

func Debug(ctx context.Context, msg string, args ...any) {
	logAt(ctx, LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	logAt(ctx, LevelInfo, msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	logAt(ctx, LevelWarn, msg, args...)
}

// Error logs msg at error level with err attached under the error section
func Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err)
	}
	logAt(ctx, LevelError, msg, args...)
}

func logAt(ctx context.Context, level slog.Level, msg string, args ...any) {
	if ctx == nil {
		ctx = context.Background()
	}
	l := WithContext(ctx)
	if _, structured := l.Handler().(*StructuredJSONHandler); !structured {
		args = appendContextValues(ctx, args)
	}
	l.Log(ctx, level, msg, args...)
}

// appendContextValues adds context values for handlers that do not read ctx
func appendContextValues(ctx context.Context, args []any) []any {
	for _, key := range []contextKey{RequestIDKey, CorrelationIDKey, ComponentKey, StageKey} {
		if value := stringFromContext(ctx, key); value != "" {
			args = append(args, string(key), value)
		}
	}
	return args
}

// LogConfiguration logs the effective configuration. Callers mask secrets first.
func LogConfiguration(ctx context.Context, configData any) {
	Info(WithStage(ctx, LogStages.Configuration), "Configuration loaded",
		"configuration", configData,
	)
}
