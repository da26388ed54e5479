package monitoring

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/aashari/go-openai-text-api/internal/llm"
	"github.com/aashari/go-openai-text-api/internal/logger"
	"github.com/aashari/go-openai-text-api/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Metrics holds application metrics
type Metrics struct {
	mu                 sync.RWMutex
	RequestCount       int64
	RequestDuration    time.Duration
	ErrorCount         int64
	RouteRequestCounts map[string]int64
	StatusCodeCounts   map[int]int64
	CompletionCounts   map[string]int64
	TokenCounts        map[string]int64
	OperationCounts    map[string]int64
	ProviderFailures   int64
	ProviderDuration   time.Duration
	StartTime          time.Time
}

// NewMetrics creates an empty metrics set
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.reset()
	return m
}

// Global metrics instance
var globalMetrics = NewMetrics()

// GetMetrics returns the global metrics instance
func GetMetrics() *Metrics {
	return globalMetrics
}

// RecordRequest records an HTTP request with its duration and status
func (m *Metrics) RecordRequest(duration time.Duration, statusCode int, route string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.RequestCount++
	m.RequestDuration += duration
	m.StatusCodeCounts[statusCode]++

	if route != "" {
		m.RouteRequestCounts[route]++
	}

	if statusCode >= 400 {
		m.ErrorCount++
	}
}

// RecordUsage counts a provider call. Metrics is an llm.UsageRecorder.
func (m *Metrics) RecordUsage(_ context.Context, record llm.UsageRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ProviderDuration += record.Duration
	m.OperationCounts[record.Operation]++

	if record.Status != llm.UsageStatusSuccess {
		m.ProviderFailures++
		return
	}

	model := record.Parameters.Model
	m.CompletionCounts[model]++
	m.TokenCounts[model] += int64(record.TotalTokens)
}

// GetStats returns current statistics
func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	uptime := time.Since(m.StartTime)
	avgDuration := time.Duration(0)
	errorRate := 0.0
	if m.RequestCount > 0 {
		avgDuration = m.RequestDuration / time.Duration(m.RequestCount)
		errorRate = float64(m.ErrorCount) / float64(m.RequestCount)
	}

	requestsPerSecond := 0.0
	if seconds := uptime.Seconds(); seconds > 0 {
		requestsPerSecond = float64(m.RequestCount) / seconds
	}

	providerCalls := m.ProviderFailures
	for _, count := range m.CompletionCounts {
		providerCalls += count
	}
	avgProviderDuration := time.Duration(0)
	if providerCalls > 0 {
		avgProviderDuration = m.ProviderDuration / time.Duration(providerCalls)
	}

	return map[string]interface{}{
		"uptime_seconds":               uptime.Seconds(),
		"total_requests":               m.RequestCount,
		"total_errors":                 m.ErrorCount,
		"average_duration_ms":          avgDuration.Milliseconds(),
		"requests_per_second":          requestsPerSecond,
		"error_rate":                   errorRate,
		"route_requests":               copyCounts(m.RouteRequestCounts),
		"status_code_counts":           copyStatusCounts(m.StatusCodeCounts),
		"provider_calls":               providerCalls,
		"provider_failures":            m.ProviderFailures,
		"average_provider_duration_ms": avgProviderDuration.Milliseconds(),
		"completions_by_model":         copyCounts(m.CompletionCounts),
		"tokens_by_model":              copyCounts(m.TokenCounts),
		"calls_by_operation":           copyCounts(m.OperationCounts),
		"start_time":                   m.StartTime.Format(time.RFC3339),
	}
}

// Reset resets all metrics (useful for testing)
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
}

func (m *Metrics) reset() {
	m.RequestCount = 0
	m.RequestDuration = 0
	m.ErrorCount = 0
	m.ProviderFailures = 0
	m.ProviderDuration = 0
	m.RouteRequestCounts = make(map[string]int64)
	m.StatusCodeCounts = make(map[int]int64)
	m.CompletionCounts = make(map[string]int64)
	m.TokenCounts = make(map[string]int64)
	m.OperationCounts = make(map[string]int64)
	m.StartTime = time.Now()
}

func copyCounts(src map[string]int64) map[string]int64 {
	dst := make(map[string]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func copyStatusCounts(src map[int]int64) map[int]int64 {
	dst := make(map[int]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// MetricsMiddleware records every request against m, keyed by chi route pattern
func MetricsMiddleware(m *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.RecordRequest(time.Since(start), status, routePattern(r))
		})
	}
}

// UnmatchedRoute buckets requests that matched no registered route
const UnmatchedRoute = "<unmatched>"

// routePattern keys a request by method and chi route pattern. Paths and
// methods come from the client, so neither is used raw.
func routePattern(r *http.Request) string {
	method := routeMethod(r.Method)
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return method + " " + pattern
		}
	}
	return method + " " + UnmatchedRoute
}

func routeMethod(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodConnect, http.MethodOptions, http.MethodTrace:
		return method
	}
	return "OTHER"
}

// MetricsHandler returns the metrics snapshot as JSON
func MetricsHandler(m *Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := json.Marshal(m.GetStats())
		if err != nil {
			ctx := logger.WithComponent(r.Context(), logger.ComponentNames.Monitoring)
			logger.Error(ctx, "Failed to marshal metrics", err)
			http.Error(w, "failed to generate metrics", http.StatusInternalServerError)
			return
		}

		w.Header().Set(utils.HeaderContentType, utils.ContentTypeJSON)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil {
			logger.Error(logger.WithComponent(r.Context(), logger.ComponentNames.Monitoring), "Failed to write metrics response", err)
		}
	}
}
