package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/aashari/go-openai-text-api/internal/errors"
	"github.com/aashari/go-openai-text-api/internal/logger"
	"github.com/aashari/go-openai-text-api/internal/utils"
)

// HealthStatus represents the health status of a component
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusUnhealthy HealthStatus = "unhealthy"
	StatusDegraded  HealthStatus = "degraded"
	StatusUnknown   HealthStatus = "unknown"
)

// HealthCheck represents a single health check
type HealthCheck struct {
	Name        string
	Description string
	Check       func(ctx context.Context) HealthCheckResult
	Timeout     time.Duration
	Critical    bool // If true, failure affects overall system health
}

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status    HealthStatus           `json:"status"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Duration  time.Duration          `json:"-"`
	Error     error                  `json:"-"`
}

// MarshalJSON reports the duration in milliseconds and the error as text
func (r HealthCheckResult) MarshalJSON() ([]byte, error) {
	type alias HealthCheckResult
	out := struct {
		alias
		DurationMs int64  `json:"duration_ms"`
		Error      string `json:"error,omitempty"`
	}{alias: alias(r), DurationMs: r.Duration.Milliseconds()}
	if r.Error != nil {
		out.Error = r.Error.Error()
	}
	return json.Marshal(out)
}

// HealthResponse is the body written by HealthHandler
type HealthResponse struct {
	Status    HealthStatus                 `json:"status"`
	Timestamp string                       `json:"timestamp"`
	Checks    map[string]HealthCheckResult `json:"checks"`
}

// HealthChecker manages and executes health checks
type HealthChecker struct {
	checks map[string]*HealthCheck
	mutex  sync.RWMutex
}

// NewHealthChecker creates a new health checker
func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		checks: make(map[string]*HealthCheck),
	}
}

// RegisterCheck registers a new health check
func (hc *HealthChecker) RegisterCheck(check *HealthCheck) {
	hc.mutex.Lock()
	defer hc.mutex.Unlock()

	if check.Timeout == 0 {
		check.Timeout = 5 * time.Second
	}

	hc.checks[check.Name] = check

	logger.Debug(logger.WithComponent(context.Background(), logger.ComponentNames.Health), "Health check registered",
		"name", check.Name,
		"description", check.Description,
		"critical", check.Critical,
		"timeout", check.Timeout)
}

// CheckNames returns the registered check names in order
func (hc *HealthChecker) CheckNames() []string {
	hc.mutex.RLock()
	defer hc.mutex.RUnlock()

	names := make([]string, 0, len(hc.checks))
	for name := range hc.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExecuteCheck executes a single health check
func (hc *HealthChecker) ExecuteCheck(ctx context.Context, name string) (*HealthCheckResult, error) {
	hc.mutex.RLock()
	check, exists := hc.checks[name]
	hc.mutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("health check %s not found", name)
	}

	return hc.executeCheck(ctx, check), nil
}

// ExecuteAllChecks executes all registered health checks concurrently
func (hc *HealthChecker) ExecuteAllChecks(ctx context.Context) map[string]HealthCheckResult {
	hc.mutex.RLock()
	checks := make(map[string]*HealthCheck, len(hc.checks))
	for name, check := range hc.checks {
		checks[name] = check
	}
	hc.mutex.RUnlock()

	results := make(map[string]HealthCheckResult, len(checks))
	var wg sync.WaitGroup
	var resultMutex sync.Mutex

	for name, check := range checks {
		wg.Add(1)
		go func(name string, check *HealthCheck) {
			defer wg.Done()

			result := hc.executeCheck(ctx, check)

			resultMutex.Lock()
			results[name] = *result
			resultMutex.Unlock()
		}(name, check)
	}

	wg.Wait()
	return results
}

// executeCheck runs check with its timeout. A check that outlives the
// timeout is reported unhealthy.
func (hc *HealthChecker) executeCheck(ctx context.Context, check *HealthCheck) *HealthCheckResult {
	checkCtx, cancel := context.WithTimeout(ctx, check.Timeout)
	defer cancel()

	start := time.Now()
	done := make(chan HealthCheckResult, 1)
	go func() {
		done <- check.Check(checkCtx)
	}()

	var result HealthCheckResult
	select {
	case result = <-done:
	case <-checkCtx.Done():
		result = HealthCheckResult{
			Status:  StatusUnhealthy,
			Message: fmt.Sprintf("Health check timed out after %s", check.Timeout),
			Error:   checkCtx.Err(),
		}
	}
	result.Timestamp = start.UTC()
	result.Duration = time.Since(start)

	logger.Debug(logger.WithStage(ctx, logger.LogStages.HealthCheck), "Health check executed",
		"name", check.Name,
		"status", result.Status,
		"duration_ms", result.Duration.Milliseconds(),
		"message", result.Message)

	return &result
}

// GetOverallHealth determines the overall system health
func (hc *HealthChecker) GetOverallHealth(ctx context.Context) (HealthStatus, map[string]HealthCheckResult) {
	results := hc.ExecuteAllChecks(ctx)

	overallStatus := StatusHealthy
	criticalFailures := 0
	totalFailures := 0

	hc.mutex.RLock()
	defer hc.mutex.RUnlock()

	for name, result := range results {
		check := hc.checks[name]

		if result.Status == StatusUnhealthy {
			totalFailures++
			if check != nil && check.Critical {
				criticalFailures++
			}
		} else if result.Status == StatusDegraded {
			overallStatus = StatusDegraded
		}
	}

	if criticalFailures > 0 {
		overallStatus = StatusUnhealthy
	} else if totalFailures > 0 {
		overallStatus = StatusDegraded
	}

	return overallStatus, results
}

// HTTPStatus maps a health status to the response code: only unhealthy
// yields 503, degraded services still answer 200.
func HTTPStatus(status HealthStatus) int {
	if status == StatusUnhealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

// HealthHandler creates an HTTP handler for health checks. The optional
// "check" query parameter runs a single named check.
func HealthHandler(hc *HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithComponent(r.Context(), logger.ComponentNames.Health)

		if checkName := r.URL.Query().Get("check"); checkName != "" {
			result, err := hc.ExecuteCheck(ctx, checkName)
			if err != nil {
				errors.WriteError(ctx, w, errors.NewNotFoundError(err.Error()))
				return
			}
			writeJSONResponse(ctx, w, HTTPStatus(result.Status), result)
			return
		}

		overallStatus, results := hc.GetOverallHealth(ctx)
		response := HealthResponse{
			Status:    overallStatus,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Checks:    results,
		}

		// Only log when something is off to keep health probes quiet
		switch overallStatus {
		case StatusUnhealthy:
			logger.Warn(logger.WithStage(ctx, logger.LogStages.HealthCheckFailed), "Health check unhealthy",
				"overall_status", overallStatus,
				"checks", summarize(results))
		case StatusDegraded:
			logger.Warn(logger.WithStage(ctx, logger.LogStages.HealthCheckWarning), "Health check degraded",
				"overall_status", overallStatus,
				"checks", summarize(results))
		}

		writeJSONResponse(ctx, w, HTTPStatus(overallStatus), response)
	}
}

func summarize(results map[string]HealthCheckResult) map[string]HealthStatus {
	summary := make(map[string]HealthStatus, len(results))
	for name, result := range results {
		summary[name] = result.Status
	}
	return summary
}

// writeJSONResponse writes a JSON response
func writeJSONResponse(ctx context.Context, w http.ResponseWriter, statusCode int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		logger.Error(ctx, "Failed to marshal health response", err)
		errors.HandleError(ctx, w, errors.NewInternalError("failed to generate health response"), http.StatusInternalServerError)
		return
	}

	w.Header().Set(utils.HeaderContentType, utils.ContentTypeJSON)
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		logger.Error(ctx, "Failed to write health response", err)
	}
}
