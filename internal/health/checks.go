package health

import (
	"context"
	"time"
)

// ReadinessChecker reports whether the completion provider is configured
type ReadinessChecker interface {
	Ready() bool
}

// Pinger reaches a backing store
type Pinger interface {
	Ping(ctx context.Context) error
}

// StandardCheckOptions lists what the standard checks inspect. A nil
// Database means no store is configured.
type StandardCheckOptions struct {
	Version   string
	StartTime time.Time
	Provider  ReadinessChecker
	Database  Pinger
}

// CreateStandardHealthChecks creates standard health checks for the application
func CreateStandardHealthChecks(opts StandardCheckOptions) *HealthChecker {
	hc := NewHealthChecker()
	hc.RegisterCheck(ApplicationCheck(opts.Version, opts.StartTime))
	hc.RegisterCheck(ProviderCheck(opts.Provider))
	if opts.Database != nil {
		hc.RegisterCheck(DatabaseCheck(opts.Database))
	}
	return hc
}

// ApplicationCheck always reports healthy with version and uptime
func ApplicationCheck(version string, startTime time.Time) *HealthCheck {
	return &HealthCheck{
		Name:        "application",
		Description: "Basic application health",
		Critical:    true,
		Timeout:     2 * time.Second,
		Check: func(ctx context.Context) HealthCheckResult {
			return HealthCheckResult{
				Status:  StatusHealthy,
				Message: "Application is running",
				Details: map[string]interface{}{
					"version":        version,
					"uptime_seconds": int64(time.Since(startTime).Seconds()),
				},
			}
		},
	}
}

// ProviderCheck is degraded while no API key is configured
func ProviderCheck(provider ReadinessChecker) *HealthCheck {
	return &HealthCheck{
		Name:        "provider",
		Description: "OpenAI client configuration",
		Critical:    false,
		Timeout:     2 * time.Second,
		Check: func(ctx context.Context) HealthCheckResult {
			if provider == nil || !provider.Ready() {
				return HealthCheckResult{
					Status:  StatusDegraded,
					Message: "OpenAI client not initialized: OPENAI_API_KEY is not set",
				}
			}
			return HealthCheckResult{
				Status:  StatusHealthy,
				Message: "OpenAI client configured",
			}
		},
	}
}

// DatabaseCheck pings the usage audit store. The store is optional, so
// failures degrade rather than fail the service.
func DatabaseCheck(db Pinger) *HealthCheck {
	return &HealthCheck{
		Name:        "database",
		Description: "MongoDB usage audit store",
		Critical:    false,
		Timeout:     5 * time.Second,
		Check: func(ctx context.Context) HealthCheckResult {
			if err := db.Ping(ctx); err != nil {
				return HealthCheckResult{
					Status:  StatusDegraded,
					Message: "MongoDB is unreachable",
					Error:   err,
				}
			}
			return HealthCheckResult{
				Status:  StatusHealthy,
				Message: "MongoDB is reachable",
			}
		},
	}
}
