package utils

import (
	"os"
	"strings"
)

// GetEnvString returns the variable's value, or defaultValue when unset or empty
func GetEnvString(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// IsProduction reports whether ENVIRONMENT (or ENV) names production
func IsProduction() bool {
	switch strings.ToLower(GetEnvString("ENVIRONMENT", GetEnvString("ENV", "development"))) {
	case "production", "prod":
		return true
	}
	return false
}

// GetLogLevel returns LOG_LEVEL when it names a known level. Unknown values
// fall back to info in production and debug elsewhere.
func GetLogLevel() string {
	level := strings.ToLower(GetEnvString("LOG_LEVEL", "info"))
	switch level {
	case "debug", "info", "warn", "warning", "error":
		return level
	}
	if IsProduction() {
		return "info"
	}
	return "debug"
}
