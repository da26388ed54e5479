package database

import (
	"strings"

	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/aashari/go-openai-text-api/internal/utils"
)

// DatabaseConfig holds MongoDB connection configuration
type DatabaseConfig struct {
	URI          string
	Environment  string
	DatabaseName string
	AppName      string
}

// environmentPrefixes maps environment aliases to the canonical environment
// and the database name prefix. Unlisted environments share the dev database.
var environmentPrefixes = map[string][2]string{
	"production":  {"production", "prod"},
	"prod":        {"production", "prod"},
	"local":       {"local", "loc"},
	"test":        {"test", "test"},
	"development": {"development", "dev"},
}

// NewDatabaseConfig names the database {env-prefix}-{service}, with any
// leading "go-" dropped from the service name
func NewDatabaseConfig(uri, environment, serviceName string) *DatabaseConfig {
	if serviceName == "" {
		serviceName = utils.ServiceName
	}

	env, ok := environmentPrefixes[strings.ToLower(environment)]
	if !ok {
		env = environmentPrefixes["development"]
	}

	name := strings.TrimPrefix(strings.ReplaceAll(serviceName, "_", "-"), "go-")

	return &DatabaseConfig{
		URI:          uri,
		Environment:  env[0],
		DatabaseName: env[1] + "-" + name,
		AppName:      serviceName,
	}
}

// GetConnectionString returns the URI with the database path filled in.
// A URI that already names a database is returned unchanged.
func (c *DatabaseConfig) GetConnectionString() string {
	if cs, err := connstring.Parse(c.URI); err == nil && cs.Database != "" {
		return c.URI
	}

	base, query, hasQuery := strings.Cut(c.URI, "?")
	connection := strings.TrimSuffix(base, "/") + "/" + c.DatabaseName
	if hasQuery {
		connection += "?" + query
	}
	return connection
}

// MaskSensitiveData returns a copy of the config with sensitive data masked for logging
func (c *DatabaseConfig) MaskSensitiveData() *DatabaseConfig {
	masked := *c
	masked.URI = utils.MaskURICredentials(c.URI)
	return &masked
}
