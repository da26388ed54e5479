package logger

// LogStages defines standardized stage names for consistent logging
var LogStages = struct {
	// Request lifecycle
	RequestReceived  string
	RequestValidated string
	RequestCompleted string
	RequestFailed    string

	// Completion lifecycle
	Composition      string
	Resolution       string
	ProviderRequest  string
	ProviderResponse string
	ProviderError    string

	// System operations
	Initialization    string
	Configuration     string
	DatabaseOperation string
	Shutdown          string

	// Health check stages
	HealthCheck        string
	HealthCheckFailed  string
	HealthCheckWarning string

	TrackingSetup string
}{
	RequestReceived:  "RequestReceived",
	RequestValidated: "RequestValidated",
	RequestCompleted: "RequestCompleted",
	RequestFailed:    "RequestFailed",

	Composition:      "Composition",
	Resolution:       "Resolution",
	ProviderRequest:  "ProviderRequest",
	ProviderResponse: "ProviderResponse",
	ProviderError:    "ProviderError",

	Initialization:    "Initialization",
	Configuration:     "Configuration",
	DatabaseOperation: "DatabaseOperation",
	Shutdown:          "Shutdown",

	HealthCheck:        "HealthCheck",
	HealthCheckFailed:  "HealthCheckFailed",
	HealthCheckWarning: "HealthCheckWarning",

	TrackingSetup: "TrackingSetup",
}

// ComponentNames defines standardized component names
var ComponentNames = struct {
	App          string
	Router       string
	Middleware   string
	Handler      string
	Service      string
	OpenAIClient string
	Config       string
	Database     string
	Monitoring   string
	Health       string
	ErrorHandler string
}{
	App:          "App",
	Router:       "Router",
	Middleware:   "Middleware",
	Handler:      "Handler",
	Service:      "llm.Service",
	OpenAIClient: "OpenAIClient",
	Config:       "Config",
	Database:     "Database",
	Monitoring:   "Monitoring",
	Health:       "Health",
	ErrorHandler: "ErrorHandler",
}
