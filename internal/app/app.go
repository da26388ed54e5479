package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aashari/go-openai-text-api/internal/config"
	"github.com/aashari/go-openai-text-api/internal/database"
	"github.com/aashari/go-openai-text-api/internal/handlers"
	"github.com/aashari/go-openai-text-api/internal/health"
	"github.com/aashari/go-openai-text-api/internal/llm"
	"github.com/aashari/go-openai-text-api/internal/logger"
	"github.com/aashari/go-openai-text-api/internal/monitoring"
	"github.com/aashari/go-openai-text-api/internal/router"
)

// App centralizes the application's dependencies and configuration
type App struct {
	Config        *config.Config
	Service       *llm.Service
	Metrics       *monitoring.Metrics
	HealthChecker *health.HealthChecker
	Database      *database.Connection
	UsageLogger   *database.UsageLogger
	Handler       http.Handler
	StartTime     time.Time
}

// InitLogging configures the global logger from cfg
func InitLogging(cfg *config.Config) error {
	return logger.Init(logger.Config{
		Level:       logger.ParseLevel(cfg.Logging.Level),
		Format:      cfg.Logging.Format,
		Output:      cfg.Logging.Output,
		TimeFormat:  time.RFC3339,
		ServiceName: cfg.Logging.ServiceName,
		Environment: cfg.Logging.Environment,
		Version:     cfg.Logging.Version,
	})
}

// NewApp creates a new App instance with all dependencies. A missing API key
// or an unreachable database degrades the service instead of failing start-up.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	ctx = logger.WithComponent(ctx, logger.ComponentNames.App)
	initCtx := logger.WithStage(ctx, logger.LogStages.Initialization)

	logger.LogConfiguration(ctx, cfg.Masked())
	if budget := cfg.ProviderBudget(); cfg.WriteTimeoutDuration() < budget {
		logger.Warn(initCtx, "Server write timeout is shorter than the provider retry budget, slow upstream failures may drop connections",
			"write_timeout", cfg.WriteTimeoutDuration().String(),
			"provider_budget", budget.String(),
		)
	}

	app := &App{
		Config:    cfg,
		Metrics:   monitoring.GetMetrics(),
		StartTime: time.Now(),
	}

	provider, err := newProvider(initCtx, cfg)
	if err != nil {
		return nil, err
	}

	recorders := []llm.UsageRecorder{app.Metrics}
	var dbPinger health.Pinger
	if cfg.Database.MongoURI != "" {
		dbConfig := database.NewDatabaseConfig(cfg.Database.MongoURI, cfg.Logging.Environment, cfg.Logging.ServiceName)
		conn, err := database.Connect(ctx, dbConfig)
		if err != nil {
			logger.Error(initCtx, "Usage audit log disabled, MongoDB unavailable", err)
			dbPinger = unavailableDatabase{err: err}
		} else {
			app.Database = conn
			app.UsageLogger = database.NewUsageLogger(database.NewUsageRepository(conn), cfg.Logging.Environment, cfg.Logging.Version)
			recorders = append(recorders, app.UsageLogger)
			dbPinger = conn
		}
	}

	app.Service = llm.NewService(provider, cfg.GenerationDefaults(), recorders...)

	app.HealthChecker = health.CreateStandardHealthChecks(health.StandardCheckOptions{
		Version:   cfg.Logging.Version,
		StartTime: app.StartTime,
		Provider:  app.Service,
		Database:  dbPinger,
	})

	app.Handler = router.SetupRoutes(router.Dependencies{
		APIHandlers:   handlers.NewAPIHandlers(app.Service),
		HealthChecker: app.HealthChecker,
		Metrics:       app.Metrics,
	})

	logger.Info(initCtx, "Application initialized",
		"client_ready", app.Service.Ready(),
		"usage_log_enabled", app.UsageLogger != nil,
		"health_checks", app.HealthChecker.CheckNames(),
	)
	return app, nil
}

// newProvider returns nil without an API key so the service reports
// ErrClientNotReady instead of failing start-up
func newProvider(ctx context.Context, cfg *config.Config) (llm.Provider, error) {
	provider, err := llm.NewOpenAIProvider(cfg.ClientOptions())
	if stderrors.Is(err, llm.ErrMissingAPIKey) {
		logger.Warn(ctx, "OPENAI_API_KEY is not set, generation requests will fail until it is configured")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}
	return provider, nil
}

// Server builds the HTTP server for the configured address
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:         a.Config.Address(),
		Handler:      a.Handler,
		ReadTimeout:  a.Config.Server.ReadTimeoutDuration(),
		WriteTimeout: a.Config.WriteTimeoutDuration(),
		IdleTimeout:  a.Config.Server.IdleTimeoutDuration(),
	}
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (a *App) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	ctx = logger.WithComponent(ctx, logger.ComponentNames.App)
	srv := a.Server()

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "Server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info(logger.WithStage(shutdownCtx, logger.LogStages.Shutdown), "Shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "Server shutdown failed", err)
	}
	return a.Close(shutdownCtx)
}

// Close flushes pending usage records and disconnects the database
func (a *App) Close(ctx context.Context) error {
	ctx = logger.WithStage(logger.WithComponent(ctx, logger.ComponentNames.App), logger.LogStages.Shutdown)

	if a.UsageLogger != nil {
		if err := a.UsageLogger.Wait(ctx); err != nil {
			logger.Warn(ctx, "Pending usage records were not flushed", "error_message", err.Error())
		}
	}
	if a.Database != nil {
		if err := a.Database.Disconnect(ctx); err != nil {
			return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
		}
	}
	return nil
}

// unavailableDatabase reports the start-up connection failure to health checks
type unavailableDatabase struct {
	err error
}

func (d unavailableDatabase) Ping(context.Context) error {
	return d.err
}
