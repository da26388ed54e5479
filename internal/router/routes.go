package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/aashari/go-openai-text-api/docs"
	"github.com/aashari/go-openai-text-api/internal/handlers"
	"github.com/aashari/go-openai-text-api/internal/health"
	"github.com/aashari/go-openai-text-api/internal/middleware"
	"github.com/aashari/go-openai-text-api/internal/monitoring"
)

// Dependencies are the components the routes are served from
type Dependencies struct {
	APIHandlers   *handlers.APIHandlers
	HealthChecker *health.HealthChecker
	Metrics       *monitoring.Metrics
}

// SetupRoutes configures all routes for the application
func SetupRoutes(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestCorrelationMiddleware)
	r.Use(middleware.CORSMiddleware)
	r.Use(monitoring.MetricsMiddleware(deps.Metrics))

	r.Route("/openai", func(r chi.Router) {
		r.Post("/generate-text", deps.APIHandlers.GenerateTextHandler)
		r.Post("/chat-completion", deps.APIHandlers.ChatCompletionHandler)
		r.Post("/system-prompt", deps.APIHandlers.SystemPromptHandler)
		r.Post("/continue-conversation", deps.APIHandlers.ContinueConversationHandler)
		r.Get("/models", deps.APIHandlers.ModelsHandler)
		r.Get("/examples", deps.APIHandlers.ExamplesHandler)
	})

	r.Get("/health", health.HealthHandler(deps.HealthChecker))
	r.Get("/metrics", monitoring.MetricsHandler(deps.Metrics))

	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	))

	// pprof
	r.Mount("/debug", chimiddleware.Profiler())

	return r
}
