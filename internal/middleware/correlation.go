package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aashari/go-openai-text-api/internal/logger"
	"github.com/aashari/go-openai-text-api/internal/utils"
)

// Header constants
const (
	RequestIDHeader     = utils.HeaderRequestID
	CorrelationIDHeader = utils.HeaderCorrelationID
)

// TrackingIDSources records where each tracking ID came from
type TrackingIDSources struct {
	RequestIDSource     string `json:"request_id_source"`
	CorrelationIDSource string `json:"correlation_id_source"`
}

// RequestCorrelationMiddleware attaches request and correlation IDs to the
// request context, echoes them in the response headers and writes one access
// log line per request.
func RequestCorrelationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID, correlationID, sources := extractTrackingIDs(r)

		w.Header().Set(RequestIDHeader, requestID)
		w.Header().Set(CorrelationIDHeader, correlationID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		ctx = logger.WithCorrelationID(ctx, correlationID)
		ctx = logger.WithComponent(ctx, logger.ComponentNames.Middleware)

		logger.Debug(logger.WithStage(ctx, logger.LogStages.TrackingSetup),
			"Resolved tracking IDs",
			"request_id_source", sources.RequestIDSource,
			"correlation_id_source", sources.CorrelationIDSource,
		)

		ww := chimiddleware.NewWrapResponseWriter(&responseTimeWriter{ResponseWriter: w, start: start}, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		logAccess(ctx, r, status, ww.BytesWritten(), time.Since(start))
	})
}

// extractTrackingIDs prefers client-supplied IDs, then the CloudFlare ray,
// and generates the rest.
func extractTrackingIDs(r *http.Request) (requestID, correlationID string, sources TrackingIDSources) {
	if clientRequestID := strings.TrimSpace(r.Header.Get(utils.HeaderRequestID)); clientRequestID != "" {
		requestID = clientRequestID
		sources.RequestIDSource = "client-x-request-id"
	} else if cfRay := r.Header.Get(utils.HeaderCloudFlareRay); cfRay != "" {
		requestID = cfRay
		sources.RequestIDSource = "cloudflare-ray"
	} else {
		requestID = utils.GenerateRequestID()
		sources.RequestIDSource = "generated"
	}

	if clientCorrelationID := strings.TrimSpace(r.Header.Get(utils.HeaderCorrelationID)); clientCorrelationID != "" {
		correlationID = clientCorrelationID
		sources.CorrelationIDSource = "client-x-correlation-id"
	} else {
		correlationID = requestID
		sources.CorrelationIDSource = "request-id-fallback"
	}

	return requestID, correlationID, sources
}

// logAccess writes the access line. Successful health probes are not logged.
func logAccess(ctx context.Context, r *http.Request, status, bytesWritten int, duration time.Duration) {
	if r.URL.Path == "/health" && status < http.StatusBadRequest {
		return
	}

	request := map[string]interface{}{
		"method":    r.Method,
		"endpoint":  r.URL.Path,
		"client_ip": getClientIP(r),
		"headers":   utils.SanitizeHeaders(r.Header),
	}
	if userAgent := r.Header.Get(utils.HeaderUserAgent); userAgent != "" {
		request["user_agent"] = userAgent
	}
	response := map[string]interface{}{
		"status_code":    status,
		"duration_ms":    duration.Milliseconds(),
		"content_length": bytesWritten,
	}

	if status >= http.StatusInternalServerError {
		logger.Error(logger.WithStage(ctx, logger.LogStages.RequestFailed), "Request failed",
			fmt.Errorf("status code: %d", status),
			"request", request,
			"response", response,
		)
		return
	}

	stage := logger.LogStages.RequestCompleted
	if status >= http.StatusBadRequest {
		stage = logger.LogStages.RequestFailed
	}
	logger.Info(logger.WithStage(ctx, stage), "Request completed",
		"request", request,
		"response", response,
	)
}

// getClientIP prefers proxy headers over the socket address
func getClientIP(r *http.Request) string {
	if forwardedFor := r.Header.Get(utils.HeaderXForwardedFor); forwardedFor != "" {
		return strings.TrimSpace(strings.Split(forwardedFor, ",")[0])
	}
	if realIP := r.Header.Get(utils.HeaderXRealIP); realIP != "" {
		return realIP
	}
	if cfIP := r.Header.Get(utils.HeaderCFConnectingIP); cfIP != "" {
		return cfIP
	}
	return r.RemoteAddr
}

// responseTimeWriter stamps X-Response-Time just before headers go out
type responseTimeWriter struct {
	http.ResponseWriter
	start       time.Time
	wroteHeader bool
}

func (w *responseTimeWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		w.Header().Set(utils.HeaderResponseTime, time.Since(w.start).String())
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *responseTimeWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(data)
}

func (w *responseTimeWriter) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
