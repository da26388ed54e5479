package utils

// HTTP Header Constants
const (
	HeaderContentType = "Content-Type"
	HeaderUserAgent   = "User-Agent"

	// Request/Response Tracking Headers
	HeaderRequestID     = "X-Request-ID"
	HeaderCorrelationID = "X-Correlation-ID"
	HeaderResponseTime  = "X-Response-Time"

	// Client IP Headers (priority order)
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderXRealIP        = "X-Real-IP"
	HeaderCFConnectingIP = "CF-Connecting-IP"
	HeaderCloudFlareRay  = "cf-ray"

	// CORS Headers
	HeaderAccessControlAllowOrigin   = "Access-Control-Allow-Origin"
	HeaderAccessControlAllowMethods  = "Access-Control-Allow-Methods"
	HeaderAccessControlAllowHeaders  = "Access-Control-Allow-Headers"
	HeaderAccessControlExposeHeaders = "Access-Control-Expose-Headers"

	HeaderAuthorization = "Authorization"
	HeaderCookie        = "Cookie"
	HeaderAPIKey        = "X-API-Key"
)

// Content Type Constants
const (
	ContentTypeJSON = "application/json"
)

// Service Values
const (
	ServiceName = "go-openai-text-api"
)

// CORS Values
const (
	CORSAllowOriginAll   = "*"
	CORSAllowMethodsAll  = "POST, GET, OPTIONS"
	CORSAllowHeadersStd  = "Accept, Content-Type, Content-Length, Accept-Encoding, X-Request-ID, X-Correlation-ID"
	CORSExposeHeadersStd = "X-Request-ID, X-Correlation-ID, X-Response-Time"
)

// Masking placeholder used for secrets in logs and health output
const MaskedValue = "***MASKED***"
