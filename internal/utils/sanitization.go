package utils

import (
	"net/http"
	"net/url"
	"strings"
)

var sensitiveHeaders = map[string]bool{
	strings.ToLower(HeaderAuthorization): true,
	strings.ToLower(HeaderCookie):        true,
	strings.ToLower(HeaderAPIKey):        true,
}

// MaskAPIKey keeps the key prefix and the last four characters.
func MaskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return MaskedValue
	}
	return key[:3] + "..." + key[len(key)-4:]
}

// MaskURICredentials replaces the userinfo part of a connection URI.
func MaskURICredentials(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.User == nil {
		return uri
	}
	parsed.User = nil
	return strings.Replace(parsed.String(), "://", "://***:***@", 1)
}

// SanitizeHeaders flattens headers for logging and masks credentials.
func SanitizeHeaders(headers http.Header) map[string]string {
	sanitized := make(map[string]string, len(headers))
	for key, values := range headers {
		if len(values) == 0 {
			continue
		}
		if sensitiveHeaders[strings.ToLower(key)] {
			sanitized[key] = MaskedValue
			continue
		}
		sanitized[key] = strings.Join(values, ", ")
	}
	return sanitized
}
