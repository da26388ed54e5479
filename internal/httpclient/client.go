package httpclient

import (
	"net/http"
	"time"
)

// Options holds HTTP client configuration options
type Options struct {
	Timeout             time.Duration
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
}

// DefaultOptions are tuned for a single upstream API host
var DefaultOptions = Options{
	MaxIdleConns:        100,
	MaxIdleConnsPerHost: 20,
	IdleConnTimeout:     90 * time.Second,
}

// New creates an HTTP client with a pooled transport. Zero fields fall back
// to DefaultOptions; a zero Timeout leaves per-request deadlines to the caller.
func New(options Options) *http.Client {
	if options.MaxIdleConns == 0 {
		options.MaxIdleConns = DefaultOptions.MaxIdleConns
	}
	if options.MaxIdleConnsPerHost == 0 {
		options.MaxIdleConnsPerHost = DefaultOptions.MaxIdleConnsPerHost
	}
	if options.IdleConnTimeout == 0 {
		options.IdleConnTimeout = DefaultOptions.IdleConnTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConns = options.MaxIdleConns
	transport.MaxIdleConnsPerHost = options.MaxIdleConnsPerHost
	transport.IdleConnTimeout = options.IdleConnTimeout

	return &http.Client{
		Timeout:   options.Timeout,
		Transport: transport,
	}
}
