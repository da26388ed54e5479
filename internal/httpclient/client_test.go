package httpclient

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesDefaults(t *testing.T) {
	client := New(Options{})

	assert.Zero(t, client.Timeout)
	transport, ok := client.Transport.(*http.Transport)
	require.True(t, ok)
	assert.Equal(t, DefaultOptions.MaxIdleConns, transport.MaxIdleConns)
	assert.Equal(t, DefaultOptions.MaxIdleConnsPerHost, transport.MaxIdleConnsPerHost)
	assert.Equal(t, DefaultOptions.IdleConnTimeout, transport.IdleConnTimeout)
	assert.NotNil(t, transport.Proxy)
}

func TestNewHonoursOptions(t *testing.T) {
	client := New(Options{Timeout: 5 * time.Second, MaxIdleConnsPerHost: 4})

	assert.Equal(t, 5*time.Second, client.Timeout)
	transport := client.Transport.(*http.Transport)
	assert.Equal(t, 4, transport.MaxIdleConnsPerHost)
	assert.NotSame(t, http.DefaultTransport, transport)
}
