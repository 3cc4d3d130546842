package security

import (
	"crypto/tls"
	"io"
	"net/http"
	"time"
)

// HTTPClientConfig holds configuration for creating the shared HTTP client
// handed to checks via their helpers.
type HTTPClientConfig struct {
	Timeout            time.Duration
	InsecureSkipVerify bool   // Targets under audit frequently present broken or self-signed certificates
	MaxResponseSize    int64  // Maximum response body size in bytes
	MinTLSVersion      uint16 // Minimum TLS version (default: TLS 1.2)
}

// DefaultHTTPClientConfig returns the default configuration. Verification
// is disabled on purpose: the whole point of the tool is to talk to
// endpoints whose TLS setup may be defective.
func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:            5 * time.Second,
		InsecureSkipVerify: true,
		MaxResponseSize:    10 * 1024 * 1024, // 10MB
		MinTLSVersion:      tls.VersionTLS12,
	}
}

// NewHTTPClient creates an HTTP client with conservative timeouts and
// connection limits suitable for probing a single target.
func NewHTTPClient(config HTTPClientConfig) *http.Client {
	return &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: config.InsecureSkipVerify,
				MinVersion:         config.MinTLSVersion,
			},
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
			MaxIdleConns:          10,
			MaxIdleConnsPerHost:   2,
			IdleConnTimeout:       30 * time.Second,
		},
	}
}

// LimitedReadAll reads response body with size limit to prevent DoS
func LimitedReadAll(body io.ReadCloser, maxSize int64) ([]byte, error) {
	defer body.Close()
	limitedReader := io.LimitReader(body, maxSize)
	return io.ReadAll(limitedReader)
}
