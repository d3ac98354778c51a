// ABOUTME: Hardened HTTP client for the bootstrap script download
// ABOUTME: Respects HTTP_PROXY/HTTPS_PROXY; bounds handshake and header waits

package httputil

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// SecureClient returns a client whose overall timeout bounds the whole
// download while handshake and header waits fail fast on a stuck host.
// Proxy support comes from the environment (HTTP_PROXY, HTTPS_PROXY).
func SecureClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
			IdleConnTimeout:       30 * time.Second,
			MaxIdleConns:          2,
			MaxIdleConnsPerHost:   2,
		},
	}
}
