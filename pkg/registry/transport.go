package registry

import (
	"crypto/tls"
	"net/http"
	"strings"
	"time"
)

// Getter fetches a remote registry document. *http.Client satisfies it.
type Getter interface {
	Get(url string) (*http.Response, error)
}

// NewHTTPClient returns the client used for remote registry imports:
// bounded timeout, TLS 1.2 minimum.
func NewHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
	}
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "https://")
}

func isInsecureRemote(source string) bool {
	return strings.HasPrefix(source, "http://")
}
