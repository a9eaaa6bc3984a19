package ratelimit

import (
	"net/http"
	"strings"
)

// fallbackClientID is used when no forwarding header identifies the
// caller, e.g. direct requests in local development.
const fallbackClientID = "local-dev"

var clientIDHeaders = []string{
	"X-Forwarded-For",
	"X-Real-Ip",
	"Cf-Connecting-Ip",
}

// ClientID derives a stable per-client identifier from request headers.
// For X-Forwarded-For chains only the first hop counts.
func ClientID(r *http.Request) string {
	for _, header := range clientIDHeaders {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}
		if id := strings.TrimSpace(strings.Split(value, ",")[0]); id != "" {
			return id
		}
	}
	return fallbackClientID
}
