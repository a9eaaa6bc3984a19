package urlutil

import (
	"net/url"
	"strings"
)

// IsHTTPURL reports whether raw parses as an absolute http or https URL
// with a host. Used to vet client-supplied attachment links.
func IsHTTPURL(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
