// Package utils provides common utility functions.
package utils

import (
	"net/http"
	"net/url"
)

// HTTPHelper provides HTTP utility functions.
type HTTPHelper struct {
	userAgent string
}

// NewHTTPHelper creates a new HTTP helper sending the given user agent.
func NewHTTPHelper(userAgent string) *HTTPHelper {
	return &HTTPHelper{userAgent: userAgent}
}

// IsValidURL reports whether raw is an absolute http or https URL.
func (h *HTTPHelper) IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// BuildHeaders creates HTTP headers with defaults.
func (h *HTTPHelper) BuildHeaders(customHeaders map[string]string) http.Header {
	headers := http.Header{}

	// Add default headers
	headers.Set("User-Agent", h.userAgent)
	headers.Set("Accept", "application/json, application/rss+xml, application/atom+xml, application/xml;q=0.9, */*;q=0.8")

	// Add custom headers
	for key, value := range customHeaders {
		headers.Set(key, value)
	}

	return headers
}
