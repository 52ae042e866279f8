package error

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// APIError is returned for every response with status >= 400. It carries the
// response exactly as received so callers can inspect status, headers and body.
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Header     http.Header
	Body       []byte
	Msg        string
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}

	return fmt.Sprintf("%s %s: status %d", e.Method, e.URL, e.StatusCode)
}

// NewAPIError builds an APIError with the client/server classification used in messages.
func NewAPIError(method, url string, statusCode int, header http.Header, body []byte) *APIError {
	kind := "unexpected error"

	switch {
	case statusCode >= 500 && statusCode < 600:
		kind = "server error"
	case statusCode >= 400 && statusCode < 500:
		kind = "client error"
	}

	return &APIError{
		StatusCode: statusCode,
		Method:     method,
		URL:        url,
		Header:     header,
		Body:       body,
		Msg:        fmt.Sprintf("%s: %d", kind, statusCode),
	}
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsServerError checks if an error is related to a server error (5xx)
func IsServerError(err error) bool {
	code := StatusCode(err)

	return code >= 500 && code < 600
}

// IsConnectionError checks if an error is likely related to network connectivity
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return false
	}

	errStr := strings.ToLower(err.Error())

	connectionErrors := []string{
		"connection refused",
		"no such host",
		"host unreachable",
		"i/o timeout",
		"no route to host",
		"network is unreachable",
		"operation timed out",
		"eof",
		"connection reset by peer",
		"dial tcp",
		"tls handshake",
		"context deadline exceeded",
	}

	for _, msg := range connectionErrors {
		if strings.Contains(errStr, msg) {
			return true
		}
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}
