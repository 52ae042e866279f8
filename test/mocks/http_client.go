package mocks

import (
	"bytes"
	"errors"
	"io"
	"net/http"
)

// ErrConnectionRefused is returned by ConnectionErrorClient
var ErrConnectionRefused = errors.New("dial tcp 127.0.0.1:5000: connect: connection refused")

// RoundTripFunc lets a function stand in for an http.RoundTripper
type RoundTripFunc func(req *http.Request) (*http.Response, error)

// RoundTrip implements the http.RoundTripper interface
func (f RoundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// NewHTTPClient creates an HTTP client served by fn
func NewHTTPClient(fn RoundTripFunc) *http.Client {
	return &http.Client{Transport: fn}
}

// NewJSONResponse creates a response with the given status and JSON body
func NewJSONResponse(req *http.Request, statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Status:     http.StatusText(statusCode),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Request:    req,
	}
}

// StatusClient returns a client that answers every request with status and body
func StatusClient(status int, body string) *http.Client {
	return NewHTTPClient(func(req *http.Request) (*http.Response, error) {
		return NewJSONResponse(req, status, body), nil
	})
}

// ConnectionErrorClient returns a client whose transport always fails
func ConnectionErrorClient() *http.Client {
	return NewHTTPClient(func(*http.Request) (*http.Response, error) {
		return nil, ErrConnectionRefused
	})
}
