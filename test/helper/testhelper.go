// Package helper provides test utilities shared by package tests
package helper

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// RecordedRequest is what the backend saw for one request
type RecordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// Reply is a canned backend response
type Reply struct {
	Status int
	Body   string
	Header http.Header
}

// Backend is an httptest server that records requests and answers per path
type Backend struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	replies  map[string]Reply
	fallback Reply
}

// NewBackend starts a recording backend that answers 200 {} unless told otherwise
func NewBackend(t *testing.T) *Backend {
	t.Helper()

	b := &Backend{
		replies:  map[string]Reply{},
		fallback: Reply{Status: http.StatusOK, Body: "{}"},
	}

	b.Server = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.Close)

	return b
}

// Reply sets the response for method+path
func (b *Backend) Reply(method, path string, reply Reply) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.replies[method+" "+path] = reply
}

// Requests returns a copy of every recorded request
func (b *Backend) Requests() []RecordedRequest {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]RecordedRequest(nil), b.requests...)
}

// LastRequest returns the most recent request, failing the test when none was made
func (b *Backend) LastRequest(t *testing.T) RecordedRequest {
	t.Helper()

	reqs := b.Requests()
	require.NotEmpty(t, reqs, "backend received no requests")

	return reqs[len(reqs)-1]
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	b.mu.Lock()
	b.requests = append(b.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   body,
	})

	reply, ok := b.replies[r.Method+" "+r.URL.Path]
	if !ok {
		reply = b.fallback
	}
	b.mu.Unlock()

	for k, vs := range reply.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}

	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}

	w.WriteHeader(reply.Status)
	_, _ = io.WriteString(w, reply.Body)
}
