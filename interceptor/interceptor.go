// Package interceptor composes the hooks that run around every API call.
//
// Request hooks see the outgoing *http.Request just before it is sent and
// return the request to send (usually a clone carrying extra headers).
// Response hooks see the outcome of the call (a response, an error, or both
// for status >= 400) and return the outcome handed to the next hook and,
// finally, to the caller.
package interceptor

import (
	"net/http"

	"github.com/LerianStudio/lib-mealmind-go/model"
)

// RequestHook runs before a request is sent
type RequestHook func(req *http.Request) *http.Request

// ResponseHook runs after a request completes or fails
type ResponseHook func(req *http.Request, resp *model.Response, err error) (*model.Response, error)

// Chain holds the hooks applied, in order, around every call
type Chain struct {
	Request  []RequestHook
	Response []ResponseHook
}

// Before runs every request hook in order. A hook returning nil keeps the previous request.
func (c Chain) Before(req *http.Request) *http.Request {
	for _, hook := range c.Request {
		if next := hook(req); next != nil {
			req = next
		}
	}

	return req
}

// After runs every response hook in order
func (c Chain) After(req *http.Request, resp *model.Response, err error) (*model.Response, error) {
	for _, hook := range c.Response {
		resp, err = hook(req, resp, err)
	}

	return resp, err
}

// With returns a copy of the chain with extra hooks appended
func (c Chain) With(request []RequestHook, response []ResponseHook) Chain {
	return Chain{
		Request:  append(append([]RequestHook(nil), c.Request...), request...),
		Response: append(append([]ResponseHook(nil), c.Response...), response...),
	}
}
