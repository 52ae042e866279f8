package model

import (
	"encoding/json"
	"net/http"
)

// Response is a completed HTTP exchange as received from the backend.
// Body holds the raw bytes; nothing is added, removed or renamed.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// ErrorResponse is the error envelope returned by the backend and the dev proxy.
// JWT failures from the backend only carry Msg.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Msg     string `json:"msg,omitempty"`
}

// Describe returns the most specific message the envelope carries
func (e ErrorResponse) Describe() string {
	for _, s := range []string{e.Message, e.Error, e.Msg, e.Title} {
		if s != "" {
			return s
		}
	}

	return ""
}
