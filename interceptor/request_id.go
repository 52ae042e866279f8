package interceptor

import (
	"net/http"

	cn "github.com/LerianStudio/lib-mealmind-go/constant"
	"github.com/google/uuid"
)

// RequestID tags requests that lack one with a random X-Request-Id
func RequestID() RequestHook {
	return func(req *http.Request) *http.Request {
		if req.Header.Get(cn.HeaderRequestID) != "" {
			return req
		}

		cloned := req.Clone(req.Context())
		cloned.Header.Set(cn.HeaderRequestID, uuid.NewString())

		return cloned
	}
}
