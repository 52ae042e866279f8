package interceptor

import (
	"net/http"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/LerianStudio/lib-mealmind-go/constant"
	"github.com/LerianStudio/lib-mealmind-go/session"
)

// BearerToken reads the session token on every request and, when one is
// stored, sends it as "Authorization: Bearer <token>". The header is set on a
// clone, so a token removed later never changes a request already dispatched.
func BearerToken(store session.Store, logger log.Logger) RequestHook {
	return func(req *http.Request) *http.Request {
		token, ok, err := session.Token(store)
		if err != nil {
			logger.Warnf("Could not read session token - error: %s", err.Error())
			return req
		}

		if !ok {
			return req
		}

		cloned := req.Clone(req.Context())
		cloned.Header.Set(cn.HeaderAuthorization, cn.BearerPrefix+token)

		return cloned
	}
}
