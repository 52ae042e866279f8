package interceptor

import (
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/LerianStudio/lib-commons/commons"
	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/LerianStudio/lib-mealmind-go/constant"
	libErr "github.com/LerianStudio/lib-mealmind-go/error"
	"github.com/LerianStudio/lib-mealmind-go/model"
	"github.com/LerianStudio/lib-mealmind-go/session"
)

// Navigator sends the user to location
type Navigator func(location string)

// Unauthorized logs every failed call and, on a 401, ends the session: it
// removes the token and the user from store and navigates to loginPath.
// The outcome is always returned unchanged, so callers still see the error.
//
// A 401 from the login endpoint itself (bad credentials) takes the same path.
func Unauthorized(store session.Store, navigate Navigator, loginPath string, logger log.Logger) ResponseHook {
	return func(req *http.Request, resp *model.Response, err error) (*model.Response, error) {
		if err == nil {
			return resp, nil
		}

		status := libErr.StatusCode(err)

		var body string
		if resp != nil {
			body = string(resp.Body)
		}

		logger.Warnf("API error - url: %s, status: %d, data: %s, headers: %s",
			req.URL.String(), status, body, FormatHeaders(req.Header))

		if status == http.StatusUnauthorized {
			if clearErr := session.Clear(store); clearErr != nil {
				logger.Errorf("Failed to clear session after 401 - error: %s", clearErr.Error())
			}

			navigate(loginPath)
		}

		return resp, err
	}
}

// FormatHeaders renders headers as sorted "Key: value" pairs. The bearer token
// is replaced by a prefix of its SHA-256 so logs never carry the credential.
func FormatHeaders(h http.Header) string {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))

	for _, k := range keys {
		value := strings.Join(h.Values(k), ",")
		if http.CanonicalHeaderKey(k) == cn.HeaderAuthorization {
			value = redact(value)
		}

		parts = append(parts, fmt.Sprintf("%s: %s", k, value))
	}

	return "{" + strings.Join(parts, "; ") + "}"
}

func redact(authorization string) string {
	token := strings.TrimPrefix(authorization, cn.BearerPrefix)

	sum := commons.HashSHA256(token)
	if len(sum) > cn.RedactedHashLength {
		sum = sum[:cn.RedactedHashLength]
	}

	return cn.BearerPrefix + "sha256:" + sum
}
