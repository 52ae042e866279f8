package interceptor

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	cn "github.com/LerianStudio/lib-mealmind-go/constant"
	libErr "github.com/LerianStudio/lib-mealmind-go/error"
	"github.com/LerianStudio/lib-mealmind-go/model"
	"github.com/LerianStudio/lib-mealmind-go/session"
	"github.com/LerianStudio/lib-mealmind-go/test/helper/testlogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type navRecorder struct{ locations []string }

func (n *navRecorder) navigate(location string) { n.locations = append(n.locations, location) }

func failed(req *http.Request, status int, body string) (*model.Response, error) {
	resp := &model.Response{StatusCode: status, Header: http.Header{}, Body: []byte(body)}
	return resp, libErr.NewAPIError(req.Method, req.URL.String(), status, resp.Header, resp.Body)
}

func TestUnauthorized_401ClearsSessionAndNavigatesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := session.NewMockStore(ctrl)
	store.EXPECT().Remove(cn.SessionTokenKey, cn.SessionUserKey).Return(nil).Times(1)

	nav := &navRecorder{}
	logger := testlogger.New()

	req := newRequest(t, http.MethodGet, "http://mealmind.test/api/profile/get")
	req.Header.Set("Authorization", "Bearer secret-token")

	resp, err := failed(req, http.StatusUnauthorized, `{"msg":"Token has expired"}`)
	gotResp, gotErr := Unauthorized(store, nav.navigate, "/login", logger)(req, resp, err)

	assert.Same(t, resp, gotResp)
	assert.Same(t, err, gotErr)
	assert.Equal(t, []string{"/login"}, nav.locations)
	assert.True(t, logger.Contains("WARN", "API error", "/api/profile/get", "status: 401", "Token has expired"))
	assert.False(t, logger.Contains("WARN", "secret-token"))
}

func TestUnauthorized_LoginFailureAlsoLogsOut(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, session.SaveLogin(store, "old", `{"id":1}`))

	nav := &navRecorder{}
	req := newRequest(t, http.MethodPost, "http://mealmind.test/api/auth/login")

	resp, err := failed(req, http.StatusUnauthorized, `{"error":"Invalid credentials"}`)
	_, gotErr := Unauthorized(store, nav.navigate, "/login", testlogger.New())(req, resp, err)

	assert.True(t, libErr.IsUnauthorized(gotErr))
	assert.Equal(t, []string{"/login"}, nav.locations)

	_, ok, _ := session.Token(store)
	assert.False(t, ok)
}

func TestUnauthorized_OtherErrorsLeaveSessionAlone(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError} {
		t.Run(fmt.Sprint(status), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := session.NewMockStore(ctrl) // any store call fails the test

			nav := &navRecorder{}
			logger := testlogger.New()
			req := newRequest(t, http.MethodPut, "http://mealmind.test/api/profile/update")

			resp, err := failed(req, status, `{"error":"nope"}`)
			_, gotErr := Unauthorized(store, nav.navigate, "/login", logger)(req, resp, err)

			assert.Same(t, err, gotErr)
			assert.Empty(t, nav.locations)
			assert.Equal(t, 1, logger.Count("WARN"))
		})
	}
}

func TestUnauthorized_SuccessIsUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := session.NewMockStore(ctrl)

	nav := &navRecorder{}
	logger := testlogger.New()
	req := newRequest(t, http.MethodGet, "http://mealmind.test/api/recommendations/today")
	resp := &model.Response{StatusCode: http.StatusOK, Body: []byte(`{"meals":[]}`)}

	gotResp, err := Unauthorized(store, nav.navigate, "/login", logger)(req, resp, nil)

	require.NoError(t, err)
	assert.Same(t, resp, gotResp)
	assert.Empty(t, nav.locations)
	assert.Empty(t, logger.Entries())
}

func TestUnauthorized_TransportErrorLogged(t *testing.T) {
	nav := &navRecorder{}
	logger := testlogger.New()
	req := newRequest(t, http.MethodGet, "http://mealmind.test/api/cors-test")
	transportErr := errors.New("request failed: dial tcp: connection refused")

	resp, err := Unauthorized(session.NewMemoryStore(), nav.navigate, "/login", logger)(req, nil, transportErr)

	assert.Nil(t, resp)
	assert.Same(t, transportErr, err)
	assert.Empty(t, nav.locations)
	assert.True(t, logger.Contains("WARN", "status: 0"))
}

func TestUnauthorized_ClearFailureStillNavigates(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := session.NewMockStore(ctrl)
	store.EXPECT().Remove(cn.SessionTokenKey, cn.SessionUserKey).Return(errors.New("read-only"))

	nav := &navRecorder{}
	logger := testlogger.New()
	req := newRequest(t, http.MethodGet, "http://mealmind.test/api/auth/me")

	resp, err := failed(req, http.StatusUnauthorized, "{}")
	_, _ = Unauthorized(store, nav.navigate, "/signin", logger)(req, resp, err)

	assert.Equal(t, []string{"/signin"}, nav.locations)
	assert.True(t, logger.Contains("ERROR", "Failed to clear session", "read-only"))
}

func TestFormatHeaders_RedactsBearer(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Authorization", "Bearer top-secret")

	got := FormatHeaders(h)

	assert.Contains(t, got, "Content-Type: application/json")
	assert.Contains(t, got, "Authorization: Bearer sha256:")
	assert.NotContains(t, got, "top-secret")
	assert.Equal(t, FormatHeaders(h), got, "output is deterministic")
}
