package interceptor

import (
	"errors"
	"net/http"
	"testing"

	cn "github.com/LerianStudio/lib-mealmind-go/constant"
	"github.com/LerianStudio/lib-mealmind-go/session"
	"github.com/LerianStudio/lib-mealmind-go/test/helper/testlogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRequest(t *testing.T, method, url string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)

	return req
}

func TestBearerToken_AttachesStoredToken(t *testing.T) {
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(cn.SessionTokenKey, "abc.def.ghi"))

	req := newRequest(t, http.MethodGet, "http://mealmind.test/api/auth/me")
	out := BearerToken(store, testlogger.New())(req)

	assert.Equal(t, "Bearer abc.def.ghi", out.Header.Get("Authorization"))
	assert.Empty(t, req.Header.Get("Authorization"), "original request must stay untouched")
}

func TestBearerToken_NoTokenNoHeader(t *testing.T) {
	req := newRequest(t, http.MethodGet, "http://mealmind.test/api/auth/me")
	out := BearerToken(session.NewMemoryStore(), testlogger.New())(req)

	assert.Same(t, req, out)
	assert.Empty(t, out.Header.Get("Authorization"))
}

func TestBearerToken_ReadsTokenOnEveryRequest(t *testing.T) {
	store := session.NewMemoryStore()
	hook := BearerToken(store, testlogger.New())

	first := hook(newRequest(t, http.MethodGet, "http://mealmind.test/api/profile/get"))
	assert.Empty(t, first.Header.Get("Authorization"))

	require.NoError(t, session.SaveLogin(store, "later", ""))
	second := hook(newRequest(t, http.MethodGet, "http://mealmind.test/api/profile/get"))
	assert.Equal(t, "Bearer later", second.Header.Get("Authorization"))

	require.NoError(t, session.Clear(store))
	third := hook(newRequest(t, http.MethodGet, "http://mealmind.test/api/profile/get"))
	assert.Empty(t, third.Header.Get("Authorization"))
	assert.Equal(t, "Bearer later", second.Header.Get("Authorization"), "dispatched request keeps its snapshot")
}

func TestBearerToken_StoreErrorPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := session.NewMockStore(ctrl)
	store.EXPECT().Get(cn.SessionTokenKey).Return("", false, errors.New("permission denied"))

	logger := testlogger.New()
	req := newRequest(t, http.MethodGet, "http://mealmind.test/api/auth/me")

	out := BearerToken(store, logger)(req)

	assert.Same(t, req, out)
	assert.True(t, logger.Contains("WARN", "Could not read session token", "permission denied"))
}

func TestRequestID(t *testing.T) {
	hook := RequestID()

	out := hook(newRequest(t, http.MethodGet, "http://mealmind.test/api/cors-test"))
	assert.Len(t, out.Header.Get(cn.HeaderRequestID), 36)

	req := newRequest(t, http.MethodGet, "http://mealmind.test/api/cors-test")
	req.Header.Set(cn.HeaderRequestID, "fixed")
	assert.Equal(t, "fixed", hook(req).Header.Get(cn.HeaderRequestID))
}
