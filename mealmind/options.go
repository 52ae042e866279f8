package mealmind

import (
	"net/http"
	"net/url"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-mealmind-go/interceptor"
	"github.com/LerianStudio/lib-mealmind-go/internal/api"
	"github.com/LerianStudio/lib-mealmind-go/session"
	"github.com/prometheus/client_golang/prometheus"
)

type options struct {
	httpClient    Doer
	store         session.Store
	logger        log.Logger
	navigator     func(location string)
	registerer    prometheus.Registerer
	requestHooks  []interceptor.RequestHook
	responseHooks []interceptor.ResponseHook
}

// Option configures a Client
type Option func(*options)

// WithHTTPClient sends requests through doer instead of a client built from the config.
// Timeout and cookie settings of the config do not apply to it.
func WithHTTPClient(doer Doer) Option {
	return func(o *options) { o.httpClient = doer }
}

// WithStore sets the session store. The default is an in-memory store.
func WithStore(store session.Store) Option {
	return func(o *options) { o.store = store }
}

// WithLogger sets the logger. The default is the lib-commons zap logger.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithNavigator sets the function called with the login path after a 401.
// The default only logs the redirect.
func WithNavigator(navigate func(location string)) Option {
	return func(o *options) { o.navigator = navigate }
}

// WithMetrics registers request counters on reg. Registering two clients on
// the same registry panics.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithRequestHook appends hooks after the built-in request hooks
func WithRequestHook(hooks ...interceptor.RequestHook) Option {
	return func(o *options) { o.requestHooks = append(o.requestHooks, hooks...) }
}

// WithResponseHook appends hooks after the built-in response hooks
func WithResponseHook(hooks ...interceptor.ResponseHook) Option {
	return func(o *options) { o.responseHooks = append(o.responseHooks, hooks...) }
}

type requestOptions struct {
	header http.Header
	query  url.Values
}

// RequestOption adjusts a single call
type RequestOption func(*requestOptions)

func newRequestOptions(opts []RequestOption) requestOptions {
	ro := requestOptions{header: http.Header{}, query: url.Values{}}
	for _, opt := range opts {
		opt(&ro)
	}

	return ro
}

// WithHeader sets a header on this call only, overriding the default headers
func WithHeader(key, value string) RequestOption {
	return func(ro *requestOptions) { ro.header.Set(key, value) }
}

// WithQuery adds a query parameter to this call
func WithQuery(key, value string) RequestOption {
	return func(ro *requestOptions) { ro.query.Add(key, value) }
}

// Doer executes HTTP requests; *http.Client satisfies it
type Doer = api.Doer
