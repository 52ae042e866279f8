// Package mealmind is the client for the MealMind REST API.
//
// A Client wraps one preconfigured HTTP client. Every call goes through the
// same hook chain: request hooks attach a request id and the session's bearer
// token, response hooks log failures and end the session on a 401. Endpoints
// are grouped in the Auth, Profile and Recommendations namespaces; each issues
// exactly one request and returns the response as received.
package mealmind

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"

	"github.com/LerianStudio/lib-commons/commons/log"
	"github.com/LerianStudio/lib-commons/commons/zap"
	"github.com/LerianStudio/lib-mealmind-go/interceptor"
	"github.com/LerianStudio/lib-mealmind-go/internal/api"
	"github.com/LerianStudio/lib-mealmind-go/internal/config"
	"github.com/LerianStudio/lib-mealmind-go/internal/redirect"
	"github.com/LerianStudio/lib-mealmind-go/model"
	"github.com/LerianStudio/lib-mealmind-go/session"
	"golang.org/x/net/publicsuffix"
)

// ClientConfig holds the base URL, login path, timeout, credential flag and
// default headers of a Client
type ClientConfig = config.ClientConfig

// NewDefaultConfig returns the configuration every client starts from
func NewDefaultConfig() ClientConfig {
	return config.NewDefaultConfig()
}

// ConfigFromModel resolves environment configuration into a validated ClientConfig
func ConfigFromModel(cfg model.Config) (ClientConfig, error) {
	c, err := config.FromModel(cfg)
	if err != nil {
		return ClientConfig{}, err
	}

	return *c, nil
}

// Client is the MealMind API client. It is safe for concurrent use.
type Client struct {
	config   ClientConfig
	api      *api.Client
	store    session.Store
	redirect *redirect.Manager
	chain    interceptor.Chain
	logger   log.Logger

	Auth            *AuthAPI
	Profile         *ProfileAPI
	Recommendations *RecommendationsAPI
}

// New creates a client from cfg. The configuration is copied, so later changes
// to cfg do not affect the client.
func New(cfg ClientConfig, opts ...Option) (*Client, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	l := o.logger
	if l == nil {
		l = zap.InitializeLogger()
	}

	if err := cfg.Validate(); err != nil {
		l.Errorf("Invalid configuration: %s", err.Error())
		return nil, err
	}

	cfg = cfg.Clone()

	httpClient := o.httpClient
	if httpClient == nil {
		hc, err := newHTTPClient(cfg)
		if err != nil {
			l.Errorf("Failed to create HTTP client: %s", err.Error())
			return nil, err
		}

		httpClient = hc
	}

	store := o.store
	if store == nil {
		store = session.NewMemoryStore()
	}

	redirectManager := redirect.New(l)
	redirectManager.SetHandler(o.navigator)

	responseHooks := make([]interceptor.ResponseHook, 0, 2)
	if o.registerer != nil {
		responseHooks = append(responseHooks, interceptor.NewMetrics(o.registerer).Hook())
	}

	responseHooks = append(responseHooks, interceptor.Unauthorized(store, redirectManager.Navigate, cfg.LoginPath, l))

	chain := interceptor.Chain{
		Request:  []interceptor.RequestHook{interceptor.RequestID(), interceptor.BearerToken(store, l)},
		Response: responseHooks,
	}.With(o.requestHooks, o.responseHooks)

	c := &Client{
		config:   cfg,
		api:      api.New(httpClient, l),
		store:    store,
		redirect: redirectManager,
		chain:    chain,
		logger:   l,
	}

	c.Auth = &AuthAPI{client: c}
	c.Profile = &ProfileAPI{client: c}
	c.Recommendations = &RecommendationsAPI{client: c}

	return c, nil
}

func newHTTPClient(cfg ClientConfig) (*http.Client, error) {
	hc := &http.Client{Timeout: cfg.HTTPTimeout}

	if cfg.WithCredentials {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("failed to create cookie jar: %w", err)
		}

		hc.Jar = jar
	}

	return hc, nil
}

// Config returns a copy of the client configuration
func (c *Client) Config() ClientConfig {
	return c.config.Clone()
}

// Store returns the session store the client reads the token from
func (c *Client) Store() session.Store {
	return c.store
}

// GetLogger returns the logger used by the client
func (c *Client) GetLogger() log.Logger {
	return c.logger
}

// SetNavigator replaces the handler called with the login path after a 401
func (c *Client) SetNavigator(navigate func(location string)) {
	c.redirect.SetHandler(navigate)
}

// Do sends one request through the hook chain. A non-nil body is sent as JSON.
// Responses with status >= 400 are returned together with a *error.APIError.
func (c *Client) Do(ctx context.Context, method, path string, body any, opts ...RequestOption) (*model.Response, error) {
	ro := newRequestOptions(opts)

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for k, vs := range c.config.DefaultHeaders {
		req.Header[k] = append([]string(nil), vs...)
	}

	for k, vs := range ro.header {
		req.Header[k] = append([]string(nil), vs...)
	}

	if len(ro.query) > 0 {
		req.URL.RawQuery = ro.query.Encode()
	}

	req = c.chain.Before(req)

	resp, err := c.api.Send(req)

	return c.chain.After(req, resp, err)
}
