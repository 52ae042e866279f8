package api

import (
	"fmt"
	"io"
	"net/http"

	"github.com/LerianStudio/lib-commons/commons/log"
	libErr "github.com/LerianStudio/lib-mealmind-go/error"
	"github.com/LerianStudio/lib-mealmind-go/model"
)

// Doer executes HTTP requests; *http.Client satisfies it
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client handles communication with the MealMind API
type Client struct {
	httpClient Doer
	logger     log.Logger
}

// New creates a new API client
func New(httpClient Doer, logger log.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// Send performs req and reads the whole body. Responses with status >= 400 come
// back as *libErr.APIError alongside the response itself; transport failures
// return no response.
func (c *Client) Send(req *http.Request) (*model.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debugf("Request failed - method: %s, url: %s, error: %s", req.Method, req.URL.String(), err.Error())
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	out := &model.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return out, libErr.NewAPIError(req.Method, req.URL.String(), resp.StatusCode, resp.Header, body)
	}

	return out, nil
}
