package mealmind

import (
	"context"
	"net/http"

	cn "github.com/LerianStudio/lib-mealmind-go/constant"
	"github.com/LerianStudio/lib-mealmind-go/model"
)

// ProfileAPI groups the user profile endpoints
type ProfileAPI struct {
	client *Client
}

// Setup sends POST /api/profile/setup with data as the JSON body
func (p *ProfileAPI) Setup(ctx context.Context, data any, opts ...RequestOption) (*model.Response, error) {
	return p.client.Do(ctx, http.MethodPost, cn.PathProfileSetup, data, opts...)
}

// Get sends GET /api/profile/get
func (p *ProfileAPI) Get(ctx context.Context, opts ...RequestOption) (*model.Response, error) {
	return p.client.Do(ctx, http.MethodGet, cn.PathProfileGet, nil, opts...)
}

// Update sends PUT /api/profile/update with data as the JSON body
func (p *ProfileAPI) Update(ctx context.Context, data any, opts ...RequestOption) (*model.Response, error) {
	return p.client.Do(ctx, http.MethodPut, cn.PathProfileUpdate, data, opts...)
}
