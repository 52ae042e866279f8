package mealmind

import (
	"context"
	"net/http"
	"net/url"

	cn "github.com/LerianStudio/lib-mealmind-go/constant"
	"github.com/LerianStudio/lib-mealmind-go/model"
)

// RecommendationsAPI groups the daily recommendation endpoints
type RecommendationsAPI struct {
	client *Client
}

// GetToday sends GET /api/recommendations/today
func (r *RecommendationsAPI) GetToday(ctx context.Context, opts ...RequestOption) (*model.Response, error) {
	return r.client.Do(ctx, http.MethodGet, cn.PathRecommendationsToday, nil, opts...)
}

// Regenerate sends POST /api/recommendations/regenerate/{kind} without a body.
// kind is usually one of model.RecommendationMeal, RecommendationActivity or
// RecommendationSleep; it is not checked here.
func (r *RecommendationsAPI) Regenerate(ctx context.Context, kind string, opts ...RequestOption) (*model.Response, error) {
	return r.client.Do(ctx, http.MethodPost, cn.PathRecommendationsRegenerate+url.PathEscape(kind), nil, opts...)
}

// Checkin sends POST /api/recommendations/checkin with data as the JSON body
func (r *RecommendationsAPI) Checkin(ctx context.Context, data any, opts ...RequestOption) (*model.Response, error) {
	return r.client.Do(ctx, http.MethodPost, cn.PathRecommendationsCheckin, data, opts...)
}

// GetHistory sends GET /api/recommendations/history
func (r *RecommendationsAPI) GetHistory(ctx context.Context, opts ...RequestOption) (*model.Response, error) {
	return r.client.Do(ctx, http.MethodGet, cn.PathRecommendationsHistory, nil, opts...)
}
