package mealmind

import (
	"context"
	"fmt"
	"net/http"

	cn "github.com/LerianStudio/lib-mealmind-go/constant"
	"github.com/LerianStudio/lib-mealmind-go/model"
	"github.com/LerianStudio/lib-mealmind-go/session"
)

// AuthAPI groups the authentication endpoints
type AuthAPI struct {
	client *Client
}

// Signup sends POST /api/auth/signup with data as the JSON body
func (a *AuthAPI) Signup(ctx context.Context, data any, opts ...RequestOption) (*model.Response, error) {
	return a.client.Do(ctx, http.MethodPost, cn.PathAuthSignup, data, opts...)
}

// Login sends POST /api/auth/login with data as the JSON body.
// Storing the returned token is up to the caller, see SaveSession.
func (a *AuthAPI) Login(ctx context.Context, data any, opts ...RequestOption) (*model.Response, error) {
	return a.client.Do(ctx, http.MethodPost, cn.PathAuthLogin, data, opts...)
}

// GetCurrentUser sends GET /api/auth/me
func (a *AuthAPI) GetCurrentUser(ctx context.Context, opts ...RequestOption) (*model.Response, error) {
	return a.client.Do(ctx, http.MethodGet, cn.PathAuthMe, nil, opts...)
}

// TestCORS sends GET /api/cors-test
func (a *AuthAPI) TestCORS(ctx context.Context, opts ...RequestOption) (*model.Response, error) {
	return a.client.Do(ctx, http.MethodGet, cn.PathCORSTest, nil, opts...)
}

// SaveSession stores the token and user of a signup or login response in the
// client's session store, so later calls carry the bearer token.
func (a *AuthAPI) SaveSession(resp *model.Response) (model.AuthResponse, error) {
	var auth model.AuthResponse
	if err := resp.Decode(&auth); err != nil {
		return model.AuthResponse{}, fmt.Errorf("failed to decode auth response: %w", err)
	}

	token := auth.SessionToken()
	if token == "" {
		return auth, cn.ErrMissingToken
	}

	if err := session.SaveLogin(a.client.store, token, string(auth.User)); err != nil {
		return auth, fmt.Errorf("failed to save session: %w", err)
	}

	return auth, nil
}

// Logout removes the token and user from the session store
func (a *AuthAPI) Logout() error {
	return session.Clear(a.client.store)
}
