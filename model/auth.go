package model

import "encoding/json"

// SignupRequest is the payload of POST /api/auth/signup.
type SignupRequest struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the body returned by signup and login. The backend names the
// token either "token" or "access_token".
type AuthResponse struct {
	Token       string          `json:"token,omitempty"`
	AccessToken string          `json:"access_token,omitempty"`
	User        json.RawMessage `json:"user,omitempty"`
	Message     string          `json:"message,omitempty"`
}

// SessionToken returns whichever token field the backend populated.
func (a AuthResponse) SessionToken() string {
	if a.Token != "" {
		return a.Token
	}

	return a.AccessToken
}
