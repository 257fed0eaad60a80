package api

import (
	"context"
	"net/http"
)

// Credentials carries a username/password pair for the auth endpoints.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// TokenResponse is returned by both register and login.
type TokenResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Register creates a new account and returns a session token.
func (c *Client) Register(ctx context.Context, creds Credentials) (TokenResponse, error) {
	var out TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", creds, &out); err != nil {
		return TokenResponse{}, err
	}
	return out, nil
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, creds Credentials) (TokenResponse, error) {
	var out TokenResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", creds, &out); err != nil {
		return TokenResponse{}, err
	}
	return out, nil
}
