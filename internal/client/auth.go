package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/forkful/forkful-client/internal/types"
)

// Register creates an account. The caller persists the returned user and
// token via the session manager.
func (c *Client) Register(ctx context.Context, req types.RegisterRequest) (types.AuthResponse, error) {
	var out types.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", req, &out); err != nil {
		return types.AuthResponse{}, fmt.Errorf("register: %w", err)
	}
	return out, nil
}

// Login authenticates with a username or email plus password
func (c *Client) Login(ctx context.Context, req types.LoginRequest) (types.AuthResponse, error) {
	var out types.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", req, &out); err != nil {
		return types.AuthResponse{}, fmt.Errorf("login: %w", err)
	}
	return out, nil
}

// GoogleLogin submits the opaque credential obtained from the google
// sign-in flow; the return contract matches Login
func (c *Client) GoogleLogin(ctx context.Context, credential string) (types.AuthResponse, error) {
	body := map[string]string{"credential": credential}
	var out types.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/google", body, &out); err != nil {
		return types.AuthResponse{}, fmt.Errorf("google login: %w", err)
	}
	return out, nil
}
