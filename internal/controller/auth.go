package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/forkful/forkful-client/internal/client"
	"github.com/forkful/forkful-client/internal/session"
	"github.com/forkful/forkful-client/internal/types"
)

var ErrMissingCredentials = errors.New("username/email and password are required")

// AuthController drives the login, register and google sign-in flows and
// persists the resulting session
type AuthController struct {
	api      *client.Client
	sessions *session.Manager
}

func NewAuthController(api *client.Client, sessions *session.Manager) *AuthController {
	return &AuthController{api: api, sessions: sessions}
}

// Login authenticates with a username or email. Identifiers containing "@"
// are submitted as email.
func (c *AuthController) Login(ctx context.Context, identifier, password string) (types.User, error) {
	if identifier == "" || password == "" {
		return types.User{}, ErrMissingCredentials
	}

	req := types.LoginRequest{Password: password}
	if strings.Contains(identifier, "@") {
		req.Email = identifier
	} else {
		req.Username = identifier
	}

	resp, err := c.api.Login(ctx, req)
	if err != nil {
		return types.User{}, err
	}
	return resp.User, c.persist(resp)
}

// Register creates an account and logs the new user in
func (c *AuthController) Register(ctx context.Context, req types.RegisterRequest) (types.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return types.User{}, ErrMissingCredentials
	}

	resp, err := c.api.Register(ctx, req)
	if err != nil {
		return types.User{}, err
	}
	return resp.User, c.persist(resp)
}

// GoogleLogin submits a credential obtained from the google sign-in flow
func (c *AuthController) GoogleLogin(ctx context.Context, credential string) (types.User, error) {
	if credential == "" {
		return types.User{}, errors.New("missing google credential")
	}

	resp, err := c.api.GoogleLogin(ctx, credential)
	if err != nil {
		return types.User{}, err
	}
	return resp.User, c.persist(resp)
}

// Logout destroys the session
func (c *AuthController) Logout() error {
	return c.sessions.Clear()
}

func (c *AuthController) persist(resp types.AuthResponse) error {
	if err := c.sessions.SetToken(resp.Token); err != nil {
		return fmt.Errorf("failed to persist token: %w", err)
	}
	if err := c.sessions.SetUser(resp.User); err != nil {
		return fmt.Errorf("failed to persist user: %w", err)
	}
	return nil
}
