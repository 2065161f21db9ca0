package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/forkful/forkful-client/internal/types"
)

// ListUsers fetches all users
func (c *Client) ListUsers(ctx context.Context) ([]types.User, error) {
	var out []types.User
	if err := c.doJSON(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}

// GetUser fetches a user by id
func (c *Client) GetUser(ctx context.Context, id string) (types.User, error) {
	var out types.User
	if err := c.doJSON(ctx, http.MethodGet, "/users/"+id, nil, &out); err != nil {
		return types.User{}, fmt.Errorf("get user %s: %w", id, err)
	}
	return out, nil
}

// UpdateUser submits a profile edit and returns the updated user
func (c *Client) UpdateUser(ctx context.Context, id string, req types.UpdateUserRequest) (types.User, error) {
	var out struct {
		Message string     `json:"message"`
		User    types.User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodPut, "/users/"+id, req, &out); err != nil {
		return types.User{}, fmt.Errorf("update user %s: %w", id, err)
	}
	return out.User, nil
}

// DeleteUser removes an account
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/users/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	return nil
}
