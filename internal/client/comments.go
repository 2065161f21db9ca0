package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/forkful/forkful-client/internal/types"
)

// GetCommentsByRecipe lists all comments on a recipe
func (c *Client) GetCommentsByRecipe(ctx context.Context, recipeID string) ([]types.Comment, error) {
	var out []types.Comment
	if err := c.doJSON(ctx, http.MethodGet, "/comments/recipe/"+recipeID, nil, &out); err != nil {
		return nil, fmt.Errorf("get comments for recipe %s: %w", recipeID, err)
	}
	return out, nil
}

// CreateComment posts a comment. The server returns either a wrapped
// {"comment": ...} or a bare comment object; both are accepted.
func (c *Client) CreateComment(ctx context.Context, input types.CommentInput) (types.Comment, error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodPost, "/comments", input, &raw); err != nil {
		return types.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return unwrapComment(raw)
}

// UpdateComment replaces a comment's text
func (c *Client) UpdateComment(ctx context.Context, commentID, text string) (types.Comment, error) {
	body := map[string]string{"text": text}
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodPut, "/comments/"+commentID, body, &raw); err != nil {
		return types.Comment{}, fmt.Errorf("update comment %s: %w", commentID, err)
	}
	return unwrapComment(raw)
}

// DeleteComment removes a comment
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/comments/"+commentID, nil, nil); err != nil {
		return fmt.Errorf("delete comment %s: %w", commentID, err)
	}
	return nil
}

func unwrapComment(raw json.RawMessage) (types.Comment, error) {
	var wrapped struct {
		Comment *types.Comment `json:"comment"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Comment != nil {
		return *wrapped.Comment, nil
	}
	var comment types.Comment
	if err := json.Unmarshal(raw, &comment); err != nil {
		return types.Comment{}, fmt.Errorf("failed to decode comment: %w", err)
	}
	return comment, nil
}
