package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/forkful/forkful-client/internal/types"
)

type likePayload struct {
	UserID   string `json:"userId"`
	RecipeID string `json:"recipeId"`
}

// AddLike records the viewer's like of a recipe
func (c *Client) AddLike(ctx context.Context, recipeID string) error {
	userID, err := c.session.CurrentUserID()
	if err != nil {
		return fmt.Errorf("add like: %w", err)
	}
	if err := c.doJSON(ctx, http.MethodPost, "/likes", likePayload{UserID: userID, RecipeID: recipeID}, nil); err != nil {
		return fmt.Errorf("add like: %w", err)
	}
	return nil
}

// RemoveLike removes the viewer's like of a recipe
func (c *Client) RemoveLike(ctx context.Context, recipeID string) error {
	userID, err := c.session.CurrentUserID()
	if err != nil {
		return fmt.Errorf("remove like: %w", err)
	}
	if err := c.doJSON(ctx, http.MethodDelete, "/likes", likePayload{UserID: userID, RecipeID: recipeID}, nil); err != nil {
		return fmt.Errorf("remove like: %w", err)
	}
	return nil
}

// GetLikesByUser lists the recipes a user has liked. The server populates
// recipeId on each like; likes whose recipe was deleted come back with a
// bare id and are skipped.
func (c *Client) GetLikesByUser(ctx context.Context, userID string) ([]types.Recipe, error) {
	var out []struct {
		ID       string          `json:"_id"`
		RecipeID json.RawMessage `json:"recipeId"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/likes/user/"+userID, nil, &out); err != nil {
		return nil, fmt.Errorf("get likes for user %s: %w", userID, err)
	}

	recipes := make([]types.Recipe, 0, len(out))
	for _, like := range out {
		if len(like.RecipeID) == 0 || like.RecipeID[0] != '{' {
			continue
		}
		var w wireRecipe
		if err := json.Unmarshal(like.RecipeID, &w); err != nil {
			continue
		}
		recipes = append(recipes, toRecipe(w))
	}
	return recipes, nil
}

// CheckUserLike reports whether the viewer has liked a recipe. Any failure,
// including a missing identity, reads as false rather than propagating.
func (c *Client) CheckUserLike(ctx context.Context, recipeID string) bool {
	userID, err := c.session.CurrentUserID()
	if err != nil {
		return false
	}
	var out struct {
		Liked bool `json:"liked"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/likes/check/"+userID+"/"+recipeID, nil, &out); err != nil {
		return false
	}
	return out.Liked
}
