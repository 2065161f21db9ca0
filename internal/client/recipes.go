package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/forkful/forkful-client/internal/types"
)

// GetRecipesPage fetches one page of recipes with their like and comment
// counts. Page defaults to 1 and limit to the explore page size when the
// caller passes non-positive values. Pagination metadata the server omits
// is derived from page, limit and total.
func (c *Client) GetRecipesPage(ctx context.Context, page, limit int) ([]types.Recipe, types.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var out struct {
		Data       []wireRecipe     `json:"data"`
		Pagination types.Pagination `json:"pagination"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/recipes/with-details?"+query.Encode(), nil, &out); err != nil {
		return nil, types.Pagination{}, fmt.Errorf("get recipes page %d: %w", page, err)
	}

	pagination := out.Pagination
	if pagination.TotalPages == 0 {
		pagination = types.NewPagination(page, limit, pagination.Total)
	}

	return toRecipes(out.Data), pagination, nil
}

// GetRecipe fetches a single recipe by id
func (c *Client) GetRecipe(ctx context.Context, id string) (types.Recipe, error) {
	var out wireRecipe
	if err := c.doJSON(ctx, http.MethodGet, "/recipes/"+id, nil, &out); err != nil {
		return types.Recipe{}, fmt.Errorf("get recipe %s: %w", id, err)
	}
	return toRecipe(out), nil
}

// CreateRecipe submits a new recipe and maps the server's response back to
// the domain shape
func (c *Client) CreateRecipe(ctx context.Context, input types.NewRecipeInput) (types.Recipe, error) {
	payload := toPayload(input.Title, input.Description, input.ImageURL,
		input.PrepMinutes, input.CookMinutes, input.Servings, input.Ingredients, input.Steps)

	var out wireRecipe
	if err := c.doJSON(ctx, http.MethodPost, "/recipes", payload, &out); err != nil {
		return types.Recipe{}, fmt.Errorf("create recipe: %w", err)
	}
	return toRecipe(out), nil
}

// UpdateRecipe submits an edit for an existing recipe. The payload is a
// partial update: fields left unset in the patch are not sent.
func (c *Client) UpdateRecipe(ctx context.Context, id string, patch types.RecipePatch) (types.Recipe, error) {
	payload := toPatchPayload(patch)

	var out wireRecipe
	if err := c.doJSON(ctx, http.MethodPut, "/recipes/"+id, payload, &out); err != nil {
		return types.Recipe{}, fmt.Errorf("update recipe %s: %w", id, err)
	}
	return toRecipe(out), nil
}

// DeleteRecipe removes a recipe
func (c *Client) DeleteRecipe(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/recipes/"+id, nil, nil); err != nil {
		return fmt.Errorf("delete recipe %s: %w", id, err)
	}
	return nil
}

// GetUserRecipes lists the recipes authored by a user
func (c *Client) GetUserRecipes(ctx context.Context, userID string) ([]types.Recipe, error) {
	var out []wireRecipe
	if err := c.doJSON(ctx, http.MethodGet, "/recipes/userRecipes/"+userID, nil, &out); err != nil {
		return nil, fmt.Errorf("get user recipes: %w", err)
	}
	return toRecipes(out), nil
}
