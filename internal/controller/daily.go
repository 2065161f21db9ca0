package controller

import (
	"context"
	"errors"

	"github.com/forkful/forkful-client/internal/client"
	"github.com/forkful/forkful-client/internal/store"
	"github.com/forkful/forkful-client/internal/types"
)

var ErrNoFeaturedRecipe = errors.New("no recipes available to feature")

// DailyController resolves the featured "daily" recipe, fetching a small
// bootstrap page when the store is still empty
type DailyController struct {
	api      *client.Client
	store    *store.Store
	pageSize int
}

func NewDailyController(api *client.Client, st *store.Store, pageSize int) *DailyController {
	return &DailyController{api: api, store: st, pageSize: pageSize}
}

// LoadFeatured returns the featured recipe, pinning the pointer at the
// current head when it is unset
func (c *DailyController) LoadFeatured(ctx context.Context) (types.Recipe, error) {
	state := c.store.Snapshot()
	if recipe, ok := state.FeaturedRecipe(); ok {
		if state.FeaturedRecipeID != recipe.ID {
			c.store.Dispatch(store.SetFeatured{RecipeID: recipe.ID})
		}
		return recipe, nil
	}

	recipes, _, err := c.api.GetRecipesPage(ctx, 1, c.pageSize)
	if err != nil {
		return types.Recipe{}, err
	}
	if len(recipes) == 0 {
		return types.Recipe{}, ErrNoFeaturedRecipe
	}

	// cache the bootstrap page without claiming ownership
	for i := len(recipes) - 1; i >= 0; i-- {
		c.store.Dispatch(store.AddRecipe{Recipe: recipes[i], AddToMyRecipes: false})
	}
	c.store.Dispatch(store.SetFeatured{RecipeID: recipes[0].ID})
	return recipes[0], nil
}
