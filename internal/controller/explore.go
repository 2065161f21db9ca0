package controller

import (
	"context"
	"log"
	"sync"

	"github.com/forkful/forkful-client/internal/client"
	"github.com/forkful/forkful-client/internal/store"
	"github.com/forkful/forkful-client/internal/types"
)

// PhotoUploader uploads a local photo and returns its public URL
type PhotoUploader interface {
	UploadFile(ctx context.Context, path string) (string, error)
}

// ExploreController drives the main recipe feed: incremental page loading,
// creation and server-confirmed likes. Writes are pessimistic: the store is
// only updated after the API call resolves, so a failed call leaves local
// state unchanged.
type ExploreController struct {
	api      *client.Client
	store    *store.Store
	uploader PhotoUploader
	pageSize int

	mu      sync.Mutex
	loading bool
}

func NewExploreController(api *client.Client, st *store.Store, uploader PhotoUploader, pageSize int) *ExploreController {
	return &ExploreController{api: api, store: st, uploader: uploader, pageSize: pageSize}
}

// LoadFirstPage resets the feed to page 1
func (c *ExploreController) LoadFirstPage(ctx context.Context) error {
	recipes, pagination, err := c.api.GetRecipesPage(ctx, 1, c.pageSize)
	if err != nil {
		return err
	}
	c.store.Dispatch(store.SetRecipes{Recipes: recipes})
	c.store.Dispatch(store.SetRecipesPagination{Pagination: pagination})
	return nil
}

// LoadNextPage fetches the next page when one exists and no fetch is
// already in flight. Newly fetched recipes are merged with the existing
// collection, de-duplicated by id so a recipe moving across page boundaries
// is never shown twice.
func (c *ExploreController) LoadNextPage(ctx context.Context) error {
	c.mu.Lock()
	if c.loading {
		c.mu.Unlock()
		return nil
	}
	c.loading = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	current := c.store.Snapshot()
	if !current.RecipesPagination.HasNextPage {
		return nil
	}

	recipes, pagination, err := c.api.GetRecipesPage(ctx, current.RecipesPagination.Page+1, c.pageSize)
	if err != nil {
		return err
	}

	merged := mergeByID(c.store.Snapshot().Recipes, recipes)
	c.store.Dispatch(store.SetRecipes{Recipes: merged})
	c.store.Dispatch(store.SetRecipesPagination{Pagination: pagination})
	return nil
}

// CreateRecipe uploads the photo (when given), submits the recipe and adds
// the server's version to the store as one of the viewer's own
func (c *ExploreController) CreateRecipe(ctx context.Context, input types.NewRecipeInput, photoPath string) (types.Recipe, error) {
	if photoPath != "" && c.uploader != nil {
		url, err := c.uploader.UploadFile(ctx, photoPath)
		if err != nil {
			return types.Recipe{}, err
		}
		input.ImageURL = url
	}

	recipe, err := c.api.CreateRecipe(ctx, input)
	if err != nil {
		return types.Recipe{}, err
	}
	c.store.Dispatch(store.AddRecipe{Recipe: recipe, AddToMyRecipes: true})
	return recipe, nil
}

// UpdateRecipe submits an edit and replaces the store entry on success
func (c *ExploreController) UpdateRecipe(ctx context.Context, id string, patch types.RecipePatch) (types.Recipe, error) {
	recipe, err := c.api.UpdateRecipe(ctx, id, patch)
	if err != nil {
		return types.Recipe{}, err
	}
	c.store.Dispatch(store.UpdateRecipe{Recipe: recipe})
	return recipe, nil
}

// DeleteRecipe removes a recipe on the server, then from the store
func (c *ExploreController) DeleteRecipe(ctx context.Context, id string) error {
	if err := c.api.DeleteRecipe(ctx, id); err != nil {
		return err
	}
	c.store.Dispatch(store.DeleteRecipe{RecipeID: id})
	return nil
}

// Like records a like on the server, then reflects it locally. The likes
// count shown is the server's: the recipe is refetched best-effort so cards
// display the confirmed count rather than a local increment.
func (c *ExploreController) Like(ctx context.Context, recipeID string) error {
	if err := c.api.AddLike(ctx, recipeID); err != nil {
		return err
	}
	c.store.Dispatch(store.LikeRecipe{RecipeID: recipeID})
	c.refreshRecipe(ctx, recipeID)
	return nil
}

// Unlike removes a like on the server, then locally
func (c *ExploreController) Unlike(ctx context.Context, recipeID string) error {
	if err := c.api.RemoveLike(ctx, recipeID); err != nil {
		return err
	}
	c.store.Dispatch(store.UnlikeRecipe{RecipeID: recipeID})
	c.refreshRecipe(ctx, recipeID)
	return nil
}

func (c *ExploreController) refreshRecipe(ctx context.Context, recipeID string) {
	recipe, err := c.api.GetRecipe(ctx, recipeID)
	if err != nil {
		log.Printf("[Explore] failed to refresh recipe %s: %v", recipeID, err)
		return
	}
	c.store.Dispatch(store.UpdateRecipe{Recipe: recipe})
}

// mergeByID appends fetched recipes to the existing collection, skipping
// ids already present
func mergeByID(existing, fetched []types.Recipe) []types.Recipe {
	seen := make(map[string]struct{}, len(existing))
	merged := make([]types.Recipe, 0, len(existing)+len(fetched))
	for _, r := range existing {
		seen[r.ID] = struct{}{}
		merged = append(merged, r)
	}
	for _, r := range fetched {
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		merged = append(merged, r)
	}
	return merged
}
