package store

import (
	"github.com/forkful/forkful-client/internal/types"
)

// Action is the closed set of state transitions. The unexported marker
// method keeps the set closed: new variants can only be added here, next to
// the reducer that must handle them.
type Action interface {
	isAction()
}

// ToggleLike flips membership of a recipe in the liked set. Local-only;
// used where optimistic liking is modeled without a server round trip.
type ToggleLike struct {
	RecipeID string
}

// SetLikedIDs replaces the liked set wholesale after a reconciliation fetch
type SetLikedIDs struct {
	LikedIDs []string
}

// LikeRecipe reflects a server-confirmed like
type LikeRecipe struct {
	RecipeID string
}

// UnlikeRecipe reflects a server-confirmed unlike
type UnlikeRecipe struct {
	RecipeID string
}

// AddRecipe prepends a recipe. AddToMyRecipes also records ownership for
// display purposes; callers that merely cache fetched recipes pass false.
type AddRecipe struct {
	Recipe         types.Recipe
	AddToMyRecipes bool
}

// UpdateRecipe replaces the entry whose id matches, by value
type UpdateRecipe struct {
	Recipe types.Recipe
}

// DeleteRecipe removes a recipe and cascades into the liked and owned sets
// and the featured pointer
type DeleteRecipe struct {
	RecipeID string
}

// SetRecipes replaces the full collection after a page fetch or reset
type SetRecipes struct {
	Recipes []types.Recipe
}

// SetRecipesPagination replaces the pagination metadata
type SetRecipesPagination struct {
	Pagination types.Pagination
}

// SetFeatured points the daily view at a recipe
type SetFeatured struct {
	RecipeID string
}

// AddSearchHistory prepends an AI-suggestion search to the history
type AddSearchHistory struct {
	Item types.SearchHistoryItem
}

// ClearSearchHistory empties the history
type ClearSearchHistory struct{}

func (ToggleLike) isAction()           {}
func (SetLikedIDs) isAction()          {}
func (LikeRecipe) isAction()           {}
func (UnlikeRecipe) isAction()         {}
func (AddRecipe) isAction()            {}
func (UpdateRecipe) isAction()         {}
func (DeleteRecipe) isAction()         {}
func (SetRecipes) isAction()           {}
func (SetRecipesPagination) isAction() {}
func (SetFeatured) isAction()          {}
func (AddSearchHistory) isAction()     {}
func (ClearSearchHistory) isAction()   {}
