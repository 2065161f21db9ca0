package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forkful/forkful-client/internal/types"
)

func recipe(id, title string) types.Recipe {
	return types.Recipe{
		ID:          id,
		Title:       title,
		Description: "d",
		Creator:     types.Creator{Name: "test"},
		Servings:    1,
		Ingredients: []types.Ingredient{},
		Steps:       []string{},
	}
}

func TestAddThenDeletePurgesEverywhere(t *testing.T) {
	state := InitialState()
	state = Reduce(state, AddRecipe{Recipe: recipe("r1", "Pasta"), AddToMyRecipes: true})
	state = Reduce(state, LikeRecipe{RecipeID: "r1"})
	state = Reduce(state, SetFeatured{RecipeID: "r1"})

	state = Reduce(state, DeleteRecipe{RecipeID: "r1"})

	_, ok := state.RecipeByID("r1")
	assert.False(t, ok)
	assert.False(t, state.LikedIDs.Has("r1"))
	assert.False(t, state.MyRecipeIDs.Has("r1"))
	assert.Equal(t, "", state.FeaturedRecipeID)
}

func TestToggleLikeInvolution(t *testing.T) {
	state := InitialState()
	state = Reduce(state, AddRecipe{Recipe: recipe("r1", "Pasta")})

	assert.False(t, state.LikedIDs.Has("r1"))
	state = Reduce(state, ToggleLike{RecipeID: "r1"})
	assert.True(t, state.LikedIDs.Has("r1"))
	state = Reduce(state, ToggleLike{RecipeID: "r1"})
	assert.False(t, state.LikedIDs.Has("r1"))
}

func TestDeleteFeaturedReassignsToNewHead(t *testing.T) {
	state := InitialState()
	state = Reduce(state, AddRecipe{Recipe: recipe("r1", "First")})
	state = Reduce(state, AddRecipe{Recipe: recipe("r2", "Second")})
	state = Reduce(state, SetFeatured{RecipeID: "r2"})

	// r2 is at the head; deleting it promotes r1
	state = Reduce(state, DeleteRecipe{RecipeID: "r2"})
	assert.Equal(t, "r1", state.FeaturedRecipeID)

	state = Reduce(state, DeleteRecipe{RecipeID: "r1"})
	assert.Equal(t, "", state.FeaturedRecipeID)
	assert.Empty(t, state.Recipes)
}

func TestDeleteNonFeaturedKeepsPointer(t *testing.T) {
	state := InitialState()
	state = Reduce(state, AddRecipe{Recipe: recipe("r1", "First")})
	state = Reduce(state, AddRecipe{Recipe: recipe("r2", "Second")})
	state = Reduce(state, SetFeatured{RecipeID: "r1"})

	state = Reduce(state, DeleteRecipe{RecipeID: "r2"})
	assert.Equal(t, "r1", state.FeaturedRecipeID)
}

func TestSetRecipesAndPaginationReplaceExactly(t *testing.T) {
	state := InitialState()
	state = Reduce(state, AddRecipe{Recipe: recipe("old", "Old")})

	recipes := []types.Recipe{recipe("a", "A"), recipe("b", "B")}
	pagination := types.NewPagination(2, 12, 30)

	state = Reduce(state, SetRecipes{Recipes: recipes})
	state = Reduce(state, SetRecipesPagination{Pagination: pagination})

	assert.Equal(t, recipes, state.Recipes)
	assert.Equal(t, pagination, state.RecipesPagination)
}

func TestAddRecipePrependsAndRecordsOwnership(t *testing.T) {
	state := InitialState()
	state = Reduce(state, AddRecipe{Recipe: recipe("r1", "First")})
	state = Reduce(state, AddRecipe{Recipe: recipe("r2", "Second"), AddToMyRecipes: true})

	assert.Equal(t, "r2", state.Recipes[0].ID)
	assert.Equal(t, "r1", state.Recipes[1].ID)
	assert.True(t, state.MyRecipeIDs.Has("r2"))
	assert.False(t, state.MyRecipeIDs.Has("r1"))
}

func TestAddRecipeDeduplicatesByID(t *testing.T) {
	state := InitialState()
	state = Reduce(state, AddRecipe{Recipe: recipe("r1", "Original")})
	state = Reduce(state, AddRecipe{Recipe: recipe("r2", "Other")})

	// same id arriving again (e.g. via suggestion and direct fetch)
	// replaces in place instead of duplicating
	state = Reduce(state, AddRecipe{Recipe: recipe("r1", "Updated")})

	assert.Len(t, state.Recipes, 2)
	got, ok := state.RecipeByID("r1")
	assert.True(t, ok)
	assert.Equal(t, "Updated", got.Title)
}

func TestUpdateRecipeReplacesByValue(t *testing.T) {
	state := InitialState()
	state = Reduce(state, AddRecipe{Recipe: recipe("r1", "Before")})
	state = Reduce(state, LikeRecipe{RecipeID: "r1"})

	state = Reduce(state, UpdateRecipe{Recipe: recipe("r1", "After")})

	got, ok := state.RecipeByID("r1")
	assert.True(t, ok)
	assert.Equal(t, "After", got.Title)
	assert.True(t, state.LikedIDs.Has("r1"), "other collections stay untouched")
}

func TestSetLikedIDsReplacesWholesale(t *testing.T) {
	state := InitialState()
	state = Reduce(state, LikeRecipe{RecipeID: "r1"})
	state = Reduce(state, LikeRecipe{RecipeID: "r2"})

	state = Reduce(state, SetLikedIDs{LikedIDs: []string{"r3"}})

	assert.False(t, state.LikedIDs.Has("r1"))
	assert.False(t, state.LikedIDs.Has("r2"))
	assert.True(t, state.LikedIDs.Has("r3"))
}

func TestLikeUnlikeUnconditional(t *testing.T) {
	state := InitialState()
	state = Reduce(state, LikeRecipe{RecipeID: "r1"})
	state = Reduce(state, LikeRecipe{RecipeID: "r1"})
	assert.True(t, state.LikedIDs.Has("r1"))

	state = Reduce(state, UnlikeRecipe{RecipeID: "r1"})
	state = Reduce(state, UnlikeRecipe{RecipeID: "r1"})
	assert.False(t, state.LikedIDs.Has("r1"))
}

func TestSearchHistoryPrependAndClear(t *testing.T) {
	state := InitialState()
	state = Reduce(state, AddSearchHistory{Item: types.SearchHistoryItem{ID: "s1", Query: "pasta"}})
	state = Reduce(state, AddSearchHistory{Item: types.SearchHistoryItem{ID: "s2", Query: "soup"}})

	assert.Len(t, state.SearchHistory, 2)
	assert.Equal(t, "s2", state.SearchHistory[0].ID)

	state = Reduce(state, ClearSearchHistory{})
	assert.Empty(t, state.SearchHistory)
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	original := InitialState()
	original = Reduce(original, AddRecipe{Recipe: recipe("r1", "First")})
	original = Reduce(original, LikeRecipe{RecipeID: "r1"})

	_ = Reduce(original, DeleteRecipe{RecipeID: "r1"})
	_ = Reduce(original, ToggleLike{RecipeID: "r1"})
	_ = Reduce(original, AddRecipe{Recipe: recipe("r2", "Second"), AddToMyRecipes: true})

	assert.Len(t, original.Recipes, 1)
	assert.True(t, original.LikedIDs.Has("r1"))
	assert.False(t, original.MyRecipeIDs.Has("r2"))
}
