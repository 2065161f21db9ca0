package store

import (
	"github.com/forkful/forkful-client/internal/types"
)

// Reduce is the pure state-transition function. Every transition is total
// and returns a fresh State; the input is never mutated.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case ToggleLike:
		liked := state.LikedIDs.clone()
		if liked.Has(a.RecipeID) {
			delete(liked, a.RecipeID)
		} else {
			liked[a.RecipeID] = struct{}{}
		}
		state.LikedIDs = liked
		return state

	case SetLikedIDs:
		state.LikedIDs = NewIDSet(a.LikedIDs...)
		return state

	case LikeRecipe:
		liked := state.LikedIDs.clone()
		liked[a.RecipeID] = struct{}{}
		state.LikedIDs = liked
		return state

	case UnlikeRecipe:
		liked := state.LikedIDs.clone()
		delete(liked, a.RecipeID)
		state.LikedIDs = liked
		return state

	case AddRecipe:
		// Id-uniqueness is enforced here rather than left to caller
		// discipline: an already-present id is replaced in place.
		if _, ok := state.RecipeByID(a.Recipe.ID); ok {
			state.Recipes = replaceRecipe(state.Recipes, a.Recipe)
		} else {
			recipes := make([]types.Recipe, 0, len(state.Recipes)+1)
			recipes = append(recipes, a.Recipe)
			recipes = append(recipes, state.Recipes...)
			state.Recipes = recipes
		}
		if a.AddToMyRecipes {
			mine := state.MyRecipeIDs.clone()
			mine[a.Recipe.ID] = struct{}{}
			state.MyRecipeIDs = mine
		}
		return state

	case UpdateRecipe:
		state.Recipes = replaceRecipe(state.Recipes, a.Recipe)
		return state

	case DeleteRecipe:
		recipes := make([]types.Recipe, 0, len(state.Recipes))
		for _, r := range state.Recipes {
			if r.ID != a.RecipeID {
				recipes = append(recipes, r)
			}
		}
		state.Recipes = recipes

		// deleted recipe may have been featured; fall back to the new head
		if state.FeaturedRecipeID == a.RecipeID {
			if len(recipes) > 0 {
				state.FeaturedRecipeID = recipes[0].ID
			} else {
				state.FeaturedRecipeID = ""
			}
		}

		liked := state.LikedIDs.clone()
		delete(liked, a.RecipeID)
		state.LikedIDs = liked

		mine := state.MyRecipeIDs.clone()
		delete(mine, a.RecipeID)
		state.MyRecipeIDs = mine
		return state

	case SetRecipes:
		state.Recipes = a.Recipes
		return state

	case SetRecipesPagination:
		state.RecipesPagination = a.Pagination
		return state

	case SetFeatured:
		state.FeaturedRecipeID = a.RecipeID
		return state

	case AddSearchHistory:
		history := make([]types.SearchHistoryItem, 0, len(state.SearchHistory)+1)
		history = append(history, a.Item)
		history = append(history, state.SearchHistory...)
		state.SearchHistory = history
		return state

	case ClearSearchHistory:
		state.SearchHistory = nil
		return state

	default:
		return state
	}
}

func replaceRecipe(recipes []types.Recipe, recipe types.Recipe) []types.Recipe {
	next := make([]types.Recipe, len(recipes))
	for i, r := range recipes {
		if r.ID == recipe.ID {
			next[i] = recipe
		} else {
			next[i] = r
		}
	}
	return next
}
