package controller

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/forkful/forkful-client/internal/store"
	"github.com/forkful/forkful-client/internal/types"
)

var ErrEmptyQuery = errors.New("query must not be empty")

// RecipeSuggester asks the AI backend for suggestions
type RecipeSuggester interface {
	SuggestRecipes(ctx context.Context, input string) ([]types.Recipe, error)
}

// SuggestController drives the AI-suggestion page: it fetches suggestions,
// caches them in the store so the details view can open them, and records
// the search in the history
type SuggestController struct {
	suggester RecipeSuggester
	store     *store.Store
}

func NewSuggestController(suggester RecipeSuggester, st *store.Store) *SuggestController {
	return &SuggestController{suggester: suggester, store: st}
}

// Suggest sends a free-form description and returns the suggested recipes.
// All results are added to the store (without ownership) and the search is
// prepended to the history.
func (c *SuggestController) Suggest(ctx context.Context, query string) ([]types.Recipe, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	recipes, err := c.suggester.SuggestRecipes(ctx, query)
	if err != nil {
		return nil, err
	}

	for _, recipe := range recipes {
		c.store.Dispatch(store.AddRecipe{Recipe: recipe, AddToMyRecipes: false})
	}
	c.store.Dispatch(store.AddSearchHistory{Item: types.SearchHistoryItem{
		ID:        uuid.New().String(),
		Query:     query,
		Recipes:   recipes,
		Timestamp: time.Now(),
	}})
	return recipes, nil
}

// ClearHistory empties the suggestion history
func (c *SuggestController) ClearHistory() {
	c.store.Dispatch(store.ClearSearchHistory{})
}
