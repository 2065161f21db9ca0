package store

import (
	"github.com/forkful/forkful-client/internal/types"
)

// IDSet is a set of recipe ids
type IDSet map[string]struct{}

func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) clone() IDSet {
	next := make(IDSet, len(s))
	for id := range s {
		next[id] = struct{}{}
	}
	return next
}

// State is the application's in-memory domain state. Values handed out by
// the store are treated as immutable; every transition builds a new State.
type State struct {
	// Recipes is ordered and id-unique
	Recipes []types.Recipe

	// LikedIDs are the recipes the current viewer has liked
	LikedIDs IDSet

	// MyRecipeIDs are the recipes owned for display purposes
	MyRecipeIDs IDSet

	// FeaturedRecipeID points at the daily recipe, or "" when unset
	FeaturedRecipeID string

	// SearchHistory holds AI-suggestion queries, newest first
	SearchHistory []types.SearchHistoryItem

	// RecipesPagination is the metadata of the last page fetch
	RecipesPagination types.Pagination
}

// InitialState returns the empty state the provider starts from
func InitialState() State {
	return State{
		LikedIDs:    NewIDSet(),
		MyRecipeIDs: NewIDSet(),
	}
}

// RecipeByID looks a recipe up in the ordered collection
func (s State) RecipeByID(id string) (types.Recipe, bool) {
	for _, r := range s.Recipes {
		if r.ID == id {
			return r, true
		}
	}
	return types.Recipe{}, false
}

// FeaturedRecipe resolves the featured pointer, falling back to the head of
// the collection when the pointer is unset or dangling
func (s State) FeaturedRecipe() (types.Recipe, bool) {
	if r, ok := s.RecipeByID(s.FeaturedRecipeID); ok {
		return r, true
	}
	if len(s.Recipes) > 0 {
		return s.Recipes[0], true
	}
	return types.Recipe{}, false
}
