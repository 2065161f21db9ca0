package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFeaturedBootstrapsEmptyStore(t *testing.T) {
	f := newFixture(t)
	owner := f.server.SeedUser("alice", "alice@example.com", "secret")
	seeded := f.server.SeedRecipes(5, owner.ID)

	daily := NewDailyController(f.api, f.store, 3)

	featured, err := daily.LoadFeatured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seeded[0].ID, featured.ID)

	state := f.store.Snapshot()
	assert.Len(t, state.Recipes, 3, "only the bootstrap page is cached")
	assert.Equal(t, featured.ID, state.FeaturedRecipeID)
	assert.Empty(t, state.MyRecipeIDs, "bootstrap never claims ownership")
}

func TestLoadFeaturedReusesPinnedRecipe(t *testing.T) {
	f := newFixture(t)
	owner := f.server.SeedUser("alice", "alice@example.com", "secret")
	f.server.SeedRecipes(5, owner.ID)

	daily := NewDailyController(f.api, f.store, 3)
	ctx := context.Background()

	first, err := daily.LoadFeatured(ctx)
	require.NoError(t, err)

	// a second load resolves from the store without refetching
	again, err := daily.LoadFeatured(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
}

func TestLoadFeaturedPinsHeadWhenUnset(t *testing.T) {
	f := newFixture(t)
	owner := f.server.SeedUser("alice", "alice@example.com", "secret")
	f.server.SeedRecipes(2, owner.ID)

	explore := NewExploreController(f.api, f.store, nil, 12)
	require.NoError(t, explore.LoadFirstPage(context.Background()))

	head := f.store.Snapshot().Recipes[0]
	daily := NewDailyController(f.api, f.store, 3)

	featured, err := daily.LoadFeatured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, head.ID, featured.ID)
	assert.Equal(t, head.ID, f.store.Snapshot().FeaturedRecipeID)
}

func TestLoadFeaturedNoRecipes(t *testing.T) {
	f := newFixture(t)
	daily := NewDailyController(f.api, f.store, 3)

	_, err := daily.LoadFeatured(context.Background())
	assert.ErrorIs(t, err, ErrNoFeaturedRecipe)
}
