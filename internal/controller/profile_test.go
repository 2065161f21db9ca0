package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/forkful-client/internal/session"
	"github.com/forkful/forkful-client/internal/types"
)

func TestProfileLoad(t *testing.T) {
	f := newFixture(t)
	user := f.server.SeedUser("alice", "alice@example.com", "secret")
	other := f.server.SeedUser("bob", "bob@example.com", "secret")
	mine := f.server.SeedRecipe("Pasta", "Quick dinner", user.ID)
	theirs := f.server.SeedRecipe("Soup", "Warm", other.ID)
	f.server.SeedLike(user.ID, theirs.ID)
	f.signIn(t, user)

	profiles := NewProfileController(f.api, f.sessions, f.store)

	profile, err := profiles.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.User.Username)
	require.Len(t, profile.Recipes, 1)
	assert.Equal(t, mine.ID, profile.Recipes[0].ID)
	require.Len(t, profile.Liked, 1)
	assert.Equal(t, theirs.ID, profile.Liked[0].ID)

	assert.True(t, f.store.Snapshot().LikedIDs.Has(theirs.ID))
}

func TestProfileLoadRequiresIdentity(t *testing.T) {
	f := newFixture(t)
	profiles := NewProfileController(f.api, f.sessions, f.store)

	_, err := profiles.Load(context.Background())
	assert.ErrorIs(t, err, session.ErrNoIdentity)
}

func TestProfileUpdateRefreshesCachedUser(t *testing.T) {
	f := newFixture(t)
	user := f.server.SeedUser("alice", "alice@example.com", "secret")
	f.signIn(t, user)

	profiles := NewProfileController(f.api, f.sessions, f.store)

	updated, err := profiles.Update(context.Background(), types.UpdateUserRequest{Name: "Alice T"})
	require.NoError(t, err)
	assert.Equal(t, "Alice T", updated.Name)

	cached := f.sessions.StoredUser()
	require.NotNil(t, cached)
	assert.Equal(t, "Alice T", cached.Name)
}

func TestProfileDeleteRecipe(t *testing.T) {
	f := newFixture(t)
	user := f.server.SeedUser("alice", "alice@example.com", "secret")
	recipe := f.server.SeedRecipe("Pasta", "Quick dinner", user.ID)
	f.signIn(t, user)

	explore := NewExploreController(f.api, f.store, nil, 12)
	require.NoError(t, explore.LoadFirstPage(context.Background()))

	profiles := NewProfileController(f.api, f.sessions, f.store)
	require.NoError(t, profiles.DeleteRecipe(context.Background(), recipe.ID))

	_, ok := f.store.Snapshot().RecipeByID(recipe.ID)
	assert.False(t, ok)
}

func TestDeleteAccountDestroysSession(t *testing.T) {
	f := newFixture(t)
	user := f.server.SeedUser("alice", "alice@example.com", "secret")
	f.signIn(t, user)

	profiles := NewProfileController(f.api, f.sessions, f.store)
	require.NoError(t, profiles.DeleteAccount(context.Background()))

	assert.False(t, f.sessions.IsAuthenticated())
	assert.Nil(t, f.sessions.StoredUser())

	// the account is gone server-side too
	_, err := f.api.GetUser(context.Background(), user.ID)
	assert.Error(t, err)
}
