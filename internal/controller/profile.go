package controller

import (
	"context"
	"log"

	"github.com/forkful/forkful-client/internal/client"
	"github.com/forkful/forkful-client/internal/session"
	"github.com/forkful/forkful-client/internal/store"
	"github.com/forkful/forkful-client/internal/types"
)

// Profile is what the profile page renders: the viewer plus their authored
// and liked recipes
type Profile struct {
	User    types.User
	Recipes []types.Recipe
	Liked   []types.Recipe
}

// ProfileController drives the profile page: the viewer's recipes and
// likes, profile edits and account deletion
type ProfileController struct {
	api      *client.Client
	sessions *session.Manager
	store    *store.Store
}

func NewProfileController(api *client.Client, sessions *session.Manager, st *store.Store) *ProfileController {
	return &ProfileController{api: api, sessions: sessions, store: st}
}

// Load fetches the viewer's profile, authored recipes and liked recipes,
// and reconciles the liked set in the store. The liked fetch is
// best-effort; its failure leaves the liked set as it was.
func (c *ProfileController) Load(ctx context.Context) (Profile, error) {
	userID, err := c.sessions.CurrentUserID()
	if err != nil {
		return Profile{}, err
	}

	user, err := c.api.GetUser(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	recipes, err := c.api.GetUserRecipes(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	profile := Profile{User: user, Recipes: recipes}

	liked, err := c.api.GetLikesByUser(ctx, userID)
	if err != nil {
		log.Printf("[Profile] failed to load liked recipes: %v", err)
		return profile, nil
	}
	profile.Liked = liked

	ids := make([]string, 0, len(liked))
	for _, r := range liked {
		ids = append(ids, r.ID)
	}
	c.store.Dispatch(store.SetLikedIDs{LikedIDs: ids})
	return profile, nil
}

// Update submits a profile edit and refreshes the cached user
func (c *ProfileController) Update(ctx context.Context, req types.UpdateUserRequest) (types.User, error) {
	userID, err := c.sessions.CurrentUserID()
	if err != nil {
		return types.User{}, err
	}

	user, err := c.api.UpdateUser(ctx, userID, req)
	if err != nil {
		return types.User{}, err
	}
	if err := c.sessions.SetUser(user); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// DeleteRecipe removes one of the viewer's recipes on the server, then from
// the store
func (c *ProfileController) DeleteRecipe(ctx context.Context, recipeID string) error {
	if err := c.api.DeleteRecipe(ctx, recipeID); err != nil {
		return err
	}
	c.store.Dispatch(store.DeleteRecipe{RecipeID: recipeID})
	return nil
}

// DeleteAccount removes the account and destroys the local session
func (c *ProfileController) DeleteAccount(ctx context.Context) error {
	userID, err := c.sessions.CurrentUserID()
	if err != nil {
		return err
	}
	if err := c.api.DeleteUser(ctx, userID); err != nil {
		return err
	}
	return c.sessions.Clear()
}
