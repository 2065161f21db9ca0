package controller

import (
	"context"
	"log"
	"sync"

	"github.com/forkful/forkful-client/internal/client"
	"github.com/forkful/forkful-client/internal/session"
	"github.com/forkful/forkful-client/internal/store"
	"github.com/forkful/forkful-client/internal/types"
)

// DetailsController drives one recipe-details view. Comments are fetched
// and held locally rather than in the store, matching the lifetime of the
// view itself.
type DetailsController struct {
	api      *client.Client
	sessions *session.Manager
	store    *store.Store
	recipeID string

	mu       sync.Mutex
	comments []types.Comment
	liked    bool
}

func NewDetailsController(api *client.Client, sessions *session.Manager, st *store.Store, recipeID string) *DetailsController {
	return &DetailsController{api: api, sessions: sessions, store: st, recipeID: recipeID}
}

// Open loads everything the view needs: the recipe itself (fetched and
// cached in the store when absent), the comment thread, and the viewer's
// like status. Comment loading is best-effort; a failure shows an empty
// thread rather than interrupting the page.
func (c *DetailsController) Open(ctx context.Context) (types.Recipe, error) {
	recipe, ok := c.store.Snapshot().RecipeByID(c.recipeID)
	if !ok {
		fetched, err := c.api.GetRecipe(ctx, c.recipeID)
		if err != nil {
			return types.Recipe{}, err
		}
		c.store.Dispatch(store.AddRecipe{Recipe: fetched, AddToMyRecipes: false})
		recipe = fetched
	}

	comments, err := c.api.GetCommentsByRecipe(ctx, c.recipeID)
	if err != nil {
		log.Printf("[Details] failed to load comments for %s: %v", c.recipeID, err)
		comments = nil
	}

	liked := c.api.CheckUserLike(ctx, c.recipeID)

	c.mu.Lock()
	c.comments = comments
	c.liked = liked
	c.mu.Unlock()

	return recipe, nil
}

// Comments returns the locally held comment thread
func (c *DetailsController) Comments() []types.Comment {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.comments
}

// Liked reports the viewer's like status as of the last server check
func (c *DetailsController) Liked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.liked
}

// PostComment creates a comment and appends the server's version to the
// local thread
func (c *DetailsController) PostComment(ctx context.Context, text string) (types.Comment, error) {
	userID, err := c.sessions.CurrentUserID()
	if err != nil {
		return types.Comment{}, err
	}

	comment, err := c.api.CreateComment(ctx, types.CommentInput{
		Text:     text,
		UserID:   userID,
		RecipeID: c.recipeID,
	})
	if err != nil {
		return types.Comment{}, err
	}

	c.mu.Lock()
	c.comments = append(c.comments, comment)
	c.mu.Unlock()
	return comment, nil
}

// EditComment updates a comment's text and replaces it in the local thread
func (c *DetailsController) EditComment(ctx context.Context, commentID, text string) (types.Comment, error) {
	comment, err := c.api.UpdateComment(ctx, commentID, text)
	if err != nil {
		return types.Comment{}, err
	}

	c.mu.Lock()
	for i := range c.comments {
		if c.comments[i].ID == commentID {
			c.comments[i] = comment
		}
	}
	c.mu.Unlock()
	return comment, nil
}

// RemoveComment deletes a comment and drops it from the local thread
func (c *DetailsController) RemoveComment(ctx context.Context, commentID string) error {
	if err := c.api.DeleteComment(ctx, commentID); err != nil {
		return err
	}

	c.mu.Lock()
	next := c.comments[:0]
	for _, comment := range c.comments {
		if comment.ID != commentID {
			next = append(next, comment)
		}
	}
	c.comments = next
	c.mu.Unlock()
	return nil
}

// ToggleLike flips the viewer's like through the server, then reflects the
// confirmed result in the store
func (c *DetailsController) ToggleLike(ctx context.Context) error {
	c.mu.Lock()
	liked := c.liked
	c.mu.Unlock()

	if liked {
		if err := c.api.RemoveLike(ctx, c.recipeID); err != nil {
			return err
		}
		c.store.Dispatch(store.UnlikeRecipe{RecipeID: c.recipeID})
	} else {
		if err := c.api.AddLike(ctx, c.recipeID); err != nil {
			return err
		}
		c.store.Dispatch(store.LikeRecipe{RecipeID: c.recipeID})
	}

	c.mu.Lock()
	c.liked = !liked
	c.mu.Unlock()

	// refresh the confirmed likes count, best-effort
	if recipe, err := c.api.GetRecipe(ctx, c.recipeID); err == nil {
		c.store.Dispatch(store.UpdateRecipe{Recipe: recipe})
	} else {
		log.Printf("[Details] failed to refresh recipe %s: %v", c.recipeID, err)
	}
	return nil
}
