package store

import (
	"context"
	"log"
	"sync"

	"github.com/forkful/forkful-client/internal/types"
)

// Loader is the slice of the API client the provider needs for its
// bootstrap fetches.
type Loader interface {
	GetRecipesPage(ctx context.Context, page, limit int) ([]types.Recipe, types.Pagination, error)
	GetLikesByUser(ctx context.Context, userID string) ([]types.Recipe, error)
}

// Viewer resolves the cached identity, if any. Implemented by the session
// manager.
type Viewer interface {
	CurrentUserID() (string, error)
}

// Store owns the reducer state and is the sole mutation entry point. It is
// passed by reference to whichever controllers need it; Dispatch applies the
// reducer synchronously under the lock, so observers never see a partially
// applied transition.
type Store struct {
	mu          sync.RWMutex
	state       State
	subscribers []func(State)
}

func New() *Store {
	return &Store{state: InitialState()}
}

// Snapshot returns the current state value
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch runs the reducer and notifies subscribers with the new state
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	next := s.state
	subs := s.subscribers
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

// Subscribe registers a callback invoked after every dispatch
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Bootstrap performs the initial data load: page 1 of recipes, and the
// viewer's liked ids when a cached identity exists. Cancelling ctx
// suppresses any dispatch that has not happened yet; fetch failures are
// logged and never fatal.
func (s *Store) Bootstrap(ctx context.Context, loader Loader, viewer Viewer, pageSize int) {
	recipes, pagination, err := loader.GetRecipesPage(ctx, 1, pageSize)
	if err != nil {
		log.Printf("[Store] failed to load recipes from API: %v", err)
		return
	}
	if ctx.Err() != nil {
		return
	}
	s.Dispatch(SetRecipes{Recipes: recipes})
	s.Dispatch(SetRecipesPagination{Pagination: pagination})

	userID, err := viewer.CurrentUserID()
	if err != nil {
		// anonymous viewer, nothing to reconcile
		return
	}

	liked, err := loader.GetLikesByUser(ctx, userID)
	if err != nil {
		log.Printf("[Store] failed to load liked recipes: %v", err)
		return
	}
	if ctx.Err() != nil {
		return
	}
	ids := make([]string, 0, len(liked))
	for _, r := range liked {
		ids = append(ids, r.ID)
	}
	s.Dispatch(SetLikedIDs{LikedIDs: ids})
}
