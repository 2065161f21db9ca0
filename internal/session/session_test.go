package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forkful/forkful-client/internal/types"
)

func TestManagerTokenLifecycle(t *testing.T) {
	m := NewManager(NewMemoryStore())

	assert.Equal(t, "", m.Token())
	assert.False(t, m.IsAuthenticated())

	token, err := NewUnsignedToken(map[string]interface{}{"id": "u1"}, time.Hour)
	require.NoError(t, err)
	require.NoError(t, m.SetToken(token))

	assert.Equal(t, token, m.Token())
	assert.True(t, m.IsAuthenticated())

	require.NoError(t, m.ClearToken())
	assert.Equal(t, "", m.Token())
	assert.False(t, m.IsAuthenticated())
}

func TestIsAuthenticatedExpiredToken(t *testing.T) {
	m := NewManager(NewMemoryStore())

	token, err := NewUnsignedToken(map[string]interface{}{"id": "u1"}, -time.Hour)
	require.NoError(t, err)
	require.NoError(t, m.SetToken(token))

	assert.False(t, m.IsAuthenticated())
}

func TestIsAuthenticatedGarbageToken(t *testing.T) {
	m := NewManager(NewMemoryStore())
	require.NoError(t, m.SetToken("not-a-jwt"))
	assert.False(t, m.IsAuthenticated())
}

func TestStoredUserRoundTrip(t *testing.T) {
	m := NewManager(NewMemoryStore())

	assert.Nil(t, m.StoredUser())

	user := types.User{ID: "u1", Name: "Alice", Email: "alice@example.com"}
	require.NoError(t, m.SetUser(user))

	got := m.StoredUser()
	require.NotNil(t, got)
	assert.Equal(t, user, *got)

	require.NoError(t, m.ClearUser())
	assert.Nil(t, m.StoredUser())
}

func TestClearRemovesTokenAndUser(t *testing.T) {
	m := NewManager(NewMemoryStore())
	require.NoError(t, m.SetToken("tok"))
	require.NoError(t, m.SetUser(types.User{ID: "u1"}))

	require.NoError(t, m.Clear())

	assert.Equal(t, "", m.Token())
	assert.Nil(t, m.StoredUser())
}

func TestCurrentUserIDPrefersCachedUser(t *testing.T) {
	m := NewManager(NewMemoryStore())

	_, err := m.CurrentUserID()
	assert.ErrorIs(t, err, ErrNoIdentity)

	token, err := NewUnsignedToken(map[string]interface{}{"id": "token-id"}, time.Hour)
	require.NoError(t, err)
	require.NoError(t, m.SetToken(token))

	id, err := m.CurrentUserID()
	require.NoError(t, err)
	assert.Equal(t, "token-id", id)

	require.NoError(t, m.SetUser(types.User{ID: "cached-id"}))
	id, err = m.CurrentUserID()
	require.NoError(t, err)
	assert.Equal(t, "cached-id", id)
}

func TestUserFromTokenFallsBackToCachedUser(t *testing.T) {
	m := NewManager(NewMemoryStore())

	assert.Nil(t, m.UserFromToken())

	require.NoError(t, m.SetUser(types.User{ID: "u1", Name: "Alice", Email: "alice@example.com", Image: "a.png"}))

	// no token: identity comes entirely from the cache
	id := m.UserFromToken()
	require.NotNil(t, id)
	assert.Equal(t, "u1", id.ID)
	assert.Equal(t, "Alice", id.Name)
	assert.Equal(t, "a.png", id.Avatar)

	// token fields win, cache fills the gaps
	token, err := NewUnsignedToken(map[string]interface{}{"id": "u1", "name": "Alice T"}, time.Hour)
	require.NoError(t, err)
	require.NoError(t, m.SetToken(token))

	id = m.UserFromToken()
	require.NotNil(t, id)
	assert.Equal(t, "Alice T", id.Name)
	assert.Equal(t, "alice@example.com", id.Email)
	assert.Equal(t, "a.png", id.Avatar)
}

func TestFileStorePersistsAcrossOpens(t *testing.T) {
	dir := t.TempDir()

	fs, err := OpenFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, fs.Set("auth_token", "tok-1"))
	require.NoError(t, fs.Set("auth_token", "tok-2"))

	got, err := fs.Get("auth_token")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", got, "set overwrites in place")

	reopened, err := OpenFileStore(dir)
	require.NoError(t, err)
	got, err = reopened.Get("auth_token")
	require.NoError(t, err)
	assert.Equal(t, "tok-2", got)

	require.NoError(t, reopened.Delete("auth_token"))
	got, err = reopened.Get("auth_token")
	require.NoError(t, err)
	assert.Equal(t, "", got, "missing keys read as empty")
}

func TestMemoryStoreMissingKey(t *testing.T) {
	s := NewMemoryStore()
	got, err := s.Get("nope")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	require.NoError(t, s.Delete("nope"))
}
