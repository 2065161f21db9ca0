package controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/forkful/forkful-client/internal/client"
	"github.com/forkful/forkful-client/internal/session"
	"github.com/forkful/forkful-client/internal/store"
	"github.com/forkful/forkful-client/internal/testhelpers"
	"github.com/forkful/forkful-client/internal/types"
)

type fixture struct {
	server   *testhelpers.Server
	api      *client.Client
	sessions *session.Manager
	store    *store.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	server := testhelpers.NewServer()
	t.Cleanup(server.Close)

	sessions := session.NewManager(session.NewMemoryStore())
	return &fixture{
		server:   server,
		api:      client.New(server.URL, 5*time.Second, sessions),
		sessions: sessions,
		store:    store.New(),
	}
}

func (f *fixture) signIn(t *testing.T, user testhelpers.UserRecord) {
	t.Helper()
	require.NoError(t, f.sessions.SetToken(f.server.TokenFor(user)))
	require.NoError(t, f.sessions.SetUser(types.User{ID: user.ID, Username: user.Username, Name: user.Name, Email: user.Email}))
}
