package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/forkful/forkful-client/internal/types"
)

const (
	tokenKey = "auth_token"
	userKey  = "auth_user"
)

// ErrNoIdentity is returned when neither the cached user nor the token
// payload carries a user id.
var ErrNoIdentity = errors.New("missing user id")

// Identity is the subset of user fields embedded in a token payload
type Identity struct {
	ID     string
	Name   string
	Email  string
	Avatar string
}

// Manager owns the session token and cached user profile. It persists both
// in a Store under fixed keys and derives authentication state from the
// token payload without cryptographic verification.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// SetToken persists the raw token string
func (m *Manager) SetToken(token string) error {
	return m.store.Set(tokenKey, token)
}

// Token retrieves the raw token string, or "" when no session exists
func (m *Manager) Token() string {
	token, err := m.store.Get(tokenKey)
	if err != nil {
		log.Printf("[Session] failed to read token: %v", err)
		return ""
	}
	return token
}

// ClearToken removes the persisted token
func (m *Manager) ClearToken() error {
	return m.store.Delete(tokenKey)
}

// SetUser caches the user profile as JSON
func (m *Manager) SetUser(user types.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	return m.store.Set(userKey, string(data))
}

// StoredUser retrieves the cached user profile, or nil when absent or
// unreadable
func (m *Manager) StoredUser() *types.User {
	data, err := m.store.Get(userKey)
	if err != nil {
		log.Printf("[Session] failed to read cached user: %v", err)
		return nil
	}
	if data == "" {
		return nil
	}
	var user types.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		log.Printf("[Session] failed to decode cached user: %v", err)
		return nil
	}
	return &user
}

// ClearUser removes the cached user profile
func (m *Manager) ClearUser() error {
	return m.store.Delete(userKey)
}

// Clear removes the token and the cached user
func (m *Manager) Clear() error {
	if err := m.ClearToken(); err != nil {
		return err
	}
	return m.ClearUser()
}

// IsAuthenticated reports whether a decodable, unexpired token is present
func (m *Manager) IsAuthenticated() bool {
	token := m.Token()
	if token == "" {
		return false
	}
	claims := ParseJWTPayload(token)
	if claims == nil {
		return false
	}
	return !expired(claims, time.Now())
}

// UserFromToken derives an identity from the token payload, preferring
// fields embedded in the token and falling back to the cached user object
func (m *Manager) UserFromToken() *Identity {
	claims := ParseJWTPayload(m.Token())
	if claims == nil {
		if user := m.StoredUser(); user != nil {
			return &Identity{ID: user.ID, Name: user.Name, Email: user.Email, Avatar: user.Image}
		}
		return nil
	}

	id := &Identity{
		ID:     claimString(claims, "id"),
		Name:   claimString(claims, "name"),
		Email:  claimString(claims, "email"),
		Avatar: claimString(claims, "avatar"),
	}
	if user := m.StoredUser(); user != nil {
		if id.ID == "" {
			id.ID = user.ID
		}
		if id.Name == "" {
			id.Name = user.Name
		}
		if id.Email == "" {
			id.Email = user.Email
		}
		if id.Avatar == "" {
			id.Avatar = user.Image
		}
	}
	return id
}

// CurrentUserID resolves the viewer's id from the cached user, falling back
// to the token payload
func (m *Manager) CurrentUserID() (string, error) {
	if user := m.StoredUser(); user != nil && user.ID != "" {
		return user.ID, nil
	}
	if claims := ParseJWTPayload(m.Token()); claims != nil {
		if id := claimString(claims, "id"); id != "" {
			return id, nil
		}
	}
	return "", ErrNoIdentity
}

func claimString(claims map[string]interface{}, key string) string {
	switch v := claims[key].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	default:
		return ""
	}
}
