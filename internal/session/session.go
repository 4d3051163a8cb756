// Package session holds the bearer token of the signed-in administrator,
// persisted in a kv store so it survives restarts of the CLI.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MrSnakeDoc/backoffice/internal/kv"
)

// TokenKey is the storage key of the token.
const TokenKey = "token"

const (
	LoginPath = "/auth/login"
	HomePath  = "/"
)

// Session is safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	store kv.Store
	token string
}

// Open restores the token persisted in store, if any.
func Open(ctx context.Context, store kv.Store) (*Session, error) {
	s := &Session{store: store}
	raw, err := store.Get(ctx, TokenKey)
	switch {
	case errors.Is(err, kv.ErrNotFound):
	case err != nil:
		return nil, fmt.Errorf("restore session: %w", err)
	default:
		s.token = string(raw)
	}
	return s, nil
}

// Login stores token.
func (s *Session) Login(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("empty token")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Set(ctx, TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.token = token
	return nil
}

// Logout forgets the token. Logging out twice is not an error.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Delete(ctx, TokenKey); err != nil && !errors.Is(err, kv.ErrNotFound) {
		return fmt.Errorf("clear session: %w", err)
	}
	s.token = ""
	return nil
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Authenticated() bool { return s.Token() != "" }

var authRoutes = []string{
	"/auth/login",
	"/auth/register",
	"/auth/forgot-password",
	"/auth/reset-password",
}

// IsAuthRoute reports whether path is one of the public auth screens.
func IsAuthRoute(path string) bool {
	path = strings.TrimSuffix(path, "/")
	for _, r := range authRoutes {
		if path == r {
			return true
		}
	}
	return false
}

// Guard decides whether path may be shown. When it may not, redirect is
// where to go instead: the login screen for anonymous users, home for
// signed-in users visiting an auth screen.
func Guard(authenticated bool, path string) (redirect string, ok bool) {
	auth := IsAuthRoute(path)
	switch {
	case !authenticated && !auth:
		return LoginPath, false
	case authenticated && auth:
		return HomePath, false
	}
	return "", true
}
