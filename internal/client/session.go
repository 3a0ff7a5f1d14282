package client

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Session holds the bearer token for the current operator. It is the only place
// the token is read or written; the zero path keeps the token in memory only.
type Session struct {
	mu    sync.RWMutex
	path  string
	token string
}

// NewSession returns a session persisted at path.
func NewSession(path string) *Session {
	return &Session{path: path}
}

// DefaultSessionPath is the token file used when client.tokenFile is not configured.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve user config dir")
	}

	return filepath.Join(dir, "creativehub", "token"), nil
}

// Hydrate loads a previously persisted token. A missing file leaves the session anonymous.
func (s *Session) Hydrate() error {
	if s.path == "" {
		return nil
	}

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "read session token")
	}

	s.mu.Lock()
	s.token = strings.TrimSpace(string(raw))
	s.mu.Unlock()

	return nil
}

// Token returns the current token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set stores and persists token.
func (s *Session) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	if s.path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "create session dir")
	}

	return errors.Wrap(os.WriteFile(s.path, []byte(token), 0o600), "write session token")
}

// Clear signs out and removes the persisted token.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "remove session token")
	}

	return nil
}
