package remote

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// tokenKey is the fixed storage key; the token file is named after it so
// the on-disk layout mirrors the old client's local storage entry.
const tokenKey = "dtech_token"

// TokenStore persists the auth token, the only durable state this client
// keeps.
type TokenStore struct {
	mu   sync.Mutex
	path string
}

// NewTokenStore keeps the token under dir. The directory is created on the
// first Set.
func NewTokenStore(dir string) *TokenStore {
	return &TokenStore{path: filepath.Join(dir, tokenKey)}
}

// Get returns the stored token, or empty when none is stored.
func (s *TokenStore) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Set stores the token; an empty token clears the store.
func (s *TokenStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token == "" {
		err := os.Remove(s.path)
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear drops the stored token.
func (s *TokenStore) Clear() error { return s.Set("") }
