// Package auth carries the bearer credential used against the task and
// assist services. Tokens are explicit values: callers obtain one at login,
// pass it into each request, and clear it at logout.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Token is an opaque bearer token. The zero value means unauthenticated.
type Token string

// Empty reports whether no credential is held.
func (t Token) Empty() bool { return t == "" }

// Apply attaches the token to req. An empty token leaves req untouched.
func (t Token) Apply(req *http.Request) {
	if t.Empty() {
		return
	}
	req.Header.Set("Authorization", "Bearer "+string(t))
}

// FileStore persists a token between CLI invocations.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the token file location.
func (s *FileStore) Path() string { return s.path }

// Load returns the saved token, or an empty token if none was saved.
func (s *FileStore) Load() (Token, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return Token(strings.TrimSpace(string(data))), nil
}

// Save stores tok, replacing any previous token.
func (s *FileStore) Save(tok Token) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(tok), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// Clear forgets the saved token. Clearing an absent token is not an error.
func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
