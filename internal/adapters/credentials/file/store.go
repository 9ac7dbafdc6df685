package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/umesh576/servicehub-cli/internal/ports"
)

const (
	storeDirMode  = 0o700
	tokenFileMode = 0o600
)

// Store keeps the single session token in a file so it survives restarts.
// The slot's key is the file path, stable for the life of the install.
type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Get reads the stored token. An absent or unreadable slot reports absence,
// never an error.
func (s *Store) Get(ctx context.Context) (string, bool) {
	if ctx.Err() != nil {
		return "", false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}

	return token, true
}

func (s *Store) Set(ctx context.Context, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(token) == "" {
		return errors.New("session token is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), storeDirMode); err != nil {
		return fmt.Errorf("create credential directory: %w", err)
	}

	if err := os.WriteFile(s.path, []byte(token), tokenFileMode); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}

	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete credential file: %w", err)
	}

	return nil
}
