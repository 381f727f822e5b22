// Package session owns the durable local session state: the bearer token and
// the cached user profile. It replaces ambient global state with an explicit
// store constructed at startup and injected into the API client.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/stockai/stockai-go/models"
	"github.com/stockai/stockai-go/observability"
)

// state is the persisted session snapshot. Token and user live in a single
// file so clearing one can never leave the other behind.
type state struct {
	Token string       `json:"token,omitempty"`
	User  *models.User `json:"user,omitempty"`
}

// Store manages persistent storage of the session
type Store struct {
	mu         sync.RWMutex
	filePath   string
	state      *state
	passphrase string
}

// NewStore creates a new session store rooted at dataDir. An empty dataDir
// defaults to ~/.stockai. Corrupt or unreadable session files are treated as
// an absent session, never as a fatal error.
func NewStore(dataDir string, passphrase string) (*Store, error) {
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dataDir = filepath.Join(homeDir, ".stockai")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	if passphrase == "" {
		passphrase = defaultPassphrase
	}

	store := &Store{
		filePath:   filepath.Join(dataDir, "session.enc"),
		passphrase: passphrase,
		state:      &state{},
	}

	if err := store.load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		observability.Warn("failed to load stored session, starting unauthenticated", "error", err)
	}

	return store, nil
}

// load reads the session from the encrypted file
func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	decrypted, err := unseal(s.passphrase, data)
	if err != nil {
		return fmt.Errorf("failed to decrypt session: %w", err)
	}

	var st state
	if err := json.Unmarshal(decrypted, &st); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	s.state = &st
	return nil
}

// save persists the session to the encrypted file. Caller must hold s.mu.
func (s *Store) save() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	encrypted, err := seal(s.passphrase, data)
	if err != nil {
		return fmt.Errorf("failed to encrypt session: %w", err)
	}

	if err := os.WriteFile(s.filePath, encrypted, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Token returns the persisted bearer token, or "" when absent.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// SetToken persists the bearer token, overwriting any previous value.
func (s *Store) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	return s.save()
}

// User returns a copy of the cached user profile, or nil when absent.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.User == nil {
		return nil
	}
	user := *s.state.User
	return &user
}

// SetUser caches the last known user profile.
func (s *Store) SetUser(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.User = &user
	return s.save()
}

// SetSession persists token and profile in one write, as done after a
// successful login or signup.
func (s *Store) SetSession(token string, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Token = token
	s.state.User = &user
	return s.save()
}

// Clear removes the token and the cached profile together. There is no
// state where one is cleared and not the other.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = &state{}

	if err := os.Remove(s.filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
